package settings

import (
	"context"
	"testing"

	"zabudowy-service/internal/domain/settings"
	xerrors "zabudowy-service/internal/pkg/errors"

	"go.uber.org/zap"
)

type fakeSettingRepo struct {
	values map[string]string
}

func newFakeSettingRepo() *fakeSettingRepo {
	return &fakeSettingRepo{values: make(map[string]string)}
}

func (f *fakeSettingRepo) Upsert(ctx context.Context, id, key, value string) error {
	f.values[key] = value
	return nil
}

func (f *fakeSettingRepo) Get(ctx context.Context, key string) (*settings.Setting, error) {
	v, ok := f.values[key]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return &settings.Setting{Key: key, Value: v}, nil
}

func (f *fakeSettingRepo) List(ctx context.Context) ([]settings.Setting, error) {
	var out []settings.Setting
	for k, v := range f.values {
		out = append(out, settings.Setting{Key: k, Value: v})
	}
	return out, nil
}

func TestUpsertOverwritesExistingKeys(t *testing.T) {
	repo := newFakeSettingRepo()
	svc := NewService(repo, zap.NewNop())
	ctx := context.Background()

	if err := svc.Upsert(ctx, map[string]string{"site_name": "Steel Solution"}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := svc.Upsert(ctx, map[string]string{
		"site_name":     "Steel Solution Sp. z o.o.",
		"contact_phone": "+48 690 418 119",
	}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	all, err := svc.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if all["site_name"] != "Steel Solution Sp. z o.o." {
		t.Errorf("site_name = %q, want overwritten value", all["site_name"])
	}
	if len(all) != 2 {
		t.Errorf("settings = %d, want 2", len(all))
	}
}

func TestUpsertRejectsBlankKey(t *testing.T) {
	repo := newFakeSettingRepo()
	svc := NewService(repo, zap.NewNop())

	err := svc.Upsert(context.Background(), map[string]string{"  ": "value"})
	if !xerrors.Is(err, xerrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want invalid input", err)
	}
	if len(repo.values) != 0 {
		t.Error("invalid payload reached storage")
	}
}

func TestGetMissingKey(t *testing.T) {
	svc := NewService(newFakeSettingRepo(), zap.NewNop())

	if _, err := svc.Get(context.Background(), "nope"); !xerrors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}
