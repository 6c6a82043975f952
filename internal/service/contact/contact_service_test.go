package contact

import (
	"context"
	"errors"
	"testing"

	"zabudowy-service/internal/domain/contact"
	xerrors "zabudowy-service/internal/pkg/errors"

	"go.uber.org/zap"
)

type fakeMessageRepo struct {
	messages  map[string]*contact.Message
	createErr error
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: make(map[string]*contact.Message)}
}

func (f *fakeMessageRepo) Create(ctx context.Context, m *contact.Message) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *m
	f.messages[m.ID] = &cp
	return nil
}

func (f *fakeMessageRepo) List(ctx context.Context) ([]contact.Message, error) {
	var out []contact.Message
	for _, m := range f.messages {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeMessageRepo) UnreadCount(ctx context.Context) (int, error) {
	count := 0
	for _, m := range f.messages {
		if !m.Read {
			count++
		}
	}
	return count, nil
}

func (f *fakeMessageRepo) MarkRead(ctx context.Context, id string) error {
	m, ok := f.messages[id]
	if !ok {
		return xerrors.ErrNotFound
	}
	m.Read = true
	return nil
}

type fakeNotifier struct {
	received []contact.Message
}

func (f *fakeNotifier) NotifyNewMessage(m contact.Message) {
	f.received = append(f.received, m)
}

func TestSubmitStoresAndNotifies(t *testing.T) {
	repo := newFakeMessageRepo()
	notifier := &fakeNotifier{}
	svc := NewService(repo, notifier, zap.NewNop())

	m, err := svc.Submit(context.Background(), &contact.SubmitRequest{
		Name:    "  Jan Kowalski ",
		Email:   "jan@example.pl",
		Message: "Proszę o wycenę półek do MAN TGM.",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if m.Name != "Jan Kowalski" {
		t.Errorf("name = %q, want trimmed", m.Name)
	}
	if m.Read {
		t.Error("new message is marked read")
	}
	if len(notifier.received) != 1 || notifier.received[0].ID != m.ID {
		t.Errorf("notifier received %v, want the stored message", notifier.received)
	}
}

func TestSubmitRejectsBlankFields(t *testing.T) {
	svc := NewService(newFakeMessageRepo(), nil, zap.NewNop())

	cases := []contact.SubmitRequest{
		{Name: " ", Email: "a@b.pl", Message: "x"},
		{Name: "Jan", Email: "", Message: "x"},
		{Name: "Jan", Email: "a@b.pl", Message: "   "},
	}
	for i, req := range cases {
		if _, err := svc.Submit(context.Background(), &req); !xerrors.Is(err, xerrors.ErrInvalidInput) {
			t.Errorf("case %d: err = %v, want invalid input", i, err)
		}
	}
}

func TestSubmitHidesStorageDetail(t *testing.T) {
	repo := newFakeMessageRepo()
	repo.createErr = errors.New("pq: relation contact_messages does not exist")
	svc := NewService(repo, nil, zap.NewNop())

	_, err := svc.Submit(context.Background(), &contact.SubmitRequest{
		Name: "Jan", Email: "jan@example.pl", Message: "test",
	})
	if !xerrors.Is(err, xerrors.ErrInternal) {
		t.Fatalf("err = %v, want internal sentinel", err)
	}
	if errors.Is(err, repo.createErr) {
		t.Error("storage error leaked through the service boundary")
	}
}

func TestSubmitWithoutNotifier(t *testing.T) {
	svc := NewService(newFakeMessageRepo(), nil, zap.NewNop())

	if _, err := svc.Submit(context.Background(), &contact.SubmitRequest{
		Name: "Jan", Email: "jan@example.pl", Message: "test",
	}); err != nil {
		t.Fatalf("Submit without notifier: %v", err)
	}
}

func TestMarkReadUnknownMessage(t *testing.T) {
	svc := NewService(newFakeMessageRepo(), nil, zap.NewNop())

	if err := svc.MarkRead(context.Background(), "missing"); !xerrors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}
