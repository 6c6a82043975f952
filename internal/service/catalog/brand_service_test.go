package catalog

import (
	"context"
	"testing"

	"zabudowy-service/internal/domain/catalog"
	xerrors "zabudowy-service/internal/pkg/errors"

	"go.uber.org/zap"
)

// fakeBrandRepo is an in-memory BrandRepository. Link rewrites are recorded
// whole, mirroring the full-replace semantics of the postgres layer.
type fakeBrandRepo struct {
	brands map[string]*catalog.VehicleBrand
	links  map[string][]string
}

func newFakeBrandRepo() *fakeBrandRepo {
	return &fakeBrandRepo{
		brands: make(map[string]*catalog.VehicleBrand),
		links:  make(map[string][]string),
	}
}

func (f *fakeBrandRepo) Create(ctx context.Context, brand *catalog.VehicleBrand, categoryIDs []string) error {
	b := *brand
	f.brands[brand.ID] = &b
	f.links[brand.ID] = append([]string(nil), categoryIDs...)
	return nil
}

func (f *fakeBrandRepo) Update(ctx context.Context, brand *catalog.VehicleBrand, categoryIDs []string) error {
	if _, ok := f.brands[brand.ID]; !ok {
		return xerrors.ErrNotFound
	}
	b := *brand
	f.brands[brand.ID] = &b
	f.links[brand.ID] = append([]string(nil), categoryIDs...)
	return nil
}

func (f *fakeBrandRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.brands[id]; !ok {
		return xerrors.ErrNotFound
	}
	delete(f.brands, id)
	delete(f.links, id)
	return nil
}

func (f *fakeBrandRepo) FindByID(ctx context.Context, id string) (*catalog.VehicleBrand, error) {
	b, ok := f.brands[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return b, nil
}

func (f *fakeBrandRepo) FindBySlug(ctx context.Context, slug string) (*catalog.VehicleBrand, error) {
	for _, b := range f.brands {
		if b.Slug == slug {
			return b, nil
		}
	}
	return nil, xerrors.ErrNotFound
}

func (f *fakeBrandRepo) List(ctx context.Context, publishedOnly bool) ([]catalog.VehicleBrand, error) {
	var out []catalog.VehicleBrand
	for _, b := range f.brands {
		if publishedOnly && !b.Published {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBrandRepo) ExistsSlug(ctx context.Context, slug, excludeID string) (bool, error) {
	for _, b := range f.brands {
		if b.Slug == slug && b.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func newBrandServiceForTest() (*BrandService, *fakeBrandRepo) {
	repo := newFakeBrandRepo()
	return NewBrandService(repo, zap.NewNop()), repo
}

func TestCreateBrandDefaults(t *testing.T) {
	svc, _ := newBrandServiceForTest()

	brand, err := svc.CreateBrand(context.Background(), &catalog.BrandRequest{Name: "Mercedes-Benz"})
	if err != nil {
		t.Fatalf("CreateBrand: %v", err)
	}

	if brand.Slug != "mercedes-benz" {
		t.Errorf("slug = %q, want %q", brand.Slug, "mercedes-benz")
	}
	if brand.Type != catalog.BrandTypeTruck {
		t.Errorf("type = %q, want truck", brand.Type)
	}
	if brand.Models != "[]" || brand.Gallery != "[]" {
		t.Errorf("models/gallery = %q/%q, want empty documents", brand.Models, brand.Gallery)
	}
	if !brand.Published {
		t.Error("published = false, want default true")
	}
}

func TestCreateBrandRejectsBlankName(t *testing.T) {
	svc, _ := newBrandServiceForTest()

	_, err := svc.CreateBrand(context.Background(), &catalog.BrandRequest{Name: "   "})
	if !xerrors.Is(err, xerrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want invalid input", err)
	}
}

func TestCreateBrandSlugConflict(t *testing.T) {
	svc, _ := newBrandServiceForTest()
	ctx := context.Background()

	if _, err := svc.CreateBrand(ctx, &catalog.BrandRequest{Name: "MAN", Slug: "man"}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := svc.CreateBrand(ctx, &catalog.BrandRequest{Name: "MAN Trucks", Slug: "man"})
	if !xerrors.Is(err, xerrors.ErrConflict) {
		t.Fatalf("err = %v, want conflict", err)
	}
}

func TestUpdateBrandKeepsOwnSlug(t *testing.T) {
	svc, _ := newBrandServiceForTest()
	ctx := context.Background()

	created, err := svc.CreateBrand(ctx, &catalog.BrandRequest{Name: "Scania", Slug: "scania"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Re-submitting the same slug must not be treated as a collision.
	updated, err := svc.UpdateBrand(ctx, created.ID, &catalog.BrandRequest{Name: "Scania AB", Slug: "scania"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Scania AB" {
		t.Errorf("name = %q, want %q", updated.Name, "Scania AB")
	}
}

func TestUpdateBrandReplacesLinks(t *testing.T) {
	svc, repo := newBrandServiceForTest()
	ctx := context.Background()

	created, err := svc.CreateBrand(ctx, &catalog.BrandRequest{
		Name:        "Volvo",
		CategoryIDs: []string{"cat-a", "cat-b"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.UpdateBrand(ctx, created.ID, &catalog.BrandRequest{
		Name:        "Volvo",
		Slug:        created.Slug,
		CategoryIDs: []string{"cat-c"},
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got := repo.links[created.ID]
	if len(got) != 1 || got[0] != "cat-c" {
		t.Errorf("links = %v, want [cat-c]", got)
	}
}

func TestUpdateMissingBrand(t *testing.T) {
	svc, _ := newBrandServiceForTest()

	_, err := svc.UpdateBrand(context.Background(), "no-such-id", &catalog.BrandRequest{Name: "Iveco"})
	if !xerrors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}
