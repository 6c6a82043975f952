package catalog

import (
	"context"
	"testing"

	"zabudowy-service/internal/domain/catalog"
	"zabudowy-service/internal/domain/project"
	xerrors "zabudowy-service/internal/pkg/errors"

	"go.uber.org/zap"
)

// fakeProjectLister records how the view service queried it.
type fakeProjectLister struct {
	byBrand    map[string][]project.Project
	byCategory map[string][]project.Project
	featured   []project.Project

	lastBrandName  string
	lastCategoryID string
	lastLimit      int
}

func newFakeProjectLister() *fakeProjectLister {
	return &fakeProjectLister{
		byBrand:    make(map[string][]project.Project),
		byCategory: make(map[string][]project.Project),
	}
}

func (f *fakeProjectLister) ListPublished(ctx context.Context, categoryID string, limit int) ([]project.Project, error) {
	f.lastCategoryID = categoryID
	f.lastLimit = limit
	return f.byCategory[categoryID], nil
}

func (f *fakeProjectLister) ListFeatured(ctx context.Context, limit int) ([]project.Project, error) {
	f.lastLimit = limit
	return f.featured, nil
}

func (f *fakeProjectLister) ListByBrandName(ctx context.Context, brandName string, limit int) ([]project.Project, error) {
	f.lastBrandName = brandName
	f.lastLimit = limit
	return f.byBrand[brandName], nil
}

func newViewServiceForTest() (*ViewService, *fakeBrandRepo, *fakeCategoryRepo, *fakeProjectLister) {
	brands := newFakeBrandRepo()
	categories := newFakeCategoryRepo()
	projects := newFakeProjectLister()
	return NewViewService(brands, categories, projects, zap.NewNop()), brands, categories, projects
}

func TestGetBrandViewMatchesProjectsByName(t *testing.T) {
	svc, brands, _, projects := newViewServiceForTest()
	ctx := context.Background()

	brands.brands["b1"] = &catalog.VehicleBrand{
		ID:      "b1",
		Name:    "MAN",
		Slug:    "man",
		Models:  `[{"name":"TGM","years":"2007-2024"}]`,
		Gallery: `["a.jpg","b.jpg"]`,
	}
	projects.byBrand["MAN"] = []project.Project{{ID: "p1", VehicleBrand: "MAN TGM"}}

	view, err := svc.GetBrandView(ctx, "man")
	if err != nil {
		t.Fatalf("GetBrandView: %v", err)
	}

	if projects.lastBrandName != "MAN" {
		t.Errorf("projects queried by %q, want brand name", projects.lastBrandName)
	}
	if projects.lastLimit != 6 {
		t.Errorf("limit = %d, want 6", projects.lastLimit)
	}
	if len(view.Projects) != 1 {
		t.Fatalf("projects = %d, want 1", len(view.Projects))
	}
	if len(view.Models) != 1 || view.Models[0].Name != "TGM" {
		t.Errorf("models = %+v, want parsed TGM entry", view.Models)
	}
	if len(view.Gallery) != 2 {
		t.Errorf("gallery = %v, want 2 entries", view.Gallery)
	}
	if view.Categories == nil {
		t.Error("categories is nil, want empty slice for unlinked brand")
	}
}

func TestGetBrandViewBadModelsDocument(t *testing.T) {
	svc, brands, _, _ := newViewServiceForTest()

	brands.brands["b1"] = &catalog.VehicleBrand{
		ID:      "b1",
		Name:    "DAF",
		Slug:    "daf",
		Models:  "{not json",
		Gallery: "[]",
	}

	if _, err := svc.GetBrandView(context.Background(), "daf"); err == nil {
		t.Fatal("expected error for malformed models document")
	}
}

func TestGetBrandViewUnknownSlug(t *testing.T) {
	svc, _, _, _ := newViewServiceForTest()

	_, err := svc.GetBrandView(context.Background(), "nope")
	if !xerrors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestGetCategoryViewUsesForeignKey(t *testing.T) {
	svc, _, categories, projects := newViewServiceForTest()
	ctx := context.Background()

	categories.categories["c1"] = &catalog.Category{
		ID:             "c1",
		Name:           "Półki do kabin",
		Slug:           "polki-do-kabin",
		Features:       `["Półki górne"]`,
		Benefits:       "[]",
		Specifications: `[{"label":"Materiał","value":"Aluminium"}]`,
		Gallery:        "[]",
	}
	projects.byCategory["c1"] = []project.Project{{ID: "p1"}, {ID: "p2"}}

	view, err := svc.GetCategoryView(ctx, "polki-do-kabin")
	if err != nil {
		t.Fatalf("GetCategoryView: %v", err)
	}

	if projects.lastCategoryID != "c1" {
		t.Errorf("projects queried by category %q, want c1", projects.lastCategoryID)
	}
	if len(view.Projects) != 2 {
		t.Errorf("projects = %d, want 2", len(view.Projects))
	}
	if len(view.Features) != 1 || view.Features[0] != "Półki górne" {
		t.Errorf("features = %v, want parsed list", view.Features)
	}
	if len(view.Specifications) != 1 || view.Specifications[0].Label != "Materiał" {
		t.Errorf("specifications = %+v, want parsed entry", view.Specifications)
	}
	if view.VehicleBrands == nil {
		t.Error("vehicleBrands is nil, want empty slice for unlinked category")
	}
}

func TestListPublicProjectsUnknownCategory(t *testing.T) {
	svc, _, _, _ := newViewServiceForTest()

	got, err := svc.ListPublicProjects(context.Background(), &project.ListFilters{CategorySlug: "stale-link"})
	if err != nil {
		t.Fatalf("ListPublicProjects: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("projects = %v, want empty non-nil slice", got)
	}
}

func TestListPublicProjectsFeatured(t *testing.T) {
	svc, _, _, projects := newViewServiceForTest()
	projects.featured = []project.Project{{ID: "p1", Featured: true}}

	got, err := svc.ListPublicProjects(context.Background(), &project.ListFilters{Featured: true, Limit: 3})
	if err != nil {
		t.Fatalf("ListPublicProjects: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("projects = %d, want 1", len(got))
	}
	if projects.lastLimit != 3 {
		t.Errorf("limit = %d, want 3", projects.lastLimit)
	}
}
