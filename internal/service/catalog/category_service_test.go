package catalog

import (
	"context"
	"strings"
	"testing"

	"zabudowy-service/internal/domain/catalog"
	xerrors "zabudowy-service/internal/pkg/errors"

	"go.uber.org/zap"
)

type fakeCategoryRepo struct {
	categories    map[string]*catalog.Category
	links         map[string][]string
	projectCounts map[string]int
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories:    make(map[string]*catalog.Category),
		links:         make(map[string][]string),
		projectCounts: make(map[string]int),
	}
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *catalog.Category, brandIDs []string) error {
	c := *category
	f.categories[category.ID] = &c
	f.links[category.ID] = append([]string(nil), brandIDs...)
	return nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, category *catalog.Category, brandIDs []string) error {
	if _, ok := f.categories[category.ID]; !ok {
		return xerrors.ErrNotFound
	}
	c := *category
	f.categories[category.ID] = &c
	f.links[category.ID] = append([]string(nil), brandIDs...)
	return nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.categories[id]; !ok {
		return xerrors.ErrNotFound
	}
	delete(f.categories, id)
	delete(f.links, id)
	return nil
}

func (f *fakeCategoryRepo) FindByID(ctx context.Context, id string) (*catalog.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return c, nil
}

func (f *fakeCategoryRepo) FindBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	for _, c := range f.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, xerrors.ErrNotFound
}

func (f *fakeCategoryRepo) List(ctx context.Context, publishedOnly bool) ([]catalog.Category, error) {
	var out []catalog.Category
	for _, c := range f.categories {
		if publishedOnly && !c.Published {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCategoryRepo) ExistsSlug(ctx context.Context, slug, excludeID string) (bool, error) {
	for _, c := range f.categories {
		if c.Slug == slug && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryRepo) CountProjects(ctx context.Context, categoryID string) (int, error) {
	return f.projectCounts[categoryID], nil
}

func newCategoryServiceForTest() (*CategoryService, *fakeCategoryRepo) {
	repo := newFakeCategoryRepo()
	return NewCategoryService(repo, zap.NewNop()), repo
}

func TestCreateCategoryDefaults(t *testing.T) {
	svc, _ := newCategoryServiceForTest()

	category, err := svc.CreateCategory(context.Background(), &catalog.CategoryRequest{Name: "Półki do kabin"})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	if category.Slug != "polki-do-kabin" {
		t.Errorf("slug = %q, want %q", category.Slug, "polki-do-kabin")
	}
	if category.Color != "#3b82f6" {
		t.Errorf("color = %q, want default blue", category.Color)
	}
	for field, doc := range map[string]string{
		"features":       category.Features,
		"benefits":       category.Benefits,
		"specifications": category.Specifications,
		"gallery":        category.Gallery,
	} {
		if doc != "[]" {
			t.Errorf("%s = %q, want empty document", field, doc)
		}
	}
}

func TestCategorySlugConflictChecksBeforeWrite(t *testing.T) {
	svc, repo := newCategoryServiceForTest()
	ctx := context.Background()

	if _, err := svc.CreateCategory(ctx, &catalog.CategoryRequest{Name: "Podesty", Slug: "podesty"}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := svc.CreateCategory(ctx, &catalog.CategoryRequest{Name: "Podesty i stopnie", Slug: "podesty"})
	if !xerrors.Is(err, xerrors.ErrConflict) {
		t.Fatalf("err = %v, want conflict", err)
	}
	if len(repo.categories) != 1 {
		t.Errorf("categories stored = %d, want 1 (conflict must not write)", len(repo.categories))
	}
}

func TestDeleteCategoryBlockedByProjects(t *testing.T) {
	svc, repo := newCategoryServiceForTest()
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, &catalog.CategoryRequest{Name: "Wozy strażackie"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	repo.projectCounts[created.ID] = 3

	err = svc.DeleteCategory(ctx, created.ID)
	if !xerrors.Is(err, xerrors.ErrConflict) {
		t.Fatalf("err = %v, want conflict", err)
	}
	if !strings.Contains(err.Error(), "3") {
		t.Errorf("error %q should name the project count", err.Error())
	}
	if _, ok := repo.categories[created.ID]; !ok {
		t.Error("category was deleted despite dependent projects")
	}
}

func TestDeleteEmptyCategory(t *testing.T) {
	svc, repo := newCategoryServiceForTest()
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, &catalog.CategoryRequest{Name: "Oświetlenie LED"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.DeleteCategory(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := repo.categories[created.ID]; ok {
		t.Error("category still present after delete")
	}
}
