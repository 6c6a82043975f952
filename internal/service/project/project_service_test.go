package project

import (
	"context"
	"testing"

	"zabudowy-service/internal/domain/project"
	xerrors "zabudowy-service/internal/pkg/errors"

	"go.uber.org/zap"
)

type fakeProjectRepo struct {
	projects map[string]*project.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]*project.Project)}
}

func (f *fakeProjectRepo) Create(ctx context.Context, p *project.Project) error {
	cp := *p
	f.projects[p.ID] = &cp
	return nil
}

func (f *fakeProjectRepo) Update(ctx context.Context, p *project.Project) error {
	existing, ok := f.projects[p.ID]
	if !ok {
		return xerrors.ErrNotFound
	}
	cp := *p
	cp.AuthorID = existing.AuthorID
	f.projects[p.ID] = &cp
	return nil
}

func (f *fakeProjectRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.projects[id]; !ok {
		return xerrors.ErrNotFound
	}
	delete(f.projects, id)
	return nil
}

func (f *fakeProjectRepo) FindByID(ctx context.Context, id string) (*project.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return p, nil
}

func (f *fakeProjectRepo) FindBySlug(ctx context.Context, slug string) (*project.Project, error) {
	for _, p := range f.projects {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, xerrors.ErrNotFound
}

func (f *fakeProjectRepo) ListAll(ctx context.Context) ([]project.Project, error) {
	var out []project.Project
	for _, p := range f.projects {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProjectRepo) ListPublished(ctx context.Context, categoryID string, limit int) ([]project.Project, error) {
	var out []project.Project
	for _, p := range f.projects {
		if !p.Published {
			continue
		}
		if categoryID != "" && p.CategoryID != categoryID {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProjectRepo) ListFeatured(ctx context.Context, limit int) ([]project.Project, error) {
	var out []project.Project
	for _, p := range f.projects {
		if p.Published && p.Featured {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProjectRepo) ExistsSlug(ctx context.Context, slug, excludeID string) (bool, error) {
	for _, p := range f.projects {
		if p.Slug == slug && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func newServiceForTest() (*Service, *fakeProjectRepo) {
	repo := newFakeProjectRepo()
	return NewService(repo, zap.NewNop()), repo
}

func TestCreateProjectDefaults(t *testing.T) {
	svc, _ := newServiceForTest()

	p, err := svc.CreateProject(context.Background(), "admin-1", &project.Request{
		Title: "MAN TGM dla OSP Wieliczka",
	})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	if p.Slug != "man-tgm-dla-osp-wieliczka" {
		t.Errorf("slug = %q, want generated from title", p.Slug)
	}
	if p.Published {
		t.Error("published = true, want draft by default")
	}
	if p.Images == nil {
		t.Error("images is nil, want empty slice")
	}
	if p.AuthorID != "admin-1" {
		t.Errorf("authorId = %q, want admin-1", p.AuthorID)
	}
}

func TestCreateProjectSlugConflict(t *testing.T) {
	svc, _ := newServiceForTest()
	ctx := context.Background()

	if _, err := svc.CreateProject(ctx, "admin-1", &project.Request{Title: "Zabudowa", Slug: "zabudowa"}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := svc.CreateProject(ctx, "admin-1", &project.Request{Title: "Inna zabudowa", Slug: "zabudowa"})
	if !xerrors.Is(err, xerrors.ErrConflict) {
		t.Fatalf("err = %v, want conflict", err)
	}
}

func TestUpdateProjectKeepsAuthor(t *testing.T) {
	svc, repo := newServiceForTest()
	ctx := context.Background()

	created, err := svc.CreateProject(ctx, "admin-1", &project.Request{Title: "Scania P280", Slug: "scania-p280"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.UpdateProject(ctx, created.ID, &project.Request{
		Title:     "Scania P280 PSP Kraków",
		Slug:      "scania-p280",
		Published: true,
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	if got := repo.projects[created.ID].AuthorID; got != "admin-1" {
		t.Errorf("authorId after update = %q, want admin-1", got)
	}
}

func TestGetPublishedProjectHidesDrafts(t *testing.T) {
	svc, repo := newServiceForTest()
	ctx := context.Background()

	repo.projects["p1"] = &project.Project{ID: "p1", Slug: "draft", Published: false}
	repo.projects["p2"] = &project.Project{ID: "p2", Slug: "live", Published: true}

	if _, err := svc.GetPublishedProject(ctx, "draft"); !xerrors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("draft err = %v, want not found", err)
	}

	p, err := svc.GetPublishedProject(ctx, "live")
	if err != nil {
		t.Fatalf("live: %v", err)
	}
	if p.ID != "p2" {
		t.Errorf("got %q, want p2", p.ID)
	}
}
