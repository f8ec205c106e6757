package service

import (
	"context"
	"errors"
	"testing"

	"homehub/internal/hub"
	"homehub/internal/models"
)

type fakeSceneRepo struct {
	scenes  []models.LightingScene
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeSceneRepo) Load() ([]models.LightingScene, error) {
	return append([]models.LightingScene(nil), f.scenes...), f.loadErr
}

func (f *fakeSceneRepo) Save(scenes []models.LightingScene) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.scenes = append([]models.LightingScene(nil), scenes...)
	return nil
}

func TestSceneServiceCreateAssignsIDAndPersists(t *testing.T) {
	t.Parallel()
	repo := &fakeSceneRepo{}
	s := NewSceneService(repo, hub.New(nil), nil)

	created, err := s.Create(context.Background(), models.LightingScene{Name: "Evening", Brightness: 40})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if repo.saves != 1 || len(repo.scenes) != 1 {
		t.Fatalf("persisted: saves=%d scenes=%d", repo.saves, len(repo.scenes))
	}
}

func TestSceneServiceCreateSurfacesSaveError(t *testing.T) {
	t.Parallel()
	repo := &fakeSceneRepo{saveErr: errors.New("disk full")}
	s := NewSceneService(repo, hub.New(nil), nil)

	if _, err := s.Create(context.Background(), models.LightingScene{Name: "x"}); err == nil {
		t.Fatal("expected save error to surface")
	}
}

func TestSceneServiceUpdateMergesPatch(t *testing.T) {
	t.Parallel()
	repo := &fakeSceneRepo{scenes: []models.LightingScene{
		{ID: "s1", Name: "Evening", Color: "#112233", Brightness: 40, Temperature: 2700},
	}}
	s := NewSceneService(repo, hub.New(nil), nil)

	brightness := 80
	updated, err := s.Update(context.Background(), "s1", ScenePatch{Brightness: &brightness})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Brightness != 80 {
		t.Fatalf("brightness: %d", updated.Brightness)
	}
	if updated.Name != "Evening" || updated.Color != "#112233" || updated.Temperature != 2700 {
		t.Fatalf("untouched fields changed: %+v", updated)
	}

	if _, err := s.Update(context.Background(), "missing", ScenePatch{}); !errors.Is(err, ErrSceneNotFound) {
		t.Fatalf("unknown id: got %v, want ErrSceneNotFound", err)
	}
}

func TestSceneServiceDeleteIsIdempotent(t *testing.T) {
	t.Parallel()
	repo := &fakeSceneRepo{scenes: []models.LightingScene{{ID: "s1"}}}
	s := NewSceneService(repo, hub.New(nil), nil)

	if err := s.Delete(context.Background(), "s1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete(context.Background(), "s1"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if len(s.List(context.Background())) != 0 {
		t.Fatal("scene still listed")
	}
}

func TestSceneServiceActivate(t *testing.T) {
	t.Parallel()
	repo := &fakeSceneRepo{scenes: []models.LightingScene{{ID: "s1", Name: "Movie"}}}
	s := NewSceneService(repo, hub.New(nil), nil)

	// no listeners connected: activation still succeeds
	scene, delivered, err := s.Activate(context.Background(), "s1")
	if err != nil {
		t.Fatalf("activate: %v", err)
	}
	if scene.Name != "Movie" || delivered != 0 {
		t.Fatalf("scene=%+v delivered=%d", scene, delivered)
	}

	if _, _, err := s.Activate(context.Background(), "missing"); !errors.Is(err, ErrSceneNotFound) {
		t.Fatalf("unknown id: got %v", err)
	}
}

func TestSceneServiceLoadFailureStartsEmpty(t *testing.T) {
	t.Parallel()
	repo := &fakeSceneRepo{loadErr: errors.New("corrupt")}
	s := NewSceneService(repo, hub.New(nil), nil)

	if got := s.List(context.Background()); len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}
