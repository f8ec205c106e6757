package service

import (
	"context"
	"errors"
	"sync"

	"homehub/internal/hub"
	"homehub/internal/logger"
	"homehub/internal/models"
	"homehub/internal/repository"

	"github.com/google/uuid"
)

// ErrSceneNotFound signals an unknown scene id to the HTTP layer.
var ErrSceneNotFound = errors.New("scene not found")

// sceneUpdate is the wire shape pushed to every listener on activation.
type sceneUpdate struct {
	Type  string               `json:"type"`
	Scene models.LightingScene `json:"scene"`
}

const sceneUpdateType = "SCENE_UPDATE"

// ScenePatch carries a partial scene update; nil fields stay untouched.
type ScenePatch struct {
	Name        *string `json:"name,omitempty"`
	Color       *string `json:"color,omitempty"`
	Brightness  *int    `json:"brightness,omitempty"`
	Temperature *int    `json:"temperature,omitempty"`
}

// SceneService owns the scene list. The list lives in memory and is
// rewritten to disk wholesale after every mutation; activation fans the
// record out to all currently connected listeners.
type SceneService struct {
	mu     sync.Mutex
	scenes []models.LightingScene

	repo repository.SceneRepo
	hub  *hub.Hub
	log  *logger.Logger
}

func NewSceneService(repo repository.SceneRepo, h *hub.Hub, log *logger.Logger) *SceneService {
	s := &SceneService{repo: repo, hub: h, log: log}

	scenes, err := repo.Load()
	if err != nil && log != nil {
		log.Errorw("scenes_load_failed", "err", err)
	}
	s.scenes = scenes
	return s
}

func (s *SceneService) List(ctx context.Context) []models.LightingScene {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.LightingScene(nil), s.scenes...)
}

func (s *SceneService) Create(ctx context.Context, scene models.LightingScene) (models.LightingScene, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	scene.ID = uuid.NewString()
	s.scenes = append(s.scenes, scene)
	if err := s.repo.Save(s.scenes); err != nil {
		return models.LightingScene{}, err
	}
	return scene, nil
}

func (s *SceneService) Update(ctx context.Context, id string, p ScenePatch) (models.LightingScene, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.scenes {
		if s.scenes[i].ID != id {
			continue
		}
		if p.Name != nil {
			s.scenes[i].Name = *p.Name
		}
		if p.Color != nil {
			s.scenes[i].Color = *p.Color
		}
		if p.Brightness != nil {
			s.scenes[i].Brightness = *p.Brightness
		}
		if p.Temperature != nil {
			s.scenes[i].Temperature = *p.Temperature
		}
		if err := s.repo.Save(s.scenes); err != nil {
			return models.LightingScene{}, err
		}
		return s.scenes[i], nil
	}
	return models.LightingScene{}, ErrSceneNotFound
}

// Delete removes the scene if present. Deleting an unknown id is not an
// error; the endpoint answers 204 either way.
func (s *SceneService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.scenes[:0]
	for _, sc := range s.scenes {
		if sc.ID != id {
			kept = append(kept, sc)
		}
	}
	s.scenes = kept
	return s.repo.Save(s.scenes)
}

// Activate looks the scene up and pushes it to every listener connected
// at call time. Returns the scene and how many listeners got the frame.
// Listeners that connect after Activate returns receive nothing.
func (s *SceneService) Activate(ctx context.Context, id string) (models.LightingScene, int, error) {
	s.mu.Lock()
	var scene *models.LightingScene
	for i := range s.scenes {
		if s.scenes[i].ID == id {
			sc := s.scenes[i]
			scene = &sc
			break
		}
	}
	s.mu.Unlock()

	if scene == nil {
		return models.LightingScene{}, 0, ErrSceneNotFound
	}

	delivered := s.hub.Broadcast(sceneUpdate{Type: sceneUpdateType, Scene: *scene})
	if s.log != nil {
		s.log.Infow("scene_activated", "id", id, "name", scene.Name, "listeners", delivered)
	}
	return *scene, delivered, nil
}
