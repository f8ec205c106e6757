package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"homehub/internal/models"
)

// SceneFile stores the scene list as a single JSON array on disk. Small
// record volume and a single server process make whole-file rewrites an
// acceptable durability strategy here.
type SceneFile struct {
	path string
}

func NewSceneFile(path string) *SceneFile {
	return &SceneFile{path: path}
}

var _ SceneRepo = (*SceneFile)(nil)

// Load reads the full scene list. An absent or unparsable file is treated
// as an empty list, not an error.
func (r *SceneFile) Load() ([]models.LightingScene, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return []models.LightingScene{}, nil
	}

	var scenes []models.LightingScene
	if err := json.Unmarshal(data, &scenes); err != nil {
		return []models.LightingScene{}, nil
	}
	return scenes, nil
}

// Save rewrites the whole file with the given list.
func (r *SceneFile) Save(scenes []models.LightingScene) error {
	if scenes == nil {
		scenes = []models.LightingScene{}
	}
	data, err := json.MarshalIndent(scenes, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scenes: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write scenes file %q: %w", r.path, err)
	}
	return nil
}
