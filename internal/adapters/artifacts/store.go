// Package artifacts reads and writes the JSON snapshots passed between
// pipeline stages. Snapshots are transient exports for dashboards and
// stage handoff; the audit log remains the system of record.
package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/okian/shelfwatch/internal/domain/model"
)

// Stable artifact file names used across stage boundaries.
const (
	AllPredictionsFile  = "all_predictions.json"
	AcceptedFile        = "accepted_predictions.json"
	UncertainFile       = "uncertain_predictions.json"
	UncertainEventsFile = "uncertain_audit_events.json"
)

// Store persists stage artifacts under a single directory.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir. The directory is created
// lazily on first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir reports the artifact directory.
func (s *Store) Dir() string {
	return s.dir
}

// SaveScenes writes a scene slice snapshot under the given file name.
func (s *Store) SaveScenes(name string, scenes []model.Scene) error {
	if scenes == nil {
		scenes = []model.Scene{}
	}
	return WriteJSON(filepath.Join(s.dir, name), scenes)
}

// LoadScenes reads a scene slice snapshot by file name.
func (s *Store) LoadScenes(name string) ([]model.Scene, error) {
	var scenes []model.Scene
	if err := ReadJSON(filepath.Join(s.dir, name), &scenes); err != nil {
		return nil, err
	}
	return scenes, nil
}

// SaveScene writes the per-scene prediction file for one scene.
func (s *Store) SaveScene(scene model.Scene) error {
	return WriteJSON(filepath.Join(s.dir, scene.SceneID+"_prediction.json"), scene)
}

// SaveEvents writes an audit event snapshot under the given file name.
// This is an export for review tooling, not the append-only log.
func (s *Store) SaveEvents(name string, events []model.AuditEvent) error {
	if events == nil {
		events = []model.AuditEvent{}
	}
	return WriteJSON(filepath.Join(s.dir, name), events)
}

// LoadEvents reads an audit event snapshot by file name.
func (s *Store) LoadEvents(name string) ([]model.AuditEvent, error) {
	var events []model.AuditEvent
	if err := ReadJSON(filepath.Join(s.dir, name), &events); err != nil {
		return nil, err
	}
	return events, nil
}

// WriteJSON marshals v with indentation and replaces the file at path,
// creating parent directories as needed.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	return nil
}

// ReadJSON unmarshals the file at path into v.
func ReadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}
	return nil
}
