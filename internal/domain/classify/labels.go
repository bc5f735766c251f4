package classify

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Label is the ground-truth annotation for one shelf scene.
type Label struct {
	SceneID      string   `json:"scene_id"`
	ItemsPresent []string `json:"items_present"`
}

// Validate checks the label envelope.
func (l Label) Validate() error {
	if strings.TrimSpace(l.SceneID) == "" {
		return fmt.Errorf("%w: missing scene_id", ErrMalformedLabel)
	}
	if l.ItemsPresent == nil {
		return fmt.Errorf("%w: missing items_present", ErrMalformedLabel)
	}
	return nil
}

// LoadLabels reads every .json label file in dir, in lexical filename
// order so scene ordering is stable across runs.
func LoadLabels(dir string) ([]Label, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read labels dir: %w", err)
	}

	var labels []Label
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read label %s: %w", entry.Name(), err)
		}
		var label Label
		if err := json.Unmarshal(data, &label); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedLabel, entry.Name(), err)
		}
		if err := label.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		labels = append(labels, label)
	}
	if len(labels) == 0 {
		return nil, errors.New("no label files found")
	}
	return labels, nil
}
