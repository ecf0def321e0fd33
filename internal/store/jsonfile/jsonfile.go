// Package jsonfile reads and writes task records as a single
// human-readable file. Files ending in .yaml or .yml use YAML; anything
// else is JSON.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/worklog/internal/model"
)

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Load reads every task in path. A missing file holds no tasks.
func Load(path string) ([]model.Task, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Task{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var tasks []model.Task
	if isYAML(path) {
		if err := yaml.Unmarshal(b, &tasks); err != nil {
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
		return tasks, nil
	}
	if err := json.Unmarshal(b, &tasks); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return tasks, nil
}

// Save writes tasks to path, replacing its contents.
func Save(path string, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	var (
		b   []byte
		err error
	)
	if isYAML(path) {
		b, err = yaml.Marshal(tasks)
		if err != nil {
			return fmt.Errorf("yaml marshal: %w", err)
		}
	} else {
		b, err = json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
