// Package artifacts handles storage and retrieval of per-run extraction
// artifacts on disk.
package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/smartsched/syllascan/models"
	"github.com/smartsched/syllascan/pkg/storage"
)

const (
	DefaultBaseDir = "syllascan-results"

	EventsYAMLFile  = "events.yaml"
	EventsJSONFile  = "events.json"
	DocumentTxtFile = "document.txt"
)

// Manager handles storage and retrieval of extraction artifacts.
type Manager struct {
	baseDir string
	store   storage.Storage
}

// NewManager creates a new artifact Manager instance.
// It ensures the base directory exists.
func NewManager(baseDir string) (*Manager, error) {
	if baseDir == "" {
		baseDir = DefaultBaseDir
	}
	var store storage.Storage
	if err := store.EnsureDir(baseDir); err != nil {
		return nil, fmt.Errorf("failed to create artifact base directory: %w", err)
	}
	return &Manager{baseDir: baseDir, store: store}, nil
}

// BaseDir returns the manager's base directory.
func (m *Manager) BaseDir() string {
	return m.baseDir
}

// RunDir returns the directory for a specific run ID.
// Example: syllascan-results/42/
func (m *Manager) RunDir(runID int64) string {
	return filepath.Join(m.baseDir, fmt.Sprintf("%d", runID))
}

var invalidFilenameChar = regexp.MustCompile(`[^a-zA-Z0-9\-_]+`)

// sanitizeSlug creates a filesystem-safe slug from a document name.
func sanitizeSlug(name string) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	safe := invalidFilenameChar.ReplaceAllString(base, "_")
	safe = strings.Trim(safe, "_")
	if safe == "" {
		return "document"
	}
	return safe
}

// WriteRunArtifacts persists the extraction result and source text for a run.
// It returns the run directory.
func (m *Manager) WriteRunArtifacts(runID int64, result *models.ProcessResult, text string) (string, error) {
	dir := m.RunDir(runID)
	if err := m.store.EnsureDir(dir); err != nil {
		return "", err
	}

	yamlData, err := yaml.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to marshal result as YAML: %w", err)
	}
	if err := m.store.SaveFile(filepath.Join(dir, EventsYAMLFile), yamlData); err != nil {
		return "", err
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result as JSON: %w", err)
	}
	if err := m.store.SaveFile(filepath.Join(dir, EventsJSONFile), jsonData); err != nil {
		return "", err
	}

	if text != "" {
		if err := m.store.SaveFile(filepath.Join(dir, DocumentTxtFile), []byte(text)); err != nil {
			return "", err
		}
	}
	return dir, nil
}

// WriteCalendar stores a serialized iCalendar file for a run and returns its path.
func (m *Manager) WriteCalendar(runID int64, docName, ical string) (string, error) {
	dir := m.RunDir(runID)
	if err := m.store.EnsureDir(dir); err != nil {
		return "", err
	}
	path := filepath.Join(dir, sanitizeSlug(docName)+".ics")
	if err := m.store.SaveFile(path, []byte(ical)); err != nil {
		return "", err
	}
	return path, nil
}

// ReadRunText loads the stored source text for a run, if present.
func (m *Manager) ReadRunText(runID int64) (string, error) {
	path := filepath.Join(m.RunDir(runID), DocumentTxtFile)
	if !m.store.HasFile(path) {
		return "", os.ErrNotExist
	}
	data, err := m.store.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
