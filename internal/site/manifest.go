package site

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// ManifestName is the file name of the build manifest within the course
// output directory.
const ManifestName = ".syllabuild-manifest.json"

// Manifest records what one build produced. It is written alongside the
// generated pages so deployments can be traced back to a build.
type Manifest struct {
	BuildID    string         `json:"build_id"`
	Term       string         `json:"term"`
	Course     string         `json:"course"`
	CourseName string         `json:"course_name"`
	BuiltAt    time.Time      `json:"built_at"`
	Pages      []ManifestPage `json:"pages"`
}

// ManifestPage maps one page source to its generated output.
type ManifestPage struct {
	Source string `json:"source"`
	Output string `json:"output"`
}

// NewManifest starts a manifest for a build with a fresh build ID.
func NewManifest(term, course, courseName string) *Manifest {
	return &Manifest{
		BuildID:    uuid.NewString(),
		Term:       term,
		Course:     course,
		CourseName: courseName,
		BuiltAt:    time.Now().UTC(),
	}
}

// AddPage records one generated page.
func (m *Manifest) AddPage(source, output string) {
	m.Pages = append(m.Pages, ManifestPage{Source: source, Output: output})
}

// Write saves the manifest as indented JSON.
func (m *Manifest) Write(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling manifest: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadManifest loads a manifest written by a previous build.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}
