package data

import (
	"io"

	"github.com/goccy/go-yaml"
)

// Manifest records the axes built by one batch run.
type Manifest struct {
	RunID   string          `yaml:"runId"`
	Project string          `yaml:"project,omitempty"`
	Axes    []ManifestEntry `yaml:"axes"`
}

type ManifestEntry struct {
	Field      string   `yaml:"field"`
	Kind       string   `yaml:"kind"`
	Expression string   `yaml:"expression"`
	Warnings   []string `yaml:"warnings,omitempty"`
}

// WriteManifest writes m as YAML and returns the number of bytes written.
func WriteManifest(w io.Writer, m Manifest) (int, error) {
	b, err := yaml.Marshal(m)
	if err != nil {
		return 0, err
	}
	return w.Write(b)
}

func ReadManifest(r io.Reader) (*Manifest, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	m := Manifest{}
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
