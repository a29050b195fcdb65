// Package envfile provides the declarative environment file loader.
package envfile

import (
	"fmt"
	"os"

	"go.trai.ch/denv/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// pipKey is the recognized secondary-ecosystem mapping key inside the
// dependencies list.
const pipKey = "pip"

// Loader implements ports.EnvFileLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses the declarative environment file at path. The
// dependencies list is partitioned into conda constraint strings and the pip
// block's constraint strings, preserving declaration order. Only the first
// mapping element is recognized as a pip block.
func (l *Loader) Load(path string) (*domain.EnvFile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the host
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEnvFileRead.Error()), "envfile", path)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEnvFileRead.Error()), "envfile", path)
	}

	content := &domain.EnvFile{Document: doc}

	if channels, ok := doc["channels"].([]any); ok {
		content.Channels = scalarsToStrings(channels)
	}

	deps, _ := doc["dependencies"].([]any)
	seenMapping := false
	for _, entry := range deps {
		mapping, ok := entry.(map[string]any)
		if !ok {
			content.CondaSpecs = append(content.CondaSpecs, fmt.Sprint(entry))
			continue
		}

		if seenMapping {
			continue
		}
		seenMapping = true

		pip, ok := mapping[pipKey]
		if !ok {
			continue
		}
		list, ok := pip.([]any)
		if !ok {
			err := zerr.With(domain.ErrMalformedSpec, "envfile", path)
			return nil, zerr.With(err, "got", fmt.Sprintf("%T", pip))
		}
		content.PipSpecs = scalarsToStrings(list)
	}

	return content, nil
}

func scalarsToStrings(entries []any) []string {
	res := make([]string, 0, len(entries))
	for _, e := range entries {
		res = append(res, fmt.Sprint(e))
	}
	return res
}
