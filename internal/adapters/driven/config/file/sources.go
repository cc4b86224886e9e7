package file

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lenscout/lenscout-cli/internal/core/domain"
)

// sourcesFile is the YAML layout of a catalog source list:
//
//	sources:
//	  - url: https://lens-db.com/lens-lineup/canon-ef/
//	    mount: Canon EF
type sourcesFile struct {
	Sources []domain.CatalogSource `yaml:"sources"`
}

// LoadSources reads a YAML catalog source list.
func LoadSources(path string) ([]domain.CatalogSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sources file: %w", err)
	}

	var f sourcesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing sources file: %w", err)
	}

	sources := make([]domain.CatalogSource, 0, len(f.Sources))
	for i, src := range f.Sources {
		src.URL = strings.TrimSpace(src.URL)
		src.Mount = strings.TrimSpace(src.Mount)
		if src.URL == "" {
			return nil, fmt.Errorf("source %d: url is required: %w", i+1, domain.ErrInvalidInput)
		}
		sources = append(sources, src)
	}

	if len(sources) == 0 {
		return nil, fmt.Errorf("sources file %s lists no sources: %w", path, domain.ErrInvalidInput)
	}
	return sources, nil
}
