package memory

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/doodlesbykumbi/producer-console/pkg/model"
)

type seedFile struct {
	Producers []model.Producer `yaml:"producers"`
}

// ParseSeed reads producers from a YAML document of the form
//
//	producers:
//	  - tenantId: tenant-1
//	    name: Ana Paula Santos
//	    type: Individual
//	    status: In Review
func ParseSeed(r io.Reader) ([]model.Producer, error) {
	var doc seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	return doc.Producers, nil
}

// LoadSeed seeds s from the YAML file at path.
func (s *Store) LoadSeed(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()

	producers, err := ParseSeed(f)
	if err != nil {
		return 0, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	if err := s.Seed(producers...); err != nil {
		return 0, err
	}
	return len(producers), nil
}
