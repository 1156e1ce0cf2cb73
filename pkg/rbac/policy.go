package rbac

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Policy is the YAML document describing a role assignment table.
type Policy struct {
	Roles map[Role][]Permission `yaml:"roles"`
}

// ParseTable decodes a YAML policy. Unknown permission tokens and unknown
// top-level keys are errors.
func ParseTable(r io.Reader) (*Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Policy
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("policy is empty")
		}
		return nil, fmt.Errorf("failed to parse policy: %w", err)
	}
	for role := range p.Roles {
		if role == "" {
			return nil, fmt.Errorf("policy declares a role with an empty name")
		}
	}
	return NewTable(p.Roles), nil
}

// LoadTable reads a policy file from disk.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file %s: %w", path, err)
	}
	table, err := ParseTable(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// Policy returns the table as a serialisable document.
func (t *Table) Policy() Policy {
	p := Policy{Roles: make(map[Role][]Permission)}
	for _, role := range t.Roles() {
		p.Roles[role] = t.PermissionsOf(role).Slice()
	}
	return p
}

// MarshalYAML renders the table as a policy document.
func (t *Table) MarshalYAML() (interface{}, error) {
	return t.Policy(), nil
}
