// schema pairs a heading with the FDs that hold over it, and checks that
// they agree before any keys are computed.

package candkey

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonlawlor/candkey/att"
)

// Schema is a relation heading and the functional dependencies that hold
// over it.  Schemas should be constructed with NewSchema, ParseSchema or
// LoadSchema, which make sure that every FD only names attributes in the
// heading.
type Schema struct {
	Heading att.Set
	FDs     []FD
}

// NewSchema returns a schema for the heading and FDs, or an error if an FD
// has no determinant or names an attribute which is not in the heading.
func NewSchema(heading att.Set, fds []FD) (*Schema, error) {
	s := &Schema{Heading: att.NewSet(heading...), FDs: fds}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// ParseSchema parses a heading with ParseRelation and FDs with ParseFDs, or
// with ParseWordFDs if words is true, and returns the schema they describe.
func ParseSchema(relation, fds string, words bool) (*Schema, error) {
	heading, err := ParseRelation(relation)
	if err != nil {
		return nil, fmt.Errorf("candkey: relation: %w", err)
	}
	parse := ParseFDs
	if words {
		parse = ParseWordFDs
	}
	deps, err := parse(fds)
	if err != nil {
		return nil, fmt.Errorf("candkey: fds: %w", err)
	}
	return NewSchema(heading, deps)
}

// Validate returns an error if an FD has no determinant or names an
// attribute which is not in the heading.  The error wraps an
// *att.DomainError in the second case.
func (s *Schema) Validate() error {
	for i, fd := range s.FDs {
		if fd.LHS.Len() == 0 {
			return fmt.Errorf("candkey: fd %d (%v): empty determinant", i, fd)
		}
		if fd.RHS.Len() == 0 {
			return fmt.Errorf("candkey: fd %d (%v): empty dependent", i, fd)
		}
		if err := att.EnsureSubDomain(fd.Attributes(), s.Heading); err != nil {
			return fmt.Errorf("candkey: fd %d (%v): %w", i, fd, err)
		}
	}
	return nil
}

// CheckDegree returns a *TooManyAttributesError if the heading has more than
// limit attributes.  A limit of zero or less means there is no limit.
func (s *Schema) CheckDegree(limit int) error {
	if limit > 0 && s.Heading.Len() > limit {
		return &TooManyAttributesError{Limit: limit, Found: s.Heading.Len()}
	}
	return nil
}

// Closure returns the closure of attrs under the schema's FDs.  attrs must be
// a subset of the heading.
func (s *Schema) Closure(attrs att.Set) (att.Set, error) {
	if err := att.EnsureSubDomain(attrs, s.Heading); err != nil {
		return nil, fmt.Errorf("candkey: closure: %w", err)
	}
	return Closure(attrs, s.FDs), nil
}

// Keys returns the candidate keys of the schema, as CandidateKeysContext.
func (s *Schema) Keys(ctx context.Context) (att.CandKeys, error) {
	return CandidateKeysContext(ctx, s.Heading, s.FDs)
}

// schemaYAML is the layout of a schema file:
//
//	relation: [A, B, C, D]
//	fds:
//	  - A-BC
//	  - AC-D
//	words: false
type schemaYAML struct {
	Relation attributeList `yaml:"relation"`
	FDs      []string      `yaml:"fds"`
	Words    bool          `yaml:"words,omitempty"`
}

// attributeList is either a YAML sequence of names, or a string in the
// notation of ParseRelation.
type attributeList []string

func (l *attributeList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		h, err := ParseRelation(value.Value)
		if err != nil {
			return err
		}
		*l = h.Strings()
		return nil
	case yaml.SequenceNode:
		var strs []string
		if err := value.Decode(&strs); err != nil {
			return err
		}
		*l = strs
		return nil
	}
	return fmt.Errorf("candkey: line %d: relation should be a string or a list of names", value.Line)
}

// LoadSchema reads a schema from YAML.
func LoadSchema(r io.Reader) (*Schema, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f schemaYAML
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("candkey: empty schema")
		}
		return nil, fmt.Errorf("candkey: schema: %w", err)
	}

	parse := ParseFDs
	if f.Words {
		parse = ParseWordFDs
	}
	var fds []FD
	for _, str := range f.FDs {
		deps, err := parse(str)
		if err != nil {
			return nil, fmt.Errorf("candkey: schema fds: %w", err)
		}
		fds = append(fds, deps...)
	}
	return NewSchema(att.FromStrings(f.Relation...), fds)
}

// MarshalYAML writes the schema in the layout that LoadSchema reads.
func (s Schema) MarshalYAML() (interface{}, error) {
	f := schemaYAML{
		Relation: s.Heading.Strings(),
		FDs:      make([]string, len(s.FDs)),
		Words:    !s.Heading.Singles(),
	}
	for i, fd := range s.FDs {
		if f.Words {
			// always use the word notation, since String only uses it when
			// the FD itself has long names
			f.FDs[i] = strings.Join(fd.LHS.Strings(), " ") + " -> " + strings.Join(fd.RHS.Strings(), " ")
		} else {
			f.FDs[i] = fd.String()
		}
	}
	return f, nil
}
