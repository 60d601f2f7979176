// Package core holds the domain of the registry: the Person record, the error
// taxonomy and the Record Store shared by every front end.
package core

import (
	"encoding/json"
	"strings"
)

// Person is the only entity of the domain.
// It is identified by Control, which is unique across the store.
type Person struct {
	Name      string `json:"name" yaml:"name"`
	Control   string `json:"control" yaml:"control"`
	Specialty string `json:"specialty" yaml:"specialty"`
}

// NewPerson builds a Person from raw input, trimming every field.
func NewPerson(name, control, specialty string) Person {
	return Person{
		Name:      strings.TrimSpace(name),
		Control:   strings.TrimSpace(control),
		Specialty: strings.TrimSpace(specialty),
	}
}

// Complete reports whether all three fields are non-empty.
func (p Person) Complete() bool {
	return p.Name != "" && p.Control != "" && p.Specialty != ""
}

// Matches reports whether the lowercased query is a substring of any field.
// The query must already be lowercased.
func (p Person) Matches(query string) bool {
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Control), query) ||
		strings.Contains(strings.ToLower(p.Specialty), query)
}

// UnmarshalJSON accepts the canonical keys and the legacy "nombre" and
// "especialidad" keys written by earlier versions of the snapshot file.
func (p *Person) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name         *string `json:"name"`
		Nombre       *string `json:"nombre"`
		Control      string  `json:"control"`
		Specialty    *string `json:"specialty"`
		Especialidad *string `json:"especialidad"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = Person{Control: raw.Control}
	switch {
	case raw.Name != nil:
		p.Name = *raw.Name
	case raw.Nombre != nil:
		p.Name = *raw.Nombre
	}
	switch {
	case raw.Specialty != nil:
		p.Specialty = *raw.Specialty
	case raw.Especialidad != nil:
		p.Specialty = *raw.Especialidad
	}
	return nil
}
