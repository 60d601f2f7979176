package export

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/registro/pkg/core"
)

// --- JSON ---

type jsonEncoder struct{}

func (jsonEncoder) Encode(w io.Writer, people []core.Person) error {
	if people == nil {
		people = []core.Person{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	return encoder.Encode(people)
}

func (jsonEncoder) ContentType() string { return "application/json" }
func (jsonEncoder) Extension() string   { return ".json" }

// --- XML ---

// XMLHeader precedes every XML export.
const XMLHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// The element names match the files produced by earlier versions.
type xmlPerson struct {
	XMLName   xml.Name `xml:"persona"`
	Name      string   `xml:"nombre"`
	Control   string   `xml:"control"`
	Specialty string   `xml:"especialidad"`
}

type xmlDocument struct {
	XMLName xml.Name `xml:"personas"`
	People  []xmlPerson
}

type xmlEncoder struct{}

func (xmlEncoder) Encode(w io.Writer, people []core.Person) error {
	doc := xmlDocument{People: make([]xmlPerson, len(people))}
	for i, p := range people {
		doc.People[i] = xmlPerson{Name: p.Name, Control: p.Control, Specialty: p.Specialty}
	}
	if _, err := io.WriteString(w, XMLHeader); err != nil {
		return err
	}
	if err := xml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("invalid xml: %w", err)
	}
	return nil
}

func (xmlEncoder) ContentType() string { return "application/xml" }
func (xmlEncoder) Extension() string   { return ".xml" }

// --- YAML ---

type yamlEncoder struct{}

func (yamlEncoder) Encode(w io.Writer, people []core.Person) error {
	if people == nil {
		people = []core.Person{}
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(people); err != nil {
		return fmt.Errorf("invalid yaml: %w", err)
	}
	return encoder.Close()
}

func (yamlEncoder) ContentType() string { return "application/yaml" }
func (yamlEncoder) Extension() string   { return ".yaml" }

// --- CSV ---

var csvHeader = []string{"name", "control", "specialty"}

type csvEncoder struct{}

func (csvEncoder) Encode(w io.Writer, people []core.Person) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, p := range people {
		if err := cw.Write([]string{p.Name, p.Control, p.Specialty}); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func (csvEncoder) ContentType() string { return "text/csv" }
func (csvEncoder) Extension() string   { return ".csv" }
