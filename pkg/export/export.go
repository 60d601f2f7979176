// Package export renders the record set in the formats offered to users.
//
// The set of available formats is resolved once, when the Set is built.
// Asking for a format outside that set fails with core.ErrUnsupportedFormat.
package export

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/registro/pkg/adapters/fs"
	"github.com/aretw0/registro/pkg/core"
)

// Format names an export encoding.
type Format string

const (
	JSON Format = "json"
	XML  Format = "xml"
	YAML Format = "yaml"
	CSV  Format = "csv"
)

// Encoder writes a record set in one format.
type Encoder interface {
	Encode(w io.Writer, people []core.Person) error
	ContentType() string
	Extension() string
}

// Option configures a Set.
type Option func(*options)

type options struct {
	yaml    bool
	formats []Format
}

// WithYAML enables or disables the YAML encoder. Enabled by default.
func WithYAML(enabled bool) Option {
	return func(o *options) {
		o.yaml = enabled
	}
}

// WithFormats restricts the Set to the given formats.
func WithFormats(formats ...Format) Option {
	return func(o *options) {
		o.formats = formats
	}
}

// Set is the capability set of encoders available to a process.
type Set struct {
	encoders map[Format]Encoder
	order    []Format
}

// New resolves the available encoders.
func New(opts ...Option) *Set {
	o := options{
		yaml:    true,
		formats: []Format{JSON, XML, YAML, CSV},
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Set{encoders: make(map[Format]Encoder)}
	for _, f := range o.formats {
		var enc Encoder
		switch f {
		case JSON:
			enc = jsonEncoder{}
		case XML:
			enc = xmlEncoder{}
		case YAML:
			if !o.yaml {
				continue
			}
			enc = yamlEncoder{}
		case CSV:
			enc = csvEncoder{}
		default:
			continue
		}
		if _, dup := s.encoders[f]; dup {
			continue
		}
		s.encoders[f] = enc
		s.order = append(s.order, f)
	}
	return s
}

// Formats lists the enabled formats in resolution order.
func (s *Set) Formats() []Format {
	return append([]Format(nil), s.order...)
}

// Supports reports whether the format is enabled.
func (s *Set) Supports(name string) bool {
	_, err := s.Lookup(name)
	return err == nil
}

// Lookup returns the encoder for a format name (case-insensitive).
func (s *Set) Lookup(name string) (Encoder, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	enc, ok := s.encoders[f]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", core.ErrUnsupportedFormat, name, s.available())
	}
	return enc, nil
}

// Encode writes people to w in the named format.
func (s *Set) Encode(w io.Writer, name string, people []core.Person) error {
	enc, err := s.Lookup(name)
	if err != nil {
		return err
	}
	return enc.Encode(w, people)
}

// WriteFile renders people in the named format and atomically replaces path.
func (s *Set) WriteFile(path, name string, people []core.Person) error {
	enc, err := s.Lookup(name)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := enc.Encode(&buf, people); err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	return fs.WriteFileAtomic(path, buf.Bytes(), 0644)
}

func (s *Set) available() string {
	names := make([]string, len(s.order))
	for i, f := range s.order {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
