package boxtable

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LayoutFile is the YAML form of a layout:
//
//	line_numbers: true
//	border: rounded
//	columns:
//	  - {width: 10, title: Name, align: left}
//	  - {auto: "     Score"}
type LayoutFile struct {
	LineNumbers bool         `yaml:"line_numbers"`
	Border      BorderStyle  `yaml:"border"`
	Columns     []ColumnSpec `yaml:"columns"`
}

// ColumnSpec is one column entry. Auto, when set, takes precedence over the
// explicit fields and follows [Layout.AppendAuto].
type ColumnSpec struct {
	Width int       `yaml:"width,omitempty"`
	Title string    `yaml:"title,omitempty"`
	Align Alignment `yaml:"align,omitempty"`
	Auto  string    `yaml:"auto,omitempty"`
}

// ParseLayout decodes a YAML layout file and validates it.
func ParseLayout(data []byte) (*LayoutFile, error) {
	return ReadLayout(bytes.NewReader(data))
}

// ReadLayout decodes a YAML layout file from r and validates it.
func ReadLayout(r io.Reader) (*LayoutFile, error) {
	var f LayoutFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidLayout)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate reports the first column that Build would reject.
func (f *LayoutFile) Validate() error {
	if len(f.Columns) == 0 {
		return fmt.Errorf("%w: no columns", ErrInvalidLayout)
	}
	for i, c := range f.Columns {
		if c.Auto != "" {
			continue
		}
		if c.Width <= 0 {
			return fmt.Errorf("%w: column %d: width must be positive, got %d", ErrInvalidLayout, i+1, c.Width)
		}
	}
	return nil
}

// Build returns the sealed layout described by f.
func (f *LayoutFile) Build() (*Layout, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	l := NewLayout()
	for _, c := range f.Columns {
		if c.Auto != "" {
			l.AppendAuto(c.Auto)
			continue
		}
		l.Append(c.Width, c.Title, c.Align)
	}
	return l.Seal(f.LineNumbers), nil
}

// Renderer builds the layout and attaches it with the file's border style.
func (f *LayoutFile) Renderer(opts ...Option) (*Renderer, error) {
	l, err := f.Build()
	if err != nil {
		return nil, err
	}
	return NewRenderer(l, append([]Option{WithBorder(f.Border)}, opts...)...), nil
}

// Marshal encodes f as YAML.
func (f *LayoutFile) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
