package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	numformat "github.com/anacrolix/num-format"
	apperrors "github.com/anacrolix/num-format/internal/errors"
)

// FileConfig is the schema of the optional YAML config file:
//
//	default_locale: en
//	formats:
//	  accounting:
//	    separator: " "
//	    decimal: ","
//	    grouping: standard
type FileConfig struct {
	DefaultLocale string                `yaml:"default_locale"`
	Formats       map[string]FormatSpec `yaml:"formats"`
}

// FormatSpec describes one named custom format. Pointer fields distinguish
// an absent key, which keeps the builder default, from an explicit empty
// string, which is a meaningful separator or sign value.
type FormatSpec struct {
	Decimal   *string `yaml:"decimal"`
	Separator *string `yaml:"separator"`
	MinusSign *string `yaml:"minus_sign"`
	PlusSign  *string `yaml:"plus_sign"`
	Infinity  *string `yaml:"infinity"`
	NaN       *string `yaml:"nan"`
	Grouping  *string `yaml:"grouping"`
}

// LoadFile reads and parses the YAML config file at path.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.WrapError(err, "reading config %s", path)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, apperrors.WrapError(err, "parsing config %s", path)
	}
	return &fc, nil
}

// Build assembles the spec through the checked format builder, so an
// invalid symbol in the file fails with the same error a caller of the
// library would get.
func (s FormatSpec) Build() (*numformat.CustomFormat, error) {
	b := numformat.NewCustomFormatBuilder()
	if s.Decimal != nil {
		b.Decimal(*s.Decimal)
	}
	if s.Separator != nil {
		b.Separator(*s.Separator)
	}
	if s.MinusSign != nil {
		b.MinusSign(*s.MinusSign)
	}
	if s.PlusSign != nil {
		b.PlusSign(*s.PlusSign)
	}
	if s.Infinity != nil {
		b.Infinity(*s.Infinity)
	}
	if s.NaN != nil {
		b.NaN(*s.NaN)
	}
	if s.Grouping != nil {
		g, err := numformat.ParseGrouping(*s.Grouping)
		if err != nil {
			return nil, err
		}
		b.Grouping(g)
	}
	return b.Build()
}

// BuildFormats constructs every named format in the file, failing on the
// first invalid entry.
func (fc *FileConfig) BuildFormats() (map[string]*numformat.CustomFormat, error) {
	if len(fc.Formats) == 0 {
		return nil, nil
	}
	out := make(map[string]*numformat.CustomFormat, len(fc.Formats))
	for name, spec := range fc.Formats {
		f, err := spec.Build()
		if err != nil {
			return nil, fmt.Errorf("format %q: %w", name, err)
		}
		out[name] = f
	}
	return out, nil
}
