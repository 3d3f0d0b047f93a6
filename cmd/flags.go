package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/localvec/internal/errors"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// OutputFlags holds the output flag shared by commands that can print
// structured results.
type OutputFlags struct {
	Format string
}

// AddOutputFlags registers --output/-o on flags.
func AddOutputFlags(flags *pflag.FlagSet) *OutputFlags {
	f := &OutputFlags{}
	flags.StringVarP(&f.Format, "output", "o", formatText, "Output format (text|json|yaml)")
	return f
}

// Validate rejects unknown formats.
func (f *OutputFlags) Validate() error {
	switch f.Format {
	case formatText, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s (supported: text, json, yaml)", f.Format)
	}
}

// Structured reports whether the format is json or yaml.
func (f *OutputFlags) Structured() bool {
	return f.Format == formatJSON || f.Format == formatYAML
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, format string, v interface{}) error {
	switch format {
	case formatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case formatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return errors.NewInternalError(errors.ErrCodeInternalError,
			fmt.Sprintf("format %s is not structured", format), nil)
	}
}
