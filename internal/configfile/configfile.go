// Package configfile reads service configuration files, choosing a decoder
// from the file extension: .json files are decoded as JSON and .yml or .yaml
// files as YAML.
package configfile

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/conneroisu/localvec/internal/errors"
)

// ErrUnsupportedExtension is returned for files no decoder handles.
var ErrUnsupportedExtension = stderrors.New("unsupported file extension")

// ServiceConfig is the configuration of a deployed service.
type ServiceConfig struct {
	Port        uint16 `json:"port" yaml:"port"`
	BaseURL     string `json:"base_url" yaml:"base_url"`
	S3Path      string `json:"s3_path" yaml:"s3_path"`
	DatabaseURL string `json:"database_url" yaml:"database_url"`
}

// Decoder turns raw file contents into a ServiceConfig.
type Decoder interface {
	Decode(data []byte) (*ServiceConfig, error)
	Format() string
}

// JSONDecoder decodes JSON documents. Unknown fields are rejected.
type JSONDecoder struct{}

// Decode implements Decoder.
func (JSONDecoder) Decode(data []byte) (*ServiceConfig, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var cfg ServiceConfig
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeDecodeFailed, "cannot decode JSON", err)
	}
	if dec.More() {
		return nil, errors.NewConfigError(errors.ErrCodeDecodeFailed, "cannot decode JSON",
			stderrors.New("trailing data after document"))
	}
	return &cfg, nil
}

// Format implements Decoder.
func (JSONDecoder) Format() string { return "json" }

// YAMLDecoder decodes YAML documents. Unknown fields are rejected.
type YAMLDecoder struct{}

// Decode implements Decoder.
func (YAMLDecoder) Decode(data []byte) (*ServiceConfig, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg ServiceConfig
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeDecodeFailed, "cannot decode YAML", err)
	}
	return &cfg, nil
}

// Format implements Decoder.
func (YAMLDecoder) Format() string { return "yaml" }

// DecoderFor picks a decoder from the extension of path.
func DecoderFor(path string) (Decoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSONDecoder{}, nil
	case ".yml", ".yaml":
		return YAMLDecoder{}, nil
	default:
		return nil, errors.NewValidationError(errors.ErrCodeUnsupportedType,
			fmt.Sprintf("no decoder for extension %q", filepath.Ext(path))).
			WithPath(path)
	}
}

// Read loads and decodes the file at path.
func Read(path string) (*ServiceConfig, error) {
	decoder, err := DecoderFor(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedExtension, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		code := errors.ErrCodeReadFailed
		if stderrors.Is(err, fs.ErrNotExist) {
			code = errors.ErrCodeFileNotFound
		}
		return nil, errors.WrapIO(err, code, path)
	}

	cfg, err := decoder.Decode(data)
	if err != nil {
		var e *errors.Error
		if stderrors.As(err, &e) {
			e.WithPath(path)
		}
		return nil, err
	}
	return cfg, nil
}
