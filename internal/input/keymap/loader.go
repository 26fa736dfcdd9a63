package keymap

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies a bindings file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for file extensions with no decoder.
var ErrUnknownFormat = errors.New("unknown keymap format")

// ParseError describes a bindings file that could not be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing keymap %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// LoadFile loads a keymap from a TOML or YAML file. Source is set to the
// path when the file does not name one.
func LoadFile(path string) (*Keymap, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keymap file: %w", err)
	}

	km, err := decode(path, data, format)
	if err != nil {
		return nil, err
	}
	if km.Source == "" {
		km.Source = path
	}
	return km, nil
}

// LoadReader loads a keymap in the given format from a reader.
func LoadReader(r io.Reader, format Format) (*Keymap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading keymap: %w", err)
	}
	return decode("<reader>", data, format)
}

func decode(source string, data []byte, format Format) (*Keymap, error) {
	km := NewKeymap("")

	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, km)
	case FormatYAML:
		err = yaml.Unmarshal(data, km)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, &ParseError{Path: source, Err: err}
	}

	if km.Name == "" {
		km.Name = strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	}
	return km, nil
}

// Encode writes the keymap in the given format.
func (k *Keymap) Encode(w io.Writer, format Format) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatTOML:
		data, err = toml.Marshal(k)
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err = enc.Encode(k); err == nil {
			err = enc.Close()
		}
		data = buf.Bytes()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("encoding keymap: %w", err)
	}

	_, err = w.Write(data)
	return err
}

// SaveFile writes the keymap to path, choosing the format by extension.
func (k *Keymap) SaveFile(path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := k.Encode(&buf, format); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing keymap file: %w", err)
	}
	return nil
}
