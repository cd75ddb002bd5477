package layout

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a figure file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat is returned for figure files that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported figure format")

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Load reads a figure file.
//
// Parameters:
//   - path: a .json, .yaml or .yml file
//
// Returns:
//   - *Figure: the decoded figure
//   - error: if the file cannot be read or decoded
func Load(path string) (*Figure, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read figure: %w", err)
	}
	fig, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fig, nil
}

// Decode reads a figure in the given format.
//
// Parameters:
//   - r: source of the encoded figure
//   - format: FormatJSON or FormatYAML
//
// Returns:
//   - *Figure: the decoded figure
//   - error: if decoding fails
func Decode(r io.Reader, format Format) (*Figure, error) {
	fig := &Figure{}
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(fig); err != nil {
			return nil, fmt.Errorf("failed to decode json figure: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(fig); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode yaml figure: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
	}
	if fig.Layout == nil {
		fig.Layout = Layout{}
	}
	for i, tr := range fig.Data {
		if tr == nil {
			return nil, fmt.Errorf("trace %d is null", i)
		}
		if tr.UID == "" {
			tr.UID = fmt.Sprintf("trace-%d", i)
		}
	}
	return fig, nil
}

// Encode writes a figure in the given format.
func Encode(w io.Writer, fig *Figure, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(fig)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(fig)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
}
