// Package cli implements the file-handling and presentation layer of the
// graft command: document codecs, patch-file decoding and the diff
// printer. The engine itself never touches a file; documents are decoded
// here, mutated in memory and encoded back out.
package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/graft"
)

// Format identifies a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat resolves a format name given on the command line.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unknown format %q (want json, yaml or toml)", name)
}

// DetectFormat picks the document format: an explicit --format value
// wins, otherwise the file extension decides. Stdin ("-") without an
// explicit format defaults to JSON.
func DetectFormat(path, explicit string) (Format, error) {
	if explicit != "" {
		return ParseFormat(explicit)
	}
	if path == "-" {
		return FormatJSON, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("cannot detect format of %q; use --format", path)
}

// LoadDocument reads and decodes the document at path ("-" for stdin)
// into a mapping.
func LoadDocument(path string, format Format) (graft.Map, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return DecodeDocument(data, format)
}

// DecodeDocument decodes raw document bytes into a mapping.
func DecodeDocument(data []byte, format Format) (graft.Map, error) {
	var raw any
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to decode json document: %w", err)
		}
	case FormatYAML:
		doc := map[string]any{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode yaml document: %w", err)
		}
		raw = doc
	case FormatTOML:
		doc := map[string]any{}
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode toml document: %w", err)
		}
		raw = doc
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}

	v, err := graft.FromAny(raw)
	if err != nil {
		return nil, fmt.Errorf("unsupported document content: %w", err)
	}
	m, ok := v.(graft.Map)
	if !ok {
		return nil, fmt.Errorf("document root is a %s, expected a mapping", graft.KindOf(v))
	}
	return m, nil
}

// EncodeDocument encodes a mapping in the given format. The output ends
// with a newline.
func EncodeDocument(m graft.Map, format Format) ([]byte, error) {
	plain := graft.ToAny(m)
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(plain, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json document: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(plain)
		if err != nil {
			return nil, fmt.Errorf("failed to encode yaml document: %w", err)
		}
		return data, nil
	case FormatTOML:
		data, err := toml.Marshal(plain)
		if err != nil {
			return nil, fmt.Errorf("failed to encode toml document: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

// SaveDocument encodes the mapping and writes it to path, or to w when
// path is empty.
func SaveDocument(m graft.Map, format Format, path string, w io.Writer) error {
	data, err := EncodeDocument(m, format)
	if err != nil {
		return err
	}
	if path == "" {
		_, err = w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}
