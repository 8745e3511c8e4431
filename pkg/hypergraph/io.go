package hypergraph

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/hullviz/pkg/errors"
)

// Format identifies a document encoding.
type Format string

// Supported document formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.New(errors.ErrCodeUnsupported, "unsupported document extension %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// =============================================================================
// Document Serialization API
// =============================================================================

// ReadFile reads and validates a document, choosing the decoder by
// extension.
func ReadFile(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return Read(f, format)
}

// Read decodes and validates a document from r.
func Read(r io.Reader, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode yaml")
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format %q", format)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// MarshalDocument encodes doc as compact JSON. Output is deterministic for
// equal documents, which makes it suitable for content hashing.
func MarshalDocument(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeDocumentTo(doc, &buf, FormatJSON, false); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes doc to path, choosing the encoder by extension.
func WriteFile(doc *Document, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	return encodeAndClose(f, path, func(w io.Writer) error {
		return writeDocumentTo(doc, w, format, true)
	})
}

// encodeAndClose runs encode on wc and closes it. A close failure is
// reported when encoding succeeded, since it may mean the data never
// reached disk.
func encodeAndClose(wc io.WriteCloser, path string, encode func(io.Writer) error) error {
	err := encode(wc)
	if cerr := wc.Close(); cerr != nil && err == nil {
		err = errors.Wrap(errors.ErrCodeInternal, cerr, "close %s", path)
	}
	return err
}

// Write encodes doc to w in the given format.
func Write(doc *Document, w io.Writer, format Format) error {
	return writeDocumentTo(doc, w, format, true)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeDocumentTo(doc *Document, w io.Writer, format Format, indent bool) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		if indent {
			enc.SetIndent("", "  ")
		}
		if err := enc.Encode(doc); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode json")
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode yaml")
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode yaml")
		}
	default:
		return errors.New(errors.ErrCodeUnsupported, "unsupported format %q", format)
	}
	return nil
}
