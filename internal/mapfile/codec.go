package mapfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gravitrone/objedit/internal/objectinput"
)

// Format is a mapping file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	ErrNotObject    = errors.New("top-level value is not an object")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrTrailingData = errors.New("trailing data after object")
)

// ParseFormat accepts "json", "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (want json or yaml)", s)
}

// FormatFor picks the format from the file extension.
func FormatFor(path string, fallback Format) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	return fallback
}

// Decode reads a mapping in the given format.
func Decode(r io.Reader, format Format) (objectinput.Mapping[any], error) {
	switch format {
	case FormatYAML:
		return DecodeYAML(r)
	default:
		return DecodeJSON(r)
	}
}

// Encode writes m in the given format.
func Encode(w io.Writer, m objectinput.Mapping[any], format Format, indent int) error {
	switch format {
	case FormatYAML:
		return EncodeYAML(w, m, indent)
	default:
		return EncodeJSON(w, m, indent)
	}
}

// DecodeJSON reads a JSON object keeping its key order. Numbers stay
// json.Number so they survive a round trip unchanged.
func DecodeJSON(r io.Reader) (objectinput.Mapping[any], error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return objectinput.Mapping[any]{}, ErrNotObject
		}
		return objectinput.Mapping[any]{}, fmt.Errorf("parse json: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return objectinput.Mapping[any]{}, ErrNotObject
	}

	m := objectinput.NewMapping[any]()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return objectinput.Mapping[any]{}, fmt.Errorf("parse json: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return objectinput.Mapping[any]{}, fmt.Errorf("parse json: unexpected token %v", tok)
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return objectinput.Mapping[any]{}, fmt.Errorf("parse json value for %q: %w", key, err)
		}
		if m.Has(key) {
			return objectinput.Mapping[any]{}, fmt.Errorf("%w %q", ErrDuplicateKey, key)
		}
		m.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return objectinput.Mapping[any]{}, fmt.Errorf("parse json: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return objectinput.Mapping[any]{}, ErrTrailingData
	}
	return m, nil
}

// EncodeJSON writes m as a JSON object in mapping order.
func EncodeJSON(w io.Writer, m objectinput.Mapping[any], indent int) error {
	if m.Len() == 0 {
		_, err := io.WriteString(w, "{}\n")
		return err
	}
	pad := strings.Repeat(" ", indent)
	sep, head, tail := ",", "{", "}"
	if indent > 0 {
		sep, head, tail = ",\n", "{\n", "\n}"
	}

	var b bytes.Buffer
	b.WriteString(head)
	i := 0
	for k, v := range m.All() {
		if i > 0 {
			b.WriteString(sep)
		}
		i++
		key, err := marshalJSON(k, "", "")
		if err != nil {
			return err
		}
		val, err := marshalJSON(v, pad, pad)
		if err != nil {
			return fmt.Errorf("encode %q: %w", k, err)
		}
		b.WriteString(pad)
		b.Write(key)
		b.WriteString(":")
		if indent > 0 {
			b.WriteString(" ")
		}
		b.Write(val)
	}
	b.WriteString(tail)
	b.WriteString("\n")
	_, err := w.Write(b.Bytes())
	return err
}

func marshalJSON(v any, prefix, indent string) ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	enc.SetIndent(prefix, indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(b.Bytes(), "\n"), nil
}

// DecodeYAML reads a YAML mapping keeping its key order. An empty document
// is an empty mapping.
func DecodeYAML(r io.Reader) (objectinput.Mapping[any], error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return objectinput.NewMapping[any](), nil
		}
		return objectinput.Mapping[any]{}, fmt.Errorf("parse yaml: %w", err)
	}
	node := &doc
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return objectinput.Mapping[any]{}, ErrNotObject
	}

	m := objectinput.NewMapping[any]()
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return objectinput.Mapping[any]{}, fmt.Errorf("parse yaml: line %d: key must be a scalar", keyNode.Line)
		}
		key := keyNode.Value
		var value any
		if err := valueNode.Decode(&value); err != nil {
			return objectinput.Mapping[any]{}, fmt.Errorf("parse yaml value for %q: %w", key, err)
		}
		if m.Has(key) {
			return objectinput.Mapping[any]{}, fmt.Errorf("%w %q (line %d)", ErrDuplicateKey, key, keyNode.Line)
		}
		m.Set(key, value)
	}
	return m, nil
}

// EncodeYAML writes m as a YAML mapping in mapping order.
func EncodeYAML(w io.Writer, m objectinput.Mapping[any], indent int) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for k, v := range m.All() {
		var valueNode yaml.Node
		if err := valueNode.Encode(plainValue(v)); err != nil {
			return fmt.Errorf("encode %q: %w", k, err)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&valueNode,
		)
	}
	if indent < 2 {
		indent = 2
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(indent)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// plainValue swaps json.Number for a Go number so YAML does not quote it.
func plainValue(v any) any {
	switch typed := v.(type) {
	case json.Number:
		if n, err := typed.Int64(); err == nil {
			return n
		}
		if f, err := typed.Float64(); err == nil {
			return f
		}
		return typed.String()
	case map[string]any:
		out := make(map[string]any, len(typed))
		for k, item := range typed {
			out[k] = plainValue(item)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = plainValue(item)
		}
		return out
	default:
		return v
	}
}
