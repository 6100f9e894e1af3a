package mapfile

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/objedit/internal/objectinput"
)

func TestDecodeJSONKeepsKeyOrder(t *testing.T) {
	m, err := DecodeJSON(strings.NewReader(`{"zeta": "1", "alpha": 2, "mid": {"x": [1, "y"]}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, m.Keys())

	v, _ := m.Get("alpha")
	assert.Equal(t, json.Number("2"), v)

	nested, _ := m.Get("mid")
	assert.Equal(t, map[string]any{"x": []any{json.Number("1"), "y"}}, nested)
}

func TestDecodeJSONErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{name: "empty", input: "", want: ErrNotObject},
		{name: "array", input: `[1, 2]`, want: ErrNotObject},
		{name: "string", input: `"a"`, want: ErrNotObject},
		{name: "duplicate", input: `{"a": 1, "a": 2}`, want: ErrDuplicateKey},
		{name: "trailing", input: `{"a": 1} {}`, want: ErrTrailingData},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeJSON(strings.NewReader(tc.input))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := DecodeJSON(strings.NewReader(`{"a": }`))
	assert.Error(t, err)
}

func TestEncodeJSONIndented(t *testing.T) {
	m := objectinput.MappingOf(
		objectinput.Pair[any]{Key: "b", Value: "<2>"},
		objectinput.Pair[any]{Key: "a", Value: map[string]any{"n": json.Number("1")}},
	)
	var buf bytes.Buffer
	require.NoError(t, EncodeJSON(&buf, m, 2))
	assert.Equal(t, "{\n  \"b\": \"<2>\",\n  \"a\": {\n    \"n\": 1\n  }\n}\n", buf.String())
}

func TestEncodeJSONCompactAndEmpty(t *testing.T) {
	var buf bytes.Buffer
	m := objectinput.MappingOf(objectinput.Pair[any]{Key: "a", Value: "1"}, objectinput.Pair[any]{Key: "b", Value: nil})
	require.NoError(t, EncodeJSON(&buf, m, 0))
	assert.Equal(t, "{\"a\":\"1\",\"b\":null}\n", buf.String())

	buf.Reset()
	require.NoError(t, EncodeJSON(&buf, objectinput.NewMapping[any](), 2))
	assert.Equal(t, "{}\n", buf.String())
}

func TestJSONRoundTripPreservesOrderAndNumbers(t *testing.T) {
	src := "{\n  \"z\": 1.50,\n  \"a\": \"x\"\n}\n"
	m, err := DecodeJSON(strings.NewReader(src))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeJSON(&buf, m, 2))
	assert.Equal(t, src, buf.String())
}

func TestDecodeYAMLKeepsKeyOrder(t *testing.T) {
	m, err := DecodeYAML(strings.NewReader("zeta: 1\nalpha: two\nlist: [a, b]\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "list"}, m.Keys())

	v, _ := m.Get("zeta")
	assert.Equal(t, 1, v)
	v, _ = m.Get("list")
	assert.Equal(t, []any{"a", "b"}, v)
}

func TestDecodeYAMLErrors(t *testing.T) {
	_, err := DecodeYAML(strings.NewReader("- a\n- b\n"))
	assert.ErrorIs(t, err, ErrNotObject)

	_, err = DecodeYAML(strings.NewReader("a: 1\na: 2\n"))
	assert.Error(t, err)

	_, err = DecodeYAML(strings.NewReader("a: [\n"))
	assert.Error(t, err)
}

func TestDecodeYAMLEmptyDocument(t *testing.T) {
	m, err := DecodeYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
}

func TestEncodeYAMLUnquotesJSONNumbers(t *testing.T) {
	m := objectinput.MappingOf(
		objectinput.Pair[any]{Key: "b", Value: json.Number("3")},
		objectinput.Pair[any]{Key: "a", Value: "text"},
	)
	var buf bytes.Buffer
	require.NoError(t, EncodeYAML(&buf, m, 2))
	assert.Equal(t, "b: 3\na: text\n", buf.String())
}

func TestYAMLRoundTrip(t *testing.T) {
	src := "name: alex\nage: 17\ntags:\n  - ai\n  - ml\n"
	m, err := DecodeYAML(strings.NewReader(src))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeYAML(&buf, m, 2))
	assert.Equal(t, src, buf.String())
}

func TestFormatForAndParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFor("a/b.JSON", FormatYAML))
	assert.Equal(t, FormatYAML, FormatFor("x.yml", FormatJSON))
	assert.Equal(t, FormatYAML, FormatFor("x.yaml", FormatJSON))
	assert.Equal(t, FormatJSON, FormatFor("x.txt", FormatJSON))

	f, err := ParseFormat(" YML ")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("toml")
	assert.Error(t, err)
}
