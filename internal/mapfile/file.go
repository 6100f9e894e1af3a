package mapfile

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gravitrone/objedit/internal/objectinput"
)

// Load reads the mapping stored at path. The format comes from the file
// extension, or fallback when the extension is not recognized.
func Load(path string, fallback Format) (objectinput.Mapping[any], Format, error) {
	format := FormatFor(path, fallback)
	data, err := os.ReadFile(path)
	if err != nil {
		return objectinput.Mapping[any]{}, format, fmt.Errorf("read %s: %w", path, err)
	}
	m, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return objectinput.Mapping[any]{}, format, fmt.Errorf("decode %s: %w", path, err)
	}
	return m, format, nil
}

// LoadOrEmpty is Load, except a missing file yields an empty mapping.
func LoadOrEmpty(path string, fallback Format) (objectinput.Mapping[any], Format, error) {
	m, format, err := Load(path, fallback)
	if errors.Is(err, fs.ErrNotExist) {
		return objectinput.NewMapping[any](), format, nil
	}
	return m, format, err
}

// Save writes m to path through a temp file and a rename so readers never
// see a partial file. An existing file keeps its permissions.
func Save(path string, m objectinput.Mapping[any], format Format, indent int) error {
	var buf bytes.Buffer
	if err := Encode(&buf, m, format, indent); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename into %s: %w", path, err)
	}
	return nil
}
