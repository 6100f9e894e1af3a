package cmd

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/gravitrone/objedit/internal/logging"
	"github.com/gravitrone/objedit/internal/mapfile"
	"github.com/gravitrone/objedit/internal/objectinput"
)

var errEmptyKey = errors.New("key must not be empty")

// session is one file loaded into a reconciler. Commands mutate it through
// the reconciler so the same naming rules apply as in the editor.
type session struct {
	env     *env
	path    string
	format  mapfile.Format
	value   objectinput.Mapping[any]
	rec     *objectinput.Reconciler[any]
	changed bool
}

// openSession loads path. With create set, a missing file starts empty.
func openSession(env *env, path string, create bool) (*session, error) {
	load := mapfile.Load
	if create {
		load = mapfile.LoadOrEmpty
	}
	m, format, err := load(path, env.cfg.FileFormat())
	if err != nil {
		return nil, err
	}

	s := &session{env: env, path: path, format: format, value: m}
	s.rec = objectinput.New(m, func(next objectinput.Mapping[any]) {
		s.value = next
		s.changed = true
	}, objectinput.WithLogger[any](env.logger.Named(logging.NameReconciler)))
	return s, nil
}

// set updates key in place, or appends it when absent.
func (s *session) set(key string, value any) error {
	if key == "" {
		return errEmptyKey
	}
	if id, ok := s.rec.Find(key); ok {
		s.rec.UpdateValue(id, value)
		return nil
	}
	id := s.rec.Add()
	if s.rec.UpdateKey(id, key) != objectinput.Applied {
		return fmt.Errorf("add key %q: rejected", key)
	}
	s.rec.UpdateValue(id, value)
	return nil
}

func (s *session) rename(from, to string) error {
	if to == "" {
		return errEmptyKey
	}
	id, ok := s.rec.Find(from)
	if !ok {
		return fmt.Errorf("key %q not found", from)
	}
	if from == to {
		return nil
	}
	if s.rec.UpdateKey(id, to) == objectinput.Rejected {
		return fmt.Errorf("key %q already exists", to)
	}
	return nil
}

func (s *session) remove(key string) error {
	id, ok := s.rec.Find(key)
	if !ok {
		return fmt.Errorf("key %q not found", key)
	}
	s.rec.Delete(id)
	return nil
}

// save writes the file if anything changed.
func (s *session) save() error {
	if !s.changed {
		return nil
	}
	if err := mapfile.Save(s.path, s.value, s.format, s.env.cfg.Indent); err != nil {
		return err
	}
	s.env.logger.Info("saved",
		zap.String("file", s.path),
		zap.String("format", string(s.format)),
		zap.Int("keys", s.value.Len()))
	return nil
}
