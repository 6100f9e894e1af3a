package objectinput

import (
	"reflect"
	"strconv"
	"sync/atomic"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Option configures a Reconciler.
type Option[V any] func(*Reconciler[V])

// WithDefaultValue sets the value carried by rows created with Add.
func WithDefaultValue[V any](fn func() V) Option[V] {
	return func(r *Reconciler[V]) {
		if fn != nil {
			r.defaultValue = fn
		}
	}
}

// WithEqual replaces the value comparison used to detect echoed mappings.
func WithEqual[V any](fn func(a, b V) bool) Option[V] {
	return func(r *Reconciler[V]) {
		if fn != nil {
			r.equal = fn
		}
	}
}

// WithIDSource replaces the identity generator. Ids must never repeat.
func WithIDSource[V any](fn func() ID) Option[V] {
	return func(r *Reconciler[V]) {
		if fn != nil {
			r.newID = fn
		}
	}
}

func WithLogger[V any](logger *zap.Logger) Option[V] {
	return func(r *Reconciler[V]) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// RandomIDs returns identities backed by random UUIDs.
func RandomIDs() func() ID {
	return func() ID {
		return ID(uuid.NewString())
	}
}

// Sequential returns a monotonic identity source: "1", "2", ...
func Sequential() func() ID {
	var n atomic.Uint64
	return func() ID {
		return ID(strconv.FormatUint(n.Add(1), 10))
	}
}

// exportAll lets cmp look inside unexported struct fields instead of
// panicking on them.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

func defaultEqual[V any](a, b V) bool {
	return cmp.Equal(a, b, exportAll)
}
