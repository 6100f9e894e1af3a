package objectinput

// RowRenderer turns one entry into a view. The callbacks are bound to the
// entry identity and stay valid across renders until the row is removed.
type RowRenderer[V, R any] func(key string, value V, updateKey func(string), updateValue func(V), remove func()) R

// Widget binds a Reconciler to caller-supplied view builders.
type Widget[V, R any] struct {
	Reconciler *Reconciler[V]

	RenderItem  RowRenderer[V, R]
	RenderEmpty func() R
	RenderAdd   func(add func()) R
}

// Render syncs the widget with the caller's mapping and returns the views:
// one per entry in order (or the empty view), followed by the add view.
func (w *Widget[V, R]) Render(obj Mapping[V]) []R {
	r := w.Reconciler
	r.AcceptExternalMapping(obj)

	entries := r.Entries()
	views := make([]R, 0, len(entries)+1)
	if len(entries) == 0 && w.RenderEmpty != nil {
		views = append(views, w.RenderEmpty())
	}
	if w.RenderItem != nil {
		for _, e := range entries {
			id := e.ID
			views = append(views, w.RenderItem(
				e.Key,
				e.Value,
				func(key string) { r.UpdateKey(id, key) },
				func(value V) { r.UpdateValue(id, value) },
				func() { r.Delete(id) },
			))
		}
	}
	if w.RenderAdd != nil {
		views = append(views, w.RenderAdd(func() { r.Add() }))
	}
	return views
}
