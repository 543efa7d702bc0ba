// Package bifrost is the app table: an ordered list of named apps, each with an update routine
// and optional transition hooks, plus the index of the app the engine is currently running.
package bifrost

// UpdateFunc is an app's per-frame update and render routine. F is whatever per-frame context
// the hosting engine passes in.
type UpdateFunc[F any] func(F)

// HookFunc runs when the engine switches into or out of an app.
type HookFunc func()

// Entry is one registered app. Entries are never modified after Register.
type Entry[F any] struct {
	Name           string
	Update         UpdateFunc[F]
	TransitionInto HookFunc // may be nil
	TransitionOut  HookFunc // may be nil
}

type hooks struct {
	into HookFunc
	out  HookFunc
}

// Option sets an optional transition hook on Register.
type Option func(*hooks)

// WithTransitionInto sets the hook called after the engine switches to the app.
func WithTransitionInto(fn HookFunc) Option {
	return func(h *hooks) { h.into = fn }
}

// WithTransitionOut sets the hook called when the engine switches away from the app.
func WithTransitionOut(fn HookFunc) Option {
	return func(h *hooks) { h.out = fn }
}

// Registry is the app table. The zero value is an empty table whose current index is 0.
//
// A Registry is owned by the simulation goroutine and is not safe for concurrent use.
// Callbacks stored in it belong to the module that registered them, so the table must be
// cleared whenever that module is reloaded.
type Registry[F any] struct {
	entries []Entry[F]
	current int
}

// New returns an empty registry.
func New[F any]() *Registry[F] {
	return &Registry[F]{}
}

// Clear drops every entry and resets the current index to 0. Clearing an empty table is a no-op.
func (r *Registry[F]) Clear() {
	r.entries = nil
	r.current = 0
}

// Register appends an app. Names are not checked for uniqueness; see Switch for what
// duplicates do.
func (r *Registry[F]) Register(name string, update UpdateFunc[F], opts ...Option) {
	var h hooks
	for _, opt := range opts {
		opt(&h)
	}
	r.entries = append(r.entries, Entry[F]{
		Name:           name,
		Update:         update,
		TransitionInto: h.into,
		TransitionOut:  h.out,
	})
}

// CurrentApp returns the update routine of the current app, or nil when the table is empty.
func (r *Registry[F]) CurrentApp() UpdateFunc[F] {
	if len(r.entries) == 0 {
		return nil
	}
	return r.entries[r.current].Update
}

// CurrentIndex returns the index of the current app.
func (r *Registry[F]) CurrentIndex() int {
	return r.current
}

// CurrentName returns the name of the current app, or "" when the table is empty.
func (r *Registry[F]) CurrentName() string {
	if len(r.entries) == 0 {
		return ""
	}
	return r.entries[r.current].Name
}

// Len returns the number of registered apps.
func (r *Registry[F]) Len() int {
	return len(r.entries)
}

// Names returns the app names in registration order.
func (r *Registry[F]) Names() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Name
	}
	return out
}

// Lookup returns the index of the first app registered under name.
func (r *Registry[F]) Lookup(name string) (int, bool) {
	for i, e := range r.entries {
		if e.Name == name {
			return i, true
		}
	}
	return 0, false
}

// Select makes entry i current without running any hooks. It reports false and changes
// nothing when i is out of range.
func (r *Registry[F]) Select(i int) bool {
	if i < 0 || i >= len(r.entries) {
		return false
	}
	r.current = i
	return true
}

// Switch makes the app registered under name current. For every entry whose name matches, in
// registration order, it calls the current app's TransitionOut, then the matched app's
// TransitionInto, then moves the current index. A name registered twice therefore runs the hook
// pair twice and ends on the last duplicate.
//
// Switch returns the number of matches. An unknown name changes nothing and calls no hooks.
func (r *Registry[F]) Switch(name string) int {
	matches := 0
	for i := range r.entries {
		if r.entries[i].Name != name {
			continue
		}
		matches++
		if out := r.entries[r.current].TransitionOut; out != nil {
			out()
		}
		if into := r.entries[i].TransitionInto; into != nil {
			into()
		}
		r.current = i
	}
	return matches
}
