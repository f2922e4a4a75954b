package features

// UnknownCategory is the reserved code for categories that were never
// registered, or that appear for the first time after the registry froze.
const UnknownCategory = 0

// Registry is an append-only category registry. While open it assigns a new
// code to every first-seen category; once frozen, unseen categories collapse
// to UnknownCategory instead. Code 0 is always the "Unknown" sentinel.
type Registry struct {
	codes  map[string]int
	names  []string
	frozen bool
}

// NewRegistry returns an open registry holding only the Unknown sentinel.
func NewRegistry() *Registry {
	return &Registry{
		codes: make(map[string]int),
		names: []string{"Unknown"},
	}
}

// Encode returns the code for a category, registering it when the registry
// is still open. It never fails.
func (r *Registry) Encode(name string) int {
	if name == "" {
		return UnknownCategory
	}
	if code, ok := r.codes[name]; ok {
		return code
	}
	if r.frozen {
		return UnknownCategory
	}
	code := len(r.names)
	r.names = append(r.names, name)
	r.codes[name] = code
	return code
}

// Freeze stops the registry from learning new categories. Called once the
// training column set is recorded.
func (r *Registry) Freeze() { r.frozen = true }

// Frozen reports whether the registry still accepts new categories.
func (r *Registry) Frozen() bool { return r.frozen }

// Names returns the registered categories in code order, starting with the
// Unknown sentinel.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Restore rebuilds a frozen registry from a persisted name list. The first
// entry is expected to be the Unknown sentinel; a nil or empty list yields
// an empty frozen registry.
func (r *Registry) Restore(names []string) {
	r.codes = make(map[string]int, len(names))
	r.names = []string{"Unknown"}
	for i, n := range names {
		if i == 0 {
			continue // sentinel slot
		}
		r.names = append(r.names, n)
		r.codes[n] = i
	}
	r.frozen = true
}
