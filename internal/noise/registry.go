package noise

import (
	"sort"
	"strings"
)

// Factory builds a Field. Seed is ignored by backends with a fixed table.
type Factory func(seed int64) Field

var backends = map[string]Factory{}

// Register adds a backend under name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	backends[strings.ToLower(name)] = f
}

// New constructs the named backend. Unknown names report false.
func New(name string, seed int64) (Field, bool) {
	f, ok := backends[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return f(seed), true
}

// Backends lists registered backend names in sorted order.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("perlin", func(int64) Field { return DefaultPerlin })
	Register("simplex", func(seed int64) Field { return NewSimplex(seed) })
}
