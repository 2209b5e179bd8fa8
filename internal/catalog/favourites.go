package catalog

import "maps"

// Favourites is a set of favourited listing ids. The zero value is an empty set.
// Values are treated as immutable; With and Without return new sets.
type Favourites map[int64]struct{}

// Has reports whether id is in the set.
func (f Favourites) Has(id int64) bool {
	_, ok := f[id]
	return ok
}

// With returns a copy of the set including id.
func (f Favourites) With(id int64) Favourites {
	out := maps.Clone(f)
	if out == nil {
		out = Favourites{}
	}
	out[id] = struct{}{}
	return out
}

// Without returns a copy of the set excluding id.
func (f Favourites) Without(id int64) Favourites {
	out := maps.Clone(f)
	if out == nil {
		out = Favourites{}
	}
	delete(out, id)
	return out
}
