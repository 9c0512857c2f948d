package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/tinystyle/cssom"
	"github.com/npillmayer/tinystyle/maybe"
)

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value cssom.Value
}

// PropertyMap holds the resolved style properties of a content node,
// mapping property names to values. nil is a legal (empty) property map.
//
// A property map is created freshly for every node by a cascade pass. It is
// not safe to modify it concurrently.
type PropertyMap struct {
	m map[string]cssom.Value // into struct to make it opaque for clients
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{m: make(map[string]cssom.Value)}
}

// Size returns the number of properties.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Set a property's value. Overwrites an existing value, if present.
// Setting a value on a nil map does nothing.
func (pmap *PropertyMap) Set(key string, v cssom.Value) {
	if pmap == nil {
		return
	}
	if pmap.m == nil {
		pmap.m = make(map[string]cssom.Value)
	}
	pmap.m[key] = v
}

// Get returns a property value, together with an indicator wether it has
// been found in the properties map. No cascading is performed.
func (pmap *PropertyMap) Get(key string) (cssom.Value, bool) {
	if pmap == nil {
		return nil, false
	}
	v, ok := pmap.m[key]
	return v, ok
}

// Value returns the value of a property if it exists.
func (pmap *PropertyMap) Value(key string) maybe.Maybe[cssom.Value] {
	return maybe.Of(pmap.Get(key))
}

// Lookup returns the value of property key or, if that doesn't exist, of
// property fallback, or value def if neither does. It is used for
// relationships between properties similar to shorthands and longhands:
//
//     pmap.Lookup("margin-left", "margin", zero)
func (pmap *PropertyMap) Lookup(key, fallback string, def cssom.Value) cssom.Value {
	return pmap.Value(key).Or(pmap.Value(fallback)).WithDefault(def)
}

// Properties returns all properties, sorted by key.
func (pmap *PropertyMap) Properties() []KeyValue {
	if pmap == nil {
		return nil
	}
	r := make([]KeyValue, 0, len(pmap.m))
	for k, v := range pmap.m {
		r = append(r, KeyValue{k, v})
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Key < r[j].Key })
	return r
}

// Equal returns true if two property maps contain the same properties
// with identical values.
func (pmap *PropertyMap) Equal(other *PropertyMap) bool {
	if pmap.Size() != other.Size() {
		return false
	} else if pmap.Size() == 0 {
		return true
	}
	for k, v := range pmap.m {
		w, ok := other.Get(k)
		if !ok || w != v {
			return false
		}
	}
	return true
}

func (pmap *PropertyMap) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, kv := range pmap.Properties() {
		if i > 0 {
			b.WriteString(";")
		}
		fmt.Fprintf(&b, " %s: %s", kv.Key, kv.Value)
	}
	b.WriteString(" }")
	return b.String()
}
