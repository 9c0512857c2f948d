package style

import (
	"github.com/npillmayer/tinystyle/cssom"
	"github.com/npillmayer/tyse/core/dimen"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f
)

// DimenT is an option type for CSS dimensions, as consumed by layout.
type DimenT struct {
	d     dimen.DU
	flags uint32
}

/*
type DimenT
	= Unset
	| Auto
	| Inherit
	| Initial
	| JustDimen dimen
*/

// Unset is the dimension for absent or non-dimensional values.
func Unset() DimenT {
	return DimenT{flags: dimenNone}
}

func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// IsUnset is true for Unset().
func (d DimenT) IsUnset() bool {
	return d.flags&kindMask == dimenNone
}

// PxToDU converts CSS pixels to design units. A CSS pixel is 1/96 inch,
// i.e. 0.75 pt.
func PxToDU(px float32) dimen.DU {
	return dimen.DU(float64(px) * 0.75 * float64(dimen.PT))
}

// Dimen converts a declaration value to a dimension:
//
//     Length px      =>  JustDimen
//     auto           =>  Auto
//     inherit        =>  Inherit
//     initial        =>  Initial
//     anything else  =>  Unset
func Dimen(v cssom.Value) DimenT {
	switch x := v.(type) {
	case cssom.Length:
		switch x.Unit {
		case cssom.UnitPx:
			return JustDimen(PxToDU(x.Magnitude))
		}
	case cssom.Keyword:
		switch x {
		case "auto":
			return Auto()
		case "inherit":
			return Inherit()
		case "initial":
			return Initial()
		}
	}
	return Unset()
}

// DimenOf looks up a dimension property in a property map, falling back
// to property fallback. If neither is present, Unset() is returned.
//
//     pmap.DimenOf("padding-left", "padding")
func (pmap *PropertyMap) DimenOf(key, fallback string) DimenT {
	return Dimen(pmap.Lookup(key, fallback, nil))
}

// ---------------------------------------------------------------------------

func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

type Matcher struct {
	dimen DimenT
}

func (m *Matcher) IsKind(d DimenT) *Matcher {
	if (m.dimen.flags & kindMask) == (d.flags & kindMask) {
		return m
	}
	return nil
}

func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&kindMask == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

type DimenPatterns[T any] struct {
	Auto    T
	Inherit T
	Initial T
	Just    T
	Default T
}

func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

type MatchExpr[T any] struct {
	dimen DimenT
}

func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch m.dimen.flags & kindMask {
	case dimenAuto:
		return patterns.Auto
	case dimenAbsolute:
		return patterns.Just
	case dimenInitial:
		return patterns.Initial
	case dimenInherit:
		return patterns.Inherit
	}
	return patterns.Default
}

func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.dimen.d
	return m
}

func (m *MatchExpr[T]) Const(x T) T {
	return x
}
