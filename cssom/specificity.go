package cssom

import "fmt"

// Specificity is the priority of a selector, with the convention
// Specificity = [ID, Class, Tag]. Specificities are compared
// lexicographically: IDs weigh most, then classes, then tags.
//
// See https://www.w3.org/TR/selectors/#specificity-rules
type Specificity [3]int

// Components of a specificity tuple.
const (
	SpecID    = 0
	SpecClass = 1
	SpecTag   = 2
)

// SpecificityOf computes the specificity of a selector. It is a pure
// function of the selector.
//
//     #x  =>  (1, 0, 0)
//     .c  =>  (0, 1, 0)
//     div =>  (0, 0, 1)
//     *   =>  (0, 0, 0)
func SpecificityOf(sel Selector) Specificity {
	var spec Specificity
	switch s := sel.(type) {
	case SimpleSelector:
		if s.ID != "" {
			spec[SpecID] = 1
		}
		spec[SpecClass] = len(s.Classes)
		if !s.IsUniversal() {
			spec[SpecTag] = 1
		}
	}
	return spec
}

// Less returns true if s < other (strictly), false otherwise.
func (s Specificity) Less(other Specificity) bool {
	return s.Compare(other) < 0
}

// Compare returns -1, 0 or +1, depending on whether s is less than, equal to,
// or greater than other.
func (s Specificity) Compare(other Specificity) int {
	for i := range s {
		if s[i] < other[i] {
			return -1
		}
		if s[i] > other[i] {
			return 1
		}
	}
	return 0
}

// Max returns the greater of two specificities.
func (s Specificity) Max(other Specificity) Specificity {
	if s.Less(other) {
		return other
	}
	return s
}

func (s Specificity) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s[SpecID], s[SpecClass], s[SpecTag])
}
