package att

import (
	"slices"
	"strings"
)

// Set is a set of attributes.  It is kept sorted and without duplicates, so
// two sets are equal exactly when their elements are, and every operation
// here can work by merging instead of hashing.  For the small headings that
// relations usually have this should be faster than a map.
//
// The zero value is the empty set.  Sets are values: none of the methods
// modify their receiver or arguments.
type Set []Attribute

// NewSet returns the set containing the given attributes.
func NewSet(atts ...Attribute) Set {
	s := make(Set, len(atts))
	copy(s, atts)
	slices.Sort(s)
	return slices.Compact(s)
}

// FromStrings returns the set containing the attributes named by strs.
func FromStrings(strs ...string) Set {
	atts := make([]Attribute, len(strs))
	for i, str := range strs {
		atts[i] = Attribute(str)
	}
	return NewSet(atts...)
}

// Len is the number of attributes in the set
func (s Set) Len() int {
	return len(s)
}

// Contains returns true if a is a member of s.
func (s Set) Contains(a Attribute) bool {
	_, found := slices.BinarySearch(s, a)
	return found
}

// IsSubset returns true if all of the attributes in s are members of dom.
func (s Set) IsSubset(dom Set) bool {
	if len(s) > len(dom) {
		return false
	}
	j := 0
SubLoop:
	for _, a := range s {
		for ; j < len(dom); j++ {
			if dom[j] == a {
				j++
				continue SubLoop
			}
			if dom[j] > a {
				return false
			}
		}
		return false
	}
	return true
}

// Equal returns true if s and s2 have the same members.
func (s Set) Equal(s2 Set) bool {
	return slices.Equal(s, s2)
}

// Union returns a new set with the members of both s and s2.
func (s Set) Union(s2 Set) Set {
	u := make(Set, 0, len(s)+len(s2))
	i, j := 0, 0
	for i < len(s) && j < len(s2) {
		switch {
		case s[i] < s2[j]:
			u = append(u, s[i])
			i++
		case s[i] > s2[j]:
			u = append(u, s2[j])
			j++
		default:
			u = append(u, s[i])
			i++
			j++
		}
	}
	u = append(u, s[i:]...)
	return append(u, s2[j:]...)
}

// Diff returns a new set with the members of s that are not in s2.
func (s Set) Diff(s2 Set) Set {
	d := make(Set, 0, len(s))
	for _, a := range s {
		if !s2.Contains(a) {
			d = append(d, a)
		}
	}
	return d
}

// Strings returns the names of the attributes in order.
func (s Set) Strings() []string {
	strs := make([]string, len(s))
	for i, a := range s {
		strs[i] = string(a)
	}
	return strs
}

// Singles returns true when every attribute name is a single character, in
// which case the set can be written without separators.
func (s Set) Singles() bool {
	for _, a := range s {
		if len([]rune(string(a))) != 1 {
			return false
		}
	}
	return true
}

// Concat writes the attributes one after another, which is the usual way of
// writing a set of single letter attributes like "AB".  If any attribute is
// longer than one character they are separated by commas instead.
func (s Set) Concat() string {
	if s.Singles() {
		return strings.Join(s.Strings(), "")
	}
	return strings.Join(s.Strings(), ",")
}

// String writes the set in braces, like {A, B}.
func (s Set) String() string {
	return "{" + strings.Join(s.Strings(), ", ") + "}"
}
