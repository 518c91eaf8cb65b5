// fd defines functional dependencies and the closure of sets of attributes
// under them.

package candkey

import (
	"strings"

	"github.com/jonlawlor/candkey/att"
)

// FD is a functional dependency, LHS -> RHS.  The LHS is the determinant and
// the RHS is the dependent.
type FD struct {
	LHS att.Set
	RHS att.Set
}

// NewFD constructs a functional dependency from the names of the attributes
// on each side.
func NewFD(lhs, rhs []string) FD {
	return FD{att.FromStrings(lhs...), att.FromStrings(rhs...)}
}

// Attributes returns every attribute mentioned by the FD.
func (fd FD) Attributes() att.Set {
	return fd.LHS.Union(fd.RHS)
}

// IsTrivial returns true if the dependent is a subset of the determinant, so
// that the FD holds in every relation.
func (fd FD) IsTrivial() bool {
	return fd.RHS.IsSubset(fd.LHS)
}

// String writes the FD in the same notation that ParseFDs reads, like "AB-C".
// If any attribute has a longer name the notation of ParseWordFDs is used
// instead, like "emp dept -> mgr".
func (fd FD) String() string {
	if fd.LHS.Singles() && fd.RHS.Singles() {
		return fd.LHS.Concat() + "-" + fd.RHS.Concat()
	}
	return strings.Join(fd.LHS.Strings(), " ") + " -> " + strings.Join(fd.RHS.Strings(), " ")
}

// FDString writes a list of FDs separated by commas.
func FDString(fds []FD) string {
	strs := make([]string, len(fds))
	for i, fd := range fds {
		strs[i] = fd.String()
	}
	return strings.Join(strs, ", ")
}

// Attributes returns every attribute mentioned by any of the FDs.
func Attributes(fds []FD) att.Set {
	var s att.Set
	for _, fd := range fds {
		s = s.Union(fd.Attributes())
	}
	return s
}

// normalize returns a copy of the FDs with both sides sorted and without
// duplicates, so that the set operations on them can be used.
func normalize(fds []FD) []FD {
	norm := make([]FD, len(fds))
	for i, fd := range fds {
		norm[i] = FD{att.NewSet(fd.LHS...), att.NewSet(fd.RHS...)}
	}
	return norm
}

// Closure returns the closure of the attributes in start under the FDs,
// which is the smallest superset of start that contains the dependent of
// every FD whose determinant it contains.  The order of the FDs does not
// change the result.  The returned set is new; start is not modified.
func Closure(start att.Set, fds []FD) att.Set {
	return closure(att.NewSet(start...), normalize(fds))
}

// closure is Closure for a start set and FDs that are already normalized.
func closure(s1 att.Set, fds []FD) att.Set {
	for {
		s2 := s1
		for _, fd := range fds {
			if fd.LHS.IsSubset(s1) {
				s2 = s2.Union(fd.RHS)
			}
		}
		// s2 is always a superset of s1, so it only differs if it grew
		if s2.Len() == s1.Len() {
			return s1
		}
		s1 = s2
	}
}

// IsSuperkey returns true if the closure of s under the FDs contains every
// attribute of the heading.
func IsSuperkey(s, heading att.Set, fds []FD) bool {
	return att.NewSet(heading...).IsSubset(Closure(s, fds))
}
