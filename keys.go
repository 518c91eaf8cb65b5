// keys finds the candidate keys of a heading

package candkey

import (
	"context"

	"github.com/jonlawlor/candkey/att"
)

// CandidateKeys returns every candidate key of the heading under the FDs.
// Smaller keys come first, and keys of the same size are in alphabetical
// order.  The relation with an empty heading has one key, the empty set.
//
// Attributes that appear in the FDs but not in the heading never help to
// determine the heading, and are otherwise ignored.
func CandidateKeys(heading att.Set, fds []FD) att.CandKeys {
	// the background context is never cancelled
	cks, _ := CandidateKeysContext(context.Background(), heading, fds)
	return cks
}

// CandidateKeysContext is like CandidateKeys, but stops when ctx is done.
// ctx is checked once for every subset of the heading that is tried.  When
// it stops early it returns the keys found so far along with ctx.Err().
func CandidateKeysContext(ctx context.Context, heading att.Set, fds []FD) (att.CandKeys, error) {
	heading = att.NewSet(heading...)
	fds = normalize(fds)
	cks := att.CandKeys{}

	// go through the subsets in order of size, so that every key is found
	// before any of its supersets are considered.  The empty subset is
	// included so that the empty heading has a key.
	for r := 0; r <= heading.Len(); r++ {
		err := combinations(heading.Len(), r, func(idx []int) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s := make(att.Set, len(idx))
			for i, j := range idx {
				s[i] = heading[j]
			}
			if cks.HasSubsetOf(s) {
				// a superkey but not irreducible
				return nil
			}
			if heading.IsSubset(closure(s, fds)) {
				cks = append(cks, s)
			}
			return nil
		})
		if err != nil {
			return cks, err
		}
	}
	return cks, nil
}

// PrimeAttributes returns the attributes of the heading that are part of
// at least one candidate key.
func PrimeAttributes(heading att.Set, fds []FD) att.Set {
	return CandidateKeys(heading, fds).Prime()
}
