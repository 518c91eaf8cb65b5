// Package att represents attributes, the sets of attributes that make up
// relation headings and functional dependencies, and the candidate keys
// constructed from them.
package att

import (
	"sort"
)

// Attribute represents a particular attribute's name in a relation
type Attribute string

// CandKeys is a set of candidate keys
// they should be unique and sorted
type CandKeys []Set

// OrderCandidateKeys sorts candidate keys by number of attributes and then
// alphabetically.  Each key is already in canonical order because it is a Set.
func OrderCandidateKeys(ckeys CandKeys) {
	sort.Sort(ckeys)
}

// String2CandKeys converts a slice of string slices into a set of candidate
// keys.  The result is not sorted, so OrderCandidateKeys should be called
// afterwards if the input is not already sorted in the same way.
func String2CandKeys(ckeystrs [][]string) CandKeys {
	cks := make(CandKeys, len(ckeystrs))
	for i, ckstr := range ckeystrs {
		cks[i] = FromStrings(ckstr...)
	}
	return cks
}

// definitions for the candidate key sorting
func (cks CandKeys) Len() int {
	return len(cks)
}
func (cks CandKeys) Swap(i, j int) {
	cks[i], cks[j] = cks[j], cks[i]
}

// less compares two candidate keys
func less(ck1, ck2 Set) bool {
	if len(ck1) == len(ck2) {
		// alphabetical ordering
		for k := range ck1 {
			if ck1[k] < ck2[k] {
				return true
			} else if ck1[k] > ck2[k] {
				return false
			}
		}
		return false
	}
	return len(ck1) < len(ck2)
}

func (cks CandKeys) Less(i, j int) bool {
	// note this is smallest to largest
	return less(cks[i], cks[j])
}

// Strings returns the attribute names of each key.
func (cks CandKeys) Strings() [][]string {
	strs := make([][]string, len(cks))
	for i, ck := range cks {
		strs[i] = ck.Strings()
	}
	return strs
}

// Prime returns the prime attributes, which are the attributes that belong
// to at least one of the candidate keys.
func (cks CandKeys) Prime() Set {
	var prime Set
	for _, ck := range cks {
		prime = prime.Union(ck)
	}
	return prime
}

// HasSubsetOf returns true if any of the keys is a subset of s.
func (cks CandKeys) HasSubsetOf(s Set) bool {
	for _, ck := range cks {
		if ck.IsSubset(s) {
			return true
		}
	}
	return false
}
