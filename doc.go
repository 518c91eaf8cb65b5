// Package candkey finds the candidate keys of a relation from its functional
// dependencies.
//
// Basics
//
// A relation has a heading, which is a set of attributes, and a set of
// functional dependencies (FDs) between them.  An FD X -> Y says that any two
// tuples which agree on the attributes in X also agree on the attributes in
// Y.  The terminology here follows C. J. Date's "Database in Depth".
//
// The closure of a set of attributes S is every attribute that S determines,
// directly or through a chain of FDs.  Closure computes it by applying the
// FDs whose determinants are already covered until nothing more is added.
//
// A superkey is a set of attributes whose closure is the whole heading.  A
// candidate key is an irreducible superkey: none of its proper subsets is a
// superkey.  Every relation has at least one candidate key, because the
// heading is always a superkey of itself.  The relation with no attributes
// has exactly one candidate key, the empty set.
//
// CandidateKeys finds all of the candidate keys by trying every subset of
// the heading in order of increasing size, and keeping the superkeys that do
// not contain a key found earlier.  This is exponential in the size of the
// heading, so it is only suitable for relations with a few dozen attributes
// at most.
//
// Attributes and sets of attributes are defined in the subpackage
// github.com/jonlawlor/candkey/att.
//
// Text
//
// Relations and FDs can be parsed from the usual textbook notation.  A
// heading is a comma separated list of attribute names, like "A, B, C, D".
// FDs are comma separated as well, with the determinant and dependent sides
// split by "-" or "->", like "AB-C, CD-E".  Each letter of a side is one
// attribute unless the FDs are parsed with ParseWordFDs, in which case the
// attribute names on a side are separated by spaces, like "emp dept -> mgr".
//
// Schemas can also be read from YAML with LoadSchema.
//
package candkey

// variable naming conventions
//
// s, s1, s2, ... all represent sets of attributes.
//
// fd, fd1, fd2, ... all represent functional dependencies, and fds is a
// slice of them.
//
// ck, ck1, ck2, ... all represent candidate keys, and cks is a slice of them.
