package att

import (
	"fmt"
)

// DomainError represents an error that occurs when a set of attributes is
// expected to be a subdomain of some heading, but names attributes that the
// heading does not have.
type DomainError struct {
	Expected Set
	Found    Set
	// Missing holds the attributes of Found that are not in Expected
	Missing Set
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("att: expected subdomain of %v, found %v (unknown %v)", e.Expected, e.Found, e.Missing)
}

// EnsureSubDomain returns a *DomainError if sub is not a subdomain of dom.
func EnsureSubDomain(sub, dom Set) error {
	if sub.IsSubset(dom) {
		return nil
	}
	return &DomainError{Expected: dom, Found: sub, Missing: sub.Diff(dom)}
}
