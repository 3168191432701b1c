package catalog

import "github.com/feral-file/ff-catalog/internal/domain"

// Scope selects which registry tokens a sync covers
type Scope struct {
	owner string
}

// AllTokens scopes a sync to every token in the registry
func AllTokens() Scope {
	return Scope{}
}

// OwnedBy scopes a sync to tokens owned or listed by address
func OwnedBy(address string) Scope {
	return Scope{owner: address}
}

// Owner returns the owner address and whether the scope is owner-bound
func (s Scope) Owner() (string, bool) {
	return s.owner, s.owner != ""
}

// Label is the metrics label of the scope
func (s Scope) Label() string {
	if s.owner != "" {
		return "owner"
	}
	return "all"
}

// Validate checks the owner address of an owner-bound scope
func (s Scope) Validate() error {
	if s.owner == "" {
		return nil
	}
	_, err := domain.NormalizeAddress(s.owner)
	return err
}
