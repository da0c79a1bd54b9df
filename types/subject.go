package types

// Credential is a role or a group attached to a user. A credential may carry
// per-kind overrides narrowing what its holder can do.
type Credential struct {
	Name string

	// Restrictions maps object kinds to actions this credential forbids.
	// A nil map forbids nothing; a non-nil map with no entry for a kind
	// forbids nothing on that kind.
	Restrictions Overrides

	// Allowances maps object kinds to actions this credential permits.
	// A nil map permits everything; a non-nil map with no entry for a kind
	// falls back to the configured default allowances on that kind.
	Allowances Overrides
}

// Overrides maps object kinds to action sets
type Overrides map[Kind]Action

// Role is a named capacity granted to users, and a Credential in decisions
type Role Credential

// Group is a named collection of users, and a Credential in decisions
type Group Credential

// User is the acting principal whose access is being decided.
// Nil Roles or Groups mean the user model has no such concept at all;
// for decisions this is the same as holding none.
type User struct {
	Name   string
	Roles  []Role
	Groups []Group
}

// Credentials returns the user's roles then groups, in the order they are
// held. The order carries no meaning for decisions but is stable.
func (u *User) Credentials() []Credential {
	if u == nil {
		return nil
	}

	creds := make([]Credential, 0, len(u.Roles)+len(u.Groups))
	for _, r := range u.Roles {
		creds = append(creds, Credential(r))
	}
	for _, g := range u.Groups {
		creds = append(creds, Credential(g))
	}
	return creds
}

// HasRole tells if the user holds a role with one of the given names
func (u *User) HasRole(names ...string) bool {
	if u == nil {
		return false
	}

	for _, r := range u.Roles {
		for _, name := range names {
			if r.Name == name {
				return true
			}
		}
	}
	return false
}

// InGroup tells if the user is in a group with one of the given names
func (u *User) InGroup(names ...string) bool {
	if u == nil {
		return false
	}

	for _, g := range u.Groups {
		for _, name := range names {
			if g.Name == name {
				return true
			}
		}
	}
	return false
}

// MemberOf tells if the user is in the given group
func (u *User) MemberOf(g Group) bool {
	if u == nil {
		return false
	}

	for _, mine := range u.Groups {
		if mine.Name == g.Name {
			return true
		}
	}
	return false
}
