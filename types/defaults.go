package types

// DefaultPermissions is the tier matrix assumed for objects whose host model
// does not declare one: owners may read, update and delete, group members may
// read and update, everyone else may read.
func DefaultPermissions() PermissionMatrix {
	return PermissionMatrix{
		Owner: Read | Update | Delete,
		Group: Read | Update,
		Other: Read,
	}
}

// DefaultAllowances is the action set assumed permitted when a credential's
// allowance map has no entry for a kind
func DefaultAllowances() Action {
	return Read | Update | Delete
}

// DefaultRestrictions is the action set assumed forbidden when nothing is
// declared: nothing
func DefaultRestrictions() Action {
	return None
}
