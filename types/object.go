package types

import "reflect"

// Kind is the canonical lookup key derived from an object's concrete type.
// Restriction and allowance overrides are keyed by Kind, so two unrelated
// domain types must never share one.
type Kind string

// KindOf derives a Kind from the concrete type of v, pointers unwrapped.
// Keys include the package path, so distinct types never collide.
func KindOf(v interface{}) Kind {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	if t.PkgPath() == "" {
		return Kind(t.String())
	}
	return Kind(t.PkgPath() + "." + t.Name())
}

// PermissionMatrix is the three tier permission set on an object.
// A zero tier permits nothing on that tier.
type PermissionMatrix struct {
	Owner Action
	Group Action
	Other Action
}

// Object is a domain entity guarded by a permission matrix.
// Values that do not implement Object are transparent to decisions:
// they never block, never grant.
type Object interface {
	// Kind is the key overrides are looked up by
	Kind() Kind
	// Permissions is the object's tier matrix
	Permissions() PermissionMatrix
}

// Owned is an Object with a known owner.
// A nil owner is treated as not owned.
type Owned interface {
	Object
	Owner() *User
}

// Grouped is an Object belonging to a group.
// A nil group is treated as not grouped.
type Grouped interface {
	Object
	Group() *Group
}
