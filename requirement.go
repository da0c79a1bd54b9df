package authorize

import (
	"github.com/supremind/authorize/types"
)

// Requirement is what a call site demands before its operation may run:
// actions the user needs on the targets, and role or group names that bypass
// object checks entirely. Requirements are immutable: builders and Merge
// always return new values.
type Requirement struct {
	actions []types.Action
	roles   []string
	groups  []string
	models  []types.Kind
}

// Permission demands the given actions on every checked target
func Permission(actions ...types.Action) *Requirement {
	return &Requirement{actions: append([]types.Action(nil), actions...)}
}

// Read demands read permission
func Read() *Requirement { return Permission(types.Read) }

// Update demands update permission
func Update() *Requirement { return Permission(types.Update) }

// Delete demands delete permission
func Delete() *Requirement { return Permission(types.Delete) }

// Create demands create permission on the given model kind.
// The kind is carried for boundary decoration, it is not part of decisions.
func Create(model types.Kind) *Requirement {
	return &Requirement{
		actions: []types.Action{types.Create},
		models:  []types.Kind{model},
	}
}

// HasRole demands that the user hold one of the named roles
func HasRole(roles ...string) *Requirement {
	return &Requirement{roles: append([]string(nil), roles...)}
}

// InGroup demands that the user be in one of the named groups
func InGroup(groups ...string) *Requirement {
	return &Requirement{groups: append([]string(nil), groups...)}
}

// Merge concatenates two requirements field by field into a new one.
// Duplicates are kept: merging is declaration bookkeeping, the decision
// collapses them later.
func (r *Requirement) Merge(other *Requirement) *Requirement {
	if other == nil {
		other = &Requirement{}
	}
	return &Requirement{
		actions: concatActions(r.actions, other.actions),
		roles:   concatStrings(r.roles, other.roles),
		groups:  concatStrings(r.groups, other.groups),
		models:  concatKinds(r.models, other.models),
	}
}

// Actions returns a copy of the demanded actions
func (r *Requirement) Actions() []types.Action {
	return append([]types.Action(nil), r.actions...)
}

// Roles returns a copy of the bypass role names
func (r *Requirement) Roles() []string {
	return append([]string(nil), r.roles...)
}

// Groups returns a copy of the bypass group names
func (r *Requirement) Groups() []string {
	return append([]string(nil), r.groups...)
}

// Models returns a copy of the associated model kinds
func (r *Requirement) Models() []types.Kind {
	return append([]types.Kind(nil), r.models...)
}

func concatActions(a, b []types.Action) []types.Action {
	out := make([]types.Action, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

func concatStrings(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

func concatKinds(a, b []types.Kind) []types.Kind {
	out := make([]types.Kind, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
