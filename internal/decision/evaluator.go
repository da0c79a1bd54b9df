package decision

import (
	"github.com/go-logr/logr"

	. "github.com/supremind/authorize/types"
)

// Request is a composite demand flattened for evaluation: the actions a call
// site requires, and the role and group names that bypass object checks
type Request struct {
	Actions []Action
	Roles   []string
	Groups  []string
}

// Evaluator decides requests against users and their target objects.
// It is pure and stateless per call: safe for concurrent use as long as its
// configuration is not changed underneath it.
type Evaluator struct {
	allowances Action
	log        logr.Logger
}

// New creates an evaluator falling back to the given allowance set when a
// credential's allowance map has no entry for an object's kind
func New(defaultAllowances Action, log logr.Logger) *Evaluator {
	return &Evaluator{
		allowances: defaultAllowances,
		log:        log,
	}
}

// Decide tells if the user may satisfy the request on the given targets.
//
// An absent user is denied outright. A user holding one of the requested
// role or group names is allowed outright, objects unexamined. Otherwise
// every target carrying a permission matrix is checked in turn: a credential
// restriction hit or a failed allowance on any one target denies the whole
// call, while a target passing those but granting no tier merely yields to
// the next. Values that are not objects are skipped.
func (e *Evaluator) Decide(req Request, user *User, targets []interface{}) bool {
	if user == nil {
		e.log.V(4).Info("deny anonymous user", "actions", req.Actions)
		return false
	}

	if len(req.Roles) > 0 && user.HasRole(req.Roles...) {
		e.log.V(6).Info("allow by role", "user", user.Name, "roles", req.Roles)
		return true
	}
	if len(req.Groups) > 0 && user.InGroup(req.Groups...) {
		e.log.V(6).Info("allow by group", "user", user.Name, "groups", req.Groups)
		return true
	}

	if len(req.Actions) == 0 {
		return false
	}
	operation := Union(req.Actions...)

	creds := user.Credentials()
	for _, target := range targets {
		obj, ok := target.(Object)
		if !ok {
			continue
		}

		if restricted(creds, operation, obj) {
			e.log.V(4).Info("deny by restriction", "user", user.Name, "kind", obj.Kind(), "operation", operation)
			return false
		}
		if !e.allowed(creds, operation, obj) {
			e.log.V(4).Info("deny by allowance", "user", user.Name, "kind", obj.Kind(), "operation", operation)
			return false
		}

		perms := obj.Permissions()

		if operation.IsIn(perms.Other) {
			return true
		}

		if owned, ok := obj.(Owned); ok {
			if o := owned.Owner(); o != nil && o.Name == user.Name && operation.IsIn(perms.Owner) {
				return true
			}
		}

		if grouped, ok := obj.(Grouped); ok {
			if g := grouped.Group(); g != nil && user.MemberOf(*g) && operation.IsIn(perms.Group) {
				return true
			}
		}
	}

	return false
}

// restricted tells if any credential forbids part of the operation on the
// object's kind. A user with no credentials is restricted by nothing.
func restricted(creds []Credential, operation Action, obj Object) bool {
	key := obj.Kind()
	for _, c := range creds {
		if c.Restrictions == nil {
			continue
		}
		if c.Restrictions[key]&operation != None {
			return true
		}
	}
	return false
}

// allowed tells if the credentials together permit the whole operation on the
// object's kind. A user with no credentials, or any single credential without
// an allowance map, permits everything.
func (e *Evaluator) allowed(creds []Credential, operation Action, obj Object) bool {
	if len(creds) == 0 {
		return true
	}

	key := obj.Kind()
	var union Action
	for _, c := range creds {
		if c.Allowances == nil {
			return true
		}
		if a, ok := c.Allowances[key]; ok {
			union |= a
		} else {
			union |= e.allowances
		}
	}

	return operation.IsIn(union)
}
