// Package middleware adapts authorization decisions to net/http handler
// stacks: a deny becomes a 401 response and the wrapped handler never runs.
package middleware

import (
	"net/http"

	"github.com/supremind/authorize"
)

// Targets gathers the candidate objects a request wants to act on,
// e.g. entities loaded from the route parameters
type Targets func(*http.Request) []interface{}

// Guard ties a requirement to the handlers it protects.
// Build one with a fixed requirement, or against a registry handle so
// stacked declarations on the call site are honored at request time.
type Guard struct {
	authz   *authorize.Authorizer
	req     *authorize.Requirement
	reg     *authorize.Registry
	handle  authorize.Handle
	targets Targets
}

// NewGuard creates a guard checking a fixed requirement
func NewGuard(authz *authorize.Authorizer, req *authorize.Requirement, targets Targets) *Guard {
	return &Guard{
		authz:   authz,
		req:     req,
		targets: targets,
	}
}

// Registered creates a guard checking whatever composite requirement is
// registered under the handle when a request arrives
func Registered(authz *authorize.Authorizer, reg *authorize.Registry, h authorize.Handle, targets Targets) *Guard {
	return &Guard{
		authz:   authz,
		reg:     reg,
		handle:  h,
		targets: targets,
	}
}

// Check decides the guard's requirement for the current user on the given
// targets. A deny is reported as ErrDenied.
func (g *Guard) Check(targets ...interface{}) error {
	if !g.authz.Allowed(g.requirement(), targets...) {
		return authorize.ErrDenied
	}
	return nil
}

// Wrap decorates next with the guard's check: request targets are gathered,
// decided, and only an allow reaches next. Wrapping nothing is an
// ErrInvalidUsage.
func (g *Guard) Wrap(next http.Handler) (http.Handler, error) {
	if next == nil {
		return nil, authorize.ErrInvalidUsage
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var targets []interface{}
		if g.targets != nil {
			targets = g.targets(r)
		}
		if g.Check(targets...) != nil {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	}), nil
}

// Middleware is Wrap in the form router stacks expect.
// It panics on ErrInvalidUsage, which a router can only cause by passing a
// nil handler at setup time.
func (g *Guard) Middleware(next http.Handler) http.Handler {
	h, e := g.Wrap(next)
	if e != nil {
		panic(e)
	}
	return h
}

func (g *Guard) requirement() *authorize.Requirement {
	if g.reg != nil {
		if req, ok := g.reg.Lookup(g.handle); ok {
			return req
		}
		return nil
	}
	return g.req
}
