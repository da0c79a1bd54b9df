package authorize

import (
	"sync"

	"github.com/google/uuid"
)

// Handle identifies a declared call site. Handles are issued by Declare and
// are unique within the process, so two call sites never merge their
// requirements by accident, whatever they happen to be named.
type Handle string

// Registry accumulates the requirements declared against call sites.
// Registering twice under one handle merges by concatenation, so stacked
// declarations on the same call site add up.
//
// The registry is safe for concurrent use, though the expected discipline is
// declare then freeze: register everything before serving traffic.
type Registry struct {
	mu      sync.RWMutex
	entries map[Handle]*Requirement
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[Handle]*Requirement),
	}
}

// Declare issues a fresh handle for a call site
func (r *Registry) Declare() Handle {
	return Handle(uuid.NewString())
}

// Register stores the requirement under the handle, merging with whatever was
// registered there before, and returns the stored composite
func (r *Registry) Register(h Handle, req *Requirement) *Requirement {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.entries[h]; ok {
		req = prev.Merge(req)
	} else {
		req = (&Requirement{}).Merge(req)
	}
	r.entries[h] = req
	return req
}

// Lookup returns the composite requirement registered under the handle
func (r *Registry) Lookup(h Handle) (*Requirement, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.entries[h]
	return req, ok
}
