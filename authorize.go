package authorize

import (
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	"github.com/supremind/authorize/internal/decision"
	"github.com/supremind/authorize/types"
)

// CurrentUser resolves the user a decision is being made for, typically from
// a request scoped session. Returning nil means the request is anonymous.
type CurrentUser func() *types.User

// Authorizer decides whether users may perform operations on target objects
type Authorizer struct {
	current      CurrentUser
	permissions  types.PermissionMatrix
	allowances   types.Action
	restrictions types.Action
	eval         *decision.Evaluator
	log          logr.Logger
}

// New creates an Authorizer. A current user accessor is required; defaults
// not overridden by options follow the permission model presets.
func New(opts ...Option) (*Authorizer, error) {
	cfg := &Config{
		permissions:  types.DefaultPermissions(),
		allowances:   types.DefaultAllowances(),
		restrictions: types.DefaultRestrictions(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.log.GetSink() == nil {
		cfg.log = stdr.New(log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile))
	}

	if cfg.current == nil {
		return nil, ErrNoCurrentUser
	}

	return &Authorizer{
		current:      cfg.current,
		permissions:  cfg.permissions,
		allowances:   cfg.allowances,
		restrictions: cfg.restrictions,
		eval:         decision.New(cfg.allowances, cfg.log.WithName("decision")),
		log:          cfg.log,
	}, nil
}

// Allowed tells if the current user may satisfy the requirement on the given
// targets. The user is resolved through the configured accessor; an absent
// user is denied.
func (a *Authorizer) Allowed(req *Requirement, targets ...interface{}) bool {
	return a.AllowedFor(req, a.current(), targets...)
}

// AllowedFor is Allowed for an explicitly supplied user
func (a *Authorizer) AllowedFor(req *Requirement, user *types.User, targets ...interface{}) bool {
	if req == nil {
		req = &Requirement{}
	}
	return a.eval.Decide(decision.Request{
		Actions: req.actions,
		Roles:   req.roles,
		Groups:  req.groups,
	}, user, targets)
}

// DefaultPermissions is the tier matrix host models should assign to objects
// that do not declare their own
func (a *Authorizer) DefaultPermissions() types.PermissionMatrix {
	return a.permissions
}

// DefaultAllowances is the allowance set assumed for credentials whose
// allowance map has no entry for an object's kind
func (a *Authorizer) DefaultAllowances() types.Action {
	return a.allowances
}

// DefaultRestrictions is the restriction set host models should assign to
// credentials that do not declare their own
func (a *Authorizer) DefaultRestrictions() types.Action {
	return a.restrictions
}

// Config works together with Option to control the initialization of an authorizer
type Config struct {
	current      CurrentUser
	permissions  types.PermissionMatrix
	allowances   types.Action
	restrictions types.Action
	log          logr.Logger
}

// Option controls how to init an authorizer
type Option func(*Config)

// WithCurrentUser sets the accessor resolving the user of the request being served
func WithCurrentUser(fn CurrentUser) Option {
	return func(cfg *Config) {
		cfg.current = fn
	}
}

// WithDefaultPermissions overrides the preset tier matrix for new objects
func WithDefaultPermissions(m types.PermissionMatrix) Option {
	return func(cfg *Config) {
		cfg.permissions = m
	}
}

// WithDefaultAllowances overrides the allowance set assumed for credentials
// without an explicit entry for a kind
func WithDefaultAllowances(a types.Action) Option {
	return func(cfg *Config) {
		cfg.allowances = a
	}
}

// WithDefaultRestrictions overrides the preset restriction set for new credentials
func WithDefaultRestrictions(a types.Action) Option {
	return func(cfg *Config) {
		cfg.restrictions = a
	}
}

// WithLogger sets logger for authorizer components
func WithLogger(l logr.Logger) Option {
	return func(cfg *Config) {
		cfg.log = l
	}
}
