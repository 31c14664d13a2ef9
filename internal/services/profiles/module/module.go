// Package module implements the profiles service module
package module

import (
	"forumfeed/internal/modkit"
	"forumfeed/internal/modkit/httpkit"
	"forumfeed/internal/modkit/repokit"
	"forumfeed/internal/services/profiles/domain"
	"forumfeed/internal/services/profiles/repo"
	"forumfeed/internal/services/profiles/service"
)

// Ports exposed by the profiles module
type Ports struct {
	Reader domain.ReaderPort
}

// Module implements the profiles service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new profiles module
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	binder := repo.NewPG()
	svc := service.New(repokit.TxRunner(deps.PG), binder, service.Config{
		PublicURL:  opts.PublicURL,
		AvatarSize: opts.AvatarSize,
	})

	m := &Module{deps: deps}
	m.ports = Ports{Reader: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "profiles" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
