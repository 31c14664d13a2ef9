// Package module implements the enrolments service module
package module

import (
	"forumfeed/internal/modkit"
	"forumfeed/internal/modkit/httpkit"
	"forumfeed/internal/modkit/repokit"
	"forumfeed/internal/services/enrolments/domain"
	"forumfeed/internal/services/enrolments/repo"
	"forumfeed/internal/services/enrolments/service"
)

// Ports exposed by the enrolments module
type Ports struct {
	Courses domain.CoursesPort
	Roles   domain.RolesPort
}

// Module implements the enrolments service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new enrolments module
func New(deps modkit.Deps) *Module {
	binder := repo.NewPG()
	svc := service.New(repokit.TxRunner(deps.PG), binder, deps.Clk())

	m := &Module{deps: deps}
	m.ports = Ports{
		Courses: svc,
		Roles:   svc,
	}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "enrolments" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
