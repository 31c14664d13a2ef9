// Package module wires the feed pipeline into the API using modkit
package module

import (
	"net/http"

	"forumfeed/internal/modkit"
	"forumfeed/internal/modkit/httpkit"
	"forumfeed/internal/modkit/repokit"

	"forumfeed/internal/services/feed/domain"
	fhttp "forumfeed/internal/services/feed/http"
	"forumfeed/internal/services/feed/repo"
	"forumfeed/internal/services/feed/service"

	edom "forumfeed/internal/services/enrolments/domain"
	pdom "forumfeed/internal/services/profiles/domain"
)

// Ports declares the injected module ports the feed depends on, and once
// built, the feed port it exposes
type Ports struct {
	Courses edom.CoursesPort
	Roles   edom.RolesPort
	Reader  pdom.ReaderPort

	Feed domain.FeedPort
}

// Module implements the feed service module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     Ports
	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// New constructs the feed module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("feed"),
		modkit.WithPrefix("/feed"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Courses == nil || injected.Roles == nil {
		panic("feed module requires Courses and Roles ports (from services/enrolments)")
	}
	if injected.Reader == nil {
		panic("feed module requires Reader port (from services/profiles)")
	}

	svc := service.New(
		repokit.TxRunner(deps.PG),
		repo.NewPG(),
		injected.Courses,
		injected.Roles,
		injected.Reader,
		deps.Clk(),
		service.Config{
			Window:      cfg.Window,
			RecentLimit: cfg.RecentLimit,
			PublicURL:   cfg.PublicURL,
			Title:       cfg.Title,
		},
	)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
	}
	m.ports = Ports{
		Courses: injected.Courses,
		Roles:   injected.Roles,
		Reader:  injected.Reader,
		Feed:    svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		fhttp.Register(r, svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return m.name }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.prefix }
