// Package api provides the HTTP API for the application
package api

import (
	"forumfeed/internal/platform/config"
	"forumfeed/internal/platform/logger"
	phttp "forumfeed/internal/platform/net/http"
	"forumfeed/internal/platform/store"

	"forumfeed/internal/modkit"
	"forumfeed/internal/modkit/httpkit"
	"forumfeed/internal/modkit/module"
	"forumfeed/internal/modkit/swaggerkit"

	metamod "forumfeed/internal/services/api/meta/module"
	enrolmod "forumfeed/internal/services/enrolments/module"
	feedmod "forumfeed/internal/services/feed/module"
	profmod "forumfeed/internal/services/profiles/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// enrolments and profiles first; the feed pipeline consumes their ports
	enrolments := enrolmod.New(deps)
	eports := module.MustPortsOf[enrolmod.Ports](enrolments)

	profiles := profmod.New(deps)
	pports := module.MustPortsOf[profmod.Ports](profiles)

	feed := feedmod.New(
		deps,
		modkit.WithPorts(feedmod.Ports{
			Courses: eports.Courses,
			Roles:   eports.Roles,
			Reader:  pports.Reader,
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		enrolments,
		profiles,
		feed,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
