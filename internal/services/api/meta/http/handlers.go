// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"strings"
	"time"

	"forumfeed/internal/core/lang"
	"forumfeed/internal/core/version"
	"forumfeed/internal/modkit/httpkit"
)

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	PG          any

	// Title overrides the localized dashboard title when set
	Title string

	// PublicURL is the externally visible base of the host site
	PublicURL string
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/", h.info)
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/placement", h.placement)
}

//
// Swagger DTOs and route docs
//

// InfoResponse describes the service and what it renders
type InfoResponse struct {
	Name        string `json:"name"        example:"forumfeed-api"`
	Version     string `json:"version"     example:"dev"`
	Description string `json:"description" example:"Recent and popular forum posts from your courses."`
}

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"forumfeed-api"`
	Started string `json:"started"  example:"2026-01-09T13:00:00Z"`
	Now     string `json:"now"      example:"2026-01-09T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"pg"`
	Status string `json:"status" example:"ok"` // ok fail skipped unknown
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432 connect: connection refused"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-01-09T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"forumfeed-api"`
	Started string `json:"started" example:"2026-01-09T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// PlacementResponse declares where the dashboard widget may appear and the
// localized chrome around it
type PlacementResponse struct {
	Formats      map[string]bool `json:"formats"`
	Title        string          `json:"title"        example:"Forum activity"`
	Description  string          `json:"description"  example:"Recent and popular forum posts from your courses."`
	ViewAllLabel string          `json:"viewalllabel" example:"View your forum posts"`
	ViewAllURL   string          `json:"viewallurl"   example:"https://moodle.example/mod/forum/user.php"`
}

// @Summary Service name, version and localized description
// @Tags Meta
// @Produce json
// @Success 200 {object} InfoResponse "ok"
// @Router /meta [get]
func (h *handlers) info(r *http.Request) (any, error) {
	loc := lang.Match(httpkit.Locale(r))
	return InfoResponse{
		Name:        h.deps.ServiceName,
		Version:     version.Info().Version,
		Description: loc.T(lang.KeyDescription),
	}, nil
}

// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(_ *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(stdctx.Background(), 2*time.Second)
	defer cancel()

	check := func(name string, c any) ReadyCheck {
		if c == nil {
			return ReadyCheck{Name: name, Status: "skipped"}
		}
		if p, ok := c.(Pinger); ok {
			if err := p.Ping(ctx); err != nil {
				return ReadyCheck{Name: name, Status: "fail", Error: err.Error()}
			}
			return ReadyCheck{Name: name, Status: "ok"}
		}
		return ReadyCheck{Name: name, Status: "unknown"}
	}

	pg := check("pg", h.deps.PG)

	overall := "ok"
	if pg.Status != "ok" {
		overall = "degraded"
		if pg.Status == "fail" {
			overall = "fail"
		}
	}

	return ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{pg},
		Now:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

// @Summary Dashboard placement declaration
// @Tags Meta
// @Produce json
// @Success 200 {object} PlacementResponse "ok"
// @Router /meta/placement [get]
func (h *handlers) placement(r *http.Request) (any, error) {
	loc := lang.Match(httpkit.Locale(r))

	title := h.deps.Title
	if title == "" {
		title = loc.T(lang.KeyPluginName)
	}

	return PlacementResponse{
		// the widget renders on the dashboard only
		Formats:      map[string]bool{"my": true, "all": false},
		Title:        title,
		Description:  loc.T(lang.KeyDescription),
		ViewAllLabel: loc.T(lang.KeyViewYourPosts),
		ViewAllURL:   strings.TrimRight(h.deps.PublicURL, "/") + "/mod/forum/user.php",
	}, nil
}
