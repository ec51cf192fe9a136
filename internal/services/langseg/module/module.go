// Package module wires language segmentation into the API using modkit
package module

import (
	"net/http"

	modkit "glossa/internal/modkit"
	"glossa/internal/modkit/httpkit"
	str "glossa/internal/platform/strings"
	"glossa/internal/services/langseg/domain"
	langseghttp "glossa/internal/services/langseg/http"
	langsegsvc "glossa/internal/services/langseg/service"
)

// Ports exposed by the langseg module for cross wiring
type Ports struct {
	Words    domain.WordDetectorPort
	Segments domain.SegmenterPort
}

// Module implements modkit.Module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws      []func(http.Handler) http.Handler
	ports    Ports
	register func(httpkit.Router)
}

// New constructs the langseg module. An external detection capability is
// injected via modkit.WithPorts(domain.Ports{...}); leaving it unset means
// detection runs on the heuristic alone
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("langseg"),
		modkit.WithPrefix("/langseg"),
	}, opts...)...)

	// the capability is optional; a zero Ports value is valid wiring
	var capability domain.DetectorPort
	if p, ok := b.Ports.(domain.Ports); ok {
		capability = p.Capability
	}

	// merge config + overrides
	cfg := FromConfig(deps.Cfg)
	if overrides.CacheSize != 0 {
		cfg.CacheSize = overrides.CacheSize
	}
	if overrides.Threshold != 0 {
		cfg.Threshold = overrides.Threshold
	}
	if overrides.DefaultLang != "" {
		cfg.DefaultLang = overrides.DefaultLang
	}
	if len(overrides.ExpectedLangs) > 0 {
		cfg.ExpectedLangs = overrides.ExpectedLangs
	}

	words := langsegsvc.NewWordDetector(capability, langsegsvc.DetectorConfig{
		CacheSize: cfg.CacheSize,
	})
	segments := langsegsvc.NewSegmenter(words)

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		ports:  Ports{Words: words, Segments: segments},
	}

	defaults := langseghttp.Defaults{
		Threshold:         cfg.Threshold,
		DefaultLang:       cfg.DefaultLang,
		ExpectedLanguages: cfg.ExpectedLangs,
	}
	external := b.Register
	m.register = func(r httpkit.Router) {
		langseghttp.Register(r, m.ports.Words, m.ports.Segments, defaults)
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
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module port set
func (m *Module) Ports() any { return m.ports }
