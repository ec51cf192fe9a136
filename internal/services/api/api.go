// Package api provides the HTTP API for the application
package api

import (
	"glossa/internal/platform/config"
	"glossa/internal/platform/logger"
	phttp "glossa/internal/platform/net/http"

	"glossa/internal/modkit"
	"glossa/internal/modkit/httpkit"
	"glossa/internal/modkit/module"
	"glossa/internal/platform/net/middleware"

	metamod "glossa/internal/services/api/meta/module"
	langsegdom "glossa/internal/services/langseg/domain"
	langsegmod "glossa/internal/services/langseg/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Logger *logger.Logger

	// Capability is the optional external language detector; nil means the
	// heuristic path handles everything
	Capability langsegdom.DetectorPort
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg: opt.Config,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	ls := langsegmod.New(
		deps,
		langsegmod.Options{},
		modkit.WithPorts(langsegdom.Ports{Capability: opt.Capability}),
		modkit.WithMiddlewares(middleware.ScopeTag(map[string]string{"module": "langseg"})),
	)

	meta := metamod.New(deps,
		modkit.WithMiddlewares(middleware.ScopeTag(map[string]string{"module": "meta"})),
	)

	mods := []module.Module{ls, meta}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		for _, m := range mods {
			// register ports under the module name for cross-module lookups
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}
