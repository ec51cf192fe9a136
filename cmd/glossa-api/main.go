package main

import (
	"context"

	"glossa/internal/platform/config"
	"glossa/internal/platform/logger"
	phttp "glossa/internal/platform/net/http"

	"glossa/internal/adapters/langid/lingua"
	"glossa/internal/adapters/langid/whatlang"
	langsegdom "glossa/internal/services/langseg/domain"

	"glossa/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	idCfg := root.Prefix("LANGID_")

	// bring up logging early
	l := logger.Get()

	// external capability selection; "none" runs on the heuristic alone
	var capability langsegdom.DetectorPort
	switch provider := idCfg.MayEnum("PROVIDER", "lingua", "lingua", "whatlang", "none"); provider {
	case "lingua":
		capability = lingua.New(lingua.Options{
			Languages:  idCfg.MayCSV("LANGS", nil),
			MinLetters: idCfg.MayInt("MIN_LETTERS", 0),
			Preload:    idCfg.MayBool("PRELOAD", false),
		})
		l.Info().Str("provider", provider).Msg("language detector configured")
	case "whatlang":
		capability = whatlang.New()
		l.Info().Str("provider", provider).Msg("language detector configured")
	default:
		l.Warn().Msg("no language detector configured; heuristic only")
	}

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:     root,
			Logger:     l,
			Capability: capability,
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
