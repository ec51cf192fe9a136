package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"

	"glossa/internal/adapters/langid/lingua"
	"glossa/internal/adapters/langid/whatlang"
	"glossa/internal/modkit"
	"glossa/internal/platform/config"
	"glossa/internal/platform/logger"

	langsegdom "glossa/internal/services/langseg/domain"
	langsegmod "glossa/internal/services/langseg/module"
)

func main() {
	root := config.New()
	l := logger.Get()

	var (
		text      = flag.String("text", "", "text to segment")
		file      = flag.String("file", "", "read text from file instead of -text")
		provider  = flag.String("provider", "lingua", "detector provider: lingua | whatlang | none")
		langs     = flag.String("langs", "", "comma separated expected languages, e.g. en,el")
		threshold = flag.Float64("threshold", 0.7, "confidence threshold in [0,1]")
		defLang   = flag.String("default", "en", "default language below threshold")
	)
	flag.Parse()

	in := *text
	if *file != "" {
		b, err := os.ReadFile(*file)
		if err != nil {
			log.Fatalf("read -file: %v", err)
		}
		in = string(b)
	}
	if strings.TrimSpace(in) == "" {
		log.Fatal("one of -text or -file is required")
	}

	var expected []string
	if *langs != "" {
		for _, p := range strings.Split(*langs, ",") {
			if v := strings.TrimSpace(p); v != "" {
				expected = append(expected, v)
			}
		}
	}

	var capability langsegdom.DetectorPort
	switch *provider {
	case "lingua":
		capability = lingua.New(lingua.Options{Languages: expected})
	case "whatlang":
		capability = whatlang.New()
	case "none":
	default:
		log.Fatalf("unknown -provider %q", *provider)
	}

	deps := modkit.Deps{Cfg: root, Log: *l}
	lm := langsegmod.New(deps, langsegmod.Options{
		Threshold:     *threshold,
		DefaultLang:   *defLang,
		ExpectedLangs: expected,
	}, modkit.WithPorts(langsegdom.Ports{Capability: capability}))

	ports := lm.Ports().(langsegmod.Ports)
	segs := ports.Segments.Segment(context.Background(), in, langsegdom.SegmentOptions{
		ExpectedLanguages: expected,
		Threshold:         *threshold,
		DefaultLang:       *defLang,
	})

	enc := json.NewEncoder(os.Stdout)
	for _, sg := range segs {
		if err := enc.Encode(sg); err != nil {
			l.Fatal().Err(err).Msg("encode segment")
		}
	}
}
