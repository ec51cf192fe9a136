package module

import "glossa/internal/platform/config"

// Options holds configuration settings for the langseg module
type Options struct {
	CacheSize     int
	Threshold     float64
	DefaultLang   string
	ExpectedLangs []string
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	lcfg := cfg.Prefix("CORE_LANGSEG_")
	return Options{
		CacheSize:     lcfg.MayInt("CACHE_SIZE", 1000),
		Threshold:     lcfg.MayFloat64("THRESHOLD", 0.7),
		DefaultLang:   lcfg.MayString("DEFAULT_LANG", "en"),
		ExpectedLangs: lcfg.MayCSV("EXPECTED_LANGS", nil),
	}
}
