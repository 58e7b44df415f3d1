package internal

import (
	"flag"
	"os"
	"time"
)

var c *config

const (
	LookupEndpoint  = "LOOKUP_ENDPOINT"
	RequestTimeout  = "REQUEST_TIMEOUT"
	RefreshInterval = "REFRESH_INTERVAL"
	LegacyAPI       = "LEGACY_API"
)

const defaultLookupEndpoint = ""

type config struct {
	LookupEndpoint  string
	RequestTimeout  time.Duration
	RefreshInterval time.Duration
	LegacyAPI       bool

	OrderRef   string
	ReceiptDir string
	Watch      bool
}

func NewConfig() *config {
	c = new(config)

	flag.StringVar(&c.LookupEndpoint, "e", setEnvOrDefault(LookupEndpoint, defaultLookupEndpoint), "order lookup endpoint URL")
	flag.DurationVar(&c.RequestTimeout, "t", envDurationOrDefault(RequestTimeout, DefaultRequestTimeout), "lookup request timeout")
	flag.DurationVar(&c.RefreshInterval, "i", envDurationOrDefault(RefreshInterval, DefaultRefreshInterval), "auto-refresh interval")
	flag.BoolVar(&c.LegacyAPI, "legacy", os.Getenv(LegacyAPI) == "true", "use the legacy getStatus request convention")

	flag.StringVar(&c.OrderRef, "r", "", "order reference to track")
	flag.StringVar(&c.ReceiptDir, "receipt", "", "directory to save a PDF receipt into")
	flag.BoolVar(&c.Watch, "w", false, "keep refreshing until the order reaches a terminal status")

	flag.Parse()
	return c
}

func setEnvOrDefault(env, def string) string {
	res, e := os.LookupEnv(env)
	if !e {
		res = def
	}
	return res
}

func envDurationOrDefault(env string, def time.Duration) time.Duration {
	res, e := os.LookupEnv(env)
	if !e {
		return def
	}
	d, err := time.ParseDuration(res)
	if err != nil {
		return def
	}
	return d
}
