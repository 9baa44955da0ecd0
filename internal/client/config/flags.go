package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/linkfo/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the API
//	-f string   token store path
//	-t int      request timeout in seconds
//
// os.Args is filtered through flagx.FilterArgs so flags that belong to
// other loaders (-c/-config) do not trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the Linkfo API")
	fs.StringVar(&cfg.TokenStorePath, "f", cfg.TokenStorePath, "path of the local token store")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
