package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/fitkeeper/internal/flagx"
)

// parseFlags overlays cfg with -a, -f and -t. Other arguments are filtered
// out with flagx.FilterArgs so the JSON selector does not trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.DataDir, "f", cfg.DataDir, "local data directory")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
