package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/coderefine/internal/flagx"
)

// parseFlags populates selected client Config fields from command-line flags.
//
//	-a string   server base URL (e.g., "http://localhost:8080")
//	-t int      request timeout, seconds
//	-i int      online check interval, seconds
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerEndpointAddr, "a", config.ServerEndpointAddr, "server base URL")
	requestTimeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")
	onlineCheckInterval := fs.Int("i", int(config.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	config.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
