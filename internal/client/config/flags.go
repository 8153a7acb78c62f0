package config

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/parasearch/internal/flagx"
)

var knownFlags = []string{
	"-a", "-s", "-t", "-log-file", "-log-level", "-ephemeral",
	"--a", "--s", "--t", "--log-file", "--log-level", "--ephemeral",
}

// parseFlags populates Config from command-line flags. os.Args is filtered
// with flagx.FilterArgs so the JSON stage's -c/-config never reach this set.
func parseFlags(cfg *Config) error {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the paragraph API")
	fs.StringVar(&cfg.SessionDBPath, "s", cfg.SessionDBPath, "path of the session database")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds, 0 = none)")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "path of the diagnostic log file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.BoolVar(&cfg.Ephemeral, "ephemeral", cfg.Ephemeral, "keep the session in memory only")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// only an explicit -t replaces a sub-second value from JSON
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
	return nil
}
