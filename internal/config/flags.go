package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// ParseFlags parses the process command line.
//
// Flags:
//
//	-a api base address, e.g. http://localhost:8080
//	-request-timeout REST request timeout (e.g., "15s")
//	-d local cache database path
//	-dismiss-after banner auto-dismiss duration (e.g., "5s")
//	-stream connect the insight stream on start (true/false)
//	-c/-config json file path with configs
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("flourish", flag.ContinueOnError)

	var (
		address        string
		requestTimeout time.Duration
		databaseDSN    string
		dismissAfter   time.Duration
		streamOnStart  optionalBool
		jsonConfigPath string
	)

	fs.StringVar(&address, "a", "", "API base address")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&databaseDSN, "d", "", "Local cache database path")
	fs.DurationVar(&dismissAfter, "dismiss-after", 0, "Insight banner auto-dismiss duration")
	fs.Var(&streamOnStart, "stream", "Connect the insight stream on start")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		Storage:       Storage{DB: DB{DSN: databaseDSN}},
		Notifications: Notifications{DismissAfter: dismissAfter},
		Workers:       Workers{StreamOnStart: streamOnStart.value},
		JSONFilePath:  jsonConfigPath,
	}, nil
}

// optionalBool is a flag.Value that stays nil unless the flag is given.
type optionalBool struct {
	value *bool
}

func (b *optionalBool) String() string {
	if b == nil || b.value == nil {
		return ""
	}
	return strconv.FormatBool(*b.value)
}

func (b *optionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	b.value = &v
	return nil
}

// IsBoolFlag lets "-stream" be used without "=true".
func (b *optionalBool) IsBoolFlag() bool {
	return true
}
