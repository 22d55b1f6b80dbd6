package app

import (
	"flag"
	"strings"
)

// KV collects repeatable key=value flags.
type KV []string

func (l *KV) String() string {
	return strings.Join(*l, ",")
}

// Set appends one key=value pair.
func (l *KV) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Config represents the command-line parameters for the viewer.
type Config struct {
	Pattern string
	Scale   int
	TPS     int
	Sets    KV
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 4, TPS: 15}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern file or builtin:<name>; empty seeds a random soup")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Var(&c.Sets, "set", "simulation parameter in key=value form: size, density, seed (repeatable)")
}

// SimParams returns the -set pairs as a map. Malformed entries are skipped
// and later keys win.
func (c *Config) SimParams() map[string]string {
	params := make(map[string]string, len(c.Sets))
	for _, kv := range c.Sets {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		params[k] = v
	}
	return params
}
