package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/pflag"
	"github.com/swiftkt/swiftkt/pass"
)

// Config is the CLI's on-disk default configuration (.swiftkt.yaml),
// grounded on go-snaps' own internal use of goccy/go-yaml for snapshot
// config. DisabledPasses names passes by their Name() (e.g.
// "capitalize-enums") to skip for every run; --disable-pass on the command
// line adds further passes to this set and cannot re-enable one named here.
type Config struct {
	DisabledPasses []string `yaml:"disabledPasses"`
	IndentWith     string   `yaml:"indent"`
}

// loadConfig reads path if it exists, returning a zero Config (no
// disabled passes, default indent) when it doesn't — a missing
// .swiftkt.yaml is not an error, it just means "use the defaults".
func loadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// filterSchedule drops every pass named in disabled from s, preserving
// the order of the remaining passes.
func filterSchedule(s pass.Schedule, disabled map[string]bool) pass.Schedule {
	if len(disabled) == 0 {
		return s
	}
	out := make(pass.Schedule, 0, len(s))
	for _, p := range s {
		if disabled[p.Name()] {
			continue
		}
		out = append(out, p)
	}
	return out
}

// registerDisablePassFlag binds a repeatable --disable-pass flag onto fs,
// shared verbatim between translate and dump-ast --rewritten so both
// commands accept the same pass-toggle syntax.
func registerDisablePassFlag(fs *pflag.FlagSet) *[]string {
	var names []string
	fs.StringSliceVar(&names, "disable-pass", nil, "disable a pass by name for this run (repeatable)")
	return &names
}

// disabledSet merges the config file's DisabledPasses with the
// command line's --disable-pass repeated flag.
func disabledSet(cfg Config, flagValues []string) map[string]bool {
	out := make(map[string]bool, len(cfg.DisabledPasses)+len(flagValues))
	for _, name := range cfg.DisabledPasses {
		out[name] = true
	}
	for _, name := range flagValues {
		out[name] = true
	}
	return out
}
