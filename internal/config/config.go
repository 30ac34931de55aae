// Package config assembles the runtime configuration from command-line
// flags and an optional YAML file. Flags always win over file values.
package config

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/juju/gnuflag"
	"github.com/juju/loggo"
	"gopkg.in/errgo.v1"
	"gopkg.in/yaml.v2"

	"landscapes/internal/core"
	"landscapes/internal/landscape"
)

// ErrInvalidConfig is the cause of every error returned by this package.
var ErrInvalidConfig = errgo.New("invalid configuration")

// Frontend names accepted by --ui.
const (
	UITerm = "term"
	UIGUI  = "gui"
)

// Config holds every setting the entry point needs.
type Config struct {
	Width    int           `yaml:"width"`
	Height   int           `yaml:"height"`
	Rule     string        `yaml:"rule"`
	Family   string        `yaml:"family"`
	Topology string        `yaml:"topology"`
	Preset   string        `yaml:"preset"`
	CellSize int           `yaml:"cell-size"`
	Interval time.Duration `yaml:"interval"`
	Workers  int           `yaml:"workers"`
	UI       string        `yaml:"ui"`
	LogLevel string        `yaml:"log-level"`
	LogFile  string        `yaml:"log-file"`
	Seed     int64         `yaml:"seed"`

	// File is the YAML file the config was loaded from, if any.
	File string `yaml:"-"`
}

// Default returns a Config populated with sensible defaults. Rule, family
// and topology are left empty so the landscape defaults apply.
func Default() *Config {
	d := landscape.DefaultConfig()
	return &Config{
		Width:    d.Width,
		Height:   d.Height,
		CellSize: 10,
		Interval: core.DefaultStepInterval,
		Workers:  d.Workers,
		UI:       UITerm,
		LogLevel: "<root>=INFO",
		Seed:     1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *gnuflag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.Var(elementaryFlag{c}, "1", "run elementary `rule` on a clamped grid")
	fs.Var(lifeLikeFlag{c}, "2", "run life-like `rule` (B/S text or number)")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule as B/S text or a number")
	fs.StringVar(&c.Family, "family", c.Family, "rule family: life-like or elementary")
	fs.StringVar(&c.Topology, "topology", c.Topology, "boundary: torus or clamped")
	fs.StringVar(&c.Preset, "preset", c.Preset, "named preset: "+strings.Join(landscape.PresetNames(), ", "))
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "pixels per cell in the window")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between generations")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands evaluated concurrently per step")
	fs.StringVar(&c.UI, "ui", c.UI, "frontend: term or gui")
	fs.StringVar(&c.File, "config", c.File, "YAML configuration file")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "loggo level specification")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "also append log output to this file")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "first seed used by randomize")
}

// Parse builds a Config from args. When --config names a file, it is loaded
// over the defaults and the flags are applied again on top of it.
func Parse(name string, args []string, stderr io.Writer) (*Config, error) {
	c, err := parseFlags(name, args, Default(), stderr)
	if err != nil {
		return nil, err
	}
	if c.File != "" {
		base := Default()
		if err := base.Load(c.File); err != nil {
			return nil, errgo.Mask(err, errgo.Is(ErrInvalidConfig))
		}
		if c, err = parseFlags(name, args, base, stderr); err != nil {
			return nil, err
		}
	}
	if err := c.Validate(); err != nil {
		return nil, errgo.Mask(err, errgo.Is(ErrInvalidConfig))
	}
	return c, nil
}

func parseFlags(name string, args []string, c *Config, stderr io.Writer) (*Config, error) {
	fs := gnuflag.NewFlagSet(name, gnuflag.ContinueOnError)
	fs.SetOutput(stderr)
	c.Bind(fs)
	if err := fs.Parse(true, args); err != nil {
		if err == gnuflag.ErrHelp {
			return nil, err
		}
		return nil, errgo.WithCausef(err, ErrInvalidConfig, "")
	}
	if fs.NArg() > 0 {
		return nil, errgo.WithCausef(nil, ErrInvalidConfig, "unexpected arguments %q", fs.Args())
	}
	return c, nil
}

// Load reads YAML settings from path into c. Keys absent from the file keep
// their current values.
func (c *Config) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errgo.WithCausef(err, ErrInvalidConfig, "cannot read config")
	}
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return errgo.WithCausef(err, ErrInvalidConfig, "cannot parse %s", path)
	}
	c.File = path
	return nil
}

// Validate checks every setting without building anything.
func (c *Config) Validate() error {
	switch {
	case c.CellSize <= 0:
		return errgo.WithCausef(nil, ErrInvalidConfig, "cell size %d must be positive", c.CellSize)
	case c.Interval <= 0:
		return errgo.WithCausef(nil, ErrInvalidConfig, "interval %v must be positive", c.Interval)
	case c.Workers < 0:
		return errgo.WithCausef(nil, ErrInvalidConfig, "workers %d must not be negative", c.Workers)
	}
	if c.UI != UITerm && c.UI != UIGUI {
		return errgo.WithCausef(nil, ErrInvalidConfig, "unknown ui %q", c.UI)
	}
	if _, err := loggo.ParseConfigString(c.LogLevel); err != nil {
		return errgo.WithCausef(err, ErrInvalidConfig, "bad log level")
	}
	if _, err := c.Landscape(); err != nil {
		return errgo.Mask(err, errgo.Is(ErrInvalidConfig))
	}
	return nil
}

// Landscape resolves the rule settings into a landscape configuration. A
// preset is applied first; explicit family, topology, and rule settings
// override it. Without a rule, the family's default rule is used, and the
// elementary family defaults to the clamped topology.
func (c *Config) Landscape() (landscape.Config, error) {
	lc := landscape.DefaultConfig()
	if c.Width <= 0 || c.Height <= 0 || c.Width > landscape.MaxCells/c.Height {
		return lc, errgo.WithCausef(nil, ErrInvalidConfig, "bad size %dx%d", c.Width, c.Height)
	}
	lc.Width, lc.Height = c.Width, c.Height
	lc.Workers = c.Workers

	haveRule, haveTopology := false, false
	if c.Preset != "" {
		p, ok := landscape.LookupPreset(c.Preset)
		if !ok {
			return lc, errgo.WithCausef(nil, ErrInvalidConfig, "unknown preset %q", c.Preset)
		}
		lc.Family, lc.Rule, lc.Topology = p.Family, p.Rule, p.Topology
		haveRule, haveTopology = true, true
	}
	if c.Family != "" {
		f, err := landscape.ParseFamily(c.Family)
		if err != nil {
			return lc, errgo.WithCausef(err, ErrInvalidConfig, "")
		}
		if f != lc.Family {
			haveRule, haveTopology = false, false
		}
		lc.Family = f
	}
	if c.Topology != "" {
		t, err := landscape.ParseTopology(c.Topology)
		if err != nil {
			return lc, errgo.WithCausef(err, ErrInvalidConfig, "")
		}
		lc.Topology = t
		haveTopology = true
	}
	if c.Rule != "" {
		r, err := landscape.ParseFamilyRule(lc.Family, c.Rule)
		if err != nil {
			return lc, errgo.WithCausef(err, ErrInvalidConfig, "")
		}
		lc.Rule = r
		haveRule = true
	}
	if lc.Family == landscape.Elementary {
		if !haveRule {
			lc.Rule = landscape.Rule110
		}
		if !haveTopology {
			lc.Topology = landscape.Clamped
		}
	} else if !haveRule {
		lc.Rule = landscape.Conway
	}
	return lc, nil
}
