// Command landscapes runs interactive cellular automata in a terminal or a
// window.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/juju/gnuflag"
	"github.com/juju/loggo"
	"gopkg.in/errgo.v1"

	_ "landscapes/internal/app"
	"landscapes/internal/config"
	"landscapes/internal/landscape"
	"landscapes/internal/session"
	_ "landscapes/internal/term"
)

var logger = loggo.GetLogger("landscapes")

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	cfg, err := config.Parse("landscapes", args, stderr)
	if err == gnuflag.ErrHelp {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "landscapes: %v\n", err)
		return 2
	}
	closeLog, err := setupLogging(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "landscapes: %v\n", err)
		return 1
	}
	defer closeLog()
	if err := start(cfg); err != nil {
		logger.Errorf("%v", err)
		return 1
	}
	return 0
}

func setupLogging(cfg *config.Config, stderr io.Writer) (func(), error) {
	if _, err := loggo.ReplaceDefaultWriter(loggo.NewSimpleWriter(stderr, loggo.DefaultFormatter)); err != nil {
		return nil, errgo.Notef(err, "cannot set up logging")
	}
	if err := loggo.ConfigureLoggers(cfg.LogLevel); err != nil {
		return nil, errgo.Notef(err, "cannot set log level")
	}
	if cfg.LogFile == "" {
		return func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errgo.Notef(err, "cannot open log file")
	}
	if err := loggo.RegisterWriter("file", loggo.NewSimpleWriter(f, loggo.DefaultFormatter)); err != nil {
		f.Close()
		return nil, errgo.Notef(err, "cannot log to file")
	}
	return func() {
		loggo.RemoveWriter("file")
		f.Close()
	}, nil
}

// newSession builds the landscape described by cfg and wraps it in a paused
// session.
func newSession(cfg *config.Config) (*session.Session, error) {
	lc, err := cfg.Landscape()
	if err != nil {
		return nil, errgo.Mask(err, errgo.Is(config.ErrInvalidConfig))
	}
	ls, err := landscape.New(lc)
	if err != nil {
		return nil, errgo.Mask(err, errgo.Is(landscape.ErrInvalidSize))
	}
	ls.Reset()
	logger.Infof("%dx%d %s %s rule %s", lc.Width, lc.Height, lc.Family, lc.Topology, ls.RuleString())
	return session.New(ls, session.Options{
		CellW:    cfg.CellSize,
		CellH:    cfg.CellSize,
		Interval: cfg.Interval,
		Seed:     cfg.Seed,
	}), nil
}

func start(cfg *config.Config) error {
	frontend, ok := session.Frontends()[cfg.UI]
	if !ok {
		return errgo.Newf("unknown frontend %q (available: %v)", cfg.UI, session.FrontendNames())
	}
	s, err := newSession(cfg)
	if err != nil {
		return errgo.Mask(err, errgo.Any)
	}
	if err := frontend(s); err != nil {
		return errgo.Notef(err, "%s frontend", cfg.UI)
	}
	return nil
}
