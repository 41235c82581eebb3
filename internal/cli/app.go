// Package cli implements the dh-ping command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"

	"dhping/internal/config"
	"dhping/internal/i18n"
	"dhping/internal/probe"
	"dhping/internal/session"
	"dhping/internal/target"
	"dhping/internal/tui"
	"dhping/internal/ui"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

const Name = "dh-ping"

// Set at build time with -ldflags "-X dhping/internal/cli.Version=...".
// An empty Repository falls back to the main module path.
var (
	Version     = "1.0.0"
	ReleaseDate = "2024-08-27"
	Repository  = ""
)

// App wires the command line to a session.
type App struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Lookup reads locale variables. Defaults to os.LookupEnv.
	Lookup i18n.LookupFunc
	// Prober overrides the UDP prober, mainly for tests.
	Prober session.Prober
	// Exit terminates the process from the interrupt path. Defaults to os.Exit.
	Exit func(code int)

	console *ui.Console
	styles  *ui.Styles
	msgs    *i18n.Messages
	logger  *log.Logger
}

// New returns an App bound to the process standard streams.
func New() *App {
	return &App{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Lookup: os.LookupEnv,
		Exit:   os.Exit,
	}
}

// Run executes the command line and returns the process exit status.
func (a *App) Run(ctx context.Context, args []string) int {
	fs := pflag.NewFlagSet(Name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	config.RegisterFlags(fs, config.Default())
	parseErr := fs.Parse(args)
	cfg, cfgErr := config.Load(fs)

	a.setup(cfg)
	defer a.console.Restore()

	if err := firstError(parseErr, cfgErr); err != nil {
		a.logger.Printf("%+v", errors.Wrap(err, "parse arguments"))
		a.fail(a.msgs.Get(i18n.BadFlag, err.Error()))
		a.usage()
		return 1
	}

	// --help and --version take the place of the single argument.
	operands := fs.NArg()
	if cfg.Help {
		operands++
	}
	if cfg.Version {
		operands++
	}
	if operands > 1 {
		a.fail(a.msgs.Get(i18n.TooManyArgs))
		a.usage()
		return 1
	}

	switch {
	case cfg.Help:
		a.usage()
		return 0
	case cfg.Version:
		a.version()
		return 0
	}

	s := session.New(a.prober(cfg), a.msgs, a.styles, a.logger)
	if fs.NArg() == 0 {
		return a.interactive(ctx, s)
	}
	return a.oneShot(ctx, s, fs.Arg(0))
}

func (a *App) setup(cfg config.Config) {
	if a.Lookup == nil {
		a.Lookup = os.LookupEnv
	}
	if a.Exit == nil {
		a.Exit = os.Exit
	}
	a.msgs = i18n.New(i18n.Resolve(cfg.Lang, a.Lookup))
	a.styles = ui.NewStyles(a.Stdout, cfg.Color)
	a.console = ui.NewConsole(a.Stdout, a.styles.Colored())

	a.logger = log.New(io.Discard, Name+": ", log.LstdFlags)
	if cfg.Verbose {
		a.logger.SetOutput(a.Stderr)
	}
}

func (a *App) prober(cfg config.Config) session.Prober {
	if a.Prober != nil {
		return a.Prober
	}
	return probe.NewProber(&probe.Config{Timeout: cfg.Timeout, Logger: a.logger})
}

func (a *App) oneShot(ctx context.Context, s *session.Session, arg string) int {
	switch arg {
	case "help":
		a.usage()
		return 0
	case "version":
		a.version()
		return 0
	}

	addr, err := target.Parse(arg)
	if err != nil {
		a.logger.Printf("%v", err)
		a.fail(a.msgs.Get(i18n.InvalidOneShot))
		a.usage()
		return 1
	}

	if err := s.Probe(ctx, a.console, addr); err != nil {
		if ctx.Err() != nil {
			return 0
		}
		a.logger.Printf("probe %s: %v", addr, err)
		return 1
	}
	return 0
}

func (a *App) interactive(ctx context.Context, s *session.Session) int {
	a.version()
	fmt.Fprintln(a.console)
	fmt.Fprintln(a.console, a.msgs.Get(i18n.Hint))
	fmt.Fprintln(a.console)

	if ui.IsTerminal(a.Stdin) && ui.IsTerminal(a.Stdout) {
		if err := tui.Run(ctx, s, a.Stdin, a.console.Raw()); err != nil {
			a.fail(err.Error())
			return 1
		}
		return 0
	}

	// The plain loop blocks in a read that cancellation cannot reach.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			a.console.Restore()
			a.Exit(0)
		case <-done:
		}
	}()

	if err := s.Loop(ctx, a.Stdin, a.console); err != nil {
		if ctx.Err() != nil {
			return 0
		}
		a.fail(err.Error())
		return 1
	}
	return 0
}

func (a *App) usage() {
	fmt.Fprintln(a.console, a.msgs.Get(i18n.Usage))
}

func (a *App) version() {
	title := fmt.Sprintf("Dread Hunger Ping Tool - v%s (%s)", Version, ReleaseDate)
	fmt.Fprintln(a.console, a.styles.Title.Render(title))
	fmt.Fprintln(a.console, a.msgs.Get(i18n.VersionNotice, repository()))
}

func repository() string {
	if Repository != "" {
		return Repository
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Path != "" {
		return info.Main.Path
	}
	return Name
}

// fail writes an error line to stderr after draining pending stdout.
func (a *App) fail(text string) {
	_ = a.console.Flush()
	fmt.Fprintln(a.Stderr, ui.Paint(a.styles.Error, text))
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
