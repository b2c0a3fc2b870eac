package cmds

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v2"

	"github.com/rprtr258/todayiwill/internal/appointment"
	"github.com/rprtr258/todayiwill/internal/config"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

// Env is what every command works with. Config is filled by Setup unless
// it is already set.
type Env struct {
	Config  *config.Config
	Logger  *slog.Logger
	Level   *slog.LevelVar
	Now     func() time.Time
	Stdin   io.Reader
	HTTP    *http.Client
	Version string
	// GitHubAPI overrides the GitHub API endpoint used by update
	GitHubAPI string
}

var GlobalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "data-dir",
		Usage:   "directory holding the appointment files",
		EnvVars: []string{config.EnvDataDir},
	},
	&cli.StringFlag{
		Name:  "config",
		Usage: "config file (.toml or .ini)",
	},
	&cli.BoolFlag{
		Name:  "verbose",
		Usage: "log debug messages to stderr",
	},
}

// Commands in the order they show up in help
func Commands(env *Env) []*cli.Command {
	return []*cli.Command{
		AddCmd(env),
		ListCmd(env),
		RemoveCmd(env),
		ClearCmd(env),
		CopyCmd(env),
		HistoryCmd(env),
		FindCmd(env),
		ExportCmd(env),
		ImportCmd(env),
		RofiCmd(env),
		OpenCmd(env),
		ConfigCmd(env),
		UpdateCmd(env),
	}
}

// Setup resolves configuration from the global flags before any command runs
func Setup(env *Env) cli.BeforeFunc {
	return func(c *cli.Context) error {
		if c.Bool("verbose") && env.Level != nil {
			env.Level.Set(slog.LevelDebug)
		}

		if env.Config == nil {
			cfg, err := loadConfig(c.String("config"))
			if err != nil {
				return cli.Exit(err.Error(), exitFailure)
			}
			env.Config = cfg
		}

		if dir := c.String("data-dir"); dir != "" {
			env.Config.DataDir = dir
		}

		env.logger().Debug("configuration resolved",
			"source", env.Config.Source(),
			"data_dir", env.Config.DataDir)
		return nil
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

func (e *Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func (e *Env) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}

func (e *Env) stdin() io.Reader {
	if e.Stdin == nil {
		return os.Stdin
	}
	return e.Stdin
}

func (e *Env) httpClient() *http.Client {
	if e.HTTP == nil {
		return &http.Client{Timeout: 10 * time.Second}
	}
	return e.HTTP
}

// openDay loads the list of the calendar day of day
func (e *Env) openDay(day time.Time, ref appointment.Time) (*appointment.List, error) {
	return appointment.Open(ref, e.Config.Days().PathFor(day), appointment.WithLogger(e.logger()))
}

func (e *Env) openToday(ref appointment.Time) (*appointment.List, error) {
	return e.openDay(e.now(), ref)
}

// printDisplay writes one line per appointment. Struck lines are crossed
// out when enabled and w is a terminal that supports it.
func (e *Env) printDisplay(w io.Writer, lines []appointment.DisplayText) {
	struck := lipgloss.NewRenderer(w).NewStyle().Strikethrough(true)
	for _, line := range lines {
		text := line.String()
		if line.Struck && e.Config.StrikePast {
			text = struck.Render(text)
		}
		fmt.Fprintln(w, text)
	}
}

// fail reports a domain error, exit code 1
func fail(err error) error {
	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		return err
	}
	return cli.Exit(sentence(err.Error()), exitFailure)
}

// usage reports malformed input, exit code 2
func usage(format string, args ...any) error {
	return cli.Exit(fmt.Sprintf(format, args...)+"\n\nFor more information, try '--help'.", exitUsage)
}

func onUsageError(_ *cli.Context, err error, _ bool) error {
	return usage("error: %v", err)
}

// sentence capitalizes msg and ends it with a period
func sentence(msg string) string {
	if msg == "" {
		return msg
	}

	r, size := utf8.DecodeRuneInString(msg)
	msg = string(unicode.ToUpper(r)) + msg[size:]
	if !strings.HasSuffix(msg, ".") {
		msg += "."
	}
	return msg
}

// Run executable with arguments
func Run(ctx context.Context, executable string, args ...string) error {
	executable, err := exec.LookPath(executable)
	if err != nil {
		return err
	}

	if _, err = os.StartProcess(
		executable,
		append([]string{executable}, args...),
		&os.ProcAttr{
			Dir:   ".",
			Env:   os.Environ(),
			Files: []*os.File{os.Stdin, nil, nil},
			Sys:   &syscall.SysProcAttr{},
		},
	); err != nil {
		return err
	}

	return nil
}

// Open file with the given opener program
func Open(ctx context.Context, opener, openWhat string) error {
	return Run(ctx, opener, openWhat)
}
