package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/beatly/internal/api"
	"github.com/desertthunder/beatly/internal/auth"
	"github.com/desertthunder/beatly/internal/shared"
	"github.com/desertthunder/beatly/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config *shared.Config
	client *api.Client
	store  auth.Store
	db     *sql.DB
	engine *tasks.StatsEngine
	logger *log.Logger
	output io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Client *api.Client
	Store  auth.Store
	DB     *sql.DB
	Logger *log.Logger
	Output io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Client == nil {
		opts.Client = api.NewClient(api.Opts{
			BaseURL: opts.Config.Server.BaseURL,
			Tokens:  opts.Store,
		})
	}

	return &Runner{
		config: opts.Config,
		client: opts.Client,
		store:  opts.Store,
		db:     opts.DB,
		engine: tasks.NewStatsEngine(opts.Client, opts.DB),
		logger: opts.Logger,
		output: opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, videosCommand, analyticsCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// SetLogger swaps the runner's logger, used when the TUI takes over the terminal.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

// session returns the stored session or an error when none exists.
func (r *Runner) session() (*auth.Session, error) {
	if r.store == nil {
		return nil, fmt.Errorf("%w: session store not initialized, run 'beatly setup' first", shared.ErrNotAuthenticated)
	}
	s := r.store.Current()
	if s == nil {
		return nil, fmt.Errorf("%w: log in with 'beatly auth login'", shared.ErrNotAuthenticated)
	}
	return s, nil
}

// requireFeature checks the stored session against the feature allow-list.
func (r *Runner) requireFeature(f auth.Feature) (*auth.Session, error) {
	s, err := r.session()
	if err != nil {
		return nil, err
	}
	if !auth.FeatureAllowed(f, s.Role) {
		return nil, fmt.Errorf("%w: role %q may not use %s", shared.ErrForbidden, s.Role, f)
	}
	return s, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
