package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/msto63/eiya/foundation/core/config"
	"github.com/msto63/eiya/foundation/utils/timex"
	"github.com/msto63/eiya/internal/gregor/server"
	"github.com/msto63/eiya/internal/gregor/service"
	coreGrpc "github.com/msto63/eiya/pkg/core/grpc"
	"github.com/msto63/eiya/pkg/core/logging"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
)

// Engine is the set of date operations the commands use. The local service
// and the remote client both provide it.
type Engine interface {
	Format(ctx context.Context, t time.Time, pattern, locale string) (string, error)
	Parse(ctx context.Context, text, pattern, locale string) (time.Time, error)
	Add(ctx context.Context, req service.ShiftRequest) (time.Time, error)
	Subtract(ctx context.Context, req service.ShiftRequest) (time.Time, error)
	StartOf(ctx context.Context, t time.Time, precision string) (time.Time, error)
	EndOf(ctx context.Context, t time.Time, precision string) (time.Time, error)
	Compare(ctx context.Context, a, b time.Time, opts service.CompareOptions) (int, error)
	IsBetween(ctx context.Context, t, start, end time.Time, opts service.CompareOptions) (bool, error)
	Calendar(ctx context.Context, year, month0 int, locale string) (*service.CalendarInfo, error)
}

// app holds the state shared by all commands of one invocation
type app struct {
	cfgFile string
	locale  string
	pattern string
	remote  string
	verbose bool

	config  *config.Config
	logger  *logging.Logger
	service *service.Service
	engine  Engine
	conn    *grpc.ClientConn
	now     func() time.Time
	// logOutput receives log entries; nil means stderr
	logOutput io.Writer
}

// NewRootCommand builds the eiya command tree
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{now: time.Now})
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "eiya",
		Short: "eiya - pattern based date formatting and arithmetic",
		Long: `eiya formats, parses, shifts and compares dates using
patterns such as "yyyy/MM/dd HH:mm:ss".

Directives:
  yyyy yy   year            M MM MMM MMMM   month
  d dd      day             E EE EEE EEEE   weekday
  H HH      hour (0-23)     h hh            hour (0-11)
  m mm      minute          s ss            second
  S SS SSS  millisecond     a A             am/pm

Instants on the command line are read with --pattern; "now" is the
current time.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: discovered, see EIYA_CONFIG)")
	root.PersistentFlags().StringVar(&a.locale, "locale", "", "locale or Accept-Language list for month and weekday names")
	root.PersistentFlags().StringVarP(&a.pattern, "pattern", "p", "", "pattern for reading and printing instants (default: format.default_pattern)")
	root.PersistentFlags().StringVar(&a.remote, "remote", "", "address of a Gregor server to run the operations on")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		a.formatCommand(),
		a.parseCommand(),
		a.shiftCommand("add"),
		a.shiftCommand("subtract"),
		a.boundaryCommand("startof"),
		a.boundaryCommand("endof"),
		a.compareCommand(),
		a.betweenCommand(),
		a.calendarCommand(),
		a.serveCommand(),
		a.playgroundCommand(),
		a.versionCommand(),
	)
	return root
}

// Execute runs the eiya command line
func Execute() error {
	return NewRootCommand().Execute()
}

// setup loads the configuration, the logger and the engine
func (a *app) setup(cmd *cobra.Command, args []string) error {
	var err error
	if a.cfgFile != "" {
		a.config, err = config.Load(a.cfgFile)
	} else {
		a.config, err = config.Discover()
	}
	if err != nil {
		return err
	}

	logCfg := logging.FromConfig("eiya", a.config.General)
	if a.verbose {
		logCfg.Level = "debug"
	}
	logCfg.Output = a.logOutput
	a.logger = logging.NewServiceLogger(logCfg).With("invocation_id", uuid.NewString())
	a.logger.Debug("Configuration loaded", "path", a.config.Path(), "command", cmd.Name())

	if a.pattern == "" {
		a.pattern = a.config.Format.DefaultPattern
	}
	if a.locale == "" {
		a.locale = a.config.Format.DefaultLocale
	}

	if a.remote != "" {
		a.conn, err = coreGrpc.Dial(coreGrpc.DefaultClientConfig(a.remote), a.logger)
		if err != nil {
			return err
		}
		a.engine = server.NewClient(a.conn)
		return nil
	}

	a.service, err = service.NewService(service.Config{
		Config: a.config,
		Clock:  timex.ClockFunc(a.now),
		Logger: a.logger,
	})
	if err != nil {
		return err
	}
	a.engine = a.service
	return nil
}

func (a *app) close() {
	if a.conn != nil {
		_ = a.conn.Close()
	}
}

// instant reads a command line instant with the instant pattern
func (a *app) instant(ctx context.Context, arg string) (time.Time, error) {
	if arg == "" || arg == "now" {
		return a.now(), nil
	}
	return a.engine.Parse(ctx, arg, a.pattern, a.locale)
}

// optionalInstant reads args[i] or returns now
func (a *app) optionalInstant(ctx context.Context, args []string, i int) (time.Time, error) {
	if i < len(args) {
		return a.instant(ctx, args[i])
	}
	return a.now(), nil
}

// print writes t with the instant pattern
func (a *app) print(cmd *cobra.Command, t time.Time) error {
	text, err := a.engine.Format(cmd.Context(), t, a.pattern, a.locale)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

func printError(w io.Writer, msg string, err error) {
	fmt.Fprintf(w, "Error: %s: %v\n", msg, err)
}
