package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/iudanet/gymkeeper/internal/client/app"
	"github.com/iudanet/gymkeeper/internal/client/iocli"
	"github.com/iudanet/gymkeeper/internal/config"
	"github.com/iudanet/gymkeeper/internal/logging"
)

// runner строит приложение перед командой и закрывает его после
type runner struct {
	io         iocli.IO
	app        *app.App
	cli        *Cli
	configFile string
	passwords  Passwords
}

func (r *runner) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "help" {
		return nil
	}

	cfg, err := config.LoadClient(r.configFile, cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		return err
	}

	r.app, err = app.New(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	r.cli = New(r.io, r.app, r.passwords)

	if err := r.cli.runRecover(cmd.Context()); err != nil {
		logger.WarnContext(cmd.Context(), "session recovery failed", "error", err)
	}
	r.app.StartSync()
	return nil
}

func (r *runner) close() error {
	if r.app == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*r.app.Config.Sync.Timeout)
	defer cancel()
	err := r.app.Close(ctx)
	r.app = nil
	return err
}

// run адаптирует команду без аргументов, например (*Cli).runStatus
func (r *runner) run(fn func(c *Cli, ctx context.Context) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		return fn(r.cli, cmd.Context())
	}
}

// Execute runs the command line in args and releases the application.
func Execute(ctx context.Context, version string, stdio iocli.IO, args []string) error {
	r := &runner{io: stdio}
	root := newRootCommand(r, version)
	root.SetArgs(args)
	root.SetOut(stdio)
	root.SetErr(os.Stderr)

	err := root.ExecuteContext(ctx)
	return errors.Join(err, r.close())
}

func newRootCommand(r *runner, version string) *cobra.Command {
	root := &cobra.Command{
		Use:               "gymkeeper",
		Short:             "Offline-first workout tracker",
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: r.setup,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.StringVarP(&r.configFile, "config", "c", "", "Path to config file")
	flags.StringVar(&r.passwords.FromArgs, "password", "", "Master password (not recommended, use "+PasswordEnv+" or a file)")
	flags.StringVar(&r.passwords.FromFile, "password-file", "", "Path to file containing master password")
	// Имена флагов совпадают с ключами конфигурации
	flags.String("server.url", "", "Server URL (default http://localhost:8080)")
	flags.String("db_path", "", "Path to local database (default ~/.gymkeeper/gymkeeper.db)")
	flags.String("storage", "", "Active storage: local or remote")
	flags.String("remote.medium", "", "Remote medium: http, mongo, s3 or memory")
	flags.String("log.level", "", "Log level: debug, info, warn, error")

	root.AddCommand(
		&cobra.Command{
			Use:   "register",
			Short: "Register new user",
			Args:  cobra.NoArgs,
			RunE:  r.run((*Cli).runRegister),
		},
		&cobra.Command{
			Use:   "login",
			Short: "Login to server",
			Args:  cobra.NoArgs,
			RunE:  r.run((*Cli).runLogin),
		},
		&cobra.Command{
			Use:   "logout",
			Short: "Logout from server",
			Args:  cobra.NoArgs,
			RunE:  r.run((*Cli).runLogout),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show authentication and storage status",
			Args:  cobra.NoArgs,
			RunE:  r.run((*Cli).runStatus),
		},
		&cobra.Command{
			Use:   "sync",
			Short: "Synchronize local workouts with the remote store",
			Args:  cobra.NoArgs,
			RunE:  r.run((*Cli).runSync),
		},
		&cobra.Command{
			Use:   "watch",
			Short: "Run background sync and print changes until interrupted",
			Args:  cobra.NoArgs,
			RunE:  r.run((*Cli).runWatch),
		},
		&cobra.Command{
			Use:   "stats <exercise-id>",
			Short: "Show progress of an exercise over finished sessions",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return r.cli.runStats(cmd.Context(), args[0])
			},
		},
		newExercisesCommand(r),
		newTrainingCommand(r),
		newSessionCommand(r),
		newStorageCommand(r),
	)
	return root
}

func newExercisesCommand(r *runner) *cobra.Command {
	var offset, limit int
	cmd := &cobra.Command{
		Use:   "exercises [query]",
		Short: "Search the exercise catalogue",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			return r.cli.runExercises(cmd.Context(), query, offset, limit)
		},
	}
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of matches to skip")
	cmd.Flags().IntVar(&limit, "limit", 0, "Page size (default 20)")
	return cmd
}

func newTrainingCommand(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "training",
		Short: "Manage training plans",
	}

	var exercises []string
	add := &cobra.Command{
		Use:     "add <name>",
		Short:   "Create a training plan",
		Example: "  gymkeeper training add \"Leg Day\" -e squat:5@100 -e lunge:12",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.cli.runTrainingAdd(cmd.Context(), args[0], exercises)
		},
	}
	add.Flags().StringArrayVarP(&exercises, "exercise", "e", nil, "Exercise as id[:reps[@weight]], repeatable")

	cmd.AddCommand(
		add,
		&cobra.Command{
			Use:   "list",
			Short: "List training plans",
			Args:  cobra.NoArgs,
			RunE:  r.run((*Cli).runTrainingList),
		},
		&cobra.Command{
			Use:   "show <id>",
			Short: "Show a training plan",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return r.cli.runTrainingShow(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a training plan",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return r.cli.runTrainingDelete(cmd.Context(), args[0])
			},
		},
	)
	return cmd
}

func newSessionCommand(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Run workout sessions",
	}

	var (
		reps   int
		weight float64
		done   bool
	)
	series := &cobra.Command{
		Use:     "series <session-id> <exercise> <series>",
		Short:   "Update one series of a session",
		Example: "  gymkeeper session series 3f2a... 0 1 --reps 8 --weight 60 --done",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			exerciseIdx, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid exercise index %q", args[1])
			}
			seriesIdx, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid series index %q", args[2])
			}

			var upd SeriesUpdate
			if cmd.Flags().Changed("reps") {
				upd.Reps = &reps
			}
			if cmd.Flags().Changed("weight") {
				upd.Weight = &weight
			}
			if cmd.Flags().Changed("done") {
				upd.Checked = &done
			}
			return r.cli.runSessionSeries(cmd.Context(), args[0], exerciseIdx, seriesIdx, upd)
		},
	}
	series.Flags().IntVar(&reps, "reps", 0, "Repetitions")
	series.Flags().Float64Var(&weight, "weight", 0, "Weight in kg")
	series.Flags().BoolVar(&done, "done", false, "Mark the series as done (--done=false to uncheck)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "start <training-id>",
			Short: "Start a session from a training plan",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return r.cli.runSessionStart(cmd.Context(), args[0])
			},
		},
		series,
		&cobra.Command{
			Use:   "show <id>",
			Short: "Show a session",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return r.cli.runSessionShow(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "finish <id>",
			Short: "Finish a session",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return r.cli.runSessionFinish(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List sessions",
			Args:  cobra.NoArgs,
			RunE:  r.run((*Cli).runSessionList),
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a session",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return r.cli.runSessionDelete(cmd.Context(), args[0])
			},
		},
	)
	return cmd
}

func newStorageCommand(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storage",
		Short: "Manage the active storage",
	}
	cmd.AddCommand(&cobra.Command{
		Use:       "switch <local|remote>",
		Short:     "Switch the active storage and show what it holds",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"local", "remote"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.cli.runStorageSwitch(cmd.Context(), args[0])
		},
	})
	return cmd
}
