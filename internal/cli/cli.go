// Package cli implements the uuidstore command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Lzww0608/ruuid"
	"github.com/Lzww0608/ruuid/internal/config"
	"github.com/Lzww0608/ruuid/internal/store"
	"github.com/Lzww0608/ruuid/internal/store/mysqlstore"
	"github.com/Lzww0608/ruuid/internal/store/pebblestore"
)

// Options wires the command to its environment.
type Options struct {
	Out io.Writer
	Err io.Writer
	// Logger overrides the logger built from the configured level. Optional.
	Logger *zap.Logger
	// Environ replaces the process environment when non-nil.
	Environ map[string]string
}

type app struct {
	opts   Options
	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCommand builds the uuidstore command.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	a := &app{opts: opts}

	rootCmd := &cobra.Command{
		Use:               "uuidstore",
		Short:             "Parse, normalize and store RFC 4122 identifiers",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	rootCmd.SetOut(opts.Out)
	rootCmd.SetErr(opts.Err)

	flags := rootCmd.PersistentFlags()
	flags.String("backend", "", "storage backend: pebble or mysql (env UUIDSTORE_BACKEND)")
	flags.String("data-dir", "", "pebble data directory (env UUIDSTORE_DATA_DIR)")
	flags.String("mysql-dsn", "", "mysql DSN (env UUIDSTORE_MYSQL_DSN)")
	flags.String("log-level", "", "log level (env UUIDSTORE_LOG_LEVEL)")

	rootCmd.AddCommand(
		a.parseCommand(),
		a.putCommand(),
		a.getCommand(),
		a.deleteCommand(),
		a.listCommand(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var (
		cfg *config.Config
		err error
	)
	if a.opts.Environ != nil {
		cfg, err = config.LoadFrom(a.opts.Environ)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	for name, dst := range map[string]*string{
		"backend":   &cfg.Backend,
		"data-dir":  &cfg.DataDir,
		"mysql-dsn": &cfg.MySQLDSN,
		"log-level": &cfg.LogLevel,
	} {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.opts.Logger != nil {
		a.logger = a.opts.Logger
		return nil
	}
	lvl, _ := cfg.Level()
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	a.logger, err = zcfg.Build()
	return err
}

func (a *app) openStore(ctx context.Context) (store.Store, error) {
	switch a.cfg.Backend {
	case config.BackendMySQL:
		s, err := mysqlstore.Open(a.cfg.MySQLDSN, a.logger)
		if err != nil {
			return nil, err
		}
		if err := s.EnsureSchema(ctx); err != nil {
			_ = s.Close()
			return nil, err
		}
		return s, nil
	default:
		s, err := pebblestore.Open(pebblestore.Options{
			DataDir: a.cfg.DataDir,
			Sync:    true,
			Logger:  a.logger,
		})
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

// withStore opens the configured backend for the duration of fn.
func (a *app) withStore(cmd *cobra.Command, fn func(context.Context, store.Store) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Close(); err != nil {
			a.logger.Warn("failed to close store", zap.Error(err))
		}
	}()
	return fn(ctx, s)
}

func (a *app) parseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <uuid>...",
		Short: "Validate identifiers and print their canonical form and fields",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				id, err := ruuid.Parse(arg)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(),
					"%s time_low=%08x time_mid=%04x time_hi_and_version=%04x clock_seq=%04x node=%012x version=%d variant=%s\n",
					id, id.TimeLow(), id.TimeMid(), id.TimeHiAndVersion(), id.ClockSeq(), id.Node(), id.Version(), id.Variant())
			}
			return nil
		},
	}
}

func (a *app) putCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "put <uuid> <label>",
		Short: "Store a label under an identifier",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := ruuid.Parse(args[0])
			if err != nil {
				return err
			}
			return a.withStore(cmd, func(ctx context.Context, s store.Store) error {
				if err := s.Put(ctx, store.Record{ID: id, Label: args[1]}); err != nil {
					return err
				}
				a.logger.Info("stored record", zap.Stringer("id", id), zap.String("backend", a.cfg.Backend))
				fmt.Fprintln(cmd.OutOrStdout(), id)
				return nil
			})
		},
	}
}

func (a *app) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <uuid>",
		Short: "Print the label stored under an identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := ruuid.Parse(args[0])
			if err != nil {
				return err
			}
			return a.withStore(cmd, func(ctx context.Context, s store.Store) error {
				rec, err := s.Get(ctx, id)
				if err != nil {
					return notFound(err, id)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", rec.ID, rec.Label)
				return nil
			})
		},
	}
}

func (a *app) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <uuid>",
		Aliases: []string{"rm"},
		Short:   "Remove the record for an identifier",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := ruuid.Parse(args[0])
			if err != nil {
				return err
			}
			return a.withStore(cmd, func(ctx context.Context, s store.Store) error {
				if err := s.Delete(ctx, id); err != nil {
					return notFound(err, id)
				}
				a.logger.Info("deleted record", zap.Stringer("id", id))
				return nil
			})
		},
	}
}

func (a *app) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Print all records in identifier order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withStore(cmd, func(ctx context.Context, s store.Store) error {
				recs, err := s.List(ctx)
				if err != nil {
					return err
				}
				for _, rec := range recs {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", rec.ID, rec.Label)
				}
				return nil
			})
		},
	}
}

func notFound(err error, id ruuid.UUID) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%s: %w", id, err)
	}
	return err
}
