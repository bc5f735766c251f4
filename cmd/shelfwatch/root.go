package main

import (
	"github.com/spf13/cobra"

	"github.com/okian/shelfwatch/internal/app"
	"github.com/okian/shelfwatch/internal/config"
	"github.com/okian/shelfwatch/pkg/logger"
)

// commandContext carries lazily loaded configuration and the pipeline
// service across subcommands.
type commandContext struct {
	cfg *config.Config
	svc *app.Service
}

// ensureConfig initializes logging and loads configuration once.
func (c *commandContext) ensureConfig(cmd *cobra.Command) error {
	if c.cfg != nil {
		return nil
	}
	if err := logger.Init(); err != nil {
		return err
	}
	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return err
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		logger.Get().Warn(cmd.Context(), "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel),
			logger.Error(err),
		)
		_ = logger.SetLevelString("info")
	}
	c.cfg = cfg
	return nil
}

// service builds and starts the pipeline service once per invocation.
func (c *commandContext) service(cmd *cobra.Command) (*app.Service, error) {
	if c.svc != nil {
		return c.svc, nil
	}
	svc := app.New(append(
		app.FromConfig(c.cfg),
		app.WithLogger(logger.Get()),
	)...)
	if err := svc.Start(cmd.Context()); err != nil {
		return nil, err
	}
	c.svc = svc
	return svc, nil
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "shelfwatch",
		Short:         "Inventory intelligence pipeline",
		Long:          "shelfwatch reconciles shelf-scene classifier predictions against the inventory record and keeps an append-only audit trail of every decision.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.ensureConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newRunCommand(ctx))
	rootCmd.AddCommand(newAnalyzeCommand(ctx))
	rootCmd.AddCommand(newClassifyCommand(ctx))
	rootCmd.AddCommand(newThresholdCommand(ctx))
	rootCmd.AddCommand(newReconcileCommand(ctx))
	rootCmd.AddCommand(newServeCommand(ctx))
	rootCmd.AddCommand(newPromptCommand(ctx))
	rootCmd.AddCommand(newGenLabelsCommand(ctx))

	return rootCmd
}
