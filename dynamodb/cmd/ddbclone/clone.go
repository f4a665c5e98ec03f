package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/acksell/ddbclone/dynamodb/clone"
	"github.com/acksell/ddbclone/dynamodb/schema"
)

type cloneOptions struct {
	backend     backendOptions
	dryRun      bool
	waitTimeout time.Duration
}

func newCloneCmd(a *app) *cobra.Command {
	var opts cloneOptions

	cmd := &cobra.Command{
		Use:   "clone <source> <dest>",
		Short: "Create dest with the schema of source",
		Long: `Create a new table with the key schema, attribute definitions, provisioned
throughput and secondary indexes of an existing table. Items are not copied.

The command fails if the source table cannot be described or if the
destination table already exists. After the create request is accepted it
blocks until the new table is ACTIVE.`,
		Example: `  ddbclone clone Orders OrdersCopy
  ddbclone clone Orders OrdersCopy --region eu-west-1 --profile staging
  ddbclone clone Orders OrdersCopy --dry-run
  ddbclone clone Orders OrdersCopy --memory --seed schema.yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.backend.applyConfig(cmd.Flags(), a.cfg)
			if !cmd.Flags().Changed("wait-timeout") && a.cfg.WaitTimeout > 0 {
				opts.waitTimeout = a.cfg.WaitTimeout
			}
			if opts.waitTimeout <= 0 {
				return fmt.Errorf("--wait-timeout: %w: got %s", clone.ErrInvalidWaitTimeout, opts.waitTimeout)
			}
			return runClone(cmd, a, opts, args[0], args[1])
		},
	}

	opts.backend.register(cmd.Flags())
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the create request as YAML instead of creating the table")
	cmd.Flags().DurationVar(&opts.waitTimeout, "wait-timeout", clone.DefaultWaitTimeout, "maximum time to wait for the new table to become active")
	return cmd
}

func runClone(cmd *cobra.Command, a *app, opts cloneOptions, source, destination string) error {
	ctx := cmd.Context()
	logger := a.logger.With(
		zap.String("source", source),
		zap.String("destination", destination),
	)

	catalog, closeCatalog, err := openCatalog(ctx, opts.backend, logger)
	if err != nil {
		return err
	}
	defer closeCatalog()

	cloner := clone.New(catalog,
		clone.WithLogger(logger),
		clone.WithProgress(cmd.OutOrStdout()),
		clone.WithWaitTimeout(opts.waitTimeout),
	)

	if opts.dryRun {
		input, err := cloner.Plan(ctx, source, destination)
		if err != nil {
			return err
		}
		return schema.Encode(cmd.OutOrStdout(), schema.Schema{
			Tables: []schema.Table{schema.FromCreateInput(input)},
		})
	}

	return cloner.Clone(ctx, source, destination)
}
