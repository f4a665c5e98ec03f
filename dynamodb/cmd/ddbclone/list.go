package main

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var backend backendOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tables, one name per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend.applyConfig(cmd.Flags(), a.cfg)
			ctx := cmd.Context()

			catalog, closeCatalog, err := openCatalog(ctx, backend, a.logger)
			if err != nil {
				return err
			}
			defer closeCatalog()

			paginator := dynamodb.NewListTablesPaginator(catalog, &dynamodb.ListTablesInput{})
			for paginator.HasMorePages() {
				page, err := paginator.NextPage(ctx)
				if err != nil {
					return fmt.Errorf("list tables: %w", err)
				}
				for _, name := range page.TableNames {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
			}
			return nil
		},
	}

	backend.register(cmd.Flags())
	return cmd
}
