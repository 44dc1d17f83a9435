package cmd

import (
	"context"
	"fmt"

	"coursehub/config"
	"coursehub/database"
	"coursehub/logger"
	"coursehub/services"
	"coursehub/utils"

	"github.com/spf13/cobra"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the sample course catalog into an empty database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := database.ConnectDb(config.AppConfig); err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			defer database.Close()

			n, err := seedCatalog(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d courses\n", n)
			return nil
		},
	}
}

func seedCatalog(ctx context.Context) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	n, err := services.NewCourseService(database.Database.Db).Seed(ctx, utils.SampleCourses())
	if err != nil {
		return 0, fmt.Errorf("seed courses: %w", err)
	}
	if n == 0 {
		logger.Info("catalog not empty, skipping seed")
	} else {
		logger.Info("sample courses added", "count", n)
	}
	return n, nil
}
