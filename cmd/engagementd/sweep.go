package main

import (
	"fmt"

	"github.com/MarkoPoloResearchLab/engagement/internal/sweeper"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newSweepCommand(settings *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Run one freeze sweep batch and exit",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlags(cmd, settings)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := buildRuntime(cmd.Context(), settings, false)
			if err != nil {
				return err
			}
			defer rt.Close()
			freezeSweeper, err := sweeper.New(rt.service, sweeper.Options{
				Interval:  rt.config.SweepInterval,
				BatchSize: rt.config.SweepBatchSize,
				Logger:    rt.logger,
			})
			if err != nil {
				return err
			}
			frozen, err := freezeSweeper.RunOnce(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "frozen %d accounts\n", frozen)
			return err
		},
	}
}
