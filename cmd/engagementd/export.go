package main

import (
	"fmt"

	"github.com/MarkoPoloResearchLab/engagement/internal/archive"
	"github.com/MarkoPoloResearchLab/engagement/internal/config"
	"github.com/MarkoPoloResearchLab/engagement/pkg/engagement"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newExportCommand(settings *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a user's ledger history to the S3 archive as JSON lines",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlags(cmd, settings)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := engagement.NewUserID(settings.GetString(flagUser))
			if err != nil {
				return err
			}
			archiveConfig, err := config.LoadArchiveConfig()
			if err != nil {
				return fmt.Errorf("archive config: %w", err)
			}
			rt, err := buildRuntime(cmd.Context(), settings, false)
			if err != nil {
				return err
			}
			defer rt.Close()

			client, err := archive.NewS3Client(cmd.Context(), archiveConfig)
			if err != nil {
				return err
			}
			exporter, err := archive.NewExporter(rt.service, client, archiveConfig.Bucket, archiveConfig.Prefix, rt.logger)
			if err != nil {
				return err
			}
			result, err := exporter.ExportUser(cmd.Context(), userID, settings.GetInt(flagLimit))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d entries to s3://%s/%s\n", result.Entries, archiveConfig.Bucket, result.Key)
			return nil
		},
	}
	cmd.Flags().String(flagUser, "", "user id to export")
	cmd.Flags().Int(flagLimit, defaultExportLimit, "maximum entries to export")
	_ = cmd.MarkFlagRequired(flagUser)
	return cmd
}
