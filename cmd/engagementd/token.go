package main

import (
	"fmt"
	"strings"

	"github.com/MarkoPoloResearchLab/engagement/internal/servicetoken"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newTokenCommand(settings *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a collaborator service token",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlags(cmd, settings)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			signingKey := settings.GetString(flagServiceSigningKey)
			if strings.TrimSpace(signingKey) == "" {
				return fmt.Errorf("service signing key is required")
			}
			token, err := servicetoken.Issue(
				signingKey,
				settings.GetString(flagServiceTokenIssuer),
				settings.GetString(flagService),
				settings.GetDuration(flagTTL),
			)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.String(flagService, "", "collaborator service name placed in the token")
	flags.Duration(flagTTL, defaultTokenTTL, "token lifetime")
	flags.String(flagServiceSigningKey, "", "HS256 key for collaborator service tokens")
	flags.String(flagServiceTokenIssuer, "engagement-collaborators", "service token issuer")
	_ = cmd.MarkFlagRequired(flagService)
	return cmd
}
