package main

import (
	"fmt"
	"time"

	"github.com/leafthq/leaft/internal/auth"
	"github.com/leafthq/leaft/internal/config"
	"github.com/spf13/cobra"
)

// newTokenCmd issues HS256 session tokens for local development against a
// server configured with SESSION_JWT_SECRET.
func newTokenCmd() *cobra.Command {
	var (
		userID string
		orgRef string
		email  string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a development session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.Session.Secret == "" {
				return fmt.Errorf("SESSION_JWT_SECRET is required to issue tokens")
			}

			tm, err := auth.NewTokenManager(auth.TokenConfig{Secret: cfg.Session.Secret, Issuer: cfg.Session.Issuer})
			if err != nil {
				return err
			}
			token, err := tm.Generate(userID, orgRef, email, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User reference (required)")
	cmd.Flags().StringVar(&orgRef, "org", "", "Identity provider organization reference")
	cmd.Flags().StringVar(&email, "email", "", "Email claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
