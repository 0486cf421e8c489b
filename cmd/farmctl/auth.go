package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) loginCmd() *cobra.Command {
	var token string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the API bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token = strings.TrimSpace(token)
			if token == "" {
				return errors.New("--token is required")
			}
			if err := a.api.Tokens().SetToken(token); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "token saved to %s\n", a.cfg.TokenPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "bearer token issued by the server operator")
	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.api.Tokens().Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}
