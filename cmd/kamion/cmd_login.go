package main

import (
	"context"
	"errors"
	"fmt"
	"kamion-client/internal/store"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	email    string
	password string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and print a session token",
	Long: `Signs in with an email and password and prints the issued token.

Export it as KAMION_TOKEN (or set session.token in the config file) to
skip the login screen and to use the loads commands.

Example:
  kamion login --email driver@example.com --password secret`,
	RunE: runLogin,
}

func init() {
	for _, c := range []*cobra.Command{loginCmd, loadsCmd, loadCmd} {
		c.Flags().StringVar(&email, "email", "", "Account email (or set KAMION_EMAIL)")
		c.Flags().StringVar(&password, "password", "", "Account password (or set KAMION_PASSWORD)")
	}
}

func runLogin(cmd *cobra.Command, args []string) error {
	st, err := newStore()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.API.Timeout)
	defer cancel()

	if err := signIn(ctx, st); err != nil {
		return err
	}

	auth := st.Snapshot().Auth
	out := cmd.OutOrStdout()
	if auth.User != nil {
		fmt.Fprintf(out, "Signed in as %s <%s>\n", auth.User.FullName(), auth.User.Email)
	}
	fmt.Fprintf(out, "KAMION_TOKEN=%s\n", auth.Token)
	return nil
}

// signIn logs in with the flag or environment credentials.
func signIn(ctx context.Context, st *store.Store) error {
	e := strings.TrimSpace(email)
	if e == "" {
		e = cfg.Session.Email
	}
	p := password
	if p == "" {
		p = os.Getenv("KAMION_PASSWORD")
	}
	if e == "" || p == "" {
		return errors.New("login: email and password are required")
	}

	if err := st.Auth.Login(ctx, e, p); err != nil {
		return fmt.Errorf("login: %s", st.Snapshot().Auth.Error)
	}
	return nil
}

// ensureSession signs in unless a token was restored from configuration.
func ensureSession(ctx context.Context, st *store.Store) error {
	if st.Snapshot().Auth.IsAuthenticated {
		return nil
	}
	return signIn(ctx, st)
}
