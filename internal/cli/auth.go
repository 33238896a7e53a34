package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newLoginCommand(opts *rootOptions) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Autentica e grava a sessão localmente",
		Args:  cobra.NoArgs,
		RunE: opts.withDeps(func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(cmd.InOrStdin())

			if username == "" {
				value, err := prompt(cmd, reader, "Usuário: ")
				if err != nil {
					return err
				}
				username = value
			}

			if password == "" {
				value, err := prompt(cmd, reader, "Senha: ")
				if err != nil {
					return err
				}
				password = value
			}

			if username == "" || password == "" {
				return fmt.Errorf("usuário e senha são obrigatórios")
			}

			if _, err := opts.deps.API.Login(cmd.Context(), username, password); err != nil {
				return fmt.Errorf("falha no login: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logado como %s\n", username)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "nome de usuário")
	cmd.Flags().StringVarP(&password, "password", "p", "", "senha (lida da entrada padrão quando omitida)")

	return cmd
}

func newLogoutCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Apaga a sessão local",
		Args:  cobra.NoArgs,
		RunE: opts.withDeps(func(cmd *cobra.Command, args []string) error {
			opts.deps.Session.ClearAuth(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Sessão encerrada")
			return nil
		}),
	}
}

func newWhoamiCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Mostra o usuário da sessão atual",
		Args:  cobra.NoArgs,
		RunE: opts.withDeps(func(cmd *cobra.Command, args []string) error {
			if !opts.deps.Session.Bootstrap(cmd.Context(), opts.deps.API) {
				return errNotLoggedIn
			}

			state := opts.deps.Session.State()
			out := cmd.OutOrStdout()

			if state.User == nil {
				fmt.Fprintf(out, "ID: %s\n", state.UserID)
				return nil
			}

			role := "usuário"
			if state.User.IsAdmin {
				role = "administrador"
			}

			fmt.Fprintf(out, "%s (%s)\n", state.User.Username, role)
			fmt.Fprintf(out, "ID: %s\n", state.User.ID)
			if state.User.AdAccountID != nil {
				fmt.Fprintf(out, "Conta de anúncios: %s\n", *state.User.AdAccountID)
			}
			if !state.ExpiresAt.IsZero() {
				fmt.Fprintf(out, "Token expira em: %s\n", state.ExpiresAt.Local().Format("02/01/2006 15:04"))
			}
			return nil
		}),
	}
}

func prompt(cmd *cobra.Command, reader *bufio.Reader, label string) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), label)

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("erro ao ler entrada: %w", err)
	}

	return strings.TrimSpace(line), nil
}
