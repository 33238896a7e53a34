package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/session"
)

const (
	defaultAPIURL = "http://localhost:8000"
	envAPIURL     = "ADS_DASHBOARD_API_URL"
)

var errNotLoggedIn = errors.New("nenhuma sessão ativa, rode `dashboard login` primeiro")

// API é o subconjunto do cliente HTTP usado pelos comandos
type API interface {
	session.ProfileFetcher
	Login(ctx context.Context, username, password string) (*domain.TokenPair, error)
	GetAdAccounts(ctx context.Context) ([]*domain.AdAccount, error)
	GetCampaigns(ctx context.Context, accountID, since, until string) ([]*domain.Campaign, error)
}

// Deps são as dependências abertas para cada execução de comando
type Deps struct {
	Session *session.Manager
	API     API
	Close   func() error
}

// Opener monta as dependências a partir das flags globais
type Opener func(apiURL, sessionPath string) (*Deps, error)

type rootOptions struct {
	apiURL      string
	sessionPath string
	asJSON      bool
	open        Opener
	deps        *Deps
}

// withDeps abre as dependências antes do comando e as fecha ao final, mesmo em caso de erro
func (o *rootOptions) withDeps(run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		deps, err := o.open(o.apiURL, o.sessionPath)
		if err != nil {
			return err
		}
		o.deps = deps

		defer func() {
			if deps.Close == nil {
				return
			}
			if closeErr := deps.Close(); closeErr != nil && err == nil {
				err = closeErr
			}
		}()

		return run(cmd, args)
	}
}

func NewRootCommand(open Opener) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "dashboard",
		Short:         "Consulta o dashboard de anúncios pelo terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	opts.open = open

	apiURL := os.Getenv(envAPIURL)
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	root.PersistentFlags().StringVar(&opts.apiURL, "api-url", apiURL, "endereço da API (env "+envAPIURL+")")
	root.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "imprime a resposta em JSON")
	root.PersistentFlags().StringVar(&opts.sessionPath, "session-db", DefaultSessionPath(), "arquivo sqlite da sessão")

	root.AddCommand(
		newLoginCommand(opts),
		newLogoutCommand(opts),
		newWhoamiCommand(opts),
		newAccountsCommand(opts),
		newCampaignsCommand(opts),
	)

	return root
}

// DefaultSessionPath devolve $XDG_CONFIG_HOME/ads-dashboard/session.db
func DefaultSessionPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		if dir, err = os.UserConfigDir(); err != nil {
			dir = "."
		}
	}
	return filepath.Join(dir, "ads-dashboard", "session.db")
}

// restore recarrega a sessão gravada e falha quando não há login
func (o *rootOptions) restore(ctx context.Context) error {
	if !o.deps.Session.LoadFromStorage(ctx) {
		return errNotLoggedIn
	}
	return nil
}
