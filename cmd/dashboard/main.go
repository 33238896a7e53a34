package main

import (
	"fmt"
	"os"

	"github.com/vfg2006/ads-dashboard-api/internal/cli"
	"github.com/vfg2006/ads-dashboard-api/internal/client/apiclient"
	"github.com/vfg2006/ads-dashboard-api/internal/session"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

func main() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	log.Setup(level)

	root := cli.NewRootCommand(func(apiURL, sessionPath string) (*cli.Deps, error) {
		store, err := session.OpenSQLiteStore(sessionPath)
		if err != nil {
			return nil, err
		}

		sess := session.NewManager(store)
		return &cli.Deps{
			Session: sess,
			API:     apiclient.New(apiURL, sess),
			Close:   store.Close,
		}, nil
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
