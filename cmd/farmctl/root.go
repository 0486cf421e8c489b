package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"dalu/config"
	"dalu/pkg/client"
	"dalu/pkg/logging"
	"dalu/pkg/store"
)

// app is built once per invocation in PersistentPreRunE and shared by
// every subcommand.
type app struct {
	cfg    config.ClientConfig
	log    *zap.Logger
	api    *client.Client
	msgs   store.Messages
	asJSON bool
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "farmctl",
		Short:         "Browse and edit Dalu farm data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			v, err := config.New()
			if err != nil {
				return err
			}
			if err := bindFlags(v, cmd); err != nil {
				return err
			}
			return a.setup(config.Client(v))
		},
		PersistentPostRun: func(*cobra.Command, []string) { a.close() },
	}

	pf := root.PersistentFlags()
	pf.String("api-url", "", "API base URL (env API_URL)")
	pf.Duration("timeout", 0, "request timeout (env API_TIMEOUT)")
	pf.String("token-path", "", "token file (env TOKEN_PATH)")
	pf.String("log-level", "", "debug, info, warn or error (env LOG_LEVEL)")
	pf.String("locale", "", "message language, en or zh (env LOCALE)")
	pf.BoolVar(&a.asJSON, "json", false, "print JSON instead of tables")

	root.AddCommand(
		a.loginCmd(),
		a.logoutCmd(),
		a.dashboardCmd(),
		a.cropsCmd(),
		a.animalsCmd(),
		a.flowersCmd(),
		a.statsCmd(),
		a.exportCmd(),
	)
	return root
}

var flagKeys = map[string]string{
	"api-url":    config.KeyAPIURL,
	"timeout":    config.KeyAPITimeout,
	"token-path": config.KeyTokenPath,
	"log-level":  config.KeyLogLevel,
	"locale":     config.KeyLocale,
}

// bindFlags lets explicitly set flags override the environment.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) setup(cfg config.ClientConfig) error {
	log, err := logging.NewConsole(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	a.msgs = store.MessagesFor(cfg.Locale)
	a.api, err = client.New(
		client.Config{BaseURL: cfg.APIURL, Timeout: cfg.Timeout},
		client.WithTokenStore(client.NewFileTokenStore(cfg.TokenPath)),
		client.WithLogger(log.Named("client")),
	)
	return err
}

func (a *app) close() {
	if a.api != nil {
		a.api.Close()
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
}
