package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/glogin/internal/app"
	"github.com/oshokin/glogin/internal/config"
	"github.com/oshokin/glogin/internal/logger"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "glogin [flags]",
		Short: "Log into a Google account and print its web-session cookies.",
		Long: `glogin authenticates a Google account by emulating the iOS Hangouts client.

A cached refresh token is used when available, so repeated runs do not ask for
credentials. Otherwise you are prompted for your email, password, and, if your
account has two-step verification enabled, a verification code.

The result is the account's web-session cookie set, printed as JSON or YAML.`,
		Args:             cobra.NoArgs,
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			app.ExecuteRootCommand(cmd.Context(), appConfig)
		},
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	rootCmdFlags := rootCmd.Flags()

	rootCmdFlags.StringP(
		"token-file",
		"t",
		"",
		fmt.Sprintf("file storing the refresh token between runs (default is '%s').",
			config.DefaultRefreshTokenFilename))

	rootCmdFlags.StringP(
		"output",
		"o",
		"",
		"output format for the session cookies: json or yaml.")

	rootCmdFlags.StringP(
		"engine",
		"e",
		"",
		"login form engine: static (plain HTTP) or chrome (headless browser).")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("token-file"); flag != nil && flag.Changed {
		cfg.RefreshTokenPath, _ = flags.GetString("token-file")
	}

	if flag := flags.Lookup("output"); flag != nil && flag.Changed {
		cfg.OutputFormat, _ = flags.GetString("output")
	}

	if flag := flags.Lookup("engine"); flag != nil && flag.Changed {
		cfg.BrowserEngine, _ = flags.GetString("engine")
	}

	return config.ValidateConfig(cfg)
}
