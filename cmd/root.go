package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/telegraph/config"
	"github.com/s0up4200/telegraph/telegraph"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *telegraph.Client

	// Global flags
	outputFormat string
	tokenFlag    string
	dryRun       bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "telegraph",
	Short: "Publish and manage pages on Telegraph",
	Long: `telegraph is a CLI for the Telegraph publishing API. It creates and edits
accounts and pages, lists pages with filter expressions, reports view counts
and uploads media.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: json or yaml (overrides output.format)")
	rootCmd.PersistentFlags().StringVar(&tokenFlag, "token", "", "access token (overrides account.access_token)")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "d", false, "print the request instead of sending it")

	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(pageCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// initializeApp loads the configuration and creates the client
func initializeApp(cmd *cobra.Command, args []string) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("output") {
		if outputFormat != config.FormatJSON && outputFormat != config.FormatYAML {
			return fmt.Errorf("invalid output format: %s (must be 'json' or 'yaml')", outputFormat)
		}
		cfg.Output.Format = outputFormat
	}
	if tokenFlag != "" {
		cfg.Account.AccessToken = tokenFlag
	}

	logger = setupLogger(cfg.Logging)

	client = telegraph.NewClient(
		telegraph.WithBaseURL(cfg.API.URL),
		telegraph.WithUploadURL(cfg.API.UploadURL),
		telegraph.WithTimeout(cfg.API.Timeout),
		telegraph.WithUserAgent(cfg.API.UserAgent),
		telegraph.WithLogger(logger),
	)

	logger.Debug().
		Str("api", cfg.API.URL).
		Bool("dry_run", dryRun).
		Msg("Client initialized")

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Colors only when stderr is a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// accessToken returns the token for commands acting on an account
func accessToken() (string, error) {
	if cfg.Account.AccessToken == "" {
		return "", fmt.Errorf("no access token: set account.access_token, %s_ACCOUNT_ACCESS_TOKEN or --token", config.EnvPrefix)
	}
	return cfg.Account.AccessToken, nil
}

// run sends call, or prints it when --dry-run is set, and prints the result
func run[T any](cmd *cobra.Command, call telegraph.Call[T]) (*T, error) {
	if dryRun {
		form, err := call.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s request: %w", call.Method(), err)
		}
		return nil, printDryRun(cmd.OutOrStdout(), call.Method(), form)
	}

	result, err := telegraph.Send(cmd.Context(), call)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// send is run followed by printing the result
func send[T any](cmd *cobra.Command, call telegraph.Call[T]) error {
	result, err := run(cmd, call)
	if err != nil || result == nil {
		return err
	}
	return printOutput(cmd.OutOrStdout(), result)
}
