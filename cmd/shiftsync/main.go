// Package main provides the CLI entry point for shiftsync.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/ukaji3/shiftsync-go/pkg/shiftsync"
	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/config"
	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/grist"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
	envFile    string
	debug      bool

	// Grist connection flags shared by the upload, workspaces and demo commands.
	apiKey    string
	server    string
	org       string
	workspace string
	doc       string
	timeout   time.Duration

	logger = zap.NewNop()
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "shiftsync",
		Short: "Generate sample shift boards and upload scraped records to Grist",
		Long: `shiftsync writes sample shift-scheduling workbooks for Monday.com board
import and uploads scraped JSON, CSV or XLSX records into Grist tables,
creating documents, tables and columns as needed.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			if debug {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file with Grist settings")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to .env file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newBoardCmd(), newUploadCmd(), newWorkspacesCmd(), newDemoCmd())
	return rootCmd
}

// addGristFlags registers the connection flags on cmd.
func addGristFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&apiKey, "api-key", "", "Grist API key (env "+config.EnvAPIKey+")")
	cmd.Flags().StringVar(&server, "server", "", "Grist server URL (env "+config.EnvServer+")")
	cmd.Flags().StringVar(&org, "org", "", "Grist organization name (default \""+grist.DefaultOrg+"\")")
	cmd.Flags().StringVar(&workspace, "workspace", "", "Grist workspace id or name (default: the org name)")
	cmd.Flags().StringVar(&doc, "doc", "", "Grist document name (default \""+shiftsync.DefaultDoc+"\")")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Per-request timeout")
}

// loadConfig merges the config file, .env, environment and flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath, envFile)
	if err != nil {
		return nil, err
	}

	for flag, field := range map[*string]*string{
		&apiKey:    &cfg.APIKey,
		&server:    &cfg.Server,
		&org:       &cfg.Org,
		&workspace: &cfg.Workspace,
		&doc:       &cfg.Doc,
	} {
		if *flag != "" {
			*field = *flag
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newClient(cfg *config.Config) *grist.Client {
	return grist.NewClient(cfg.APIKey, cfg.Server,
		grist.WithOrg(cfg.Org),
		grist.WithWorkspace(cfg.Workspace),
		grist.WithTimeout(timeout),
		grist.WithLogger(logger))
}
