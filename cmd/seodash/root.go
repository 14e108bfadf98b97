package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"seodash/internal/config"
	"seodash/internal/infrastructure"
	"seodash/pkg/contracts"
)

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	configPath string
	baseDir    string
	verbose    bool
}

// environment is the resolved configuration a command runs against
type environment struct {
	cfg    *config.Config
	paths  *config.Paths
	logger *slog.Logger
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "seodash",
		Short: "Etsy + Google SEO Dashboard tools",
		Long: `seodash exports the dashboard's data sets and builds campaign tracking
links from the command line. It reads the same configuration and data
directory as the web dashboard.`,
		SilenceUsage: true,
		// every log line of one invocation shares a trace_id
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(infrastructure.EnsureTraceID(cmd.Context()))
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "configuration file (default: seodash.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&opts.baseDir, "base-dir", "", "base directory holding data/ and data/exports/")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		versionCommand(),
		exportCommand(opts),
		utmCommand(opts),
	)

	return rootCmd
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := contracts.GetVersionInfo()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, contracts.GetFullVersionString())
			fmt.Fprintf(out, "Version:     %s\n", info.Version)
			fmt.Fprintf(out, "API Version: %s\n", info.APIVersion)
			fmt.Fprintf(out, "Git Commit:  %s\n", info.GitCommit)
			fmt.Fprintf(out, "Build Time:  %s\n", info.BuildTime)
			fmt.Fprintf(out, "Go Version:  %s\n", info.GoVersion)
		},
	}
}

// load resolves configuration and directories and builds a console logger
// on stderr. Only warnings are logged unless --verbose is set.
func (o *globalOptions) load(stderr io.Writer) (*environment, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFrom(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if o.baseDir != "" {
		cfg.Paths.BaseDir = o.baseDir
	}
	paths, err := cfg.ResolvePaths()
	if err != nil {
		return nil, err
	}

	logging := cfg.Logging
	logging.Output = config.LogOutputConsole
	logging.Level = "warn"
	if o.verbose {
		logging.Level = "debug"
	}
	logger, _, err := infrastructure.NewLogger(logging, paths.LogsDir, stderr)
	if err != nil {
		return nil, err
	}

	return &environment{cfg: cfg, paths: paths, logger: logger}, nil
}
