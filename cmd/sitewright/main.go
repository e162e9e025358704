package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sitewright/sitewright/internal/app"
	"github.com/sitewright/sitewright/internal/config"
	"github.com/sitewright/sitewright/pkg/version"
)

var verbose bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sitewright",
	Short: "Preview manifest pipeline for static site builds",
	Long: `Sitewright resolves which rendered page displays a content node and
persists node manifest artifacts that preview and diffing tools consume
to map content changes to URLs.`,
	Version: version.Short(),
}

var processCmd = &cobra.Command{
	Use:   "process <snapshot>",
	Short: "Run one batch pass against an exported site snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runProcess,
}

var watchCmd = &cobra.Command{
	Use:   "watch <snapshot>",
	Short: "Run periodic batch passes for a develop session",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print full version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Get().String())
	},
}

func init() {
	rootCmd.PersistentFlags().String("cache-root", config.DefaultCacheRoot, "Cache root directory for artifacts")
	rootCmd.PersistentFlags().String("queue-dir", config.QueueDir(), "Durable queue directory")
	rootCmd.PersistentFlags().Bool("memory-queue", false, "Use an in-memory queue instead of the durable one")
	rootCmd.PersistentFlags().IntP("workers", "j", config.DefaultWorkers, "Number of concurrent manifest workers")
	rootCmd.PersistentFlags().Duration("interval", config.DefaultInterval, "Batch interval for develop sessions")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", config.DefaultLogFormat, "Log format (pretty, json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	_ = viper.BindPFlag("cache.root", rootCmd.PersistentFlags().Lookup("cache-root"))
	_ = viper.BindPFlag("queue.directory", rootCmd.PersistentFlags().Lookup("queue-dir"))
	_ = viper.BindPFlag("queue.in_memory", rootCmd.PersistentFlags().Lookup("memory-queue"))
	_ = viper.BindPFlag("concurrency.workers", rootCmd.PersistentFlags().Lookup("workers"))
	_ = viper.BindPFlag("build.interval", rootCmd.PersistentFlags().Lookup("interval"))
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Build.Mode = config.ModeBuild

	var bar *progressbar.ProgressBar
	var onManifest func()
	if !verbose {
		onManifest = func() {
			if bar != nil {
				_ = bar.Add(1)
			}
		}
	}

	orch, err := app.NewOrchestrator(app.OrchestratorOptions{
		Config:       cfg,
		Verbose:      verbose,
		SnapshotPath: args[0],
		OnManifest:   onManifest,
	})
	if err != nil {
		return err
	}
	defer orch.Close()

	if !verbose {
		pending, err := orch.PendingCount()
		if err != nil {
			return err
		}
		if pending > 0 {
			bar = progressbar.NewOptions(pending,
				progressbar.OptionSetDescription("Writing node manifests"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionClearOnFinish(),
			)
		}
	}

	summary, err := orch.RunBatch(cmd.Context())
	if err != nil {
		return err
	}
	if bar != nil {
		_ = bar.Finish()
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "done: %d written, %d unresolved\n", summary.Written, summary.Unresolved)
	}
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Build.Mode = config.ModeDevelop

	orch, err := app.NewOrchestrator(app.OrchestratorOptions{
		Config:       cfg,
		Verbose:      verbose,
		SnapshotPath: args[0],
	})
	if err != nil {
		return err
	}
	defer orch.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	err = app.NewScheduler(orch, cfg).Run(ctx)
	if err != nil && ctx.Err() == nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "watch session ended after %s\n", time.Since(start).Round(time.Second))
	return nil
}
