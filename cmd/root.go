// Package cmd implements the newscrawler command line.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"newsCrawler/domain/rules"
)

// Version is set at build time with -ldflags "-X newsCrawler/cmd.Version=...".
var Version = "dev"

// Execute runs the root command.
func Execute() error {
	// .env is optional
	_ = godotenv.Load()

	return newRootCmd(viper.New()).ExecuteContext(context.Background())
}

// flagKeys maps crawl flags to their config keys.
var flagKeys = map[string]string{
	"start-url":         "start_url",
	"max":               "max",
	"output":            "output",
	"delay":             "delay",
	"timeout":           "timeout",
	"retries":           "retries",
	"backoff-base":      "backoff_base",
	"backoff-increment": "backoff_increment",
	"user-agent":        "user_agent",
	"max-body-bytes":    "max_body_bytes",
	"workers":           "workers",
	"rules":             "rules",
	"skip-extensions":   "skip_extensions",
	"respect-robots":    "respect_robots",
	"db":                "db",
	"progress":          "progress",
	"log-level":         "log.level",
	"log-encoding":      "log.encoding",
	"log-development":   "log.development",
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   appName,
		Short: "Crawl a news site and save its articles as text",
		Long: `newscrawler walks a news site breadth first from a start url, keeps
pages that look like articles and writes their title, publication time,
author and body to a text file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(v, cfgFile); err != nil {
				return err
			}
			return bindFlags(v, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCrawl(cmd, v)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.yaml in ., ./config or the XDG config dir)")
	addCrawlFlags(root.PersistentFlags())

	root.AddCommand(
		&cobra.Command{
			Use:   "crawl",
			Short: "Crawl the site (default command)",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runCrawl(cmd, v)
			},
		},
		&cobra.Command{
			Use:   "rules",
			Short: "Print the extraction rules in use as YAML",
			RunE: func(cmd *cobra.Command, args []string) error {
				return printRules(cmd, v.GetString("rules"))
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the version number",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
			},
		},
	)

	return root
}

// addCrawlFlags registers flags without defaults of their own; defaults live
// in setDefaults so that files and environment variables can override them.
func addCrawlFlags(f *pflag.FlagSet) {
	f.String("start-url", "", "seed url")
	f.Int("max", 0, "stop after this many accepted articles")
	f.StringP("output", "o", "", "output text file")
	f.Float64("delay", 0, "seconds to wait after every successful fetch")
	f.Duration("timeout", 0, "per attempt http timeout")
	f.Int("retries", 0, "fetch attempts per url")
	f.Duration("backoff-base", 0, "wait before the first retry")
	f.Duration("backoff-increment", 0, "extra wait added per retry")
	f.String("user-agent", "", "User-Agent header")
	f.Int64("max-body-bytes", 0, "response body read limit")
	f.Int("workers", 0, "parallel fetches per batch, 1 is sequential")
	f.String("rules", "", "YAML file overriding the extraction rules")
	f.StringSlice("skip-extensions", nil, "url path extensions never fetched")
	f.Bool("respect-robots", false, "honour robots.txt")
	f.String("db", "", "SQLite archive of runs and articles")
	f.Bool("progress", false, "show a progress bar on stderr")
	f.String("log-level", "", "debug, info, warn or error")
	f.String("log-encoding", "", "console or json")
	f.Bool("log-development", false, "development logging")
}

// bindFlags binds only the flags set on the command line, which then win
// over every other source.
func bindFlags(v *viper.Viper, f *pflag.FlagSet) error {
	var err error
	f.VisitAll(func(fl *pflag.Flag) {
		key, ok := flagKeys[fl.Name]
		if !ok || !fl.Changed || err != nil {
			return
		}
		if bindErr := v.BindPFlag(key, fl); bindErr != nil {
			err = fmt.Errorf("failed to bind flag %s: %w", fl.Name, bindErr)
		}
	})
	return err
}

func runCrawl(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := listenForCancellationAndAddToContext(cmd.Context())
	defer cancel()

	app, err := NewApp(ctx, cfg, logger, os.Stderr)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Errorw("failed to close archive", "error", err)
		}
	}()

	report, err := app.Run(ctx)
	if err != nil {
		return err
	}
	renderReport(cmd.OutOrStdout(), report)
	return nil
}

func printRules(cmd *cobra.Command, path string) error {
	set := rules.Default()
	if path != "" {
		loaded, err := rules.Load(path)
		if err != nil {
			return err
		}
		set = loaded
	}
	out, err := rules.Marshal(set)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
