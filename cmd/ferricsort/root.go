package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ferricsort/config"
	"ferricsort/logutil"
	"ferricsort/seqfile"
	"ferricsort/sort"
)

const version = "0.1.0"

// options 모든 서브커맨드가 공유하는 플래그
type options struct {
	configPath string
	logLevel   string
	engine     string
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	var newName string

	cmd := &cobra.Command{
		Use:           "ferricsort [file]",
		Short:         "A fast sorting tool for large files",
		Long:          "Sort a file of newline-delimited integers in place or into a new file.",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No file specified")
				return nil
			}
			cfg, logger, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer logger.Sync()
			return sortFile(cfg, logger, args[0], newName)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "TOML configuration file")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVarP(&opts.engine, "engine", "e", "", "sort engine (quick, merge, standard)")
	cmd.Flags().StringVarP(&newName, "new-name", "n", "", "write the sorted file to this path instead of overwriting")

	cmd.AddCommand(newBenchCommand(opts), newStoreCommand(opts))
	return cmd
}

// setup 설정 로드, 플래그 반영, 로거 생성
func setup(cmd *cobra.Command, opts *options) (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, nil, err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if cmd.Flags().Changed("engine") {
		cfg.Sort.Engine = opts.engine
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	logger, err := logutil.SetupLogger(cfg.Log)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logger, nil
}

func sortFile(cfg config.Config, logger *zap.Logger, path, newName string) error {
	engine, err := sort.Lookup(cfg.Sort.Engine)
	if err != nil {
		return err
	}

	f, err := seqfile.Read(path)
	if err != nil {
		return err
	}
	sorted := f.SortWith(engine)
	if err := sorted.Write(newName); err != nil {
		return err
	}

	out := path
	if newName != "" {
		out = newName
	}
	logger.Info("sorted file",
		zap.String("file", f.Name),
		zap.String("engine", cfg.Sort.Engine),
		zap.Int("count", len(sorted.Content)),
		zap.String("output", out))
	return nil
}
