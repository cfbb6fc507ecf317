package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ferricsort/config"
	"ferricsort/kvdb"
	"ferricsort/seqfile"
	"ferricsort/sort"
)

type storeOptions struct {
	backend string
	path    string
}

func newStoreCommand(opts *options) *cobra.Command {
	so := &storeOptions{}
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Keep sorted sequences in an embedded key-value store",
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&so.backend, "backend", "", "store backend (bbolt, badger, pebble)")
	pf.StringVar(&so.path, "path", "", "store directory")

	cmd.AddCommand(
		newStorePutCommand(opts, so),
		newStoreGetCommand(opts, so),
		newStoreListCommand(opts, so),
		newStoreRemoveCommand(opts, so),
	)
	return cmd
}

// withStore 설정을 읽고 저장소를 연 뒤 fn 실행
func withStore(cmd *cobra.Command, opts *options, so *storeOptions, fn func(config.Config, *zap.Logger, *kvdb.Store) error) error {
	cfg, logger, err := setup(cmd, opts)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cmd.Flags().Changed("backend") {
		cfg.Store.Backend = so.backend
	}
	if cmd.Flags().Changed("path") {
		cfg.Store.Path = so.path
	}

	s, err := kvdb.Open(cfg.Store.Backend, cfg.Store.Path, kvdb.Options{
		Logger:        logger,
		ExpectedNames: cfg.Store.ExpectedNames,
	})
	if err != nil {
		return err
	}
	if err := fn(cfg, logger, s); err != nil {
		s.Close()
		return err
	}
	return s.Close()
}

func newStorePutCommand(opts *options, so *storeOptions) *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "put FILE",
		Short: "Sort FILE and store the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, opts, so, func(cfg config.Config, logger *zap.Logger, s *kvdb.Store) error {
				engine, err := sort.Lookup(cfg.Sort.Engine)
				if err != nil {
					return err
				}
				f, err := seqfile.Read(args[0])
				if err != nil {
					return err
				}
				name := key
				if name == "" {
					name = filepath.Base(args[0])
				}
				sorted := f.SortWith(engine)
				if err := s.Put(name, sorted.Content); err != nil {
					return err
				}
				logger.Info("stored sequence",
					zap.String("name", name),
					zap.String("backend", s.Backend()),
					zap.Int("count", len(sorted.Content)))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", "", "name to store under (default: file base name)")
	return cmd
}

func newStoreGetCommand(opts *options, so *storeOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME OUT",
		Short: "Write a stored sequence to OUT",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, opts, so, func(_ config.Config, logger *zap.Logger, s *kvdb.Store) error {
				seq, err := s.Get(args[0])
				if err != nil {
					return err
				}
				if err := seqfile.WriteInts(args[1], seq); err != nil {
					return err
				}
				logger.Info("loaded sequence", zap.String("name", args[0]), zap.String("output", args[1]))
				return nil
			})
		},
	}
}

func newStoreListCommand(opts *options, so *storeOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored sequences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, opts, so, func(_ config.Config, _ *zap.Logger, s *kvdb.Store) error {
				names, err := s.Names()
				if err != nil {
					return err
				}
				for _, name := range names {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			})
		},
	}
}

func newStoreRemoveCommand(opts *options, so *storeOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm NAME",
		Aliases: []string{"delete"},
		Short:   "Delete a stored sequence",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, opts, so, func(_ config.Config, _ *zap.Logger, s *kvdb.Store) error {
				return s.Delete(args[0])
			})
		},
	}
}
