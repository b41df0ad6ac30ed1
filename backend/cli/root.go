// Package cli implements quizctl, the operator command line for the question
// bank and the results ledger.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"quizbank/backend/config"
	"quizbank/backend/storage"
	"quizbank/backend/utils"
)

type rootOptions struct {
	dbPath string
	driver string
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "quizctl",
		Short:         "Manage the quiz question bank and results",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "Path to SQLite database file (overrides DB_PATH)")
	root.PersistentFlags().StringVar(&opts.driver, "driver", "", "Database driver: sqlite or postgres (overrides DB_DRIVER)")

	root.AddCommand(newInitCmd(opts))
	root.AddCommand(newQuestionsCmd(opts))
	root.AddCommand(newCategoriesCmd(opts))
	root.AddCommand(newResultsCmd(opts))
	root.AddCommand(newHistoryCmd(opts))
	root.AddCommand(newTokenCmd())
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}

// loadConfig reads the environment and applies the persistent flag overrides.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if o.dbPath != "" {
		cfg.DBPath = o.dbPath
	}
	if o.driver != "" {
		cfg.DBDriver = strings.ToLower(o.driver)
	}
	return cfg, nil
}

// openStore opens the configured store and makes sure the schema exists.
// Callers own the returned store and must close it.
func (o *rootOptions) openStore(cmd *cobra.Command) (*storage.Store, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := utils.InitLogger(utils.LoggerConfig{Output: cmd.ErrOrStderr(), Level: "warn"})
	s, err := storage.Open(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := s.Migrate(cmd.Context()); err != nil {
		s.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func newInitCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the schema and seed the sample questions",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			inserted, err := s.Seed(cmd.Context(), storage.SampleQuestions())
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Schema ready, %d sample questions added.\n", inserted)
			return nil
		},
	}
}
