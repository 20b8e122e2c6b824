package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sadopc/wyrm/internal/config"
	"github.com/sadopc/wyrm/internal/store"
)

var Version = "dev"

func main() {
	// Optional .env in the working directory.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:     "wyrm",
		Short:   "wyrm - personal dev companion: tasks, focus sessions, readmes and standups",
		Version: Version,
	}

	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(focusCmd())
	rootCmd.AddCommand(tasksCmd())
	rootCmd.AddCommand(readmeCmd())
	rootCmd.AddCommand(standupCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(tuiCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openStore loads the configuration and opens the database it points
// at, creating parent directories on first use.
func openStore() (*store.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.EnsureDirs(); err != nil {
		return nil, nil, err
	}
	s, err := store.New(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return s, cfg, nil
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the data directory and database",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cfg, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			fmt.Printf("database ready at %s\n", cfg.DBPath)
			fmt.Printf("data dir %s\n", cfg.DataDir)
			fmt.Printf("output dir %s\n", cfg.OutDir)
			return nil
		},
	}
}
