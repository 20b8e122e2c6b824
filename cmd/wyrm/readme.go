package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sadopc/wyrm/internal/forge"
)

func readmeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readme",
		Short: "Generate README files",
	}

	cmd.AddCommand(readmeProfileCmd())
	cmd.AddCommand(readmeProjectCmd())
	cmd.AddCommand(readmeHistoryCmd())

	return cmd
}

func readmeProfileCmd() *cobra.Command {
	var name, style, out string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Generate a GitHub profile README",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}
			style, err := forge.NormalizeStyle(style)
			if err != nil {
				return err
			}

			s, cfg, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			if out == "" {
				out = filepath.Join(cfg.OutDir, "PROFILE_README.md")
			}
			content := forge.RenderProfile(name, style)
			path, err := forge.WriteOutput(content, out)
			if err != nil {
				return err
			}
			if _, err := s.AddReadmeRecord("profile", name, style, path); err != nil {
				return err
			}
			fmt.Printf("wrote %s (%s style)\n", path, style)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "your display name")
	cmd.Flags().StringVarP(&style, "style", "s", "clean", "clean or cute")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path")

	return cmd
}

func readmeProjectCmd() *cobra.Command {
	var title, description, style, out string

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Generate a project README",
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" {
				return fmt.Errorf("--title is required")
			}
			style, err := forge.NormalizeStyle(style)
			if err != nil {
				return err
			}

			s, cfg, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			if out == "" {
				out = filepath.Join(cfg.OutDir, "PROJECT_README.md")
			}
			content := forge.RenderProject(title, description, style)
			path, err := forge.WriteOutput(content, out)
			if err != nil {
				return err
			}
			if _, err := s.AddReadmeRecord("project", title, style, path); err != nil {
				return err
			}
			fmt.Printf("wrote %s (%s style)\n", path, style)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "project title")
	cmd.Flags().StringVarP(&description, "desc", "d", "", "project description")
	cmd.Flags().StringVarP(&style, "style", "s", "clean", "clean or cute")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path")

	return cmd
}

func readmeHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently generated READMEs",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			records, err := s.ListReadmeHistory(limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("no readmes generated yet")
				return nil
			}
			for _, r := range records {
				fmt.Printf("%s  %-7s %-5s %s -> %s\n",
					r.CreatedAt.Format("2006-01-02 15:04"), r.Kind, r.Style, r.Title, r.Path)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of entries")
	return cmd
}
