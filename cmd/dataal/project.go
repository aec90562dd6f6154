package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/dataal-go/internal/project"
)

func newProjectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "create [name]",
			Short: "Create an empty project",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, err := a.openProjects()
				if err != nil {
					return err
				}
				proj, err := svc.Create(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.print(proj.Info)
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List projects, most recently modified first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				svc, err := a.openProjects()
				if err != nil {
					return err
				}
				projects, err := svc.List(cmd.Context())
				if err != nil {
					return err
				}
				if projects == nil {
					projects = []project.Summary{}
				}
				return a.print(projects)
			},
		},
		&cobra.Command{
			Use:   "show [project-id]",
			Short: "Show a project and its categories",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, err := a.openProjects()
				if err != nil {
					return err
				}
				proj, err := svc.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				cats, err := svc.ListCategories(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.print(struct {
					project.Info
					Categories []project.CategoryInfo `json:"categories"`
				}{proj.Info, cats})
			},
		},
		&cobra.Command{
			Use:   "history [project-id]",
			Short: "List the imports recorded for a project",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, err := a.openProjects()
				if err != nil {
					return err
				}
				records, err := svc.ListImports(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if records == nil {
					records = []project.ImportRecord{}
				}
				return a.print(records)
			},
		},
		&cobra.Command{
			Use:   "delete [project-id]",
			Short: "Delete a project",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, err := a.openProjects()
				if err != nil {
					return err
				}
				return svc.Delete(cmd.Context(), args[0])
			},
		},
		newExportCmd(a),
	)
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "export [project-id]",
		Short: "Write the project data to data_<name>.json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.openProjects()
			if err != nil {
				return err
			}
			name, data, err := svc.Export(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if dir == "" {
				dir = a.cfg.Export.Dir
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			a.logger.Info("project exported", "id", args[0], "path", path)
			fmt.Fprintln(a.stdout, path)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Output directory (default: export.dir from config)")
	return cmd
}

func newCategoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage the categories of a project",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list [project-id]",
			Short: "List categories in order",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, err := a.openProjects()
				if err != nil {
					return err
				}
				cats, err := svc.ListCategories(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.print(cats)
			},
		},
		&cobra.Command{
			Use:   "show [project-id] [category]",
			Short: "Print the document stored in a category",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, err := a.openProjects()
				if err != nil {
					return err
				}
				env, err := svc.GetCategory(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				return a.print(env)
			},
		},
		&cobra.Command{
			Use:   "add [project-id] [category]",
			Short: "Add an empty category",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, err := a.openProjects()
				if err != nil {
					return err
				}
				proj, err := svc.AddCategory(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				info, _ := proj.Category(args[1])
				return a.print(info)
			},
		},
		&cobra.Command{
			Use:   "remove [project-id] [category]",
			Short: "Remove a category",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, err := a.openProjects()
				if err != nil {
					return err
				}
				_, err = svc.RemoveCategory(cmd.Context(), args[0], args[1])
				return err
			},
		},
	)
	return cmd
}
