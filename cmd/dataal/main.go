// Package main provides the CLI entry point for dataal.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/ukaji3/dataal-go/internal/config"
	"github.com/ukaji3/dataal-go/internal/mcp"
	"github.com/ukaji3/dataal-go/internal/project"
	"github.com/ukaji3/dataal-go/internal/sqlite"
	"github.com/ukaji3/dataal-go/pkg/dataal"
	"github.com/ukaji3/dataal-go/pkg/dataal/models"
	"github.com/ukaji3/dataal-go/pkg/dataal/output"
)

var version = "dev"

// app holds state shared by all commands.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	stdout io.Writer
	pretty bool

	db       *sqlite.DB
	projects *project.Service
}

func main() {
	a := &app{stdout: os.Stdout}
	if err := newRootCmd(a).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dataal",
		Short: "Turn spreadsheets into list and table documents",
		Long: `dataal reads the first sheet of an xlsx, xls or csv file, infers whether it
holds a list or a table, and converts it into a "liste" or "tablo" document
that can be stored in a project category.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.close()
		},
	}
	rootCmd.PersistentFlags().BoolVar(&a.pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(
		newPreviewCmd(a),
		newConvertCmd(a),
		newImportCmd(a),
		newProjectCmd(a),
		newCategoryCmd(a),
		newServeCmd(a),
	)
	return rootCmd
}

func (a *app) init() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel(),
	}))
	return nil
}

func (a *app) close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	a.projects = nil
	return err
}

// openProjects opens the store on first use and returns the project service.
func (a *app) openProjects() (*project.Service, error) {
	if a.projects != nil {
		return a.projects, nil
	}
	if err := ensureDBDir(a.cfg.DB.Path); err != nil {
		return nil, fmt.Errorf("failed to prepare database path: %w", err)
	}
	db, err := sqlite.New(a.cfg.DB.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	a.db = db
	a.projects = project.NewService(sqlite.NewProjectRepository(db), sqlite.NewImportRepository(db), a.logger)
	return a.projects, nil
}

func (a *app) baseOptions() dataal.Options {
	opts := dataal.DefaultOptions()
	opts.DropEmptyColumns = a.cfg.Import.DropEmptyColumns
	return opts
}

func (a *app) print(v any) error {
	return output.Write(a.stdout, v, a.pretty)
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// previewView is the preview without the raw grid.
type previewView struct {
	Name        string               `json:"name"`
	Format      string               `json:"format,omitempty"`
	Type        models.ShapeKind     `json:"type"`
	Headers     []string             `json:"headers"`
	RowHeaders  []string             `json:"rowHeaders,omitempty"`
	PreviewRows []*models.OrderedMap `json:"previewRows"`
	DataRows    int                  `json:"dataRows"`
}

func newPreviewCmd(a *app) *cobra.Command {
	var flags conversionFlags
	cmd := &cobra.Command{
		Use:   "preview [input]",
		Short: "Show the inferred shape and up to five sample rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := dataal.Import(dataal.FromFile(args[0]), flags.options(a.baseOptions()))
			if err != nil {
				return fmt.Errorf("preview failed: %w", err)
			}
			return a.print(previewView{
				Name:        res.Name,
				Format:      string(res.Format),
				Type:        res.Preview.Type,
				Headers:     res.Preview.Headers,
				RowHeaders:  res.Preview.RowHeaders,
				PreviewRows: res.Preview.PreviewRows,
				DataRows:    res.Preview.DataRowCount(),
			})
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func newConvertCmd(a *app) *cobra.Command {
	var (
		flags      conversionFlags
		outputPath string
	)
	cmd := &cobra.Command{
		Use:   "convert [input]",
		Short: "Convert a spreadsheet into a liste or tablo document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := dataal.Import(dataal.FromFile(args[0]), flags.options(a.baseOptions()))
			if err != nil {
				return fmt.Errorf("conversion failed: %w", err)
			}
			if outputPath == "" {
				return a.print(res.Envelope)
			}

			jsonData, err := output.ToJSON(res.Envelope, a.pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			if err := os.WriteFile(outputPath, append(jsonData, '\n'), 0o644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			a.logger.Info("converted", "input", res.Name, "type", res.Kind, "output", outputPath)
			return nil
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	var (
		flags       conversionFlags
		newCategory bool
	)
	cmd := &cobra.Command{
		Use:   "import [project-id] [category] [input]",
		Short: "Convert a spreadsheet and store it in a project category",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.openProjects()
			if err != nil {
				return err
			}
			res, err := dataal.Import(dataal.FromFile(args[2]), flags.options(a.baseOptions()))
			if err != nil {
				return fmt.Errorf("conversion failed: %w", err)
			}
			proj, err := svc.ImportEnvelope(cmd.Context(), args[0], args[1], res.Envelope, project.ImportOptions{
				NewCategory: newCategory,
				SourceName:  res.Name,
				Checksum:    res.Checksum,
				Kind:        res.Kind,
			})
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
			info, _ := proj.Category(args[1])
			return a.print(info)
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().BoolVar(&newCategory, "new", false, "Create the category instead of replacing an existing one")
	return cmd
}

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := a.openProjects()
			if err != nil {
				return err
			}
			server := mcp.NewServer(mcp.Config{
				Services: mcp.Services{Projects: svc},
				Options:  a.baseOptions(),
				Version:  version,
				Logger:   a.logger,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a.logger.Info("starting stdio transport", "db", a.cfg.DB.Path)
			if err := server.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && ctx.Err() == nil {
				return fmt.Errorf("stdio server error: %w", err)
			}
			a.logger.Info("shutting down")
			return nil
		},
	}
}
