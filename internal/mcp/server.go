package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/ukaji3/dataal-go/internal/project"
	"github.com/ukaji3/dataal-go/pkg/dataal"
	"github.com/ukaji3/dataal-go/pkg/dataal/models"
)

// ProjectService defines project operations needed by MCP.
type ProjectService interface {
	Create(ctx context.Context, name string) (*project.Project, error)
	List(ctx context.Context) ([]project.Summary, error)
	ListCategories(ctx context.Context, id string) ([]project.CategoryInfo, error)
	GetCategory(ctx context.Context, id, name string) (models.Envelope, error)
	ImportEnvelope(ctx context.Context, id, category string, env models.Envelope, opts project.ImportOptions) (*project.Project, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Projects ProjectService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Options  dataal.Options
	Version  string
	Logger   *slog.Logger
}

const serverInstructions = `dataal turns spreadsheets (xlsx, xls, csv) into list ("liste") or table ("tablo") documents stored in project categories.
Call preview_file first to see the inferred shape, then convert_file or import_file. Pass type to override the inferred shape.`

// NewServer creates and configures an MCP server with all tools.
func NewServer(cfg Config) *sdkmcp.Server {
	version := cfg.Version
	if version == "" {
		version = "dev"
	}
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "dataal",
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, NewHandler(cfg.Services.Projects, cfg.Options))

	return server
}
