package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ukaji3/dataal-go/internal/project"
	"github.com/ukaji3/dataal-go/pkg/dataal"
	"github.com/ukaji3/dataal-go/pkg/dataal/models"
)

// Handler dispatches MCP tool calls.
type Handler struct {
	projects ProjectService
	opts     dataal.Options
}

// NewHandler creates a new MCP handler. opts is the base import
// configuration; a per-call type overrides opts.Kind.
func NewHandler(projects ProjectService, opts dataal.Options) *Handler {
	return &Handler{projects: projects, opts: opts}
}

// Handle dispatches a tool call to the converter or the project service.
func (h *Handler) Handle(ctx context.Context, method string, params json.RawMessage) (any, error) {
	switch method {
	case "preview_file":
		var req PreviewFileParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		opts, err := h.options(req.Type)
		if err != nil {
			return nil, err
		}
		res, err := dataal.Import(dataal.FromFile(req.Path), opts)
		if err != nil {
			return nil, mapError(err)
		}
		return PreviewResponse{
			Name:        res.Name,
			Format:      res.Format,
			Type:        res.Preview.Type,
			Headers:     res.Preview.Headers,
			RowHeaders:  res.Preview.RowHeaders,
			PreviewRows: res.Preview.PreviewRows,
			DataRows:    res.Preview.DataRowCount(),
		}, nil
	case "convert_file":
		var req ConvertFileParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		opts, err := h.options(req.Type)
		if err != nil {
			return nil, err
		}
		res, err := dataal.Import(dataal.FromFile(req.Path), opts)
		if err != nil {
			return nil, mapError(err)
		}
		return ConvertResponse{
			Name:     res.Name,
			Format:   res.Format,
			Checksum: res.Checksum,
			Type:     res.Kind,
			Envelope: res.Envelope,
		}, nil
	case "import_file":
		var req ImportFileParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		opts, err := h.options(req.Type)
		if err != nil {
			return nil, err
		}
		res, err := dataal.Import(dataal.FromFile(req.Path), opts)
		if err != nil {
			return nil, mapError(err)
		}
		proj, err := h.projects.ImportEnvelope(ctx, req.ProjectID, req.Category, res.Envelope, project.ImportOptions{
			NewCategory: req.NewCategory,
			SourceName:  res.Name,
			Checksum:    res.Checksum,
			Kind:        res.Kind,
		})
		if err != nil {
			return nil, mapError(err)
		}
		info, _ := proj.Category(req.Category)
		return ImportResponse{ProjectID: proj.Info.ID, Category: info, Checksum: res.Checksum}, nil
	case "create_project":
		var req CreateProjectParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		proj, err := h.projects.Create(ctx, req.Name)
		if err != nil {
			return nil, mapError(err)
		}
		return ProjectResponse{ID: proj.Info.ID, Name: proj.Info.Name}, nil
	case "list_projects":
		projects, err := h.projects.List(ctx)
		if err != nil {
			return nil, mapError(err)
		}
		if projects == nil {
			projects = []project.Summary{}
		}
		return projects, nil
	case "list_categories":
		var req ListCategoriesParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		cats, err := h.projects.ListCategories(ctx, req.ProjectID)
		if err != nil {
			return nil, mapError(err)
		}
		return cats, nil
	case "get_category":
		var req GetCategoryParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		env, err := h.projects.GetCategory(ctx, req.ProjectID, req.Category)
		if err != nil {
			return nil, mapError(err)
		}
		return env, nil
	default:
		return nil, mapError(fmt.Errorf("%w: %s", errUnknownTool, method))
	}
}

func (h *Handler) options(kind string) (dataal.Options, error) {
	opts := h.opts
	if kind == "" {
		return opts, nil
	}
	k, err := models.ParseShapeKind(kind)
	if err != nil {
		return opts, mapError(fmt.Errorf("%w: %v", errInvalidParams, err))
	}
	opts.Kind = k
	return opts, nil
}

func decodeParams(params json.RawMessage, out any) error {
	if len(params) == 0 {
		return nil
	}
	if err := json.Unmarshal(params, out); err != nil {
		return mapError(fmt.Errorf("%w: %v", errInvalidParams, err))
	}
	return nil
}
