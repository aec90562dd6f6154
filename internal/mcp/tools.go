package mcp

import (
	"bytes"
	"context"
	"encoding/json"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerTools(server *sdkmcp.Server, h *Handler) {
	addTool[PreviewFileParams](server, h, "preview_file",
		"Infer the shape of the first sheet of a spreadsheet and return up to five sample rows")
	addTool[ConvertFileParams](server, h, "convert_file",
		"Convert the first sheet of a spreadsheet into a liste or tablo document")
	addTool[ImportFileParams](server, h, "import_file",
		"Convert a spreadsheet and store the document in a project category")
	addTool[CreateProjectParams](server, h, "create_project",
		"Create a new empty project")
	addTool[ListProjectsParams](server, h, "list_projects",
		"List projects, most recently modified first")
	addTool[ListCategoriesParams](server, h, "list_categories",
		"List the categories of a project in order")
	addTool[GetCategoryParams](server, h, "get_category",
		"Get the document stored in a project category")
}

func addTool[In any](server *sdkmcp.Server, h *Handler, name, description string) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: name, Description: description},
		func(ctx context.Context, _ *sdkmcp.CallToolRequest, in In) (*sdkmcp.CallToolResult, any, error) {
			params, err := json.Marshal(in)
			if err != nil {
				return nil, nil, err
			}
			result, err := h.Handle(ctx, name, params)
			return toolResult(result, err)
		})
}

// toolResult renders a handler outcome as JSON text content. Domain errors
// become tool errors so the caller can read the recovery hint.
func toolResult(result any, err error) (*sdkmcp.CallToolResult, any, error) {
	if err != nil {
		apiErr := MapError(err)
		if apiErr == nil {
			return nil, nil, err
		}
		text, encErr := encodeText(apiErr)
		if encErr != nil {
			return nil, nil, encErr
		}
		return &sdkmcp.CallToolResult{
			IsError: true,
			Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: text}},
		}, nil, nil
	}

	text, err := encodeText(result)
	if err != nil {
		return nil, nil, err
	}
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: text}},
	}, nil, nil
}

func encodeText(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
