package mcp

import (
	"context"
	"encoding/json"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/dataal-go/internal/project"
	"github.com/ukaji3/dataal-go/pkg/dataal"
)

func connect(t *testing.T, projects ProjectService) *sdkmcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	server := NewServer(Config{
		Services: Services{Projects: projects},
		Options:  dataal.DefaultOptions(),
	})
	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { serverSession.Close() })

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })
	return session
}

func textOf(t *testing.T, res *sdkmcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestServer_ListTools(t *testing.T) {
	session := connect(t, projectStub{})

	res, err := session.ListTools(context.Background(), &sdkmcp.ListToolsParams{})
	require.NoError(t, err)

	names := make([]string, 0, len(res.Tools))
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	require.ElementsMatch(t, []string{
		"preview_file", "convert_file", "import_file",
		"create_project", "list_projects", "list_categories", "get_category",
	}, names)
}

func TestServer_CallTool(t *testing.T) {
	session := connect(t, projectStub{
		listFn: func(_ context.Context) ([]project.Summary, error) {
			return []project.Summary{{Info: project.Info{ID: "p1", Name: "Bina"}, CategoryCount: 3}}, nil
		},
		listCategoriesFn: func(_ context.Context, _ string) ([]project.CategoryInfo, error) {
			return nil, project.ErrProjectNotFound
		},
	})
	ctx := context.Background()

	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{Name: "list_projects", Arguments: map[string]any{}})
	require.NoError(t, err)
	require.False(t, res.IsError)

	var projects []project.Summary
	require.NoError(t, json.Unmarshal([]byte(textOf(t, res)), &projects))
	require.Len(t, projects, 1)
	require.Equal(t, 3, projects[0].CategoryCount)

	res, err = session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "list_categories",
		Arguments: map[string]any{"project_id": "missing"},
	})
	require.NoError(t, err)
	require.True(t, res.IsError)

	var apiErr APIError
	require.NoError(t, json.Unmarshal([]byte(textOf(t, res)), &apiErr))
	require.Equal(t, "PROJECT_NOT_FOUND", apiErr.Code)
}
