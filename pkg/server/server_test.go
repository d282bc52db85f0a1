package server

import (
	"context"
	"net/url"
	"testing"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/browsercloud/pkg/cloud"
	"github.com/entrhq/browsercloud/pkg/config"
	"github.com/entrhq/browsercloud/pkg/tools/cloudtools"
)

// stubDoer satisfies cloud.Doer without touching the network.
type stubDoer struct {
	result *cloud.Result
}

func (s *stubDoer) Do(context.Context, string, string, any, url.Values) *cloud.Result {
	if s.result != nil {
		return s.result
	}
	return &cloud.Result{Success: true, StatusCode: 200}
}

// connect spins up an in-process client against a fully registered server.
func connect(t *testing.T) *client.Client {
	t.Helper()

	srv := NewWithClient(&stubDoer{})

	c, err := client.NewInProcessClient(srv)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	ctx := context.Background()
	require.NoError(t, c.Start(ctx))

	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{Name: "server-test", Version: "0.0.1"}

	result, err := c.Initialize(ctx, initReq)
	require.NoError(t, err)
	assert.Equal(t, Name, result.ServerInfo.Name)
	assert.Equal(t, Version, result.ServerInfo.Version)

	return c
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New(&config.Config{BaseURL: config.DefaultBaseURL, RequestTimeout: config.DefaultTimeout})
	assert.ErrorIs(t, err, cloud.ErrMissingAPIKey)

	srv, err := New(&config.Config{
		APIKey:         "bu_test_key",
		BaseURL:        config.DefaultBaseURL,
		RequestTimeout: config.DefaultTimeout,
	})
	require.NoError(t, err)
	assert.NotNil(t, srv)
}

func TestServer_ListsEveryTool(t *testing.T) {
	c := connect(t)

	result, err := c.ListTools(context.Background(), mcp.ListToolsRequest{})
	require.NoError(t, err)

	want := cloudtools.All(&stubDoer{})
	require.Len(t, result.Tools, len(want))

	byName := make(map[string]mcp.Tool, len(result.Tools))
	for _, tool := range result.Tools {
		byName[tool.Name] = tool
	}
	for _, tool := range want {
		listed, ok := byName[tool.Name()]
		require.True(t, ok, "tool %s is not registered", tool.Name())
		assert.Equal(t, tool.Description(), listed.Description)
	}
}

func TestServer_ToolAnnotations(t *testing.T) {
	c := connect(t)

	result, err := c.ListTools(context.Background(), mcp.ListToolsRequest{})
	require.NoError(t, err)

	byName := make(map[string]mcp.Tool, len(result.Tools))
	for _, tool := range result.Tools {
		byName[tool.Name] = tool
	}

	get := byName["bu_task_get"]
	require.NotNil(t, get.Annotations.ReadOnlyHint)
	assert.True(t, *get.Annotations.ReadOnlyHint)

	del := byName["bu_session_delete"]
	require.NotNil(t, del.Annotations.DestructiveHint)
	assert.True(t, *del.Annotations.DestructiveHint)
}

func TestServer_CallTool(t *testing.T) {
	c := connect(t)

	req := mcp.CallToolRequest{}
	req.Params.Name = "smoke_ping"
	req.Params.Arguments = map[string]any{"message": "hello"}

	result, err := c.CallTool(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, result.IsError)

	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, `"ok": true`)
	assert.Contains(t, text.Text, "hello")
}

func TestServer_CallTool_ArgumentErrors(t *testing.T) {
	c := connect(t)

	req := mcp.CallToolRequest{}
	req.Params.Name = "bu_task_get"
	req.Params.Arguments = map[string]any{}

	result, err := c.CallTool(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, result.IsError)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "task_id")
}
