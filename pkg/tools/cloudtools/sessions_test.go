package cloudtools

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/browsercloud/pkg/cloud"
)

func TestSessionCreateTool_Execute_Defaults(t *testing.T) {
	fake := &fakeDoer{results: []*cloud.Result{
		okResult(map[string]any{"id": "sess-1"}),
	}}
	tool := NewSessionCreateTool(fake)

	result, err := tool.Execute(context.Background(), map[string]any{})
	require.NoError(t, err)

	ref := result.(cloud.SessionRef)
	assert.True(t, ref.Success)
	assert.Equal(t, "sess-1", ref.SessionID)

	require.Len(t, fake.calls, 1)
	assert.Equal(t, http.MethodPost, fake.calls[0].Method)
	assert.Equal(t, "/api/v2/sessions", fake.calls[0].Path)

	body := fake.calls[0].Body.(map[string]any)
	assert.Equal(t, true, body["persistMemory"])
	assert.Equal(t, true, body["keepAlive"])
	assert.NotContains(t, body, "profileId")
	assert.NotContains(t, body, "startUrl")
}

func TestSessionCreateTool_Execute_FullOptions(t *testing.T) {
	fake := &fakeDoer{results: []*cloud.Result{
		okResult(map[string]any{"session": map[string]any{"id": "sess-2"}}),
	}}
	tool := NewSessionCreateTool(fake)

	result, err := tool.Execute(context.Background(), map[string]any{
		"profile_id":            "prof-1",
		"proxy_country_code":    "de",
		"start_url":             "https://example.com",
		"browser_screen_width":  1280,
		"browser_screen_height": 720,
		"persist_memory":        false,
		"keep_alive":            false,
		"custom_proxy":          map[string]any{"server": "proxy.example.com:8080"},
	})
	require.NoError(t, err)

	ref := result.(cloud.SessionRef)
	assert.True(t, ref.Success)
	assert.Equal(t, "sess-2", ref.SessionID, "nested session payloads must resolve")

	body := fake.calls[0].Body.(map[string]any)
	assert.Equal(t, "prof-1", body["profileId"])
	assert.Equal(t, "de", body["proxyCountryCode"])
	assert.Equal(t, "https://example.com", body["startUrl"])
	assert.Equal(t, 1280, body["browserScreenWidth"])
	assert.Equal(t, 720, body["browserScreenHeight"])
	assert.Equal(t, false, body["persistMemory"])
	assert.Equal(t, false, body["keepAlive"])
	assert.Equal(t, map[string]any{"server": "proxy.example.com:8080"}, body["customProxy"])
}

func TestSessionCreateTool_Execute_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		args      map[string]any
		wantError string
	}{
		{
			name:      "bad start_url",
			args:      map[string]any{"start_url": "example.com"},
			wantError: "http:// or https://",
		},
		{
			name:      "width out of range",
			args:      map[string]any{"browser_screen_width": 100},
			wantError: "browser_screen_width must be between 320 and 6144",
		},
		{
			name:      "height out of range",
			args:      map[string]any{"browser_screen_height": 9000},
			wantError: "browser_screen_height must be between 320 and 3456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeDoer{}
			tool := NewSessionCreateTool(fake)

			_, err := tool.Execute(context.Background(), tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantError)
			assert.Empty(t, fake.calls)
		})
	}
}

func TestSessionCreateTool_Execute_MissingIDInResponse(t *testing.T) {
	fake := &fakeDoer{results: []*cloud.Result{
		okResult(map[string]any{"status": "active"}),
	}}
	tool := NewSessionCreateTool(fake)

	result, err := tool.Execute(context.Background(), map[string]any{})
	require.NoError(t, err)

	ref := result.(cloud.SessionRef)
	assert.False(t, ref.Success)
	assert.Contains(t, ref.Error, "did not include session_id")
}

func TestSessionCreateTool_Execute_UpstreamFailure(t *testing.T) {
	fake := &fakeDoer{results: []*cloud.Result{
		failResult(401, "invalid API key"),
	}}
	tool := NewSessionCreateTool(fake)

	result, err := tool.Execute(context.Background(), map[string]any{})
	require.NoError(t, err)

	ref := result.(cloud.SessionRef)
	assert.False(t, ref.Success)
	assert.Equal(t, 401, ref.StatusCode)
	assert.Equal(t, "invalid API key", ref.Error)
}

func TestSessionListTool_Execute(t *testing.T) {
	fake := &fakeDoer{}
	tool := NewSessionListTool(fake)

	_, err := tool.Execute(context.Background(), map[string]any{"filter_by": "active"})
	require.NoError(t, err)

	assert.Equal(t, "/api/v2/sessions", fake.calls[0].Path)
	query := fake.calls[0].Query
	assert.Equal(t, "10", query.Get("pageSize"))
	assert.Equal(t, "1", query.Get("pageNumber"))
	assert.Equal(t, "active", query.Get("filterBy"))

	_, err = tool.Execute(context.Background(), map[string]any{"filter_by": "paused"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "filter_by must be one of")
}

func TestSessionGetTool_Execute(t *testing.T) {
	fake := &fakeDoer{}
	tool := NewSessionGetTool(fake)

	_, err := tool.Execute(context.Background(), map[string]any{"session_id": "sess-1"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, fake.calls[0].Method)
	assert.Equal(t, "/api/v2/sessions/sess-1", fake.calls[0].Path)

	_, err = tool.Execute(context.Background(), map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session_id")
}

func TestSessionUpdateTool_Execute(t *testing.T) {
	fake := &fakeDoer{}
	tool := NewSessionUpdateTool(fake)

	_, err := tool.Execute(context.Background(), map[string]any{"session_id": "sess-1"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, fake.calls[0].Method)
	assert.Equal(t, "/api/v2/sessions/sess-1", fake.calls[0].Path)
	body := fake.calls[0].Body.(map[string]any)
	assert.Equal(t, "stop", body["action"])

	_, err = tool.Execute(context.Background(), map[string]any{"session_id": "sess-1", "action": "pause"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "action must be one of")
}

func TestSessionDeleteTool_Execute(t *testing.T) {
	fake := &fakeDoer{}
	tool := NewSessionDeleteTool(fake)

	_, err := tool.Execute(context.Background(), map[string]any{"session_id": "sess-1"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, fake.calls[0].Method)
	assert.Equal(t, "/api/v2/sessions/sess-1", fake.calls[0].Path)
	assert.True(t, tool.Hints().Destructive)
}

func TestSessionShareTools_Execute(t *testing.T) {
	fake := &fakeDoer{}
	tests := []struct {
		name       string
		tool       Tool
		wantMethod string
	}{
		{name: "create", tool: NewSessionShareCreateTool(fake), wantMethod: http.MethodPost},
		{name: "get", tool: NewSessionShareGetTool(fake), wantMethod: http.MethodGet},
		{name: "delete", tool: NewSessionShareDeleteTool(fake), wantMethod: http.MethodDelete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.tool.Execute(context.Background(), map[string]any{"session_id": "sess-1"})
			require.NoError(t, err)

			last := fake.calls[len(fake.calls)-1]
			assert.Equal(t, tt.wantMethod, last.Method)
			assert.Equal(t, "/api/v2/sessions/sess-1/public-share", last.Path)

			_, err = tt.tool.Execute(context.Background(), map[string]any{})
			assert.Error(t, err)
		})
	}
}
