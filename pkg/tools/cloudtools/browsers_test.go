package cloudtools

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/browsercloud/pkg/cloud"
)

func TestBrowserSessionCreateTool_Execute_Defaults(t *testing.T) {
	fake := &fakeDoer{results: []*cloud.Result{
		okResult(map[string]any{"id": "browser-1", "cdpUrl": "wss://cdp.example.com/browser-1"}),
	}}
	tool := NewBrowserSessionCreateTool(fake)

	result, err := tool.Execute(context.Background(), map[string]any{})
	require.NoError(t, err)

	ref := result.(cloud.BrowserSessionRef)
	assert.True(t, ref.Success)
	assert.Equal(t, "browser-1", ref.SessionID)
	assert.Equal(t, "wss://cdp.example.com/browser-1", ref.CDPURL)

	require.Len(t, fake.calls, 1)
	assert.Equal(t, http.MethodPost, fake.calls[0].Method)
	assert.Equal(t, "/api/v2/browsers", fake.calls[0].Path)

	body := fake.calls[0].Body.(map[string]any)
	assert.Equal(t, 60, body["timeout"])
	assert.Equal(t, false, body["allowResizing"])
	assert.NotContains(t, body, "profileId")
}

func TestBrowserSessionCreateTool_Execute_NestedPayload(t *testing.T) {
	fake := &fakeDoer{results: []*cloud.Result{
		okResult(map[string]any{"session": map[string]any{
			"id":     "browser-2",
			"cdpUrl": "wss://cdp.example.com/browser-2",
		}}),
	}}
	tool := NewBrowserSessionCreateTool(fake)

	result, err := tool.Execute(context.Background(), map[string]any{
		"profile_id":     "prof-1",
		"timeout":        120,
		"allow_resizing": true,
	})
	require.NoError(t, err)

	ref := result.(cloud.BrowserSessionRef)
	assert.True(t, ref.Success)
	assert.Equal(t, "browser-2", ref.SessionID)
	assert.Equal(t, "wss://cdp.example.com/browser-2", ref.CDPURL)

	body := fake.calls[0].Body.(map[string]any)
	assert.Equal(t, 120, body["timeout"])
	assert.Equal(t, true, body["allowResizing"])
	assert.Equal(t, "prof-1", body["profileId"])
}

func TestBrowserSessionCreateTool_Execute_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		args      map[string]any
		wantError string
	}{
		{
			name:      "timeout out of range",
			args:      map[string]any{"timeout": 500},
			wantError: "timeout must be between 1 and 240",
		},
		{
			name:      "width out of range",
			args:      map[string]any{"browser_screen_width": 10_000},
			wantError: "browser_screen_width must be between 320 and 6144",
		},
		{
			name:      "height out of range",
			args:      map[string]any{"browser_screen_height": 100},
			wantError: "browser_screen_height must be between 320 and 3456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeDoer{}
			tool := NewBrowserSessionCreateTool(fake)

			_, err := tool.Execute(context.Background(), tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantError)
			assert.Empty(t, fake.calls)
		})
	}
}

func TestBrowserSessionCreateTool_Execute_MissingID(t *testing.T) {
	fake := &fakeDoer{results: []*cloud.Result{
		okResult(map[string]any{"status": "active"}),
	}}
	tool := NewBrowserSessionCreateTool(fake)

	result, err := tool.Execute(context.Background(), map[string]any{})
	require.NoError(t, err)

	ref := result.(cloud.BrowserSessionRef)
	assert.False(t, ref.Success)
	assert.Contains(t, ref.Error, "did not include session_id")
}

func TestBrowserSessionListTool_Execute(t *testing.T) {
	fake := &fakeDoer{}
	tool := NewBrowserSessionListTool(fake)

	_, err := tool.Execute(context.Background(), map[string]any{"page_size": 5, "filter_by": "stopped"})
	require.NoError(t, err)

	assert.Equal(t, "/api/v2/browsers", fake.calls[0].Path)
	query := fake.calls[0].Query
	assert.Equal(t, "5", query.Get("pageSize"))
	assert.Equal(t, "stopped", query.Get("filterBy"))
}

func TestBrowserSessionGetTool_Execute(t *testing.T) {
	fake := &fakeDoer{}
	tool := NewBrowserSessionGetTool(fake)

	_, err := tool.Execute(context.Background(), map[string]any{"session_id": "browser-1"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, fake.calls[0].Method)
	assert.Equal(t, "/api/v2/browsers/browser-1", fake.calls[0].Path)
}

func TestBrowserSessionUpdateTool_Execute(t *testing.T) {
	fake := &fakeDoer{}
	tool := NewBrowserSessionUpdateTool(fake)

	_, err := tool.Execute(context.Background(), map[string]any{"session_id": "browser-1"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, fake.calls[0].Method)
	assert.Equal(t, "/api/v2/browsers/browser-1", fake.calls[0].Path)
	body := fake.calls[0].Body.(map[string]any)
	assert.Equal(t, "stop", body["action"])

	_, err = tool.Execute(context.Background(), map[string]any{"session_id": "browser-1", "action": "restart"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "action must be one of")
}
