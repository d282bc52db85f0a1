package cloudtools

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/browsercloud/pkg/cloud"
)

func TestBuildUploadPayload(t *testing.T) {
	payload, err := buildUploadPayload(uploadInput{
		FileName:    "report.pdf",
		ContentType: "application/pdf",
		SizeBytes:   2048,
	})
	require.NoError(t, err)
	assert.Equal(t, "report.pdf", payload["fileName"])
	assert.Equal(t, "application/pdf", payload["contentType"])
	assert.Equal(t, 2048, payload["sizeBytes"])
}

func TestBuildUploadPayload_Rejections(t *testing.T) {
	valid := uploadInput{
		FileName:    "report.pdf",
		ContentType: "application/pdf",
		SizeBytes:   2048,
	}

	tests := []struct {
		name      string
		mutate    func(*uploadInput)
		wantError string
	}{
		{
			name:      "empty file name",
			mutate:    func(in *uploadInput) { in.FileName = "  " },
			wantError: "file_name must be a non-empty string",
		},
		{
			name:      "empty content type",
			mutate:    func(in *uploadInput) { in.ContentType = "" },
			wantError: "content_type must be a non-empty string",
		},
		{
			name:      "unsupported content type",
			mutate:    func(in *uploadInput) { in.ContentType = "application/zip" },
			wantError: "content_type must be one of",
		},
		{
			name:      "zero size",
			mutate:    func(in *uploadInput) { in.SizeBytes = 0 },
			wantError: "size_bytes must be between 1 and 10485760",
		},
		{
			name:      "over the 10 MiB cap",
			mutate:    func(in *uploadInput) { in.SizeBytes = cloud.MaxUploadSizeBytes + 1 },
			wantError: "size_bytes must be between 1 and 10485760",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)

			_, err := buildUploadPayload(input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantError)
		})
	}
}

func TestSessionFileUploadURLTool_Execute(t *testing.T) {
	fake := &fakeDoer{}
	tool := NewSessionFileUploadURLTool(fake)

	_, err := tool.Execute(context.Background(), map[string]any{
		"session_id":   "sess-1",
		"file_name":    "input.csv",
		"content_type": "text/csv",
		"size_bytes":   512,
	})
	require.NoError(t, err)

	require.Len(t, fake.calls, 1)
	assert.Equal(t, http.MethodPost, fake.calls[0].Method)
	assert.Equal(t, "/api/v2/files/sessions/sess-1/presigned-url", fake.calls[0].Path)

	body := fake.calls[0].Body.(map[string]any)
	assert.Equal(t, "input.csv", body["fileName"])
	assert.Equal(t, "text/csv", body["contentType"])
	assert.Equal(t, 512, body["sizeBytes"])
}

func TestSessionFileUploadURLTool_Execute_MissingSession(t *testing.T) {
	fake := &fakeDoer{}
	tool := NewSessionFileUploadURLTool(fake)

	_, err := tool.Execute(context.Background(), map[string]any{
		"file_name":    "input.csv",
		"content_type": "text/csv",
		"size_bytes":   512,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session_id")
	assert.Empty(t, fake.calls)
}

func TestBrowserFileUploadURLTool_Execute(t *testing.T) {
	fake := &fakeDoer{}
	tool := NewBrowserFileUploadURLTool(fake)

	_, err := tool.Execute(context.Background(), map[string]any{
		"session_id":   "browser-1",
		"file_name":    "screenshot.png",
		"content_type": "image/png",
		"size_bytes":   4096,
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/v2/files/browsers/browser-1/presigned-url", fake.calls[0].Path)
}
