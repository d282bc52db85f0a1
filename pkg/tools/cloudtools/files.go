package cloudtools

import (
	"context"
	"net/http"

	"github.com/entrhq/browsercloud/pkg/cloud"
)

// uploadInput mirrors the presigned-URL argument object shared by both
// file tools.
type uploadInput struct {
	SessionID   string `json:"session_id"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	SizeBytes   int    `json:"size_bytes"`
}

// buildUploadPayload validates upload arguments and shapes the request
// body. The size cap mirrors the upstream 10 MiB limit so oversized
// uploads fail before a URL is minted.
func buildUploadPayload(input uploadInput) (map[string]any, error) {
	fileName, err := cloud.NonEmpty("file_name", input.FileName)
	if err != nil {
		return nil, err
	}
	contentType, err := cloud.NonEmpty("content_type", input.ContentType)
	if err != nil {
		return nil, err
	}
	if _, err := cloud.OneOf("content_type", contentType, cloud.UploadContentTypes); err != nil {
		return nil, err
	}
	sizeBytes, err := cloud.IntInRange("size_bytes", input.SizeBytes, 1, cloud.MaxUploadSizeBytes)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"fileName":    fileName,
		"contentType": contentType,
		"sizeBytes":   sizeBytes,
	}, nil
}

func uploadProperties(sessionDescription string) map[string]interface{} {
	return map[string]interface{}{
		"session_id":   stringProp(sessionDescription),
		"file_name":    stringProp("Name the file will have in the session"),
		"content_type": enumProp("MIME type of the file", cloud.UploadContentTypes),
		"size_bytes":   intProp("Declared file size in bytes, up to 10485760 (10 MiB)"),
	}
}

var uploadRequired = []string{"session_id", "file_name", "content_type", "size_bytes"}

// SessionFileUploadURLTool mints a presigned upload URL for an agent
// session file.
type SessionFileUploadURLTool struct {
	client cloud.Doer
}

// NewSessionFileUploadURLTool creates a new session file upload URL tool.
func NewSessionFileUploadURLTool(client cloud.Doer) *SessionFileUploadURLTool {
	return &SessionFileUploadURLTool{client: client}
}

func (t *SessionFileUploadURLTool) Name() string {
	return "bu_session_file_presigned_url_create"
}

func (t *SessionFileUploadURLTool) Description() string {
	return "Create a presigned upload URL for a file in a Browser Use Cloud agent session. Upload the file bytes to the returned URL with HTTP PUT."
}

func (t *SessionFileUploadURLTool) Schema() map[string]interface{} {
	return BaseToolSchema(uploadProperties("Agent session the file belongs to"), uploadRequired)
}

func (t *SessionFileUploadURLTool) Hints() Hints {
	return Hints{}
}

func (t *SessionFileUploadURLTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	var input uploadInput
	if err := decodeArgs(args, &input); err != nil {
		return nil, err
	}
	sessionID, err := cloud.NonEmpty("session_id", input.SessionID)
	if err != nil {
		return nil, err
	}
	payload, err := buildUploadPayload(input)
	if err != nil {
		return nil, err
	}
	path := "/api/v2/files/sessions/" + sessionID + "/presigned-url"
	return t.client.Do(ctx, http.MethodPost, path, payload, nil), nil
}

// BrowserFileUploadURLTool mints a presigned upload URL for a remote
// browser session file.
type BrowserFileUploadURLTool struct {
	client cloud.Doer
}

// NewBrowserFileUploadURLTool creates a new browser session file upload URL tool.
func NewBrowserFileUploadURLTool(client cloud.Doer) *BrowserFileUploadURLTool {
	return &BrowserFileUploadURLTool{client: client}
}

func (t *BrowserFileUploadURLTool) Name() string {
	return "bu_browser_file_presigned_url_create"
}

func (t *BrowserFileUploadURLTool) Description() string {
	return "Create a presigned upload URL for a file in a Browser Use Cloud remote browser session. Upload the file bytes to the returned URL with HTTP PUT."
}

func (t *BrowserFileUploadURLTool) Schema() map[string]interface{} {
	return BaseToolSchema(uploadProperties("Remote browser session the file belongs to"), uploadRequired)
}

func (t *BrowserFileUploadURLTool) Hints() Hints {
	return Hints{}
}

func (t *BrowserFileUploadURLTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	var input uploadInput
	if err := decodeArgs(args, &input); err != nil {
		return nil, err
	}
	sessionID, err := cloud.NonEmpty("session_id", input.SessionID)
	if err != nil {
		return nil, err
	}
	payload, err := buildUploadPayload(input)
	if err != nil {
		return nil, err
	}
	path := "/api/v2/files/browsers/" + sessionID + "/presigned-url"
	return t.client.Do(ctx, http.MethodPost, path, payload, nil), nil
}
