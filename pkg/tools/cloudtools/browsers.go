package cloudtools

import (
	"context"
	"net/http"

	"github.com/entrhq/browsercloud/pkg/cloud"
)

// browserSessionCreateInput mirrors the bu_browser_session_create argument
// object.
type browserSessionCreateInput struct {
	ProfileID           string         `json:"profile_id"`
	ProxyCountryCode    string         `json:"proxy_country_code"`
	Timeout             int            `json:"timeout"`
	BrowserScreenWidth  int            `json:"browser_screen_width"`
	BrowserScreenHeight int            `json:"browser_screen_height"`
	AllowResizing       bool           `json:"allow_resizing"`
	CustomProxy         map[string]any `json:"custom_proxy"`
}

// BrowserSessionCreateTool creates a remote browser session and returns
// its correlation identifiers, including the CDP endpoint when available.
type BrowserSessionCreateTool struct {
	client cloud.Doer
}

// NewBrowserSessionCreateTool creates a new remote browser session tool.
func NewBrowserSessionCreateTool(client cloud.Doer) *BrowserSessionCreateTool {
	return &BrowserSessionCreateTool{client: client}
}

func (t *BrowserSessionCreateTool) Name() string {
	return "bu_browser_session_create"
}

func (t *BrowserSessionCreateTool) Description() string {
	return "Create a Browser Use Cloud remote browser session and return session_id plus cdp_url for connecting a CDP client." + correlationContract
}

func (t *BrowserSessionCreateTool) Schema() map[string]interface{} {
	return BaseToolSchema(map[string]interface{}{
		"profile_id":            stringProp("Profile to load into the browser (cookies, storage)"),
		"proxy_country_code":    stringProp("Two-letter country code for the browser proxy"),
		"timeout":               intProp("Idle minutes before the browser is reclaimed, 1-240 (default 60)"),
		"browser_screen_width":  intProp("Viewport width in pixels, 320-6144"),
		"browser_screen_height": intProp("Viewport height in pixels, 320-3456"),
		"allow_resizing":        boolProp("Allow CDP clients to resize the viewport (default false)"),
		"custom_proxy":          map[string]interface{}{"type": "object", "description": "Custom proxy configuration object"},
	}, nil)
}

func (t *BrowserSessionCreateTool) Hints() Hints {
	return Hints{}
}

func (t *BrowserSessionCreateTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	input := browserSessionCreateInput{Timeout: 60}
	if err := decodeArgs(args, &input); err != nil {
		return nil, err
	}

	timeout, err := cloud.IntInRange("timeout", input.Timeout, 1, 240)
	if err != nil {
		return nil, err
	}
	payload := map[string]any{
		"timeout":       timeout,
		"allowResizing": input.AllowResizing,
	}
	if input.ProfileID != "" {
		payload["profileId"] = input.ProfileID
	}
	if input.ProxyCountryCode != "" {
		payload["proxyCountryCode"] = input.ProxyCountryCode
	}
	if input.BrowserScreenWidth != 0 {
		width, err := cloud.IntInRange("browser_screen_width", input.BrowserScreenWidth, 320, 6144)
		if err != nil {
			return nil, err
		}
		payload["browserScreenWidth"] = width
	}
	if input.BrowserScreenHeight != 0 {
		height, err := cloud.IntInRange("browser_screen_height", input.BrowserScreenHeight, 320, 3456)
		if err != nil {
			return nil, err
		}
		payload["browserScreenHeight"] = height
	}
	if len(input.CustomProxy) > 0 {
		payload["customProxy"] = input.CustomProxy
	}

	resp := t.client.Do(ctx, http.MethodPost, "/api/v2/browsers", payload, nil)
	if !resp.Success {
		return cloud.BrowserSessionRef{
			Success:    false,
			StatusCode: resp.StatusCode,
			Data:       resp.Data,
			Error:      resp.Error,
		}, nil
	}

	sessionID, cdpURL := extractBrowserSessionRefs(resp.Data)
	if sessionID == "" {
		return cloud.BrowserSessionRef{
			Success:    false,
			StatusCode: resp.StatusCode,
			Data:       resp.Data,
			Error:      "browser session created but response did not include session_id",
		}, nil
	}

	return cloud.BrowserSessionRef{
		Success:    true,
		SessionID:  sessionID,
		CDPURL:     cdpURL,
		StatusCode: resp.StatusCode,
		Data:       resp.Data,
	}, nil
}

// BrowserSessionListTool lists remote browser sessions.
type BrowserSessionListTool struct {
	client cloud.Doer
}

// NewBrowserSessionListTool creates a new remote browser session list tool.
func NewBrowserSessionListTool(client cloud.Doer) *BrowserSessionListTool {
	return &BrowserSessionListTool{client: client}
}

func (t *BrowserSessionListTool) Name() string {
	return "bu_browser_session_list"
}

func (t *BrowserSessionListTool) Description() string {
	return "List Browser Use Cloud remote browser sessions with pagination and an optional status filter."
}

func (t *BrowserSessionListTool) Schema() map[string]interface{} {
	return BaseToolSchema(map[string]interface{}{
		"page_size":   intProp("Results per page, 1-100 (default 10)"),
		"page_number": intProp("Page number starting at 1 (default 1)"),
		"filter_by":   enumProp("Only list browser sessions with this status", cloud.SessionStatuses),
	}, nil)
}

func (t *BrowserSessionListTool) Hints() Hints {
	return Hints{ReadOnly: true}
}

func (t *BrowserSessionListTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	input := struct {
		PageSize   int    `json:"page_size"`
		PageNumber int    `json:"page_number"`
		FilterBy   string `json:"filter_by"`
	}{PageSize: 10, PageNumber: 1}
	if err := decodeArgs(args, &input); err != nil {
		return nil, err
	}

	query, err := paginationQuery(input.PageSize, input.PageNumber)
	if err != nil {
		return nil, err
	}
	if input.FilterBy != "" {
		status, err := cloud.OneOf("filter_by", input.FilterBy, cloud.SessionStatuses)
		if err != nil {
			return nil, err
		}
		query.Set("filterBy", status)
	}

	return t.client.Do(ctx, http.MethodGet, "/api/v2/browsers", nil, query), nil
}

// BrowserSessionGetTool fetches a remote browser session by ID.
type BrowserSessionGetTool struct {
	client cloud.Doer
}

// NewBrowserSessionGetTool creates a new remote browser session fetch tool.
func NewBrowserSessionGetTool(client cloud.Doer) *BrowserSessionGetTool {
	return &BrowserSessionGetTool{client: client}
}

func (t *BrowserSessionGetTool) Name() string {
	return "bu_browser_session_get"
}

func (t *BrowserSessionGetTool) Description() string {
	return "Get Browser Use Cloud remote browser session details by session ID."
}

func (t *BrowserSessionGetTool) Schema() map[string]interface{} {
	return BaseToolSchema(map[string]interface{}{
		"session_id": stringProp("Browser session ID returned by bu_browser_session_create"),
	}, []string{"session_id"})
}

func (t *BrowserSessionGetTool) Hints() Hints {
	return Hints{ReadOnly: true}
}

func (t *BrowserSessionGetTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	sessionID, err := requiredSessionID(args)
	if err != nil {
		return nil, err
	}
	return t.client.Do(ctx, http.MethodGet, "/api/v2/browsers/"+sessionID, nil, nil), nil
}

// BrowserSessionUpdateTool applies a state transition to a remote browser
// session.
type BrowserSessionUpdateTool struct {
	client cloud.Doer
}

// NewBrowserSessionUpdateTool creates a new remote browser session update tool.
func NewBrowserSessionUpdateTool(client cloud.Doer) *BrowserSessionUpdateTool {
	return &BrowserSessionUpdateTool{client: client}
}

func (t *BrowserSessionUpdateTool) Name() string {
	return "bu_browser_session_update"
}

func (t *BrowserSessionUpdateTool) Description() string {
	return "Stop a Browser Use Cloud remote browser session and release its resources."
}

func (t *BrowserSessionUpdateTool) Schema() map[string]interface{} {
	return BaseToolSchema(map[string]interface{}{
		"session_id": stringProp("Browser session ID returned by bu_browser_session_create"),
		"action":     enumProp("State transition to apply (default stop)", cloud.SessionActions),
	}, []string{"session_id"})
}

func (t *BrowserSessionUpdateTool) Hints() Hints {
	return Hints{}
}

func (t *BrowserSessionUpdateTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	input := struct {
		SessionID string `json:"session_id"`
		Action    string `json:"action"`
	}{Action: string(cloud.SessionActionStop)}
	if err := decodeArgs(args, &input); err != nil {
		return nil, err
	}
	sessionID, err := cloud.NonEmpty("session_id", input.SessionID)
	if err != nil {
		return nil, err
	}
	action, err := cloud.OneOf("action", input.Action, cloud.SessionActions)
	if err != nil {
		return nil, err
	}
	body := map[string]any{"action": action}
	return t.client.Do(ctx, http.MethodPatch, "/api/v2/browsers/"+sessionID, body, nil), nil
}
