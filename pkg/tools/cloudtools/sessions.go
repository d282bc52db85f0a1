package cloudtools

import (
	"context"
	"net/http"

	"github.com/entrhq/browsercloud/pkg/cloud"
)

// sessionCreateInput mirrors the bu_session_create argument object.
type sessionCreateInput struct {
	ProfileID           string         `json:"profile_id"`
	ProxyCountryCode    string         `json:"proxy_country_code"`
	StartURL            string         `json:"start_url"`
	BrowserScreenWidth  int            `json:"browser_screen_width"`
	BrowserScreenHeight int            `json:"browser_screen_height"`
	PersistMemory       bool           `json:"persist_memory"`
	KeepAlive           bool           `json:"keep_alive"`
	CustomProxy         map[string]any `json:"custom_proxy"`
}

// SessionCreateTool creates an agent session and returns its ID.
type SessionCreateTool struct {
	client cloud.Doer
}

// NewSessionCreateTool creates a new session creation tool.
func NewSessionCreateTool(client cloud.Doer) *SessionCreateTool {
	return &SessionCreateTool{client: client}
}

func (t *SessionCreateTool) Name() string {
	return "bu_session_create"
}

func (t *SessionCreateTool) Description() string {
	return "Create a Browser Use Cloud agent session and return its session_id for follow-up calls." + correlationContract
}

func (t *SessionCreateTool) Schema() map[string]interface{} {
	return BaseToolSchema(map[string]interface{}{
		"profile_id":            stringProp("Profile to load into the session (cookies, storage)"),
		"proxy_country_code":    stringProp("Two-letter country code for the session proxy"),
		"start_url":             stringProp("URL opened when the session starts (http or https)"),
		"browser_screen_width":  intProp("Viewport width in pixels, 320-6144"),
		"browser_screen_height": intProp("Viewport height in pixels, 320-3456"),
		"persist_memory":        boolProp("Persist agent memory across tasks in this session (default true)"),
		"keep_alive":            boolProp("Keep the session alive after tasks finish (default true)"),
		"custom_proxy":          map[string]interface{}{"type": "object", "description": "Custom proxy configuration object"},
	}, nil)
}

func (t *SessionCreateTool) Hints() Hints {
	return Hints{}
}

func (t *SessionCreateTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	input := sessionCreateInput{PersistMemory: true, KeepAlive: true}
	if err := decodeArgs(args, &input); err != nil {
		return nil, err
	}

	startURL, err := cloud.MaybeURL(input.StartURL)
	if err != nil {
		return nil, err
	}
	payload := map[string]any{
		"persistMemory": input.PersistMemory,
		"keepAlive":     input.KeepAlive,
	}
	if input.ProfileID != "" {
		payload["profileId"] = input.ProfileID
	}
	if input.ProxyCountryCode != "" {
		payload["proxyCountryCode"] = input.ProxyCountryCode
	}
	if startURL != "" {
		payload["startUrl"] = startURL
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

	resp := t.client.Do(ctx, http.MethodPost, "/api/v2/sessions", payload, nil)
	if !resp.Success {
		return cloud.SessionRef{
			Success:    false,
			StatusCode: resp.StatusCode,
			Data:       resp.Data,
			Error:      resp.Error,
		}, nil
	}

	sessionID := extractSessionID(resp.Data)
	if sessionID == "" {
		return cloud.SessionRef{
			Success:    false,
			StatusCode: resp.StatusCode,
			Data:       resp.Data,
			Error:      "session created but response did not include session_id",
		}, nil
	}

	return cloud.SessionRef{
		Success:    true,
		SessionID:  sessionID,
		StatusCode: resp.StatusCode,
		Data:       resp.Data,
	}, nil
}

// SessionListTool lists agent sessions.
type SessionListTool struct {
	client cloud.Doer
}

// NewSessionListTool creates a new session list tool.
func NewSessionListTool(client cloud.Doer) *SessionListTool {
	return &SessionListTool{client: client}
}

func (t *SessionListTool) Name() string {
	return "bu_session_list"
}

func (t *SessionListTool) Description() string {
	return "List Browser Use Cloud agent sessions with pagination and an optional status filter."
}

func (t *SessionListTool) Schema() map[string]interface{} {
	return BaseToolSchema(map[string]interface{}{
		"page_size":   intProp("Results per page, 1-100 (default 10)"),
		"page_number": intProp("Page number starting at 1 (default 1)"),
		"filter_by":   enumProp("Only list sessions with this status", cloud.SessionStatuses),
	}, nil)
}

func (t *SessionListTool) Hints() Hints {
	return Hints{ReadOnly: true}
}

func (t *SessionListTool) Execute(ctx context.Context, args map[string]any) (any, error) {
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

	return t.client.Do(ctx, http.MethodGet, "/api/v2/sessions", nil, query), nil
}

// SessionGetTool fetches a session by ID.
type SessionGetTool struct {
	client cloud.Doer
}

// NewSessionGetTool creates a new session fetch tool.
func NewSessionGetTool(client cloud.Doer) *SessionGetTool {
	return &SessionGetTool{client: client}
}

func (t *SessionGetTool) Name() string {
	return "bu_session_get"
}

func (t *SessionGetTool) Description() string {
	return "Get Browser Use Cloud agent session details by session ID, including its tasks."
}

func (t *SessionGetTool) Schema() map[string]interface{} {
	return BaseToolSchema(map[string]interface{}{
		"session_id": stringProp("Session ID returned by bu_session_create or bu_task_create"),
	}, []string{"session_id"})
}

func (t *SessionGetTool) Hints() Hints {
	return Hints{ReadOnly: true}
}

func (t *SessionGetTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	sessionID, err := requiredSessionID(args)
	if err != nil {
		return nil, err
	}
	return t.client.Do(ctx, http.MethodGet, "/api/v2/sessions/"+sessionID, nil, nil), nil
}

// SessionUpdateTool applies a state transition to a session.
type SessionUpdateTool struct {
	client cloud.Doer
}

// NewSessionUpdateTool creates a new session update tool.
func NewSessionUpdateTool(client cloud.Doer) *SessionUpdateTool {
	return &SessionUpdateTool{client: client}
}

func (t *SessionUpdateTool) Name() string {
	return "bu_session_update"
}

func (t *SessionUpdateTool) Description() string {
	return "Stop a Browser Use Cloud agent session and every task running in it."
}

func (t *SessionUpdateTool) Schema() map[string]interface{} {
	return BaseToolSchema(map[string]interface{}{
		"session_id": stringProp("Session ID returned by bu_session_create or bu_task_create"),
		"action":     enumProp("State transition to apply (default stop)", cloud.SessionActions),
	}, []string{"session_id"})
}

func (t *SessionUpdateTool) Hints() Hints {
	return Hints{}
}

func (t *SessionUpdateTool) Execute(ctx context.Context, args map[string]any) (any, error) {
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
	return t.client.Do(ctx, http.MethodPatch, "/api/v2/sessions/"+sessionID, body, nil), nil
}

// SessionDeleteTool deletes a session.
type SessionDeleteTool struct {
	client cloud.Doer
}

// NewSessionDeleteTool creates a new session delete tool.
func NewSessionDeleteTool(client cloud.Doer) *SessionDeleteTool {
	return &SessionDeleteTool{client: client}
}

func (t *SessionDeleteTool) Name() string {
	return "bu_session_delete"
}

func (t *SessionDeleteTool) Description() string {
	return "Permanently delete a Browser Use Cloud agent session and its history."
}

func (t *SessionDeleteTool) Schema() map[string]interface{} {
	return BaseToolSchema(map[string]interface{}{
		"session_id": stringProp("Session ID to delete"),
	}, []string{"session_id"})
}

func (t *SessionDeleteTool) Hints() Hints {
	return Hints{Destructive: true}
}

func (t *SessionDeleteTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	sessionID, err := requiredSessionID(args)
	if err != nil {
		return nil, err
	}
	return t.client.Do(ctx, http.MethodDelete, "/api/v2/sessions/"+sessionID, nil, nil), nil
}

// SessionShareCreateTool creates a public share link for a session.
type SessionShareCreateTool struct {
	client cloud.Doer
}

// NewSessionShareCreateTool creates a new share link creation tool.
func NewSessionShareCreateTool(client cloud.Doer) *SessionShareCreateTool {
	return &SessionShareCreateTool{client: client}
}

func (t *SessionShareCreateTool) Name() string {
	return "bu_session_public_share_create"
}

func (t *SessionShareCreateTool) Description() string {
	return "Create a public share link for a Browser Use Cloud session so its live view can be watched without credentials."
}

func (t *SessionShareCreateTool) Schema() map[string]interface{} {
	return BaseToolSchema(map[string]interface{}{
		"session_id": stringProp("Session ID to share"),
	}, []string{"session_id"})
}

func (t *SessionShareCreateTool) Hints() Hints {
	return Hints{}
}

func (t *SessionShareCreateTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	sessionID, err := requiredSessionID(args)
	if err != nil {
		return nil, err
	}
	return t.client.Do(ctx, http.MethodPost, "/api/v2/sessions/"+sessionID+"/public-share", nil, nil), nil
}

// SessionShareGetTool fetches the public share link of a session.
type SessionShareGetTool struct {
	client cloud.Doer
}

// NewSessionShareGetTool creates a new share link fetch tool.
func NewSessionShareGetTool(client cloud.Doer) *SessionShareGetTool {
	return &SessionShareGetTool{client: client}
}

func (t *SessionShareGetTool) Name() string {
	return "bu_session_public_share_get"
}

func (t *SessionShareGetTool) Description() string {
	return "Get the public share URL of a Browser Use Cloud session, if one exists."
}

func (t *SessionShareGetTool) Schema() map[string]interface{} {
	return BaseToolSchema(map[string]interface{}{
		"session_id": stringProp("Session ID whose share link to fetch"),
	}, []string{"session_id"})
}

func (t *SessionShareGetTool) Hints() Hints {
	return Hints{ReadOnly: true}
}

func (t *SessionShareGetTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	sessionID, err := requiredSessionID(args)
	if err != nil {
		return nil, err
	}
	return t.client.Do(ctx, http.MethodGet, "/api/v2/sessions/"+sessionID+"/public-share", nil, nil), nil
}

// SessionShareDeleteTool revokes the public share link of a session.
type SessionShareDeleteTool struct {
	client cloud.Doer
}

// NewSessionShareDeleteTool creates a new share link revocation tool.
func NewSessionShareDeleteTool(client cloud.Doer) *SessionShareDeleteTool {
	return &SessionShareDeleteTool{client: client}
}

func (t *SessionShareDeleteTool) Name() string {
	return "bu_session_public_share_delete"
}

func (t *SessionShareDeleteTool) Description() string {
	return "Revoke the public share URL of a Browser Use Cloud session."
}

func (t *SessionShareDeleteTool) Schema() map[string]interface{} {
	return BaseToolSchema(map[string]interface{}{
		"session_id": stringProp("Session ID whose share link to revoke"),
	}, []string{"session_id"})
}

func (t *SessionShareDeleteTool) Hints() Hints {
	return Hints{Destructive: true}
}

func (t *SessionShareDeleteTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	sessionID, err := requiredSessionID(args)
	if err != nil {
		return nil, err
	}
	return t.client.Do(ctx, http.MethodDelete, "/api/v2/sessions/"+sessionID+"/public-share", nil, nil), nil
}

// requiredSessionID decodes and validates the single session_id argument
// shared by several session tools.
func requiredSessionID(args map[string]any) (string, error) {
	var input struct {
		SessionID string `json:"session_id"`
	}
	if err := decodeArgs(args, &input); err != nil {
		return "", err
	}
	return cloud.NonEmpty("session_id", input.SessionID)
}
