package cloudtools

import (
	"context"
	"net/http"

	"github.com/entrhq/browsercloud/pkg/cloud"
)

// ProfileCreateTool creates a reusable browser profile.
type ProfileCreateTool struct {
	client cloud.Doer
}

// NewProfileCreateTool creates a new profile creation tool.
func NewProfileCreateTool(client cloud.Doer) *ProfileCreateTool {
	return &ProfileCreateTool{client: client}
}

func (t *ProfileCreateTool) Name() string {
	return "bu_profile_create"
}

func (t *ProfileCreateTool) Description() string {
	return "Create a Browser Use Cloud profile. Profiles persist cookies and storage across sessions and are referenced by profile_id."
}

func (t *ProfileCreateTool) Schema() map[string]interface{} {
	return BaseToolSchema(map[string]interface{}{
		"name": stringProp("Optional display name for the profile"),
	}, nil)
}

func (t *ProfileCreateTool) Hints() Hints {
	return Hints{}
}

func (t *ProfileCreateTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	var input struct {
		Name string `json:"name"`
	}
	if err := decodeArgs(args, &input); err != nil {
		return nil, err
	}

	payload := map[string]any{}
	if name := cloud.MaybeStripped(input.Name); name != "" {
		payload["name"] = name
	}
	return t.client.Do(ctx, http.MethodPost, "/api/v2/profiles", payload, nil), nil
}

// ProfileListTool lists profiles.
type ProfileListTool struct {
	client cloud.Doer
}

// NewProfileListTool creates a new profile list tool.
func NewProfileListTool(client cloud.Doer) *ProfileListTool {
	return &ProfileListTool{client: client}
}

func (t *ProfileListTool) Name() string {
	return "bu_profile_list"
}

func (t *ProfileListTool) Description() string {
	return "List Browser Use Cloud profiles with pagination."
}

func (t *ProfileListTool) Schema() map[string]interface{} {
	return BaseToolSchema(map[string]interface{}{
		"page_size":   intProp("Results per page, 1-100 (default 10)"),
		"page_number": intProp("Page number starting at 1 (default 1)"),
	}, nil)
}

func (t *ProfileListTool) Hints() Hints {
	return Hints{ReadOnly: true}
}

func (t *ProfileListTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	input := struct {
		PageSize   int `json:"page_size"`
		PageNumber int `json:"page_number"`
	}{PageSize: 10, PageNumber: 1}
	if err := decodeArgs(args, &input); err != nil {
		return nil, err
	}

	query, err := paginationQuery(input.PageSize, input.PageNumber)
	if err != nil {
		return nil, err
	}
	return t.client.Do(ctx, http.MethodGet, "/api/v2/profiles", nil, query), nil
}

// ProfileGetTool fetches a profile by ID.
type ProfileGetTool struct {
	client cloud.Doer
}

// NewProfileGetTool creates a new profile fetch tool.
func NewProfileGetTool(client cloud.Doer) *ProfileGetTool {
	return &ProfileGetTool{client: client}
}

func (t *ProfileGetTool) Name() string {
	return "bu_profile_get"
}

func (t *ProfileGetTool) Description() string {
	return "Get Browser Use Cloud profile details by profile ID."
}

func (t *ProfileGetTool) Schema() map[string]interface{} {
	return BaseToolSchema(map[string]interface{}{
		"profile_id": stringProp("Profile ID returned by bu_profile_create"),
	}, []string{"profile_id"})
}

func (t *ProfileGetTool) Hints() Hints {
	return Hints{ReadOnly: true}
}

func (t *ProfileGetTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	profileID, err := requiredProfileID(args)
	if err != nil {
		return nil, err
	}
	return t.client.Do(ctx, http.MethodGet, "/api/v2/profiles/"+profileID, nil, nil), nil
}

// ProfileUpdateTool updates profile fields.
type ProfileUpdateTool struct {
	client cloud.Doer
}

// NewProfileUpdateTool creates a new profile update tool.
func NewProfileUpdateTool(client cloud.Doer) *ProfileUpdateTool {
	return &ProfileUpdateTool{client: client}
}

func (t *ProfileUpdateTool) Name() string {
	return "bu_profile_update"
}

func (t *ProfileUpdateTool) Description() string {
	return "Update a Browser Use Cloud profile's fields."
}

func (t *ProfileUpdateTool) Schema() map[string]interface{} {
	return BaseToolSchema(map[string]interface{}{
		"profile_id": stringProp("Profile ID returned by bu_profile_create"),
		"name":       stringProp("New display name for the profile"),
	}, []string{"profile_id"})
}

func (t *ProfileUpdateTool) Hints() Hints {
	return Hints{}
}

func (t *ProfileUpdateTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	var input struct {
		ProfileID string `json:"profile_id"`
		Name      string `json:"name"`
	}
	if err := decodeArgs(args, &input); err != nil {
		return nil, err
	}
	profileID, err := cloud.NonEmpty("profile_id", input.ProfileID)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{}
	if name := cloud.MaybeStripped(input.Name); name != "" {
		payload["name"] = name
	}
	return t.client.Do(ctx, http.MethodPatch, "/api/v2/profiles/"+profileID, payload, nil), nil
}

// ProfileDeleteTool deletes a profile.
type ProfileDeleteTool struct {
	client cloud.Doer
}

// NewProfileDeleteTool creates a new profile delete tool.
func NewProfileDeleteTool(client cloud.Doer) *ProfileDeleteTool {
	return &ProfileDeleteTool{client: client}
}

func (t *ProfileDeleteTool) Name() string {
	return "bu_profile_delete"
}

func (t *ProfileDeleteTool) Description() string {
	return "Permanently delete a Browser Use Cloud profile, including its stored cookies and storage."
}

func (t *ProfileDeleteTool) Schema() map[string]interface{} {
	return BaseToolSchema(map[string]interface{}{
		"profile_id": stringProp("Profile ID to delete"),
	}, []string{"profile_id"})
}

func (t *ProfileDeleteTool) Hints() Hints {
	return Hints{Destructive: true}
}

func (t *ProfileDeleteTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	profileID, err := requiredProfileID(args)
	if err != nil {
		return nil, err
	}
	return t.client.Do(ctx, http.MethodDelete, "/api/v2/profiles/"+profileID, nil, nil), nil
}

func requiredProfileID(args map[string]any) (string, error) {
	var input struct {
		ProfileID string `json:"profile_id"`
	}
	if err := decodeArgs(args, &input); err != nil {
		return "", err
	}
	return cloud.NonEmpty("profile_id", input.ProfileID)
}
