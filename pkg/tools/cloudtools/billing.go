package cloudtools

import (
	"context"
	"net/http"

	"github.com/entrhq/browsercloud/pkg/cloud"
)

// BillingAccountGetTool fetches account billing and credit balances.
type BillingAccountGetTool struct {
	client cloud.Doer
}

// NewBillingAccountGetTool creates a new billing account tool.
func NewBillingAccountGetTool(client cloud.Doer) *BillingAccountGetTool {
	return &BillingAccountGetTool{client: client}
}

func (t *BillingAccountGetTool) Name() string {
	return "bu_billing_account_get"
}

func (t *BillingAccountGetTool) Description() string {
	return "Get Browser Use Cloud account billing details and credit balances."
}

func (t *BillingAccountGetTool) Schema() map[string]interface{} {
	return BaseToolSchema(map[string]interface{}{}, nil)
}

func (t *BillingAccountGetTool) Hints() Hints {
	return Hints{ReadOnly: true, Idempotent: true}
}

func (t *BillingAccountGetTool) Execute(ctx context.Context, _ map[string]any) (any, error) {
	return t.client.Do(ctx, http.MethodGet, "/api/v2/billing/account", nil, nil), nil
}
