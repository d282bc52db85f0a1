package cloudtools

import "context"

// PingResult is the response of the smoke ping tool.
type PingResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// SmokePingTool answers without touching the upstream API. It exists so
// clients can verify the MCP handshake and tool dispatch independently of
// Browser Use Cloud availability.
type SmokePingTool struct{}

// NewSmokePingTool creates a new smoke ping tool.
func NewSmokePingTool() *SmokePingTool {
	return &SmokePingTool{}
}

func (t *SmokePingTool) Name() string {
	return "smoke_ping"
}

func (t *SmokePingTool) Description() string {
	return "Smoke test ping. Returns immediately without contacting Browser Use Cloud."
}

func (t *SmokePingTool) Schema() map[string]interface{} {
	return BaseToolSchema(map[string]interface{}{
		"message": stringProp("Message to echo back (default \"pong\")"),
	}, nil)
}

func (t *SmokePingTool) Hints() Hints {
	return Hints{ReadOnly: true, Idempotent: true}
}

func (t *SmokePingTool) Execute(_ context.Context, args map[string]any) (any, error) {
	input := struct {
		Message string `json:"message"`
	}{Message: "pong"}
	if err := decodeArgs(args, &input); err != nil {
		return nil, err
	}
	return PingResult{OK: true, Message: input.Message}, nil
}
