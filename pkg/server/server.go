// Package server assembles the browsercloud MCP server: it builds the
// shared cloud client, registers every tool, and runs the chosen
// transport. The server is stateless by construction; nothing survives
// between tool calls except the process itself.
package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/entrhq/browsercloud/pkg/cloud"
	"github.com/entrhq/browsercloud/pkg/config"
	"github.com/entrhq/browsercloud/pkg/logging"
	"github.com/entrhq/browsercloud/pkg/tools/cloudtools"
)

const (
	// Name identifies this server in the MCP handshake.
	Name = "browsercloud"

	// Version is reported to clients during initialization.
	Version = "1.0.0"
)

// instructions is served to clients during initialization. It spells out
// the stateless correlation contract so calling agents carry IDs instead
// of expecting server-side memory.
const instructions = `Browser Use Cloud wrapper. Every operation routes to the
Browser Use API v2; nothing runs locally.

Use it for:
- Account billing and credit visibility
- Task orchestration (create/get/stop/wait/run)
- Agent sessions and public share links
- Remote browser sessions (CDP)
- Presigned upload URLs for session and browser files
- Profile management

Recommended flow:
1. Create or reuse a session/profile.
2. Persist every returned ID (session_id, task_id, optional cdp_url).
3. Create a task with an explicit prompt and optional guardrails.
4. Poll with bu_task_wait, or use bu_task_run for one-shot execution.
5. Fetch log and output-file URLs when needed.

This server is stateless: pass IDs explicitly in follow-up calls and do
not assume any memory across requests.`

// New builds a fully registered MCP server from configuration. It fails
// when the API key is missing, since no tool could authenticate upstream.
func New(cfg *config.Config) (*mcpserver.MCPServer, error) {
	client, err := cloud.NewClient(cfg.APIKey,
		cloud.WithBaseURL(cfg.BaseURL),
		cloud.WithTimeout(cfg.RequestTimeout),
	)
	if err != nil {
		return nil, err
	}
	return NewWithClient(client), nil
}

// NewWithClient builds the server around an existing cloud client. Tests
// use this to substitute a fake Doer.
func NewWithClient(client cloud.Doer) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer(Name, Version,
		mcpserver.WithInstructions(instructions),
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
	)
	Register(s, cloudtools.All(client)...)
	return s
}

// Register adds tools to an MCP server, bridging the cloudtools interface
// onto protocol-level tool definitions.
func Register(s *mcpserver.MCPServer, tools ...cloudtools.Tool) {
	log, _ := logging.NewLogger("server")
	for _, tool := range tools {
		s.AddTool(toProtocolTool(tool), toolHandler(tool, log))
	}
}

// toProtocolTool converts a cloudtools.Tool definition into an MCP tool.
// Schemas are already plain JSON-schema maps, so they are passed through
// raw rather than rebuilt option by option.
func toProtocolTool(tool cloudtools.Tool) mcp.Tool {
	schema, err := json.Marshal(tool.Schema())
	if err != nil {
		// Schemas are static literals; a marshal failure is a programming
		// error, not a runtime condition.
		panic(fmt.Sprintf("tool %s schema does not marshal: %v", tool.Name(), err))
	}

	protoTool := mcp.NewToolWithRawSchema(tool.Name(), tool.Description(), schema)

	hints := tool.Hints()
	protoTool.Annotations = mcp.ToolAnnotation{
		ReadOnlyHint:    mcp.ToBoolPtr(hints.ReadOnly),
		DestructiveHint: mcp.ToBoolPtr(hints.Destructive),
		IdempotentHint:  mcp.ToBoolPtr(hints.Idempotent),
	}
	return protoTool
}

// toolHandler wraps a tool's Execute in the MCP call signature. Argument
// errors become protocol-level tool errors; upstream failures are already
// encoded inside the result payload.
func toolHandler(tool cloudtools.Tool, log *logging.Logger) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := tool.Execute(ctx, req.GetArguments())
		if err != nil {
			log.Warnf("%s rejected arguments: %v", tool.Name(), err)
			return mcp.NewToolResultError(err.Error()), nil
		}

		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Errorf("%s result does not marshal: %v", tool.Name(), err)
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}

// ServeStdio runs the server on stdin/stdout until the client disconnects.
func ServeStdio(s *mcpserver.MCPServer) error {
	return mcpserver.ServeStdio(s)
}

// ServeHTTP runs the stateless streamable-HTTP transport on addr. The
// MCP endpoint is /mcp.
func ServeHTTP(s *mcpserver.MCPServer, addr string) error {
	httpServer := mcpserver.NewStreamableHTTPServer(s, mcpserver.WithStateLess(true))
	return httpServer.Start(addr)
}
