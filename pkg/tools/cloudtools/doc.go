// Package cloudtools exposes the Browser Use Cloud API v2 as MCP tools.
//
// Every tool is a thin adapter over one REST operation: it validates its
// arguments, shapes the request body or query string, dispatches through
// the shared cloud client, and returns the upstream JSON unchanged. The
// server holds no state between calls.
//
// # Stateless correlation contract
//
// Because nothing is remembered server-side, tools that create upstream
// resources return durable correlation IDs at the top level of their
// result:
//
//   - bu_task_create / bu_task_run return task_id and session_id
//   - bu_session_create returns session_id
//   - bu_browser_session_create returns session_id and cdp_url
//
// Calling agents must persist these IDs and pass them explicitly to every
// follow-up call. The tool descriptions repeat this contract so models
// discover it without out-of-band documentation.
//
// # Tool groups
//
//   - billing: account credit visibility
//   - tasks: create/get/list/update plus wait and run polling helpers
//   - sessions: agent session lifecycle and public share links
//   - browsers: remote browser (CDP) session lifecycle
//   - files: presigned upload URL generation
//   - profiles: reusable browser profile management
//   - smoke: a ping that never touches the upstream API
//
// # Error handling
//
// Argument validation failures are reported as tool errors before any
// request is made. Upstream failures (non-2xx, transport errors) come back
// as normal results with success=false, a status code when one exists, and
// the upstream error message, matching what the API itself defines.
package cloudtools
