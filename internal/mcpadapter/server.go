package mcpadapter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"murmur/internal/protocol"
)

// protocolVersion and serverInfo answer "initialize", matching the
// shape integrations/codex/mcp-server/src/main.rs reports.
const (
	mcpProtocolVersion = "2025-11-25"
	mcpServerName      = "murmur-mcp"
)

// ServerVersion is reported in "initialize" responses. cmd/mcp.go sets
// it to the CLI's build Version before serving.
var ServerVersion = "dev"

// toolDefinitions is the static "tools/list" payload: one entry per
// MCP tool this adapter exposes, each forwarding to a daemon method.
var toolDefinitions = []toolDefinition{
	{
		Name:        "murmur_complete",
		Description: "Get AI-powered shell command completions from the Murmur daemon. Suggests completions for partial shell commands using context from history, git state, and project type.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"input": {"type": "string", "description": "Partial command to complete (e.g., 'git co', 'docker r')"},
				"cwd": {"type": "string", "description": "Current working directory for context"},
				"shell": {"type": "string", "description": "Shell type: zsh, bash, or fish"}
			},
			"required": ["input", "cwd"]
		}`),
	},
	{
		Name:        "murmur_status",
		Description: "Get the current status of the Murmur daemon including active providers, cache size, voice engine status, and history count.",
		InputSchema: json.RawMessage(`{"type": "object", "additionalProperties": false}`),
	},
	{
		Name:        "murmur_record_command",
		Description: "Record a command execution into Murmur's cross-tool command history. This helps Murmur provide better completions based on commands run from AI tools.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"command": {"type": "string", "description": "The shell command that was executed"},
				"cwd": {"type": "string", "description": "Directory where the command was run"},
				"exit_code": {"type": "integer", "description": "Exit code of the command (0 = success)"},
				"source": {"type": "string", "description": "The tool that ran the command (e.g., 'codex', 'claude-code')"}
			},
			"required": ["command", "cwd", "exit_code"]
		}`),
	},
	{
		Name:        "murmur_get_history",
		Description: "Get recent cross-tool command history from Murmur. Returns commands from all sources in reverse chronological order.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"cwd": {"type": "string", "description": "Filter history by working directory (optional)"},
				"limit": {"type": "integer", "description": "Maximum entries to return (default: 50)"}
			}
		}`),
	},
	{
		// Not present in the original implementation's MCP server, which
		// predates the voice layer. Added here since voice/process is an
		// in-scope daemon capability an MCP caller can equally invoke.
		Name:        "murmur_voice_process",
		Description: "Transcribe and restructure a captured audio clip through Murmur's voice engine.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"audio_data": {"type": "string", "description": "Base64-encoded WAV audio"},
				"mode": {"type": "string", "description": "command or natural"},
				"cwd": {"type": "string", "description": "Current working directory"},
				"shell": {"type": "string", "description": "Shell type: zsh, bash, or fish"}
			},
			"required": ["audio_data", "cwd"]
		}`),
	},
}

type toolDefinition struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
}

// mcpRequest is a single JSON-RPC request as received on stdin, per
// the MCP stdio transport.
type mcpRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
	ID      json.RawMessage `json:"id,omitempty"`
}

type mcpResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  interface{}     `json:"result,omitempty"`
	Error   *mcpError       `json:"error,omitempty"`
}

type mcpError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type toolCallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

type toolContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type toolCallResult struct {
	Content []toolContent `json:"content"`
	IsError bool          `json:"isError"`
}

// Server speaks the Model Context Protocol over stdio, forwarding each
// murmur_* tool call to the daemon over client. It mirrors
// integrations/codex/mcp-server/src/main.rs's method set exactly:
// initialize, notifications/initialized, tools/list, tools/call.
type Server struct {
	client *DaemonClient
}

func NewServer(client *DaemonClient) *Server {
	return &Server{client: client}
}

// Serve runs until r is exhausted, handling one JSON-RPC message per
// line, sequentially, matching the daemon's own per-connection
// ordering guarantee.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		var req mcpRequest
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			writeMCPResponse(w, mcpResponse{JSONRPC: "2.0", ID: json.RawMessage("null"), Error: &mcpError{Code: protocol.CodeParseError, Message: "Parse error"}})
			continue
		}

		resp, hasResponse := s.handleMessage(ctx, req)
		if hasResponse {
			writeMCPResponse(w, resp)
		}
	}
	return scanner.Err()
}

// handleMessage dispatches a single MCP request. The second return
// value is false for notifications, which never produce a response.
func (s *Server) handleMessage(ctx context.Context, req mcpRequest) (mcpResponse, bool) {
	switch req.Method {
	case "initialize":
		result := map[string]interface{}{
			"protocolVersion": mcpProtocolVersion,
			"capabilities":    map[string]interface{}{"tools": map[string]interface{}{"listChanged": false}},
			"serverInfo":      map[string]interface{}{"name": mcpServerName, "version": ServerVersion},
		}
		return mcpResponse{JSONRPC: "2.0", ID: req.ID, Result: result}, true

	case "notifications/initialized":
		return mcpResponse{}, false

	case "tools/list":
		return mcpResponse{JSONRPC: "2.0", ID: req.ID, Result: map[string]interface{}{"tools": toolDefinitions}}, true

	case "tools/call":
		var params toolCallParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return mcpResponse{JSONRPC: "2.0", ID: req.ID, Result: toolErrorResult("malformed tool call: " + err.Error())}, true
		}
		return mcpResponse{JSONRPC: "2.0", ID: req.ID, Result: s.callTool(ctx, params.Name, params.Arguments)}, true

	default:
		if req.ID == nil {
			// Unknown notification: ignore.
			return mcpResponse{}, false
		}
		return mcpResponse{JSONRPC: "2.0", ID: req.ID, Error: &mcpError{Code: protocol.CodeMethodNotFound, Message: "Method not found"}}, true
	}
}

// callTool forwards a single murmur_* tool invocation to the daemon
// and wraps the result (or failure) in the MCP tool-call content shape.
func (s *Server) callTool(ctx context.Context, name string, rawArgs json.RawMessage) toolCallResult {
	var args map[string]json.RawMessage
	if len(rawArgs) > 0 {
		_ = json.Unmarshal(rawArgs, &args)
	}

	method, daemonParams, err := buildDaemonCall(name, args)
	if err != nil {
		return toolErrorResult(err.Error())
	}

	callCtx, cancel := context.WithTimeout(ctx, defaultCallTimeout)
	defer cancel()

	result, err := s.client.Call(callCtx, method, daemonParams)
	if err != nil {
		log.Printf("[mcpadapter] %s: %v", name, err)
		return toolErrorResult("Failed to connect to Murmur daemon: " + err.Error())
	}

	pretty, err := json.MarshalIndent(json.RawMessage(result), "", "  ")
	if err != nil {
		pretty = result
	}
	return toolCallResult{Content: []toolContent{{Type: "text", Text: string(pretty)}}, IsError: false}
}

// buildDaemonCall translates a tool name + its raw MCP arguments into
// the daemon method and params it maps to, per
// integrations/codex/mcp-server/src/main.rs's handle_tool_call.
func buildDaemonCall(name string, args map[string]json.RawMessage) (string, interface{}, error) {
	switch name {
	case "murmur_complete":
		input := stringArg(args, "input")
		params := protocol.CompletionRequest{
			Input:     input,
			CursorPos: uint(len(input)),
			Cwd:       stringArgDefault(args, "cwd", "."),
			Shell:     stringArg(args, "shell"),
		}
		return protocol.MethodComplete, params, nil

	case "murmur_status":
		return protocol.MethodStatus, struct{}{}, nil

	case "murmur_record_command":
		params := protocol.ContextUpdateRequest{
			Command:  stringArg(args, "command"),
			Cwd:      stringArgDefault(args, "cwd", "."),
			Source:   stringArgDefault(args, "source", "mcp"),
			ExitCode: intArg(args, "exit_code"),
		}
		return protocol.MethodContextUpdate, params, nil

	case "murmur_get_history":
		limit := uint(intArg(args, "limit"))
		if limit == 0 {
			limit = protocol.DefaultHistoryListLimit
		}
		params := protocol.HistoryListRequest{Cwd: stringArg(args, "cwd"), Limit: limit}
		return protocol.MethodHistoryList, params, nil

	case "murmur_voice_process":
		params := protocol.VoiceProcessRequest{
			AudioData: stringArg(args, "audio_data"),
			Mode:      protocol.VoiceMode(stringArgDefault(args, "mode", string(protocol.VoiceModeCommand))),
			Cwd:       stringArgDefault(args, "cwd", "."),
			Shell:     stringArg(args, "shell"),
		}
		return protocol.MethodVoiceProcess, params, nil

	default:
		return "", nil, fmt.Errorf("unknown tool: %s", name)
	}
}

func stringArg(args map[string]json.RawMessage, key string) string {
	return stringArgDefault(args, key, "")
}

func stringArgDefault(args map[string]json.RawMessage, key, def string) string {
	raw, ok := args[key]
	if !ok {
		return def
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	return v
}

func intArg(args map[string]json.RawMessage, key string) int {
	raw, ok := args[key]
	if !ok {
		return 0
	}
	var v int
	_ = json.Unmarshal(raw, &v)
	return v
}

func toolErrorResult(message string) toolCallResult {
	return toolCallResult{Content: []toolContent{{Type: "text", Text: message}}, IsError: true}
}

func writeMCPResponse(w io.Writer, resp mcpResponse) {
	if resp.JSONRPC == "" {
		return
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}
	w.Write(append(payload, '\n'))
}
