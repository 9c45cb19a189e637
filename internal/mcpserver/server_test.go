package mcpserver

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kindledhq/kindled/internal/noteservice"
	"github.com/kindledhq/kindled/internal/query"
	"github.com/kindledhq/kindled/internal/testutil"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	db, fts := testutil.TestStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := query.NewEngine(db, query.NewCapability(fts, logger), logger)
	return New(noteservice.NewService(db, engine))
}

// callTool invokes a tool handler directly; mcp-go doesn't expose a
// call-tool test helper.
func callTool(t *testing.T, srv *Server, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	var result *mcp.CallToolResult
	var err error

	switch name {
	case "search_notes":
		result, err = srv.searchNotes(ctx, req)
	case "read_note":
		result, err = srv.readNote(ctx, req)
	case "create_note":
		result, err = srv.createNote(ctx, req)
	case "list_notes":
		result, err = srv.listNotes(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}

	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestCreateAndReadNote(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "create_note", map[string]any{
		"title":     "Hope Renewed",
		"content":   "a word of hope",
		"edit_code": "secret123",
	})
	text := resultText(r)
	if !strings.HasPrefix(text, "created: ") {
		t.Fatalf("create result = %q", text)
	}
	name := strings.TrimPrefix(text, "created: ")

	r = callTool(t, srv, "read_note", map[string]any{"name": name})
	var note map[string]any
	if err := json.Unmarshal([]byte(resultText(r)), &note); err != nil {
		t.Fatalf("read result not JSON: %v", err)
	}
	if note["title"] != "Hope Renewed" || note["type"] != "general" {
		t.Errorf("note = %v", note)
	}
}

func TestCreateNoteRejectsShortEditCode(t *testing.T) {
	srv := testServer(t)
	r := callTool(t, srv, "create_note", map[string]any{
		"title":     "Hope",
		"content":   "body",
		"edit_code": "abc",
	})
	if !r.IsError {
		t.Error("expected validation error for short edit code")
	}
}

func TestSearchNotes(t *testing.T) {
	srv := testServer(t)
	_ = callTool(t, srv, "create_note", map[string]any{
		"title": "Daily Grace", "content": "gratitude journal", "edit_code": "secret123",
	})
	_ = callTool(t, srv, "create_note", map[string]any{
		"title": "Pray for Healing", "content": "please pray", "edit_code": "secret123",
		"type": "prayer_request",
	})

	r := callTool(t, srv, "search_notes", map[string]any{"query": "grace"})
	var env map[string]any
	if err := json.Unmarshal([]byte(resultText(r)), &env); err != nil {
		t.Fatalf("search result not JSON: %v", err)
	}
	meta := env["meta"].(map[string]any)
	if meta["total_count"].(float64) != 1 {
		t.Errorf("total_count = %v, want 1", meta["total_count"])
	}
}

func TestListNotesByType(t *testing.T) {
	srv := testServer(t)
	_ = callTool(t, srv, "create_note", map[string]any{
		"title": "General", "content": "x", "edit_code": "secret123",
	})
	_ = callTool(t, srv, "create_note", map[string]any{
		"title": "Request", "content": "y", "edit_code": "secret123", "type": "prayer_request",
	})

	r := callTool(t, srv, "list_notes", map[string]any{"type": "prayer_request"})
	var env map[string]any
	if err := json.Unmarshal([]byte(resultText(r)), &env); err != nil {
		t.Fatalf("list result not JSON: %v", err)
	}
	data := env["data"].([]any)
	if len(data) != 1 || data[0].(map[string]any)["title"] != "Request" {
		t.Errorf("data = %v", data)
	}
}

func TestReadNoteMissing(t *testing.T) {
	srv := testServer(t)
	r := callTool(t, srv, "read_note", map[string]any{"name": "no-such"})
	if !r.IsError {
		t.Error("expected error for missing note")
	}
}
