package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// trafficLoggingMiddleware traces every message at DEBUG. Inbound tool calls
// also get a one-line summary at INFO, raised to WARN when the tool failed or
// its result carries warnings.
func trafficLoggingMiddleware(logger *slog.Logger, direction string) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if logger == nil {
				return next(ctx, method, req)
			}

			attrs := []any{"direction", direction, "method", method, "session_id", safeSessionID(req), "actor", getActor(ctx)}
			tool := toolName(req)
			if tool != "" {
				attrs = append(attrs, "tool", tool)
			}

			trace := logger.Enabled(ctx, slog.LevelDebug)
			if trace {
				logger.DebugContext(ctx, "mcp traffic", withAttrs(attrs, "stage", "request", "params", formatPayload(safeParams(req)))...)
			}

			start := time.Now()
			result, err := next(ctx, method, req)

			if trace && !strings.HasPrefix(method, "notifications/") {
				resp := withAttrs(attrs, "stage", "response", "result", formatPayload(result))
				if err != nil {
					resp = append(resp, "error", err)
				}
				logger.DebugContext(ctx, "mcp traffic", resp...)
			}
			if tool != "" && direction == "inbound" {
				logToolCall(ctx, logger, withAttrs(attrs, "duration", time.Since(start)), result, err)
			}

			return result, err
		}
	}
}

func logToolCall(ctx context.Context, logger *slog.Logger, attrs []any, result sdkmcp.Result, err error) {
	res, _ := result.(*sdkmcp.CallToolResult)
	switch {
	case err != nil:
		logger.WarnContext(ctx, "tool call failed", append(attrs, "error", err)...)
	case res != nil && res.IsError:
		logger.WarnContext(ctx, "tool call rejected", append(attrs, "detail", resultText(res))...)
	default:
		if warnings := resultWarnings(res); len(warnings) > 0 {
			logger.WarnContext(ctx, "tool call completed with warnings", append(attrs, "warnings", warnings)...)
			return
		}
		logger.InfoContext(ctx, "tool call", attrs...)
	}
}

// withAttrs copies base so callers can extend it independently.
func withAttrs(base []any, extra ...any) []any {
	out := make([]any, 0, len(base)+len(extra)+2)
	out = append(out, base...)
	return append(out, extra...)
}

func toolName(req sdkmcp.Request) string {
	call, ok := req.(*sdkmcp.CallToolRequest)
	if !ok || call.Params == nil {
		return ""
	}
	return call.Params.Name
}

// resultWarnings reads the warnings field of a tool's structured output,
// set by record_invoice when the project is unknown.
func resultWarnings(res *sdkmcp.CallToolResult) []string {
	if res == nil || res.StructuredContent == nil {
		return nil
	}
	data, err := json.Marshal(res.StructuredContent)
	if err != nil {
		return nil
	}
	var out struct {
		Warnings []string `json:"warnings"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out.Warnings
}

func resultText(res *sdkmcp.CallToolResult) string {
	for _, c := range res.Content {
		if text, ok := c.(*sdkmcp.TextContent); ok {
			return text.Text
		}
	}
	return ""
}

func safeSessionID(req sdkmcp.Request) string {
	if req == nil {
		return ""
	}
	defer func() { recover() }()
	session := req.GetSession()
	if session == nil {
		return ""
	}
	defer func() { recover() }()
	return session.ID()
}

func safeParams(req sdkmcp.Request) any {
	if req == nil {
		return nil
	}
	defer func() { recover() }()
	return req.GetParams()
}

func formatPayload(payload any) string {
	if payload == nil {
		return "<nil>"
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%T", payload)
	}
	return string(data)
}
