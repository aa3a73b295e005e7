package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type contextKey string

const actorKey contextKey = "actor"

// actorMiddleware tags tool calls with the signed-in username for traffic
// logs. A missing session never blocks a call.
func actorMiddleware(sessions SessionService) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if sessions == nil || method != "tools/call" {
				return next(ctx, method, req)
			}

			if sess, err := sessions.Current(ctx); err == nil {
				ctx = context.WithValue(ctx, actorKey, sess.Username)
			}
			return next(ctx, method, req)
		}
	}
}

func getActor(ctx context.Context) string {
	actor, _ := ctx.Value(actorKey).(string)
	return actor
}
