// Package testserver boots a fully wired, seeded server for tests: an
// in-memory store, the MCP server on an in-memory client connection and the
// HTTP router on an httptest server.
package testserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ganot/builderp/internal/app"
	"github.com/ganot/builderp/internal/httpapi"
	"github.com/ganot/builderp/internal/mcp"
	"github.com/gin-gonic/gin"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

type TestServer struct {
	App    *app.App
	Client *sdkmcp.ClientSession
	HTTP   *httptest.Server
}

func New(t *testing.T) *TestServer {
	t.Helper()
	ctx := context.Background()

	a, err := app.Open(ctx, app.Options{DBPath: ":memory:", Seed: true})
	require.NoError(t, err)

	server := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Projects:  a.Projects,
			Invoices:  a.Invoices,
			Dashboard: a.Dashboard,
			Sessions:  a.Sessions,
		},
	})

	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "testclient", Version: "v0.0.1"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(func(*http.Request) *sdkmcp.Server { return server }, nil)
	router := httpapi.NewRouter(httpapi.Services{
		Projects:  a.Projects,
		Invoices:  a.Invoices,
		Dashboard: a.Dashboard,
		Sessions:  a.Sessions,
	}, httpapi.Options{MCP: mcpHandler})
	httpServer := httptest.NewServer(router)

	t.Cleanup(func() {
		httpServer.Close()
		_ = clientSession.Close()
		_ = serverSession.Wait()
		_ = a.Close()
	})

	return &TestServer{App: a, Client: clientSession, HTTP: httpServer}
}

// CallTool invokes a tool and decodes its JSON text result into out, which
// may be nil. The raw result is returned for error assertions.
func (ts *TestServer) CallTool(t *testing.T, name string, args map[string]any, out any) *sdkmcp.CallToolResult {
	t.Helper()
	return CallTool(t, ts.Client, name, args, out)
}

// ConnectHTTP opens a second client session through the streamable HTTP
// endpoint mounted at /mcp.
func (ts *TestServer) ConnectHTTP(t *testing.T) *sdkmcp.ClientSession {
	t.Helper()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "httpclient", Version: "v0.0.1"}, nil)
	session, err := client.Connect(context.Background(), &sdkmcp.StreamableClientTransport{Endpoint: ts.HTTP.URL + "/mcp"}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

// CallTool is TestServer.CallTool for any client session.
func CallTool(t *testing.T, session *sdkmcp.ClientSession, name string, args map[string]any, out any) *sdkmcp.CallToolResult {
	t.Helper()

	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	if res.IsError || out == nil {
		return res
	}

	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	require.NoError(t, json.Unmarshal([]byte(text.Text), out), text.Text)
	return res
}

// ErrorText returns the text of a failed tool call.
func ErrorText(t *testing.T, res *sdkmcp.CallToolResult) string {
	t.Helper()
	require.True(t, res.IsError, "expected tool error")
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok)
	return text.Text
}
