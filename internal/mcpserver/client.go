package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

// Client calls the control tools of a running desktop.
type Client struct {
	endpoint string
	client   *client.Client
}

// Dial connects to the SSE endpoint of a running server and performs the
// MCP handshake.
func Dial(ctx context.Context, endpoint, version string) (*Client, error) {
	sseClient, err := client.NewSSEMCPClient(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSE client: %w", err)
	}
	if err := sseClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", endpoint, err)
	}

	req := mcp.InitializeRequest{}
	req.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	req.Params.ClientInfo = mcp.Implementation{Name: "marios-ctl", Version: version}
	if _, err := sseClient.Initialize(ctx, req); err != nil {
		_ = sseClient.Close()
		return nil, fmt.Errorf("initialization failed: %w", err)
	}
	return &Client{endpoint: endpoint, client: sseClient}, nil
}

// ListTools returns the names of the tools the server offers.
func (c *Client) ListTools(ctx context.Context) ([]string, error) {
	result, err := c.client.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}
	return names, nil
}

// Call invokes a tool and returns its text output. A tool-level failure is
// returned as an error.
func (c *Client) Call(ctx context.Context, name string, args map[string]interface{}) (string, error) {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	result, err := c.client.CallTool(ctx, req)
	if err != nil {
		return "", err
	}
	text := ResultText(result)
	if result.IsError {
		return "", fmt.Errorf("%s: %s", name, text)
	}
	return text, nil
}

// Close ends the session.
func (c *Client) Close() error {
	return c.client.Close()
}

// ResultText joins the text content of a tool result.
func ResultText(result *mcp.CallToolResult) string {
	var parts []string
	for _, content := range result.Content {
		if text, ok := content.(mcp.TextContent); ok {
			parts = append(parts, text.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// ParseArgs turns key=value pairs into tool arguments. Values that look
// like integers are sent as numbers.
func ParseArgs(pairs []string) (map[string]interface{}, error) {
	args := make(map[string]interface{}, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid argument %q, expected key=value", pair)
		}
		var n int
		if _, err := fmt.Sscanf(value, "%d", &n); err == nil && fmt.Sprint(n) == value {
			args[key] = n
			continue
		}
		args[key] = value
	}
	return args, nil
}
