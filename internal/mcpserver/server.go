package mcpserver

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"marios/internal/config"
	"marios/pkg/logging"
)

const subsystem = "MCP"

// Server exposes the window manager as MCP tools over SSE.
type Server struct {
	cfg     config.MCPSettings
	exec    Executor
	version string

	mcpServer *server.MCPServer
	sseServer *server.SSEServer
	mu        sync.Mutex
}

// NewServer creates a server whose tools run on exec. Host and port default
// to config.DefaultMCPHost and config.DefaultMCPPort.
func NewServer(exec Executor, cfg config.MCPSettings, version string) *Server {
	if cfg.Host == "" {
		cfg.Host = config.DefaultMCPHost
	}
	if cfg.Port == 0 {
		cfg.Port = config.DefaultMCPPort
	}
	if version == "" {
		version = "dev"
	}

	s := &Server{cfg: cfg, exec: exec, version: version}
	s.mcpServer = server.NewMCPServer(
		"marios",
		version,
		server.WithToolCapabilities(true),
	)
	s.mcpServer.AddTools(s.Tools()...)
	return s
}

// Address returns the host:port the server listens on.
func (s *Server) Address() string {
	return fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
}

// Endpoint returns the SSE endpoint clients connect to.
func (s *Server) Endpoint() string {
	return Endpoint(s.cfg)
}

// Endpoint returns the SSE endpoint of a server started with cfg.
func Endpoint(cfg config.MCPSettings) string {
	host, port := cfg.Host, cfg.Port
	if host == "" {
		host = config.DefaultMCPHost
	}
	if port == 0 {
		port = config.DefaultMCPPort
	}
	return fmt.Sprintf("http://%s:%d/sse", host, port)
}

// Start begins serving in the background.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sseServer != nil {
		return fmt.Errorf("mcp server already started")
	}

	s.sseServer = server.NewSSEServer(
		s.mcpServer,
		server.WithBaseURL("http://"+s.Address()),
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
		server.WithKeepAlive(true),
		server.WithKeepAliveInterval(30*time.Second),
	)

	addr := s.Address()
	logging.Info(subsystem, "Starting MCP control server on %s", addr)
	sseServer := s.sseServer
	go func() {
		if err := sseServer.Start(addr); err != nil && err != http.ErrServerClosed {
			logging.Error(subsystem, err, "SSE server error")
		}
	}()
	return nil
}

// Stop shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	sseServer := s.sseServer
	s.sseServer = nil
	s.mu.Unlock()

	if sseServer == nil {
		return fmt.Errorf("mcp server not started")
	}
	logging.Info(subsystem, "Stopping MCP control server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return sseServer.Shutdown(shutdownCtx)
}
