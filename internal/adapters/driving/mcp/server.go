package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lenscout/lenscout-cli/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// instructions is sent to clients during initialisation.
const instructions = `lenscout answers two questions.
find_lenses lists catalog lenses of a brand whose focal range covers a focal
length, each with up to three example photo links.
exif_report counts the focal lengths, camera makes and camera models seen in
Flickr photos tagged with a keyword.
The catalog is filled by running "lenscout refresh"; an empty result may mean
it has not been refreshed yet.`

// shutdownTimeout bounds how long RunHTTP waits for open sessions.
const shutdownTimeout = 5 * time.Second

// Server exposes the lens catalog and EXIF reports over MCP.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer validates ports and registers every tool and resource.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{
		ports: ports,
		server: mcp.NewServer(
			&mcp.Implementation{Name: "lenscout", Version: Version},
			&mcp.ServerOptions{Instructions: instructions},
		),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run serves JSON-RPC over stdio until ctx is cancelled or the client
// disconnects. Logs go to stderr and never mix with the protocol stream.
func (s *Server) Run(ctx context.Context) error {
	logger.Debug("mcp server starting", "transport", "stdio", "exif", s.ports.Exif != nil)
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves the streamable HTTP transport on addr until ctx is cancelled.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("mcp http shutdown", "error", err)
		}
	}()

	logger.Debug("mcp server starting", "transport", "http", "addr", addr)
	if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
