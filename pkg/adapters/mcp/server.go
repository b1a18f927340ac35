package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/internal/dto"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NotebookResponse matches the HTTP adapter's render response so clients
// see one shape across transports.
type NotebookResponse struct {
	Notebook string `json:"notebook" jsonschema_description:"The rendered notebook text"`
}

// EquationResponse carries one rendered equation line.
type EquationResponse struct {
	Equation string `json:"equation" jsonschema_description:"The rendered equation line"`
}

// Server wraps the espalier Formatter and exposes it as an MCP Server.
type Server struct {
	formatter *espalier.Formatter
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(f *espalier.Formatter) *Server {
	s := &Server{
		formatter: f,
		mcpServer: server.NewMCPServer("espalier-mcp", strings.TrimSpace(espalier.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		// Create a timeout context for the graceful shutdown
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		fmt.Println("\nShutdown signal received, shutting down server...")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("CORS Middleware", "method", r.Method, "path", r.URL.Path)
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With, Baggage, Sentry-Trace")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: render_system
	renderTool := mcp.NewTool("render_system",
		mcp.WithDescription("Render the full Master Equation notebook for a kinetic model. The model is given inline as JSON or looked up in the catalog by id."),
		mcp.WithString("model_id", mcp.Description("Catalog id of the model to render (optional if model is provided)")),
		mcp.WithString("model", mcp.Description("JSON object with the model definition: name, species, sites, processes (optional if model_id is provided)")),
		mcp.WithString("order", mcp.Description("Mean-field truncation order; 0 or omitted renders the exact system")),
		mcp.WithOutputSchema[NotebookResponse](),
	)
	s.mcpServer.AddTool(renderTool, mcp.NewStructuredToolHandler(s.handleRenderSystem))

	// TOOL: render_equation
	equationTool := mcp.NewTool("render_equation",
		mcp.WithDescription("Render one Master Equation line from a wire-form record."),
		mcp.WithString("equation", mcp.Required(), mcp.Description("JSON object with target, creation, and decay; both sides must list the same rates, in clause order")),
		mcp.WithString("order", mcp.Description("Mean-field truncation order; 0 or omitted renders the exact form")),
		mcp.WithOutputSchema[EquationResponse](),
	)
	s.mcpServer.AddTool(equationTool, mcp.NewStructuredToolHandler(s.handleRenderEquation))

	// TOOL: list_models
	s.mcpServer.AddTool(mcp.NewTool("list_models",
		mcp.WithDescription("List the model ids available in the catalog."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ids, err := s.formatter.Models(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(ids)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

// Handler methods for structured tools

func (s *Server) handleRenderSystem(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (NotebookResponse, error) {
	model, err := s.resolveModel(ctx, args)
	if err != nil {
		return NotebookResponse{}, err
	}
	order, err := parseOrder(args)
	if err != nil {
		return NotebookResponse{}, err
	}

	notebook, err := s.formatter.RenderModel(model, order)
	if err != nil {
		return NotebookResponse{}, fmt.Errorf("render failed: %w", err)
	}

	return NotebookResponse{Notebook: notebook}, nil
}

func (s *Server) handleRenderEquation(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (EquationResponse, error) {
	payload, _ := args["equation"].(string)

	var wire dto.Equation
	if err := json.Unmarshal([]byte(payload), &wire); err != nil {
		return EquationResponse{}, fmt.Errorf("invalid equation: %w", err)
	}
	record, err := wire.ToDomain()
	if err != nil {
		return EquationResponse{}, fmt.Errorf("invalid equation: %w", err)
	}
	order, err := parseOrder(args)
	if err != nil {
		return EquationResponse{}, err
	}

	line, err := s.formatter.Equation(record, order)
	if err != nil {
		return EquationResponse{}, fmt.Errorf("render failed: %w", err)
	}

	return EquationResponse{Equation: line}, nil
}

func (s *Server) resolveModel(ctx context.Context, args map[string]interface{}) (domain.Model, error) {
	if modelStr, ok := args["model"].(string); ok && modelStr != "" {
		var model domain.Model
		if err := json.Unmarshal([]byte(modelStr), &model); err != nil {
			return domain.Model{}, fmt.Errorf("invalid model: %w", err)
		}
		return model, nil
	}
	if id, ok := args["model_id"].(string); ok && id != "" {
		model, err := s.formatter.Model(ctx, id)
		if err != nil {
			return domain.Model{}, fmt.Errorf("model lookup failed: %w", err)
		}
		return model, nil
	}
	return domain.Model{}, fmt.Errorf("either model or model_id is required")
}

func parseOrder(args map[string]interface{}) (int, error) {
	orderStr, ok := args["order"].(string)
	if !ok || orderStr == "" {
		return 0, nil
	}
	order, err := strconv.Atoi(orderStr)
	if err != nil {
		return 0, fmt.Errorf("invalid order %q: %w", orderStr, err)
	}
	return order, nil
}

func (s *Server) registerResources() {
	// EXPOSE: espalier://models
	s.mcpServer.AddResource(mcp.NewResource("espalier://models", "Available Kinetic Models",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		ids, err := s.formatter.Models(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list models: %w", err)
		}
		jsonBytes, _ := json.Marshal(ids)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "espalier://models",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
