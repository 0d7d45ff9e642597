// Package mcp exposes the window-role interpreter to MCP clients for
// inspection: current roles, the raw snapshot, and title lookups.
package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/winroles/internal/interp"
	"github.com/1broseidon/winroles/internal/platform"
)

const (
	ServerName    = "winroles"
	ServerVersion = "0.1.0"
)

// Server is the MCP server for window-role inspection.
type Server struct {
	mcpServer   *mcpsdk.Server
	interpreter *interp.Interpreter
	backend     platform.Backend
}

// NewServer creates an MCP server reading from the given interpreter
// and backend. The caller is responsible for feeding notifications to
// the interpreter.
func NewServer(interpreter *interp.Interpreter, backend platform.Backend) *Server {
	s := &Server{
		interpreter: interpreter,
		backend:     backend,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_window_roles",
		Description: "Get the committed window role assignments: which window currently plays the primary, secondary (split-screen), overlay and picture-in-picture role.",
	}, s.handleGetWindowRoles)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List the currently visible windows with their kind, title, class and geometry, in bottom-to-top stacking order.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_window_title",
		Description: "Look up the cached title for a window id. System window titles are withheld.",
	}, s.handleGetWindowTitle)
}

func (s *Server) handleGetWindowRoles(_ context.Context, _ *mcpsdk.CallToolRequest, _ GetWindowRolesInput) (*mcpsdk.CallToolResult, GetWindowRolesOutput, error) {
	roles := s.interpreter.Roles()

	out := GetWindowRolesOutput{
		SplitScreenMode:      s.interpreter.SplitScreenMode(),
		SplitScreenAvailable: s.interpreter.SplitScreenModeAvailable(),
	}

	add := func(name string, rw interp.RoleWindow) {
		if !rw.Present() {
			return
		}
		out.Roles = append(out.Roles, RoleInfo{
			Role:     name,
			WindowID: uint32(rw.ID),
			Title:    rw.Title,
		})
	}
	add("primary", roles.Primary)
	add("secondary", roles.Secondary)
	add("overlay", roles.Overlay)
	add("picture-in-picture", roles.PictureInPicture)

	return nil, out, nil
}

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	windows, err := s.backend.Windows()
	if err != nil {
		return nil, ListWindowsOutput{}, fmt.Errorf("failed to query windows: %w", err)
	}

	out := ListWindowsOutput{Windows: make([]WindowInfo, 0, len(windows))}
	for _, w := range windows {
		out.Windows = append(out.Windows, WindowInfo{
			ID:               uint32(w.ID),
			Kind:             w.Kind.String(),
			Title:            w.Title,
			ClassName:        w.ClassName,
			Active:           w.Active,
			PictureInPicture: w.PictureInPicture,
			X:                w.Bounds.X,
			Y:                w.Bounds.Y,
			Width:            w.Bounds.Width,
			Height:           w.Bounds.Height,
		})
	}

	return nil, out, nil
}

func (s *Server) handleGetWindowTitle(_ context.Context, _ *mcpsdk.CallToolRequest, args GetWindowTitleInput) (*mcpsdk.CallToolResult, GetWindowTitleOutput, error) {
	title := s.interpreter.WindowTitle(platform.WindowID(args.WindowID))
	return nil, GetWindowTitleOutput{
		WindowID: args.WindowID,
		Title:    title,
		Known:    title != "",
	}, nil
}
