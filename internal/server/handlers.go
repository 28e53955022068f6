package server

import (
	"context"
	"errors"
	"slices"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/winfind/internal/model"
	"github.com/mj1618/winfind/internal/output"
	"github.com/mj1618/winfind/internal/platform"
)

// ListResult is the list_windows payload.
type ListResult struct {
	Ordered bool           `yaml:"ordered"          json:"ordered"`
	Target  uint32         `yaml:"target,omitempty" json:"target,omitempty"`
	Windows []model.Window `yaml:"windows"          json:"windows"`
}

// WindowResult is the payload of the tools that return one window.
type WindowResult struct {
	Window   *model.Window `yaml:"window,omitempty"   json:"window,omitempty"`
	Detached bool          `yaml:"detached,omitempty" json:"detached,omitempty"`
}

func toolResult(v any) (*mcp.CallToolResult, error) {
	text, err := output.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleListWindows(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	ordered := boolParam(params, "ordered", false)

	s.mu.Lock()
	defer s.mu.Unlock()

	enumerated := s.locator.ListWindows()
	windows := enumerated
	if ordered {
		windows = s.locator.ListOrderedWindows()
	}

	result := ListResult{Ordered: ordered, Windows: make([]model.Window, len(windows))}
	target := s.locator.Target()
	if target != nil {
		result.Target = uint32(target.ID())
	}
	for i, w := range windows {
		rec := model.FromWindow(w, slices.Index(enumerated, w))
		rec.Target = w == target
		if ordered {
			rec = rec.WithProximity(s.locator.Proximity(w))
		}
		result.Windows[i] = rec
	}
	return toolResult(result)
}

func (s *Server) handleGetWindow(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	s.mu.Lock()
	defer s.mu.Unlock()

	if hasParam(params, "scene") {
		if hasParam(params, "index") || hasParam(params, "title") {
			return mcp.NewToolResultError("scene cannot be combined with index or title"), nil
		}
		id, err := idParam(params, "scene")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		scene, err := s.provider.Toolkit.Scene(platform.SceneID(id))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		w := s.locator.WindowOfScene(scene)
		if w == nil {
			return toolResult(WindowResult{Detached: true})
		}
		return toolResult(WindowResult{Window: s.record(w)})
	}

	w, err := s.selectWindow(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolResult(WindowResult{Window: s.record(w)})
}

func (s *Server) handleSetTarget(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	s.mu.Lock()
	defer s.mu.Unlock()

	if boolParam(params, "clear", false) {
		s.locator.SetTarget(nil)
		s.log.Debug("target cleared")
		return toolResult(WindowResult{})
	}

	var (
		w   platform.Window
		err error
	)
	if hasParam(params, "id") {
		if hasParam(params, "index") || hasParam(params, "title") {
			return mcp.NewToolResultError("id cannot be combined with index or title"), nil
		}
		var id uint32
		id, err = idParam(params, "id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		w, err = s.locator.WindowByID(platform.WindowID(id))
	} else {
		w, err = s.selectWindow(params)
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.locator.SetTarget(w)
	s.log.Debug("target set", "id", w.ID())
	return toolResult(WindowResult{Window: s.record(w)})
}

func (s *Server) handleGetTarget(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.locator.Target()
	if target == nil {
		return toolResult(WindowResult{})
	}
	return toolResult(WindowResult{Window: s.record(target)})
}

func (s *Server) handleFocusWindow(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.provider.WindowManager == nil {
		return mcp.NewToolResultError("focus not available with this backend"), nil
	}
	w, err := s.selectWindow(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.provider.WindowManager.Focus(w); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolResult(WindowResult{Window: s.record(w)})
}

// selectWindow resolves the index or title argument. Callers hold s.mu.
func (s *Server) selectWindow(params map[string]any) (platform.Window, error) {
	hasIndex := hasParam(params, "index")
	title := stringParam(params, "title", "")
	switch {
	case hasIndex && title != "":
		return nil, errors.New("specify only one of index or title")
	case hasIndex:
		index, err := intParam(params, "index", 0)
		if err != nil {
			return nil, err
		}
		return s.locator.WindowAt(index)
	case title != "":
		return s.locator.WindowByTitle(title)
	default:
		return nil, errors.New("specify index or title")
	}
}

// record builds the payload for w. Callers hold s.mu.
func (s *Server) record(w platform.Window) *model.Window {
	rec := model.FromWindow(w, s.locator.IndexOf(w))
	rec.Target = w == s.locator.Target()
	return &rec
}
