package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1broseidon/winroles/internal/config"
	"github.com/1broseidon/winroles/internal/interp"
	"github.com/1broseidon/winroles/internal/platform"
)

type fakeBackend struct {
	windows []platform.Window
	err     error
}

func (b *fakeBackend) Windows() ([]platform.Window, error) { return b.windows, b.err }
func (b *fakeBackend) SplitScreenCapable() bool            { return true }
func (b *fakeBackend) LayoutRightToLeft() bool             { return false }

func newTestServer(backend *fakeBackend) (*Server, *interp.Interpreter) {
	it := interp.New(backend, config.Default(), zerolog.Nop())
	return NewServer(it, backend), it
}

func TestGetWindowRolesEmpty(t *testing.T) {
	s, _ := newTestServer(&fakeBackend{})

	_, out, err := s.handleGetWindowRoles(context.Background(), nil, GetWindowRolesInput{})
	require.NoError(t, err)
	assert.Empty(t, out.Roles)
	assert.False(t, out.SplitScreenMode)
	assert.True(t, out.SplitScreenAvailable)
}

func TestGetWindowRolesAfterInterpretation(t *testing.T) {
	backend := &fakeBackend{windows: []platform.Window{{
		ID:     5,
		Kind:   platform.KindApplication,
		Bounds: platform.Rect{Width: 800, Height: 600},
	}}}
	s, it := newTestServer(backend)

	// Titleless windows commit without settling.
	it.Interpret(interp.Event{Kind: interp.EventWindowsChanged, Timestamp: time.Now()})

	_, out, err := s.handleGetWindowRoles(context.Background(), nil, GetWindowRolesInput{})
	require.NoError(t, err)
	require.Len(t, out.Roles, 1)
	assert.Equal(t, "primary", out.Roles[0].Role)
	assert.Equal(t, uint32(5), out.Roles[0].WindowID)
}

func TestListWindows(t *testing.T) {
	backend := &fakeBackend{windows: []platform.Window{{
		ID:        5,
		Kind:      platform.KindApplication,
		Title:     "Files",
		ClassName: "Nautilus",
		Bounds:    platform.Rect{X: 10, Y: 20, Width: 800, Height: 600},
	}}}
	s, _ := newTestServer(backend)

	_, out, err := s.handleListWindows(context.Background(), nil, ListWindowsInput{})
	require.NoError(t, err)
	require.Len(t, out.Windows, 1)
	assert.Equal(t, "application", out.Windows[0].Kind)
	assert.Equal(t, "Files", out.Windows[0].Title)
	assert.Equal(t, 10, out.Windows[0].X)
}

func TestListWindowsError(t *testing.T) {
	s, _ := newTestServer(&fakeBackend{err: errors.New("gone")})

	_, _, err := s.handleListWindows(context.Background(), nil, ListWindowsInput{})
	assert.Error(t, err)
}

func TestGetWindowTitleUnknown(t *testing.T) {
	s, _ := newTestServer(&fakeBackend{})

	_, out, err := s.handleGetWindowTitle(context.Background(), nil, GetWindowTitleInput{WindowID: 42})
	require.NoError(t, err)
	assert.False(t, out.Known)
	assert.Equal(t, "", out.Title)
}
