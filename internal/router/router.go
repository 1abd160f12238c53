// Package router maps contact detail paths to routes and carries navigation
// requests through the Bubble Tea message loop.
package router

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// contactsPrefix is the path segment that addresses contact detail views.
const contactsPrefix = "/contacts/"

// ErrNoRoute indicates a path that no route matches.
var ErrNoRoute = errors.New("router: no route")

// NavigateMsg requests navigation to Path.
type NavigateMsg struct {
	Path string
}

// Route is a resolved navigation target.
type Route struct {
	ContactID string
}

// ContactPath returns the detail path for the contact with the given ID.
func ContactPath(id string) string {
	return contactsPrefix + url.PathEscape(id)
}

// Resolve parses a path produced by ContactPath.
func Resolve(path string) (Route, error) {
	rest, ok := strings.CutPrefix(path, contactsPrefix)
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return Route{}, fmt.Errorf("%w: %q", ErrNoRoute, path)
	}
	id, err := url.PathUnescape(rest)
	if err != nil {
		return Route{}, fmt.Errorf("%w: %q: %v", ErrNoRoute, path, err)
	}
	return Route{ContactID: id}, nil
}

// Emitter navigates by emitting a NavigateMsg for the host model to handle.
type Emitter struct{}

// Navigate returns a command producing NavigateMsg{Path: path}.
func (Emitter) Navigate(path string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Path: path}
	}
}
