package router

import (
	"errors"
	"testing"
)

func TestContactPath_RoundTrip(t *testing.T) {
	for _, id := range []string{"c-1", "3f2b9c1e-0000-4000-8000-000000000000", "a b/c"} {
		path := ContactPath(id)

		route, err := Resolve(path)
		if err != nil {
			t.Fatalf("Resolve(%q) error = %v", path, err)
		}
		if route.ContactID != id {
			t.Errorf("Resolve(ContactPath(%q)).ContactID = %q", id, route.ContactID)
		}
	}
}

func TestContactPath_Format(t *testing.T) {
	if got := ContactPath("42"); got != "/contacts/42" {
		t.Errorf("ContactPath(42) = %q, want /contacts/42", got)
	}
}

func TestResolve_NoRoute(t *testing.T) {
	for _, path := range []string{"", "/", "/contacts/", "/leads/1", "/contacts/1/edit"} {
		if _, err := Resolve(path); !errors.Is(err, ErrNoRoute) {
			t.Errorf("Resolve(%q) error = %v, want ErrNoRoute", path, err)
		}
	}
}

func TestEmitter_Navigate(t *testing.T) {
	cmd := Emitter{}.Navigate("/contacts/7")
	if cmd == nil {
		t.Fatal("Navigate() returned nil command")
	}
	msg, ok := cmd().(NavigateMsg)
	if !ok {
		t.Fatalf("command produced %T, want NavigateMsg", cmd())
	}
	if msg.Path != "/contacts/7" {
		t.Errorf("Path = %q, want /contacts/7", msg.Path)
	}
}
