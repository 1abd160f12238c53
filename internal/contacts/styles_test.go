package contacts

import (
	"testing"

	"github.com/smileynet/contactdesk/internal/contact"
)

func TestStatusVariant(t *testing.T) {
	tests := []struct {
		status contact.Status
		want   badgeVariant
	}{
		{contact.StatusActive, badgeDefault},
		{contact.StatusInactive, badgeSecondary},
		{"", badgeSecondary},
	}
	for _, tt := range tests {
		if got := statusVariant(tt.status); got != tt.want {
			t.Errorf("statusVariant(%q) = %d, want %d", tt.status, got, tt.want)
		}
	}
}

func TestStatusBadge_Labels(t *testing.T) {
	// Given: each status including the unset one
	// When: StatusBadge renders it
	// Then: the plain text is the status label, "unknown" when unset
	tests := []struct {
		status contact.Status
		want   string
	}{
		{contact.StatusActive, "active"},
		{contact.StatusInactive, "inactive"},
		{"", "unknown"},
	}
	for _, tt := range tests {
		got := stripANSI(StatusBadge(tt.status))
		if got != tt.want {
			t.Errorf("StatusBadge(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestBadgeStyles_Distinct(t *testing.T) {
	// The emphasized badge is bold; the secondary one is not.
	if !badgeStyles[badgeDefault].GetBold() {
		t.Error("default badge should be bold")
	}
	if badgeStyles[badgeSecondary].GetBold() {
		t.Error("secondary badge should not be bold")
	}
}
