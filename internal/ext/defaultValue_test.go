package ext

import "testing"

func TestDefaultValue(t *testing.T) {
	if got := DefaultValue("", "~/work"); got != "~/work" {
		t.Errorf("expected fallback for zero value, got %q", got)
	}
	if got := DefaultValue("/srv/repos", "~/work"); got != "/srv/repos" {
		t.Errorf("expected value to win over fallback, got %q", got)
	}
	if got := DefaultValue(0, 7); got != 7 {
		t.Errorf("expected fallback for 0, got %d", got)
	}
}
