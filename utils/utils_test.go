package utils

import (
	"regexp"
	"testing"
)

func TestRandomHexCode(t *testing.T) {
	hexOnly := regexp.MustCompile("^[0-9a-f]+$")
	code := RandomHexCode(8)
	if len(code) != 8 {
		t.Fatalf("RandomHexCode(8) length = %d, want 8", len(code))
	}
	if !hexOnly.MatchString(code) {
		t.Errorf("RandomHexCode(8) = %q, want hex characters only", code)
	}
	if RandomHexCode(8) == code && RandomHexCode(8) == code {
		t.Errorf("RandomHexCode(8) returned %q three times in a row", code)
	}
}
