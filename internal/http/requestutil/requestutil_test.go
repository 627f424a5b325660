package requestutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestSanitizeRequestID(t *testing.T) {
	cases := map[string]bool{
		"valid-123":            true,
		"abc_DEF":              true,
		"":                     false,
		"bad id":               false,
		"<script>":             false,
		strings.Repeat("a", 65): false,
	}
	for in, keep := range cases {
		got := SanitizeRequestID(in)
		if keep && got != in {
			t.Fatalf("expected %q kept, got %q", in, got)
		}
		if !keep {
			if got == in {
				t.Fatalf("expected %q replaced", in)
			}
			if _, err := uuid.Parse(got); err != nil {
				t.Fatalf("expected uuid replacement for %q, got %q", in, got)
			}
		}
	}

	minted := NewRequestID()
	if SanitizeRequestID(minted) != minted {
		t.Fatalf("expected minted ids to pass validation")
	}
}

func TestClientIP(t *testing.T) {
	if got := ClientIP(nil); got != "" {
		t.Fatalf("expected empty for nil request, got %q", got)
	}

	cases := []struct {
		name      string
		forwarded string
		realIP    string
		remote    string
		want      string
	}{
		{"forwarded first hop", "1.2.3.4, 5.6.7.8", "7.7.7.7", "9.9.9.9:1234", "1.2.3.4"},
		{"real ip", "", "7.7.7.7", "9.9.9.9:1234", "7.7.7.7"},
		{"remote host", "", "", "9.9.9.9:1234", "9.9.9.9"},
		{"remote without port", "", "", "pipe", "pipe"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/state", nil)
			req.RemoteAddr = tc.remote
			if tc.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tc.forwarded)
			}
			if tc.realIP != "" {
				req.Header.Set("X-Real-IP", tc.realIP)
			}
			if got := ClientIP(req); got != tc.want {
				t.Fatalf("ClientIP() = %q, want %q", got, tc.want)
			}
		})
	}
}
