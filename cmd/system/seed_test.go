package system

import "testing"

// The seed command must store the admin email exactly as login looks it up.
func TestNormalizeEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Admin@Example.com", "admin@example.com"},
		{"  admin@example.com \n", "admin@example.com"},
		{"admin@example.com", "admin@example.com"},
	}
	for _, tc := range cases {
		if got := normalizeEmail(tc.in); got != tc.want {
			t.Errorf("normalizeEmail(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
