package utils

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"shorter than limit", "ok", 50, "ok"},
		{"exactly at limit", "abcde", 5, "abcde"},
		{"clipped", "abcdef", 3, "abc"},
		{"empty input", "", 10, ""},
		{"zero limit", "abc", 0, ""},
		{"negative limit", "abc", -1, ""},
		{"multibyte runes kept whole", "héllo wörld", 7, "héllo w"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.n); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
		})
	}
}

func TestEnvSet(t *testing.T) {
	t.Setenv("UTILS_TEST_PRESENT", "value")
	if !EnvSet("UTILS_TEST_PRESENT") {
		t.Error("EnvSet = false for a set variable")
	}

	t.Setenv("UTILS_TEST_EMPTY", "")
	if EnvSet("UTILS_TEST_EMPTY") {
		t.Error("EnvSet = true for an empty variable")
	}

	if EnvSet("UTILS_TEST_DEFINITELY_ABSENT") {
		t.Error("EnvSet = true for an absent variable")
	}
}
