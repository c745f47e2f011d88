package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	cases := []struct {
		name string
		got  string
		want string
	}{
		{"CLIName", CLIName(), "advent"},
		{"HomeDir", HomeDir(), ".advent"},
		{"EnvPrefix", EnvPrefix(), "ADVENT"},
		{"GoModule", GoModule(), "github.com/advent-labs/advent"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("%s() = %q, want %q", tc.name, tc.got, tc.want)
			}
		})
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("strict"); got != "ADVENT_STRICT" {
		t.Errorf("EnvVar(\"strict\") = %q, want %q", got, "ADVENT_STRICT")
	}
}
