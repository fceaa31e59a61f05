package version

import (
	"regexp"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"Library", Library},
		{"Gregor", Gregor},
		{"CLI", CLI},
		{"Playground", Playground},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !semverRegex.MatchString(tt.version) {
				t.Errorf("%s version %q does not match semver format (x.y.z)", tt.name, tt.version)
			}
		})
	}
}

func TestServiceVersion(t *testing.T) {
	tests := []struct {
		service  string
		expected string
	}{
		{"gregor", Gregor},
		{"cli", CLI},
		{"eiya", CLI},
		{"playground", Playground},
		{"unknown", Library},
		{"", Library},
	}

	for _, tt := range tests {
		t.Run(tt.service, func(t *testing.T) {
			if got := ServiceVersion(tt.service); got != tt.expected {
				t.Errorf("ServiceVersion(%q) = %q, want %q", tt.service, got, tt.expected)
			}
		})
	}
}

func TestGet(t *testing.T) {
	info := Get("gregor")
	if info.Version != Gregor || info.Library != Library || info.Commit != Commit {
		t.Errorf("Get() = %+v", info)
	}
	if !strings.HasPrefix(info.GoVersion, "go") {
		t.Errorf("GoVersion = %q", info.GoVersion)
	}
	if !strings.Contains(info.String(), "gregor "+Gregor) {
		t.Errorf("String() = %q", info.String())
	}
}
