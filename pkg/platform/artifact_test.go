// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestArtifactName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		os   string
		arch string
		want string
	}{
		{Linux, AMD64, "orosu-client-linux-amd64"},
		{Linux, ARM64, "orosu-client-linux-arm64"},
		{Darwin, AMD64, "orosu-client-darwin-amd64"},
		{Darwin, ARM64, "orosu-client-darwin-arm64"},
		{Windows, AMD64, "orosu-client-windows-amd64.exe"},
		{Windows, ARM64, "orosu-client-windows-arm64.exe"},
	}

	for _, tt := range tests {
		t.Run(tt.os+"/"+tt.arch, func(t *testing.T) {
			t.Parallel()

			if got := ArtifactName(NewHost(tt.os, tt.arch)); got != tt.want {
				t.Errorf("ArtifactName(%s, %s) = %q, want %q", tt.os, tt.arch, got, tt.want)
			}
		})
	}
}

func TestArtifactName_ArchFallback(t *testing.T) {
	t.Parallel()

	for _, arch := range []string{"386", "arm", "riscv64", "x64", "ARM64", "arm64be", "s390x"} {
		got := ArtifactName(NewHost(Linux, arch))
		if got != "orosu-client-linux-amd64" {
			t.Errorf("ArtifactName(linux, %q) = %q, want amd64 fallback", arch, got)
		}
	}
}

func TestArtifactName_UnknownOSPassesThrough(t *testing.T) {
	t.Parallel()

	got := ArtifactName(NewHost("freebsd", ARM64))
	if got != "orosu-client-freebsd-arm64" {
		t.Errorf("ArtifactName(freebsd, arm64) = %q", got)
	}
	if strings.HasSuffix(got, ".exe") {
		t.Error("non-windows artifact must not carry .exe")
	}
}

func TestArtifactName_Win32Alias(t *testing.T) {
	t.Parallel()

	if got := ArtifactName(NewHost("win32", "x64")); got != "orosu-client-windows-amd64.exe" {
		t.Errorf("ArtifactName(win32, x64) = %q", got)
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	art := Resolve(NewHost(Linux, ARM64), dir)

	if art.Filename != "orosu-client-linux-arm64" {
		t.Errorf("Filename = %q", art.Filename)
	}
	if want := filepath.Join(dir, art.Filename); art.Path != want {
		t.Errorf("Path = %q, want %q", art.Path, want)
	}
	if !filepath.IsAbs(art.Path) {
		t.Errorf("Path %q is not absolute", art.Path)
	}
}

func TestResolve_RelativeBinDir(t *testing.T) {
	t.Parallel()

	art := Resolve(NewHost(Darwin, AMD64), "bin")
	if !filepath.IsAbs(art.Path) {
		t.Errorf("Path %q is not absolute", art.Path)
	}
	if filepath.Base(art.Path) != "orosu-client-darwin-amd64" {
		t.Errorf("Path %q does not end with the artifact name", art.Path)
	}
}
