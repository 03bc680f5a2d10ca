// SPDX-License-Identifier: MPL-2.0

package checksum

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// SHA256("hello\n")
const helloHash = "5891b5b522d5df086d0ff0b110fbd9d21bb4fc7163af34d08286a2e846f6be03"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestParseManifest(t *testing.T) {
	t.Parallel()

	input := strings.NewReader(
		"a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2  orosu-client-linux-amd64\n" +
			"\n" +
			"F7A8B9C0D1E2F7A8B9C0D1E2F7A8B9C0D1E2F7A8B9C0D1E2F7A8B9C0D1E2F7A8 *orosu-client-windows-amd64.exe\n" +
			// too short
			"abcdef1234  orosu-client-darwin-arm64\n" +
			// single space, no binary marker
			"a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2 single_space\n" +
			// non-hex
			"zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz  bad_hex\n" +
			// hash only
			"a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2  \n",
	)

	m, err := ParseManifest(input)
	if err != nil {
		t.Fatalf("ParseManifest() error = %v", err)
	}
	if len(m) != 2 {
		t.Fatalf("got %d entries, want 2: %+v", len(m), m)
	}
	if m[0].Filename != "orosu-client-linux-amd64" {
		t.Errorf("m[0].Filename = %q", m[0].Filename)
	}
	if m[1].Filename != "orosu-client-windows-amd64.exe" {
		t.Errorf("m[1].Filename = %q", m[1].Filename)
	}
	if m[1].Hash != strings.ToLower(m[1].Hash) {
		t.Errorf("hash not lowercased: %q", m[1].Hash)
	}
}

func TestParseManifest_Empty(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "not-a-valid-line\n", "tooshort  file\n"} {
		if _, err := ParseManifest(strings.NewReader(in)); !errors.Is(err, ErrEmptyManifest) {
			t.Errorf("ParseManifest(%q) error = %v, want ErrEmptyManifest", in, err)
		}
	}
}

func TestManifestLookup(t *testing.T) {
	t.Parallel()

	m := Manifest{
		{Hash: helloHash, Filename: "orosu-client-linux-amd64"},
	}

	hash, err := m.Lookup("orosu-client-linux-amd64")
	if err != nil || hash != helloHash {
		t.Errorf("Lookup() = %q, %v", hash, err)
	}

	if _, err := m.Lookup("orosu-client-linux-arm64"); !errors.Is(err, ErrArtifactNotListed) {
		t.Errorf("Lookup(missing) error = %v, want ErrArtifactNotListed", err)
	}
}

func TestManifestVerify(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "orosu-client-linux-amd64", "hello\n")

	good := Manifest{{Hash: helloHash, Filename: "orosu-client-linux-amd64"}}
	if err := good.Verify(path, "orosu-client-linux-amd64"); err != nil {
		t.Errorf("Verify() = %v, want nil", err)
	}

	bad := Manifest{{Hash: strings.Repeat("0", 64), Filename: "orosu-client-linux-amd64"}}
	err := bad.Verify(path, "orosu-client-linux-amd64")
	if !errors.Is(err, ErrChecksumMismatch) {
		t.Fatalf("Verify() = %v, want ErrChecksumMismatch", err)
	}
	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected *MismatchError, got %T", err)
	}
	if mismatch.Got != helloHash {
		t.Errorf("MismatchError.Got = %q, want %q", mismatch.Got, helloHash)
	}
}

func TestLoadManifest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, ManifestFileName, helloHash+"  orosu-client-darwin-arm64\n")

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest() error = %v", err)
	}
	if len(m) != 1 || m[0].Filename != "orosu-client-darwin-arm64" {
		t.Errorf("LoadManifest() = %+v", m)
	}

	if _, err := LoadManifest(filepath.Join(dir, "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadManifest(missing) error = %v, want ErrNotExist", err)
	}
}

func TestVerifyFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "testfile", "hello\n")

	tests := []struct {
		name         string
		expected     string
		wantMismatch bool
	}{
		{name: "match", expected: helloHash},
		{name: "uppercase match", expected: strings.ToUpper(helloHash)},
		{name: "mismatch", expected: strings.Repeat("0", 64), wantMismatch: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := VerifyFile(path, tt.expected)
			if got := errors.Is(err, ErrChecksumMismatch); got != tt.wantMismatch {
				t.Errorf("VerifyFile() = %v, wantMismatch %v", err, tt.wantMismatch)
			}
		})
	}
}

func TestVerifyFile_FileNotFound(t *testing.T) {
	t.Parallel()

	err := VerifyFile(filepath.Join(t.TempDir(), "nope"), helloHash)
	if err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
	if errors.Is(err, ErrChecksumMismatch) {
		t.Error("missing file must not be reported as a mismatch")
	}
}

func TestComputeFileHash(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	empty := writeFile(t, dir, "empty", "")

	got, err := ComputeFileHash(empty)
	if err != nil {
		t.Fatalf("ComputeFileHash() error = %v", err)
	}
	if want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"; got != want {
		t.Errorf("ComputeFileHash(empty) = %q, want %q", got, want)
	}
}
