// SPDX-License-Identifier: MPL-2.0

package checksum

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ManifestFileName is the conventional manifest name inside the binary directory.
const ManifestFileName = "checksums.txt"

var (
	// ErrChecksumMismatch indicates the computed SHA256 hash does not match the expected hash.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrArtifactNotListed indicates the artifact has no entry in the manifest.
	ErrArtifactNotListed = errors.New("artifact not listed in checksum manifest")

	// ErrEmptyManifest indicates the manifest contained no parseable entries.
	ErrEmptyManifest = errors.New("no valid checksum entries found")
)

type (
	// Entry is one manifest line: the SHA256 of a single artifact.
	Entry struct {
		Hash     string // lowercase hex SHA256 (64 characters)
		Filename string
	}

	// Manifest is a parsed checksums.txt.
	Manifest []Entry

	// MismatchError describes an artifact whose hash differs from the manifest.
	// It wraps ErrChecksumMismatch so callers can use errors.Is for classification.
	MismatchError struct {
		Path     string
		Expected string
		Got      string
	}
)

// Error returns both hashes so a tampered or stale artifact is easy to spot.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("checksum verification failed for %s (expected %s, got %s)", e.Path, e.Expected, e.Got)
}

// Unwrap returns ErrChecksumMismatch so callers can use errors.Is.
func (e *MismatchError) Unwrap() error { return ErrChecksumMismatch }

// ParseManifest reads sha256sum output. Both the text ("{hash}  {name}") and
// binary ("{hash} *{name}") forms are accepted; malformed lines are skipped.
func ParseManifest(r io.Reader) (Manifest, error) {
	var m Manifest

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		hash, rest, ok := strings.Cut(line, " ")
		if !ok || !isValidHexHash(hash) {
			continue
		}

		var name string
		switch {
		case strings.HasPrefix(rest, " "):
			name = strings.TrimSpace(rest[1:])
		case strings.HasPrefix(rest, "*"):
			name = strings.TrimSpace(rest[1:])
		default:
			continue
		}
		if name == "" {
			continue
		}

		m = append(m, Entry{Hash: strings.ToLower(hash), Filename: name})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading checksum manifest: %w", err)
	}
	if len(m) == 0 {
		return nil, ErrEmptyManifest
	}

	return m, nil
}

// LoadManifest opens and parses the manifest at path.
func LoadManifest(path string) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }() // read-only

	m, err := ParseManifest(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Lookup returns the expected hash for filename.
func (m Manifest) Lookup(filename string) (string, error) {
	for _, e := range m {
		if e.Filename == filename {
			return e.Hash, nil
		}
	}
	return "", fmt.Errorf("%s: %w", filename, ErrArtifactNotListed)
}

// Verify checks the file at path against the manifest entry for filename.
func (m Manifest) Verify(path, filename string) error {
	expected, err := m.Lookup(filename)
	if err != nil {
		return err
	}
	return VerifyFile(path, expected)
}

// VerifyFile computes the SHA256 hash of the file at path and compares it with
// expectedHash (case-insensitive). A difference yields a *MismatchError.
func VerifyFile(path, expectedHash string) error {
	got, err := ComputeFileHash(path)
	if err != nil {
		return err
	}

	if !strings.EqualFold(got, expectedHash) {
		return &MismatchError{
			Path:     path,
			Expected: strings.ToLower(expectedHash),
			Got:      got,
		}
	}

	return nil
}

// ComputeFileHash streams the file at path through SHA256 and returns the
// lowercase hex digest.
func ComputeFileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }() // read-only

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing file %s: %w", path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

func isValidHexHash(s string) bool {
	if len(s) != sha256.Size*2 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
