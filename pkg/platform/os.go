// SPDX-License-Identifier: MPL-2.0

package platform

// OS name constants for runtime.GOOS comparisons.
// Centralizes the string literals to avoid scattered magic strings.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"

	// win32 is how some CI hosts report Windows; it resolves to Windows.
	win32 = "win32"
)

// Architecture names used in artifact filenames.
const (
	AMD64 = "amd64"
	ARM64 = "arm64"
)

// NormalizeOS maps raw host OS identifiers onto the artifact vocabulary.
// Only the win32 alias is rewritten; every other value passes through.
func NormalizeOS(goos string) string {
	if goos == win32 {
		return Windows
	}
	return goos
}

// NormalizeArch collapses an architecture identifier onto the two published
// client builds. Only an exact "arm64" stays arm64; everything else (386, arm,
// riscv64, ...) resolves to amd64.
//
// Note that 32-bit ARM hosts therefore get the amd64 client.
func NormalizeArch(arch string) string {
	if arch == ARM64 {
		return ARM64
	}
	return AMD64
}
