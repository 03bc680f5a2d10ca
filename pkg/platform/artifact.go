// SPDX-License-Identifier: MPL-2.0

package platform

import "path/filepath"

const (
	// ArtifactPrefix is the common prefix of every client build.
	ArtifactPrefix = "orosu-client"

	// windowsExeSuffix is appended to Windows artifacts.
	windowsExeSuffix = ".exe"
)

// Artifact is the client executable selected for a host.
type Artifact struct {
	// Filename is the bare artifact name, e.g. orosu-client-linux-amd64.
	Filename string
	// Path is the absolute location of the artifact on disk.
	Path string
}

// ArtifactName returns orosu-client-{os}-{arch}, with an .exe suffix on Windows.
func ArtifactName(h Host) string {
	name := ArtifactPrefix + "-" + h.OS + "-" + NormalizeArch(h.Arch)
	if h.IsWindows() {
		name += windowsExeSuffix
	}
	return name
}

// Resolve locates the artifact for h inside binDir. It never fails; whether
// the file actually exists is checked when it is executed. A binDir that
// cannot be made absolute is used as given.
func Resolve(h Host, binDir string) Artifact {
	name := ArtifactName(h)
	path := filepath.Join(binDir, name)
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return Artifact{Filename: name, Path: path}
}
