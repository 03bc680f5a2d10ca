// SPDX-License-Identifier: MPL-2.0

// Package platform maps the host operating system and CPU architecture to the
// orosu-client artifact built for it.
//
// The host is captured once per run into an immutable Host value (see
// CurrentHost) and passed explicitly to ArtifactName and Resolve, so callers
// and tests can inject any os/arch pair. Resolution never fails: unknown
// operating systems pass through into the filename unchanged, and every
// architecture other than arm64 falls back to amd64.
package platform
