// SPDX-License-Identifier: MPL-2.0

// Package checksum verifies client artifacts against a sha256sum-style manifest
// (checksums.txt) shipped next to the binaries.
package checksum
