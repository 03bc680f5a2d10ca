// SPDX-License-Identifier: MPL-2.0

package launcher

// Stage is a step of a launcher run. Runs only ever move forward.
type Stage int

const (
	// StagePreparing normalizes permissions and verifies the artifact.
	StagePreparing Stage = iota
	// StageRedacting writes the redacted diagnostic line.
	StageRedacting
	// StageExecuting spawns and waits for the client.
	StageExecuting
	// StageCompleted means the client ran and exited (with any code).
	StageCompleted
	// StageFailed means the run stopped before the client could run.
	StageFailed
)

// String returns the lowercase stage name.
func (s Stage) String() string {
	switch s {
	case StagePreparing:
		return "preparing"
	case StageRedacting:
		return "redacting"
	case StageExecuting:
		return "executing"
	case StageCompleted:
		return "completed"
	case StageFailed:
		return "failed"
	}
	return "unknown"
}
