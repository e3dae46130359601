package domain

import "time"

// CommitInfo is a snapshot of the most recent commit of the working
// repository. It is produced fresh on each inspection and never mutated.
type CommitInfo struct {
	Hash      string    `json:"hash"`
	ShortHash string    `json:"short_hash"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Branch    string    `json:"branch"`
	RemoteURL string    `json:"remote_url,omitempty"`
}

// DefaultEligibilityWindow is the maximum age of the latest commit for
// which a screenshot request is honored.
const DefaultEligibilityWindow = 5 * time.Minute

// IsRecent reports whether the commit falls inside the eligibility window.
// A commit timestamp in the future (clock skew) is not recent.
func (c *CommitInfo) IsRecent(now time.Time, window time.Duration) bool {
	age := now.Sub(c.Timestamp)
	return age >= 0 && age <= window
}
