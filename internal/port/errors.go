package port

import "errors"

// Sentinel errors used across ports. Each maps to one user-facing message
// with a suggested remediation; none is retried automatically.
var (
	ErrNotARepository   = errors.New("not a git repository")
	ErrNoCommitYet      = errors.New("repository has no commits")
	ErrStaleCommit      = errors.New("latest commit is outside the eligibility window")
	ErrCaptureFailure   = errors.New("screenshot capture failed")
	ErrStoreUnavailable = errors.New("database connection failed")
	ErrPersistFailure   = errors.New("database insert failed")
	ErrAuthFailure      = errors.New("invalid credentials")
	ErrUserNotFound     = errors.New("user not found")
	ErrProjectNotFound  = errors.New("project not found")
)
