package domain

import "time"

// Screenshot links a rendered page capture to the commit that triggered it
// and the project that owns it. ImagePath is relative to the managed upload
// root so the record is portable to wherever the shared backend mounts it.
type Screenshot struct {
	ID         int64     `json:"id"          db:"id"`
	ProjectID  int64     `json:"project_id"  db:"project_id"`
	CommitHash string    `json:"commit_hash" db:"commit_hash"`
	URL        string    `json:"url"         db:"url"`
	ImagePath  string    `json:"image_path"  db:"image_path"`
	UserID     int64     `json:"user_id"     db:"user_id"`
	CreatedAt  time.Time `json:"created_at"  db:"created_at"`
}
