package cli

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/nachtlabs/git-nacht/internal/domain"
)

// The session file carries the identity between login and capture runs so
// the workflow receives it as an argument. Absence means the sentinel user.

func sessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "git-nacht", "session.json"), nil
}

func saveSession(identity *domain.Identity) error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// loadSession returns the stored identity, or nil when no valid session
// exists.
func loadSession() *domain.Identity {
	path, err := sessionPath()
	if err != nil {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var identity domain.Identity
	if err := json.Unmarshal(data, &identity); err != nil || identity.UserID == 0 {
		return nil
	}
	return &identity
}
