package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nachtlabs/git-nacht/internal/port"
)

// screenshotSubdir is the directory under the upload root that holds
// capture images, mirroring the layout the web backend serves from.
const screenshotSubdir = "screenshots"

// Capture produces screenshot image files under the managed upload root.
type Capture struct {
	renderer   port.Renderer
	uploadRoot string
	now        func() time.Time
}

// NewCapture creates a capture service writing under uploadRoot.
func NewCapture(renderer port.Renderer, uploadRoot string) *Capture {
	return &Capture{renderer: renderer, uploadRoot: uploadRoot, now: time.Now}
}

// Capture renders url and writes the image to the upload root. The filename
// combines the commit hash and a capture timestamp so repeated captures of
// the same commit do not collide. The returned path is relative to the
// upload root; on any render failure no file is written.
func (c *Capture) Capture(ctx context.Context, url, commitHash string) (string, error) {
	dir := filepath.Join(c.uploadRoot, screenshotSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	data, err := c.renderer.Render(ctx, url)
	if err != nil {
		return "", fmt.Errorf("%w: %v", port.ErrCaptureFailure, err)
	}

	filename := fmt.Sprintf("screenshot_%s_%s.png", commitHash, c.now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}

	return filepath.ToSlash(filepath.Join(screenshotSubdir, filename)), nil
}
