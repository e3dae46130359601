package browser

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/nachtlabs/git-nacht/internal/port"
)

// RodRenderer implements port.Renderer with a headless Chrome instance
// driven through go-rod. When controlURL is empty a browser is launched
// locally; otherwise the renderer connects to an already running Chrome.
type RodRenderer struct {
	controlURL string
}

var _ port.Renderer = (*RodRenderer)(nil)

// NewRodRenderer creates a renderer. controlURL may be empty.
func NewRodRenderer(controlURL string) *RodRenderer {
	return &RodRenderer{controlURL: controlURL}
}

// Render navigates to url in a fresh page and returns a full PNG screenshot.
// The browser is closed before returning on every path; a failed render
// returns no bytes.
func (r *RodRenderer) Render(ctx context.Context, url string) ([]byte, error) {
	controlURL := r.controlURL
	if controlURL == "" {
		launched, err := launcher.New().Headless(true).Launch()
		if err != nil {
			return nil, fmt.Errorf("launch browser: %w", err)
		}
		controlURL = launched
	}

	b := rod.New().ControlURL(controlURL).Context(ctx)
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("connect browser: %w", err)
	}
	defer func() {
		if err := b.Close(); err != nil {
			slog.Warn("closing browser", "error", err)
		}
	}()

	page, err := b.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}

	if err := page.Navigate(url); err != nil {
		return nil, fmt.Errorf("navigate to %s: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait for %s: %w", url, err)
	}

	data, err := page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, fmt.Errorf("screenshot %s: %w", url, err)
	}
	return data, nil
}
