package port

import "context"

// Renderer is the opaque "render URL → image bytes" capability backed by a
// headless browser. A failed render returns no bytes; callers must not write
// partial artifacts.
type Renderer interface {
	Render(ctx context.Context, url string) ([]byte, error)
}
