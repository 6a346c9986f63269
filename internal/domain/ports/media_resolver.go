package ports

import "context"

// MediaResolver follows a media link and returns the URL of the full-size image.
type MediaResolver interface {
	ResolveImage(ctx context.Context, href string) (string, error)
}
