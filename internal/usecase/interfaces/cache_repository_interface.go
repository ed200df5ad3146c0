package interfaces

import "context"

// ICacheRepository is a small string cache used for last-known-good rate
// table snapshots. Redis in production, an in-memory twin elsewhere.
type ICacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}
