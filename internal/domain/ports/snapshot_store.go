package ports

import (
	"context"
	"errors"
	"time"

	"github.com/haakonunderbakke/haakon-dev/internal/domain/model"
)

// ErrNoSnapshot is returned by LoadSnapshot when nothing was saved yet.
var ErrNoSnapshot = errors.New("no snapshot stored")

// SnapshotStore persists the last successfully fetched article collection.
type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, articles []model.Article, fetchedAt time.Time) error
	LoadSnapshot(ctx context.Context) ([]model.Article, time.Time, error)
}
