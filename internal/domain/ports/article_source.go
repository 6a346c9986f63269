package ports

import (
	"context"

	"github.com/haakonunderbakke/haakon-dev/internal/domain/model"
)

// ArticleSource fetches the complete article collection from the content service.
type ArticleSource interface {
	GetAllPosts(ctx context.Context) ([]model.Article, error)
}
