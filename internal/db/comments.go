package db

import (
	"context"
	"time"

	"github.com/estuaire/vidfed/internal/domain"
)

type Comments interface {
	GetCommentByURL(ctx context.Context, url string) (domain.Comment, error)
	CreateComment(ctx context.Context, c domain.Comment) (int64, error)
	DeleteCommentByURL(ctx context.Context, url string) error
	TouchComment(ctx context.Context, url string, at time.Time) error
}
