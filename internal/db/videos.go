package db

import (
	"context"
	"time"

	"github.com/estuaire/vidfed/internal/domain"
)

type Videos interface {
	GetVideoByURL(ctx context.Context, url string) (domain.Video, error)
	GetVideoByID(ctx context.Context, id int64) (domain.Video, error)
	CreateVideo(ctx context.Context, v domain.Video) (int64, error)
	UpdateVideo(ctx context.Context, v domain.Video) error
	DeleteVideoByURL(ctx context.Context, url string) error
	TouchVideo(ctx context.Context, url string, at time.Time) error
	// AddVideoRates adjusts the cached like/dislike counters by the
	// given deltas.
	AddVideoRates(ctx context.Context, videoID int64, likes, dislikes int) error

	GetRate(ctx context.Context, actorID, videoID int64) (domain.Rate, error)
	CreateRate(ctx context.Context, r domain.Rate) error
	DeleteRate(ctx context.Context, id int64) error

	GetShareByURL(ctx context.Context, url string) (domain.Share, error)
	CreateShare(ctx context.Context, s domain.Share) error
	TouchShare(ctx context.Context, id int64, at time.Time) error
	DeleteShareByURL(ctx context.Context, url string) error
	// DeleteSharesOlderThan implements the diff-and-clean step after a
	// shares crawl: anything not refreshed by the walk is gone remotely.
	DeleteSharesOlderThan(ctx context.Context, videoID int64, t time.Time) (int64, error)
}
