package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/estuaire/vidfed/internal/ap"
	"github.com/estuaire/vidfed/internal/db"
	"github.com/estuaire/vidfed/internal/domain"
)

// PublishVideo federates a local video to the author's followers as a
// Create. The to/cc pair follows the visibility convention: public
// videos carry the public collection in to, unlisted ones only in cc.
func (g *FedGatewayImpl) PublishVideo(ctx context.Context, video domain.Video, author domain.Actor) error {
	inboxes, err := g.followerInboxes(ctx, author)
	if err != nil {
		return err
	}
	to, cc := ap.BuildAudience(video.Visibility, inboxes)

	payload := videoPayload(video, author)
	payload.To, payload.Cc = to, cc

	activity, err := ap.NewCreate(author.URL, video.URL, payload, to, cc)
	if err != nil {
		return err
	}
	log.Info().Str("video", video.URL).Int("inboxes", len(inboxes)).Msg("federating new video")
	return g.deliverAll(ctx, activity, inboxes, author)
}

// PublishVideoUpdate federates an edit of an already published video.
func (g *FedGatewayImpl) PublishVideoUpdate(ctx context.Context, video domain.Video, author domain.Actor) error {
	inboxes, err := g.followerInboxes(ctx, author)
	if err != nil {
		return err
	}
	to, cc := ap.BuildAudience(video.Visibility, inboxes)

	payload := videoPayload(video, author)
	payload.To, payload.Cc = to, cc

	activity, err := ap.NewUpdate(author.URL, payload, to, cc)
	if err != nil {
		return err
	}
	return g.deliverAll(ctx, activity, inboxes, author)
}

// RetractVideo federates the deletion of a local video.
func (g *FedGatewayImpl) RetractVideo(ctx context.Context, video domain.Video, author domain.Actor) error {
	inboxes, err := g.followerInboxes(ctx, author)
	if err != nil {
		return err
	}
	to, cc := ap.BuildAudience(video.Visibility, inboxes)
	return g.deliverAll(ctx, ap.NewDelete(author.URL, video.URL, to, cc), inboxes, author)
}

// AnnounceVideo federates a share of a video to the sharing actor's
// followers. Shares are always public.
func (g *FedGatewayImpl) AnnounceVideo(ctx context.Context, video domain.Video, by domain.Actor) error {
	inboxes, err := g.followerInboxes(ctx, by)
	if err != nil {
		return err
	}
	to, cc := ap.BuildAudience(domain.VisibilityPublic, inboxes)
	return g.deliverAll(ctx, ap.NewAnnounce(by.URL, video.URL, to, cc), inboxes, by)
}

// UnfollowRemoteActor withdraws an earlier Follow: the edge is removed
// locally and an Undo wrapping the original activity goes to the
// target. Unfollowing an actor we never followed is a no-op.
func (g *FedGatewayImpl) UnfollowRemoteActor(ctx context.Context, follower, target domain.Actor) error {
	follow, err := g.db.GetFollow(ctx, follower.ID, target.ID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil
		}
		return err
	}

	obj, _ := json.Marshal(target.URL)
	inner := ap.Activity{
		ID:     follow.URL,
		Type:   ap.FollowType,
		Actor:  follower.URL,
		Object: obj,
	}

	if err = g.db.DeleteFollow(ctx, follow.ID); err != nil {
		return err
	}
	log.Info().Str("follower", follower.URL).Str("target", target.URL).Msg("withdrawing follow")
	return g.Unicast(ctx, ap.NewUndo(follower.URL, inner), target.InboxURL, follower)
}

func videoPayload(v domain.Video, author domain.Actor) ap.VideoPayload {
	payload := ap.VideoPayload{
		AtContext: ap.Context,
		ID:        v.URL,
		Type:      ap.VideoType,
		Name:      v.Name,
		Content:   v.Description,
		AttributedTo: []ap.Attribution{
			{Type: ap.PersonType, ID: author.URL},
		},
	}
	if !v.CreatedAt.IsZero() {
		payload.Published = v.CreatedAt.UTC().Format(time.RFC3339)
	}
	return payload
}
