package resolver

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/estuaire/vidfed/internal/ap"
	"github.com/estuaire/vidfed/internal/db"
	"github.com/estuaire/vidfed/internal/domain"
	"github.com/estuaire/vidfed/internal/federation"
	"github.com/estuaire/vidfed/internal/validate"
)

// ResolveThread persists the comment at iri together with any unstored
// ancestors. The inReplyTo chain is climbed until it reaches a video
// or a comment we already hold; nothing is written until the chain is
// anchored, so an unresolvable tail leaves no partial rows. The climb
// is bounded, past the depth limit the whole chain is dropped with
// ErrRecursionLimit.
func (r *Resolver) ResolveThread(ctx context.Context, iri string) (domain.Comment, error) {
	unlock := r.locks.Lock(iri)
	defer unlock()

	if c, err := r.db.GetCommentByURL(ctx, iri); err == nil {
		return c, nil
	} else if !errors.Is(err, db.ErrNotFound) {
		return domain.Comment{}, err
	}

	chain, video, parent, parentKnown, err := r.climb(ctx, iri)
	if err != nil {
		return domain.Comment{}, err
	}

	return r.persistChain(ctx, chain, video, parent, parentKnown)
}

// climb walks the reply chain upward, collecting unstored payloads
// until it anchors on a stored comment or a video.
func (r *Resolver) climb(ctx context.Context, iri string) (chain []ap.CommentPayload, video domain.Video, parent domain.Comment, parentKnown bool, err error) {
	current := iri

	for depth := 0; ; depth++ {
		if depth >= r.cfg.ThreadDepthLimit {
			err = fmt.Errorf("%w: thread at %s", federation.ErrRecursionLimit, iri)
			return
		}

		if depth > 0 {
			var c domain.Comment
			c, err = r.db.GetCommentByURL(ctx, current)
			if err == nil {
				parent, parentKnown = c, true
				video, err = r.db.GetVideoByID(ctx, c.VideoID)
				return
			}
			if !errors.Is(err, db.ErrNotFound) {
				return
			}
		}

		var v domain.Video
		v, err = r.db.GetVideoByURL(ctx, current)
		if err == nil {
			video = v
			return
		}
		if !errors.Is(err, db.ErrNotFound) {
			return
		}

		var payload ap.CommentPayload
		if err = r.fetch(ctx, current, &payload); err != nil {
			return
		}

		if payload.Type == ap.VideoType {
			video, err = r.GetOrCreateVideo(ctx, current)
			return
		}

		if err = validate.Comment(payload); err != nil {
			return
		}
		if !sameOrigin(payload.ID, payload.AttributedTo) {
			err = fmt.Errorf("%w: comment %s attributed to foreign actor %s", federation.ErrMalformedObject, payload.ID, payload.AttributedTo)
			return
		}

		chain = append(chain, payload)
		current = payload.InReplyTo
	}
}

// persistChain writes the collected payloads top-down so every child
// can point at its persisted parent.
func (r *Resolver) persistChain(ctx context.Context, chain []ap.CommentPayload, video domain.Video, parent domain.Comment, parentKnown bool) (domain.Comment, error) {
	var result domain.Comment

	for i := len(chain) - 1; i >= 0; i-- {
		p := chain[i]

		// a concurrent delivery may have stored part of the chain
		if existing, err := r.db.GetCommentByURL(ctx, p.ID); err == nil {
			parent, parentKnown, result = existing, true, existing
			continue
		} else if !errors.Is(err, db.ErrNotFound) {
			return domain.Comment{}, err
		}

		account, err := r.GetOrCreateActor(ctx, p.AttributedTo)
		if err != nil {
			return domain.Comment{}, err
		}

		c := domain.Comment{
			URL:       p.ID,
			Text:      p.Content,
			VideoID:   video.ID,
			AccountID: account.ID,
		}
		if parentKnown {
			c.InReplyToCommentID = parent.ID
			c.OriginCommentID = parent.OriginCommentID
		}

		c.ID, err = r.db.CreateComment(ctx, c)
		if err != nil {
			return domain.Comment{}, err
		}
		if c.OriginCommentID == 0 {
			c.OriginCommentID = c.ID
		}

		log.Debug().Str("comment", c.URL).Int64("video", video.ID).Msg("stored remote comment")
		parent, parentKnown, result = c, true, c
	}

	return result, nil
}
