package inbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/estuaire/vidfed/internal/ap"
	"github.com/estuaire/vidfed/internal/db"
	"github.com/estuaire/vidfed/internal/domain"
	"github.com/estuaire/vidfed/internal/federation"
)

// handleCreate persists the created object. Videos and playlists are
// usually delivered inline; comments arrive as Notes whose reply chain
// may need to be climbed before the row can be anchored.
func (d *Dispatcher) handleCreate(ctx context.Context, a ap.Activity, _ domain.Actor) error {
	objectID, err := a.ObjectID()
	if err != nil {
		return fmt.Errorf("%w: create object: %v", federation.ErrMissingProperty, err)
	}
	if !sameOrigin(a.Actor, objectID) {
		return fmt.Errorf("%w: %s creates foreign object %s", federation.ErrMalformedObject, a.Actor, objectID)
	}

	switch a.ObjectType() {
	case ap.VideoType:
		var p ap.VideoPayload
		if err = json.Unmarshal(a.Object, &p); err != nil {
			return fmt.Errorf("%w: %v", federation.ErrMalformedObject, err)
		}
		if len(p.To)+len(p.Cc) == 0 {
			p.To, p.Cc = a.To, a.Cc
		}
		_, err = d.resolver.UpsertVideo(ctx, p)
		return err

	case ap.PlaylistType:
		var p ap.PlaylistPayload
		if err = json.Unmarshal(a.Object, &p); err != nil {
			return fmt.Errorf("%w: %v", federation.ErrMalformedObject, err)
		}
		_, err = d.resolver.UpsertPlaylist(ctx, p)
		return err

	case ap.NoteType, "":
		_, err = d.resolver.ResolveThread(ctx, objectID)
		return err

	default:
		log.Info().Str("objectType", a.ObjectType()).Str("id", a.ID).Msg("ignoring create of unsupported object")
		return nil
	}
}

// handleUpdate refreshes our copy of an object from the delivered
// payload instead of waiting for the staleness interval.
func (d *Dispatcher) handleUpdate(ctx context.Context, a ap.Activity, _ domain.Actor) error {
	objectID, err := a.ObjectID()
	if err != nil {
		return fmt.Errorf("%w: update object: %v", federation.ErrMissingProperty, err)
	}
	if !sameOrigin(a.Actor, objectID) {
		return fmt.Errorf("%w: %s updates foreign object %s", federation.ErrMalformedObject, a.Actor, objectID)
	}

	switch a.ObjectType() {
	case ap.VideoType:
		var p ap.VideoPayload
		if err = json.Unmarshal(a.Object, &p); err != nil {
			return fmt.Errorf("%w: %v", federation.ErrMalformedObject, err)
		}
		if len(p.To)+len(p.Cc) == 0 {
			p.To, p.Cc = a.To, a.Cc
		}
		_, err = d.resolver.UpsertVideo(ctx, p)
		return err

	case ap.PlaylistType:
		var p ap.PlaylistPayload
		if err = json.Unmarshal(a.Object, &p); err != nil {
			return fmt.Errorf("%w: %v", federation.ErrMalformedObject, err)
		}
		_, err = d.resolver.UpsertPlaylist(ctx, p)
		return err

	case ap.PersonType, ap.GroupType, ap.ApplicationType:
		var p ap.ActorPayload
		if err = json.Unmarshal(a.Object, &p); err != nil {
			return fmt.Errorf("%w: %v", federation.ErrMalformedObject, err)
		}
		_, err = d.resolver.UpsertActor(ctx, p)
		return err

	default:
		log.Info().Str("objectType", a.ObjectType()).Str("id", a.ID).Msg("ignoring update of unsupported object")
		return nil
	}
}

// handleDelete removes our copy of whatever the id names. Deleting the
// sending actor itself leaves a tombstone so the id cannot be reused;
// everything else is removed outright. Deletes for objects we never
// stored succeed silently.
func (d *Dispatcher) handleDelete(ctx context.Context, a ap.Activity, _ domain.Actor) error {
	objectID, err := a.ObjectID()
	if err != nil {
		return fmt.Errorf("%w: delete object: %v", federation.ErrMissingProperty, err)
	}
	if !sameOrigin(a.Actor, objectID) {
		return fmt.Errorf("%w: %s deletes foreign object %s", federation.ErrMalformedObject, a.Actor, objectID)
	}

	if objectID == a.Actor {
		err = d.db.TombstoneActorByURL(ctx, objectID)
		if errors.Is(err, db.ErrNotFound) {
			return nil
		}
		return err
	}

	for _, del := range []func(context.Context, string) error{
		d.db.DeleteVideoByURL,
		d.db.DeleteCommentByURL,
		d.db.DeletePlaylistByURL,
	} {
		if err = del(ctx, objectID); err != nil && !errors.Is(err, db.ErrNotFound) {
			return err
		}
	}
	return nil
}
