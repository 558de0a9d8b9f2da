package ap

import (
	"encoding/json"

	"github.com/google/uuid"
)

// NewFollow builds an outbound Follow of target by actor. The id is
// minted under the local actor's URL so the remote side can echo it
// back in Accept/Reject.
func NewFollow(actor, target string) Activity {
	return Activity{
		AtContext: Context,
		ID:        actor + "/follows/" + uuid.NewString(),
		Type:      FollowType,
		Actor:     actor,
		Object:    mustRaw(target),
		To:        []string{target},
	}
}

// NewAccept wraps the received follow activity in an Accept addressed
// to the follower. Some peers require to/cc to be present even here.
func NewAccept(actor string, follow Activity) Activity {
	return Activity{
		AtContext: Context,
		ID:        actor + "/accepts/" + uuid.NewString(),
		Type:      AcceptType,
		Actor:     actor,
		Object:    mustRawActivity(follow),
		To:        []string{follow.Actor},
		Cc:        []string{},
	}
}

// NewReject mirrors NewAccept for the rejection branch.
func NewReject(actor string, follow Activity) Activity {
	return Activity{
		AtContext: Context,
		ID:        actor + "/rejects/" + uuid.NewString(),
		Type:      RejectType,
		Actor:     actor,
		Object:    mustRawActivity(follow),
		To:        []string{follow.Actor},
		Cc:        []string{},
	}
}

// NewCreate wraps an object payload in a Create with the given
// audience. The activity id is derived from the object id so that
// re-federation of the same object stays idempotent on the remote side.
func NewCreate(actor, objectID string, payload any, to, cc []string) (Activity, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Activity{}, err
	}
	return Activity{
		AtContext: Context,
		ID:        objectID + "/activity",
		Type:      CreateType,
		Actor:     actor,
		Object:    raw,
		To:        to,
		Cc:        cc,
	}, nil
}

// NewUpdate is NewCreate's counterpart for edits; the id is minted
// fresh because every update is a distinct activity.
func NewUpdate(actor string, payload any, to, cc []string) (Activity, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Activity{}, err
	}
	return Activity{
		AtContext: Context,
		ID:        actor + "/updates/" + uuid.NewString(),
		Type:      UpdateType,
		Actor:     actor,
		Object:    raw,
		To:        to,
		Cc:        cc,
	}, nil
}

// NewAnnounce builds a share of an object.
func NewAnnounce(actor, objectID string, to, cc []string) Activity {
	return Activity{
		AtContext: Context,
		ID:        objectID + "/announces/" + uuid.NewString(),
		Type:      AnnounceType,
		Actor:     actor,
		Object:    mustRaw(objectID),
		To:        to,
		Cc:        cc,
	}
}

// NewUndo wraps a previously emitted activity.
func NewUndo(actor string, inner Activity) Activity {
	return Activity{
		AtContext: Context,
		ID:        actor + "/undoes/" + uuid.NewString(),
		Type:      UndoType,
		Actor:     actor,
		Object:    mustRawActivity(inner),
		To:        inner.To,
		Cc:        inner.Cc,
	}
}

// NewDelete announces a tombstoned object.
func NewDelete(actor, objectID string, to, cc []string) Activity {
	raw, _ := json.Marshal(Tombstone{ID: objectID, Type: TombstoneType})
	return Activity{
		AtContext: Context,
		ID:        objectID + "/delete",
		Type:      DeleteType,
		Actor:     actor,
		Object:    raw,
		To:        to,
		Cc:        cc,
	}
}

func mustRaw(iri string) json.RawMessage {
	raw, _ := json.Marshal(iri)
	return raw
}

func mustRawActivity(a Activity) json.RawMessage {
	a.AtContext = nil
	raw, _ := json.Marshal(a)
	return raw
}
