// The ap package is the closed activity vocabulary this engine speaks.
// It is deliberately not a general JSON-LD processor: properties that
// may be either a string IRI or an embedded object are modeled as
// json.RawMessage with accessors, and everything else is plain structs.
package ap

import (
	"encoding/json"
	"fmt"
)

const Context = "https://www.w3.org/ns/activitystreams"

const (
	FollowType   = "Follow"
	AcceptType   = "Accept"
	RejectType   = "Reject"
	CreateType   = "Create"
	UpdateType   = "Update"
	DeleteType   = "Delete"
	LikeType     = "Like"
	DislikeType  = "Dislike"
	AnnounceType = "Announce"
	UndoType     = "Undo"
	ViewType     = "View"

	PersonType      = "Person"
	GroupType       = "Group"
	ApplicationType = "Application"
	VideoType       = "Video"
	NoteType        = "Note"
	PlaylistType    = "Playlist"
	TombstoneType   = "Tombstone"

	OrderedCollectionType     = "OrderedCollection"
	OrderedCollectionPageType = "OrderedCollectionPage"
)

// Activity is the generic envelope of every inbound and outbound
// message. Object stays raw so each handler can decode the shape it
// expects.
type Activity struct {
	AtContext any             `json:"@context,omitempty"`
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Actor     string          `json:"actor,omitempty"`
	Object    json.RawMessage `json:"object,omitempty"`
	To        []string        `json:"to,omitempty"`
	Cc        []string        `json:"cc,omitempty"`
}

// ObjectID extracts the object's identifier whether the object property
// is a bare IRI string or an embedded object carrying an id. JSON-LD
// permits both and remote implementations use both.
func (a Activity) ObjectID() (string, error) {
	return RawID(a.Object)
}

// ObjectType returns the embedded object's type, or "" when the object
// is a bare IRI.
func (a Activity) ObjectType() string {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(a.Object, &probe); err != nil {
		return ""
	}
	return probe.Type
}

// RawID resolves a raw JSON value to an identifier: either the value is
// a string, or it is an object with an "id" member.
func RawID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", fmt.Errorf("empty object property")
	}

	var iri string
	if err := json.Unmarshal(raw, &iri); err == nil {
		return iri, nil
	}

	var obj struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", fmt.Errorf("object is neither IRI nor object: %w", err)
	}
	if obj.ID == "" {
		return "", fmt.Errorf("embedded object has no id")
	}
	return obj.ID, nil
}
