// The domain package holds the rows the engine persists. URLs are kept
// as strings; they are canonical identifiers across instances, not
// values we manipulate structurally.
package domain

import "time"

type FollowState string

// A rejected follow is deleted rather than kept in a terminal state,
// so only two states are ever stored.
const (
	FollowPending  FollowState = "pending"
	FollowAccepted FollowState = "accepted"
)

// Actor is a local or remote identity. A remote actor always has a
// non-empty Host and an empty PrivateKeyPem; local actors are the
// inverse.
type Actor struct {
	ID             int64
	URL            string
	Username       string
	InboxURL       string
	SharedInboxURL string
	OutboxURL      string
	FollowersURL   string
	PublicKeyPem   string
	PrivateKeyPem  string

	// Host is empty for local actors.
	Host string

	// Instance marks a whole-instance actor (the server itself acting as
	// an actor), relevant to the auto-follow-back policy.
	Instance bool

	Tombstoned      bool
	CreatedAt       time.Time
	LastRefreshedAt time.Time
}

// Local reports whether the actor is owned by this server.
func (a Actor) Local() bool {
	return a.Host == ""
}

// Follow is a directed edge between two actors. URL is the id of the
// Follow activity that created the edge and is the idempotency key for
// re-processing.
type Follow struct {
	ID        int64
	URL       string
	ActorID   int64
	TargetID  int64
	State     FollowState
	Score     int
	CreatedAt time.Time
}

type Visibility string

const (
	VisibilityPublic   Visibility = "public"
	VisibilityUnlisted Visibility = "unlisted"
)

type Video struct {
	ID              int64
	URL             string
	Name            string
	Description     string
	AccountID       int64
	Visibility      Visibility
	Likes           int
	Dislikes        int
	CreatedAt       time.Time
	LastRefreshedAt time.Time
}

// Comment is a node in a reply tree rooted at a video. A top-level
// comment has no InReplyToCommentID and its OriginCommentID equals its
// own id once persisted.
type Comment struct {
	ID                 int64
	URL                string
	Text               string
	VideoID            int64
	AccountID          int64
	OriginCommentID    int64
	InReplyToCommentID int64
	CreatedAt          time.Time
	LastRefreshedAt    time.Time
}

type Playlist struct {
	ID              int64
	URL             string
	Name            string
	OwnerID         int64
	VideoURLs       []string
	CreatedAt       time.Time
	LastRefreshedAt time.Time
}

// Rate is a like or dislike keyed by (actor, video); URL records the
// activity that created it.
type Rate struct {
	ID        int64
	URL       string
	ActorID   int64
	VideoID   int64
	Type      RateType
	CreatedAt time.Time
}

type RateType string

const (
	RateLike    RateType = "like"
	RateDislike RateType = "dislike"
)

// Share records an Announce of a video by an actor, keyed by the
// announce activity URL.
type Share struct {
	ID        int64
	URL       string
	ActorID   int64
	VideoID   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
