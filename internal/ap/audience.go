package ap

import (
	"slices"

	"github.com/estuaire/vidfed/internal/domain"
)

// PublicStream is the well-known ActivityStreams public collection
// used to address an activity to the world.
const PublicStream = Context + "#Public"

// BuildAudience maps a visibility onto the to/cc pair of an outbound
// activity. Public puts the public collection in to and the follower
// recipients in cc; unlisted swaps them, so harvesters of the public
// collection skip the object while follower inboxes still receive it.
func BuildAudience(visibility domain.Visibility, recipients []string) (to, cc []string) {
	switch visibility {
	case domain.VisibilityUnlisted:
		return recipients, []string{PublicStream}
	default:
		return []string{PublicStream}, recipients
	}
}

// VisibilityFromAudience is the inbound inverse of BuildAudience. The
// second return is false when the addressing names the public
// collection in neither field; those objects are not stored.
func VisibilityFromAudience(to, cc []string) (domain.Visibility, bool) {
	if slices.Contains(to, PublicStream) {
		return domain.VisibilityPublic, true
	}
	if slices.Contains(cc, PublicStream) {
		return domain.VisibilityUnlisted, true
	}
	return "", false
}
