// The federation package holds the error taxonomy shared by the inbound
// and outbound halves of the engine. Callers are expected to test these
// with errors.Is; the concrete messages wrap them with context.
package federation

import "errors"

var (
	// ErrInvalidSignature is returned when a request carries no usable
	// signature, or the signature does not check out against the claimed
	// key. Requests failing with it are rejected before any side effect.
	ErrInvalidSignature = errors.New("invalid http signature")
	// ErrInvalidDigest is returned when the body digest header does not
	// match the received body.
	ErrInvalidDigest = errors.New("digest mismatch")
	// ErrUnknownActivity marks an activity type outside the supported
	// vocabulary. It is logged and dropped, never retried.
	ErrUnknownActivity = errors.New("unknown activity type")
	// ErrMalformedObject marks a remote payload that fails shape
	// validation for its claimed type.
	ErrMalformedObject = errors.New("malformed object")
	// ErrRecursionLimit is returned by the thread resolver when a reply
	// chain climbs past the configured depth.
	ErrRecursionLimit = errors.New("recursion limit exceeded")
	// ErrRemoteUnreachable wraps network-level failures talking to a
	// peer. Refresh paths treat it as non-fatal and keep stale data.
	ErrRemoteUnreachable = errors.New("remote unreachable")
	// ErrMissingProperty is returned when a required property is absent
	// from an activity or object.
	ErrMissingProperty = errors.New("missing property")
	// ErrObjectGone marks an object the remote side answered 404 or a
	// tombstone for; the local copy has been removed.
	ErrObjectGone = errors.New("object gone")
	// ErrNotLocal is returned when an inbound activity targets an actor
	// this server does not own.
	ErrNotLocal = errors.New("target actor is not local")
)
