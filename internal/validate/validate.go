// Package validate checks the shape of remote payloads before anything
// is persisted. Each function returns an error wrapping
// federation.ErrMalformedObject listing everything wrong at once.
package validate

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/estuaire/vidfed/internal/ap"
	"github.com/estuaire/vidfed/internal/federation"
)

const (
	MaxUsernameLen = 128
	MaxNameLen     = 256
)

func Actor(p ap.ActorPayload) error {
	var errs []error

	errs = append(errs, iri("id", p.ID))
	errs = append(errs, iri("inbox", p.Inbox))

	switch p.Type {
	case ap.PersonType, ap.GroupType, ap.ApplicationType:
	default:
		errs = append(errs, fmt.Errorf("unexpected actor type %q", p.Type))
	}

	if l := len(p.PreferredUsername); l == 0 {
		errs = append(errs, errors.New("empty preferredUsername"))
	} else if l > MaxUsernameLen {
		errs = append(errs, fmt.Errorf("preferredUsername too long; max %d characters", MaxUsernameLen))
	}

	if p.PublicKey.PublicKeyPem == "" {
		errs = append(errs, errors.New("missing public key"))
	}

	return wrap(errs)
}

func Video(p ap.VideoPayload) error {
	var errs []error

	errs = append(errs, iri("id", p.ID))

	if p.Type != ap.VideoType {
		errs = append(errs, fmt.Errorf("unexpected object type %q", p.Type))
	}
	if l := len(p.Name); l == 0 {
		errs = append(errs, errors.New("empty name"))
	} else if l > MaxNameLen {
		errs = append(errs, fmt.Errorf("name too long; max %d characters", MaxNameLen))
	}
	if len(p.AttributedTo) == 0 {
		errs = append(errs, errors.New("missing attribution"))
	}

	return wrap(errs)
}

func Comment(p ap.CommentPayload) error {
	var errs []error

	errs = append(errs, iri("id", p.ID))

	if p.Type != ap.NoteType {
		errs = append(errs, fmt.Errorf("unexpected object type %q", p.Type))
	}
	if p.Content == "" {
		errs = append(errs, errors.New("empty content"))
	}
	if p.AttributedTo == "" {
		errs = append(errs, errors.New("missing attribution"))
	}
	if p.InReplyTo == "" {
		errs = append(errs, errors.New("missing inReplyTo"))
	}

	return wrap(errs)
}

func Playlist(p ap.PlaylistPayload) error {
	var errs []error

	errs = append(errs, iri("id", p.ID))

	if p.Type != ap.PlaylistType {
		errs = append(errs, fmt.Errorf("unexpected object type %q", p.Type))
	}
	if l := len(p.Name); l == 0 {
		errs = append(errs, errors.New("empty name"))
	} else if l > MaxNameLen {
		errs = append(errs, fmt.Errorf("name too long; max %d characters", MaxNameLen))
	}
	if len(p.AttributedTo) == 0 {
		errs = append(errs, errors.New("missing attribution"))
	}

	return wrap(errs)
}

func iri(field, value string) error {
	if value == "" {
		return fmt.Errorf("empty %s", field)
	}
	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s is not an absolute IRI: %q", field, value)
	}
	return nil
}

func wrap(errs []error) error {
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", federation.ErrMalformedObject, err)
	}
	return nil
}
