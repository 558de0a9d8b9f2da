package gateway

import (
	"context"
	"crypto"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"code.superseriousbusiness.org/httpsig"

	"github.com/estuaire/vidfed/internal/federation"
	"github.com/estuaire/vidfed/internal/utils"
)

const keyCacheTTL = 10 * time.Minute

// Verify authenticates an inbound request: the body must match the
// Digest header and the signature must check out against the public
// key of the actor named by the keyId. Key resolution is attempted
// once; a key that cannot be resolved rejects the request.
func (g *FedGatewayImpl) Verify(ctx context.Context, r *http.Request, body []byte) error {
	verifier, err := httpsig.NewVerifier(r)
	if err != nil {
		return fmt.Errorf("%w: %v", federation.ErrInvalidSignature, err)
	}

	if err = verifyCoverage(r); err != nil {
		return err
	}
	if err = verifyDigest(r, body); err != nil {
		return err
	}

	keyId, err := url.Parse(verifier.KeyId())
	if err != nil {
		return fmt.Errorf("%w: unparsable keyId %q", federation.ErrInvalidSignature, verifier.KeyId())
	}
	keyId.Fragment = ""
	keyId.RawFragment = ""

	key, err := g.publicKey(ctx, keyId.String())
	if err != nil {
		return err
	}

	if err = verifier.Verify(key, httpsig.RSA_SHA256); err != nil {
		return fmt.Errorf("%w: %v", federation.ErrInvalidSignature, err)
	}
	return nil
}

// requiredSigned is the minimum set of components the signature must
// cover. Without digest in the set, a replayed signature would
// authenticate any body the sender recomputes a Digest header for.
var requiredSigned = []string{httpsig.RequestTarget, "date", "host", "digest"}

func verifyCoverage(r *http.Request) error {
	raw := r.Header.Get("Signature")
	if raw == "" {
		raw = strings.TrimPrefix(r.Header.Get("Authorization"), "Signature ")
	}

	// The headers parameter is a quoted, space-separated list, e.g.
	// headers="(request-target) date host digest". Absent, the
	// signature covers only Date.
	covered := make(map[string]struct{})
	if _, rest, found := strings.Cut(raw, `headers="`); found {
		list, _, _ := strings.Cut(rest, `"`)
		for _, h := range strings.Fields(list) {
			covered[strings.ToLower(h)] = struct{}{}
		}
	}

	for _, h := range requiredSigned {
		if _, ok := covered[h]; !ok {
			return fmt.Errorf("%w: signature does not cover %q", federation.ErrInvalidSignature, h)
		}
	}
	return nil
}

func verifyDigest(r *http.Request, body []byte) error {
	header := r.Header.Get("Digest")
	if header == "" {
		return fmt.Errorf("%w: no digest header", federation.ErrInvalidDigest)
	}

	algo, value, found := strings.Cut(header, "=")
	if !found || !strings.EqualFold(algo, "SHA-256") {
		return fmt.Errorf("%w: unsupported digest %q", federation.ErrInvalidDigest, header)
	}

	sum := sha256.Sum256(body)
	if base64.StdEncoding.EncodeToString(sum[:]) != value {
		return federation.ErrInvalidDigest
	}
	return nil
}

func (g *FedGatewayImpl) publicKey(ctx context.Context, actorIRI string) (crypto.PublicKey, error) {
	if item := g.keyCache.Get(actorIRI); item != nil && !item.Expired() {
		return item.Value(), nil
	}

	actor, err := g.actors.GetOrCreateActor(ctx, actorIRI)
	if err != nil {
		return nil, fmt.Errorf("%w: resolving key owner %s: %v", federation.ErrInvalidSignature, actorIRI, err)
	}

	key, err := utils.ParsePublicKeyPem(actor.PublicKeyPem)
	if err != nil {
		return nil, fmt.Errorf("%w: bad key for %s: %v", federation.ErrInvalidSignature, actorIRI, err)
	}

	g.keyCache.Set(actorIRI, key, keyCacheTTL)
	return key, nil
}
