package client

import (
	"bytes"
	"context"
	"crypto"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"code.superseriousbusiness.org/httpsig"
	"github.com/rs/zerolog/log"

	"github.com/estuaire/vidfed/internal/config"
	"github.com/estuaire/vidfed/internal/db"
	"github.com/estuaire/vidfed/internal/federation"
	"github.com/estuaire/vidfed/internal/utils"
)

var prefs = []httpsig.Algorithm{httpsig.RSA_SHA256}
var getHeaders = []string{httpsig.RequestTarget, "date", "host"}
var postHeaders = []string{httpsig.RequestTarget, "date", "host", "digest"}
var mainKey, _ = url.Parse("#main-key")

// maxBodySize bounds what we are willing to read from an untrusted
// peer's response.
const maxBodySize = 1 << 20

// HttpClient is the signing client used by the instance actor itself.
// When an activity must go out on behalf of a particular local actor,
// DeliverAs builds a signer around that actor's own key.
type HttpClient struct {
	db              db.DB
	client          *http.Client
	key             crypto.PrivateKey
	pubKeyId        *url.URL
	getSigner       httpsig.Signer
	getSignerMutex  sync.Mutex
	postSigner      httpsig.Signer
	postSignerMutex sync.Mutex
}

func New(d db.DB, client *http.Client, key crypto.PrivateKey, keyId *url.URL) (*HttpClient, error) {
	getSigner, _, err := httpsig.NewSigner(prefs, httpsig.DigestSha256, getHeaders, httpsig.Signature, 3600)
	if err != nil {
		return nil, err
	}

	postSigner, _, err := httpsig.NewSigner(prefs, httpsig.DigestSha256, postHeaders, httpsig.Signature, 3600)
	if err != nil {
		return nil, err
	}

	return &HttpClient{
		db:         d,
		client:     client,
		key:        key,
		pubKeyId:   keyId,
		getSigner:  getSigner,
		postSigner: postSigner,
	}, nil
}

// Get dereferences an IRI and returns the response body. A 404 or 410
// maps to ErrObjectGone so refresh paths can distinguish deletion from
// unavailability.
func (c *HttpClient) Get(ctx context.Context, iri *url.URL) ([]byte, error) {
	res, err := c.Dereference(ctx, iri)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", federation.ErrRemoteUnreachable, iri, err)
	}
	return body, nil
}

func (c *HttpClient) Dereference(ctx context.Context, iri *url.URL) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, iri.String(), nil)
	if err != nil {
		return nil, err
	}

	c.getSignerMutex.Lock()
	req.Header.Set("Date", time.Now().UTC().Format(http.TimeFormat))
	req.Header.Set("Accept", config.ContentType)
	// The signer only sees the header map; Go keeps the host on req.Host.
	req.Header.Set("Host", req.URL.Host)
	err = c.getSigner.SignRequest(c.key, c.pubKeyId.String(), req, nil)
	c.getSignerMutex.Unlock()
	if err != nil {
		log.Error().Err(err).Msg("error while signing request")
		return nil, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", federation.ErrRemoteUnreachable, iri, err)
	}

	switch {
	case res.StatusCode == http.StatusNotFound || res.StatusCode == http.StatusGone:
		res.Body.Close()
		return nil, fmt.Errorf("%w: %s", federation.ErrObjectGone, iri)
	case res.StatusCode >= http.StatusBadRequest:
		content, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		res.Body.Close()
		log.Error().Str("status", res.Status).Bytes("response", content).Msg("fetch error")
		return nil, fmt.Errorf("%d %s: %s", res.StatusCode, res.Status, content)
	}

	return res, nil
}

// DeliverAs posts a signed body to a remote inbox on behalf of the
// given local actor. When from is the instance root, the shared
// instance signer is used.
func (c *HttpClient) DeliverAs(ctx context.Context, body []byte, to, from *url.URL) error {
	if path := from.Path; path == "" || path == "/" {
		return c.Deliver(ctx, body, to)
	}

	pemKey, err := c.db.GetPrivateKeyByActorURL(ctx, from.String())
	if err != nil {
		log.Error().Str("actor", from.String()).Err(err).Msg("signing actor's private key not found")
		return err
	}
	key, err := utils.ParsePrivateKeyPem(pemKey)
	if err != nil {
		return err
	}

	signer, _, err := httpsig.NewSigner(prefs, httpsig.DigestSha256, postHeaders, httpsig.Signature, 3600)
	if err != nil {
		return err
	}

	keyId := from.ResolveReference(mainKey)
	return c.post(ctx, body, to, func(req *http.Request) error {
		return signer.SignRequest(key, keyId.String(), req, body)
	})
}

// Deliver posts a signed body to a remote inbox as the instance actor.
func (c *HttpClient) Deliver(ctx context.Context, body []byte, to *url.URL) error {
	return c.post(ctx, body, to, func(req *http.Request) error {
		c.postSignerMutex.Lock()
		defer c.postSignerMutex.Unlock()
		return c.postSigner.SignRequest(c.key, c.pubKeyId.String(), req, body)
	})
}

func (c *HttpClient) post(ctx context.Context, body []byte, to *url.URL, sign func(*http.Request) error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, to.String(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", config.ContentType)
	req.Header.Set("Date", time.Now().UTC().Format(http.TimeFormat))
	req.Header.Set("Host", req.URL.Host)

	if err := sign(req); err != nil {
		return err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", federation.ErrRemoteUnreachable, to, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		content, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		log.Error().Int("code", res.StatusCode).Bytes("response body", content).Msg("delivery error")
		return fmt.Errorf("error %d: %s", res.StatusCode, res.Status)
	}
	return nil
}
