package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/parasearch/internal/client/session"
	"github.com/dmitrijs2005/parasearch/internal/common"
	"github.com/dmitrijs2005/parasearch/internal/logging"
	"github.com/google/uuid"
)

// authTransport is the request/response stage around every API call.
type authTransport struct {
	base           http.RoundTripper
	store          session.Store
	onUnauthorized func(ctx context.Context)
	logger         logging.Logger
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	token, found, err := t.store.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errSession, err)
	}

	// a RoundTripper must not modify the caller's request
	r := req.Clone(ctx)
	if found {
		r.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
	}
	reqID := uuid.NewString()
	r.Header.Set(common.RequestIDHeaderName, reqID)
	if r.Header.Get("Accept") == "" {
		r.Header.Set("Accept", "application/json")
	}

	log := t.logger.With("request_id", reqID, "method", r.Method, "path", r.URL.Path)

	resp, err := t.base.RoundTrip(r)
	if err != nil {
		log.Debug(ctx, "request failed", "error", err)
		return nil, err
	}
	log.Debug(ctx, "request done", "status", resp.StatusCode, "authorized", found)

	if resp.StatusCode == http.StatusUnauthorized {
		log.Warn(ctx, "unauthorized, dropping session")
		if err := t.store.Clear(ctx); err != nil {
			log.Error(ctx, "failed to clear session", "error", err)
		}
		if t.onUnauthorized != nil {
			t.onUnauthorized(ctx)
		}
	}

	return resp, nil
}
