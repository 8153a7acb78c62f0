package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/parasearch/internal/client/models"
	"github.com/dmitrijs2005/parasearch/internal/client/session"
	"github.com/dmitrijs2005/parasearch/internal/logging"
	"github.com/tidwall/gjson"
)

// DefaultBaseURL is the backend address used when none is configured.
const DefaultBaseURL = "http://localhost:8000/api/"

// Endpoint paths, relative to the base URL.
const (
	pathToken      = "token/"
	pathRegister   = "users/register/"
	pathParagraphs = "paragraphs/"
	pathSearch     = "paragraphs/search/"
)

const maxBodySize = 4 << 20

// Options configures NewHTTPClient. Store is required.
type Options struct {
	BaseURL string
	Store   session.Store
	// OnUnauthorized runs after the credential was cleared because of a 401.
	OnUnauthorized func(ctx context.Context)
	// Timeout bounds a whole request; zero means no limit.
	Timeout time.Duration
	// Transport is the underlying round tripper, http.DefaultTransport if nil.
	Transport http.RoundTripper
	Logger    logging.Logger
}

var _ Client = (*HTTPClient)(nil)

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
}

func NewHTTPClient(opts Options) (*HTTPClient, error) {
	if opts.Store == nil {
		return nil, errors.New("session store is required")
	}

	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}

	rt := opts.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	return &HTTPClient{
		baseURL: base,
		http: &http.Client{
			Timeout: opts.Timeout,
			Transport: &authTransport{
				base:           rt,
				store:          opts.Store,
				onUnauthorized: opts.OnUnauthorized,
				logger:         logger,
			},
		},
	}, nil
}

// parseBaseURL validates raw and makes sure its path ends with "/", so
// relative endpoint paths resolve beneath it.
func parseBaseURL(raw string) (*url.URL, error) {
	if strings.TrimSpace(raw) == "" {
		raw = DefaultBaseURL
	}
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: need http(s)://host", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery, u.Fragment = "", ""
	return u, nil
}

// BaseURL returns the normalised base address.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL.String()
}

func (c *HTTPClient) endpoint(p string, q url.Values) string {
	u := c.baseURL.ResolveReference(&url.URL{Path: p})
	if len(q) > 0 {
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// do sends one request and returns the body of a 2xx answer.
func (c *HTTPClient) do(ctx context.Context, method, p string, q url.Values, in any) ([]byte, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(p, q), body)
	if err != nil {
		return nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.mapError(ctx, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, data)
	}
	return data, nil
}

func (c *HTTPClient) mapError(ctx context.Context, err error) error {
	if errors.Is(err, errSession) {
		return err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

type tokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth"`
	Password    string `json:"password"`
}

type submitRequest struct {
	Content string `json:"content"`
}

func (c *HTTPClient) ObtainToken(ctx context.Context, creds models.Credentials) (string, error) {
	data, err := c.do(ctx, http.MethodPost, pathToken, nil, tokenRequest{
		Email:    creds.Email,
		Password: string(creds.Password),
	})
	if err != nil {
		return "", err
	}

	access := gjson.GetBytes(data, "access")
	if access.Type != gjson.String || access.Str == "" {
		return "", fmt.Errorf("%w: no access token in reply", ErrUnexpectedResponse)
	}
	return access.Str, nil
}

func (c *HTTPClient) Register(ctx context.Context, reg models.Registration) error {
	_, err := c.do(ctx, http.MethodPost, pathRegister, nil, registerRequest{
		Name:        reg.Name,
		Email:       reg.Email,
		DateOfBirth: reg.DateOfBirth,
		Password:    string(reg.Password),
	})
	return err
}

func (c *HTTPClient) SubmitParagraphs(ctx context.Context, content string) (string, error) {
	data, err := c.do(ctx, http.MethodPost, pathParagraphs, nil, submitRequest{Content: content})
	if err != nil {
		return "", err
	}
	return gjson.GetBytes(data, "message").String(), nil
}

func (c *HTTPClient) SearchParagraphs(ctx context.Context, word string) ([]models.Paragraph, error) {
	data, err := c.do(ctx, http.MethodGet, pathSearch, url.Values{"word": {word}}, nil)
	if err != nil {
		return nil, err
	}

	results := gjson.GetBytes(data, "results")
	if !results.IsArray() {
		return nil, fmt.Errorf("%w: no results in reply", ErrUnexpectedResponse)
	}

	out := make([]models.Paragraph, 0, len(results.Array()))
	if err := json.Unmarshal([]byte(results.Raw), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	return out, nil
}
