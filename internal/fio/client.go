// Package fio is the typed client for the game's REST companion API. It owns
// authentication, rate limiting, the on-disk response cache and the retry
// schedule; endpoint methods hand back parsed records.
package fio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"prunflow/config"
	"prunflow/logger"
)

var (
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTooManyRetries       = errors.New("too many retries")
)

// Client issues authenticated GET requests against the companion API. A nil
// record with a nil error means the upstream reported absence (204 or an
// empty document); callers branch on it instead of an error.
type Client struct {
	rest     *resty.Client
	limiter  *rate.Limiter
	cacheDir string
	cacheTTL time.Duration
	log      *logger.Entry
	expiry   *time.Time
}

func newBase(cfg *config.Config) *Client {
	rest := resty.New().
		SetBaseURL(cfg.FIO.URLRoot).
		SetHeader("Accept", "application/json")

	return &Client{
		rest:     rest,
		limiter:  rate.NewLimiter(rate.Limit(cfg.FIO.RateLimit.RequestsPerSecond), cfg.FIO.RateLimit.BurstSize),
		cacheDir: cfg.FIO.CacheDir,
		cacheTTL: cfg.FIO.CacheTTL.Std(),
		log:      logger.GetLogger().WithComponent("fio"),
	}
}

type loginRequest struct {
	UserName string `json:"UserName"`
	Password string `json:"Password"`
}

type loginResponse struct {
	AuthToken string `json:"AuthToken"`
	Expiry    string `json:"Expiry"`
}

// NewClient logs in with a username and password and returns a client bearing
// the issued token.
func NewClient(ctx context.Context, cfg *config.Config, username, password string) (*Client, error) {
	c := newBase(cfg)

	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(loginRequest{UserName: username, Password: password}).
		Post("/auth/login")
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		return nil, ErrAuthenticationFailed
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("request not successful: %d", resp.StatusCode())
	}

	login := loginResponse{}
	if err := json.Unmarshal(resp.Body(), &login); err != nil {
		return nil, fmt.Errorf("failed to parse login response: %w", err)
	}
	expiry, err := time.Parse(time.RFC3339, login.Expiry)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token expiry %q: %w", login.Expiry, err)
	}

	c.rest.SetHeader("Authorization", login.AuthToken)
	c.expiry = &expiry
	c.log.WithFields(logger.Fields{"username": username, "expiry": expiry}).Info("logged in")
	return c, nil
}

// NewClientWithToken constructs a client around an existing token. No expiry
// is known for tokens obtained out of band.
func NewClientWithToken(cfg *config.Config, token string) *Client {
	c := newBase(cfg)
	c.rest.SetHeader("Authorization", token)
	return c
}

// Expiry returns the token expiry when the client logged in itself, nil for
// direct-key clients.
func (c *Client) Expiry() *time.Time {
	return c.expiry
}

// IsAuth probes the upstream and reports whether the token is accepted.
func (c *Client) IsAuth(ctx context.Context) bool {
	resp, err := c.rest.R().SetContext(ctx).Get("/auth")
	return err == nil && resp.IsSuccess()
}

// fetch runs one GET with rate limiting and the 429 retry schedule. It
// returns the raw body; a nil body with nil error reports absence.
func (c *Client) fetch(ctx context.Context, endpoint string) ([]byte, error) {
	backoff := DefaultBackoff()
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		resp, err := c.rest.R().
			SetContext(ctx).
			SetHeader("X-Request-Id", uuid.NewString()).
			Get(endpoint)
		if err != nil {
			return nil, fmt.Errorf("request to %s failed: %w", endpoint, err)
		}

		switch {
		case resp.StatusCode() == http.StatusTooManyRequests:
			if !backoff.Active() {
				return nil, ErrTooManyRetries
			}
			logger.IncrementRetry()
			c.log.WithFields(logger.Fields{"endpoint": endpoint, "delay": backoff.Delay()}).Debug("rate limited, backing off")
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff.Delay()):
			}
			backoff = backoff.Next()

		// Absence is a 204 or an empty document on a successful status. An
		// empty body on an error status is still a failure.
		case resp.StatusCode() == http.StatusNoContent || (resp.IsSuccess() && len(resp.Body()) == 0):
			return nil, nil

		case resp.IsSuccess():
			logger.IncrementNetworkFetch(endpoint, len(resp.Body()))
			return resp.Body(), nil

		default:
			return nil, fmt.Errorf("request not successful: %d", resp.StatusCode())
		}
	}
}

// getJSON resolves an endpoint through the disk cache, decoding into out.
// The body is mirrored to disk only after it parsed successfully. The first
// return reports presence.
func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) (bool, error) {
	if cached := readCache(c.cacheDir, endpoint, c.cacheTTL); cached != nil {
		if err := json.Unmarshal(cached, out); err == nil {
			logger.IncrementCacheHit(endpoint, len(cached))
			return true, nil
		}
		// A cached body that no longer parses is refetched.
	}

	body, err := c.fetch(ctx, endpoint)
	if err != nil {
		return false, err
	}
	if body == nil {
		return false, nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		logger.IncrementParseFailure()
		return false, fmt.Errorf("failed to parse %s response: %w", endpoint, err)
	}
	if err := writeCache(c.cacheDir, endpoint, body); err != nil {
		c.log.WithError(err).WithFields(logger.Fields{"endpoint": endpoint}).Warn("failed to write cache file")
	}
	return true, nil
}
