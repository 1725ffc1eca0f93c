package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/utils"
	"github.com/MKhiriev/go-job-tracker/models"
)

type httpAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAdapter constructs the HTTP implementation of [API]. address may be
// a full URL or a bare "host:port", in which case http:// is assumed.
//
// Returns [ErrInvalidAddress] when address is empty or has no host.
func NewHTTPAdapter(address string, timeout time.Duration, logger *logger.Logger) (API, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// request starts a JSON request bound to ctx, carrying the stored token.
func (h *httpAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// do sends req and maps a non-2xx answer to a sentinel error.
func (h *httpAdapter) do(req *resty.Request, method, path string) (*resty.Response, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%s %s request: %w", method, path, err)
	}

	h.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Send()

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Register implements [API]. It posts to /api/auth/register and stores the
// token of the new account.
func (h *httpAdapter) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	return h.authenticate(ctx, "/api/auth/register", req)
}

// Login implements [API]. It posts to /api/auth/login and stores the token.
func (h *httpAdapter) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	return h.authenticate(ctx, "/api/auth/login", req)
}

func (h *httpAdapter) authenticate(ctx context.Context, path string, body any) (string, error) {
	var result models.TokenResponse

	if _, err := h.do(h.request(ctx).SetBody(body).SetResult(&result), resty.MethodPost, path); err != nil {
		return "", err
	}
	if result.Token == "" {
		return "", fmt.Errorf("%s: %w", path, utils.ErrEmptyBearerToken)
	}

	h.SetToken(result.Token)
	return result.Token, nil
}

func (h *httpAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User
	if _, err := h.do(h.request(ctx).SetResult(&user), resty.MethodGet, "/api/auth/me"); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (h *httpAdapter) CreateJob(ctx context.Context, req models.JobRequest) (models.JobApplication, error) {
	var job models.JobApplication
	if _, err := h.do(h.request(ctx).SetBody(req).SetResult(&job), resty.MethodPost, "/api/jobs"); err != nil {
		return models.JobApplication{}, err
	}
	return job, nil
}

func (h *httpAdapter) ListJobs(ctx context.Context) ([]models.JobApplication, error) {
	jobs := []models.JobApplication{}
	if _, err := h.do(h.request(ctx).SetResult(&jobs), resty.MethodGet, "/api/jobs"); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (h *httpAdapter) GetJob(ctx context.Context, id string) (models.JobApplication, error) {
	var job models.JobApplication
	if _, err := h.do(h.request(ctx).SetResult(&job), resty.MethodGet, jobPath(id)); err != nil {
		return models.JobApplication{}, err
	}
	return job, nil
}

func (h *httpAdapter) UpdateJob(ctx context.Context, id string, req models.JobRequest) (models.JobApplication, error) {
	var job models.JobApplication
	if _, err := h.do(h.request(ctx).SetBody(req).SetResult(&job), resty.MethodPut, jobPath(id)); err != nil {
		return models.JobApplication{}, err
	}
	return job, nil
}

func (h *httpAdapter) DeleteJob(ctx context.Context, id string) (string, error) {
	var msg models.MessageResponse
	if _, err := h.do(h.request(ctx).SetResult(&msg), resty.MethodDelete, jobPath(id)); err != nil {
		return "", err
	}
	return msg.Message, nil
}

func (h *httpAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.do(h.client.R().SetContext(ctx), resty.MethodGet, "/api/version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func jobPath(id string) string {
	return "/api/jobs/" + url.PathEscape(id)
}
