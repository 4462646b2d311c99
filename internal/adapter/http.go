package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/smoke-stack/internal/config"
	"github.com/MKhiriev/smoke-stack/internal/logger"
	"github.com/MKhiriev/smoke-stack/internal/utils"
	"github.com/MKhiriev/smoke-stack/models"
)

const (
	strainsPath = "/api/strains"
	healthPath  = "/health"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter builds a resty-backed [ServerAdapter] for the API at
// cfg.HTTPAddress. A bare host:port gets the http scheme.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if strings.HasPrefix(raw, ":") {
		raw = "localhost" + raw
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

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) ListStrains(ctx context.Context) ([]models.Strain, error) {
	resp, err := h.request(ctx).Get(strainsPath)
	if err != nil {
		return nil, h.unavailable("list strains", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	strains := make([]models.Strain, 0)
	if err = json.Unmarshal(resp.Body(), &strains); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	return strains, nil
}

func (h *httpServerAdapter) GetStrain(ctx context.Context, id string) (models.Strain, error) {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		Get(strainsPath + "/{id}")
	if err != nil {
		return models.Strain{}, h.unavailable("get strain", err)
	}
	return decodeStrain(resp)
}

func (h *httpServerAdapter) CreateStrain(ctx context.Context, in models.StrainInput) (models.Strain, error) {
	resp, err := h.request(ctx).
		SetBody(in).
		Post(strainsPath)
	if err != nil {
		return models.Strain{}, h.unavailable("create strain", err)
	}
	return decodeStrain(resp)
}

func (h *httpServerAdapter) UpdateStrain(ctx context.Context, id string, in models.StrainInput) (models.Strain, error) {
	// the id of an update is taken from the path only
	in.ID = ""

	resp, err := h.request(ctx).
		SetPathParam("id", id).
		SetBody(in).
		Put(strainsPath + "/{id}")
	if err != nil {
		return models.Strain{}, h.unavailable("update strain", err)
	}
	return decodeStrain(resp)
}

func (h *httpServerAdapter) DeleteStrain(ctx context.Context, id string) error {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		Delete(strainsPath + "/{id}")
	if err != nil {
		return h.unavailable("delete strain", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	resp, err := h.request(ctx).Get(healthPath)
	if err != nil {
		return models.HealthResponse{}, h.unavailable("health", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	var health models.HealthResponse
	if err = json.Unmarshal(resp.Body(), &health); err != nil {
		return models.HealthResponse{}, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	return health, nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (h *httpServerAdapter) unavailable(op string, err error) error {
	h.logger.Debug().Err(err).Str("func", "*httpServerAdapter."+op).Msg("server request failed")
	return fmt.Errorf("%w: %s request: %w", ErrServerUnavailable, op, err)
}

func decodeStrain(resp *resty.Response) (models.Strain, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Strain{}, err
	}

	var strain models.Strain
	if err := json.Unmarshal(resp.Body(), &strain); err != nil {
		return models.Strain{}, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	return strain, nil
}
