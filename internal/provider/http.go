package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/readsync/internal/config"
	"github.com/MKhiriev/readsync/internal/logger"
	"github.com/MKhiriev/readsync/internal/utils"
	"github.com/MKhiriev/readsync/models"
)

// HTTPProvider talks to a readsync blob server. It logs in with the
// configured account and password, keeps the issued bearer token and logs
// in again once when the server rejects it.
type HTTPProvider struct {
	client *utils.HTTPClient
	cfg    config.ClientProvider
	closed atomic.Bool

	mu    sync.Mutex
	token string

	logger *logger.Logger
}

// NewHTTPProvider validates the server address and configures the client.
func NewHTTPProvider(cfg config.ClientProvider, logger *logger.Logger) (*HTTPProvider, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid provider http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &HTTPProvider{client: client, cfg: cfg, logger: logger}, nil
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

// Register creates the configured account on the server and keeps the
// token it returns. An existing account fails with [ErrAccountExists].
func (h *HTTPProvider) Register(ctx context.Context) error {
	const op = "register"

	token, err := h.authenticate(ctx, op, "/api/user/register")
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.token = token
	h.mu.Unlock()

	h.logger.Info().Str("account", h.cfg.Account).Msg("account registered on blob server")
	return nil
}

func (h *HTTPProvider) Upload(ctx context.Context, blob models.EncryptedBlob) (models.UploadResult, error) {
	const op = "upload"
	var result models.UploadResult

	_, err := h.do(ctx, op, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetHeader("Content-Type", "application/json").
			SetBody(blob).
			SetResult(&result).
			Put("/api/state")
	})
	if err != nil {
		return models.UploadResult{}, err
	}

	result.Success = true
	return result, nil
}

func (h *HTTPProvider) Download(ctx context.Context) (*models.EncryptedBlob, error) {
	const op = "download"

	resp, err := h.do(ctx, op, func(req *resty.Request) (*resty.Response, error) {
		return req.Get("/api/state")
	})
	if IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var blob models.EncryptedBlob
	if err = json.Unmarshal(resp.Body(), &blob); err != nil {
		return nil, newError(op, KindOther, fmt.Errorf("decode blob: %w", err))
	}
	return &blob, nil
}

func (h *HTTPProvider) GetRemoteMetadata(ctx context.Context) (models.RemoteMetadata, error) {
	const op = "metadata"
	var meta models.RemoteMetadata

	_, err := h.do(ctx, op, func(req *resty.Request) (*resty.Response, error) {
		return req.SetResult(&meta).Get("/api/state/meta")
	})
	if err != nil {
		return models.RemoteMetadata{}, err
	}
	return meta, nil
}

// IsConnected pings the version endpoint.
func (h *HTTPProvider) IsConnected(ctx context.Context) bool {
	if h.closed.Load() {
		return false
	}
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	return h.mapResponse("ping", resp, err) == nil
}

func (h *HTTPProvider) Disconnect(ctx context.Context) error {
	h.closed.Store(true)

	h.mu.Lock()
	h.token = ""
	h.mu.Unlock()
	return nil
}

func (h *HTTPProvider) EnsureContentFolder(ctx context.Context) error {
	_, err := h.do(ctx, "ensure content folder", func(req *resty.Request) (*resty.Response, error) {
		return req.Post("/api/content/")
	})
	return err
}

func (h *HTTPProvider) ListContentFiles(ctx context.Context) ([]string, error) {
	var list models.ContentList

	_, err := h.do(ctx, "list content", func(req *resty.Request) (*resty.Response, error) {
		return req.SetResult(&list).Get("/api/content/")
	})
	if err != nil {
		return nil, err
	}
	if list.Files == nil {
		return []string{}, nil
	}
	return list.Files, nil
}

func (h *HTTPProvider) UploadContentFile(ctx context.Context, name string, data []byte) error {
	_, err := h.do(ctx, "upload content", func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetHeader("Content-Type", "application/octet-stream").
			SetBody(data).
			Put(contentURL(name))
	})
	return err
}

func (h *HTTPProvider) DownloadContentFile(ctx context.Context, name string) ([]byte, error) {
	resp, err := h.do(ctx, "download content", func(req *resty.Request) (*resty.Response, error) {
		return req.Get(contentURL(name))
	})
	if IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

func (h *HTTPProvider) DeleteContentFile(ctx context.Context, name string) (bool, error) {
	_, err := h.do(ctx, "delete content", func(req *resty.Request) (*resty.Response, error) {
		return req.Delete(contentURL(name))
	})
	if IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// do sends an authorised request built by send. A 401 drops the cached
// token and the request is repeated once with a fresh login.
func (h *HTTPProvider) do(ctx context.Context, op string, send func(req *resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	if h.closed.Load() {
		return nil, newError(op, KindAborted, ErrDisconnected)
	}
	if err := ctx.Err(); err != nil {
		return nil, newError(op, KindAborted, err)
	}

	token, err := h.currentToken(ctx, op)
	if err != nil {
		return nil, err
	}

	resp, err := send(h.authorised(ctx, token))
	if err == nil && resp.StatusCode() == http.StatusUnauthorized {
		h.dropToken(token)
		h.logger.Debug().Str("op", op).Msg("bearer token rejected, logging in again")

		if token, err = h.currentToken(ctx, op); err != nil {
			return nil, err
		}
		resp, err = send(h.authorised(ctx, token))
	}

	return resp, h.mapResponse(op, resp, err)
}

func (h *HTTPProvider) authorised(ctx context.Context, token string) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token)
}

// currentToken returns the cached token, logging in when there is none.
func (h *HTTPProvider) currentToken(ctx context.Context, op string) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.token != "" {
		return h.token, nil
	}

	token, err := h.authenticate(ctx, op, "/api/user/login")
	if err != nil {
		return "", err
	}
	h.token = token
	return token, nil
}

// dropToken forgets token unless another request already replaced it.
func (h *HTTPProvider) dropToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.token == token {
		h.token = ""
	}
}

// authenticate posts the configured credentials to path and returns the
// bearer token from the Authorization response header.
func (h *HTTPProvider) authenticate(ctx context.Context, op, path string) (string, error) {
	if h.closed.Load() {
		return "", newError(op, KindAborted, ErrDisconnected)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.Credentials{Account: h.cfg.Account, Password: h.cfg.Password}).
		Post(path)
	if err == nil && resp.StatusCode() == http.StatusConflict {
		return "", newError(op, KindOther, ErrAccountExists)
	}
	if err = h.mapResponse(op, resp, err); err != nil {
		return "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", newError(op, KindOther, fmt.Errorf("read issued token: %w", err))
	}
	return token, nil
}

// mapResponse turns a transport error or a non-2xx status into an *Error.
func (h *HTTPProvider) mapResponse(op string, resp *resty.Response, err error) error {
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return newError(op, KindAborted, err)
		}
		return newError(op, KindOther, fmt.Errorf("%s request: %w", op, err))
	}

	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(status)
	}
	cause := fmt.Errorf("http %d: %s", status, body)

	switch status {
	case http.StatusNotFound:
		return newError(op, KindNotFound, cause)
	case http.StatusUnauthorized, http.StatusForbidden:
		return newError(op, KindPermissionDenied, cause)
	default:
		h.logger.Warn().
			Str("func", "HTTPProvider").
			Str("op", op).
			Int("status", status).
			Msg("blob server returned an error")
		return newError(op, KindOther, cause)
	}
}

func contentURL(name string) string {
	return "/api/content/" + url.PathEscape(name)
}
