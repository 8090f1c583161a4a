package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.BaseURL and configures
// the underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error wrapping [ErrInvalidBaseURL] if cfg.BaseURL is empty or
// cannot be parsed as a valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
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

// Register implements [ServerAdapter]. It POSTs the user to /auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.AuthResponse, error) {
	var authResponse models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&authResponse).
		Post("/auth/register")
	if err != nil {
		return models.AuthResponse{}, transportError("register", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	return authResponse, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to /auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	var authResponse models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&authResponse).
		Post("/auth/login")
	if err != nil {
		return models.AuthResponse{}, transportError("login", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	return authResponse, nil
}

// ValidateToken implements [ServerAdapter]. It POSTs an empty body to
// /auth/validate-token with token as the bearer credential.
func (h *httpServerAdapter) ValidateToken(ctx context.Context, token string) (models.TokenValidation, error) {
	var validation models.TokenValidation

	resp, err := h.authedRequest(ctx, token).
		SetResult(&validation).
		Post("/auth/validate-token")
	if err != nil {
		return models.TokenValidation{}, transportError("validate token", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenValidation{}, err
	}

	if !validation.Valid {
		validation.User = nil
	}

	return validation, nil
}

func (h *httpServerAdapter) CheckPassword(ctx context.Context, token, password string) (bool, error) {
	var checkResponse models.PasswordCheckResponse

	resp, err := h.authedRequest(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PasswordCheckRequest{Password: password}).
		SetResult(&checkResponse).
		Post("/auth/check-password")
	if err != nil {
		return false, transportError("check password", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return checkResponse.IsSame, nil
}

func (h *httpServerAdapter) GetProfile(ctx context.Context, token string) (models.UserProjection, error) {
	var user models.UserProjection

	resp, err := h.authedRequest(ctx, token).
		SetResult(&user).
		Get("/users/profile")
	if err != nil {
		return models.UserProjection{}, transportError("get profile", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProjection{}, err
	}

	return user, nil
}

func (h *httpServerAdapter) UpdateProfile(ctx context.Context, token string, update models.ProfileUpdate) (models.UserProjection, error) {
	var user models.UserProjection

	resp, err := h.authedRequest(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&user).
		Put("/auth/update-profile")
	if err != nil {
		return models.UserProjection{}, transportError("update profile", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProjection{}, err
	}

	return user, nil
}

func (h *httpServerAdapter) UploadProfilePicture(ctx context.Context, token string, upload models.Upload) (string, error) {
	var pictureResponse models.ProfilePictureResponse

	resp, err := h.authedRequest(ctx, token).
		SetMultipartField("profilePicture", upload.Name, upload.ContentType, upload.Body).
		SetResult(&pictureResponse).
		Post("/users/profile-picture")
	if err != nil {
		return "", transportError("upload profile picture", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return pictureResponse.ProfilePicture, nil
}

func (h *httpServerAdapter) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	var posts []models.Post

	req := h.client.R().SetContext(ctx).SetResult(&posts)
	if filter.Category != "" {
		req.SetQueryParam("category", filter.Category)
	}
	if filter.AuthorID != 0 {
		req.SetQueryParam("author", strconv.FormatInt(filter.AuthorID, 10))
	}
	if filter.Limit != 0 {
		req.SetQueryParam("limit", strconv.FormatUint(filter.Limit, 10))
	}

	resp, err := req.Get("/posts")
	if err != nil {
		return nil, transportError("list posts", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return posts, nil
}

func (h *httpServerAdapter) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	var post models.Post

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(postID, 10)).
		SetResult(&post).
		Get("/posts/{id}")
	if err != nil {
		return models.Post{}, transportError("get post", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

// CreatePost implements [ServerAdapter]. The post is sent as a multipart form
// so that an image can travel in the same request.
func (h *httpServerAdapter) CreatePost(ctx context.Context, token string, post models.Post, image *models.Upload) (models.Post, error) {
	var created models.Post

	req := h.authedRequest(ctx, token).
		SetMultipartFormData(map[string]string{
			"title":    post.Title,
			"category": post.Category,
			"content":  post.Content,
		}).
		SetResult(&created)
	withImage(req, image)

	resp, err := req.Post("/posts")
	if err != nil {
		return models.Post{}, transportError("create post", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return created, nil
}

// UpdatePost implements [ServerAdapter]. Only the non-nil fields of update
// become form fields.
func (h *httpServerAdapter) UpdatePost(ctx context.Context, token string, update models.PostUpdate, image *models.Upload) (models.Post, error) {
	var updated models.Post

	fields := make(map[string]string)
	if update.Title != nil {
		fields["title"] = *update.Title
	}
	if update.Category != nil {
		fields["category"] = *update.Category
	}
	if update.Content != nil {
		fields["content"] = *update.Content
	}

	req := h.authedRequest(ctx, token).
		SetPathParam("id", strconv.FormatInt(update.PostID, 10)).
		SetMultipartFormData(fields).
		SetResult(&updated)
	withImage(req, image)

	resp, err := req.Put("/posts/{id}")
	if err != nil {
		return models.Post{}, transportError("update post", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return updated, nil
}

func (h *httpServerAdapter) GetVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", transportError("get version", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context, token string) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func withImage(req *resty.Request, image *models.Upload) {
	if image == nil {
		return
	}
	req.SetMultipartField("image", image.Name, image.ContentType, image.Body)
}

func transportError(op string, err error) error {
	return fmt.Errorf("%w: %s request: %w", ErrTransport, op, err)
}
