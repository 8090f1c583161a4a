package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/mock"
	"github.com/MKhiriev/go-blog/internal/session"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── helpers ───────────────────────────────────────────────────────────────────

type kvStore struct {
	mu   sync.Mutex
	data map[string]string
}

func (s *kvStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return "", store.ErrKeyNotFound
	}
	return v, nil
}

func (s *kvStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *kvStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.data, k)
	}
	return nil
}

var alice = models.UserProjection{ID: 1, Username: "alice", Email: "alice@example.com", FirstName: "Alice"}

// newClientFixture returns client services over a mocked adapter and a real
// session holder. A non-empty token starts the session signed in as alice.
func newClientFixture(t *testing.T, token string) (*ClientServices, *mock.MockServerAdapter, *session.Holder) {
	t.Helper()
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)

	kv := &kvStore{data: map[string]string{}}
	if token != "" {
		kv.data[session.KeyToken] = token
		kv.data[session.KeyUser] = `{"id":1,"username":"alice","email":"alice@example.com","firstName":"Alice"}`
	}

	holder, err := session.New(context.Background(), kv, serverAdapter, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(holder.Close)

	return NewClientServices(serverAdapter, holder, logger.Nop()), serverAdapter, holder
}

func rejected(msg string) error {
	return fmt.Errorf("%w: %s", adapter.ErrUnauthorized, msg)
}

// ── error mapping ─────────────────────────────────────────────────────────────

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"invalid credentials", rejected(app.MsgInvalidCredentials), ErrInvalidCredentials},
		{"bad token", rejected(app.MsgTokenIsExpiredOrInvalid), ErrTokenIsExpiredOrInvalid},
		{"validation", fmt.Errorf("%w: %s", adapter.ErrBadRequest, validators.ErrInvalidEmail), validators.ErrInvalidEmail},
		{"bad json", fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgInvalidJSON), ErrInvalidDataProvided},
		{"forbidden", fmt.Errorf("%w: %s", adapter.ErrForbidden, app.MsgForbidden), ErrForbidden},
		{"post not found", fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgPostNotFound), store.ErrPostNotFound},
		{"user not found", fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgUserNotFound), store.ErrUserNotFound},
		{"username taken", fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgUsernameTaken), store.ErrUsernameTaken},
		{"email taken", fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgEmailTaken), store.ErrEmailTaken},
		{"too big", fmt.Errorf("%w: http 413: %s", adapter.ErrUnexpectedStatus, app.MsgUploadTooBig), ErrUploadTooBig},
		{"not an image", fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgNotAnImage), ErrNotAnImage},
		{"transport", fmt.Errorf("%w: login request: %w", adapter.ErrTransport, errors.New("connection refused")), ErrServerUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapAdapterError(tt.in)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, tt.in)
		})
	}
}

func TestMapAdapterError_KeepsUnknownErrors(t *testing.T) {
	assert.NoError(t, mapAdapterError(nil))

	in := fmt.Errorf("%w: boom", adapter.ErrInternalServerError)
	assert.Equal(t, in, mapAdapterError(in))
}

func TestMapAdapterError_OnlyUnauthorizedIsAuthRejection(t *testing.T) {
	assert.True(t, adapter.IsAuthRejected(mapAdapterError(rejected(app.MsgTokenIsExpiredOrInvalid))))
	assert.False(t, adapter.IsAuthRejected(mapAdapterError(fmt.Errorf("%w: x", adapter.ErrForbidden))))
	assert.False(t, adapter.IsAuthRejected(mapAdapterError(fmt.Errorf("%w: x", adapter.ErrTransport))))
}

// ── auth ──────────────────────────────────────────────────────────────────────

func TestClientAuthService_Register(t *testing.T) {
	svc, serverAdapter, holder := newClientFixture(t, "")
	ctx := context.Background()

	user := models.User{Username: "alice", Email: "alice@example.com", Password: "secret", FirstName: "Alice"}
	serverAdapter.EXPECT().Register(ctx, user).Return(models.AuthResponse{Token: "abc", User: alice}, nil)

	got, err := svc.AuthService.Register(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, alice, got)
	assert.Equal(t, "abc", holder.Token())
	assert.True(t, holder.Snapshot().Authenticated)
	assert.Equal(t, "alice", holder.Snapshot().Username())
}

func TestClientAuthService_Register_InvalidInputNeverReachesServer(t *testing.T) {
	svc, _, holder := newClientFixture(t, "")

	_, err := svc.AuthService.Register(context.Background(), models.User{Username: "al", Email: "x@y.z", Password: "p"})
	assert.ErrorIs(t, err, validators.ErrValidation)
	assert.False(t, holder.Snapshot().Authenticated)
}

func TestClientAuthService_Register_Conflict(t *testing.T) {
	svc, serverAdapter, holder := newClientFixture(t, "")
	ctx := context.Background()

	serverAdapter.EXPECT().Register(ctx, gomock.Any()).
		Return(models.AuthResponse{}, fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgEmailTaken))

	_, err := svc.AuthService.Register(ctx, models.User{Username: "alice", Email: "alice@example.com", Password: "secret", FirstName: "Alice"})
	assert.ErrorIs(t, err, store.ErrEmailTaken)
	assert.False(t, holder.Snapshot().Authenticated)
}

func TestClientAuthService_Login(t *testing.T) {
	ctx := context.Background()
	credentials := models.Credentials{Identity: "alice", Password: "secret"}

	t.Run("success", func(t *testing.T) {
		svc, serverAdapter, holder := newClientFixture(t, "")
		serverAdapter.EXPECT().Login(ctx, credentials).Return(models.AuthResponse{Token: "abc", User: alice}, nil)

		got, err := svc.AuthService.Login(ctx, credentials)
		require.NoError(t, err)
		assert.Equal(t, alice, got)
		assert.Equal(t, "abc", holder.Token())
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, serverAdapter, holder := newClientFixture(t, "")
		serverAdapter.EXPECT().Login(ctx, credentials).Return(models.AuthResponse{}, rejected(app.MsgInvalidCredentials))

		_, err := svc.AuthService.Login(ctx, credentials)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.False(t, holder.Snapshot().Authenticated)
	})

	t.Run("server down", func(t *testing.T) {
		svc, serverAdapter, _ := newClientFixture(t, "")
		serverAdapter.EXPECT().Login(ctx, credentials).
			Return(models.AuthResponse{}, fmt.Errorf("%w: login request: refused", adapter.ErrTransport))

		_, err := svc.AuthService.Login(ctx, credentials)
		assert.ErrorIs(t, err, ErrServerUnavailable)
	})

	t.Run("empty identity", func(t *testing.T) {
		svc, _, _ := newClientFixture(t, "")
		_, err := svc.AuthService.Login(ctx, models.Credentials{Password: "secret"})
		assert.ErrorIs(t, err, validators.ErrEmptyIdentity)
	})
}

func TestClientAuthService_Logout(t *testing.T) {
	svc, _, holder := newClientFixture(t, "abc")
	require.True(t, holder.Snapshot().Authenticated)

	require.NoError(t, svc.AuthService.Logout(context.Background()))
	assert.False(t, holder.Snapshot().Authenticated)
	assert.Empty(t, holder.Token())

	require.NoError(t, svc.AuthService.Logout(context.Background()))
}

// ── profile ───────────────────────────────────────────────────────────────────

func TestClientProfileService_RequiresSession(t *testing.T) {
	svc, _, _ := newClientFixture(t, "")
	ctx := context.Background()

	_, err := svc.ProfileService.GetProfile(ctx)
	assert.ErrorIs(t, err, ErrNotAuthorized)
	_, err = svc.ProfileService.UpdateProfile(ctx, models.ProfileUpdate{FirstName: ptr("A")})
	assert.ErrorIs(t, err, ErrNotAuthorized)
	_, err = svc.ProfileService.UploadProfilePicture(ctx, models.Upload{Body: bytes.NewReader(nil)})
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestClientProfileService_GetProfile_RefreshesCachedUser(t *testing.T) {
	svc, serverAdapter, holder := newClientFixture(t, "abc")
	ctx := context.Background()

	fresh := alice
	fresh.FirstName = "Alicia"
	serverAdapter.EXPECT().GetProfile(ctx, "abc").Return(fresh, nil)

	got, err := svc.ProfileService.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", got.FirstName)
	assert.Equal(t, "Alicia", holder.Snapshot().User.FirstName)
}

func TestClientProfileService_GetProfile_RejectionLogsOut(t *testing.T) {
	svc, serverAdapter, holder := newClientFixture(t, "expired")
	ctx := context.Background()

	serverAdapter.EXPECT().GetProfile(ctx, "expired").Return(models.UserProjection{}, rejected(app.MsgTokenIsExpiredOrInvalid))

	_, err := svc.ProfileService.GetProfile(ctx)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	assert.False(t, holder.Snapshot().Authenticated)
	assert.Empty(t, holder.Token())
}

func TestClientProfileService_GetProfile_TransportErrorKeepsSession(t *testing.T) {
	svc, serverAdapter, holder := newClientFixture(t, "abc")
	ctx := context.Background()

	serverAdapter.EXPECT().GetProfile(ctx, "abc").
		Return(models.UserProjection{}, fmt.Errorf("%w: get profile request: timeout", adapter.ErrTransport))

	_, err := svc.ProfileService.GetProfile(ctx)
	assert.ErrorIs(t, err, ErrServerUnavailable)
	assert.True(t, holder.Snapshot().Authenticated)
	assert.Equal(t, "abc", holder.Token())
}

func TestClientProfileService_UpdateProfile_SamePassword(t *testing.T) {
	svc, serverAdapter, _ := newClientFixture(t, "abc")
	ctx := context.Background()

	serverAdapter.EXPECT().CheckPassword(ctx, "abc", "secret").Return(true, nil)

	_, err := svc.ProfileService.UpdateProfile(ctx, models.ProfileUpdate{NewPassword: ptr("secret")})
	assert.ErrorIs(t, err, ErrSamePassword)
	assert.ErrorIs(t, err, validators.ErrValidation)
}

func TestClientProfileService_UpdateProfile_NewPassword(t *testing.T) {
	svc, serverAdapter, holder := newClientFixture(t, "abc")
	ctx := context.Background()

	update := models.ProfileUpdate{NewPassword: ptr("n3w-secret"), LastName: ptr("Liddell")}
	updated := alice
	updated.LastName = "Liddell"

	gomock.InOrder(
		serverAdapter.EXPECT().CheckPassword(ctx, "abc", "n3w-secret").Return(false, nil),
		serverAdapter.EXPECT().UpdateProfile(ctx, "abc", update).Return(updated, nil),
	)

	got, err := svc.ProfileService.UpdateProfile(ctx, update)
	require.NoError(t, err)
	assert.Equal(t, "Liddell", got.LastName)
	assert.Equal(t, "Liddell", holder.Snapshot().User.LastName)
}

func TestClientProfileService_UpdateProfile_InvalidEmail(t *testing.T) {
	svc, _, _ := newClientFixture(t, "abc")

	_, err := svc.ProfileService.UpdateProfile(context.Background(), models.ProfileUpdate{Email: ptr("not-an-email")})
	assert.ErrorIs(t, err, validators.ErrInvalidEmail)
}

func TestClientProfileService_UploadProfilePicture(t *testing.T) {
	svc, serverAdapter, holder := newClientFixture(t, "abc")
	ctx := context.Background()

	upload := models.Upload{Name: "me.png", ContentType: "image/png", Size: 3, Body: bytes.NewReader([]byte{1, 2, 3})}
	serverAdapter.EXPECT().UploadProfilePicture(ctx, "abc", upload).Return("/uploads/x.png", nil)

	path, err := svc.ProfileService.UploadProfilePicture(ctx, upload)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/x.png", path)
	assert.Equal(t, "/uploads/x.png", holder.Snapshot().User.ProfilePicture)

	_, err = svc.ProfileService.UploadProfilePicture(ctx, models.Upload{})
	assert.ErrorIs(t, err, ErrNoFileUpload)
}

// ── posts ─────────────────────────────────────────────────────────────────────

func TestClientPostService_ListAndGet(t *testing.T) {
	svc, serverAdapter, _ := newClientFixture(t, "")
	ctx := context.Background()

	filter := models.PostFilter{Category: "go", Limit: 10}
	serverAdapter.EXPECT().ListPosts(ctx, filter).Return([]models.Post{{PostID: 1}, {PostID: 2}}, nil)
	serverAdapter.EXPECT().GetPost(ctx, int64(9)).
		Return(models.Post{}, fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgPostNotFound))

	posts, err := svc.PostService.ListPosts(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	_, err = svc.PostService.GetPost(ctx, 9)
	assert.ErrorIs(t, err, store.ErrPostNotFound)
}

func TestClientPostService_CreatePost(t *testing.T) {
	ctx := context.Background()
	post := models.Post{Title: "Hello", Content: "World", Category: "go"}

	t.Run("not signed in", func(t *testing.T) {
		svc, _, _ := newClientFixture(t, "")
		_, err := svc.PostService.CreatePost(ctx, post, nil)
		assert.ErrorIs(t, err, ErrNotAuthorized)
	})

	t.Run("invalid", func(t *testing.T) {
		svc, _, _ := newClientFixture(t, "abc")
		_, err := svc.PostService.CreatePost(ctx, models.Post{Content: "x"}, nil)
		assert.ErrorIs(t, err, validators.ErrEmptyTitle)
	})

	t.Run("success", func(t *testing.T) {
		svc, serverAdapter, _ := newClientFixture(t, "abc")
		serverAdapter.EXPECT().CreatePost(ctx, "abc", post, (*models.Upload)(nil)).
			Return(models.Post{PostID: 5, Title: "Hello"}, nil)

		created, err := svc.PostService.CreatePost(ctx, post, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(5), created.PostID)
	})
}

func TestClientPostService_UpdatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("image only", func(t *testing.T) {
		svc, serverAdapter, _ := newClientFixture(t, "abc")
		update := models.PostUpdate{PostID: 3}
		image := &models.Upload{Name: "a.png", ContentType: "image/png", Body: bytes.NewReader([]byte{1})}
		serverAdapter.EXPECT().UpdatePost(ctx, "abc", update, image).Return(models.Post{PostID: 3}, nil)

		_, err := svc.PostService.UpdatePost(ctx, update, image)
		require.NoError(t, err)
	})

	t.Run("empty update", func(t *testing.T) {
		svc, _, _ := newClientFixture(t, "abc")
		_, err := svc.PostService.UpdatePost(ctx, models.PostUpdate{PostID: 3}, nil)
		assert.ErrorIs(t, err, validators.ErrNoFieldsToUpdate)
	})

	t.Run("forbidden keeps session", func(t *testing.T) {
		svc, serverAdapter, holder := newClientFixture(t, "abc")
		update := models.PostUpdate{PostID: 3, Title: ptr("New")}
		serverAdapter.EXPECT().UpdatePost(ctx, "abc", update, (*models.Upload)(nil)).
			Return(models.Post{}, fmt.Errorf("%w: %s", adapter.ErrForbidden, app.MsgForbidden))

		_, err := svc.PostService.UpdatePost(ctx, update, nil)
		assert.ErrorIs(t, err, ErrForbidden)
		assert.True(t, holder.Snapshot().Authenticated)
	})

	t.Run("rejected token logs out", func(t *testing.T) {
		svc, serverAdapter, holder := newClientFixture(t, "abc")
		update := models.PostUpdate{PostID: 3, Title: ptr("New")}
		serverAdapter.EXPECT().UpdatePost(ctx, "abc", update, (*models.Upload)(nil)).
			Return(models.Post{}, rejected(app.MsgTokenIsExpiredOrInvalid))

		_, err := svc.PostService.UpdatePost(ctx, update, nil)
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		assert.False(t, holder.Snapshot().Authenticated)
	})
}

func TestClientPostService_CanEdit(t *testing.T) {
	own := models.Post{Author: models.PostAuthor{ID: 1, Username: "alice"}}
	other := models.Post{Author: models.PostAuthor{ID: 2, Username: "bob"}}

	anonymous, _, _ := newClientFixture(t, "")
	assert.False(t, anonymous.PostService.CanEdit(own))

	signedIn, _, holder := newClientFixture(t, "abc")
	assert.True(t, signedIn.PostService.CanEdit(own))
	assert.False(t, signedIn.PostService.CanEdit(other))

	admin := alice
	admin.Role = models.RoleAdmin
	require.NoError(t, holder.UpdateUser(context.Background(), admin))
	assert.True(t, signedIn.PostService.CanEdit(other))
}

// ── app info ──────────────────────────────────────────────────────────────────

func TestClientAppInfoService_GetServerVersion(t *testing.T) {
	svc, serverAdapter, _ := newClientFixture(t, "")
	ctx := context.Background()

	serverAdapter.EXPECT().GetVersion(ctx).Return("1.0.0", nil)
	version, err := svc.AppInfoService.GetServerVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", version)

	serverAdapter.EXPECT().GetVersion(ctx).Return("", fmt.Errorf("%w: version request: refused", adapter.ErrTransport))
	_, err = svc.AppInfoService.GetServerVersion(ctx)
	assert.ErrorIs(t, err, ErrServerUnavailable)
}
