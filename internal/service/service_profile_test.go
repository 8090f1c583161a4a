package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/mock"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestProfileService(ctrl *gomock.Controller, maxUpload int64) (ProfileService, *mock.MockUserRepository, *mock.MockObjectStorage) {
	users := mock.NewMockUserRepository(ctrl)
	objects := mock.NewMockObjectStorage(ctrl)
	cfg := config.StructuredConfig{App: testAppConfig, Server: config.Server{MaxUploadSize: maxUpload}}

	return NewProfileService(users, objects, validators.NewValidator(), cfg, logger.Nop()), users, objects
}

func ptr(s string) *string { return &s }

func pngUpload(size int64) models.Upload {
	return models.Upload{Name: "Me.PNG", ContentType: "image/png", Size: size, Body: strings.NewReader("png")}
}

func TestProfileService_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestProfileService(ctrl, 0)

	users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(models.User{UserID: 1, Username: "alice", PasswordHash: "h"}, nil)
	users.EXPECT().FindUserByID(gomock.Any(), int64(2)).Return(models.User{}, store.ErrUserNotFound)

	got, err := svc.GetProfile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.UserProjection{ID: 1, Username: "alice"}, got)

	_, err = svc.GetProfile(context.Background(), 2)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestProfileService_UpdateProfile_HashesNewPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestProfileService(ctrl, 0)

	users.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, update models.ProfileUpdate) (models.User, error) {
			assert.Nil(t, update.NewPassword)
			require.NotNil(t, update.PasswordHash())
			require.NoError(t, utils.ComparePassword(*update.PasswordHash(), "N3w!pass"))
			return models.User{UserID: update.UserID, FirstName: *update.FirstName}, nil
		},
	)

	got, err := svc.UpdateProfile(context.Background(), models.ProfileUpdate{
		UserID:      1,
		FirstName:   ptr("Alice"),
		NewPassword: ptr("N3w!pass"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Alice", got.FirstName)
}

func TestProfileService_UpdateProfile_EmptyEmailNeverReachesStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestProfileService(ctrl, 0)

	_, err := svc.UpdateProfile(context.Background(), models.ProfileUpdate{UserID: 1, Email: ptr("")})

	assert.ErrorIs(t, err, validators.ErrEmptyEmail)
}

func TestProfileService_UpdateProfile_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestProfileService(ctrl, 0)

	users.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailTaken)

	_, err := svc.UpdateProfile(context.Background(), models.ProfileUpdate{UserID: 1, Email: ptr("bob@example.com")})

	assert.ErrorIs(t, err, store.ErrEmailTaken)
}

func TestProfileService_UploadProfilePicture_ReplacesOld(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, objects := newTestProfileService(ctrl, 1024)

	gomock.InOrder(
		users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(models.User{UserID: 1, ProfilePicture: "/uploads/old.png"}, nil),
		objects.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), int64(3), "image/png").DoAndReturn(
			func(_ context.Context, name string, _ io.Reader, _ int64, _ string) (string, error) {
				assert.True(t, strings.HasSuffix(name, ".png"))
				return store.ObjectPath(name), nil
			},
		),
		users.EXPECT().SetProfilePicture(gomock.Any(), int64(1), gomock.Any()).Return(models.User{}, nil),
		objects.EXPECT().Delete(gomock.Any(), "old.png").Return(nil),
	)

	path, err := svc.UploadProfilePicture(context.Background(), 1, pngUpload(3))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, store.UploadsPrefix))
}

func TestProfileService_UploadProfilePicture_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		upload  models.Upload
		wantErr error
	}{
		{"no file", models.Upload{}, ErrNoFileUpload},
		{"not an image", models.Upload{Name: "a.txt", ContentType: "text/plain", Size: 3, Body: strings.NewReader("abc")}, ErrNotAnImage},
		{"too big", pngUpload(2048), ErrUploadTooBig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, users, _ := newTestProfileService(ctrl, 1024)
			users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(models.User{UserID: 1}, nil)

			_, err := svc.UploadProfilePicture(context.Background(), 1, tt.upload)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProfileService_UploadProfilePicture_SaveFailureRemovesObject(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, objects := newTestProfileService(ctrl, 0)

	users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(models.User{UserID: 1}, nil)
	objects.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("/uploads/new.png", nil)
	users.EXPECT().SetProfilePicture(gomock.Any(), int64(1), "/uploads/new.png").Return(models.User{}, store.ErrExecutingQuery)
	objects.EXPECT().Delete(gomock.Any(), "new.png").Return(errors.New("already gone"))

	_, err := svc.UploadProfilePicture(context.Background(), 1, pngUpload(3))

	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestProfileService_UploadProfilePicture_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, objects := newTestProfileService(ctrl, 0)

	users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(models.User{UserID: 1}, nil)
	objects.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("bucket missing"))

	_, err := svc.UploadProfilePicture(context.Background(), 1, pngUpload(3))

	assert.ErrorIs(t, err, ErrUploadFailed)
}
