package grpc

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/fitkeeper/internal/common"
	"github.com/dmitrijs2005/fitkeeper/internal/logging"
	pb "github.com/dmitrijs2005/fitkeeper/internal/proto"
	"github.com/dmitrijs2005/fitkeeper/internal/server/auth"
	"github.com/dmitrijs2005/fitkeeper/internal/server/config"
	"github.com/dmitrijs2005/fitkeeper/internal/server/models"
	"github.com/dmitrijs2005/fitkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/fitkeeper/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

var testSecret = []byte("grpc-secret")

type fakePhotos struct {
	err      error
	uploaded map[string]bool
}

func (f *fakePhotos) Exists(ctx context.Context, key string) (bool, error) {
	return f.uploaded[key], nil
}

func (f *fakePhotos) PresignUpload(ctx context.Context, userID string) (string, string, error) {
	if f.err != nil {
		return "", "", f.err
	}
	return "photos/" + userID + "/k", "http://minio/put", nil
}

func startServer(t *testing.T, us UserService, ps PhotoStore) pb.AuthServiceClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	s := NewGRPCServer("bufnet", logging.NewNop(), us, ps, [][]byte{testSecret})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Error("server did not stop")
		}
	})

	return pb.NewAuthServiceClient(conn)
}

func newService() *services.UserService {
	cfg := &config.Config{SecretKey: string(testSecret), AccessTokenValidityDuration: time.Hour}
	return services.NewUserService(repomanager.NewMemoryRepositoryManager(), cfg, logging.NewNop())
}

func withToken(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, common.AccessTokenHeaderName, token)
}

func TestAuthService_EndToEnd(t *testing.T) {
	photos := &fakePhotos{uploaded: map[string]bool{}}
	c := startServer(t, newService(), photos)
	ctx := context.Background()

	ping, err := c.Ping(ctx, &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", ping.Status)

	reg, err := c.Register(ctx, &pb.RegisterRequest{Username: "alice", Password: "run10k", Role: common.RoleAdmin})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Message)

	_, err = c.Register(ctx, &pb.RegisterRequest{Username: "alice", Password: "run10k"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	_, err = c.Register(ctx, &pb.RegisterRequest{Username: "bob", Password: "short"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Contains(t, status.Convert(err).Message(), "password")

	_, err = c.Login(ctx, &pb.LoginRequest{Username: "bob", Password: "run10k"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = c.Login(ctx, &pb.LoginRequest{Username: "alice", Password: "wrong1"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	login, err := c.Login(ctx, &pb.LoginRequest{Username: "alice", Password: "run10k"})
	require.NoError(t, err)

	claims, err := auth.ParseToken(login.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, common.RoleAdmin, claims.Role)

	profile, err := c.GetProfile(withToken(ctx, login.Token), &pb.GetProfileRequest{})
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Nil(t, profile.Bmi)

	photo, err := c.PhotoUpload(withToken(ctx, login.Token), &pb.PhotoUploadRequest{})
	require.NoError(t, err)
	assert.Equal(t, "photos/"+claims.UserID+"/k", photo.Key)

	// the presigned key is not attached before the upload is confirmed
	profile, err = c.GetProfile(withToken(ctx, login.Token), &pb.GetProfileRequest{})
	require.NoError(t, err)
	assert.Empty(t, profile.PhotoKey)

	_, err = c.ConfirmPhoto(withToken(ctx, login.Token), &pb.ConfirmPhotoRequest{Key: photo.Key})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	photos.uploaded[photo.Key] = true
	_, err = c.ConfirmPhoto(withToken(ctx, login.Token), &pb.ConfirmPhotoRequest{Key: "photos/other/k"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	confirmed, err := c.ConfirmPhoto(withToken(ctx, login.Token), &pb.ConfirmPhotoRequest{Key: photo.Key})
	require.NoError(t, err)
	assert.Equal(t, photo.Key, confirmed.PhotoKey)

	profile, err = c.GetProfile(withToken(ctx, login.Token), &pb.GetProfileRequest{})
	require.NoError(t, err)
	assert.Equal(t, photo.Key, profile.PhotoKey)
}

func TestAuthService_ProtectedMethods(t *testing.T) {
	c := startServer(t, newService(), &fakePhotos{})
	ctx := context.Background()

	_, err := c.GetProfile(ctx, &pb.GetProfileRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "missing token", status.Convert(err).Message())

	_, err = c.GetProfile(withToken(ctx, "not-a-jwt"), &pb.GetProfileRequest{})
	assert.Equal(t, "invalid token", status.Convert(err).Message())

	expired, err := auth.GenerateToken("u", common.RoleUser, testSecret, -time.Minute)
	require.NoError(t, err)
	_, err = c.PhotoUpload(withToken(ctx, expired), &pb.PhotoUploadRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "token expired", status.Convert(err).Message())

	// a valid token for a user that no longer exists
	ghost, err := auth.GenerateToken("ghost", common.RoleUser, testSecret, time.Hour)
	require.NoError(t, err)
	_, err = c.GetProfile(withToken(ctx, ghost), &pb.GetProfileRequest{})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = c.ConfirmPhoto(ctx, &pb.ConfirmPhotoRequest{Key: "photos/u/k"})
	assert.Equal(t, "missing token", status.Convert(err).Message())
}

type faultyUsers struct{ UserService }

func (faultyUsers) Login(context.Context, string, string) (string, error) {
	return "", common.NewInfrastructureError("lookup user", errors.New("db down"))
}

func TestAuthService_InternalErrorsHideDetail(t *testing.T) {
	c := startServer(t, faultyUsers{}, &fakePhotos{})

	_, err := c.Login(context.Background(), &pb.LoginRequest{Username: "a", Password: "b"})
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.NotContains(t, status.Convert(err).Message(), "db down")
}

func TestAuthService_PhotoPresignFailure(t *testing.T) {
	svc := newService()
	c := startServer(t, svc, &fakePhotos{err: errors.New("s3 down")})
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "run10k", "")
	require.NoError(t, err)
	tok, err := svc.Login(ctx, "alice", "run10k")
	require.NoError(t, err)

	_, err = c.PhotoUpload(withToken(ctx, tok), &pb.PhotoUploadRequest{})
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", logging.NewNop(), nil, nil, nil)
	if err := srv.Run(context.Background()); err == nil {
		t.Fatal("expected listen error")
	}
}

func TestGetProfile_BMIFields(t *testing.T) {
	h, w := 160.0, 90.0
	s := NewGRPCServer("", logging.NewNop(), stubProfile{&models.User{ID: "u", HeightCM: &h, WeightKG: &w}}, nil, nil)

	ctx := context.WithValue(context.Background(), claimsKey, &auth.Claims{UserID: "u"})
	resp, err := s.GetProfile(ctx, &pb.GetProfileRequest{})
	require.NoError(t, err)
	require.NotNil(t, resp.Bmi)
	assert.InDelta(t, 35.2, resp.GetBmi(), 1e-9)
	assert.Equal(t, "obese", resp.GetBmiCategory())
}

type stubProfile struct{ u *models.User }

func (s stubProfile) Register(context.Context, string, string, string) (*models.User, error) {
	return nil, nil
}
func (s stubProfile) Login(context.Context, string, string) (string, error) { return "", nil }
func (s stubProfile) GetProfile(context.Context, string) (*models.User, error) {
	return s.u, nil
}
func (s stubProfile) SetPhoto(context.Context, string, string, services.PhotoChecker) (*models.User, error) {
	return s.u, nil
}
