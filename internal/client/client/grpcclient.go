package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/fitkeeper/internal/common"
	pb "github.com/dmitrijs2005/fitkeeper/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	conn   *grpc.ClientConn
	client pb.AuthServiceClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	md.Set(common.AccessTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient connects lazily to endpoint. Extra options are appended to
// the defaults (insecure transport and the token interceptor).
func NewGRPCClient(endpoint string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpoint, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewAuthServiceClient(conn)
	return c, nil
}

func (s *GRPCClient) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Register(ctx context.Context, username, password, role string) error {
	_, err := s.client.Register(ctx, &pb.RegisterRequest{Username: username, Password: password, Role: role})
	return mapError(err)
}

// Login returns the issued token and also starts using it for later calls.
func (s *GRPCClient) Login(ctx context.Context, username, password string) (string, error) {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Username: username, Password: password})
	if err != nil {
		return "", mapError(err)
	}
	s.SetToken(resp.Token)
	return resp.Token, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) GetProfile(ctx context.Context) (*pb.GetProfileResponse, error) {
	resp, err := s.client.GetProfile(ctx, &pb.GetProfileRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) PhotoUpload(ctx context.Context) (string, string, error) {
	resp, err := s.client.PhotoUpload(ctx, &pb.PhotoUploadRequest{})
	if err != nil {
		return "", "", mapError(err)
	}
	return resp.Key, resp.Url, nil
}

func (s *GRPCClient) ConfirmPhoto(ctx context.Context, key string) error {
	_, err := s.client.ConfirmPhoto(ctx, &pb.ConfirmPhotoRequest{Key: key})
	return mapError(err)
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}

	var sentinel error
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		sentinel = ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		sentinel = ErrUnavailable
	case codes.AlreadyExists:
		sentinel = ErrConflict
	case codes.NotFound:
		sentinel = ErrNotFound
	case codes.InvalidArgument:
		sentinel = ErrValidation
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
	return fmt.Errorf("%w: %s", sentinel, st.Message())
}
