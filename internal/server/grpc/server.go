package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/fitkeeper/internal/logging"
	pb "github.com/dmitrijs2005/fitkeeper/internal/proto"
	"github.com/dmitrijs2005/fitkeeper/internal/server/models"
	"github.com/dmitrijs2005/fitkeeper/internal/server/services"
	"google.golang.org/grpc"
)

type UserService interface {
	Register(ctx context.Context, username, password, role string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	SetPhoto(ctx context.Context, userID, key string, photos services.PhotoChecker) (*models.User, error)
}

type PhotoStore interface {
	PresignUpload(ctx context.Context, userID string) (key string, url string, err error)
	Exists(ctx context.Context, key string) (bool, error)
}

type GRPCServer struct {
	pb.UnimplementedAuthServiceServer

	address    string
	users      UserService
	photos     PhotoStore
	logger     logging.Logger
	secretKeys [][]byte
}

// NewGRPCServer builds the AuthService server. secretKeys lists the current
// signing key first, then any retired keys still accepted.
func NewGRPCServer(a string, l logging.Logger, us UserService, ps PhotoStore, secretKeys [][]byte) *GRPCServer {
	return &GRPCServer{
		address:    a,
		logger:     l.With("module", "grpc_server"),
		users:      us,
		photos:     ps,
		secretKeys: secretKeys,
	}
}

func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterAuthServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
