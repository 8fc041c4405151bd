package client

import (
	"context"

	pb "github.com/dmitrijs2005/fitkeeper/internal/proto"
)

type Client interface {
	Close() error
	SetToken(token string)
	// Register creates an account. An empty role lets the server pick its default.
	Register(ctx context.Context, username, password, role string) error
	Login(ctx context.Context, username, password string) (string, error)
	Ping(ctx context.Context) error
	GetProfile(ctx context.Context) (*pb.GetProfileResponse, error)
	PhotoUpload(ctx context.Context) (key string, url string, err error)
	ConfirmPhoto(ctx context.Context, key string) error
}
