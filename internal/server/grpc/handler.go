package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/fitkeeper/internal/common"
	pb "github.com/dmitrijs2005/fitkeeper/internal/proto"
	"github.com/dmitrijs2005/fitkeeper/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	s.logger.Info(ctx, "Registration request", "username", req.Username)

	if _, err := s.users.Register(ctx, req.Username, req.Password, req.Role); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.RegisterResponse{Message: "User registered successfully"}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	token, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.LoginResponse{Token: token}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, req *pb.GetProfileRequest) (*pb.GetProfileResponse, error) {
	claims, ok := claimsFrom(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	u, err := s.users.GetProfile(ctx, claims.UserID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &pb.GetProfileResponse{
		Id:           u.ID,
		Username:     u.UserName,
		Role:         u.Role,
		DisplayName:  u.DisplayName,
		HeightCm:     u.HeightCM,
		WeightKg:     u.WeightKG,
		PhotoKey:     u.PhotoKey,
		LastActiveAt: u.LastActiveAt.UTC().Format(time.RFC3339),
	}
	if u.Goal != nil {
		resp.Goal = string(*u.Goal)
	}
	if u.ActivityLevel != nil {
		resp.ActivityLevel = string(*u.ActivityLevel)
	}
	if bmi, ok := u.BMI(); ok {
		category := models.BMICategory(bmi)
		resp.Bmi = &bmi
		resp.BmiCategory = &category
	}

	return resp, nil
}

func (s *GRPCServer) PhotoUpload(ctx context.Context, req *pb.PhotoUploadRequest) (*pb.PhotoUploadResponse, error) {
	claims, ok := claimsFrom(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	key, url, err := s.photos.PresignUpload(ctx, claims.UserID)
	if err != nil {
		return nil, s.toStatus(ctx, common.NewInfrastructureError("presign upload", err))
	}

	return &pb.PhotoUploadResponse{Key: key, Url: url}, nil
}

func (s *GRPCServer) ConfirmPhoto(ctx context.Context, req *pb.ConfirmPhotoRequest) (*pb.ConfirmPhotoResponse, error) {
	claims, ok := claimsFrom(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	u, err := s.users.SetPhoto(ctx, claims.UserID, req.Key, s.photos)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.ConfirmPhotoResponse{PhotoKey: u.PhotoKey}, nil
}

// toStatus maps service errors onto gRPC codes. Validation messages are
// passed through; infrastructure detail is logged, not returned.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	var ve *common.ValidationError

	switch {
	case errors.As(err, &ve):
		return status.Error(codes.InvalidArgument, ve.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "user already exists")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "user not found")
	case errors.Is(err, common.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, "invalid credentials")
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, err.Error())
	}

	s.logger.Error(ctx, "request failed", "error", err)
	return status.Error(codes.Internal, "internal error")
}
