package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/fitkeeper/internal/client/client"
	"github.com/dmitrijs2005/fitkeeper/internal/netx"
	pb "github.com/dmitrijs2005/fitkeeper/internal/proto"
)

type ProfileService struct {
	client client.Client
	upload func(ctx context.Context, url, contentType string, body []byte) error
}

func NewProfileService(c client.Client) *ProfileService {
	return &ProfileService{client: c, upload: netx.UploadToPresignedURL}
}

func (p *ProfileService) Profile(ctx context.Context) (*pb.GetProfileResponse, error) {
	return p.client.GetProfile(ctx)
}

// UploadPhoto asks the server for a presigned URL, PUTs data to it and then
// confirms the upload. It returns the object key the profile now points at.
func (p *ProfileService) UploadPhoto(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("photo is empty")
	}

	key, url, err := p.client.PhotoUpload(ctx)
	if err != nil {
		return "", fmt.Errorf("presign: %w", err)
	}

	if err := p.upload(ctx, url, http.DetectContentType(data), data); err != nil {
		return "", fmt.Errorf("upload: %w", err)
	}

	if err := p.client.ConfirmPhoto(ctx, key); err != nil {
		return "", fmt.Errorf("confirm: %w", err)
	}
	return key, nil
}
