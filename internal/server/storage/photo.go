// Package storage issues presigned S3 URLs for profile photos. Clients
// upload and download directly against the object store.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dmitrijs2005/fitkeeper/internal/server/config"
	"github.com/dmitrijs2005/fitkeeper/internal/server/models"
	"github.com/google/uuid"
)

const presignExpiry = 15 * time.Minute

// seams for tests
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
	headObject = func(c *s3.Client, ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
		return c.HeadObject(ctx, in, optFns...)
	}

	now = time.Now
)

type PhotoStore struct {
	region    string
	user      string
	password  string
	bucket    string
	endpoint  string
	expiresIn time.Duration
}

func NewPhotoStore(cfg *config.Config) *PhotoStore {
	return &PhotoStore{
		region:    cfg.S3Region,
		user:      cfg.S3RootUser,
		password:  cfg.S3RootPassword,
		bucket:    cfg.S3Bucket,
		endpoint:  cfg.S3BaseEndpoint,
		expiresIn: presignExpiry,
	}
}

// PhotoKey builds a fresh object key under the user's prefix.
func PhotoKey(userID string) string {
	d := now().UTC()
	return fmt.Sprintf("%s%d/%02d/%v", models.PhotoKeyPrefix(userID), d.Year(), d.Month(), uuid.New())
}

func (p *PhotoStore) client(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(p.region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(p.user, p.password, "")),
	)
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(p.endpoint)
		o.UsePathStyle = true
	}), nil
}

func (p *PhotoStore) presignClient(ctx context.Context) (*s3.PresignClient, error) {
	c, err := p.client(ctx)
	if err != nil {
		return nil, err
	}
	return newS3PresignClient(c), nil
}

// PresignUpload returns a new object key for userID and a PUT URL for it.
// The key is not attached to the profile until the upload is confirmed.
func (p *PhotoStore) PresignUpload(ctx context.Context, userID string) (key string, url string, err error) {
	pc, err := p.presignClient(ctx)
	if err != nil {
		return "", "", fmt.Errorf("s3 config: %w", err)
	}

	key = PhotoKey(userID)
	req, err := presignPutObject(pc, ctx, &s3.PutObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(p.expiresIn))
	if err != nil {
		return "", "", fmt.Errorf("presign put: %w", err)
	}

	return key, req.URL, nil
}

// PresignDownload returns a GET URL for an existing key.
func (p *PhotoStore) PresignDownload(ctx context.Context, key string) (string, error) {
	pc, err := p.presignClient(ctx)
	if err != nil {
		return "", fmt.Errorf("s3 config: %w", err)
	}

	req, err := presignGetObject(pc, ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(p.expiresIn))
	if err != nil {
		return "", fmt.Errorf("presign get: %w", err)
	}

	return req.URL, nil
}

// Exists reports whether key has been uploaded.
func (p *PhotoStore) Exists(ctx context.Context, key string) (bool, error) {
	c, err := p.client(ctx)
	if err != nil {
		return false, fmt.Errorf("s3 config: %w", err)
	}

	_, err = headObject(c, ctx, &s3.HeadObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return false, nil
		}
		return false, fmt.Errorf("head object: %w", err)
	}

	return true, nil
}
