package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/linkfo/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/linkfo/internal/validatex"
	"github.com/google/uuid"

	sc "github.com/dmitrijs2005/linkfo/internal/server/config"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

const avatarUploadExpiry = 15 * time.Minute

var avatarContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// AvatarUploadRequest is the payload of POST /users/avatar.
type AvatarUploadRequest struct {
	ContentType string `json:"contentType" validate:"required"`
}

// AvatarUpload tells the client where to PUT the image. AvatarURL is
// already stored on the account.
type AvatarUpload struct {
	UploadURL string `json:"uploadUrl"`
	AvatarURL string `json:"avatarUrl"`
	Key       string `json:"key"`
}

// AvatarService hands out presigned S3 upload URLs for profile pictures.
type AvatarService struct {
	repomanager repomanager.RepositoryManager
	validate    *validatex.Validator
	config      *sc.Config
}

func NewAvatarService(m repomanager.RepositoryManager, v *validatex.Validator, config *sc.Config) *AvatarService {
	return &AvatarService{repomanager: m, validate: v, config: config}
}

// Enabled reports whether object storage is configured.
func (s *AvatarService) Enabled() bool {
	return s.config.S3Bucket != ""
}

func avatarStorageKey(ownerID string) string {
	return "avatars/" + ownerID + "/" + uuid.NewString()
}

func (s *AvatarService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if s.config.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return newS3PresignClient(client), nil
}

// objectURL is the public address of key: path style under a custom
// endpoint, virtual-hosted style on AWS.
func (s *AvatarService) objectURL(key string) string {
	if s.config.S3BaseEndpoint != "" {
		u, err := url.JoinPath(strings.TrimRight(s.config.S3BaseEndpoint, "/"), s.config.S3Bucket, key)
		if err == nil {
			return u
		}
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.config.S3Bucket, s.config.S3Region, key)
}

// PresignUpload issues an upload URL for a new avatar of ownerID and points
// the account at the object.
func (s *AvatarService) PresignUpload(ctx context.Context, ownerID string, req AvatarUploadRequest) (*AvatarUpload, error) {
	if !s.Enabled() {
		return nil, ErrStorageDisabled
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	if _, ok := avatarContentTypes[req.ContentType]; !ok {
		return nil, validatex.NewError("contentType", "contentType must be one of image/jpeg, image/png, image/gif, image/webp")
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("s3 config: %w", err)
	}

	bucket := s.config.S3Bucket
	key := avatarStorageKey(ownerID)

	presigned, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		ContentType: aws.String(req.ContentType),
	}, s3.WithPresignExpires(avatarUploadExpiry))
	if err != nil {
		return nil, fmt.Errorf("presign put: %w", err)
	}

	upload := &AvatarUpload{
		UploadURL: presigned.URL,
		AvatarURL: s.objectURL(key),
		Key:       key,
	}

	err = s.repomanager.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		u, err := r.Users().GetByID(ctx, ownerID)
		if err != nil {
			return err
		}
		u.AvatarURL = upload.AvatarURL
		return r.Users().UpdateProfile(ctx, u)
	})
	if err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}

	return upload, nil
}

