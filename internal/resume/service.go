package resume

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/InternFinder-SIH/internfinder-backend/config"
)

const presignExpiry = 15 * time.Minute

// Extractor is the slice of the ML client this service consumes.
type Extractor interface {
	ExtractResumeContent(ctx context.Context, filename string, file io.Reader) (map[string]any, error)
}

// Service issues presigned URLs for resume files and proxies parsing to the
// ML extractor. Files go straight from the browser to the bucket; the server
// never streams them.
type Service struct {
	cfg config.S3Config
	ml  Extractor
}

// NewService creates a new resume service.
func NewService(cfg config.S3Config, extractor Extractor) *Service {
	return &Service{cfg: cfg, ml: extractor}
}

// UploadURL returns a presigned PUT URL and the storage key it writes to.
func (s *Service) UploadURL(ctx context.Context, userID string) (string, string, error) {
	pc, err := s.presignClient(ctx)
	if err != nil {
		return "", "", err
	}

	key := storageKey(userID)
	req, err := pc.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", "", fmt.Errorf("presign put: %w", err)
	}

	return req.URL, key, nil
}

// DownloadURL returns a presigned GET URL for an existing resume key.
func (s *Service) DownloadURL(ctx context.Context, key string) (string, error) {
	pc, err := s.presignClient(ctx)
	if err != nil {
		return "", err
	}

	req, err := pc.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", fmt.Errorf("presign get: %w", err)
	}

	return req.URL, nil
}

// Parse forwards the resume to the ML content extractor.
func (s *Service) Parse(ctx context.Context, filename string, file io.Reader) (map[string]any, error) {
	return s.ml.ExtractResumeContent(ctx, filename, file)
}

func (s *Service) presignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(s.cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.AccessKey,
			s.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s.cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.BaseEndpoint)
			o.UsePathStyle = true // MinIO
		}
	})

	return s3.NewPresignClient(client), nil
}

func storageKey(userID string) string {
	return fmt.Sprintf("resumes/%s/%s.pdf", userID, uuid.New())
}
