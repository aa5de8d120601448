package storage

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/lostpaws/petfinder-api/internal/config"
	"github.com/lostpaws/petfinder-api/internal/httperr"
)

// PhotoStorage is the object-store boundary. The rest of the system
// treats the returned key as an opaque string.
type PhotoStorage interface {
	UploadPetPhoto(ctx context.Context, fileName string, body []byte, contentType string) (string, error)
	PublicURL(ctx context.Context, storedKey string) string
}

type S3Storage struct {
	client        *s3.Client
	presign       *s3.PresignClient
	bucket        string
	prefix        string
	publicBaseURL string
	signedTTL     time.Duration
}

func NewS3Storage(cfg *config.Config) (*S3Storage, error) {
	if cfg.S3Bucket == "" || cfg.AWSRegion == "" {
		return nil, httperr.ErrConfig("s3_not_configured", "S3 bucket/region not configured")
	}

	opts := s3.Options{
		Region: cfg.AWSRegion,
	}
	if cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		)
	}
	// Custom endpoint covers S3-compatible stores; those need path style.
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	client := s3.New(opts)

	return &S3Storage{
		client:        client,
		presign:       s3.NewPresignClient(client),
		bucket:        cfg.S3Bucket,
		prefix:        strings.Trim(cfg.S3Prefix, "/"),
		publicBaseURL: strings.TrimRight(cfg.S3PublicBaseURL, "/"),
		signedTTL:     time.Duration(cfg.S3SignedURLExpiry) * time.Second,
	}, nil
}

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

func (s *S3Storage) objectKey(fileName string) string {
	base := unsafeKeyChars.ReplaceAllString(fileName, "_")
	if base == "" {
		base = "photo"
	}

	key := "pets/" + uuid.NewString() + "-" + base
	if s.prefix != "" {
		key = s.prefix + "/" + key
	}
	return key
}

func (s *S3Storage) UploadPetPhoto(
	ctx context.Context,
	fileName string,
	body []byte,
	contentType string,
) (string, error) {

	key := s.objectKey(fileName)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", httperr.ErrStorage("photo_upload_failed", err.Error())
	}

	return key, nil
}

// PublicURL resolves a stored key to something a browser can fetch: the
// configured public base URL when present, otherwise a presigned GET.
// On signing failure the raw key comes back so responses still render.
func (s *S3Storage) PublicURL(ctx context.Context, storedKey string) string {
	if storedKey == "" {
		return ""
	}

	key := strings.TrimPrefix(storedKey, "/")

	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key
	}

	signed, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.signedTTL))
	if err != nil {
		return storedKey
	}
	return signed.URL
}

// Compile-time check
var _ PhotoStorage = (*S3Storage)(nil)
