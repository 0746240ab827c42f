package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	domainerrors "github.com/rafabene/dealflow-backend/internal/domain/errors"
	"github.com/rafabene/dealflow-backend/internal/domain/ports"
	"github.com/rafabene/dealflow-backend/internal/infrastructure/config"
)

const (
	// PDFContentType é o único content-type aceito
	PDFContentType = "application/pdf"
	// MaxFileSize é o tamanho máximo de um contrato (10 MiB)
	MaxFileSize = 10 << 20
)

// ObjectAPI é o subconjunto do cliente S3 usado pelo adapter
type ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Storage implementa ports.FileStorage sobre um bucket compatível com S3
type S3Storage struct {
	client    ObjectAPI
	bucket    string
	publicURL string
	logger    ports.Logger
}

// NewS3Storage cria o adapter a partir da configuração de storage
func NewS3Storage(ctx context.Context, cfg *config.StorageConfig, logger ports.Logger) (ports.FileStorage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = true
	})

	return NewS3StorageWithClient(client, cfg.Bucket, cfg.PublicURL, logger), nil
}

// NewS3StorageWithClient cria o adapter sobre um cliente já construído
func NewS3StorageWithClient(client ObjectAPI, bucket, publicURL string, logger ports.Logger) *S3Storage {
	return &S3Storage{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    logger,
	}
}

// Upload valida tipo e tamanho e grava em <userID>/<dealID>/<uuid>.pdf
func (s *S3Storage) Upload(ctx context.Context, content []byte, contentType string, dealID int64, userID string) (string, error) {
	if contentType != PDFContentType {
		return "", domainerrors.NewValidationError("file", "validation.file_type",
			map[string]interface{}{"Allowed": PDFContentType})
	}
	if len(content) > MaxFileSize {
		return "", domainerrors.NewValidationError("file", "validation.file_size",
			map[string]interface{}{"Max": "10 MB"})
	}

	key := ObjectKey(userID, dealID)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(content),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(content))),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload contract file: %w", err)
	}

	s.logger.Info("contract file uploaded", "key", key, "size", len(content))

	return s.PublicURL(key), nil
}

// Delete remove o objeto referenciado pela URL pública quando ele pertence ao usuário. Nunca retorna erro.
func (s *S3Storage) Delete(ctx context.Context, fileURL, userID string) bool {
	key, ok := s.KeyFromURL(fileURL)
	if !ok {
		s.logger.Warn("could not extract storage key from url", "url", fileURL)
		return false
	}
	if !ownedBy(key, userID) {
		s.logger.Warn("refusing to delete file outside user prefix", "key", key, "user_id", userID)
		return false
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.logger.Warn("failed to delete contract file", "key", key, "error", err)
		return false
	}

	return true
}

// CanReference aceita URLs fora do bucket e chaves sob <userID>/
func (s *S3Storage) CanReference(fileURL, userID string) bool {
	if !strings.HasPrefix(fileURL, s.bucketPrefix()) {
		return true
	}
	key, ok := s.KeyFromURL(fileURL)
	return ok && ownedBy(key, userID)
}

// PublicURL monta a URL pública: {publicURL}/{bucket}/{key}
func (s *S3Storage) PublicURL(key string) string {
	return s.bucketPrefix() + key
}

// KeyFromURL extrai a chave de uma URL gerada por PublicURL, ignorando query string.
// Chaves vazias ou com segmentos "." e ".." são rejeitadas.
func (s *S3Storage) KeyFromURL(fileURL string) (string, bool) {
	key, found := strings.CutPrefix(fileURL, s.bucketPrefix())
	if !found {
		return "", false
	}
	if q := strings.IndexAny(key, "?#"); q >= 0 {
		key = key[:q]
	}

	key, err := url.PathUnescape(key)
	if err != nil || key == "" {
		return "", false
	}
	for _, segment := range strings.Split(key, "/") {
		if segment == "" || segment == "." || segment == ".." {
			return "", false
		}
	}

	return key, true
}

func (s *S3Storage) bucketPrefix() string {
	return s.publicURL + "/" + s.bucket + "/"
}

// ownedBy exige o formato <userID>/<dealID>/<arquivo>
func ownedBy(key, userID string) bool {
	if userID == "" {
		return false
	}
	rest, found := strings.CutPrefix(key, userID+"/")
	if !found {
		return false
	}
	return len(strings.Split(rest, "/")) == 2
}

// ObjectKey gera um caminho único agrupado por usuário e deal
func ObjectKey(userID string, dealID int64) string {
	return fmt.Sprintf("%s/%d/%s.pdf", userID, dealID, uuid.NewString())
}
