// Package storage klien object storage S3-compatible (R2) untuk
// penerbitan presigned PUT URL dari admin UI.
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/prasetyadi-dev/portal_konten_be/internal/config"
)

const presignTTL = 5 * time.Minute

type Uploader struct {
	presign       *s3.PresignClient
	bucket        string
	publicBaseURL string
}

// NewUploader nil tanpa error kalau kredensial tidak di-set: endpoint
// upload dimatikan, proses tetap jalan.
func NewUploader(ctx context.Context, cfg config.StorageConfig) (*Uploader, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("konfigurasi storage: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	return &Uploader{
		presign:       s3.NewPresignClient(client),
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// PresignPut menerbitkan URL tulis berumur 5 menit untuk satu objek baru.
// Nama objek dibuat acak; ekstensi diambil dari nama file asli.
func (u *Uploader) PresignPut(ctx context.Context, filename, contentType string) (uploadURL, publicURL, key string, err error) {
	ext := strings.ToLower(path.Ext(filename))
	key = "uploads/" + uuid.NewString() + ext

	req, err := u.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return "", "", "", err
	}

	publicURL = u.publicBaseURL + "/" + key
	return req.URL, publicURL, key, nil
}
