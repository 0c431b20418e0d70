package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goldenpolis/storefront/internal/config"
	"github.com/goldenpolis/storefront/internal/constants"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// 对象存储错误定义
var (
	ErrS3ConfigInvalid = errors.New("s3 uploader config invalid")
)

// S3Uploader 对象存储收据上传器（MinIO / S3 兼容端点）
type S3Uploader struct {
	client    *minio.Client
	bucket    string
	endpoint  string
	useSSL    bool
	publicURL string
}

// NewS3Uploader 创建对象存储上传器
func NewS3Uploader(cfg config.S3UploadConfig) (*S3Uploader, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" || cfg.Bucket == "" {
		return nil, ErrS3ConfigInvalid
	}
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &S3Uploader{
		client:    client,
		bucket:    cfg.Bucket,
		endpoint:  endpoint,
		useSSL:    cfg.UseSSL,
		publicURL: strings.TrimRight(strings.TrimSpace(cfg.PublicURL), "/"),
	}, nil
}

// Upload 上传收据，对象名按 年/月/uuid.扩展名 生成
func (u *S3Uploader) Upload(ctx context.Context, file ReceiptFile) (string, error) {
	objectName := fmt.Sprintf("%s/%s%s",
		time.Now().Format("2006/01"),
		uuid.New().String(),
		extensionFor(file.MIMEType),
	)

	_, err := u.client.PutObject(ctx, u.bucket, objectName,
		bytes.NewReader(file.Data), int64(len(file.Data)),
		minio.PutObjectOptions{ContentType: file.MIMEType})
	if err != nil {
		return "", err
	}

	if u.publicURL != "" {
		return fmt.Sprintf("%s/%s/%s", u.publicURL, u.bucket, objectName), nil
	}
	scheme := "http"
	if u.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, u.endpoint, u.bucket, objectName), nil
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case constants.MIMETypeJPEG:
		return ".jpg"
	case constants.MIMETypePNG:
		return ".png"
	case constants.MIMETypePDF:
		return ".pdf"
	default:
		return ""
	}
}
