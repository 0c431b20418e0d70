package upload

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/goldenpolis/storefront/internal/constants"
)

// 上传错误定义
var (
	ErrFileEmpty      = errors.New("receipt file empty")
	ErrFileTooLarge   = errors.New("receipt file exceeds size limit")
	ErrTypeNotAllowed = errors.New("receipt file type not allowed")
	ErrUploadRejected = errors.New("upload endpoint rejected file")
)

// ReceiptFile 待上传的收据文件
type ReceiptFile struct {
	Data     []byte
	Filename string
	MIMEType string
}

// ReceiptUploader 收据上传接口
type ReceiptUploader interface {
	// Upload 上传收据并返回可访问的 URL
	Upload(ctx context.Context, file ReceiptFile) (string, error)
}

// ValidateReceipt 校验收据文件并嗅探实际类型。
// 仅允许 JPEG/PNG/PDF，大小不超过 5 MiB；类型以文件头为准，不信任扩展名。
func ValidateReceipt(data []byte, filename string) (ReceiptFile, error) {
	if len(data) == 0 {
		return ReceiptFile{}, ErrFileEmpty
	}
	if len(data) > constants.ReceiptMaxSizeBytes {
		return ReceiptFile{}, ErrFileTooLarge
	}

	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	contentType := http.DetectContentType(head)
	// DetectContentType 可能带参数（如 charset），按前缀比较
	switch {
	case strings.HasPrefix(contentType, constants.MIMETypeJPEG):
		contentType = constants.MIMETypeJPEG
	case strings.HasPrefix(contentType, constants.MIMETypePNG):
		contentType = constants.MIMETypePNG
	case strings.HasPrefix(contentType, constants.MIMETypePDF):
		contentType = constants.MIMETypePDF
	default:
		return ReceiptFile{}, ErrTypeNotAllowed
	}

	return ReceiptFile{
		Data:     data,
		Filename: strings.TrimSpace(filename),
		MIMEType: contentType,
	}, nil
}
