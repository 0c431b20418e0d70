package upload

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// 脚本上传端点错误定义
var (
	ErrScriptConfigInvalid = errors.New("script uploader endpoint not configured")
)

// scriptUploadResponse 脚本端点响应
type scriptUploadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	URL     string `json:"url"`
}

// ScriptUploader 表单脚本收据上传器。
// 以 multipart 表单提交 file（base64 内容）、filename、mimeType 三个字段，
// 端点返回 {success, message, url}。
type ScriptUploader struct {
	endpoint string
	client   *http.Client
}

// NewScriptUploader 创建脚本上传器
func NewScriptUploader(endpoint string) *ScriptUploader {
	return &ScriptUploader{
		endpoint: strings.TrimSpace(endpoint),
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload 上传收据
func (u *ScriptUploader) Upload(ctx context.Context, file ReceiptFile) (string, error) {
	if u.endpoint == "" {
		return "", ErrScriptConfigInvalid
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("file", base64.StdEncoding.EncodeToString(file.Data)); err != nil {
		return "", err
	}
	if err := writer.WriteField("filename", file.Filename); err != nil {
		return "", err
	}
	if err := writer.WriteField("mimeType", file.MIMEType); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrUploadRejected, resp.StatusCode)
	}

	var result scriptUploadResponse
	if err := json.Unmarshal(payload, &result); err != nil {
		return "", fmt.Errorf("parse upload response failed: %w", err)
	}
	if !result.Success {
		if result.Message != "" {
			return "", fmt.Errorf("%w: %s", ErrUploadRejected, result.Message)
		}
		return "", ErrUploadRejected
	}
	if result.URL == "" {
		return "", fmt.Errorf("%w: missing url in response", ErrUploadRejected)
	}
	return result.URL, nil
}
