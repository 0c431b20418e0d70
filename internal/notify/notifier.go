package notify

import (
	"context"
	"errors"

	"github.com/goldenpolis/storefront/internal/logger"
)

// 通知错误定义
var (
	ErrConfigInvalid  = errors.New("notifier config invalid")
	ErrSendRejected   = errors.New("notification rejected by provider")
	ErrVarsIncomplete = errors.New("notification variables incomplete")
)

// Notifier 模板消息发送接口。
// vars 为模板变量（to_name/to_email/from_name/from_email/message）。
type Notifier interface {
	Send(ctx context.Context, templateID string, vars map[string]string) error
}

// NopNotifier 空通知器，仅记录日志（notify.provider = none 时使用）
type NopNotifier struct{}

// Send 丢弃消息并记录日志
func (NopNotifier) Send(ctx context.Context, templateID string, vars map[string]string) error {
	logger.Debugw("notification_dropped", "template", templateID)
	return nil
}
