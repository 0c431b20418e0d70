package notify

import (
	"context"
	"strings"

	"github.com/goldenpolis/storefront/internal/config"
	"github.com/goldenpolis/storefront/internal/constants"

	"github.com/wneessen/go-mail"
)

// SMTPNotifier 基于 SMTP 的通知器。
// 模板变量直接渲染为纯文本邮件：message 为正文，to_* 为收件人。
type SMTPNotifier struct {
	cfg      config.SMTPConfig
	subjects map[string]string
}

// NewSMTPNotifier 创建 SMTP 通知器；subjects 为模板 ID 到邮件主题的映射
func NewSMTPNotifier(cfg config.SMTPConfig, subjects map[string]string) (*SMTPNotifier, error) {
	if strings.TrimSpace(cfg.Host) == "" || strings.TrimSpace(cfg.From) == "" {
		return nil, ErrConfigInvalid
	}
	return &SMTPNotifier{cfg: cfg, subjects: subjects}, nil
}

// Send 发送模板消息
func (n *SMTPNotifier) Send(ctx context.Context, templateID string, vars map[string]string) error {
	toEmail := strings.TrimSpace(vars[constants.TemplateVarToEmail])
	body := vars[constants.TemplateVarMessage]
	if toEmail == "" || body == "" {
		return ErrVarsIncomplete
	}

	msg := mail.NewMsg()
	if n.cfg.FromName != "" {
		if err := msg.FromFormat(n.cfg.FromName, n.cfg.From); err != nil {
			return err
		}
	} else if err := msg.From(n.cfg.From); err != nil {
		return err
	}
	if toName := strings.TrimSpace(vars[constants.TemplateVarToName]); toName != "" {
		if err := msg.AddToFormat(toName, toEmail); err != nil {
			return err
		}
	} else if err := msg.To(toEmail); err != nil {
		return err
	}

	subject := n.subjects[templateID]
	if subject == "" {
		subject = templateID
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	options := []mail.Option{
		mail.WithPort(n.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(n.cfg.Username),
		mail.WithPassword(n.cfg.Password),
	}
	if n.cfg.UseTLS {
		options = append(options, mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		options = append(options, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(n.cfg.Host, options...)
	if err != nil {
		return err
	}
	return client.DialAndSendWithContext(ctx, msg)
}
