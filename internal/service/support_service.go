package service

import (
	"context"
	"strings"
	"time"

	"github.com/goldenpolis/storefront/internal/models"
	"github.com/goldenpolis/storefront/internal/repository"
)

// CreateTicketInput 创建工单输入
type CreateTicketInput struct {
	Product string
	Message string
	Contact string
}

// SupportService 售后支持工单服务
type SupportService struct {
	ticketRepo repository.TicketRepository
}

// NewSupportService 创建支持服务
func NewSupportService(ticketRepo repository.TicketRepository) *SupportService {
	return &SupportService{ticketRepo: ticketRepo}
}

// List 获取全部工单
func (s *SupportService) List(ctx context.Context) ([]models.SupportTicket, error) {
	return s.ticketRepo.List(ctx)
}

// Create 创建工单
func (s *SupportService) Create(ctx context.Context, input CreateTicketInput) (*models.SupportTicket, error) {
	if strings.TrimSpace(input.Message) == "" {
		return nil, ErrTicketInvalid
	}
	ticket := models.SupportTicket{
		Product:   strings.TrimSpace(input.Product),
		Message:   strings.TrimSpace(input.Message),
		Contact:   strings.TrimSpace(input.Contact),
		CreatedAt: time.Now(),
	}
	if err := s.ticketRepo.Append(ctx, ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}
