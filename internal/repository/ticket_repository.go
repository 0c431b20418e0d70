package repository

import (
	"context"

	"github.com/goldenpolis/storefront/internal/constants"
	"github.com/goldenpolis/storefront/internal/kvstore"
	"github.com/goldenpolis/storefront/internal/models"
)

// TicketRepository 支持工单数据访问接口
type TicketRepository interface {
	List(ctx context.Context) ([]models.SupportTicket, error)
	Append(ctx context.Context, ticket models.SupportTicket) error
}

// KVTicketRepository 键值存储实现
type KVTicketRepository struct {
	store kvstore.Store
}

// NewTicketRepository 创建工单仓库
func NewTicketRepository(store kvstore.Store) *KVTicketRepository {
	return &KVTicketRepository{store: store}
}

// List 读取全部工单
func (r *KVTicketRepository) List(ctx context.Context) ([]models.SupportTicket, error) {
	var tickets []models.SupportTicket
	found, err := r.store.Get(ctx, constants.StoreKeySupportTickets, &tickets)
	if err != nil {
		return nil, err
	}
	if !found {
		return []models.SupportTicket{}, nil
	}
	return tickets, nil
}

// Append 追加工单并整体写回
func (r *KVTicketRepository) Append(ctx context.Context, ticket models.SupportTicket) error {
	tickets, err := r.List(ctx)
	if err != nil {
		return err
	}
	tickets = append(tickets, ticket)
	return r.store.Put(ctx, constants.StoreKeySupportTickets, tickets)
}
