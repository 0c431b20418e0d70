package public

import (
	"github.com/goldenpolis/storefront/internal/http/response"
	"github.com/goldenpolis/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateTicketRequest 创建售后工单请求
type CreateTicketRequest struct {
	Product string `json:"product"`
	Message string `json:"message" binding:"required"`
	Contact string `json:"contact"`
}

// ListSupportTickets 获取全部售后工单
func (h *Handler) ListSupportTickets(c *gin.Context) {
	tickets, err := h.SupportService.List(c.Request.Context())
	if err != nil {
		respondTicketError(c, err)
		return
	}
	response.Success(c, gin.H{"tickets": tickets})
}

// CreateSupportTicket 创建售后工单
func (h *Handler) CreateSupportTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	ticket, err := h.SupportService.Create(c.Request.Context(), service.CreateTicketInput{
		Product: req.Product,
		Message: req.Message,
		Contact: req.Contact,
	})
	if err != nil {
		respondTicketError(c, err)
		return
	}
	response.Success(c, ticket)
}
