package public

import (
	"github.com/goldenpolis/storefront/internal/http/response"
	"github.com/goldenpolis/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateCommentRequest 发表评论请求
type CreateCommentRequest struct {
	Author  string `json:"author" binding:"required"`
	Content string `json:"content" binding:"required"`
	Rating  int    `json:"rating"`
}

// GetComments 获取商品评论
func (h *Handler) GetComments(c *gin.Context) {
	comments, err := h.CommentService.ListBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondCommentError(c, err)
		return
	}
	response.Success(c, gin.H{"comments": comments})
}

// CreateComment 发表商品评论
func (h *Handler) CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	comment, err := h.CommentService.Add(c.Request.Context(), service.AddCommentInput{
		Slug:    c.Param("slug"),
		Author:  req.Author,
		Content: req.Content,
		Rating:  req.Rating,
	})
	if err != nil {
		respondCommentError(c, err)
		return
	}
	response.Success(c, comment)
}
