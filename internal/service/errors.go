package service

import "errors"

// 服务层错误定义
var (
	ErrProductNotFound      = errors.New("product not found")
	ErrInvalidSelection     = errors.New("invalid variant selection")
	ErrIncompleteSelection  = errors.New("variant selection incomplete")
	ErrCartItemNotFound     = errors.New("cart item not found")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrPaymentMethodUnknown = errors.New("payment method unknown")
	ErrReceiptRequired      = errors.New("receipt file required")
	ErrReceiptInvalid       = errors.New("receipt file invalid")
	ErrUploadFailed         = errors.New("receipt upload failed")
	ErrNotifyFailed         = errors.New("order notification failed")
	ErrCheckoutBusy         = errors.New("checkout already in progress")
	ErrCustomerIncomplete   = errors.New("customer information incomplete")
	ErrCommentInvalid       = errors.New("comment content invalid")
	ErrTicketInvalid        = errors.New("support ticket invalid")
)
