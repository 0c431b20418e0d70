package public

import (
	"errors"

	"github.com/goldenpolis/storefront/internal/http/response"
	"github.com/goldenpolis/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "product not found"},
	{target: service.ErrIncompleteSelection, code: response.CodeBadRequest, msg: "variant selection incomplete"},
	{target: service.ErrInvalidSelection, code: response.CodeBadRequest, msg: "variant selection invalid"},
	{target: service.ErrCartItemNotFound, code: response.CodeNotFound, msg: "cart item not found"},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrEmptyCart, code: response.CodeBadRequest, msg: "cart is empty"},
	{target: service.ErrCustomerIncomplete, code: response.CodeBadRequest, msg: "customer name and email are required"},
	{target: service.ErrPaymentMethodUnknown, code: response.CodeBadRequest, msg: "unknown payment method"},
	{target: service.ErrReceiptRequired, code: response.CodeBadRequest, msg: "payment receipt is required"},
	{target: service.ErrReceiptInvalid, code: response.CodeBadRequest, msg: "receipt must be a JPEG, PNG or PDF up to 5 MiB"},
	{target: service.ErrUploadFailed, code: response.CodeInternal, msg: "receipt upload failed, please retry"},
	{target: service.ErrNotifyFailed, code: response.CodeInternal, msg: "order notification failed, please retry"},
	{target: service.ErrCheckoutBusy, code: response.CodeTooManyRequests, msg: "another checkout is in progress"},
}

var commentErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "product not found"},
	{target: service.ErrCommentInvalid, code: response.CodeBadRequest, msg: "comment author, content and rating 0-5 are required"},
}

var ticketErrorRules = []mappedHandlerError{
	{target: service.ErrTicketInvalid, code: response.CodeBadRequest, msg: "ticket message is required"},
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "cart operation failed")
}

func respondCheckoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "checkout failed")
}

func respondCommentError(c *gin.Context, err error) {
	respondWithMappedError(c, err, commentErrorRules, response.CodeInternal, "comment operation failed")
}

func respondTicketError(c *gin.Context, err error) {
	respondWithMappedError(c, err, ticketErrorRules, response.CodeInternal, "support ticket operation failed")
}
