package constants

// 商品类型常量
const (
	ProductTypePhysical = "physical"
	ProductTypeDigital  = "digital"
)

// 结账阶段常量
const (
	CheckoutStateIdle             = "idle"
	CheckoutStateValidating       = "validating"
	CheckoutStateUploadingReceipt = "uploading_receipt"
	CheckoutStateNotifying        = "notifying"
	CheckoutStatePersisting       = "persisting"
	CheckoutStateClearingCart     = "clearing_cart"
	CheckoutStateDone             = "done"
	CheckoutStateFailed           = "failed"
)

// 存储文档键常量
const (
	StoreKeyCart           = "cart"
	StoreKeyOrders         = "orders"
	StoreKeyProducts       = "products"
	StoreKeySupportTickets = "support_tickets"
	StoreKeyCommentPrefix  = "comments_"
)

// 收据约束常量
const (
	ReceiptMaxSizeBytes = 5 * 1024 * 1024
	MIMETypeJPEG        = "image/jpeg"
	MIMETypePNG         = "image/png"
	MIMETypePDF         = "application/pdf"
)

// 订单编号前缀
const (
	OrderNoPrefix = "GP"
)

// 通知模板变量名常量
const (
	TemplateVarToName    = "to_name"
	TemplateVarToEmail   = "to_email"
	TemplateVarFromName  = "from_name"
	TemplateVarFromEmail = "from_email"
	TemplateVarMessage   = "message"
)
