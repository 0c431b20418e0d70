package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/goldenpolis/storefront/internal/constants"
	"github.com/goldenpolis/storefront/internal/logger"
	"github.com/goldenpolis/storefront/internal/models"
	"github.com/goldenpolis/storefront/internal/notify"
	"github.com/goldenpolis/storefront/internal/upload"
)

// CheckoutOptions 结账流程配置
type CheckoutOptions struct {
	UploadTimeout    time.Duration
	NotifyTimeout    time.Duration
	VendorName       string
	VendorEmail      string
	ShopName         string
	Currency         string
	VendorTemplate   string
	CustomerTemplate string
}

// CheckoutInput 结账提交输入
type CheckoutInput struct {
	Customer        models.Customer
	PaymentMethod   string // 支付方式键
	Receipt         []byte
	ReceiptFilename string
}

// CheckoutService 结账编排服务。
// 流程为固定的阶段序列：校验 → 上传收据 → 发送通知 → 落单 → 清空购物车。
// 上游阶段失败时不执行任何下游副作用；同一实例的提交串行执行。
type CheckoutService struct {
	mu       sync.Mutex
	cart     *CartService
	orders   *OrderService
	payments *PaymentMethodService
	uploader upload.ReceiptUploader
	notifier notify.Notifier
	options  CheckoutOptions

	state string
}

// NewCheckoutService 创建结账服务
func NewCheckoutService(
	cart *CartService,
	orders *OrderService,
	payments *PaymentMethodService,
	uploader upload.ReceiptUploader,
	notifier notify.Notifier,
	options CheckoutOptions,
) *CheckoutService {
	if options.UploadTimeout <= 0 {
		options.UploadTimeout = 15 * time.Second
	}
	if options.NotifyTimeout <= 0 {
		options.NotifyTimeout = 10 * time.Second
	}
	return &CheckoutService{
		cart:     cart,
		orders:   orders,
		payments: payments,
		uploader: uploader,
		notifier: notifier,
		options:  options,
		state:    constants.CheckoutStateIdle,
	}
}

// State 返回最近一次提交停留的阶段
func (s *CheckoutService) State() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Submit 执行一次结账。
// 返回的订单仅在 err == nil 时有效；已有提交进行中时直接拒绝。
func (s *CheckoutService) Submit(ctx context.Context, input CheckoutInput) (*models.Order, error) {
	if !s.mu.TryLock() {
		return nil, ErrCheckoutBusy
	}
	defer s.mu.Unlock()

	order, err := s.run(ctx, input)
	if err != nil {
		s.setState(constants.CheckoutStateFailed)
		return nil, err
	}
	s.setState(constants.CheckoutStateDone)
	return order, nil
}

func (s *CheckoutService) run(ctx context.Context, input CheckoutInput) (*models.Order, error) {
	// 阶段一：校验。任何失败都不产生副作用。
	s.setState(constants.CheckoutStateValidating)

	items, err := s.cart.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	if strings.TrimSpace(input.Customer.Name) == "" || strings.TrimSpace(input.Customer.Email) == "" {
		return nil, ErrCustomerIncomplete
	}
	method, ok := s.payments.FindByKey(input.PaymentMethod)
	if !ok {
		return nil, ErrPaymentMethodUnknown
	}
	if len(input.Receipt) == 0 {
		return nil, ErrReceiptRequired
	}
	receipt, err := upload.ValidateReceipt(input.Receipt, input.ReceiptFilename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReceiptInvalid, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 阶段二：上传收据。失败时下游全部跳过。
	s.setState(constants.CheckoutStateUploadingReceipt)
	uploadCtx, cancelUpload := context.WithTimeout(ctx, s.options.UploadTimeout)
	receiptURL, err := s.uploader.Upload(uploadCtx, receipt)
	cancelUpload()
	if err != nil {
		logger.Errorw("checkout_upload_failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	order, err := s.orders.BuildOrder(ctx, BuildOrderInput{
		Items:         items,
		Customer:      input.Customer,
		PaymentMethod: method.Name,
		ReceiptURL:    receiptURL,
		Currency:      s.options.Currency,
	})
	if err != nil {
		return nil, err
	}

	// 阶段三：发送通知。失败时订单不落盘、购物车不变。
	// 客户只收到一封邮件，数字商品下载链接包含在其中。
	s.setState(constants.CheckoutStateNotifying)
	notifyCtx, cancelNotify := context.WithTimeout(ctx, s.options.NotifyTimeout)
	err = s.sendNotifications(notifyCtx, order)
	cancelNotify()
	if err != nil {
		logger.Errorw("checkout_notify_failed", "error", err, "order_no", order.OrderNo)
		return nil, fmt.Errorf("%w: %v", ErrNotifyFailed, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 阶段四：订单落盘
	s.setState(constants.CheckoutStatePersisting)
	if err := s.orders.Persist(ctx, order); err != nil {
		return nil, err
	}

	// 阶段五：清空购物车
	s.setState(constants.CheckoutStateClearingCart)
	if err := s.cart.Clear(ctx); err != nil {
		return nil, err
	}

	logger.Infow("checkout_completed",
		"order_no", order.OrderNo,
		"total", order.TotalAmount.String(),
		"payment_method", order.PaymentMethod,
	)
	return order, nil
}

func (s *CheckoutService) sendNotifications(ctx context.Context, order *models.Order) error {
	vendorVars := map[string]string{
		constants.TemplateVarToName:    s.options.VendorName,
		constants.TemplateVarToEmail:   s.options.VendorEmail,
		constants.TemplateVarFromName:  order.Customer.Name,
		constants.TemplateVarFromEmail: order.Customer.Email,
		constants.TemplateVarMessage:   s.buildVendorMessage(order),
	}
	if err := s.notifier.Send(ctx, s.options.VendorTemplate, vendorVars); err != nil {
		return err
	}

	customerVars := map[string]string{
		constants.TemplateVarToName:   order.Customer.Name,
		constants.TemplateVarToEmail:  order.Customer.Email,
		constants.TemplateVarFromName: s.options.ShopName,
		constants.TemplateVarMessage:  s.buildCustomerMessage(order),
	}
	return s.notifier.Send(ctx, s.options.CustomerTemplate, customerVars)
}

func (s *CheckoutService) buildVendorMessage(order *models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "NUEVO PEDIDO - %s\n\n", s.options.ShopName)
	fmt.Fprintf(&b, "Cliente: %s\n", order.Customer.Name)
	fmt.Fprintf(&b, "Teléfono: %s\n", order.Customer.Phone)
	fmt.Fprintf(&b, "Email: %s\n", order.Customer.Email)
	fmt.Fprintf(&b, "Ciudad: %s\n", order.Customer.City)
	fmt.Fprintf(&b, "País: %s\n\n", order.Customer.Country)
	fmt.Fprintf(&b, "Método de pago: %s\n\n", order.PaymentMethod)
	b.WriteString("Productos:\n")
	writeLineItems(&b, order.Items)
	fmt.Fprintf(&b, "\nTOTAL: $%s\n", order.TotalAmount.StringFixed(0))
	fmt.Fprintf(&b, "Comprobante: %s\n", order.ReceiptURL)
	return b.String()
}

func (s *CheckoutService) buildCustomerMessage(order *models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "¡Gracias por tu compra %s!\n\n", order.Customer.Name)
	b.WriteString("Resumen del pedido:\n\n")
	writeLineItems(&b, order.Items)
	fmt.Fprintf(&b, "\nTOTAL PAGADO: $%s\n", order.TotalAmount.StringFixed(0))
	fmt.Fprintf(&b, "Método de pago: %s\n", order.PaymentMethod)
	if len(order.DownloadLinks) > 0 {
		b.WriteString("\nProductos digitales:\n\n")
		for _, link := range order.DownloadLinks {
			fmt.Fprintf(&b, "Descargar: %s\n", link)
		}
		b.WriteString("\nGuarda estos enlaces para futuras descargas.\n")
	}
	return b.String()
}

func writeLineItems(b *strings.Builder, items []models.CartItem) {
	for i, item := range items {
		fmt.Fprintf(b, "%d.\n%s\n", i+1, describeLineItem(item))
	}
}

func describeLineItem(item models.CartItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", item.Name)
	fmt.Fprintf(&b, "Cantidad: %d\n", item.Quantity)
	fmt.Fprintf(&b, "Precio unitario: $%s\n", item.UnitPrice.StringFixed(0))
	fmt.Fprintf(&b, "Subtotal: $%s", item.Subtotal().StringFixed(0))
	if item.Variant != nil {
		if item.Variant.Color != "" {
			fmt.Fprintf(&b, "\nColor: %s", item.Variant.Color)
		}
		if item.Variant.Design != "" {
			fmt.Fprintf(&b, "\nDiseño: %s", item.Variant.Design)
		}
		if item.Variant.Size != "" {
			fmt.Fprintf(&b, "\nTalla: %s", item.Variant.Size)
		}
	}
	return b.String()
}

func (s *CheckoutService) setState(state string) {
	s.state = state
	logger.Debugw("checkout_state", "state", state)
}
