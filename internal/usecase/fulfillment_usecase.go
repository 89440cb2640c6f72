package usecase

import (
	"archmarket/internal/domain/entities"
	"archmarket/internal/usecase/interfaces"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrNoRecipient   = errors.New("no recipient email for order")
)

// totalTolerance is the largest item-total vs order-total divergence we
// silently accept; anything above it means legacy data and the stored order
// total wins.
var totalTolerance = decimal.NewFromFloat(0.01)

// NotifyResult summarizes a fulfillment run.
type NotifyResult struct {
	OrderID   string `json:"order_id"`
	Recipient string `json:"recipient,omitempty"`
	FilesSent int    `json:"files_sent"`
}

// IFulfillmentUseCase emails purchased zip plans to the customer.
//
// Notify is idempotent from the caller's perspective: re-sending an already
// fulfilled order just sends again and re-marks. A dispatch failure is
// surfaced but never changes the order status.
type IFulfillmentUseCase interface {
	Notify(ctx context.Context, orderID string) (NotifyResult, error)
}

type FulfillmentUseCase struct {
	orders   interfaces.IOrderRepository
	products interfaces.IProductRepository
	notifier interfaces.INotificationService
}

var _ IFulfillmentUseCase = (*FulfillmentUseCase)(nil)

func NewFulfillmentUseCase(orders interfaces.IOrderRepository, products interfaces.IProductRepository, notifier interfaces.INotificationService) *FulfillmentUseCase {
	return &FulfillmentUseCase{orders: orders, products: products, notifier: notifier}
}

func (u *FulfillmentUseCase) Notify(ctx context.Context, orderID string) (NotifyResult, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return NotifyResult{}, ErrOrderNotFound
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return NotifyResult{}, err
	}
	if order.ID == "" {
		return NotifyResult{}, ErrOrderNotFound
	}

	recipient := order.RecipientEmail()
	if recipient == "" {
		log.Printf("[fulfillment][usecase] no recipient order_id=%s", order.ID)
		return NotifyResult{}, ErrNoRecipient
	}

	total := order.ItemsTotal()
	if diff := total.Sub(order.TotalAmount).Abs(); diff.GreaterThan(totalTolerance) {
		// Stored totals come from checkout and are the billing source of
		// truth; a divergence here points at legacy item rows.
		log.Printf("[fulfillment][usecase] total mismatch order_id=%s items_total=%s order_total=%s", order.ID, total.String(), order.TotalAmount.String())
		total = order.TotalAmount
	}

	var (
		attachments []entities.FileRef
		sentItemIDs []string
		lines       strings.Builder
	)
	for _, it := range order.Items {
		product, err := u.products.GetByID(ctx, it.ProductID)
		if err != nil {
			return NotifyResult{}, err
		}

		name := product.Name
		if name == "" {
			name = it.ProductID
		}
		fmt.Fprintf(&lines, "<li>%s: %d x %s</li>", name, it.Quantity, it.Price.StringFixed(2))

		if product.HasDownload() {
			attachments = append(attachments, entities.FileRef{
				Filename: fmt.Sprintf("%s.zip", name),
				Key:      product.ZipFileKey,
			})
			sentItemIDs = append(sentItemIDs, it.ID)
		}
	}

	if len(attachments) == 0 {
		log.Printf("[fulfillment][usecase] nothing to deliver order_id=%s", order.ID)
		return NotifyResult{OrderID: order.ID, Recipient: recipient, FilesSent: 0}, nil
	}
	// Startup tolerates a missing SENDGRID_API_KEY; delivering files does not.
	if u.notifier == nil {
		log.Printf("[fulfillment][usecase] notifier not configured order_id=%s", order.ID)
		return NotifyResult{}, ErrNotificationFailed
	}

	n := entities.Notification{
		Recipient: recipient,
		Subject:   fmt.Sprintf("Your order %s is ready", order.ID),
		HTMLBody: fmt.Sprintf(
			"<p>Thanks for your purchase!</p><ul>%s</ul><p>Total: %s</p><p>Your plan files are attached.</p>",
			lines.String(), total.StringFixed(2),
		),
		Attachments: attachments,
	}
	if err := u.notifier.Send(ctx, n); err != nil {
		log.Printf("[fulfillment][usecase] dispatch failed order_id=%s err=%v", order.ID, err)
		return NotifyResult{}, err
	}

	if _, err := u.orders.MarkZipSent(ctx, order.ID, sentItemIDs); err != nil {
		// The email is out; a marking failure only affects bookkeeping.
		log.Printf("[fulfillment][usecase] mark sent failed order_id=%s err=%v", order.ID, err)
		return NotifyResult{}, err
	}

	log.Printf("[fulfillment][usecase] delivered order_id=%s files=%d", order.ID, len(attachments))
	return NotifyResult{OrderID: order.ID, Recipient: recipient, FilesSent: len(attachments)}, nil
}
