package store

import "time"

// ProductRegisteredEvent is emitted when a product enters a store's catalog.
type ProductRegisteredEvent struct {
	StoreName   string
	ProductName string
	Stock       int
	OccurredAt  time.Time
}

func (ProductRegisteredEvent) EventName() string { return "store.product_registered" }

func NewProductRegisteredEvent(storeName, productName string, stock int) ProductRegisteredEvent {
	return ProductRegisteredEvent{
		StoreName:   storeName,
		ProductName: productName,
		Stock:       stock,
		OccurredAt:  time.Now().UTC(),
	}
}

// PurchaseCompletedEvent is emitted when a purchase commits.
type PurchaseCompletedEvent struct {
	ReceiptID  string
	CustomerID string
	Total      string
	OccurredAt time.Time
}

func (PurchaseCompletedEvent) EventName() string { return "store.purchase_completed" }

func NewPurchaseCompletedEvent(receiptID, customerID, total string) PurchaseCompletedEvent {
	return PurchaseCompletedEvent{
		ReceiptID:  receiptID,
		CustomerID: customerID,
		Total:      total,
		OccurredAt: time.Now().UTC(),
	}
}

// PurchaseFailedEvent is emitted when a purchase attempt is cancelled, either
// on an empty cart or on insufficient stock at checkout.
type PurchaseFailedEvent struct {
	ReceiptID  string
	CustomerID string
	Reason     string
	Product    string
	OccurredAt time.Time
}

func (PurchaseFailedEvent) EventName() string { return "store.purchase_failed" }

func NewPurchaseFailedEvent(receiptID, customerID, reason, productName string) PurchaseFailedEvent {
	return PurchaseFailedEvent{
		ReceiptID:  receiptID,
		CustomerID: customerID,
		Reason:     reason,
		Product:    productName,
		OccurredAt: time.Now().UTC(),
	}
}
