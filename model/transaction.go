package model

import "time"

type TransactionStatus string

const (
	StatusWaitingPayment      TransactionStatus = "WAITING_FOR_PAYMENT"
	StatusWaitingConfirmation TransactionStatus = "WAITING_FOR_CONFIRMATION"
	StatusPaid                TransactionStatus = "PAID"
	StatusCancelled           TransactionStatus = "CANCELLED"
	StatusExpired             TransactionStatus = "EXPIRED"
)

type PaymentMethod string

const (
	MethodManualTransfer PaymentMethod = "MANUAL_TRANSFER"
	MethodGateway        PaymentMethod = "PAYMENT_GATEWAY"
)

// Transaction mirrors the backend's transaction resource. The backend owns
// the lifecycle; this tier only caches a page of rows and requests
// transitions via the action endpoints.
type Transaction struct {
	UUID          string            `json:"uuid"`
	UserID        string            `json:"user_id"`
	PropertyID    string            `json:"property_id"`
	PropertyName  string            `json:"property_name"`
	RoomID        string            `json:"room_id"`
	RoomName      string            `json:"room_name"`
	Quantity      int               `json:"qty"`
	Total         float64           `json:"total"`
	StartDate     time.Time         `json:"start_date"`
	EndDate       time.Time         `json:"end_date"`
	Status        TransactionStatus `json:"status"`
	PaymentMethod PaymentMethod     `json:"payment_method"`
	PaymentProof  *string           `json:"payment_proof,omitempty"`
	ExpiredAt     *time.Time        `json:"expired_at,omitempty"`
	InvoiceURL    *string           `json:"invoice_url,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

// HasProof reports whether a payment proof is attached.
func (t Transaction) HasProof() bool {
	return t.PaymentProof != nil && *t.PaymentProof != ""
}
