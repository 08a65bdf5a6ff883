package model

import "time"

// Review is tied to exactly one transaction, which is how the backend
// enforces "reviewed after a completed stay".
type Review struct {
	ID              string    `json:"id"`
	TransactionUUID string    `json:"transaction_uuid"`
	PropertyID      string    `json:"property_id"`
	UserName        string    `json:"user_name"`
	Rating          int       `json:"rating"`
	Comment         string    `json:"comment"`
	Replies         []Reply   `json:"replies,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Reply is a tenant's answer to a review of their property.
type Reply struct {
	ID        string    `json:"id"`
	ReviewID  string    `json:"review_id"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateReviewReq is the review submission payload.
// swagger:model CreateReviewReq
type CreateReviewReq struct {
	TransactionUUID string `json:"transaction_uuid" validate:"required"`
	Rating          int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment         string `json:"comment" validate:"required"`
}

// ReplyReviewReq is the tenant reply payload.
// swagger:model ReplyReviewReq
type ReplyReviewReq struct {
	ReviewID string `json:"review_id" validate:"required"`
	Comment  string `json:"comment" validate:"required"`
}
