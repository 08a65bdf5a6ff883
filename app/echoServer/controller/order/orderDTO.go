package order

type CreateOrderReq struct {
	RoomID        string `json:"room_id" validate:"required"`
	StartDate     string `json:"start_date" validate:"required"`
	EndDate       string `json:"end_date" validate:"required"`
	Quantity      int    `json:"qty" validate:"required,gt=0"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=MANUAL_TRANSFER PAYMENT_GATEWAY"`
}

type ListOrdersQuery struct {
	Page    int    `query:"page"`
	Take    int    `query:"take"`
	SortBy  string `query:"sortBy"`
	SortDir string `query:"sortOrder" validate:"omitempty,oneof=asc desc"`
	Status  string `query:"status"`
	Search  string `query:"search"`
	Date    string `query:"date"`
}
