package request

type RecordPaymentRequest struct {
	TransactionID string  `json:"transactionId" validate:"required"`
	Amount        float64 `json:"amount" validate:"omitempty,gt=0"`
}

type CreatePaymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}
