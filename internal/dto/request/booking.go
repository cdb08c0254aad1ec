package request

type CreateBookingRequest struct {
	Patient     string  `json:"patient" validate:"required,email"`
	PatientName string  `json:"patientName" validate:"required,min=2,max=100"`
	Phone       string  `json:"phone" validate:"omitempty,max=20"`
	Treatment   string  `json:"treatment" validate:"required"`
	Date        string  `json:"date" validate:"required"`
	Slot        string  `json:"slot" validate:"required"`
	Price       float64 `json:"price" validate:"omitempty,gt=0"`
}
