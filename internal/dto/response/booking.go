package response

import (
	"clinic-booking/internal/data/entity"
)

// BookingResult is the admission outcome. A duplicate is a normal outcome,
// not an error: Accepted is false and Booking carries the existing record.
type BookingResult struct {
	Accepted bool            `json:"accepted"`
	Booking  *entity.Booking `json:"booking"`
}
