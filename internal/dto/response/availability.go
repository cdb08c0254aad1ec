package response

// AvailableService is one service for a given day, partitioned into open
// and booked slot labels. Slot order follows the catalog.
type AvailableService struct {
	Name   string   `json:"name"`
	Slots  []string `json:"slots"`
	Booked []string `json:"booked"`
}
