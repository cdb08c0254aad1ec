package usecase

import (
	"clinic-booking/internal/data/entity"
	"clinic-booking/internal/dto/response"
)

// ComputeAvailability partitions each service's slot catalog for a day into
// open and booked labels. Pure function: same inputs, same output, no side
// effects. A date with no matching bookings (including an unknown or
// malformed one) yields the full catalog with empty booked lists.
func ComputeAvailability(date string, services []*entity.Service, bookings []*entity.Booking) []*response.AvailableService {
	result := make([]*response.AvailableService, 0, len(services))

	for _, service := range services {
		booked := make([]string, 0)
		bookedSet := make(map[string]struct{})

		for _, b := range bookings {
			if b.Treatment != service.Name || b.Date != date {
				continue
			}
			booked = append(booked, b.Slot)
			bookedSet[b.Slot] = struct{}{}
		}

		// Catalog order is preserved; membership collapses duplicate booked
		// labels to a single exclusion.
		available := make([]string, 0, len(service.Slots))
		for _, slot := range service.Slots {
			if _, taken := bookedSet[slot]; !taken {
				available = append(available, slot)
			}
		}

		result = append(result, &response.AvailableService{
			Name:   service.Name,
			Slots:  available,
			Booked: booked,
		})
	}

	return result
}
