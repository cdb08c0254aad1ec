package response

import (
	"clinic-booking/internal/data/entity"
)

type UpsertUserResponse struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

type AdminCheckResponse struct {
	Admin bool `json:"admin"`
}
