package request

type AddDoctorRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Specialty string `json:"specialty" validate:"omitempty,max=100"`
	Image     string `json:"img" validate:"omitempty,max=500"`
}
