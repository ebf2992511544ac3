package request

type VerifyRequest struct {
	Code string `json:"code" binding:"required,max=64"`
}

type ConfirmRequest struct {
	Code       string `json:"code" binding:"required,max=64"`
	Email      string `json:"email" binding:"required,email"`
	ResourceID *int64 `json:"resource_id" binding:"omitempty,min=1"`
}
