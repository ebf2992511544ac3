package request

import (
	"seat-redeem/internal/domain/user"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Username, user.Password, error) {
	username, err := user.NewUsername(r.Username)
	if err != nil {
		return user.Username{}, user.Password{}, err
	}
	pw, err := user.NewPassword(r.Password)
	if err != nil {
		return user.Username{}, user.Password{}, err
	}
	return username, pw, nil
}
