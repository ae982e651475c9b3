package dto

import (
	"github.com/ignatzorin/review-platform/internal/models"
)

// ErrorResponse — стандартный формат ошибки.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse — стандартный формат успешного ответа с сообщением.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// AuthResponse — ответ на регистрацию и вход.
type AuthResponse struct {
	User        *models.User `json:"user"`
	AccessToken string       `json:"access_token"`
}

// SubmitReviewResponse — итог подачи рецензии. При отклонении фильтром
// accepted=false, review отсутствует.
type SubmitReviewResponse struct {
	Accepted bool           `json:"accepted"`
	Review   *models.Review `json:"review,omitempty"`
}
