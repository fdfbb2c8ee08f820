// Package response содержит вспомогательные типы для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// ErrorResponse — структура JSON-ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error" example:"Unauthorized"`
}

// SuccessResponse — структура JSON-ответа успешного удаления.
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// Тексты ошибок, отдаваемые наружу.
const (
	MsgUnauthorized = "Unauthorized"
	MsgForbidden    = "Forbidden"
	MsgInternal     = "Internal server error"
)

// Error возвращает ErrorResponse с переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// Unauthorized возвращает тело ответа 401.
func Unauthorized() ErrorResponse {
	return ErrorResponse{Error: MsgUnauthorized}
}

// Forbidden возвращает тело ответа 403.
func Forbidden() ErrorResponse {
	return ErrorResponse{Error: MsgForbidden}
}

// Internal возвращает тело ответа 500 без деталей сбоя.
func Internal() ErrorResponse {
	return ErrorResponse{Error: MsgInternal}
}

// Success возвращает тело ответа {"success":true}.
func Success() SuccessResponse {
	return SuccessResponse{Success: true}
}

// ValidationError формирует ErrorResponse на основе ошибок валидации.
// Каждое нарушение формируется в человеко‑читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		case "uuid":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s can contain only uuid", err.Field()))
		case "oneof":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be one of: %s", err.Field(), err.Param()))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is too short", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return ErrorResponse{Error: strings.Join(errsMsgs, ", ")}
}
