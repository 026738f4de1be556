package errors

import (
	"errors"
	"fmt"
)

var (
	// Общие
	ErrNotFound   = errors.New("запись не найдена")
	ErrBadRequest = errors.New("неверный запрос")

	// Ограничения хранилища
	ErrConflict         = errors.New("запись с такими уникальными значениями уже существует")
	ErrInvalidReference = errors.New("связанная запись не существует")

	// Сессия БД
	ErrNoSession = errors.New("сессия БД недоступна")
)

// HttpError несет явный HTTP-результат вместе с исходной ошибкой.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

// Кастомные типы ошибок
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
