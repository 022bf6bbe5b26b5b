package get_available_slots

import "errors"

var (
	// ErrConfiguration возвращается, когда календарь инструктора структурно некорректен.
	// Оборачивает *scheduling.ConfigurationError со списком проблем.
	ErrConfiguration = errors.New("get_available_slots: instructor calendar is misconfigured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
