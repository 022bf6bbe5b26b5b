package calendar

import "errors"

var (
	// ErrCalendarNotFound возвращается, когда у инструктора нет рабочего календаря
	ErrCalendarNotFound = errors.New("working calendar not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
