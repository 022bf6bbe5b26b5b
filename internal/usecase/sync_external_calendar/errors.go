package sync_external_calendar

import "errors"

var (
	// ErrCalendarUnavailable возвращается, когда мост календарей недоступен.
	// Ранее синхронизированные блоки не трогаются.
	ErrCalendarUnavailable = errors.New("sync_external_calendar: external calendar unavailable")

	// ErrNotLinked возвращается, когда у инструктора нет подключенного внешнего календаря
	ErrNotLinked = errors.New("sync_external_calendar: instructor has no linked calendar")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("sync_external_calendar: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("sync_external_calendar: internal error")
)
