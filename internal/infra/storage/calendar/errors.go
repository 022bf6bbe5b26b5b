package calendar

import "errors"

var (
	// ErrCalendarNotFound возвращается, когда у инструктора нет рабочего календаря
	ErrCalendarNotFound = errors.New("calendar.repository: working calendar not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("calendar.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("calendar.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("calendar.repository: failed to scan row")
)
