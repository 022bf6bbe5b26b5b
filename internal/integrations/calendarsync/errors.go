package calendarsync

import "errors"

var (
	// ErrInstructorNotLinked возвращается, когда у инструктора нет подключенного внешнего календаря
	ErrInstructorNotLinked = errors.New("instructor has no linked external calendar")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("calendarsync client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("calendarsync client: invalid response")

	// ErrServiceUnavailable возвращается, когда мост календарей недоступен
	// (сетевая ошибка, таймаут, 5xx). Ранее синхронизированные блоки остаются в силе.
	ErrServiceUnavailable = errors.New("calendar bridge unavailable")
)
