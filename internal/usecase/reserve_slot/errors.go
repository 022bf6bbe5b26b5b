package reserve_slot

import "errors"

var (
	// ErrSlotNotOffered возвращается, когда интервал не является слотом календаря инструктора
	// (нет календаря, календарь неактивен, нерабочий день, не совпадает с сеткой или перерыв)
	ErrSlotNotOffered = errors.New("reserve_slot: slot is not offered by the instructor calendar")

	// ErrTooLateToBook возвращается, когда слот начинается раньше минимального времени уведомления
	ErrTooLateToBook = errors.New("reserve_slot: too late to book this slot")

	// ErrConflict возвращается, когда слот уже занят (slot no longer available).
	// Клиенту следует заново запросить доступные слоты.
	ErrConflict = errors.New("reserve_slot: slot no longer available")

	// ErrConfiguration возвращается, когда календарь инструктора структурно некорректен
	ErrConfiguration = errors.New("reserve_slot: instructor calendar is misconfigured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reserve_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reserve_slot: internal error")
)
