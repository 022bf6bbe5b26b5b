package busyblock

import "errors"

var (
	// ErrCacheRead возвращается при ошибке чтения из Redis
	ErrCacheRead = errors.New("busyblock.cache: failed to read blocks")

	// ErrCacheWrite возвращается при ошибке записи в Redis
	ErrCacheWrite = errors.New("busyblock.cache: failed to write blocks")

	// ErrDecode возвращается, когда в кеше лежит нечитаемое значение
	ErrDecode = errors.New("busyblock.cache: failed to decode blocks")
)
