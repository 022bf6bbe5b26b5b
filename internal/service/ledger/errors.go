package ledger

import "errors"

var (
	// ErrLoadSessions возвращается при ошибке чтения занятий
	ErrLoadSessions = errors.New("ledger: failed to load driving sessions")

	// ErrLoadCommitments возвращается при ошибке чтения учебных дней классов
	ErrLoadCommitments = errors.New("ledger: failed to load class commitments")

	// ErrLoadTimeOff возвращается при ошибке чтения отпусков
	ErrLoadTimeOff = errors.New("ledger: failed to load time off")

	// ErrLoadBusyBlocks возвращается при ошибке чтения блоков внешнего календаря
	ErrLoadBusyBlocks = errors.New("ledger: failed to load external busy blocks")
)
