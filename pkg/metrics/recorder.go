package metrics

// AvailabilityRecorder адаптер метрик для usecase доступности и бронирования.
// Nil-получатель безопасен: все методы ничего не делают.
type AvailabilityRecorder struct {
	m *Metrics
}

// NewAvailabilityRecorder создает рекордер поверх набора метрик (m может быть nil)
func NewAvailabilityRecorder(m *Metrics) *AvailabilityRecorder {
	return &AvailabilityRecorder{m: m}
}

// SlotsGenerated учитывает сгенерированные кандидаты
func (r *AvailabilityRecorder) SlotsGenerated(n int) {
	if r == nil || r.m == nil || n == 0 {
		return
	}
	r.m.SlotsGenerated.WithLabelValues().Add(float64(n))
}

// SlotsFiltered учитывает отброшенные слоты по причине (notice, occupancy)
func (r *AvailabilityRecorder) SlotsFiltered(reason string, n int) {
	if r == nil || r.m == nil || n == 0 {
		return
	}
	r.m.SlotsFiltered.WithLabelValues(reason).Add(float64(n))
}

// SlotsReturned учитывает слоты, отданные клиенту
func (r *AvailabilityRecorder) SlotsReturned(n int) {
	if r == nil || r.m == nil || n == 0 {
		return
	}
	r.m.SlotsReturned.WithLabelValues().Add(float64(n))
}

// Reservation учитывает попытку бронирования (created, conflict, rejected, error)
func (r *AvailabilityRecorder) Reservation(result string) {
	if r == nil || r.m == nil {
		return
	}
	r.m.Reservations.WithLabelValues(result).Inc()
}

// CalendarSync учитывает запуск синхронизации внешнего календаря
func (r *AvailabilityRecorder) CalendarSync(result string) {
	if r == nil || r.m == nil {
		return
	}
	r.m.CalendarSyncRuns.WithLabelValues(result).Inc()
}
