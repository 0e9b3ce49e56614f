package get_time_slots

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}
