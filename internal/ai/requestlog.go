package ai

import (
	"sync"
	"time"
)

// DefaultRequestLogCapacity — сколько последних запросов к LLM держим в памяти.
const DefaultRequestLogCapacity = 10

// RequestLog — телеметрия одного обращения к LLM. Живет только в памяти
// процесса: это наблюдаемость текущей сессии, а не журнал аудита.
type RequestLog struct {
	Timestamp        time.Time `json:"timestamp"`
	Provider         string    `json:"provider"`
	Model            string    `json:"model"`
	InputTokens      int       `json:"input_tokens"`
	OutputTokens     int       `json:"output_tokens"`
	GenerationTimeMs int64     `json:"generation_time_ms"`
	Status           string    `json:"status"` // "success" или "error"
	ErrorMessage     string    `json:"error_message,omitempty"`
}

// TokensPerSecond возвращает скорость генерации выходных токенов.
func (l RequestLog) TokensPerSecond() float64 {
	if l.GenerationTimeMs <= 0 {
		return 0
	}
	return float64(l.OutputTokens) / float64(l.GenerationTimeMs) * 1000
}

// RequestLogBuffer — кольцевой буфер фиксированной емкости: новые записи
// вытесняют самые старые. Append сериализуется мьютексом, чтобы порядок
// вытеснения сохранялся и при конкурентных вызовах.
type RequestLogBuffer struct {
	mu      sync.Mutex
	entries []RequestLog
	maxSize int
}

// NewRequestLogBuffer создает буфер на maxSize записей.
func NewRequestLogBuffer(maxSize int) *RequestLogBuffer {
	if maxSize <= 0 {
		maxSize = DefaultRequestLogCapacity
	}
	return &RequestLogBuffer{maxSize: maxSize}
}

// Add добавляет запись, при переполнении вытесняя самую старую.
func (b *RequestLogBuffer) Add(entry RequestLog) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = append(b.entries, entry)
	if len(b.entries) > b.maxSize {
		b.entries = b.entries[len(b.entries)-b.maxSize:]
	}
}

// Snapshot возвращает копию содержимого от старых записей к новым.
// Вызывающий никогда не видит буфер в процессе мутации.
func (b *RequestLogBuffer) Snapshot() []RequestLog {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]RequestLog, len(b.entries))
	copy(out, b.entries)
	return out
}
