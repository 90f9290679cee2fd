package ai

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogBuffer_EvictsOldest(t *testing.T) {
	buf := NewRequestLogBuffer(3)
	for i := 0; i < 5; i++ {
		buf.Add(RequestLog{Model: fmt.Sprintf("model-%d", i)})
	}

	snapshot := buf.Snapshot()
	require.Len(t, snapshot, 3)
	// Остаются три самые свежие записи в порядке добавления
	assert.Equal(t, "model-2", snapshot[0].Model)
	assert.Equal(t, "model-3", snapshot[1].Model)
	assert.Equal(t, "model-4", snapshot[2].Model)
}

func TestRequestLogBuffer_SnapshotIsACopy(t *testing.T) {
	buf := NewRequestLogBuffer(5)
	buf.Add(RequestLog{Model: "a"})

	snapshot := buf.Snapshot()
	snapshot[0].Model = "mutated"

	assert.Equal(t, "a", buf.Snapshot()[0].Model)
}

func TestRequestLogBuffer_DefaultCapacity(t *testing.T) {
	buf := NewRequestLogBuffer(0)
	for i := 0; i < DefaultRequestLogCapacity+5; i++ {
		buf.Add(RequestLog{})
	}
	assert.Len(t, buf.Snapshot(), DefaultRequestLogCapacity)
}

func TestRequestLog_TokensPerSecond(t *testing.T) {
	entry := RequestLog{OutputTokens: 50, GenerationTimeMs: 2000}
	assert.InDelta(t, 25.0, entry.TokensPerSecond(), 0.001)

	// Нулевая длительность не делит на ноль
	assert.Zero(t, RequestLog{OutputTokens: 50}.TokensPerSecond())
}
