package requestlog_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hgo124578/sample-project/requestlog"
)

func TestRingBuffer_AddAndLast(t *testing.T) {
	rb := requestlog.NewRingBuffer[string](3)

	assert.Equal(t, uint64(0), rb.Len())
	assert.Equal(t, uint64(3), rb.Cap())
	assert.Empty(t, rb.Last(10))

	rb.Add("a")
	rb.Add("b")

	assert.Equal(t, uint64(2), rb.Len())
	assert.Equal(t, []string{"a", "b"}, rb.Last(10))
	assert.Equal(t, []string{"b"}, rb.Last(1))
}

func TestRingBuffer_Overwrite(t *testing.T) {
	rb := requestlog.NewRingBuffer[int](3)

	for i := 1; i <= 5; i++ {
		rb.Add(i)
	}

	assert.Equal(t, uint64(3), rb.Len())
	assert.Equal(t, []int{3, 4, 5}, rb.Last(3))
	assert.Equal(t, []int{4, 5}, rb.Last(2))
}

func TestRingBuffer_Reset(t *testing.T) {
	rb := requestlog.NewRingBuffer[int](2)
	rb.Add(1)
	rb.Add(2)

	rb.Reset()

	assert.Equal(t, uint64(0), rb.Len())
	assert.Empty(t, rb.Last(2))

	rb.Add(3)
	assert.Equal(t, []int{3}, rb.Last(2))
}

func TestRingBuffer_ZeroCapacityPanics(t *testing.T) {
	assert.Panics(t, func() {
		requestlog.NewRingBuffer[int](0)
	})
}

func TestRingBuffer_ConcurrentAdd(t *testing.T) {
	rb := requestlog.NewRingBuffer[int](100)

	var wg sync.WaitGroup
	for g := 0; g < 10; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				rb.Add(i)
				_ = rb.Last(5)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(100), rb.Len())
}
