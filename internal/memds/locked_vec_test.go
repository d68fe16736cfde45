package memds

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestLockedVec(t *testing.T) {
	l := NewLockedVec(1)
	assert.False(t, l.IsEmpty())

	l.PushAll(2, 3)
	l.Push(4)
	assert.Equal(t, 4, l.Len())
	assert.Equal(t, []int{1, 2, 3, 4}, l.Values())

	elem, ok := l.Pop()
	assert.True(t, ok)
	assert.Equal(t, 4, elem)

	it := l.Iterator()
	assert.True(t, it.Next())
	assert.Equal(t, 1, it.Value())

	l.Clear()
	assert.True(t, l.IsEmpty())
	_, ok = l.Pop()
	assert.False(t, ok)
}

func TestLockedVecExclusive(t *testing.T) {
	defer goleak.VerifyNone(t)

	const goroutineCount = 10
	const pushesPerGoroutine = 100

	l := NewLockedVec[int]()
	wg := new(sync.WaitGroup)
	wg.Add(goroutineCount)

	for i := 0; i < goroutineCount; i++ {
		go func() {
			defer wg.Done()
			for k := 0; k < pushesPerGoroutine; k++ {
				l.Exclusive(func(v *Vec[int]) {
					//the length read and the push are atomic.
					v.Push(v.Len())
				})
			}
		}()
	}
	wg.Wait()

	values := l.Values()
	assert.Len(t, values, goroutineCount*pushesPerGoroutine)
	for i, v := range values {
		if !assert.Equal(t, i, v) {
			return
		}
	}
}
