package chann

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnlimitedChannelBasic(t *testing.T) {
	ch := NewUnlimitedChannel[int]()
	assert.Equal(t, 0, ch.Len())

	ch.Push(1)
	ch.Push(2)
	assert.Equal(t, 2, ch.Len())

	{
		item, ok := ch.Get()
		assert.True(t, ok)
		assert.Equal(t, 1, item)
	}
	{
		item, ok := ch.Get()
		assert.True(t, ok)
		assert.Equal(t, 2, item)
	}

	ch.Close()
	{
		_, ok := ch.Get()
		assert.False(t, ok)
	}
	assert.Panics(t, func() { ch.Push(3) })
}

func TestUnlimitedChannelDrainAfterClose(t *testing.T) {
	ch := NewUnlimitedChannel[int]()
	ch.Push(1)
	ch.Push(2)
	ch.Close()

	// Items pushed before the close are still delivered.
	item, ok := ch.Get()
	assert.True(t, ok)
	assert.Equal(t, 1, item)

	buffer, ok := ch.GetMultiple(make([]int, 0, 8))
	assert.True(t, ok)
	assert.Equal(t, []int{2}, buffer)

	_, ok = ch.Get()
	assert.False(t, ok)
}

func TestUnlimitedChannelGetMultiple(t *testing.T) {
	ch := NewUnlimitedChannel[int]()
	for i := 0; i < 10; i++ {
		ch.Push(i)
	}

	buffer, ok := ch.GetMultiple(make([]int, 0, 4))
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2, 3}, buffer)
	assert.Equal(t, 6, ch.Len())
}

func TestUnlimitedChannelConcurrent(t *testing.T) {
	const (
		producers = 4
		perWorker = 1000
	)
	ch := NewUnlimitedChannel[int]()

	var producing sync.WaitGroup
	producing.Add(producers)
	for p := 0; p < producers; p++ {
		go func() {
			defer producing.Done()
			for i := 0; i < perWorker; i++ {
				ch.Push(i)
			}
		}()
	}

	done := make(chan int)
	go func() {
		count := 0
		for {
			if _, ok := ch.Get(); !ok {
				break
			}
			count++
		}
		done <- count
	}()

	producing.Wait()
	ch.Close()
	assert.Equal(t, producers*perWorker, <-done)
}
