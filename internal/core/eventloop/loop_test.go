package eventloop

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoop_SubmitOrder 测试任务按提交顺序执行
func TestLoop_SubmitOrder(t *testing.T) {
	loop := NewLoop(NewConfig())
	defer loop.Close()

	var mu sync.Mutex
	var got []int
	var wg sync.WaitGroup
	wg.Add(100)

	for i := 0; i < 100; i++ {
		i := i
		loop.Submit(func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
			wg.Done()
		})
	}
	wg.Wait()

	for i := 0; i < 100; i++ {
		assert.Equal(t, i, got[i])
	}
}

// TestLoop_InLoop 测试循环 goroutine 判定
func TestLoop_InLoop(t *testing.T) {
	loop := NewLoop(NewConfig())
	defer loop.Close()

	assert.False(t, loop.InLoop())

	result := make(chan bool, 1)
	loop.Submit(func() {
		result <- loop.InLoop()
	})
	assert.True(t, <-result)
}

// TestLoop_SubmitFromLoop 测试循环内提交不死锁
func TestLoop_SubmitFromLoop(t *testing.T) {
	loop := NewLoop(NewConfig())
	defer loop.Close()

	done := make(chan struct{})
	var order []string
	loop.Submit(func() {
		order = append(order, "outer")
		loop.Submit(func() {
			order = append(order, "inner")
			close(done)
		})
		order = append(order, "outer-end")
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("inner task never ran")
	}
	assert.Equal(t, []string{"outer", "outer-end", "inner"}, order)
}

// TestLoop_CloseDrains 测试关闭前排空队列
func TestLoop_CloseDrains(t *testing.T) {
	loop := NewLoop(NewConfig())

	var mu sync.Mutex
	count := 0
	for i := 0; i < 50; i++ {
		loop.Submit(func() {
			mu.Lock()
			count++
			mu.Unlock()
		})
	}

	require.NoError(t, loop.Close())
	assert.Equal(t, 50, count)
}

// TestLoop_SubmitAfterClose 测试关闭后提交被丢弃
func TestLoop_SubmitAfterClose(t *testing.T) {
	loop := NewLoop(NewConfig())
	require.NoError(t, loop.Close())

	ran := false
	loop.Submit(func() { ran = true })
	time.Sleep(10 * time.Millisecond)
	assert.False(t, ran)
}

// TestLoop_CloseIdempotent 测试重复关闭
func TestLoop_CloseIdempotent(t *testing.T) {
	loop := NewLoop(NewConfig())
	require.NoError(t, loop.Close())
	require.NoError(t, loop.Close())
}
