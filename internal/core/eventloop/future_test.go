package eventloop

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPromise_Complete 测试完成与结果读取
func TestPromise_Complete(t *testing.T) {
	loop := NewLoop(NewConfig())
	defer loop.Close()

	p := NewPromise(loop)
	p.Complete(nil)

	<-p.Done()
	assert.NoError(t, p.Err())
}

// TestPromise_CompleteWithError 测试失败完成
func TestPromise_CompleteWithError(t *testing.T) {
	loop := NewLoop(NewConfig())
	defer loop.Close()

	boom := errors.New("boom")
	p := NewPromise(loop)
	p.Complete(boom)

	<-p.Done()
	assert.Equal(t, boom, p.Err())
}

// TestPromise_CompleteTwicePanics 测试重复完成 panic
func TestPromise_CompleteTwicePanics(t *testing.T) {
	loop := NewLoop(NewConfig())
	defer loop.Close()

	p := NewPromise(loop)
	p.Complete(nil)

	assert.Panics(t, func() { p.Complete(nil) })
}

// TestPromise_CallbackOnLoop 测试回调在循环上执行
func TestPromise_CallbackOnLoop(t *testing.T) {
	loop := NewLoop(NewConfig())
	defer loop.Close()

	p := NewPromise(loop)
	inLoop := make(chan bool, 1)
	p.OnComplete(func(err error) {
		inLoop <- loop.InLoop()
	})
	p.Complete(nil)

	assert.True(t, <-inLoop)
}

// TestPromise_CallbackOrder 测试回调按注册顺序执行
func TestPromise_CallbackOrder(t *testing.T) {
	loop := NewLoop(NewConfig())
	defer loop.Close()

	p := NewPromise(loop)
	var order []int
	done := make(chan struct{})
	for i := 0; i < 5; i++ {
		i := i
		p.OnComplete(func(err error) {
			order = append(order, i)
			if i == 4 {
				close(done)
			}
		})
	}
	p.Complete(nil)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("callbacks never ran")
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

// TestPromise_LateCallback 测试完成后注册的回调仍被调度
func TestPromise_LateCallback(t *testing.T) {
	loop := NewLoop(NewConfig())
	defer loop.Close()

	p := NewPromise(loop)
	p.Complete(nil)

	got := make(chan error, 1)
	p.OnComplete(func(err error) { got <- err })

	select {
	case err := <-got:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("late callback never ran")
	}
}

// TestNewSucceededFuture 测试预完成 Future
func TestNewSucceededFuture(t *testing.T) {
	loop := NewLoop(NewConfig())
	defer loop.Close()

	f := NewSucceededFuture(loop)
	<-f.Done()
	assert.NoError(t, f.Err())

	boom := errors.New("boom")
	ff := NewFailedFuture(loop, boom)
	<-ff.Done()
	assert.Equal(t, boom, ff.Err())
}

// TestPromise_FailedWhenLoopCloses 测试循环关闭时未完成的 Promise 失败
func TestPromise_FailedWhenLoopCloses(t *testing.T) {
	loop := NewLoop(NewConfig())

	p := NewPromise(loop)
	got := make(chan error, 1)
	p.OnComplete(func(err error) { got <- err })

	require.NoError(t, loop.Close())

	select {
	case <-p.Done():
	default:
		t.Fatal("关闭后 Promise 仍未完成")
	}
	assert.ErrorIs(t, p.Err(), ErrLoopClosed)

	select {
	case err := <-got:
		assert.ErrorIs(t, err, ErrLoopClosed)
	case <-time.After(time.Second):
		t.Fatal("失败回调未执行")
	}
}

// TestPromise_LateCompleteAfterLoopClose 测试关闭后迟到的完成被丢弃
func TestPromise_LateCompleteAfterLoopClose(t *testing.T) {
	loop := NewLoop(NewConfig())

	p := NewPromise(loop)
	require.NoError(t, loop.Close())

	// 生产方此刻才完成：不 panic，结果保持 ErrLoopClosed
	assert.NotPanics(t, func() { p.Complete(nil) })
	assert.ErrorIs(t, p.Err(), ErrLoopClosed)
}

// TestPromise_CreatedAfterLoopClose 测试关闭后创建的 Promise 立即失败
func TestPromise_CreatedAfterLoopClose(t *testing.T) {
	loop := NewLoop(NewConfig())
	require.NoError(t, loop.Close())

	p := NewPromise(loop)
	select {
	case <-p.Done():
	default:
		t.Fatal("Promise 未立即失败")
	}
	assert.ErrorIs(t, p.Err(), ErrLoopClosed)
}
