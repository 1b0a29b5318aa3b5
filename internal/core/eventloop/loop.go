// Package eventloop 实现单线程事件循环执行器
package eventloop

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"

	pkgif "github.com/wirepulse/go-wirepulse/pkg/interfaces"
	"github.com/wirepulse/go-wirepulse/pkg/lib/log"
)

var logger = log.Logger("core/eventloop")

// 确保实现了接口
var _ pkgif.Executor = (*Loop)(nil)

// Loop 单线程事件循环
//
// 任务以 FIFO 顺序在独占 goroutine 上执行。队列无界：
// Submit 永不阻塞，因此从循环内部提交任务不会死锁，
// 任务在当前任务结束后执行。
type Loop struct {
	mu      sync.Mutex
	cond    *sync.Cond
	tasks   []func()
	closing bool // 不再接受新 Promise 登记
	closed  bool // 不再接受新任务

	// promises 尚未完成的 Promise 登记表。
	// 循环关闭时以 ErrLoopClosed 统一失败，避免等待方永久挂起。
	promises map[*Promise]struct{}

	// goroutineID 循环 goroutine 的 ID（循环启动时写入）
	goroutineID uint64

	started chan struct{} // goroutineID 就绪
	done    chan struct{} // run 退出

	closeOnce sync.Once
}

// NewLoop 创建并启动事件循环
func NewLoop(cfg Config) *Loop {
	capacity := cfg.TaskQueueCapacity
	if capacity <= 0 {
		capacity = 64
	}

	l := &Loop{
		tasks:    make([]func(), 0, capacity),
		promises: make(map[*Promise]struct{}),
		started:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	l.cond = sync.NewCond(&l.mu)

	go l.run()
	<-l.started

	return l
}

// run 循环主体
func (l *Loop) run() {
	defer close(l.done)

	l.goroutineID = currentGoroutineID()
	close(l.started)

	for {
		l.mu.Lock()
		for len(l.tasks) == 0 && !l.closed {
			l.cond.Wait()
		}
		if len(l.tasks) == 0 && l.closed {
			l.mu.Unlock()
			return
		}
		task := l.tasks[0]
		l.tasks = l.tasks[1:]
		l.mu.Unlock()

		task()
	}
}

// Submit 提交任务
//
// 任务按提交顺序执行。循环关闭后提交的任务被丢弃并记录日志。
func (l *Loop) Submit(fn func()) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		logger.Warn("任务提交到已关闭的循环，已丢弃")
		return
	}
	l.tasks = append(l.tasks, fn)
	l.cond.Signal()
	l.mu.Unlock()
}

// InLoop 判断当前 goroutine 是否为循环 goroutine
func (l *Loop) InLoop() bool {
	return currentGoroutineID() == l.goroutineID
}

// Close 关闭循环
//
// 未完成的 Promise 先以 ErrLoopClosed 失败，其回调与已入队的
// 任务会在退出前全部执行完。幂等。
// 不得从循环 goroutine 内调用（会等待自身退出）。
func (l *Loop) Close() error {
	l.closeOnce.Do(func() {
		// 先停止新 Promise 登记并快照现存的未完成项。
		// 此刻循环仍接受任务，失败回调得以正常入队。
		l.mu.Lock()
		l.closing = true
		pending := make([]*Promise, 0, len(l.promises))
		for p := range l.promises {
			pending = append(pending, p)
		}
		l.mu.Unlock()

		for _, p := range pending {
			p.failOnClose()
		}

		l.mu.Lock()
		l.closed = true
		l.cond.Signal()
		l.mu.Unlock()
	})
	if !l.InLoop() {
		<-l.done
	}
	return nil
}

// track 登记未完成的 Promise
//
// 循环已进入关闭流程时不再登记，Promise 立即以 ErrLoopClosed 失败。
func (l *Loop) track(p *Promise) {
	l.mu.Lock()
	if l.closing {
		l.mu.Unlock()
		p.failOnClose()
		return
	}
	l.promises[p] = struct{}{}
	l.mu.Unlock()
}

// untrack 注销已完成的 Promise
func (l *Loop) untrack(p *Promise) {
	l.mu.Lock()
	delete(l.promises, p)
	l.mu.Unlock()
}

// currentGoroutineID 解析当前 goroutine ID
//
// 仅用于 InLoop 判定，不在热路径上逐事件调用。
func currentGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	// 栈首行形如 "goroutine 123 [running]:"
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseUint(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
