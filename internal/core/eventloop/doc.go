// Package eventloop 实现单线程事件循环执行器
//
// # 概述
//
// eventloop 提供连接级引擎的执行模型：每条连接绑定一个 Loop，
// 所有流水线回调、升级状态机步骤都在 Loop 的独占 goroutine 上
// 串行执行，因此连接内状态无需加锁。
//
// # 组成
//
//   - Loop    单 goroutine 任务循环（无界队列，FIFO）
//   - Promise Future 实现，完成回调统一调度回 Loop
//
// # 顺序保证
//
//  1. Submit 的任务按提交顺序执行
//  2. Future 的 OnComplete 回调在完成后调度到 Loop 上，
//     绝不在注册现场内联，回调间保持注册顺序
//  3. 升级状态机的"有序异步链"即由 Future 回调逐步推进
//
// # 使用示例
//
//	loop := eventloop.NewLoop(eventloop.NewConfig())
//	defer loop.Close()
//
//	p := eventloop.NewPromise(loop)
//	p.OnComplete(func(err error) { /* 在 loop 上执行 */ })
//	p.Complete(nil)
//
// # Fx 集成
//
//	fx.Module("eventloop",
//	    fx.Provide(eventloop.ProvideLoop),
//	)
package eventloop
