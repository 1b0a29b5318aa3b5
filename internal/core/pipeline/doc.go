// Package pipeline 实现连接流水线（handler 链）
//
// # 概述
//
// pipeline 是连接级引擎的 handler 链运行时：入站事件、错误与
// 用户事件从链头流向链尾，处理器通过 HandlerContext 与运行时
// 交互。升级状态机即以入站处理器的身份驻留在链上。
//
// # 执行模型
//
// 每条流水线绑定一个 Executor（事件循环）。从循环外注入的事件
// 会先调度到循环上；处理器内的 Fire* 调用直接传递给下一个处理器。
// 变更操作（Remove/WriteAndFlush）在循环上生效并以 Future 标记完成。
//
// # 移除语义
//
// 移除不存在的处理器成功返回（no-op）。这是升级状态机的前提：
// 提交升级后按名字移除 HTTP 处理器与编码器，未配置的名字直接跳过。
//
// # 使用示例
//
//	loop := eventloop.NewLoop(eventloop.NewConfig())
//	p := pipeline.New(loop, sink)
//	p.AddLast("upgrade", upgradeHandler)
//	p.FireInboundEvent(head)
//
// # Fx 集成
//
//	fx.Module("pipeline",
//	    fx.Provide(pipeline.ProvideFactory),
//	)
package pipeline
