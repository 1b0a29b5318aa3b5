// Package upgrade 实现 HTTP 协议升级状态机
//
// # 概述
//
// upgrade 驻留在连接流水线上，检查首个 HTTP 请求并决定是否
// 将连接从 HTTP/1.1 语义切换到协商出的协议（如 websocket）。
// 它负责正确交织同步解析结果与异步流水线变更：移除 HTTP
// 编解码器、写出 101 响应、调用升级器的装配钩子，期间到达的
// 入站事件按序缓冲，完成后按序排空。
//
// # 状态机
//
// 状态：AwaitingFirstRequest → {PassThroughDetaching | Negotiating} → Detached
//
//  1. AwaitingFirstRequest：首个事件不是请求头时，向下游发出
//     次序错误信号并按"无升级"路径透传；Upgrade 头为空时直接
//     透传；否则进入协商。
//  2. 协商：按客户端声明顺序逐个尝试候选协议。候选入选条件：
//     已注册、必需头部同时出现在请求头部集合与 Connection token
//     集合中、响应头构建成功。构建失败是非致命的（跳过候选）。
//  3. 提交：首个入选候选胜出，之后不再尝试其他候选。按严格
//     顺序执行异步链（见下），期间入站事件全部缓冲。
//  4. 两条终线（透传 / 升级完成）各自恰好触发一次自移除。
//
// # 提交后的有序链
//
//  1. 移除响应编码器之外的 HTTP 处理器（不存在则 no-op）
//  2. 写出并刷新 101 Switching Protocols 响应
//  3. 移除响应编码器（未配置则 no-op）
//  4. 同步通知源编解码器（UpgradeFrom）
//  5. 调用升级器的异步装配钩子
//  6. 发布 UpgradeCompleteEvent；按 FIFO 排空缓冲；缓冲非空时
//     追发一次 ReadCompleteEvent
//  7. 自移除
//
// 提交后任何一步失败都不回滚、不尝试下一候选：错误经 FireError
// 上报，缓冲事件丢弃，状态机停驻，由连接所有者关闭连接。
//
// # 资源保护
//
// 缓冲默认无界。Config 提供两道可选护栏：
//   - MaxBufferedEvents 缓冲上限，超限即中止升级
//   - NegotiateTimeout  提交后链路超时
//
// # 使用示例
//
//	registry := upgrade.NewRegistry(wsUpgrader)
//	handler, _ := upgrade.NewHandler(registry, codec, upgrade.NewConfig(), nil)
//	pipe.AddLast("upgrade", handler)
//
// # Fx 集成
//
//	fx.Module("upgrade",
//	    fx.Provide(upgrade.ProvideRegistry, upgrade.ProvideFactory),
//	)
//
// # 依赖
//
// 内部模块依赖：
//   - internal/core/eventloop: Future/Promise 链式推进
//   - internal/core/metrics:   升级结果指标（可选）
//
// 外部库：
//   - benbjohnson/clock: 可测试的协商超时
package upgrade
