// Package wirepulse 提供事件驱动的连接级网络引擎
//
// WirePulse 是一个面向单条连接的事件流水线引擎，核心是
// HTTP/1.1 协议升级状态机：在首个请求上按客户端声明的偏好
// 顺序协商升级候选协议（websocket、h2c 等），写出 101 响应，
// 原子地改组流水线，并把协商期间到达的入站数据无损地交给
// 新协议。
//
// # 核心概念
//
// WirePulse 围绕四个核心概念构建：
//
//   - Engine: 引擎实例，用户交互的主入口
//   - Pipeline: 每条连接一条的处理器链，由事件循环独占驱动
//   - ProtocolUpgrader: 单个候选协议的升级策略（握手头校验、
//     响应头构建、新协议处理器装配）
//   - SourceCodec: 源协议编解码器，升级时负责让出流水线
//
// # 快速开始
//
//	import "github.com/wirepulse/go-wirepulse"
//
//	// 1. 创建并启动引擎，注册升级候选
//	engine, err := wirepulse.Start(ctx,
//	    wirepulse.WithUpgraders(myWebSocketUpgrader),
//	    wirepulse.WithPreset("server"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer engine.Close()
//
//	// 2. 为每条接受的连接建立流水线
//	pipe, err := engine.NewPipeline(codec, sink)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// 3. 解码出的 HTTP 事件注入流水线
//	pipe.FireInboundEvent(requestHead)
//
// # 升级链路
//
// 候选提交后，引擎按固定顺序推进：
//
//	移除源协议 HTTP 处理器
//	  → 写出 101 Switching Protocols
//	  → 移除源协议编码器
//	  → 通知 SourceCodec 让出
//	  → 调用候选协议的装配钩子
//	  → 发布 UpgradeCompleteEvent 并按 FIFO 排空协商期间的缓冲
//	  → 状态机自移除
//
// 升级期间到达的入站事件被缓冲，绝不乱序、绝不丢失；
// 每条连接至多尝试一次升级，候选提交后不回滚。
//
// # 模块组织
//
//	wirepulse/
//	├── config/                  统一配置
//	├── internal/core/eventloop  单线程事件循环
//	├── internal/core/pipeline   连接流水线
//	├── internal/core/upgrade    升级状态机（核心）
//	├── internal/core/socket     非阻塞套接字
//	├── internal/core/metrics    Prometheus 指标
//	├── pkg/interfaces           公共契约
//	└── pkg/types                公共值类型
package wirepulse
