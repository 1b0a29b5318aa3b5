// Package interfaces 定义 WirePulse 的公共接口
//
// 本包采用扁平命名，一个接口文件对应一个实现目录：
//
// # Runtime Layer 接口
//
// 连接运行时：
//   - executor.go  - Executor 单线程执行器 / Future 异步结果
//   - pipeline.go  - Pipeline / HandlerContext / Handler 链契约
//
// # Core Layer 接口
//
// 连接级引擎能力：
//   - socket.go    - 非阻塞套接字
//   - upgrader.go  - 协议升级器 / 源编解码器
//
// # 设计原则
//
//   - 接口最小化：只声明核心组件消费的操作
//   - 实现在 internal/core/<module>/，接口在此集中定义
//   - 纯数据类型放在 pkg/types，本包只定义行为契约
package interfaces
