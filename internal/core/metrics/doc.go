// Package metrics 实现升级引擎指标收集
//
// # 概述
//
// metrics 以 Prometheus 计数器/仪表盘记录协议升级的结果分布
// 与协商期间的缓冲压力。Recorder 为 nil 时所有记录方法是 no-op，
// 因此核心路径无需判空配置。
//
// # 指标
//
//   - wirepulse_upgrade_attempts_total{result}  升级尝试结果计数
//     result: committed / pass_through / build_failed / ordering_violation / failed
//   - wirepulse_upgrade_negotiating             协商中连接数
//   - wirepulse_upgrade_buffered_events_total   协商期间缓冲的入站事件数
//
// # Fx 集成
//
//	fx.Module("metrics",
//	    fx.Provide(metrics.ProvideRecorder),
//	)
package metrics
