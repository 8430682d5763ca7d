// Package config 提供 sysplash 的配置管理功能。
//
// 配置文件存储在 ~/.config/sysplash/config.yaml，使用 YAML 格式。
// 支持的配置项包括百分比条样式、长度、颜色阈值和远程主机默认值。
package config
