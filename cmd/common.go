package cmd

import (
	"os"
	"strings"

	"sysplash/internal/bar"
	"sysplash/internal/config"
	"sysplash/internal/sysinfo"
)

// resolveBarOptions 把配置与命令行标志合成渲染参数。
// 标志为零值时取配置值，配置为空时取包内默认值。
// 范围校验由渲染器统一负责，这里只做样式名解析。
func resolveBarOptions(cfg config.Config, styleName string, length, green, yellow int) (bar.Options, error) {
	if styleName == "" {
		styleName = cfg.Style
	}
	if styleName == "" {
		styleName = bar.DefaultStyleName
	}
	style, err := bar.StyleByName(styleName)
	if err != nil {
		return bar.Options{}, err
	}

	opts := bar.Options{
		BarLength:    pick(length, cfg.BarLength, bar.DefaultBarLength),
		Style:        style,
		GreenBorder:  pick(green, cfg.GreenBorder, bar.DefaultGreenBorder),
		YellowBorder: pick(yellow, cfg.YellowBorder, bar.DefaultYellowBorder),
	}
	return opts, nil
}

// pick 返回第一个非零值。
func pick(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

// chooseCollector 按目标主机选择采集策略：
// 目标为空或就是本机时走本地采集，否则建立远程通道。
// 每次调用只做一次选择，远程通道的生命周期完全在 Collect 内部。
func chooseCollector(host, user, keyFile string, port int) sysinfo.Collector {
	if isLocalTarget(host) {
		return &sysinfo.LocalCollector{}
	}
	return &sysinfo.RemoteCollector{
		Host:    host,
		Port:    port,
		User:    user,
		KeyFile: keyFile,
	}
}

// isLocalTarget 判断目标是否指向本机。
func isLocalTarget(host string) bool {
	host = strings.TrimSpace(host)
	if host == "" || host == "localhost" || host == "127.0.0.1" || host == "::1" {
		return true
	}
	if name, err := os.Hostname(); err == nil && strings.EqualFold(host, name) {
		return true
	}
	return false
}
