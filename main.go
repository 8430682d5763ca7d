// sysplash 是一个在终端打印本机或远程主机系统信息报告的工具，
// CPU 负载、内存和磁盘用量可选用彩色百分比条展示。
package main

import (
	"sysplash/cmd"
)

// main 是程序的入口函数，负责启动 CLI 命令执行。
func main() {
	cmd.Execute()
}
