package cmd

import (
	"sysplash/internal/config"
	"sysplash/internal/splash"

	"github.com/spf13/cobra"
)

// 命令行标志变量
var (
	showHost   string // 远程主机，为空时采集本机
	showUser   string // SSH 用户名
	showKey    string // SSH 私钥路径
	showPort   int    // SSH 端口
	showGraph  bool   // 数值字段改为百分比条
	showStyle  string // 条样式预设名
	showLength int    // 条长度
	showGreen  int    // 绿区上界
	showYellow int    // 黄区上界
)

// showCmd 实现 show 子命令，打印系统信息报告。
// 这是默认命令，不带子命令运行 sysplash 时也会执行。
// 用法: sysplash show [-H host] [-g] [--style name]
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show system information splash",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

// init 注册 show 命令并为根命令和 show 命令添加相同的标志。
func init() {
	addShowFlags(showCmd)

	rootCmd.AddCommand(showCmd)
}

// addShowFlags 为指定命令添加 show 相关的标志。
// 这样根命令和 show 子命令可以共享相同的标志。
func addShowFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&showHost, "host", "H", "", "Remote host to report on (default: local machine)")
	cmd.Flags().StringVarP(&showUser, "user", "u", "", "SSH user for remote host")
	cmd.Flags().StringVarP(&showKey, "key", "k", "", "SSH identity file")
	cmd.Flags().IntVarP(&showPort, "port", "p", 0, "SSH port (default 22)")
	cmd.Flags().BoolVarP(&showGraph, "graph", "g", false, "Draw CPU load, memory and disk as bar graphs")
	cmd.Flags().StringVar(&showStyle, "style", "", "Bar style preset (see \"sysplash styles\")")
	cmd.Flags().IntVar(&showLength, "length", 0, "Bar length in cells [10,100]")
	cmd.Flags().IntVar(&showGreen, "green", 0, "Green zone upper border [50,80]")
	cmd.Flags().IntVar(&showYellow, "yellow", 0, "Yellow zone upper border [80,90]")
}

// runShow 是 show 命令的核心逻辑。
// 按目标主机选择本地或远程采集，失败对整次报告致命，不输出残缺内容。
func runShow(cmd *cobra.Command, _ []string) error {
	// 加载配置获取默认值
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	host := showHost
	if host == "" {
		host = cfg.Host
	}
	user := showUser
	if user == "" {
		user = cfg.User
	}
	keyFile := showKey
	if keyFile == "" {
		keyFile = cfg.KeyFile
	}
	port := showPort
	if port == 0 {
		port = cfg.Port
	}

	graph := cfg.Graph
	if cmd.Flags().Changed("graph") {
		graph = showGraph
	}

	barOpts, err := resolveBarOptions(cfg, showStyle, showLength, showGreen, showYellow)
	if err != nil {
		return err
	}

	collector := chooseCollector(host, user, keyFile, port)
	snap, err := collector.Collect(cmd.Context())
	if err != nil {
		return err
	}

	return splash.Report(cmd.OutOrStdout(), snap, splash.Options{
		Graphical: graph,
		Bar:       barOpts,
	})
}
