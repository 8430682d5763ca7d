package cmd

import (
	"fmt"
	"strconv"

	"sysplash/internal/bar"
	"sysplash/internal/config"

	"github.com/spf13/cobra"
)

// setCmd 实现 set 子命令，用于查看或修改默认配置。
// 支持两种模式：
// 1. sysplash set - 显示当前配置
// 2. sysplash set <key> <value> - 设置配置项
var setCmd = newSetCmd()

// newSetCmd 构建 set 命令，便于在测试中复用。
func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Set or show default configuration",
		Long: `View or modify default configuration.

Without arguments, displays the current configuration.
With key/value, sets the specified option.

Supported keys: style, length, green, yellow, graph, host, user, keyfile, port.`,
		Example: `  sysplash set
  sysplash set style SimpleThick1
  sysplash set graph true
  sysplash set host web-01.internal`,
		Args: validateSetArgs,
		RunE: runSet,
	}
}

// validateSetArgs 校验 set 参数格式。
func validateSetArgs(cmd *cobra.Command, args []string) error {
	// 无参数：显示配置
	if len(args) == 0 {
		return nil
	}
	// 设置配置需要正好两个参数
	if len(args) != 2 {
		return fmt.Errorf("usage: sysplash set <key> <value>")
	}
	return nil
}

// runSet 执行 set 逻辑（显示或设置配置项）。
func runSet(cmd *cobra.Command, args []string) error {
	// 加载当前配置
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// 无参数时显示当前配置
	if len(args) == 0 {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "style: %s\nlength: %d\ngreen: %d\nyellow: %d\ngraph: %t\n",
			cfg.Style, cfg.BarLength, cfg.GreenBorder, cfg.YellowBorder, cfg.Graph)
		fmt.Fprintf(out, "host: %s\nuser: %s\nkeyfile: %s\nport: %d\n",
			cfg.Host, cfg.User, cfg.KeyFile, cfg.Port)
		return nil
	}

	key := args[0]
	val := args[1]

	// 根据 key 修改对应配置项
	switch key {
	case "style":
		if _, err := bar.StyleByName(val); err != nil {
			return err
		}
		cfg.Style = val
	case "length":
		n, err := parseIntInRange(key, val, 10, 100)
		if err != nil {
			return err
		}
		cfg.BarLength = n
	case "green":
		n, err := parseIntInRange(key, val, 50, 80)
		if err != nil {
			return err
		}
		cfg.GreenBorder = n
	case "yellow":
		n, err := parseIntInRange(key, val, 80, 90)
		if err != nil {
			return err
		}
		cfg.YellowBorder = n
	case "graph":
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("invalid graph %q: %w", val, err)
		}
		cfg.Graph = b
	case "host":
		cfg.Host = val
	case "user":
		cfg.User = val
	case "keyfile":
		cfg.KeyFile = val
	case "port":
		n, err := parseIntInRange(key, val, 1, 65535)
		if err != nil {
			return err
		}
		cfg.Port = n
	default:
		return fmt.Errorf("unsupported key %q (supported: style, length, green, yellow, graph, host, user, keyfile, port)", key)
	}

	// 保存修改后的配置
	return config.Save(cfg)
}

// parseIntInRange 解析整数并检查闭区间范围。
func parseIntInRange(key, val string, min, max int) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, val, err)
	}
	if n < min || n > max {
		return 0, fmt.Errorf("%s must be in [%d,%d], got %d", key, min, max, n)
	}
	return n, nil
}

func init() {
	rootCmd.AddCommand(setCmd)
}
