package cmd

import (
	"fmt"

	"sysplash/internal/bar"
	"sysplash/internal/config"

	"github.com/spf13/cobra"
)

// barCmd 实现 bar 子命令：脱离 splash 报告单独渲染一条百分比条。
// 输入二选一：--percent 直接给百分比，或 --value/--max 给数值对。
var barCmd = newBarCmd()

// newBarCmd 构建 bar 命令，便于在测试中复用。
func newBarCmd() *cobra.Command {
	var (
		percent   int
		value     float64
		max       float64
		length    int
		styleName string
		green     int
		yellow    int
		noPercent bool
		draw      bool
	)

	cmd := &cobra.Command{
		Use:   "bar",
		Short: "Render a single percentage bar",
		Long: `Render a colored percentage bar on its own.

Exactly one input form must be given: --percent, or --value together
with --max (the percentage is then derived by truncating value/max*100).`,
		Example: `  sysplash bar --percent 42
  sysplash bar --value 3241 --max 7894 --style SimpleThick1
  sysplash bar --percent 95 --length 30 --draw`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			percentSet := cmd.Flags().Changed("percent")
			valueSet := cmd.Flags().Changed("value")
			maxSet := cmd.Flags().Changed("max")

			if valueSet != maxSet {
				return fmt.Errorf("--value and --max must be given together")
			}
			if percentSet == valueSet {
				return fmt.Errorf("specify exactly one of --percent or --value/--max")
			}

			if valueSet {
				percent, err = bar.PercentOf(value, max)
				if err != nil {
					return err
				}
			}

			opts, err := resolveBarOptions(cfg, styleName, length, green, yellow)
			if err != nil {
				return err
			}
			opts.Percent = percent
			opts.HidePercent = noPercent

			out := cmd.OutOrStdout()
			if draw {
				if err := bar.Draw(out, opts); err != nil {
					return err
				}
				fmt.Fprintln(out)
				return nil
			}

			rendered, err := bar.Render(opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, rendered)
			return nil
		},
	}

	cmd.Flags().IntVar(&percent, "percent", 0, "Percentage to render [0,100]")
	cmd.Flags().Float64Var(&value, "value", 0, "Value to convert to a percentage (requires --max)")
	cmd.Flags().Float64Var(&max, "max", 0, "Maximum the value is measured against (>= 1)")
	cmd.Flags().IntVar(&length, "length", 0, "Bar length in cells [10,100]")
	cmd.Flags().StringVar(&styleName, "style", "", "Bar style preset (see \"sysplash styles\")")
	cmd.Flags().IntVar(&green, "green", 0, "Green zone upper border [50,80]")
	cmd.Flags().IntVar(&yellow, "yellow", 0, "Yellow zone upper border [80,90]")
	cmd.Flags().BoolVar(&noPercent, "no-percent", false, "Hide the numeric percent label")
	cmd.Flags().BoolVar(&draw, "draw", false, "Paint with colors instead of printing plain text")

	return cmd
}

func init() {
	rootCmd.AddCommand(barCmd)
}
