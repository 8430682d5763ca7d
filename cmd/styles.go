package cmd

import (
	"fmt"

	"sysplash/internal/bar"

	"github.com/spf13/cobra"
)

// sampleBarPercent 让样例条同时露出三个颜色区。
const sampleBarPercent = 90

// stylesCmd 列出全部样式预设，每个预设附一条样例。
var stylesCmd = newStylesCmd()

// newStylesCmd 构建 styles 命令，便于在测试中复用。
func newStylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List bar style presets with samples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, name := range bar.StyleNames() {
				style, err := bar.StyleByName(name)
				if err != nil {
					return err
				}

				opts := bar.NewOptions(sampleBarPercent)
				opts.BarLength = 20
				opts.Style = style
				opts.HidePercent = true

				fmt.Fprintf(out, "%-15s", name)
				if err := bar.Draw(out, opts); err != nil {
					return err
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(stylesCmd)
}
