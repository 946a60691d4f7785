package main

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/prettymuchbryce/pathdsl"
)

// Styles for match output
var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	pathStyle = lipgloss.NewStyle().Bold(true)
)

const (
	passIcon = "✓"
	failIcon = "✗"
)

var matchExpand bool

var matchCmd = &cobra.Command{
	Use:   "match PATTERN PATH...",
	Short: "Test paths against a doublestar glob pattern",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern := args[0]
		matched := 0

		for _, arg := range args[1:] {
			p := pathdsl.Path(arg)
			if matchExpand {
				p = p.ExpandUser()
			}

			ok, err := p.Match(pattern)
			if err != nil {
				return fmt.Errorf("invalid pattern %q: %w", pattern, err)
			}
			slog.Debug("matched path", "pattern", pattern, "path", p, "ok", ok)

			if ok {
				matched++
				fmt.Printf("%s %s\n", passStyle.Render(passIcon), pathStyle.Render(p.String()))
			} else {
				fmt.Printf("%s %s\n", failStyle.Render(failIcon), p.String())
			}
		}

		if matched == 0 {
			return fmt.Errorf("no paths matched pattern %q", pattern)
		}
		return nil
	},
}

func init() {
	matchCmd.Flags().BoolVarP(&matchExpand, "expand", "e", false, "expand a leading ~ to the home directory")
	rootCmd.AddCommand(matchCmd)
}
