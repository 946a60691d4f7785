package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/prettymuchbryce/pathdsl"
)

var (
	joinExpand bool
	joinNul    bool
)

var joinCmd = &cobra.Command{
	Use:   "join [SEGMENT...]",
	Short: "Join segments into a single path",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		segs := make([]pathdsl.Segment, len(args))
		for i, arg := range args {
			segs[i] = pathdsl.Str(arg)
		}

		p := pathdsl.Build(segs...)
		if joinExpand {
			p = p.ExpandUser()
		}
		slog.Debug("built path", "segments", len(args), "result", p)

		if joinNul {
			fmt.Printf("%s\x00", p)
			return nil
		}
		fmt.Println(p)
		return nil
	},
}

func init() {
	joinCmd.Flags().BoolVarP(&joinExpand, "expand", "e", false, "expand a leading ~ to the home directory")
	joinCmd.Flags().BoolVarP(&joinNul, "null", "0", false, "terminate output with NUL instead of newline")
	rootCmd.AddCommand(joinCmd)
}
