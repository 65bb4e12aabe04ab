package main

import (
	"fmt"

	"checkers/game"

	"github.com/spf13/cobra"
)

var boardsCmd = &cobra.Command{
	Use:   "boards [name...]",
	Short: "List the board library or render the named boards",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			names, err := game.LibraryNames()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			return nil
		}
		for _, name := range args {
			board, err := game.LibraryBoard(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s\n%v\n", name, board)
		}
		return nil
	},
}
