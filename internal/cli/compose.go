package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvperm/perm"
)

// composeCommand creates the compose command. The result applies --left
// first and then --right.
func (c *CLI) composeCommand() *cobra.Command {
	var left, right []int

	cmd := &cobra.Command{
		Use:     "compose",
		Short:   "Compose two permutations left to right",
		Example: `  permsort compose --left 1,0,2 --right 0,2,1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := perm.New(left)
			if err != nil {
				return fmt.Errorf("compose: left: %w", err)
			}
			r, err := perm.New(right)
			if err != nil {
				return fmt.Errorf("compose: right: %w", err)
			}
			p, err := l.Compose(r)
			if err != nil {
				return fmt.Errorf("compose: %w", err)
			}
			c.Logger.Debug("composed", "left", l, "right", r)

			out := cmd.OutOrStdout()
			printKeyValue(out, "perm", p)
			printKeyValue(out, "inverse", p.Inverse())

			return nil
		},
	}

	cmd.Flags().IntSliceVar(&left, "left", nil, "permutation applied first")
	cmd.Flags().IntSliceVar(&right, "right", nil, "permutation applied second")
	_ = cmd.MarkFlagRequired("left")
	_ = cmd.MarkFlagRequired("right")

	return cmd
}
