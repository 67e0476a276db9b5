package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvperm/perm"
)

// applyCommand creates the apply command, which reorders values by a
// permutation or undoes that reordering with --inverse.
func (c *CLI) applyCommand() *cobra.Command {
	var (
		mapping []int
		values  []string
		inverse bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Reorder values by a permutation",
		Long: `Reorder values so that position i receives the value at perm[i].
With --inverse the reordering is undone: position perm[i] receives value i.`,
		Example: `  permsort apply --perm 2,0,1 --values x,y,z
  permsort apply --perm 2,0,1 --values z,x,y --inverse`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := perm.New(mapping)
			if err != nil {
				return fmt.Errorf("apply: %w", err)
			}

			var out []string
			if inverse {
				out, err = perm.ApplyInv(p, values)
			} else {
				out, err = perm.Apply(p, values)
			}
			if err != nil {
				return fmt.Errorf("apply: %w", err)
			}
			c.Logger.Debug("applied", "perm", p, "inverse", inverse)

			printKeyValue(cmd.OutOrStdout(), "values", strings.Join(out, ","))

			return nil
		},
	}

	cmd.Flags().IntSliceVar(&mapping, "perm", nil, "comma-separated permutation mapping")
	cmd.Flags().StringSliceVar(&values, "values", nil, "comma-separated values to reorder")
	cmd.Flags().BoolVar(&inverse, "inverse", false, "apply the inverse permutation")
	_ = cmd.MarkFlagRequired("perm")

	return cmd
}
