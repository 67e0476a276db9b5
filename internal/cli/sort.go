package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvperm/perm"
)

// sortCommand creates the sort command, which prints the stable sorting
// permutation of a sub-range and the reordered values.
func (c *CLI) sortCommand() *cobra.Command {
	var (
		values   []int
		from, to int
		length   int
		jobPath  string
	)

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Print the stable sorting permutation of a range",
		Long: `Compute the permutation that stably sorts values[from:to) and fixes every
other position, then print it together with the reordered values.

Values and bounds come from flags, a TOML job file, or both; flags that are
set explicitly win over the job file.`,
		Example: `  # Sort the whole sequence
  permsort sort --values 1,5,2,2,7,-4

  # Sort positions 1..3 only
  permsort sort --values 1,5,2,-2,7,-4 --from 1 --to 4

  # Load the request from a file
  permsort sort --job job.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var base job
			if jobPath != "" {
				loaded, err := loadJob(jobPath)
				if err != nil {
					return err
				}
				c.Logger.Debug("loaded job", "path", jobPath, "values", len(loaded.Values))
				base = loaded
			}
			j := mergeJob(cmd, base, job{Values: values, From: from, To: to, Length: length})

			c.Logger.Debug("sorting", "from", j.From, "to", j.To, "length", j.Length)
			p, err := perm.SortingPerm(j.Values, j.From, j.To, j.Length)
			if err != nil {
				return fmt.Errorf("sort: %w", err)
			}
			sorted, err := perm.Apply(p, j.Values[:j.Length])
			if err != nil {
				return fmt.Errorf("sort: %w", err)
			}

			out := cmd.OutOrStdout()
			printKeyValue(out, "perm", p)
			printKeyValue(out, "sorted", sorted)
			c.Logger.Info("sorted range", "from", j.From, "to", j.To, "identity", p.IsIdentity())

			return nil
		},
	}

	cmd.Flags().IntSliceVar(&values, "values", nil, "comma-separated integer values")
	cmd.Flags().IntVar(&from, "from", 0, "first position of the range to sort")
	cmd.Flags().IntVar(&to, "to", 0, "end of the range to sort, exclusive (default: length)")
	cmd.Flags().IntVar(&length, "length", 0, "permutation length (default: number of values)")
	cmd.Flags().StringVar(&jobPath, "job", "", "TOML job file with values, from, to and length")

	return cmd
}

// mergeJob overlays explicitly set flags onto base. When the values or the
// length change and the end bound is not given, the range grows to cover the
// whole permutation.
func mergeJob(cmd *cobra.Command, base, flags job) job {
	f := cmd.Flags()
	resized := false
	if f.Changed("values") {
		base.Values = flags.Values
		base.Length = len(flags.Values)
		resized = true
	}
	if f.Changed("length") {
		base.Length = flags.Length
		resized = true
	}
	if f.Changed("from") {
		base.From = flags.From
	}
	switch {
	case f.Changed("to"):
		base.To = flags.To
	case resized:
		base.To = base.Length
	}

	return base
}
