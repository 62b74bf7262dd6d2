package commands

import (
	"fmt"

	"github.com/scalecode-solutions/runestring"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

// ErrNoMatch is returned by the find command when the needle does not occur
// in the input.
var ErrNoMatch = zerr.New("no match")

func (c *CLI) newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find NEEDLE [FILE]",
		Short: "Print the rune offsets at which NEEDLE occurs",
		Long: "Print the offset, counted in runes, of every occurrence of NEEDLE in the " +
			"input, one per line. Overlapping occurrences are reported.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reverse, err := cmd.Flags().GetBool("reverse")
			if err != nil {
				return err
			}
			fold, err := cmd.Flags().GetBool("fold")
			if err != nil {
				return err
			}

			s, err := c.load(cmd, args[1:])
			if err != nil {
				return err
			}
			defer s.Release()
			needle := runestring.FromString(args[0])
			defer needle.Release()

			if fold {
				ls, ln := s.ToLower(), needle.ToLower()
				s.Assign(ls)
				needle.Assign(ln)
				ls.Release()
				ln.Release()
			}

			var offsets []int
			if reverse {
				offsets = findBackward(s, needle)
			} else {
				offsets = findForward(s, needle)
			}
			if len(offsets) == 0 {
				return zerr.Wrap(ErrNoMatch, fmt.Sprintf("needle %q", args[0]))
			}
			for _, off := range offsets {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), off); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolP("reverse", "r", false, "Report the last occurrence first")
	cmd.Flags().BoolP("fold", "i", false, "Ignore case")
	return cmd
}

func findForward(s, needle runestring.String) []int {
	var offsets []int
	for pos := 0; ; {
		i := s.Find(needle, pos)
		if i == runestring.NotFound {
			return offsets
		}
		offsets = append(offsets, i)
		pos = i + 1
	}
}

func findBackward(s, needle runestring.String) []int {
	var offsets []int
	for pos := -1; ; {
		i := s.RFind(needle, pos)
		if i == runestring.NotFound {
			return offsets
		}
		offsets = append(offsets, i)
		if i == 0 {
			return offsets
		}
		pos = i - 1
	}
}
