package commands

import (
	"fmt"

	"github.com/scalecode-solutions/runestring"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newLinesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lines [FILE]",
		Short: "Split the input into lines",
		Long: "Print every line of the input on a line of its own. LF, CR and CR LF " +
			"all end a line.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := cmd.Flags().GetBool("number")
			if err != nil {
				return err
			}
			s, err := c.load(cmd, args)
			if err != nil {
				return err
			}
			defer s.Release()

			lines := s.Lines()
			defer release(lines)
			if !number {
				return printLines(cmd.OutOrStdout(), lines)
			}
			for i, line := range lines {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%6d\t%s\n", i+1, line); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolP("number", "n", false, "Prefix every line with its number")
	return cmd
}

func (c *CLI) newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words [FILE]",
		Short: "Split the input into words",
		Long:  "Print every white space separated word of the input on a line of its own.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unique, err := cmd.Flags().GetBool("unique")
			if err != nil {
				return err
			}
			fold, err := cmd.Flags().GetBool("fold")
			if err != nil {
				return err
			}
			s, err := c.load(cmd, args)
			if err != nil {
				return err
			}
			defer s.Release()

			words := s.Words()
			defer release(words)
			if !unique {
				return printLines(cmd.OutOrStdout(), words)
			}

			seen := runestring.NewInterner()
			defer seen.Reset()
			var out []runestring.String
			for _, w := range words {
				var key runestring.String
				if fold {
					key = w.ToLower()
				} else {
					key = w.Share()
				}
				before := seen.Len()
				canonical := seen.Intern(key)
				canonical.Release()
				key.Release()
				if seen.Len() > before {
					out = append(out, w)
				}
			}
			c.log.Debug("deduplicated words", "words", len(words), "unique", len(out))
			return printLines(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().BoolP("unique", "u", false, "Print every distinct word once, in order of appearance")
	cmd.Flags().BoolP("fold", "i", false, "Ignore case when comparing words")
	return cmd
}

func (c *CLI) newCaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "case [FILE]",
		Short: "Convert the input to upper or lower case",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			upper, err := cmd.Flags().GetBool("upper")
			if err != nil {
				return err
			}
			s, err := c.load(cmd, args)
			if err != nil {
				return err
			}
			defer s.Release()

			var converted runestring.String
			if upper {
				converted = s.ToUpper()
			} else {
				converted = s.ToLower()
			}
			defer converted.Release()

			_, err = converted.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().BoolP("upper", "U", false, "Convert to upper case")
	cmd.Flags().BoolP("lower", "L", false, "Convert to lower case")
	cmd.MarkFlagsMutuallyExclusive("upper", "lower")
	cmd.MarkFlagsOneRequired("upper", "lower")
	return cmd
}

func (c *CLI) newTrimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trim [FILE]",
		Short: "Remove leading and trailing white space from every line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.load(cmd, args)
			if err != nil {
				return err
			}
			defer s.Release()

			lines := s.Lines()
			defer release(lines)
			for _, line := range lines {
				trimmed := line.Trim()
				err := writeLine(cmd.OutOrStdout(), trimmed)
				trimmed.Release()
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (c *CLI) newWidthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "width [FILE]",
		Short: "Print the display width of every line",
		Long: "Print the number of monospace cells needed to display every line of the " +
			"input, followed by the line itself.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, closeFn, err := input(cmd, args)
			if err != nil {
				return err
			}
			defer closeFn()

			rd := runestring.NewReader(r)
			for line := range rd.Lines() {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", line.Width(), line)
				line.Release()
				if err != nil {
					return err
				}
			}
			if err := rd.Err(); err != nil {
				return zerr.Wrap(err, "failed to decode input")
			}
			return nil
		},
	}
}

// release drops the references held by every string in list.
func release(list []runestring.String) {
	for i := range list {
		list[i].Release()
	}
}
