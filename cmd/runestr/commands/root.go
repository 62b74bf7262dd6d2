// Package commands implements the CLI commands for the runestr tool.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/scalecode-solutions/runestring"
	"github.com/scalecode-solutions/runestring/internal/build"
	"github.com/scalecode-solutions/runestring/internal/logger"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for runestr.
type CLI struct {
	log     *logger.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance logging to log.
func New(log *logger.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "runestr",
		Short:         "Inspect and transform Unicode text",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("log-json", false, "Write log records as JSON")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	c := &CLI{
		log:     log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		jsonMode, err := cmd.Flags().GetBool("log-json")
		if err != nil {
			return err
		}
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return err
		}
		c.log.SetJSON(jsonMode)
		c.log.SetVerbose(verbose)
		return nil
	}

	rootCmd.AddCommand(c.newLinesCmd())
	rootCmd.AddCommand(c.newWordsCmd())
	rootCmd.AddCommand(c.newCaseCmd())
	rootCmd.AddCommand(c.newTrimCmd())
	rootCmd.AddCommand(c.newFindCmd())
	rootCmd.AddCommand(c.newEncodeCmd())
	rootCmd.AddCommand(c.newWidthCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetIO sets the standard input and output of every command.
func (c *CLI) SetIO(in io.Reader, out io.Writer) {
	c.rootCmd.SetIn(in)
	c.rootCmd.SetOut(out)
}

// input returns the reader for the optional file argument, or standard input
// if there is none. The returned function closes the file.
func input(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to open input")
	}
	return f, func() { _ = f.Close() }, nil
}

// load decodes the whole UTF-8 input of cmd into a string.
func (c *CLI) load(cmd *cobra.Command, args []string) (runestring.String, error) {
	r, closeFn, err := input(cmd, args)
	if err != nil {
		return runestring.String{}, err
	}
	defer closeFn()

	var runes []runestring.Rune
	rd := runestring.NewReader(r)
	for {
		ch, err := rd.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return runestring.String{}, zerr.Wrap(err, "failed to decode input")
		}
		runes = append(runes, ch)
	}

	s := runestring.FromRunes(runes)
	c.log.Debug("read input", "runes", s.Len())
	return s, nil
}

// printLines writes every string on a line of its own.
func printLines(w io.Writer, lines []runestring.String) error {
	for _, line := range lines {
		if err := writeLine(w, line); err != nil {
			return err
		}
	}
	return nil
}

// writeLine writes s followed by a line feed.
func writeLine(w io.Writer, s runestring.String) error {
	if _, err := s.WriteTo(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
