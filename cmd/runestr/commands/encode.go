package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/scalecode-solutions/runestring"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

// ErrUnknownEncoding is returned for an encoding name the encode command does
// not support.
var ErrUnknownEncoding = zerr.New("unknown encoding")

// Names of the supported encodings.
const (
	encUTF8    = "utf8"
	encUTF16BE = "utf16be"
	encUTF16LE = "utf16le"
	encUTF32BE = "utf32be"
	encUTF32LE = "utf32le"
)

var encodings = []string{encUTF8, encUTF16BE, encUTF16LE, encUTF32BE, encUTF32LE}

var encoders = map[string]func(runestring.String) []byte{
	encUTF8:    runestring.String.UTF8,
	encUTF16BE: runestring.String.UTF16BE,
	encUTF16LE: runestring.String.UTF16LE,
	encUTF32BE: runestring.String.UTF32BE,
	encUTF32LE: runestring.String.UTF32LE,
}

var decoders = map[string]func([]byte) (runestring.String, error){
	encUTF16BE: runestring.FromUTF16BE,
	encUTF16LE: runestring.FromUTF16LE,
	encUTF32BE: runestring.FromUTF32BE,
	encUTF32LE: runestring.FromUTF32LE,
}

// lookupEncoding normalizes name and checks that it is supported.
func lookupEncoding(name string) (string, error) {
	name = strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(name))
	if !slices.Contains(encodings, name) {
		return "", zerr.Wrap(ErrUnknownEncoding, fmt.Sprintf("%q, expected one of %s", name, strings.Join(encodings, ", ")))
	}
	return name, nil
}

func (c *CLI) newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [FILE]",
		Short: "Convert the input between UTF-8, UTF-16 and UTF-32",
		Long: "Read the input in the encoding given by --from and write it in the " +
			"encoding given by --to. Supported encodings: " + strings.Join(encodings, ", ") + ".",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fromName, err := cmd.Flags().GetString("from")
			if err != nil {
				return err
			}
			toName, err := cmd.Flags().GetString("to")
			if err != nil {
				return err
			}
			asHex, err := cmd.Flags().GetBool("hex")
			if err != nil {
				return err
			}
			from, err := lookupEncoding(fromName)
			if err != nil {
				return err
			}
			to, err := lookupEncoding(toName)
			if err != nil {
				return err
			}

			s, err := c.decode(cmd, args, from)
			if err != nil {
				return err
			}
			defer s.Release()

			out := encoders[to](s)
			c.log.Debug("encoded input", "from", from, "to", to, "runes", s.Len(), "bytes", len(out))
			if asHex {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(out))
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().String("from", encUTF8, "Encoding of the input")
	cmd.Flags().StringP("to", "t", encUTF8, "Encoding of the output")
	cmd.Flags().Bool("hex", false, "Write the output as hexadecimal digits")
	return cmd
}

// decode reads the input of cmd in the named encoding.
func (c *CLI) decode(cmd *cobra.Command, args []string, enc string) (runestring.String, error) {
	if enc == encUTF8 {
		return c.load(cmd, args)
	}
	r, closeFn, err := input(cmd, args)
	if err != nil {
		return runestring.String{}, err
	}
	defer closeFn()

	p, err := io.ReadAll(r)
	if err != nil {
		return runestring.String{}, zerr.Wrap(err, "failed to read input")
	}
	return decoders[enc](p)
}
