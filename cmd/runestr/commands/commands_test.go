package commands_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scalecode-solutions/runestring"
	"github.com/scalecode-solutions/runestring/cmd/runestr/commands"
	"github.com/scalecode-solutions/runestring/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with args, feeding stdin to the command.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cli := commands.New(logger.New(io.Discard))
	cli.SetArgs(args)
	out := &bytes.Buffer{}
	cli.SetIO(strings.NewReader(stdin), out)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{
			name:  "lines with mixed terminators",
			args:  []string{"lines"},
			stdin: "a\n\nb\r\nc\rd",
			want:  "a\n\nb\nc\nd\n",
		},
		{
			name:  "numbered lines",
			args:  []string{"lines", "-n"},
			stdin: "x\ny\n",
			want:  "     1\tx\n     2\ty\n",
		},
		{
			name:  "words",
			args:  []string{"words"},
			stdin: "\ta  b\t c",
			want:  "a\nb\nc\n",
		},
		{
			name:  "unique words",
			args:  []string{"words", "--unique"},
			stdin: "go Go go stop",
			want:  "go\nGo\nstop\n",
		},
		{
			name:  "unique words ignoring case",
			args:  []string{"words", "-u", "-i"},
			stdin: "go Go go stop",
			want:  "go\nstop\n",
		},
		{
			name:  "upper case",
			args:  []string{"case", "--upper"},
			stdin: "hello ÿ",
			want:  "HELLO Ÿ",
		},
		{
			name:  "lower case",
			args:  []string{"case", "--lower"},
			stdin: "ÀB Ж",
			want:  "àb ж",
		},
		{
			name:  "trim every line",
			args:  []string{"trim"},
			stdin: "  a  \n\tb\n",
			want:  "a\nb\n",
		},
		{
			name:  "find",
			args:  []string{"find", "ab"},
			stdin: "abcabc",
			want:  "0\n3\n",
		},
		{
			name:  "find overlapping",
			args:  []string{"find", "aa"},
			stdin: "aaa",
			want:  "0\n1\n",
		},
		{
			name:  "find reverse",
			args:  []string{"find", "--reverse", "ab"},
			stdin: "abcabc",
			want:  "3\n0\n",
		},
		{
			name:  "find ignoring case",
			args:  []string{"find", "-i", "AB"},
			stdin: "abcAbc",
			want:  "0\n3\n",
		},
		{
			name:  "encode to UTF-16BE",
			args:  []string{"encode", "--to", "utf16be", "--hex"},
			stdin: "é😀",
			want:  "00e9d83dde00\n",
		},
		{
			name:  "encode with a spelled out name",
			args:  []string{"encode", "--to", "UTF-32LE", "--hex"},
			stdin: "A",
			want:  "41000000\n",
		},
		{
			name:  "decode UTF-16LE",
			args:  []string{"encode", "--from", "utf16le"},
			stdin: "A\x00B\x00",
			want:  "AB",
		},
		{
			name:  "width",
			args:  []string{"width"},
			stdin: "abc\n日本\n",
			want:  "3\tabc\n4\t日本\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCommands_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		stdin   string
		wantErr error
	}{
		{
			name:    "malformed input",
			args:    []string{"lines"},
			stdin:   "a\xffb",
			wantErr: runestring.ErrInvalidUTF8,
		},
		{
			name:    "malformed input while streaming",
			args:    []string{"width"},
			stdin:   "ok\n\xc0\x80",
			wantErr: runestring.ErrInvalidUTF8,
		},
		{
			name:    "no match",
			args:    []string{"find", "zz"},
			stdin:   "abc",
			wantErr: commands.ErrNoMatch,
		},
		{
			name:    "unknown encoding",
			args:    []string{"encode", "--to", "latin1"},
			stdin:   "abc",
			wantErr: commands.ErrUnknownEncoding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.stdin, tt.args...)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCase_Flags(t *testing.T) {
	_, err := execute(t, "x", "case")
	require.Error(t, err)

	_, err = execute(t, "x", "case", "--upper", "--lower")
	require.Error(t, err)
}

func TestInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("one two\nthree\n"), 0o600))

	out, err := execute(t, "ignored", "words", path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\nthree\n", out)

	_, err = execute(t, "", "words", filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "runestr version dev")
}
