package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func stubTerminal(t *testing.T, terminal bool, pw []byte, pwErr error) {
	t.Helper()
	origTerm, origRead := isTerminal, readPassword
	t.Cleanup(func() { isTerminal, readPassword = origTerm, origRead })

	isTerminal = func(int) bool { return terminal }
	readPassword = func(int) ([]byte, error) { return pw, pwErr }
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  hello world \n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.ErrorIs(t, err, io.EOF)
}

func TestGetPassword_Terminal(t *testing.T) {
	stubTerminal(t, true, []byte("s3cret!!"), nil)

	var out bytes.Buffer
	pw, err := GetPassword(rdr("ignored\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret!!"), pw)
	assert.Equal(t, "Enter password: \n", out.String())
}

func TestGetPassword_Error(t *testing.T) {
	stubTerminal(t, true, nil, errors.New("boom"))

	var out bytes.Buffer
	_, err := GetPassword(rdr(""), &out)
	require.Error(t, err)
}

func TestGetPassword_PipedInput(t *testing.T) {
	stubTerminal(t, false, nil, errors.New("must not be called"))

	var out bytes.Buffer
	pw, err := GetPassword(rdr(" spaced pw \r\nnext\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, []byte(" spaced pw "), pw, "only the line ending is stripped")

	_, err = GetPassword(rdr(""), &out)
	require.ErrorIs(t, err, io.EOF)
}

func TestGetParagraphs(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantEOF bool
		rest    string
	}{
		{
			name:  "dot terminates",
			input: "first para\nstill first\n\nsecond\n.\nsearch cat\n",
			want:  "first para\nstill first\n\nsecond",
			rest:  "search cat\n",
		},
		{
			name:  "CRLF input",
			input: "a\r\n\r\nb\r\n.\r\n",
			want:  "a\n\nb",
		},
		{
			name:  "EOF terminates",
			input: "only\n\nparagraphs",
			want:  "only\n\nparagraphs",
		},
		{
			name:  "leading and trailing blank lines dropped",
			input: "\n\nx\n\n.\n",
			want:  "x",
		},
		{
			name:  "immediate dot",
			input: ".\n",
			want:  "",
		},
		{
			name:    "nothing at all",
			input:   "",
			wantEOF: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := rdr(tc.input)
			var out bytes.Buffer

			got, err := GetParagraphs(r, "Enter text", &out)
			if tc.wantEOF {
				require.ErrorIs(t, err, io.EOF)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			rest, _ := io.ReadAll(r)
			assert.Equal(t, tc.rest, string(rest), "input after the terminator stays unread")
		})
	}
}
