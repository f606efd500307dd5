package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText_TrimsNewline(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("a@b.com\n"))
	out := &bytes.Buffer{}

	got, err := GetSimpleText(r, "Enter email", out)
	require.NoError(t, err)
	require.Equal(t, "a@b.com", got)
	require.Contains(t, out.String(), "Enter email")
}

func TestGetSimpleText_PartialLineOnEOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("no-newline"))
	out := &bytes.Buffer{}

	got, err := GetSimpleText(r, "prompt", out)
	require.NoError(t, err)
	require.Equal(t, "no-newline", got)
}

func TestGetSimpleText_EmptyInputEOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(""))
	out := &bytes.Buffer{}

	_, err := GetSimpleText(r, "prompt", out)
	require.Error(t, err)
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(int) ([]byte, error) { return []byte("secret"), nil }

	out := &bytes.Buffer{}
	pw, err := GetPassword(out)
	require.NoError(t, err)
	require.Equal(t, []byte("secret"), pw)
	require.Contains(t, out.String(), "Enter password")
}

func TestGetPassword_PropagatesError(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(int) ([]byte, error) { return nil, errors.New("no tty") }

	_, err := GetPassword(&bytes.Buffer{})
	require.Error(t, err)
}

func TestWipe(t *testing.T) {
	b := []byte("secret")
	wipe(b)
	require.Equal(t, make([]byte, 6), b)
}
