package password

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/jacksmith/desk/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSession(t *testing.T, input string) string {
	t.Helper()
	cli.SetColorEnabled(false)

	var out bytes.Buffer
	err := NewSession(strings.NewReader(input), &out, nil).Run(context.Background())
	require.NoError(t, err)
	return out.String()
}

func generatedPassword(t *testing.T, out string) string {
	t.Helper()
	const marker = "✅ Your Generated Password: "
	i := strings.Index(out, marker)
	require.GreaterOrEqual(t, i, 0, "no password in output:\n%s", out)
	return strings.TrimSuffix(out[i+len(marker):], "\n")
}

func TestSessionGeneratesPassword(t *testing.T) {
	out := runSession(t, "12\n")

	assert.True(t, strings.HasPrefix(out, "🔐 Welcome to Password Generator\n"+strings.Repeat("-", 50)+"\n"))
	assert.Contains(t, out, "Enter password length: \n✅ Your Generated Password: ")

	pw := generatedPassword(t, out)
	assert.Len(t, pw, 12)
	assert.True(t, InPool(pw))
}

func TestSessionRejectsBadLengths(t *testing.T) {
	out := runSession(t, "abc\n0\n-5\n 4 \n")

	assert.Equal(t, 1, strings.Count(out, "❌ Invalid input. Please enter a number."))
	assert.Equal(t, 2, strings.Count(out, "❌ Password length must be greater than 0."))
	assert.Equal(t, 4, strings.Count(out, "Enter password length: "))
	assert.Len(t, generatedPassword(t, out), 4)
}

func TestSessionDeterministicGenerator(t *testing.T) {
	cli.SetColorEnabled(false)

	src := bytes.NewReader(append([]byte{52, 53, 62}, make([]byte, 61)...))
	var out bytes.Buffer
	err := NewSession(strings.NewReader("3\n"), &out, NewGenerator(src)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "01!", generatedPassword(t, out.String()))
}

func TestSessionEndOfInput(t *testing.T) {
	out := runSession(t, "nope\n")

	assert.Contains(t, out, "Program interrupted by user.")
	assert.NotContains(t, out, "Your Generated Password")
}
