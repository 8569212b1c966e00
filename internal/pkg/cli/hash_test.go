package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestDigestCmd(t *testing.T) {
	out, err := run(t, "digest", "abc")
	require.NoError(t, err)
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72", out)
}

func TestDigestCmd_RequiresValue(t *testing.T) {
	_, err := run(t, "digest")
	assert.Error(t, err)
}

func TestHashCmd(t *testing.T) {
	out, err := run(t, "hash", "--salt", "abc", "--password", "secret")
	require.NoError(t, err)
	assert.Equal(t, "d019e21be068e467e38b7862fb0100c7", out)
}

func TestVerifyCmd(t *testing.T) {
	out, err := run(t, "verify", "--salt", "s1", "--password", "pw1", "--hash", "b8d0d81c766e40af4c29ca047a27c846")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)

	out, err = run(t, "verify", "--salt", "s1", "--password", "nope", "--hash", "b8d0d81c766e40af4c29ca047a27c846")
	assert.ErrorIs(t, err, errNoMatch)
	assert.Equal(t, "mismatch", out)
}

func TestKeyHashCmd(t *testing.T) {
	out, err := run(t, "keyhash", "k3y")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(out), []byte("k3y")))
}
