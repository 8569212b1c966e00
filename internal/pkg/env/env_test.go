package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupEnvFile_ReadsDotEnv(t *testing.T) {
	prev := Env
	t.Cleanup(func() { Env = prev })

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("APP_PORT=3100\nDB_NAME=dewata\n"), 0o600))
	chdir(t, dir)

	SetupEnvFile()
	assert.Equal(t, "3100", Env["APP_PORT"])
	assert.Equal(t, "dewata", Env["DB_NAME"])
}

func TestSetupEnvFile_MissingFileIsEmpty(t *testing.T) {
	prev := Env
	t.Cleanup(func() { Env = prev })

	chdir(t, t.TempDir())

	SetupEnvFile()
	assert.NotNil(t, Env)
	assert.Empty(t, Env["APP_PORT"])
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
