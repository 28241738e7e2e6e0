package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "statmerge.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func Test_LoadConfig_Returns_Defaults_For_Empty_Path(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig("", false)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func Test_LoadConfig_Overlays_File_On_Defaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `{
		// trailing commas and comments are fine: the file is JSONC
		"lines": 25,
	}`)

	cfg, err := LoadConfig(path, true)
	require.NoError(t, err)
	require.Equal(t, 25, cfg.Lines)
	require.Equal(t, DefaultConfig().Buckets, cfg.Buckets)
}

func Test_LoadConfig_Rejects_Bad_Bucket_Counts(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `{"buckets": 100}`)

	_, err := LoadConfig(path, true)
	require.ErrorIs(t, err, errConfigInvalid)
}

func Test_LoadConfig_Rejects_Malformed_JSON(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `{"lines": `)

	_, err := LoadConfig(path, true)
	require.ErrorIs(t, err, errConfigInvalid)
}

func Test_LoadConfig_Requires_Explicit_Files_To_Exist(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.jsonc")

	_, err := LoadConfig(missing, true)
	require.ErrorIs(t, err, errConfigFileRead)

	cfg, err := LoadConfig(missing, false)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}
