package internal

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func allFlags() []*Flag {
	return []*Flag{
		&EnvFlag,
		&LogLevelFlag,
		&ClientIPFlag,
		&ServerAddrFlag,
		&ServerNameFlag,
		&ServerLimitFlag,
	}
}

func TestRegisterCommandFlags(t *testing.T) {
	t.Setenv("COMMS_SERVER_LIMIT", "7")
	cmd := &cobra.Command{Use: "test"}
	require.NoError(t, RegisterCommandFlags(cmd, allFlags()))
	require.Equal(t, "7", ServerLimitFlag.Value())
	require.Equal(t, "TestServer", ServerNameFlag.Value())

	require.NoError(t, ValidateEnv())
	require.Equal(t, uint32(7), ServerLimit)
	require.Equal(t, "10.0.0.1", ClientIP)
	require.Equal(t, "197.0.0.1", ServerAddr)
	require.Equal(t, "info", LogLevel)

	require.Error(t, RegisterCommandFlags(cmd, []*Flag{&EnvFlag}))
}

func TestValidateEnvRejectsBadValues(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	require.NoError(t, RegisterCommandFlags(cmd, allFlags()))

	require.NoError(t, cmd.PersistentFlags().Set("server-limit", "lots"))
	require.Error(t, ValidateEnv())

	require.NoError(t, cmd.PersistentFlags().Set("server-limit", "99999999999"))
	require.Error(t, ValidateEnv())

	require.NoError(t, cmd.PersistentFlags().Set("server-limit", "0"))
	require.NoError(t, cmd.PersistentFlags().Set("log-level", "loud"))
	require.Error(t, ValidateEnv())

	require.NoError(t, cmd.PersistentFlags().Set("log-level", "debug"))
	require.NoError(t, ValidateEnv())
	require.Equal(t, uint32(0), ServerLimit)
}
