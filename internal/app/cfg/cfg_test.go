package cfg

import (
	"testing"

	"comms/internal/app/apps"

	"github.com/stretchr/testify/require"
)

func TestApplyDemoApp(t *testing.T) {
	app, err := apps.NewDemoApp(
		NewClientCfg("10.0.0.9"),
		NewServerCfg("Other", "197.0.0.9", 4),
		LoadCfg("hi"),
	)
	require.NoError(t, err)
	require.Equal(t, &apps.DemoApp{
		ClientIP:    "10.0.0.9",
		ServerAddr:  "197.0.0.9",
		ServerName:  "Other",
		ServerLimit: 4,
		Load:        "hi",
	}, app)
}
