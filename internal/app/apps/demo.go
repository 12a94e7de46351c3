package apps

import (
	"context"

	"comms/internal/pkg/client"
	"comms/internal/pkg/log"
	"comms/internal/pkg/protocol"
	"comms/internal/pkg/server"
	"comms/internal/pkg/validate"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var logger logrus.FieldLogger = logrus.StandardLogger()

// DefaultLoad is the load of the demo post when none is given.
const DefaultLoad = "Hello from the other side!"

// DemoAppCfg configures a DemoApp.
type DemoAppCfg interface {
	ApplyDemoApp(*DemoApp) error
}

// DemoApp opens a single connection and sends one post through it.
type DemoApp struct {
	ClientIP    string `validate:"required"`
	ServerAddr  string `validate:"required,ip|hostname_rfc1123"`
	ServerName  string `validate:"required"`
	ServerLimit uint32
	Load        string
}

// NewDemoApp creates a new DemoApp.
func NewDemoApp(cfgs ...DemoAppCfg) (*DemoApp, error) {
	app := &DemoApp{
		Load: DefaultLoad,
	}
	for _, cfg := range cfgs {
		if err := cfg.ApplyDemoApp(app); err != nil {
			return nil, errors.Wrap(err, "apply DemoApp cfg failed")
		}
	}
	if err := validate.Validate().Struct(app); err != nil {
		return nil, errors.Wrap(err, "validate DemoApp failed")
	}
	return app, nil
}

// Run runs the demo. The first argument, if any, replaces the post load.
func (app *DemoApp) Run(ctx context.Context, args []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	load := app.Load
	if len(args) > 0 {
		load = args[0]
	}
	c, err := client.NewClient(app.ClientIP)
	if err != nil {
		return errors.Wrap(err, "create client failed")
	}
	srv, err := server.NewServer(app.ServerName, app.ServerLimit)
	if err != nil {
		return errors.Wrap(err, "create server failed")
	}
	if err := c.Open(app.ServerAddr, srv); err != nil {
		return errors.Wrapf(err, "open connection to %s failed", app.ServerAddr)
	}
	resp, err := c.Send(app.ServerAddr, protocol.NewPost(load))
	if err != nil {
		return errors.Wrapf(err, "send post to %s failed", app.ServerAddr)
	}
	logger.WithFields(log.ResponseToFields(resp)).WithField("addr", app.ServerAddr).Info("demo completed")
	return nil
}
