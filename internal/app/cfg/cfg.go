// Package cfg implements functionaltiy to configure an app.
//
// The configuration objects defined here need only be implemented once,
// but can be applied to multiple types.
//
// In order to add support for a new type, the configuration
// need only implement an ApplyX method.
package cfg

import (
	"comms/internal"
	"comms/internal/app/apps"
)

// ClientCfg is configuration for the demo client.
type ClientCfg struct {
	ip string
}

// NewClientCfg creates a new ClientCfg from the given config.
func NewClientCfg(ip string) *ClientCfg {
	return &ClientCfg{
		ip: ip,
	}
}

// ClientFromEnv creates a new ClientCfg from the current environment.
func ClientFromEnv() *ClientCfg {
	return NewClientCfg(internal.ClientIP)
}

// ApplyDemoApp applies the ClientCfg to a DemoApp.
func (cfg ClientCfg) ApplyDemoApp(app *apps.DemoApp) error {
	app.ClientIP = cfg.ip
	return nil
}

// ServerCfg is configuration for the server the demo client connects to.
type ServerCfg struct {
	name  string
	addr  string
	limit uint32
}

// NewServerCfg creates a new ServerCfg from the given config.
func NewServerCfg(name, addr string, limit uint32) *ServerCfg {
	return &ServerCfg{
		name:  name,
		addr:  addr,
		limit: limit,
	}
}

// ServerFromEnv creates a new ServerCfg from the current environment.
func ServerFromEnv() *ServerCfg {
	return NewServerCfg(internal.ServerName, internal.ServerAddr, internal.ServerLimit)
}

// ApplyDemoApp applies the ServerCfg to a DemoApp.
func (cfg ServerCfg) ApplyDemoApp(app *apps.DemoApp) error {
	app.ServerName = cfg.name
	app.ServerAddr = cfg.addr
	app.ServerLimit = cfg.limit
	return nil
}

// LoadCfg sets the load of the demo post.
type LoadCfg string

// ApplyDemoApp applies the LoadCfg to a DemoApp.
func (cfg LoadCfg) ApplyDemoApp(app *apps.DemoApp) error {
	app.Load = string(cfg)
	return nil
}
