//go:build linux

package platform

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

// serverTimeout asks the notification server to pick the display time.
const serverTimeout int32 = -1

// Notify sends a desktop notification over org.freedesktop.Notifications.
func Notify(title, body string, opts Options) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("dbus connect: %w", err)
	}
	defer conn.Close()

	obj := conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.Call("org.freedesktop.Notifications.Notify", 0, notifyArgs(title, body, opts)...)
	return call.Err
}

func notifyArgs(title, body string, opts Options) []interface{} {
	app := opts.AppName
	if app == "" {
		app = "iconlookup"
	}
	timeout := opts.TimeoutMillis
	if timeout <= 0 {
		timeout = serverTimeout
	}
	return []interface{}{
		app, uint32(0), opts.IconPath, title, body, []string{}, map[string]dbus.Variant{}, timeout,
	}
}
