//go:build linux || freebsd || openbsd || netbsd || dragonfly

package desktop

import (
	"context"
	"errors"
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	portalDest = "org.freedesktop.portal.Desktop"
	portalPath = "/org/freedesktop/portal/desktop"
)

func portalTheme(ctx context.Context) (string, error) {
	conn, err := dbus.ConnectSessionBus(dbus.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("dbus connect: %w", err)
	}
	defer conn.Close()

	obj := conn.Object(portalDest, dbus.ObjectPath(portalPath))
	var v dbus.Variant
	err = obj.CallWithContext(ctx, "org.freedesktop.portal.Settings.ReadOne", 0, interfaceSchema, iconThemeKey).Store(&v)
	if err != nil {
		// Read is the older, double wrapped form of ReadOne.
		if rerr := obj.CallWithContext(ctx, "org.freedesktop.portal.Settings.Read", 0, interfaceSchema, iconThemeKey).Store(&v); rerr != nil {
			return "", fmt.Errorf("portal settings: %w", errors.Join(err, rerr))
		}
	}
	return variantString(v)
}

// variantString unwraps nested variants down to a string.
func variantString(v dbus.Variant) (string, error) {
	for i := 0; i < 4; i++ {
		switch val := v.Value().(type) {
		case string:
			return val, nil
		case dbus.Variant:
			v = val
		default:
			return "", fmt.Errorf("portal settings: unexpected value type %T", val)
		}
	}
	return "", fmt.Errorf("portal settings: value nested too deeply")
}
