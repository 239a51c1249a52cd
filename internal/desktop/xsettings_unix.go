//go:build linux || freebsd || openbsd || netbsd || dragonfly

package desktop

import (
	"context"
	"errors"
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var errNoXSettingsManager = errors.New("no xsettings manager")

func xsettingsTheme(context.Context) (string, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return "", fmt.Errorf("connect X server: %w", err)
	}
	defer conn.Close()

	sel, err := internAtom(conn, fmt.Sprintf("_XSETTINGS_S%d", conn.DefaultScreen))
	if err != nil {
		return "", err
	}
	if sel == xproto.AtomNone {
		return "", errNoXSettingsManager
	}
	owner, err := xproto.GetSelectionOwner(conn, sel).Reply()
	if err != nil {
		return "", fmt.Errorf("xsettings owner: %w", err)
	}
	if owner.Owner == xproto.WindowNone {
		return "", errNoXSettingsManager
	}

	prop, err := internAtom(conn, "_XSETTINGS_SETTINGS")
	if err != nil {
		return "", err
	}
	reply, err := xproto.GetProperty(conn, false, owner.Owner, prop, xproto.GetPropertyTypeAny, 0, 1<<16).Reply()
	if err != nil {
		return "", fmt.Errorf("xsettings property: %w", err)
	}
	if reply.Format != 8 || reply.ValueLen == 0 {
		return "", fmt.Errorf("xsettings property unavailable")
	}

	settings, err := ParseXSettings(reply.Value)
	if err != nil {
		return "", err
	}
	s, ok := settings[xsettingsKey]
	if !ok || s.Type != SettingString {
		return "", fmt.Errorf("xsettings: %s not set", xsettingsKey)
	}
	return s.String, nil
}

func internAtom(conn *xgb.Conn, name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(conn, true, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("intern %s: %w", name, err)
	}
	return reply.Atom, nil
}
