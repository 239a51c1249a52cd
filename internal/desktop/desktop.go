// Package desktop asks the running desktop session which icon theme it uses.
package desktop

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

const (
	interfaceSchema = "org.gnome.desktop.interface"
	iconThemeKey    = "icon-theme"
	xsettingsKey    = "Net/IconThemeName"
)

type source struct {
	name string
	read func(context.Context) (string, error)
}

// Sources are tried in order; tests replace the readers.
var (
	portalReader    = portalTheme
	xsettingsReader = xsettingsTheme
	gsettingsReader = gsettingsTheme
)

func sources() []source {
	return []source{
		{"portal", portalReader},
		{"xsettings", xsettingsReader},
		{"gsettings", gsettingsReader},
	}
}

// Detector finds the desktop icon theme.
type Detector struct {
	Logger *zap.Logger
	// Installed filters out themes that are not available locally. Nil
	// accepts every name.
	Installed func(name string) bool
}

// Detect returns the first installed theme reported by the settings portal,
// the XSETTINGS manager or gsettings.
func (d Detector) Detect(ctx context.Context) (string, bool) {
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}
	for _, s := range sources() {
		name, err := s.read(ctx)
		if err != nil {
			log.Debug("desktop theme source failed", zap.String("source", s.name), zap.Error(err))
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if d.Installed != nil && !d.Installed(name) {
			log.Debug("desktop theme not installed", zap.String("source", s.name), zap.String("theme", name))
			continue
		}
		log.Debug("desktop theme", zap.String("source", s.name), zap.String("theme", name))
		return name, true
	}
	return "", false
}

var runGSettings = func(ctx context.Context, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, "gsettings", args...).Output()
}

func gsettingsTheme(ctx context.Context) (string, error) {
	out, err := runGSettings(ctx, "get", interfaceSchema, iconThemeKey)
	if err != nil {
		return "", fmt.Errorf("gsettings: %w", err)
	}
	return strings.Trim(strings.TrimSpace(string(out)), "'\""), nil
}
