//go:build linux || freebsd || openbsd || netbsd || dragonfly

package desktop

import (
	"testing"

	"github.com/godbus/dbus/v5"
)

func TestVariantString(t *testing.T) {
	tests := []struct {
		name    string
		v       dbus.Variant
		want    string
		wantErr bool
	}{
		{"read one", dbus.MakeVariant("Adwaita"), "Adwaita", false},
		{"read", dbus.MakeVariant(dbus.MakeVariant("Breeze")), "Breeze", false},
		{"wrong type", dbus.MakeVariant(uint32(3)), "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := variantString(tc.v)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Fatalf("variantString = %q, %v; want %q", got, err, tc.want)
			}
		})
	}
}
