package desktop

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// SettingType is the value type of one XSETTINGS entry.
type SettingType uint8

const (
	SettingInt SettingType = iota
	SettingString
	SettingColor
)

// Setting is one decoded XSETTINGS entry.
type Setting struct {
	Name   string
	Type   SettingType
	Serial uint32
	Int    int32
	String string
	// Color holds red, blue, green and alpha in wire order.
	Color [4]uint16
}

var errShortXSettings = errors.New("xsettings: truncated data")

type xreader struct {
	b     []byte
	off   int
	order binary.ByteOrder
}

func (r *xreader) need(n int) error {
	if n < 0 || len(r.b)-r.off < n {
		return errShortXSettings
	}
	return nil
}

func (r *xreader) u8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.b[r.off]
	r.off++
	return v, nil
}

func (r *xreader) u16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := r.order.Uint16(r.b[r.off:])
	r.off += 2
	return v, nil
}

func (r *xreader) u32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := r.order.Uint32(r.b[r.off:])
	r.off += 4
	return v, nil
}

func (r *xreader) skip(n int) error {
	if err := r.need(n); err != nil {
		return err
	}
	r.off += n
	return nil
}

// str reads n bytes followed by padding to a four byte boundary.
func (r *xreader) str(n int) (string, error) {
	padded := (n + 3) &^ 3
	if err := r.need(padded); err != nil {
		return "", err
	}
	s := string(r.b[r.off : r.off+n])
	r.off += padded
	return s, nil
}

// ParseXSettings decodes the _XSETTINGS_SETTINGS property value.
func ParseXSettings(b []byte) (map[string]Setting, error) {
	r := &xreader{b: b}
	order, err := r.u8()
	if err != nil {
		return nil, err
	}
	switch order {
	case 0:
		r.order = binary.LittleEndian
	case 1:
		r.order = binary.BigEndian
	default:
		return nil, fmt.Errorf("xsettings: bad byte order %d", order)
	}
	if err := r.skip(3); err != nil {
		return nil, err
	}
	if _, err := r.u32(); err != nil {
		return nil, err
	}
	count, err := r.u32()
	if err != nil {
		return nil, err
	}

	out := make(map[string]Setting)
	for i := uint32(0); i < count; i++ {
		s, err := r.setting()
		if err != nil {
			return nil, fmt.Errorf("setting %d: %w", i, err)
		}
		out[s.Name] = s
	}
	return out, nil
}

func (r *xreader) setting() (Setting, error) {
	var s Setting
	typ, err := r.u8()
	if err != nil {
		return s, err
	}
	s.Type = SettingType(typ)
	if err := r.skip(1); err != nil {
		return s, err
	}
	nameLen, err := r.u16()
	if err != nil {
		return s, err
	}
	if s.Name, err = r.str(int(nameLen)); err != nil {
		return s, err
	}
	if s.Serial, err = r.u32(); err != nil {
		return s, err
	}

	switch s.Type {
	case SettingInt:
		v, err := r.u32()
		if err != nil {
			return s, err
		}
		s.Int = int32(v)
	case SettingString:
		n, err := r.u32()
		if err != nil {
			return s, err
		}
		if n > uint32(len(r.b)) {
			return s, errShortXSettings
		}
		if s.String, err = r.str(int(n)); err != nil {
			return s, err
		}
	case SettingColor:
		for i := range s.Color {
			if s.Color[i], err = r.u16(); err != nil {
				return s, err
			}
		}
	default:
		return s, fmt.Errorf("xsettings: unknown type %d", typ)
	}
	return s, nil
}
