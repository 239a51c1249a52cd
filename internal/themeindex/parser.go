package themeindex

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// HeaderSection is the section holding theme-wide keys.
const HeaderSection = "Icon Theme"

const maxLineLength = 1 << 20

// Parser reads index.theme files. The zero value is ready to use.
type Parser struct {
	Logger *zap.Logger
}

type section struct {
	name string
	keys map[string]string
}

// Parse reads an index.theme from r. name is the theme id, normally the
// directory the index was found in. Only a read failure returns an error;
// bad values fall back to their defaults and sections without a usable
// Size are dropped.
func (p Parser) Parse(r io.Reader, name string) (*Theme, error) {
	sections, err := readSections(r)
	if err != nil {
		return nil, err
	}

	log := p.logger(name)
	t := &Theme{Name: name}
	for _, s := range sections {
		if s.name == HeaderSection {
			applyHeader(t, s.keys)
			continue
		}
		sub, err := buildSubdir(s, log)
		if err != nil {
			log.Warn("dropping theme directory", zap.Error(err))
			t.Skipped = append(t.Skipped, s.name)
			continue
		}
		t.Subdirs = append(t.Subdirs, sub)
	}
	return t, nil
}

func (p Parser) logger(theme string) *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger.With(zap.String("theme", theme))
}

func readSections(r io.Reader) ([]*section, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	var (
		sections []*section
		byName   = make(map[string]*section)
		current  *section
		first    = true
	)
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			name := strings.TrimSpace(line[1 : len(line)-1])
			// A repeated header continues the earlier section.
			if s, ok := byName[name]; ok {
				current = s
				continue
			}
			current = &section{name: name, keys: make(map[string]string)}
			byName[name] = current
			sections = append(sections, current)
			continue
		}

		if current == nil {
			continue // keys before the first header belong to no section
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		current.keys[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sections, nil
}

func applyHeader(t *Theme, keys map[string]string) {
	t.DisplayName = keys["Name"]
	t.Comment = keys["Comment"]
	t.Inherits = splitList(keys["Inherits"])
	t.Directories = splitList(keys["Directories"])
	t.ScaledDirectories = splitList(keys["ScaledDirectories"])
	t.Example = keys["Example"]
	if v, err := strconv.ParseBool(keys["Hidden"]); err == nil {
		t.Hidden = v
	}
}

func buildSubdir(s *section, log *zap.Logger) (Subdir, error) {
	raw, ok := s.keys["Size"]
	if !ok {
		return Subdir{}, &MalformedEntryError{Section: s.name, Reason: "missing Size"}
	}
	size, err := strconv.Atoi(raw)
	if err != nil || size < 1 {
		return Subdir{}, &MalformedEntryError{Section: s.name, Reason: fmt.Sprintf("invalid Size %q", raw)}
	}

	sub := Subdir{
		Path:      s.name,
		Size:      size,
		Scale:     intKey(s.keys, "Scale", DefaultScale),
		Type:      ParseDirType(s.keys["Type"]),
		MinSize:   intKey(s.keys, "MinSize", size),
		MaxSize:   intKey(s.keys, "MaxSize", size),
		Threshold: intKey(s.keys, "Threshold", DefaultThreshold),
		Context:   s.keys["Context"],
	}
	if sub.Scale < 1 {
		sub.Scale = DefaultScale
	}
	if sub.Threshold < 0 {
		sub.Threshold = DefaultThreshold
	}
	if sub.MinSize > sub.Size {
		log.Warn("MinSize above Size, using Size", zap.String("section", s.name), zap.Int("min_size", sub.MinSize))
		sub.MinSize = sub.Size
	}
	if sub.MaxSize < sub.Size {
		log.Warn("MaxSize below Size, using Size", zap.String("section", s.name), zap.Int("max_size", sub.MaxSize))
		sub.MaxSize = sub.Size
	}
	return sub, nil
}

func intKey(keys map[string]string, key string, def int) int {
	raw, ok := keys[key]
	if !ok {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
