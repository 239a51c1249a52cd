package iconlookup

// ThemeInfo describes one installed theme.
type ThemeInfo struct {
	ID       string
	Name     string
	Comment  string
	Inherits []string
	Hidden   bool
	// Dirs are the theme's directories, one per base directory holding it.
	Dirs []string
}

// Themes lists the installed themes in base directory order.
func (f *Finder) Themes() []ThemeInfo {
	cat := f.plain.Catalog
	var out []ThemeInfo
	for _, id := range cat.Names() {
		in, ok := cat.Find(id)
		if !ok {
			continue
		}
		info := ThemeInfo{
			ID:       id,
			Name:     in.DisplayName(),
			Comment:  in.Theme.Comment,
			Inherits: in.Parents(),
			Hidden:   in.Theme.Hidden,
		}
		for _, fr := range in.Fragments {
			info.Dirs = append(info.Dirs, fr.Root)
		}
		out = append(out, info)
	}
	return out
}

// ListThemes returns the display names of the themes installed for the
// Default finder.
func ListThemes() []string {
	themes := Default().Themes()
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}
