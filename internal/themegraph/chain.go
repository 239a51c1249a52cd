package themegraph

import "go.uber.org/zap"

// FallbackTheme is searched after every other theme in a chain.
const FallbackTheme = "hicolor"

// Chain returns the themes to search for requested: requested itself, then
// its parents breadth first in declared order, then fallback. Each theme
// appears at most once. Themes that are not installed are left out, so a
// missing requested theme yields only the fallback, or nothing when the
// fallback is missing too.
func (c *Catalog) Chain(requested, fallback string) []*Installed {
	var chain []*Installed
	visited := map[string]bool{fallback: true}
	queue := []string{requested}

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if visited[name] {
			continue
		}
		visited[name] = true

		in, ok := c.Find(name)
		if !ok {
			c.log().Debug("theme not installed, pruned from chain", zap.String("theme", name))
			continue
		}
		chain = append(chain, in)
		queue = append(queue, in.Parents()...)
	}

	if fb, ok := c.Find(fallback); ok {
		chain = append(chain, fb)
	}
	return chain
}

// Names returns the ids of a chain.
func Names(chain []*Installed) []string {
	out := make([]string, len(chain))
	for i, in := range chain {
		out[i] = in.Name
	}
	return out
}
