package paint

import (
	"fmt"
	"sort"
)

var styles = map[string]func() Style{
	"textured": func() Style { return Textured{} },
	"simple":   func() Style { return Simple{} },
}

// Lookup returns the style registered under name.
func Lookup(name string) (Style, error) {
	fn, ok := styles[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown style %q (available: %v)", ErrInvalidArgument, name, StyleNames())
	}
	return fn(), nil
}

// StyleNames lists the registered styles in sorted order.
func StyleNames() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
