package palette

import "sort"

// The usual suspects. Hex values follow the published palettes.
var builtin = map[string]Palette{
	"mono": mustParse(
		"000000", "ffffff",
	),
	"cga": mustParse(
		"000000", "55ffff", "ff55ff", "ffffff",
	),
	"gameboy": mustParse(
		"0f380f", "306230", "8bac0f", "9bbc0f",
	),
	"pico-8": mustParse(
		"000000", "1d2b53", "7e2553", "008751",
		"ab5236", "5f574f", "c2c3c7", "fff1e8",
		"ff004d", "ffa300", "ffec27", "00e436",
		"29adff", "83769c", "ff77a8", "ffccaa",
	),
	"sweetie-16": mustParse(
		"1a1c2c", "5d275d", "b13e53", "ef7d57",
		"ffcd75", "a7f070", "38b764", "257179",
		"29366f", "3b5dc9", "41a6f6", "73eff7",
		"f4f4f4", "94b0c2", "566c86", "333c57",
	),
}

func mustParse(colors ...string) Palette {
	p, err := Parse(colors...)
	if err != nil {
		panic(err)
	}
	return p
}

// Builtin returns the named built-in palette. The palette is shared, not a
// copy, and must be treated as read-only.
func Builtin(name string) (Palette, bool) {
	p, ok := builtin[name]
	return p, ok
}

// Names returns the names of all built-in palettes in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
