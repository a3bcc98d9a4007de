package table

import "github.com/rivo/uniseg"

// firstGrapheme returns the first grapheme cluster of s, or "" when s
// is empty. A character cell carries a single glyph, but the glyph may
// span several runes (block elements, combining marks); cutting at the
// cluster boundary keeps such glyphs intact while dropping any stray
// trailing text.
func firstGrapheme(s string) string {
	if s == "" {
		return ""
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return cluster
}
