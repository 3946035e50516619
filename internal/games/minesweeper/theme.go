package minesweeper

import "github.com/vovakirdan/tui-mines/internal/core"

// Theme is a set of glyphs for drawing the board.
// Every glyph occupies Width terminal columns.
type Theme struct {
	Name      string
	Width     int
	Unvisited string
	Clear     string
	Flag      string
	Bomb      string
	Exploded  string
	Cursor    string
	Numbers   [9]string
	Colors    bool // Whether numbers and markers are colored
}

// EmojiTheme mirrors the classic console look: colored squares and keycap digits.
var EmojiTheme = Theme{
	Name:      "emoji",
	Width:     2,
	Unvisited: "⬛",
	Clear:     "⬜",
	Flag:      "🟧",
	Bomb:      "🟥",
	Exploded:  "💥",
	Cursor:    "🟦",
	Numbers:   [9]string{"0️⃣", "1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣"},
}

// ASCIITheme works on terminals without emoji fonts.
var ASCIITheme = Theme{
	Name:      "ascii",
	Width:     2,
	Unvisited: "[]",
	Clear:     " .",
	Flag:      " F",
	Bomb:      " *",
	Exploded:  " X",
	Cursor:    "<>",
	Numbers:   [9]string{" .", " 1", " 2", " 3", " 4", " 5", " 6", " 7", " 8"},
	Colors:    true,
}

// ThemeByName returns the named theme, falling back to EmojiTheme.
func ThemeByName(name string) Theme {
	if name == ASCIITheme.Name {
		return ASCIITheme
	}
	return EmojiTheme
}

// numberColors follows the traditional palette for adjacency digits.
var numberColors = [9]core.Color{
	core.ColorDefault,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorBrightRed,
	core.ColorBlue,
	core.ColorRed,
	core.ColorCyan,
	core.ColorMagenta,
	core.ColorGray,
}

// color returns c when the theme is colored, otherwise the default color.
func (t Theme) color(c core.Color) core.Color {
	if !t.Colors {
		return core.ColorDefault
	}
	return c
}
