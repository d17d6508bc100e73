package tank

import (
	"github.com/rivo/uniseg"

	"github.com/vovakirdan/tui-aquarium/internal/core"
)

// graphemes splits a palette string into single-grapheme glyphs.
func graphemes(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

var (
	fishGlyphs      = []string{"🐡", "🐠", "🐠", "🐟", "🐟", "🐟"}
	dwellerGlyphs   = graphemes("🦞🐌🦐🦀")
	cephalopodGlyph = graphemes("🦑🐙")
	urchinGlyphs    = []string{"✶", "✷", "✸", "✹", "✺", "*", "⚹", "✳", "꘎", "💥"}
	coralGlyphs     = graphemes("🪸🧠")
	shellGlyphs     = graphemes("🦪🐚𖡎")
	rockGlyphs      = graphemes("⬬⬟⭓⬢⬣☗☁⬤🗿")
	bubbleGlyphs    = []string{"･", "◦", "∘", "ߋ", "𝚘", "ᴑ", "o", "O", "ₒ", "°", "˚", "ᴼ", ":", "ஃ", "🝆", "ꖜ", "ꕣ", "ꕢ"}
	groundGlyphs    = graphemes("       ࿔𖡎.܈܉܇⋰∵⸪∴⸫˙'⠁⠂⠄⠆⠈⠊⠌⠐⠑⠒⠔⠕⠘⠠⠡⠢⠪⡀⡁⡠⡡⡢⢀⢂")
	eelBodyGlyphs   = graphemes(`()⎛⎞/\|,`)
)

const (
	seaweedGlyph = "🌿"
	inkGlyph     = "▓"
	eelHeadGlyph = "S"
)

var (
	urchinColors = []core.RGB{
		{R: 255, G: 132, B: 0},
		{R: 136, G: 61, B: 194},
		{R: 255, G: 0, B: 0},
		{R: 255, G: 255, B: 255},
	}
	coralColors = []core.RGB{
		{R: 255, G: 179, B: 0},
		{R: 255, G: 213, B: 0},
		{R: 255, G: 210, B: 254},
		{R: 255, G: 255, B: 255},
	}
	groundColors = []core.RGB{
		{R: 91, G: 62, B: 31},
		{R: 139, G: 69, B: 19},
		{R: 160, G: 82, B: 45},
		{R: 205, G: 133, B: 63},
		{R: 222, G: 184, B: 135},
	}
	groundBackgrounds = []core.RGB{
		{R: 102, G: 67, B: 29},
		{R: 129, G: 60, B: 10},
		{R: 127, G: 79, B: 45},
		{R: 151, G: 70, B: 33},
		{R: 175, G: 107, B: 40},
	}

	rockColor   = core.RGB{R: 128, G: 128, B: 128}
	bubbleColor = core.RGB{R: 157, G: 229, B: 255}
	humanColor  = core.RGB{R: 255, G: 255, B: 0}

	octopusInk = core.RGB{}
	squidInk   = core.RGB{R: 0, G: 0, B: 100}
)

// Cephalopods flee from these glyphs (and from every other cephalopod).
var predatorGlyphs = glyphSet("🦈🐊🐉🐲🐳🐋🐙🦑🐧🦭🦦")

// Cephalopods hunt these glyphs.
var preyGlyphs = glyphSet("🐟🐠🦐🦀🦞🐙🦑🦪🐌🪼🍤🍣")

func glyphSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, g := range graphemes(s) {
		set[g] = true
	}
	return set
}
