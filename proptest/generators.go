package proptest

import (
	"shelf/internal/catalog"
	"strings"
	"unicode"

	"pgregory.net/rapid"
)

var (
	iterDirGen = rapid.StringMatching(`[a-z]{8}`)
	authorGen  = rapid.StringMatching(`[A-Z][a-z]{2,12}( [A-Z][a-z]{2,12})?`)
	yearGen    = rapid.IntRange(-500, 2100)
	formatGen  = rapid.StringMatching(`[A-Za-z0-9]{0,8} ?`)
)

// titleGen produces ASCII titles, including the separators and line
// breaks the stock file has to quote.
func titleGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-z][A-Za-z0-9 ,'"\n-]{0,30}`)
}

func statusGen() *rapid.Generator[catalog.Status] {
	return rapid.SampledFrom([]catalog.Status{catalog.StatusAvailable, catalog.StatusLoaned})
}

// caseVariantGen draws a spelling of title that differs only in letter case.
func caseVariantGen(title string) *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		var b strings.Builder
		for _, r := range title {
			if rapid.Bool().Draw(t, "upper") {
				b.WriteRune(unicode.ToUpper(r))
			} else {
				b.WriteRune(unicode.ToLower(r))
			}
		}
		return b.String()
	})
}

func invalidStatusGen() *rapid.Generator[catalog.Status] {
	return rapid.Map(rapid.String(), func(s string) catalog.Status {
		return catalog.Status(s)
	}).Filter(func(s catalog.Status) bool {
		return !s.Valid()
	})
}

// lineGen produces stock file lines, most of them broken.
func lineGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just(""),
		rapid.Just(","),
		rapid.Just(",,,"),
		rapid.Just(",,,,"),
		rapid.Just(`"unclosed,quote,1900,available`),
		rapid.Just("physical,Dune,Herbert,1965"),
		rapid.Just("digital,Dune,Herbert,1965,available"),
		rapid.Just("Dune,Herbert,MCMLXV,disponible"),
		rapid.Just("Dune,Herbert,1965,disponible,epub"),
		rapid.Just("Dune,Herbert,99999999999999999999,prestado"),
		rapid.StringMatching(`[a-z0-9,"]{0,40}`),
		rapid.String(),
	)
}
