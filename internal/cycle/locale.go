package cycle

import "fmt"

// Locale carries the month spellings used when labelling a cycle range.
// It affects presentation only, never the date arithmetic.
type Locale struct {
	Tag        string
	monthAbbrs [12]string
}

// EsCO is the default locale (Spanish, Colombia).
var EsCO = Locale{
	Tag: "es-CO",
	monthAbbrs: [12]string{
		"Ene", "Feb", "Mar", "Abr", "May", "Jun",
		"Jul", "Ago", "Sep", "Oct", "Nov", "Dic",
	},
}

// EnUS is provided for callers that render in English.
var EnUS = Locale{
	Tag: "en-US",
	monthAbbrs: [12]string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
}

// Label renders the range as a short display string, e.g. "15 Ene - 14 Feb".
func (r Range) Label(loc Locale) string {
	return fmt.Sprintf("%d %s - %d %s",
		r.Start.Day(), loc.monthAbbrs[r.Start.Month()-1],
		r.End.Day(), loc.monthAbbrs[r.End.Month()-1],
	)
}
