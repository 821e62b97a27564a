// Package styles maps category labels to their display style.
package styles

// Style is the icon/color pair a category renders with. Identifiers are
// symbolic; clients translate them to platform assets.
type Style struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Fallback is the style for categories not present in the table.
var Fallback = Style{Icon: "questionmark.circle", Color: "gray"}

// Lookup is keyed by the exact label stored on transactions. Labels are
// matched case-sensitively; "Alimentación" and "alimentación" are distinct.
var lookup = map[string]Style{
	"Vivienda y Servicios":    {Icon: "house.fill", Color: "blue"},
	"Alimentación":            {Icon: "cart.fill", Color: "orange"},
	"Transporte":              {Icon: "car.fill", Color: "green"},
	"Compras Personales":      {Icon: "bag.fill", Color: "pink"},
	"Salud y Bienestar":       {Icon: "heart.fill", Color: "red"},
	"Ocio y Vida Social":      {Icon: "gamecontroller.fill", Color: "purple"},
	"Educación y Desarrollo":  {Icon: "book.fill", Color: "indigo"},
	"Finanzas y Obligaciones": {Icon: "banknote.fill", Color: "teal"},
	"Finanzas":                {Icon: "banknote.fill", Color: "teal"},
	"Otros":                   {Icon: "ellipsis.circle.fill", Color: "gray"},
	"Otro":                    {Icon: "ellipsis.circle.fill", Color: "gray"},
}

// ForCategory returns the display style for a category label. Unknown
// labels get the generic fallback; the function never fails.
func ForCategory(name string) Style {
	if s, ok := lookup[name]; ok {
		return s
	}
	return Fallback
}

// Known reports whether the label has a dedicated style.
func Known(name string) bool {
	_, ok := lookup[name]
	return ok
}
