package format

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale is Brazilian Portuguese: ',' decimal separator, '.' grouping
const DefaultLocale = "pt-BR"

// Decimal places per displayed quantity
const (
	ForcePlaces      = 2
	AreaPlaces       = 4
	ModulusPlaces    = 0
	ElongationPlaces = 4
	WeightPlaces     = 3
	FptkPlaces       = 0
	Fptk077Places    = 1
	StiffnessPlaces  = 2
	DiameterPlaces   = 1
	PercentPlaces    = 1
)

// Formatter renders numbers with locale grouping and a fixed number of
// fraction digits
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Formatter for a BCP-47 locale tag such as "pt-BR" or "en-US"
func New(locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &Formatter{tag: tag, printer: message.NewPrinter(tag)}, nil
}

// Default returns the pt-BR formatter
func Default() *Formatter {
	tag := language.BrazilianPortuguese
	return &Formatter{tag: tag, printer: message.NewPrinter(tag)}
}

// Locale returns the formatter's language tag
func (f *Formatter) Locale() string {
	return f.tag.String()
}

// Decimal formats v with exactly places fraction digits. Ties round away
// from zero on the shortest decimal form of v, so 0.125 shows as 0,13.
func (f *Formatter) Decimal(v float64, places int) string {
	return f.printer.Sprintf("%v", number.Decimal(roundHalfAway(v, places), number.Scale(places)))
}

// roundHalfAway rounds the shortest decimal representation of v to places
// fraction digits. The result has no tie left for number.Decimal to break.
func roundHalfAway(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || places < 0 {
		return v
	}

	s := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	whole, frac, _ := strings.Cut(s, ".")
	if len(frac) <= places {
		return v
	}

	n, ok := new(big.Int).SetString(whole+frac[:places], 10)
	if !ok {
		return v
	}
	if frac[places] >= '5' {
		n.Add(n, big.NewInt(1))
	}

	digits := n.String()
	if len(digits) <= places {
		digits = strings.Repeat("0", places-len(digits)+1) + digits
	}
	if places > 0 {
		digits = digits[:len(digits)-places] + "." + digits[len(digits)-places:]
	}

	r, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return v
	}
	if v < 0 {
		return -r
	}
	return r
}

func (f *Formatter) Force(kgf float64) string { return f.Decimal(kgf, ForcePlaces) }
func (f *Formatter) Area(cm2 float64) string { return f.Decimal(cm2, AreaPlaces) }
func (f *Formatter) Modulus(e float64) string { return f.Decimal(e, ModulusPlaces) }
func (f *Formatter) Elongation(cmPerM float64) string { return f.Decimal(cmPerM, ElongationPlaces) }
func (f *Formatter) Weight(kgPerM float64) string { return f.Decimal(kgPerM, WeightPlaces) }
func (f *Formatter) Fptk(v float64) string { return f.Decimal(v, FptkPlaces) }
func (f *Formatter) Fptk077(v float64) string { return f.Decimal(v, Fptk077Places) }
func (f *Formatter) Stiffness(v float64) string { return f.Decimal(v, StiffnessPlaces) }
func (f *Formatter) Diameter(mm float64) string { return f.Decimal(mm, DiameterPlaces) }

// Percent formats a ratio (0.5 -> "50,0 %" in pt-BR)
func (f *Formatter) Percent(ratio float64) string {
	return f.Decimal(ratio*100, PercentPlaces) + " %"
}
