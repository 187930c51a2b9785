// Package report formats computed payouts for presentation.
package report

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mmynk/commissioner/internal/calculator"
	"github.com/mmynk/commissioner/internal/models"
	"github.com/mmynk/commissioner/pkg/api"
)

// DefaultLocale matches the language the tool was first written for.
const DefaultLocale = "zh-CN"

// Formatter renders money and labels for one locale.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// NewFormatter returns a Formatter for a BCP 47 locale such as "en" or "zh-CN".
func NewFormatter(locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &Formatter{tag: tag, printer: message.NewPrinter(tag)}, nil
}

// Locale returns the locale the formatter was built for.
func (f *Formatter) Locale() string {
	return f.tag.String()
}

// Money formats v with two decimals and locale digit grouping.
func (f *Formatter) Money(v float64) string {
	return f.printer.Sprintf("%.2f", v)
}

// Flat formats a fixed amount as a whole number without digit grouping.
func (f *Formatter) Flat(v float64) string {
	return strconv.FormatInt(int64(math.Round(v)), 10)
}

// Name returns name, or a localized placeholder when it is empty.
func (f *Formatter) Name(name string) string {
	if name == "" {
		return f.printer.Sprintf(keyUnnamed)
	}
	return name
}

// Rules describes the payout rules in one sentence.
func (f *Formatter) Rules() string {
	return f.printer.Sprintf(keyRules,
		f.Flat(calculator.BaseSalary),
		int64(math.Round(calculator.TaxRate*100)),
		f.Flat(calculator.Cost),
	)
}

// Display formats a person's payout. Detail lines are passed through verbatim.
func (f *Formatter) Display(p models.Person, r calculator.Result) api.Display {
	detail := make([]string, len(r.Detail))
	copy(detail, r.Detail)

	return api.Display{
		Name:       f.Name(p.Name),
		Profit:     f.Money(p.Profit),
		BaseSalary: f.Flat(r.BaseSalary),
		Commission: f.Money(r.Commission),
		Tax:        f.Money(r.Tax),
		Cost:       f.Flat(r.Cost),
		Final:      f.Money(r.Final),
		Detail:     detail,
	}
}
