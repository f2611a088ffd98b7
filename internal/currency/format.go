package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// es-AR表示（$ 1.234,56）。表示専用でデータモデルには含めない。
var printer = message.NewPrinter(language.MustParse("es-AR"))

func Format(d decimal.Decimal) string {
	f, _ := d.Float64()
	return printer.Sprintf("$ %v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
