package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Dinheiro formats a monetary value for display, e.g. 1234.5 -> "R$ 1.234,50".
func Dinheiro(valor float64) string {
	return printer.Sprintf("R$ %.2f", valor)
}

// Quantidade formats an integer count with pt-BR grouping.
func Quantidade(n int) string {
	return printer.Sprintf("%d", n)
}
