package common

import (
	"os"

	"github.com/logrusorgru/aurora"
	"golang.org/x/term"
)

var au = aurora.NewAurora(term.IsTerminal(int(os.Stdout.Fd())))

func AlertColor(str string) string {
	return au.Red(str).String()
}

func InfoColor(str string) string {
	return au.Green(str).String()
}

func AccountWithColor(accountID string) string {
	if accountID == "" {
		return AlertColor("(none)")
	}
	return InfoColor(accountID)
}
