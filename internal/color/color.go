package color

import (
	"github.com/fatih/color"
)

var (
	red     = color.New(color.FgRed)
	green   = color.New(color.FgGreen)
	cyan    = color.New(color.FgCyan)
	magenta = color.New(color.FgMagenta)
	blue    = color.New(color.FgBlue, color.Bold)
	dim     = color.New(color.FgHiBlack, color.Bold)
	bold    = color.New(color.Bold)
)

// SetEnabled switches colour output on or off for every helper in this package.
// fatih/color only checks stdout, which the shell function captures.
func SetEnabled(enabled bool) {
	color.NoColor = !enabled
}

func FgRed(format string, a ...interface{}) string {
	return red.Sprintf(format, a...)
}

func FgGreen(format string, a ...interface{}) string {
	return green.Sprintf(format, a...)
}

func FgCyan(format string, a ...interface{}) string {
	return cyan.Sprintf(format, a...)
}

func FgMagenta(format string, a ...interface{}) string {
	return magenta.Sprintf(format, a...)
}

func FgBlue(format string, a ...interface{}) string {
	return blue.Sprintf(format, a...)
}

func FgHiBlack(format string, a ...interface{}) string {
	return dim.Sprintf(format, a...)
}

func Bold(format string, a ...interface{}) string {
	return bold.Sprintf(format, a...)
}
