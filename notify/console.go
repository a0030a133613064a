// Package notify renders moderator output for the people in the room.
package notify

import (
	"fmt"
	"io"

	"github.com/gookit/color"
)

// ConsoleNotifier writes colorized moderator lines. Interrupts carry a
// terminal bell so an over-budget speaker is hard to miss.
type ConsoleNotifier struct {
	out     io.Writer
	colours bool
}

func NewConsoleNotifier(out io.Writer, colours bool) ConsoleNotifier {
	return ConsoleNotifier{out: out, colours: colours}
}

func (n ConsoleNotifier) Status(message string) {
	line := fmt.Sprintf("[standup] %s", message)
	if n.colours {
		line = color.New(color.FgCyan).Render(line)
	}
	fmt.Fprintln(n.out, line)
}

func (n ConsoleNotifier) Interrupt(name, message string) {
	line := fmt.Sprintf("  ====== %s ======", message)
	if n.colours {
		line = color.New(color.BgBlack, color.FgRed).Render(line)
	}
	fmt.Fprintf(n.out, "\a%s\n", line)
}

func (n ConsoleNotifier) Summary(report string) {
	fmt.Fprintln(n.out, report)
}
