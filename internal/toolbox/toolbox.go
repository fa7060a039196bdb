// Package toolbox implements the interactive calculator menus. Each module
// reads its inputs through the validating prompt reader, prints its result,
// and offers to append a one-line summary to the history log.
package toolbox

import (
	"fmt"
	"io"

	"github.com/ELEC2645/eetoolbox/internal/history"
	"github.com/ELEC2645/eetoolbox/internal/prompt"
)

// Toolbox ties the prompt reader, output stream, and history log together
// for one interactive session.
type Toolbox struct {
	in  *prompt.Reader
	out io.Writer
	log *history.Log
}

// New creates a Toolbox reading from in and writing to out.
func New(in *prompt.Reader, out io.Writer, log *history.Log) *Toolbox {
	return &Toolbox{in: in, out: out, log: log}
}

// Run drives the top-level menu until the user exits.
func (t *Toolbox) Run() {
	for {
		fmt.Fprintln(t.out)
		fmt.Fprintln(t.out, titleStyle.Render("===================================="))
		fmt.Fprintln(t.out, titleStyle.Render("     Electrical Engineering Toolbox"))
		fmt.Fprintln(t.out, titleStyle.Render("===================================="))
		fmt.Fprintln(t.out, "1. Resistor Color Code")
		fmt.Fprintln(t.out, "2. Series/Parallel Resistors")
		fmt.Fprintln(t.out, "3. RC Charge/Discharge")
		fmt.Fprintln(t.out, "4. Ohm's Law & Power")
		fmt.Fprintln(t.out, "5. Signal Generation/Analysis")
		fmt.Fprintln(t.out, "6. File/Log Tools")
		fmt.Fprintln(t.out, "0. Exit")

		switch t.in.ReadInt("Select: ", 0, 6) {
		case 0:
			return
		case 1:
			t.resistorMenu()
		case 2:
			t.seriesParallel()
		case 3:
			t.rcTransient()
		case 4:
			t.ohmAndPower()
		case 5:
			t.signalMenu()
		case 6:
			t.logMenu()
		}
	}
}

// offerSave asks for confirmation and appends the summary to the history
// log. A log file that cannot be opened is reported and skipped; the result
// already printed is not affected.
func (t *Toolbox) offerSave(summary string) {
	q := fmt.Sprintf("\nSave this result to %q? (y/n): ", t.log.Path())
	if !t.in.Confirm(q) {
		fmt.Fprintln(t.out, "Not saved.")
		return
	}
	if err := t.log.Append(summary); err != nil {
		fmt.Fprintln(t.out, "Could not open log file.")
		return
	}
	fmt.Fprintln(t.out, "Saved.")
}

func (t *Toolbox) section(heading string) {
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, sectionStyle.Render(heading))
}
