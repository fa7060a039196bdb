package toolbox

import (
	"bytes"
	"fmt"
)

func (t *Toolbox) logMenu() {
	for {
		t.section("==== File & Log Tools ====")
		fmt.Fprintf(t.out, "Current log file: %q\n", t.log.Path())
		fmt.Fprintln(t.out, "1. View file")
		fmt.Fprintln(t.out, "2. Clear file")
		fmt.Fprintln(t.out, "0. Back")

		switch t.in.ReadInt("Select: ", 0, 2) {
		case 0:
			return
		case 1:
			// Read fully before printing the markers so a failed open
			// reports a bare diagnostic, not an empty framed file.
			var buf bytes.Buffer
			if _, err := t.log.WriteTo(&buf); err != nil {
				fmt.Fprintln(t.out, "Cannot open log file.")
				continue
			}
			t.section("--- File Start ---")
			t.out.Write(buf.Bytes())
			fmt.Fprintln(t.out, sectionStyle.Render("--- File End ---"))
		case 2:
			if err := t.log.Clear(); err != nil {
				fmt.Fprintln(t.out, "Failed to clear file.")
			} else {
				fmt.Fprintln(t.out, "File cleared.")
			}
		}
	}
}
