package libdiff

import (
	"bufio"
	"io"

	"github.com/fatih/color"
)

var (
	deleteColor = color.New(color.FgRed)
	insertColor = color.New(color.FgGreen)
)

func init() {
	// Write decides on colour itself.
	deleteColor.EnableColor()
	insertColor.EnableColor()
}

// Write renders lines with "-", "+" and " " prefixes, deletions in red and
// insertions in green when colored is set.
func Write(w io.Writer, lines []Line, colored bool) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		text := l.String()
		if colored {
			switch l.Op {
			case Delete:
				text = deleteColor.Sprint(text)
			case Insert:
				text = insertColor.Sprint(text)
			}
		}
		if _, err := bw.WriteString(text + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
