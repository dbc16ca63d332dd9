package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"surge/internal/diag"
	"surge/internal/source"
)

// DiagOpts configures Diagnostics.
type DiagOpts struct {
	Color   bool
	Context int // any positive value prints the primary span's source line and a caret (only that one line, whatever the value); 0 disables both
}

var (
	errorColor = color.New(color.FgRed, color.Bold)
	warnColor  = color.New(color.FgYellow, color.Bold)
	infoColor  = color.New(color.FgCyan)
	dimColor   = color.New(color.Faint)
)

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}

// Diagnostics writes every diagnostic in bag as "path:line:col: SEV code: message",
// followed (when opts.Context > 0) by the offending source line and a caret
// pointing at the primary span's start column. Column arithmetic accounts
// for wide runes via go-runewidth so the caret lines up under multi-width
// characters in the source line.
func Diagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts DiagOpts) error {
	bag.Sort()
	for _, d := range bag.Items() {
		if err := writeOne(w, d, fs, opts); err != nil {
			return err
		}
	}
	return nil
}

func writeOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts DiagOpts) error {
	file := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)
	path := file.FormatPath("auto", fs.BaseDir())

	sevTag := d.Severity.String()
	header := fmt.Sprintf("%s:%d:%d: %s %s: %s", path, start.Line, start.Col, sevTag, d.Code.ID(), d.Message)
	if opts.Color {
		header = fmt.Sprintf("%s:%d:%d: %s %s: %s",
			path, start.Line, start.Col,
			severityColor(d.Severity).Sprint(sevTag), dimColor.Sprint(d.Code.ID()), d.Message)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	if opts.Context > 0 {
		if err := writeCaretLine(w, file, start, opts); err != nil {
			return err
		}
	}

	for _, n := range d.Notes {
		nstart, _ := fs.Resolve(n.Span)
		note := fmt.Sprintf("  note: %s (%d:%d)", n.Msg, nstart.Line, nstart.Col)
		if opts.Color {
			note = dimColor.Sprint(note)
		}
		if _, err := fmt.Fprintln(w, note); err != nil {
			return err
		}
	}
	return nil
}

func writeCaretLine(w io.Writer, file *source.File, pos source.LineCol, opts DiagOpts) error {
	line := file.GetLine(pos.Line)
	if line == "" {
		return nil
	}
	if _, err := fmt.Fprintf(w, "  %s\n", line); err != nil {
		return err
	}

	// pos.Col is 1-based; sum display widths of every rune before it.
	col := int(pos.Col)
	width := 0
	for i, r := range line {
		if i+1 >= col {
			break
		}
		width += runewidth.RuneWidth(r)
	}
	caret := "  " + strings.Repeat(" ", width) + "^"
	if opts.Color {
		caret = errorColor.Sprint(caret)
	}
	_, err := fmt.Fprintln(w, caret)
	return err
}
