package render

import (
	"fmt"
	"io"
	"strings"
)

// BannerWidth is the width of the rule printed around query labels.
const BannerWidth = 80

// Options configure a Printer.
type Options struct {
	Color        ColorMode
	MaxCellWidth int
}

// Printer writes harness output to the console.
type Printer struct {
	out      io.Writer
	errOut   io.Writer
	styles   styles
	errStyle styles
	maxWidth int
}

// NewPrinter creates a printer writing results to out and problems to errOut.
func NewPrinter(out, errOut io.Writer, opts Options) *Printer {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = out
	}
	return &Printer{
		out:      out,
		errOut:   errOut,
		styles:   newStyles(out, useColor(opts.Color, out)),
		errStyle: newStyles(errOut, useColor(opts.Color, errOut)),
		maxWidth: opts.MaxCellWidth,
	}
}

// Out returns the result writer.
func (p *Printer) Out() io.Writer {
	return p.out
}

// Println writes a plain line to the result writer.
func (p *Printer) Println(args ...interface{}) {
	fmt.Fprintln(p.out, args...)
}

// Printf writes formatted text to the result writer.
func (p *Printer) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

// Heading writes a highlighted line.
func (p *Printer) Heading(text string) {
	fmt.Fprintln(p.out, p.styles.paint(p.styles.banner, text))
}

// Banner writes the rule/label/rule block that precedes a query result.
func (p *Printer) Banner(label string) {
	rule := strings.Repeat("=", BannerWidth)
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.styles.paint(p.styles.muted, rule))
	fmt.Fprintln(p.out, p.styles.paint(p.styles.banner, label))
	fmt.Fprintln(p.out, p.styles.paint(p.styles.muted, rule))
	fmt.Fprintln(p.out)
}

// Rule writes a bare banner rule.
func (p *Printer) Rule() {
	fmt.Fprintln(p.out, p.styles.paint(p.styles.muted, strings.Repeat("=", BannerWidth)))
}

// Table writes a table followed by its row count. emptyText is printed
// instead when rows is empty.
func (p *Printer) Table(columns []string, rows [][]interface{}, emptyText string) {
	if len(rows) == 0 {
		fmt.Fprintln(p.out, emptyText)
		return
	}
	fmt.Fprintln(p.out, renderTable(p.styles, columns, rows, p.maxWidth))
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.styles.paint(p.styles.muted, rowCountLabel(len(rows))))
}

// Grid writes a table without the row count footer.
func (p *Printer) Grid(columns []string, rows [][]interface{}) {
	fmt.Fprintln(p.out, renderTable(p.styles, columns, rows, p.maxWidth))
}

// Warnf writes a warning line to the result writer.
func (p *Printer) Warnf(format string, args ...interface{}) {
	fmt.Fprintln(p.out, p.styles.paint(p.styles.warnText, fmt.Sprintf(format, args...)))
}

// Errorf writes an error line to the error writer.
func (p *Printer) Errorf(format string, args ...interface{}) {
	fmt.Fprintln(p.errOut, p.errStyle.paint(p.errStyle.errText, fmt.Sprintf(format, args...)))
}
