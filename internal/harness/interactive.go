package harness

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// maxLineBytes bounds a single interactive line; long pasted queries fit.
const maxLineBytes = 1 << 20

// lineAction is the outcome of handling one interactive line.
type lineAction int

const (
	actionContinue lineAction = iota
	actionExit
)

// Interactive reads queries line by line from in until an exit keyword, end
// of input, or cancellation of ctx. None of these is an error.
func (h *Harness) Interactive(ctx context.Context, in io.Reader) error {
	h.printInteractiveHeader()

	done := make(chan struct{})
	defer close(done)
	lines := readLines(in, done)

	for {
		fmt.Fprint(h.printer.Out(), h.prompt)
		var line string
		select {
		case <-ctx.Done():
			h.printer.Println()
			h.logger.Debug("interactive loop interrupted")
			return nil
		case next, ok := <-lines:
			if !ok {
				h.printer.Println()
				return nil
			}
			if next.err != nil {
				h.printer.Println()
				h.logger.Warn("reading input failed", "error", next.err)
				return nil
			}
			line = next.text
		}
		if h.handleLine(ctx, line) == actionExit {
			return nil
		}
	}
}

// handleLine dispatches one trimmed line: keywords, run <name>, or SQL.
func (h *Harness) handleLine(ctx context.Context, raw string) lineAction {
	line := strings.TrimSpace(raw)
	if line == "" {
		return actionContinue
	}
	lower := strings.ToLower(line)
	switch lower {
	case "exit", "quit", "q":
		return actionExit
	case "help":
		h.printHelp()
		return actionContinue
	}
	if strings.HasPrefix(lower, "run ") {
		name := strings.TrimSpace(line[len("run "):])
		if _, err := h.RunNamed(ctx, name); err != nil {
			h.printer.Errorf("Unknown query: %s", name)
		}
		return actionContinue
	}
	h.runInline(ctx, line)
	return actionContinue
}

// runInline executes ad-hoc SQL without a banner.
func (h *Harness) runInline(ctx context.Context, text string) {
	res, err := h.execute(ctx, text, "interactive")
	if err != nil {
		h.printer.Errorf("Error: %v", err)
		return
	}
	h.printer.Table(res.Columns, res.Rows, inlineNoResultsText)
}

func (h *Harness) printHelp() {
	h.printer.Println()
	h.printer.Println("Available example queries:")
	for _, name := range h.catalog.Names() {
		h.printer.Printf("  - %s\n", name)
	}
	h.printer.Println()
	h.printer.Println("Use: run <query_name> to execute an example")
}

func (h *Harness) printInteractiveHeader() {
	h.printer.Println()
	h.printer.Rule()
	h.printer.Heading("Interactive Query Mode")
	h.printer.Rule()
	h.printer.Println("Enter DuckDB SQL queries. Type 'exit' or 'quit' to exit.")
	h.printer.Println("Type 'help' to see example queries.")
	h.printer.Rule()
	h.printer.Println()
}

type inputLine struct {
	text string
	err  error
}

// readLines scans in on a helper goroutine so that a blocked read does not
// prevent the loop from observing cancellation. The channel closes at EOF.
func readLines(in io.Reader, done <-chan struct{}) <-chan inputLine {
	out := make(chan inputLine)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
		for scanner.Scan() {
			select {
			case out <- inputLine{text: scanner.Text()}:
			case <-done:
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case out <- inputLine{err: err}:
			case <-done:
			}
		}
	}()
	return out
}
