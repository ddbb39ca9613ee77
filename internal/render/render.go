// Package render prints the user-facing output of a run: the prompt banner,
// model responses, every file as it is written and the debugger's diagnosis.
package render

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes styled output. Colours are dropped automatically when the
// writer is not a terminal.
type Printer struct {
	mu  sync.Mutex
	out io.Writer

	banner    lipgloss.Style
	prompt    lipgloss.Style
	filename  lipgloss.Style
	status    lipgloss.Style
	diagnosis lipgloss.Style
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out:       out,
		banner:    r.NewStyle().Bold(true),
		prompt:    r.NewStyle().Foreground(lipgloss.Color("10")),
		filename:  r.NewStyle().Foreground(lipgloss.Color("12")),
		status:    r.NewStyle().Foreground(lipgloss.Color("8")),
		diagnosis: r.NewStyle().Foreground(lipgloss.Color("14")),
	}
}

// Discard returns a printer that drops everything.
func Discard() *Printer {
	return NewPrinter(io.Discard)
}

// Banner greets the user and echoes the prompt being worked on.
func (p *Printer) Banner(prompt string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintln(p.out, p.banner.Render("hi its me, the smol developer! you said you wanted:"))
	fmt.Fprintln(p.out, paint(p.prompt, prompt))
}

// Text prints a model response verbatim. Empty text prints nothing.
func (p *Printer) Text(text string) {
	if text == "" {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintln(p.out, text)
}

// Status prints a short progress message.
func (p *Printer) Status(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintln(p.out, p.status.Render(msg))
}

// File prints a file path followed by the content about to be written.
func (p *Printer) File(name, content string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintln(p.out, p.filename.Render(name))
	fmt.Fprintln(p.out, content)
}

// Diagnosis prints the debugger's answer.
func (p *Printer) Diagnosis(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintln(p.out, paint(p.diagnosis, text))
}

// paint styles text line by line; rendering a multi-line block in one call
// would pad every line to the width of the longest.
func paint(style lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
