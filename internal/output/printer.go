package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Printer writes messages and frames. It is safe for concurrent use, so
// frames produced by timer callbacks never interleave with command output.
type Printer struct {
	styleProvider StyleProvider
	writer        io.Writer
	mode          Mode
	testMode      bool
	silent        bool
	prefix        string

	mu sync.Mutex
}

// NewPrinter creates a Printer writing to os.Stdout unless configured otherwise.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer: os.Stdout,
		mode:   ModeAuto,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Print outputs text without semantic styling.
func (p *Printer) Print(text string) {
	p.output(SemanticPlain, text, false)
}

// Printf outputs formatted text without semantic styling.
func (p *Printer) Printf(format string, args ...interface{}) {
	p.output(SemanticPlain, fmt.Sprintf(format, args...), false)
}

// Println outputs text followed by a newline.
func (p *Printer) Println(text string) {
	p.output(SemanticPlain, text, true)
}

// Info outputs informational text.
func (p *Printer) Info(text string) {
	p.output(SemanticInfo, text, true)
}

// Success outputs success text.
func (p *Printer) Success(text string) {
	p.output(SemanticSuccess, text, true)
}

// Warning outputs warning text.
func (p *Printer) Warning(text string) {
	p.output(SemanticWarning, text, true)
}

// Error outputs error text.
func (p *Printer) Error(text string) {
	p.output(SemanticError, text, true)
}

// Command echoes a command line.
func (p *Printer) Command(text string) {
	p.output(SemanticCommand, text, true)
}

// Comment outputs script comment text.
func (p *Printer) Comment(text string) {
	p.output(SemanticComment, text, true)
}

// Frame writes an already styled multi-line frame verbatim, followed by a
// blank separator line.
func (p *Printer) Frame(frame string) {
	if p.silent {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprint(p.writer, strings.TrimRight(frame, "\n")+"\n\n")
}

func (p *Printer) output(semantic SemanticType, text string, addNewline bool) {
	if p.silent {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	result := p.style(semantic).Render(text)
	if addNewline && !strings.HasSuffix(result, "\n") {
		result += "\n"
	}
	if p.prefix != "" {
		result = p.prefix + result
	}

	_, _ = fmt.Fprint(p.writer, result)
}

func (p *Printer) style(semantic SemanticType) TextStyle {
	if p.mode != ModePlain && p.styleProvider != nil && p.styleProvider.IsAvailable() {
		return p.styleProvider.GetStyle(string(semantic))
	}
	return NewPlainStyleProvider().GetStyle(string(semantic))
}

// SetWriter changes the output writer.
func (p *Printer) SetWriter(writer io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writer = writer
}

// SetStyleProvider changes the style provider. Pass nil to disable styling.
func (p *Printer) SetStyleProvider(provider StyleProvider) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.styleProvider = provider
}

// IsStylable returns true if the printer can apply styles.
func (p *Printer) IsStylable() bool {
	return p.mode != ModePlain && p.styleProvider != nil && p.styleProvider.IsAvailable()
}

// IsTestMode reports whether the printer was built with TestMode.
func (p *Printer) IsTestMode() bool {
	return p.testMode
}
