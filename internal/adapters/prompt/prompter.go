// Package prompt implements the Prompter port for terminal interaction.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"go.trai.ch/diffy/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// Prompter implements ports.Prompter.
//
// In interactive mode questions are asked with huh forms and secrets are
// masked. Otherwise one line is read from the input per question, which keeps
// the command scriptable. Secrets typed on a terminal are still read without
// echo in that mode.
type Prompter struct {
	in           io.Reader
	out          io.Writer
	lines        *bufio.Reader
	view         *View
	teaOptions   []tea.ProgramOption
	readPassword func() (string, error)
	mu           sync.Mutex
	interactive  bool
	pending      chan readResult
}

// readResult is the outcome of one blocking read. A read outlives the
// question that started it when the context is canceled first; the next
// question picks up its result instead of starting a second reader.
type readResult struct {
	line string
	err  error
}

// New creates a Prompter reading from in and writing to out.
// Nil arguments default to stdin and stderr.
func New(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}

	p := &Prompter{
		in:    in,
		out:   out,
		lines: bufio.NewReader(in),
		view:  NewView(out),
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		p.readPassword = func() (string, error) {
			secret, err := term.ReadPassword(fd)
			return string(secret), err
		}
	}
	return p
}

// WithTeaOptions adds bubbletea program options to interactive forms.
func (p *Prompter) WithTeaOptions(opts ...tea.ProgramOption) *Prompter {
	p.teaOptions = append(p.teaOptions, opts...)
	return p
}

// SetInteractive switches between terminal forms and plain line input.
func (p *Prompter) SetInteractive(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.interactive = enabled
}

func (p *Prompter) isInteractive() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.interactive
}

// AskSecret reads one value without echoing it, unless the input is a plain
// non-terminal stream.
func (p *Prompter) AskSecret(ctx context.Context, title, description string) (string, error) {
	if p.isInteractive() {
		var value string
		input := huh.NewInput().
			Title(title).
			Description(description).
			EchoMode(huh.EchoModePassword).
			Value(&value)
		if err := p.runForm(ctx, input); err != nil {
			return "", err
		}
		return value, nil
	}

	p.view.Question(title, description)
	if p.readPassword == nil {
		return p.readLine(ctx)
	}

	secret, err := p.read(ctx, p.readPassword)
	// The terminal swallows the newline while echo is off.
	p.view.Note("")
	return secret, err
}

// Ask reads one line of free-form input.
func (p *Prompter) Ask(ctx context.Context, title string) (string, error) {
	if p.isInteractive() {
		var value string
		if err := p.runForm(ctx, huh.NewInput().Title(title).Value(&value)); err != nil {
			return "", err
		}
		return value, nil
	}

	p.view.Question(title, "")
	return p.readLine(ctx)
}

// ShowProjects renders one page of projects.
func (p *Prompter) ShowProjects(page domain.Page, projects []domain.Project) {
	p.view.Projects(page, projects)
}

// Note prints an informational line.
func (p *Prompter) Note(msg string) {
	p.view.Note(msg)
}

// Error prints a short error line.
func (p *Prompter) Error(msg string) {
	p.view.Error(msg)
}

// Success prints a success line.
func (p *Prompter) Success(msg string) {
	p.view.Success(msg)
}

func (p *Prompter) runForm(ctx context.Context, field huh.Field) error {
	// WithProgramOptions replaces earlier options, so input and output come after it.
	form := huh.NewForm(huh.NewGroup(field)).
		WithProgramOptions(p.teaOptions...).
		WithInput(p.in).
		WithOutput(p.out).
		WithShowHelp(false)

	return mapFormError(form.RunWithContext(ctx))
}

// mapFormError translates huh and context errors into domain errors.
func mapFormError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, huh.ErrUserAborted),
		errors.Is(err, huh.ErrTimeout),
		errors.Is(err, context.Canceled):
		return domain.ErrPromptAborted
	default:
		return zerr.Wrap(err, domain.ErrPromptFailed.Error())
	}
}

// readLine returns the next input line without its terminator.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	line, err := p.read(ctx, func() (string, error) {
		return p.lines.ReadString('\n')
	})
	return strings.TrimRight(line, "\r\n"), err
}

// read runs fn in the background and waits for it or for ctx, whichever ends
// first. End of input before any character and a canceled context are both
// aborts.
func (p *Prompter) read(ctx context.Context, fn func() (string, error)) (string, error) {
	if ctx.Err() != nil {
		return "", domain.ErrPromptAborted
	}

	p.mu.Lock()
	if p.pending == nil {
		ch := make(chan readResult, 1)
		go func() {
			line, err := fn()
			ch <- readResult{line: line, err: err}
		}()
		p.pending = ch
	}
	pending := p.pending
	p.mu.Unlock()

	var res readResult
	select {
	case <-ctx.Done():
		return "", domain.ErrPromptAborted
	case res = <-pending:
	}

	p.mu.Lock()
	p.pending = nil
	p.mu.Unlock()

	switch {
	case ctx.Err() != nil:
		return "", domain.ErrPromptAborted
	case errors.Is(res.err, io.EOF) && res.line == "":
		return "", domain.ErrPromptAborted
	case res.err != nil && !errors.Is(res.err, io.EOF):
		return "", zerr.Wrap(res.err, domain.ErrPromptFailed.Error())
	}

	return res.line, nil
}
