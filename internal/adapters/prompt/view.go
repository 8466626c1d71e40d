package prompt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/diffy/internal/core/domain"
	"go.trai.ch/diffy/internal/ui/output"
	"go.trai.ch/diffy/internal/ui/style"
)

// View renders prompt output with the shared styles.
type View struct {
	out     io.Writer
	heading lipgloss.Style
	id      lipgloss.Style
	muted   lipgloss.Style
	failure lipgloss.Style
	success lipgloss.Style
}

// NewView creates a View writing to w.
func NewView(w io.Writer) *View {
	profile := output.ColorProfile()
	r := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	r.SetColorProfile(profile)

	return &View{
		out:     w,
		heading: r.NewStyle().Bold(true).Foreground(style.Teal),
		id:      r.NewStyle().Bold(true),
		muted:   r.NewStyle().Foreground(style.Slate),
		failure: r.NewStyle().Foreground(style.Red),
		success: r.NewStyle().Foreground(style.Green),
	}
}

// RenderProjects returns the listing of one page of projects.
func (v *View) RenderProjects(page domain.Page, projects []domain.Project) string {
	var sb strings.Builder
	sb.WriteString(v.heading.Render(fmt.Sprintf("Available projects (page %d):", page)))
	sb.WriteString("\n")
	for _, p := range projects {
		sb.WriteString(v.id.Render("[" + p.ID.String() + "]"))
		sb.WriteString(" ")
		sb.WriteString(p.Name)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Projects writes the listing of one page of projects.
func (v *View) Projects(page domain.Page, projects []domain.Project) {
	_, _ = io.WriteString(v.out, v.RenderProjects(page, projects))
}

// Question writes a prompt title and its optional description.
func (v *View) Question(title, description string) {
	if description != "" {
		_, _ = io.WriteString(v.out, title+"\n"+renderLines(v.muted, description)+"\n")
		return
	}
	_, _ = io.WriteString(v.out, title+"\n")
}

// Note writes a plain line.
func (v *View) Note(msg string) {
	_, _ = io.WriteString(v.out, msg+"\n")
}

// Error writes an error line.
func (v *View) Error(msg string) {
	_, _ = io.WriteString(v.out, v.failure.Render(style.Cross+" "+msg)+"\n")
}

// Success writes a success line.
func (v *View) Success(msg string) {
	_, _ = io.WriteString(v.out, v.success.Render(style.Check+" "+msg)+"\n")
}

// renderLines styles every line on its own so multi-line text is not padded.
func renderLines(st lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = st.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
