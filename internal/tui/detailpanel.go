package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/cozycrafters/cozyreq/internal/models"
	"github.com/cozycrafters/cozyreq/internal/session"
)

// DetailPanel renders the projected detail of the selected tool call in
// the right pane. It holds no record state of its own; each selection
// change replaces the whole view.
type DetailPanel struct {
	detail   session.Detail
	hasCall  bool
	viewport viewport.Model
	width    int
	height   int
}

// NewDetailPanel creates an empty detail panel.
func NewDetailPanel() *DetailPanel {
	return &DetailPanel{viewport: viewport.New(80, 24)}
}

// SetSize updates dimensions.
func (p *DetailPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.viewport.Width = width
	// Header, badge row, and separators sit above the viewport.
	vpHeight := height - 4
	if vpHeight < 1 {
		vpHeight = 1
	}
	p.viewport.Height = vpHeight
	if p.hasCall {
		p.viewport.SetContent(p.renderContent())
	}
}

// SetCall projects a tool call into the panel, replacing the previous view.
func (p *DetailPanel) SetCall(call models.ToolCall) {
	p.detail = session.Project(call)
	p.hasCall = true
	p.viewport.SetContent(p.renderContent())
	p.viewport.GotoTop()
}

// ScrollUp scrolls the content viewport.
func (p *DetailPanel) ScrollUp(lines int) {
	p.viewport.LineUp(lines)
}

// ScrollDown scrolls the content viewport.
func (p *DetailPanel) ScrollDown(lines int) {
	p.viewport.LineDown(lines)
}

// View renders the panel.
func (p *DetailPanel) View() string {
	if !p.hasCall {
		return lipgloss.NewStyle().Foreground(colorDim).Render("No tool call selected.")
	}

	header := detailHeaderStyle.Render("Selected Tool: " + p.detail.Header)
	badges := p.renderBadges()
	sep := lipgloss.NewStyle().Foreground(colorDim).Render(strings.Repeat("─", max(p.width, 1)))

	return strings.Join([]string{header, badges, sep, p.viewport.View()}, "\n")
}

func (p *DetailPanel) renderBadges() string {
	_, style := callBadge(p.detail.Status)
	parts := []string{
		style.Render(p.detail.StatusLabel),
		badgeDurationStyle.Render("│ " + p.detail.DurationLabel),
	}
	if p.detail.SizeLabel != "" {
		parts = append(parts, badgeDurationStyle.Render("│ "+p.detail.SizeLabel))
	}
	return strings.Join(parts, "  ")
}

func (p *DetailPanel) renderContent() string {
	var b strings.Builder
	b.WriteString(contentTitleStyle.Render("Request"))
	b.WriteString("\n")
	b.WriteString(renderBlock(p.detail.Request))
	b.WriteString("\n\n")
	b.WriteString(contentTitleStyle.Render("Response"))
	b.WriteString("\n")
	b.WriteString(renderBlock(p.detail.Response))
	return b.String()
}

func renderBlock(c session.Content) string {
	if c.Placeholder {
		return placeholderStyle.Render(c.Text)
	}
	return c.Text
}
