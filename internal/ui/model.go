// Package ui is a small terminal browser over a reconciled comment list.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hnrecap/internal/thread"
)

var (
	depthColors = []lipgloss.Color{
		"#FF6600", "#828282", "#00BFFF", "#32CD32", "#FFD700", "#FF69B4", "#9370DB", "#20B2AA",
	}

	authorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6600")).Bold(true)
	metaStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	selectedStyle  = lipgloss.NewStyle().Background(lipgloss.Color("#333333"))
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Padding(0, 1)
	separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
)

type commentOffset struct {
	startLine int
	endLine   int
}

// Model is the reconciled-thread view.
type Model struct {
	viewport    viewport.Model
	title       string
	comments    []*thread.FlatComment
	offsets     []commentOffset
	selectedIdx int
	width       int
	height      int
}

// New creates a viewer over an already-reconciled comment list.
func New(title string, comments []*thread.FlatComment) Model {
	vp := viewport.New(0, 0)
	return Model{
		viewport: vp,
		title:    title,
		comments: comments,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-2, 1) // header + separator
		m.rebuild()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, Keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, Keys.Up):
			if m.selectedIdx > 0 {
				m.selectedIdx--
				m.rebuild()
				m.ensureVisible()
			}
		case key.Matches(msg, Keys.Down):
			if m.selectedIdx < len(m.comments)-1 {
				m.selectedIdx++
				m.rebuild()
				m.ensureVisible()
			}
		case key.Matches(msg, Keys.Parent):
			if idx := parentIndex(m.comments, m.selectedIdx); idx >= 0 {
				m.selectedIdx = idx
				m.rebuild()
				m.ensureVisible()
			}
		case key.Matches(msg, Keys.PageUp):
			m.viewport.HalfViewUp()
		case key.Matches(msg, Keys.PageDown):
			m.viewport.HalfViewDown()
		case key.Matches(msg, Keys.Home):
			m.selectedIdx = 0
			m.rebuild()
			m.viewport.GotoTop()
		case key.Matches(msg, Keys.End):
			if len(m.comments) > 0 {
				m.selectedIdx = len(m.comments) - 1
			}
			m.rebuild()
			m.viewport.GotoBottom()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	header := headerStyle.Render(m.title)
	sep := separatorStyle.Render(strings.Repeat("─", max(m.width, 1)))
	return header + "\n" + sep + "\n" + m.viewport.View()
}

// rebuild re-renders the viewport content and recomputes per-comment line
// offsets for selection scrolling.
func (m *Model) rebuild() {
	var sb strings.Builder
	m.offsets = make([]commentOffset, len(m.comments))
	line := 0

	for i, c := range m.comments {
		depth := strings.Count(c.Path, ".")
		indent := strings.Repeat("  ", depth)
		color := depthColors[depth%len(depthColors)]
		bar := lipgloss.NewStyle().Foreground(color).Render("▎")

		meta := metaStyle.Render(fmt.Sprintf("[%s] score %d · replies %d · downvotes %d",
			c.Path, c.Score, c.Replies, c.Downvotes))
		head := indent + bar + authorStyle.Render(c.Author) + " " + meta

		width := m.width - len(indent) - 2
		body := wrap(c.Text, width)

		block := head
		for _, bl := range strings.Split(body, "\n") {
			block += "\n" + indent + bar + bl
		}
		if i == m.selectedIdx {
			block = selectedStyle.Render(block)
		}

		lines := strings.Count(block, "\n") + 1
		m.offsets[i] = commentOffset{startLine: line, endLine: line + lines - 1}
		line += lines + 1

		sb.WriteString(block)
		sb.WriteString("\n\n")
	}

	m.viewport.SetContent(sb.String())
}

// ensureVisible scrolls the viewport so the selected comment is on screen.
func (m *Model) ensureVisible() {
	if m.selectedIdx < 0 || m.selectedIdx >= len(m.offsets) {
		return
	}
	off := m.offsets[m.selectedIdx]
	if off.startLine < m.viewport.YOffset {
		m.viewport.SetYOffset(off.startLine)
	} else if off.endLine >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(off.endLine - m.viewport.Height + 1)
	}
}

// parentIndex returns the index of the parent comment, or -1 for top-level
// comments. Parents always render before their children, so scan backwards.
func parentIndex(comments []*thread.FlatComment, idx int) int {
	if idx < 0 || idx >= len(comments) {
		return -1
	}
	parentID := comments[idx].ParentID
	for i := idx - 1; i >= 0; i-- {
		if comments[i].ID == parentID {
			return i
		}
	}
	return -1
}

// wrap word-wraps text to the given width.
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	var result strings.Builder
	lineLen := 0
	for i, word := range words {
		wlen := len(word)
		if i > 0 && lineLen+1+wlen > width {
			result.WriteString("\n")
			lineLen = 0
		} else if i > 0 {
			result.WriteString(" ")
			lineLen++
		}
		result.WriteString(word)
		lineLen += wlen
	}
	return result.String()
}
