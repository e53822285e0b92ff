package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/recondesk-dev/recondesk/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Padding(0, 1)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	modalStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

const barWidth = 30

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("recondesk — Exchange/PSP reconciliation"))
	b.WriteString("\n\n")

	if m.modalStatus != "" {
		b.WriteString(m.viewModal())
		b.WriteString("\n")
		b.WriteString(m.help.View(m.keys))
		return b.String()
	}

	if m.phase == phaseProbing {
		b.WriteString(m.spin.View())
		b.WriteString(dimStyle.Render("waking the reconciliation service..."))
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("controls are disabled until the check settles"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.viewForm())

	if m.upload == uploadInFlight {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("uploading "))
		b.WriteString(renderBar(m.progress))
		b.WriteString(fmt.Sprintf(" %3d%%", m.progress))
		b.WriteString("\n")
	}

	if m.errText != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errText))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	if res := m.sess.Result(); res != nil {
		b.WriteString("\n")
		b.WriteString(m.viewSummary(res))
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) viewForm() string {
	var b strings.Builder
	sel := m.sess.Selection()

	b.WriteString(labelStyle.Render("Exchange file: "))
	b.WriteString(m.inputs[fieldExchange].View())
	if sel.Exchange != nil {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %s (%d bytes)", sel.Exchange.Name, sel.Exchange.Size)))
	}
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("PSP file:      "))
	b.WriteString(m.inputs[fieldPSP].View())
	if sel.PSP != nil {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %s (%d bytes)", sel.PSP.Name, sel.PSP.Size)))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewSummary(res *model.ReconciliationResult) string {
	var b strings.Builder

	b.WriteString(valueStyle.Render(fmt.Sprintf(
		"exchange unique: %d   psp unique: %d   exchange only: %d   psp only: %d",
		res.ExchangeUniqueCount, res.PSPUniqueCount, res.ExchangeOnlyCount, res.PSPOnlyCount)))
	b.WriteString("\n\n")

	rows := res.SortedStatusCounts()
	if len(rows) == 0 {
		b.WriteString(dimStyle.Render("no statuses"))
		b.WriteString("\n")
		return b.String()
	}

	max := res.MaxStatusCount()
	for i, row := range rows {
		marker := "  "
		if m.area == areaResults && i == m.rowCursor {
			marker = cursorStyle.Render("→ ")
		}
		pct := model.BarPercent(row.Count, max)
		b.WriteString(fmt.Sprintf("%s%-24s %6d  %s %3d%%\n",
			marker, row.Status, row.Count, renderBar(pct), pct))
	}
	return b.String()
}

func (m Model) viewModal() string {
	apps := m.sess.Applications(m.modalStatus)
	start, end := m.pager.Bounds()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s — %d applications\n\n", m.modalStatus, len(apps)))
	if len(apps) == 0 {
		b.WriteString(dimStyle.Render("no applications"))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		b.WriteString(fmt.Sprintf("%4d  %s\n", i+1, apps[i]))
	}

	b.WriteString("\n")
	prev := "← prev"
	if !m.pager.HasPrev() {
		prev = dimStyle.Render(prev)
	}
	next := "next →"
	if !m.pager.HasNext() {
		next = dimStyle.Render(next)
	}
	b.WriteString(fmt.Sprintf("%s  page %d/%d  %s", prev, m.pager.Page, m.pager.TotalPages(), next))

	return modalStyle.Render(b.String())
}

// renderBar draws a fixed-width percentage bar.
func renderBar(pct int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * barWidth / 100
	return barStyle.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", barWidth-filled))
}
