// Package tui is the interactive upload-and-browse screen: a readiness-gated
// form for the two CSV exports, a single in-flight upload with a progress
// bar, and a paginated per-status result browser.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/recondesk-dev/recondesk/internal/api"
	"github.com/recondesk-dev/recondesk/internal/export"
	"github.com/recondesk-dev/recondesk/internal/files"
	"github.com/recondesk-dev/recondesk/internal/model"
	"github.com/recondesk-dev/recondesk/internal/session"
)

type phase int

const (
	phaseProbing phase = iota
	phaseReady
)

type uploadState int

const (
	uploadIdle uploadState = iota
	uploadInFlight
	uploadSuccess
	uploadFailed
)

type area int

const (
	areaForm area = iota
	areaResults
)

const (
	fieldExchange = 0
	fieldPSP      = 1
)

// Messages.
type probeDoneMsg struct{}

type progressMsg int

type uploadDoneMsg struct {
	result *model.ReconciliationResult
}

type uploadErrMsg struct {
	err error
}

type exportDoneMsg struct {
	path string
}

type exportErrMsg struct {
	err error
}

// Model is the bubbletea model for the reconciliation screen.
type Model struct {
	client    *api.Client
	sess      *session.Session
	pageSize  int
	exportDir string
	scanDir   string

	phase      phase
	upload     uploadState
	area       area
	spin       spinner.Model
	inputs     [2]textinput.Model
	focus      int
	progress   int
	progressCh chan int
	errText    string
	notice     string

	rowCursor   int
	modalStatus string
	pager       model.Pager

	pickIndex int

	keys   keyMap
	help   help.Model
	width  int
	height int
}

// New creates the screen model. scanDir is where the file picker looks for
// CSV exports, usually the working directory.
func New(client *api.Client, sess *session.Session, pageSize int, exportDir, scanDir string) Model {
	if pageSize < 1 {
		pageSize = 50
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	var inputs [2]textinput.Model
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 512
		ti.Width = 48
		inputs[i] = ti
	}
	inputs[fieldExchange].Placeholder = "exchange export, e.g. exchange.csv"
	inputs[fieldPSP].Placeholder = "psp export, e.g. psp.csv"

	return Model{
		client:    client,
		sess:      sess,
		pageSize:  pageSize,
		exportDir: exportDir,
		scanDir:   scanDir,
		phase:     phaseProbing,
		spin:      sp,
		inputs:    inputs,
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
}

// Init starts the spinner and fires the one readiness probe.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, textinput.Blink, probeCmd(m.client))
}

// probeCmd settles to ready no matter how the probe attempt ends.
func probeCmd(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		c.ProbeReady(context.Background())
		return probeDoneMsg{}
	}
}

func uploadCmd(c *api.Client, exchangePath, pspPath string, ch chan int) tea.Cmd {
	return func() tea.Msg {
		res, err := c.Upload(context.Background(), exchangePath, pspPath, func(p int) {
			select {
			case ch <- p:
			default:
			}
		})
		close(ch)
		if err != nil {
			return uploadErrMsg{err: err}
		}
		return uploadDoneMsg{result: res}
	}
}

func waitProgress(ch chan int) tea.Cmd {
	return func() tea.Msg {
		p, ok := <-ch
		if !ok {
			return nil
		}
		return progressMsg(p)
	}
}

func exportCmd(dir, status string, apps []string) tea.Cmd {
	return func() tea.Msg {
		path, err := export.Save(dir, status, apps)
		if err != nil {
			return exportErrMsg{err: err}
		}
		return exportDoneMsg{path: path}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if m.phase != phaseProbing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case probeDoneMsg:
		m.phase = phaseReady
		m.focus = fieldExchange
		return m, m.inputs[fieldExchange].Focus()

	case progressMsg:
		if m.upload == uploadInFlight {
			m.progress = int(msg)
			return m, waitProgress(m.progressCh)
		}
		return m, nil

	case uploadDoneMsg:
		m.upload = uploadSuccess
		m.progress = 100
		m.sess.SetResult(msg.result)
		m.area = areaResults
		m.rowCursor = 0
		m.errText = ""
		m.blurInputs()
		return m, nil

	case uploadErrMsg:
		m.upload = uploadFailed
		m.errText = msg.err.Error()
		return m, nil

	case exportDoneMsg:
		m.notice = "exported " + msg.path
		return m, nil

	case exportErrMsg:
		m.errText = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Controls are gated until the probe settles, and the whole screen is
	// inert while an upload is outstanding (no cancellation is offered).
	if m.phase == phaseProbing || m.upload == uploadInFlight {
		return m, nil
	}

	// A failed upload returns to idle on the next user action.
	if m.upload == uploadFailed {
		m.upload = uploadIdle
		m.errText = ""
	}

	if m.modalStatus != "" {
		return m.handleModalKey(msg)
	}
	if m.area == areaForm {
		return m.handleFormKey(msg)
	}
	return m.handleResultsKey(msg)
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextPage):
		m.pager.Next()
	case key.Matches(msg, m.keys.PrevPage):
		m.pager.Prev()
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Quit):
		m.modalStatus = ""
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextField):
		return m.cycleFocus(1)
	case key.Matches(msg, m.keys.PrevField):
		return m.cycleFocus(-1)
	case key.Matches(msg, m.keys.PickFile):
		m.cycleCSVFile()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.ToResults):
		if m.sess.Result() != nil {
			m.area = areaResults
			m.blurInputs()
		}
		return m, nil
	case key.Matches(msg, m.keys.Reset):
		return m.reset()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.summaryRows()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.rowCursor > 0 {
			m.rowCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.rowCursor < len(rows)-1 {
			m.rowCursor++
		}
	case key.Matches(msg, m.keys.Open):
		if m.rowCursor < len(rows) {
			status := rows[m.rowCursor].Status
			m.modalStatus = status
			m.pager = model.NewPager(len(m.sess.Applications(status)), m.pageSize)
		}
	case key.Matches(msg, m.keys.Export):
		if m.rowCursor < len(rows) {
			status := rows[m.rowCursor].Status
			return m, exportCmd(m.exportDir, status, m.sess.Applications(status))
		}
	case key.Matches(msg, m.keys.ToForm):
		m.area = areaForm
		return m, m.inputs[m.focus].Focus()
	case key.Matches(msg, m.keys.Reset):
		return m.reset()
	}
	return m, nil
}

func (m Model) cycleFocus(dir int) (tea.Model, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + dir + len(m.inputs)) % len(m.inputs)
	m.pickIndex = 0
	return m, m.inputs[m.focus].Focus()
}

// cycleCSVFile fills the focused input with the next CSV found in scanDir.
func (m *Model) cycleCSVFile() {
	found, err := files.Scan(m.scanDir)
	if err != nil || len(found) == 0 {
		return
	}
	m.inputs[m.focus].SetValue(found[m.pickIndex%len(found)].Path)
	m.inputs[m.focus].CursorEnd()
	m.pickIndex++
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	exchangePath := strings.TrimSpace(m.inputs[fieldExchange].Value())
	pspPath := strings.TrimSpace(m.inputs[fieldPSP].Value())
	if exchangePath == "" || pspPath == "" {
		m.errText = "both Exchange and PSP files must be selected"
		return m, nil
	}

	exchangeRef, err := model.NewFileRef(exchangePath)
	if err != nil {
		m.errText = err.Error()
		return m, nil
	}
	pspRef, err := model.NewFileRef(pspPath)
	if err != nil {
		m.errText = err.Error()
		return m, nil
	}
	m.sess.SelectExchange(exchangeRef)
	m.sess.SelectPSP(pspRef)

	m.upload = uploadInFlight
	m.progress = 0
	m.errText = ""
	m.notice = ""
	ch := make(chan int, 32)
	m.progressCh = ch
	return m, tea.Batch(uploadCmd(m.client, exchangePath, pspPath, ch), waitProgress(ch))
}

func (m Model) reset() (tea.Model, tea.Cmd) {
	m.sess.Reset()
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.upload = uploadIdle
	m.area = areaForm
	m.progress = 0
	m.errText = ""
	m.notice = ""
	m.rowCursor = 0
	m.modalStatus = ""
	m.pickIndex = 0
	m.focus = fieldExchange
	m.blurInputs()
	return m, m.inputs[fieldExchange].Focus()
}

func (m *Model) blurInputs() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

func (m Model) summaryRows() []model.StatusCount {
	res := m.sess.Result()
	if res == nil {
		return nil
	}
	return res.SortedStatusCounts()
}
