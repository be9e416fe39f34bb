package main

import (
	"fmt"
	"path/filepath"

	"github.com/andareed/memoria/clipboard"
	"github.com/andareed/memoria/dialogs"
	"github.com/andareed/memoria/logging"
	"github.com/andareed/memoria/mapview"
	"github.com/andareed/memoria/memorial"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type mode int

const (
	modeView mode = iota
	modeCommand
)

const panStep = 4

var helpNotes = []string{
	"Records whose date has no four digit year are always shown, whatever years are selected, and are not counted in any year.",
	"The year is the first four digit number found in the date text.",
}

type datasetLoadedMsg struct {
	dataset memorial.Dataset
	err     error
}

type model struct {
	cfg  Config
	data dataState
	ui   uiState

	mapv    *mapview.Map
	surface *mapSurface
	panel   *yearPanel
	ficha   *dialogs.Ficha

	activeDialog dialogs.Dialog

	cursor         int // index into data.visibleIndices
	terminalWidth  int
	terminalHeight int
	ready          bool
}

func newModel(cfg Config, path string, ds memorial.Dataset) (*model, error) {
	m := &model{
		cfg:   cfg,
		data:  dataState{path: path},
		panel: &yearPanel{},
		ficha: dialogs.NewFichaDialog(),
	}
	m.mapv = mapview.New(cfg.mapConfig(), cfg.tileSource())
	m.surface = newMapSurface(m.mapv)

	s, err := memorial.NewSession(ds, memorial.Options{
		Surface:  m.surface,
		Panel:    m.panel,
		Counters: m,
	})
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	m.data.session = s
	m.data.presenter = memorial.NewPresenter(ds, m.ficha)
	return m, nil
}

// SetCounters receives the counts after every visibility change and rebuilds the list
// of visible markers the cursor walks.
func (m *model) SetCounters(c memorial.Counters) {
	m.data.counters = c
	m.syncVisible()
	logging.Debugf("counters: visible %d/%d", c.Visible, c.Total)
}

func (m *model) syncVisible() {
	prev := m.selectedIndex()
	m.data.visibleIndices = m.data.visibleIndices[:0]
	for i := 0; i < m.data.counters.Total; i++ {
		if m.surface.IsAttached(i) {
			m.data.visibleIndices = append(m.data.visibleIndices, i)
		}
	}
	if len(m.data.visibleIndices) == 0 {
		m.cursor = -1
		return
	}
	for i, idx := range m.data.visibleIndices {
		if idx == prev {
			m.cursor = i
			return
		}
	}
	m.cursor = clamp(m.cursor, 0, len(m.data.visibleIndices)-1)
}

// selectedIndex returns the dataset index under the cursor, or -1.
func (m *model) selectedIndex() int {
	if m.cursor < 0 || m.cursor >= len(m.data.visibleIndices) {
		return -1
	}
	return m.data.visibleIndices[m.cursor]
}

func (m *model) Init() tea.Cmd {
	logging.Infof("memoria: initialised with %d records", m.data.counters.Total)
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminalWidth = msg.Width
		m.terminalHeight = msg.Height
		m.ficha.SetSize(msg.Width, msg.Height)
		m.ready = true
		return m, nil

	case clearNoticeMsg:
		m.clearNotice(msg.id)
		return m, nil

	case imageFailedMsg:
		logging.Debugf("image hidden: %v", msg.err)
		m.data.presenter.ImageFailed(msg.err.Ref)
		return m, nil

	case dialogs.FichaClosedMsg:
		m.closeFicha()
		return m, nil

	case dialogs.FichaCopyMsg:
		if err := clipboard.Copy(msg.Text); err != nil {
			return m, m.startNotice("Copy failed: "+err.Error(), "error", noticeDuration)
		}
		return m, m.startNotice("Ficha copied", "success", noticeDuration)

	case dialogs.ExportConfirmedMsg:
		m.activeDialog = nil
		n, err := ExportVisible(msg.Path, m.data.dataset(), m.data.visibleIndices)
		if err != nil {
			logging.Warnf("export %s: %v", msg.Path, err)
			return m, m.startNotice("Export failed: "+err.Error(), "error", noticeDuration)
		}
		return m, m.startNotice(fmt.Sprintf("Exported %d records to %s", n, msg.Path), "success", noticeDuration)

	case dialogs.ExportCanceledMsg:
		m.activeDialog = nil
		return m, nil

	case datasetLoadedMsg:
		return m, m.applyReload(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	if m.activeDialog != nil {
		var cmd tea.Cmd
		m.activeDialog, cmd = m.activeDialog.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		d, cmd := m.activeDialog.Update(msg)
		m.activeDialog = d
		if !d.IsVisible() {
			m.activeDialog = nil
		}
		return m, cmd
	}

	switch m.ui.mode {
	case modeCommand:
		return m.handleCommandKey(msg)
	default:
		return m.handleViewModeKey(msg)
	}
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.OpenHelp):
		m.activeDialog = dialogs.NewHelpDialog(Keys.Legend(), helpNotes...)

	case key.Matches(msg, Keys.SwitchFocus):
		if m.ui.focus == focusMarkers {
			m.ui.focus = focusYears
		} else {
			m.ui.focus = focusMarkers
		}

	case key.Matches(msg, Keys.Down):
		m.move(1)

	case key.Matches(msg, Keys.Up):
		m.move(-1)

	case key.Matches(msg, Keys.Select):
		if m.ui.focus == focusYears {
			if c, ok := m.panel.invoke(); ok {
				logging.Debugf("year %d active=%v", c.Year, c.Active())
			}
			return m, nil
		}
		return m, m.openFicha()

	case key.Matches(msg, Keys.ResetFilters):
		m.data.session.Reset()
		return m, m.startNotice("All years selected", "info", noticeDuration)

	case key.Matches(msg, Keys.ResetView):
		m.mapv.ResetView()

	case key.Matches(msg, Keys.CenterOn):
		if mk, ok := m.mapv.Marker(m.selectedIndex()); ok {
			m.mapv.SetView(mk.Position, m.mapv.Zoom())
		}

	case key.Matches(msg, Keys.ZoomIn):
		m.mapv.ZoomIn()

	case key.Matches(msg, Keys.ZoomOut):
		m.mapv.ZoomOut()

	case key.Matches(msg, Keys.PanLeft):
		m.mapv.Pan(-panStep, 0)

	case key.Matches(msg, Keys.PanRight):
		m.mapv.Pan(panStep, 0)

	case key.Matches(msg, Keys.PanUp):
		m.mapv.Pan(0, -panStep/2)

	case key.Matches(msg, Keys.PanDown):
		m.mapv.Pan(0, panStep/2)

	case key.Matches(msg, Keys.Search):
		m.enterCommandMode(CmdSearch)

	case key.Matches(msg, Keys.Jump):
		m.enterCommandMode(CmdJump)

	case key.Matches(msg, Keys.Export):
		m.activeDialog = dialogs.NewExportDialog("visibles.csv", filepath.Dir(m.data.path))

	case key.Matches(msg, Keys.Reload):
		return m, reloadCmd(m.data.path)
	}
	return m, nil
}

func (m *model) move(delta int) {
	if m.ui.focus == focusYears {
		m.panel.move(delta)
		return
	}
	if len(m.data.visibleIndices) == 0 {
		m.cursor = -1
		return
	}
	m.cursor = clamp(m.cursor+delta, 0, len(m.data.visibleIndices)-1)
}

// openFicha presents the record under the cursor. When it has an image, the reference
// is checked in the background.
func (m *model) openFicha() tea.Cmd {
	if !m.data.presenter.PresentIndex(m.selectedIndex()) {
		return nil
	}
	m.activeDialog = m.ficha
	if ref := m.data.presenter.ImageRef(); ref != "" {
		return checkImageCmd(ref, filepath.Dir(m.data.path), m.cfg.ImageTimeout)
	}
	return nil
}

func (m *model) closeFicha() {
	m.data.presenter.Close()
	if m.activeDialog == dialogs.Dialog(m.ficha) {
		m.activeDialog = nil
	}
}

func (m *model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.ficha.IsVisible() {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			x, y, w, h := dialogs.Bounds(m.ficha.View(), m.terminalWidth, m.terminalHeight)
			if msg.X < x || msg.X >= x+w || msg.Y < y || msg.Y >= y+h {
				m.closeFicha()
			}
			return m, nil
		}
		_, cmd := m.ficha.Update(msg)
		return m, cmd
	}
	if m.activeDialog != nil || m.ficha.ScrollLocked() {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelDown:
		m.move(1)
	case tea.MouseButtonWheelUp:
		m.move(-1)
	}
	return m, nil
}

func reloadCmd(path string) tea.Cmd {
	return func() tea.Msg {
		ds, err := memorial.LoadFile(path)
		return datasetLoadedMsg{dataset: ds, err: err}
	}
}

func (m *model) applyReload(msg datasetLoadedMsg) tea.Cmd {
	if msg.err != nil {
		logging.Warnf("reload %s: %v", m.data.path, msg.err)
		return m.startNotice("Reload failed: "+msg.err.Error(), "error", noticeDuration)
	}
	m.closeFicha()
	m.data.presenter.SetDataset(msg.dataset)
	if err := m.data.session.Reload(msg.dataset); err != nil {
		return m.startNotice("Reload failed: "+err.Error(), "error", noticeDuration)
	}
	logging.Infof("reloaded %s: %d records", m.data.path, len(msg.dataset))
	return m.startNotice(fmt.Sprintf("Reloaded %d records", len(msg.dataset)), "success", noticeDuration)
}
