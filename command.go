package main

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

type Command int

const (
	CmdNone Command = iota
	CmdJump
	CmdSearch
	CmdFicha
	CmdYears
)

type CommandInput struct {
	cmd Command
	buf string
}

func commandLabel(cmd Command) string {
	switch cmd {
	case CmdJump:
		return "JUMP"
	case CmdSearch:
		return "SEARCH"
	case CmdFicha:
		return "FICHA"
	case CmdYears:
		return "YEARS"
	default:
		return "MAP"
	}
}

func (m *model) commandPrompt(cmd Command) string {
	switch cmd {
	case CmdSearch:
		return "search: "
	case CmdJump:
		return "record: "
	default:
		return ""
	}
}

// activeCommandLine returns the command prompt text for the footer status line.
func (m *model) activeCommandLine() string {
	return m.commandPrompt(m.ui.command.cmd) + m.ui.command.buf
}

func (m *model) enterCommandMode(cmd Command) {
	m.ui.command = CommandInput{cmd: cmd}
	m.ui.mode = modeCommand
}

func (m *model) exitCommandMode() {
	m.ui.command = CommandInput{}
	m.ui.mode = modeView
}

func (m *model) runCommand() tea.Cmd {
	switch m.ui.command.cmd {
	case CmdJump:
		n, err := strconv.Atoi(m.ui.command.buf)
		if err != nil {
			return m.startNotice("Invalid record number", "warn", noticeDuration)
		}
		return m.jumpToRecord(n)
	case CmdSearch:
		return m.searchVisible(m.ui.command.buf)
	}
	return nil
}

func (m *model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// universal cancel
	if msg.Type == tea.KeyEsc {
		m.exitCommandMode()
		return m, nil
	}

	if msg.Type == tea.KeyEnter {
		cmd := m.runCommand()
		m.exitCommandMode()
		return m, cmd
	}

	switch msg.Type {
	case tea.KeyBackspace:
		if r := []rune(m.ui.command.buf); len(r) > 0 {
			m.ui.command.buf = string(r[:len(r)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.ui.command.buf += " "
		return m, nil
	}

	if msg.Type == tea.KeyRunes {
		m.ui.command.buf += string(msg.Runes)
	}
	return m, nil
}

// jumpToRecord moves the cursor to record number n (1-based, dataset order).
func (m *model) jumpToRecord(n int) tea.Cmd {
	if n <= 0 || n > len(m.data.dataset()) {
		return m.startNotice(fmt.Sprintf("Record %d out of bounds", n), "warn", noticeDuration)
	}
	target := n - 1
	for i, idx := range m.data.visibleIndices {
		if idx == target {
			m.cursor = i
			return nil
		}
	}
	return m.startNotice(fmt.Sprintf("Record %d hidden by the year filter", n), "warn", noticeDuration)
}
