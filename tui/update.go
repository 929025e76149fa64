package tui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/moyu-x/file-organizer/pkg/classifier"
	"github.com/moyu-x/file-organizer/pkg/database"
	"github.com/moyu-x/file-organizer/pkg/deduplicator"
	"github.com/moyu-x/file-organizer/pkg/logger"
	"github.com/moyu-x/file-organizer/pkg/organizer"
)

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.state {
		case StatePickDir:
			return m.updatePickDir(msg)
		case StateMenu:
			return m.updateMenu(msg)
		case StateConfirm:
			return m.updateConfirm(msg)
		case StateResult:
			if msg.String() == "enter" || msg.String() == "esc" {
				m.state = StateMenu
				m.err = nil
				return m, nil
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.menu.SetWidth(msg.Width - 4)
		m.dirInput.Width = msg.Width - 10
		return m, nil

	case organizeDoneMsg:
		m.state = StateResult
		m.result = renderReport(msg.report)
		return m, nil

	case undoDoneMsg:
		m.state = StateResult
		m.result = renderUndoResult(msg.result)
		return m, nil

	case dedupDoneMsg:
		m.state = StateResult
		m.result = renderDedupReport(msg.report, m.root)
		return m, nil

	case errMsg:
		m.state = StateResult
		m.err = msg
		m.result = ""
		return m, nil

	case spinner.TickMsg:
		if m.state == StateWorking {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case StatePickDir:
		m.dirInput, cmd = m.dirInput.Update(msg)
	case StateMenu:
		m.menu, cmd = m.menu.Update(msg)
	}
	return m, cmd
}

func (m *model) updatePickDir(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		root := strings.TrimSpace(m.dirInput.Value())
		if root == "" {
			cwd, err := os.Getwd()
			if err != nil {
				m.err = err
				return m, nil
			}
			root = cwd
		}
		if strings.HasPrefix(root, "~/") {
			if home, err := os.UserHomeDir(); err == nil {
				root = filepath.Join(home, root[2:])
			}
		}

		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			m.dirInput.SetValue("")
			m.dirInput.Placeholder = root + " is not a valid directory, try again"
			return m, nil
		}

		m.root = root
		m.state = StateMenu
		return m, nil
	}

	var cmd tea.Cmd
	m.dirInput, cmd = m.dirInput.Update(msg)
	return m, cmd
}

func (m *model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		item, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}

		switch item.action {
		case actionQuit:
			return m, tea.Quit
		case actionChangeFolder:
			m.state = StatePickDir
			m.dirInput.SetValue("")
			m.dirInput.Placeholder = "Path of the folder to organize (Enter for current directory)"
			m.dirInput.Focus()
			return m, nil
		}

		if needsConfirm(item.action) {
			m.pending = item.action
			m.state = StateConfirm
			return m, nil
		}

		m.state = StateWorking
		return m, tea.Batch(m.spinner.Tick, m.runAction(item.action))
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.state = StateWorking
		return m, tea.Batch(m.spinner.Tick, m.runAction(m.pending))
	case "n", "N", "esc":
		m.state = StateMenu
		return m, nil
	}
	return m, nil
}

// runAction executes a core operation off the UI loop and delivers its
// report as a message.
func (m *model) runAction(a action) tea.Cmd {
	root := m.root
	cfg := m.cfg

	switch a {
	case actionFindDuplicates:
		return func() tea.Msg {
			dedup := deduplicator.New(afero.NewOsFs(), cfg.Performance.Workers)
			if cache, err := database.Open(cfg.Cache.Path); err != nil {
				logger.Get().Warn().Err(err).Msg("hash cache unavailable")
			} else {
				defer cache.Close()
				dedup = dedup.WithCache(cache)
			}
			report, err := dedup.FindDuplicates(root)
			if err != nil {
				return errMsg(err)
			}
			return dedupDoneMsg{report: report}
		}

	case actionUndo:
		return func() tea.Msg {
			result, err := organizer.NewDefault().Undo(root)
			if err != nil {
				return errMsg(err)
			}
			return undoDoneMsg{result: result}
		}

	default:
		mode := modeForAction(a)
		dryRun := isPreview(a)
		return func() tea.Msg {
			org := organizer.New(afero.NewOsFs(), classifier.New(cfg.Table()))
			report, err := org.Run(root, mode, dryRun)
			if err != nil {
				return errMsg(err)
			}
			return organizeDoneMsg{report: report}
		}
	}
}
