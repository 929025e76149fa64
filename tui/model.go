package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/moyu-x/file-organizer/internal"
	"github.com/moyu-x/file-organizer/pkg/config"
)

type State int

const (
	StatePickDir State = iota
	StateMenu
	StateConfirm
	StateWorking
	StateResult
)

type action int

const (
	actionPreviewCategory action = iota
	actionOrganizeCategory
	actionPreviewDate
	actionOrganizeDate
	actionPreviewContent
	actionOrganizeContent
	actionFindDuplicates
	actionUndo
	actionChangeFolder
	actionQuit
)

type menuItem struct {
	title  string
	desc   string
	action action
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type model struct {
	cfg     *config.Config
	state   State
	root    string
	pending action

	dirInput textinput.Model
	menu     list.Model
	spinner  spinner.Model

	result string
	err    error
}

func menuItems() []list.Item {
	return []list.Item{
		menuItem{title: "Preview organization by category", desc: "Show the grouping without moving anything", action: actionPreviewCategory},
		menuItem{title: "Organize by category", desc: "Move files into category folders", action: actionOrganizeCategory},
		menuItem{title: "Preview organization by date", desc: "Show year/month buckets without moving anything", action: actionPreviewDate},
		menuItem{title: "Organize by date", desc: "Move files into year/month folders", action: actionOrganizeDate},
		menuItem{title: "Preview organization by content type", desc: "Group by sniffed file content", action: actionPreviewContent},
		menuItem{title: "Organize by content type", desc: "Move files into content-type folders", action: actionOrganizeContent},
		menuItem{title: "Find duplicate files", desc: "Hash the whole tree and list identical files", action: actionFindDuplicates},
		menuItem{title: "Undo last organization", desc: "Move every file back where it came from", action: actionUndo},
		menuItem{title: "Change folder", desc: "Pick another directory to organize", action: actionChangeFolder},
		menuItem{title: "Quit", desc: "Leave the wizard", action: actionQuit},
	}
}

func initialModel(cfg *config.Config) model {
	dirInput := textinput.New()
	dirInput.Placeholder = "Path of the folder to organize (Enter for current directory)"
	dirInput.Prompt = "> "
	dirInput.PromptStyle = focusedPromptStyle
	dirInput.TextStyle = textStyle
	dirInput.Focus()

	menu := list.New(menuItems(), list.NewDefaultDelegate(), 0, 24)
	menu.Title = "What do you want to do?"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)
	menu.Styles.Title = titleStyle

	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		FPS:    time.Second / 10,
	}
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return model{
		cfg:      cfg,
		state:    StatePickDir,
		dirInput: dirInput,
		menu:     menu,
		spinner:  s,
	}
}

func modeForAction(a action) internal.Mode {
	switch a {
	case actionPreviewDate, actionOrganizeDate:
		return internal.ModeDate
	case actionPreviewContent, actionOrganizeContent:
		return internal.ModeContent
	default:
		return internal.ModeCategory
	}
}

func isPreview(a action) bool {
	switch a {
	case actionPreviewCategory, actionPreviewDate, actionPreviewContent:
		return true
	}
	return false
}

// needsConfirm marks the destructive actions; they run only after an
// explicit yes.
func needsConfirm(a action) bool {
	switch a {
	case actionOrganizeCategory, actionOrganizeDate, actionOrganizeContent, actionUndo:
		return true
	}
	return false
}
