package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/moyu-x/file-organizer/pkg/config"
	"github.com/moyu-x/file-organizer/pkg/logger"
)

// Run starts the interactive wizard. It owns all prompting and
// confirmation; the engines only ever see the final decision.
func Run(cfg *config.Config) error {
	logger.Get().Info().Msg("starting interactive wizard")

	m := initialModel(cfg)
	p := tea.NewProgram(&m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logger.Get().Error().Err(err).Msg("wizard exited with error")
		return err
	}

	logger.Get().Info().Msg("wizard closed")
	return nil
}
