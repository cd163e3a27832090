package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wizinfantry/LLM-Text-RPG/internal/game"
)

// RunBattle opens the interactive battle screen over an existing session.
func RunBattle(ctx context.Context, session *game.Session, hint string, out io.Writer) error {
	m := newBattleModel(ctx, session, hint)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
