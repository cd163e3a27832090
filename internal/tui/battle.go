package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wizinfantry/LLM-Text-RPG/internal/engine"
	"github.com/wizinfantry/LLM-Text-RPG/internal/game"
	"github.com/wizinfantry/LLM-Text-RPG/internal/storage"
	"github.com/wizinfantry/LLM-Text-RPG/internal/ui"
)

type phase int

const (
	phaseGenerating phase = iota
	phasePlayerTurn
	phaseMonsterTurn
	phaseEnded
)

const logLines = 8

type battleModel struct {
	ctx     context.Context
	session *game.Session
	hint    string

	phase   phase
	spinner spinner.Model
	log     []string
	end     *game.EncounterEnd
	err     error

	width int
}

type monsterMsg struct {
	monster *engine.Monster
}

type playerAttackMsg struct {
	out engine.Outcome
	end *game.EncounterEnd
	err error
}

type monsterTurnMsg struct {
	action engine.MonsterAction
	out    engine.Outcome
	end    *game.EncounterEnd
	err    error
}

type fledMsg struct {
	end *game.EncounterEnd
	err error
}

func newBattleModel(ctx context.Context, session *game.Session, hint string) battleModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return battleModel{
		ctx:     ctx,
		session: session,
		hint:    hint,
		phase:   phaseGenerating,
		spinner: s,
	}
}

func (m battleModel) Init() tea.Cmd {
	return tea.Batch(m.generateCmd(), m.spinner.Tick)
}

func (m battleModel) generateCmd() tea.Cmd {
	return func() tea.Msg {
		return monsterMsg{monster: m.session.StartEncounter(m.ctx, m.hint)}
	}
}

func (m battleModel) playerAttackCmd() tea.Cmd {
	return func() tea.Msg {
		out, end, err := m.session.PlayerAttack(m.ctx)
		return playerAttackMsg{out: out, end: end, err: err}
	}
}

func (m battleModel) monsterTurnCmd() tea.Cmd {
	return func() tea.Msg {
		action, out, end, err := m.session.MonsterTurn(m.ctx)
		return monsterTurnMsg{action: action, out: out, end: end, err: err}
	}
}

func (m battleModel) fleeCmd() tea.Cmd {
	return func() tea.Msg {
		end, err := m.session.Flee(m.ctx)
		return fledMsg{end: end, err: err}
	}
}

func (m *battleModel) push(line string) {
	m.log = append(m.log, line)
	if len(m.log) > logLines {
		m.log = m.log[len(m.log)-logLines:]
	}
}

func (m battleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case monsterMsg:
		m.phase = phasePlayerTurn
		mon := msg.monster
		m.push(fmt.Sprintf("%s A wild %s appears!", ui.IconSkull, ui.Bad.Render(mon.Name())))
		if mon.Description() != "" {
			m.push(ui.Muted.Render(mon.Description()))
		}
		return m, nil

	case playerAttackMsg:
		if msg.err != nil {
			m.err = msg.err
			m.phase = phaseEnded
			return m, nil
		}
		m.push(m.describeAttack(m.session.Player().Name(), m.session.Monster().Name(), msg.out))
		if msg.end != nil {
			return m.finishEncounter(msg.end), nil
		}
		m.phase = phaseMonsterTurn
		return m, tea.Batch(m.monsterTurnCmd(), m.spinner.Tick)

	case monsterTurnMsg:
		if msg.err != nil {
			m.err = msg.err
			m.phase = phaseEnded
			return m, nil
		}
		if msg.action.Description != "" {
			m.push(ui.Muted.Render(msg.action.Description))
		}
		if msg.action.Type == engine.ActionDefend {
			m.push(fmt.Sprintf("%s %s braces for your next blow.", ui.IconShield, m.session.Monster().Name()))
		} else {
			m.push(m.describeAttack(m.session.Monster().Name(), m.session.Player().Name(), msg.out))
		}
		if msg.end != nil {
			return m.finishEncounter(msg.end), nil
		}
		m.phase = phasePlayerTurn
		return m, nil

	case fledMsg:
		if msg.err != nil {
			m.err = msg.err
		}
		m.push(fmt.Sprintf("%s You slip away from the fight.", ui.IconFlee))
		m.phase = phaseEnded
		m.end = msg.end
		return m, nil

	case spinner.TickMsg:
		if m.phase == phaseGenerating || m.phase == phaseMonsterTurn {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "a", "enter":
			if m.phase == phasePlayerTurn {
				return m, m.playerAttackCmd()
			}
		case "f":
			if m.phase == phasePlayerTurn {
				return m, m.fleeCmd()
			}
		case "n":
			if m.phase == phaseEnded && !m.session.Player().HP().IsEmpty() {
				m.phase = phaseGenerating
				m.end = nil
				m.err = nil
				return m, tea.Batch(m.generateCmd(), m.spinner.Tick)
			}
		case "e":
			if m.phase == phaseEnded && m.end != nil && m.end.Drop != nil && m.end.Drop.IsWeapon() {
				drop := *m.end.Drop
				if err := m.session.Player().Equip(drop); err == nil {
					_ = m.session.Save(m.ctx)
					m.push(fmt.Sprintf("%s You equip the %s (%s).", ui.IconSword, ui.Gold.Render(drop.Name), drop.Damage))
					m.end.Drop = nil
				}
			}
		}
	}
	return m, nil
}

func (m *battleModel) describeAttack(attacker, defender string, out engine.Outcome) string {
	switch {
	case !out.Hit:
		return fmt.Sprintf("%s %s swings at %s and misses.", ui.IconDice, attacker, defender)
	case out.Evaded:
		return fmt.Sprintf("%s %s evades %s's attack!", ui.IconDice, defender, attacker)
	case out.Critical:
		return fmt.Sprintf("%s %s %s hits %s for %s damage!", ui.IconSword, ui.BadgeCritical, attacker, defender, ui.Bad.Render(fmt.Sprintf("%d", out.Damage)))
	default:
		return fmt.Sprintf("%s %s hits %s for %d damage.", ui.IconSword, attacker, defender, out.Damage)
	}
}

func (m battleModel) finishEncounter(end *game.EncounterEnd) battleModel {
	m.end = end
	m.phase = phaseEnded
	switch end.Outcome {
	case storage.OutcomeVictory:
		m.push(fmt.Sprintf("%s %s is defeated!", ui.IconSparkle, m.session.Monster().Name()))
		m.push(fmt.Sprintf("%s +%d exp, +%d gold", ui.IconGold, end.Reward.ExpAwarded, end.Reward.GoldAwarded))
		if end.Reward.LevelUp {
			m.push(fmt.Sprintf("%s %s reached level %d!", ui.IconSparkle, ui.BadgeLevelUp, end.Reward.LevelAfter))
		}
		if end.Drop != nil {
			m.push(fmt.Sprintf("%s The monster dropped: %s — %s", ui.IconBag, ui.Gold.Render(end.Drop.Name), ui.Muted.Render(end.Drop.Effect)))
		}
	case storage.OutcomeDefeat:
		m.push(fmt.Sprintf("%s You have fallen. The dungeon claims another.", ui.IconSkull))
	}
	return m
}

func (m battleModel) View() string {
	var b strings.Builder

	b.WriteString(ui.Heading(ui.IconSword, "Battle") + "\n\n")

	if m.phase == phaseGenerating {
		b.WriteString(fmt.Sprintf("%s Conjuring a monster...\n", m.spinner.View()))
		return b.String()
	}

	p := m.session.Player()
	mon := m.session.Monster()

	if mon != nil {
		var panel strings.Builder
		panel.WriteString(ui.PanelTitle.Render(fmt.Sprintf("%s %s", ui.IconSkull, mon.Name())) + "\n")
		panel.WriteString(fmt.Sprintf("%s %s\n", ui.IconHeart, ui.Bar(mon.HP().Current(), mon.HP().Maximum(), 20)))
		if abilities := mon.SpecialAbilities(); len(abilities) > 0 {
			panel.WriteString(ui.Muted.Render("abilities: "+strings.Join(abilities, ", ")) + "\n")
		}
		b.WriteString(ui.Panel.Render(strings.TrimRight(panel.String(), "\n")) + "\n")
	}

	var hero strings.Builder
	hero.WriteString(ui.PanelTitle.Render(fmt.Sprintf("%s %s (lvl %d)", ui.IconSparkle, p.Name(), p.Level())) + "\n")
	hero.WriteString(fmt.Sprintf("%s %s\n", ui.IconHeart, ui.Bar(p.HP().Current(), p.HP().Maximum(), 20)))
	hero.WriteString(fmt.Sprintf("%s %s\n", ui.IconMana, ui.Bar(p.MP().Current(), p.MP().Maximum(), 20)))
	hero.WriteString(fmt.Sprintf("%s %s (%s)  %s %d", ui.IconSword, p.Weapon().Name, p.Weapon().Damage, ui.IconGold, p.Gold()))
	b.WriteString(ui.Panel.Render(hero.String()) + "\n\n")

	for _, line := range m.log {
		b.WriteString(line + "\n")
	}
	if m.err != nil {
		b.WriteString(ui.Bad.Render(ui.IconError+" "+m.err.Error()) + "\n")
	}
	b.WriteString("\n")

	switch m.phase {
	case phasePlayerTurn:
		b.WriteString(ui.Muted.Render("[a] attack  [f] flee  [q] quit"))
	case phaseMonsterTurn:
		b.WriteString(fmt.Sprintf("%s %s is deciding...", m.spinner.View(), mon.Name()))
	case phaseEnded:
		help := "[n] next encounter  [q] quit"
		if m.end != nil && m.end.Drop != nil && m.end.Drop.IsWeapon() {
			help = "[e] equip drop  " + help
		}
		if p.HP().IsEmpty() {
			help = "[q] quit"
		}
		b.WriteString(ui.Muted.Render(help))
	}
	b.WriteString("\n")
	return b.String()
}
