package game

import (
	"context"
	"errors"

	"github.com/wizinfantry/LLM-Text-RPG/internal/engine"
	"github.com/wizinfantry/LLM-Text-RPG/internal/gen"
	"github.com/wizinfantry/LLM-Text-RPG/internal/storage"
)

// ContentSource is what the session needs from the generator layer. Every
// method has a built-in fallback and never fails the encounter.
type ContentSource interface {
	Monster(ctx context.Context, playerLevel int, hint string) *engine.Monster
	Action(ctx context.Context, actionCtx gen.ActionContext) engine.MonsterAction
	Item(ctx context.Context) (engine.Item, bool)
}

// ErrNoEncounter is returned when a combat operation runs outside an active
// encounter.
var ErrNoEncounter = errors.New("no active encounter")

// EncounterEnd reports how an encounter closed.
type EncounterEnd struct {
	Outcome string
	Reward  engine.VictoryResult
	Drop    *engine.Item
}

// Session drives one sitting of the game: a persistent player, a sequence of
// encounters, and the chronicle. Combat runs strictly turn-by-turn; nothing
// here is safe for concurrent use.
type Session struct {
	cfg      engine.Config
	player   *engine.Player
	source   ContentSource
	resolver *engine.Resolver
	rng      engine.Source

	heroes     *storage.HeroRepo
	encounters *storage.EncounterRepo

	monster  *engine.Monster
	guarding bool
	active   bool
	dealt    int
	taken    int
}

// NewSession wires a session. Repos may be nil, which disables persistence
// (used by tests and by play without a save file).
func NewSession(player *engine.Player, source ContentSource, cfg engine.Config, rng engine.Source, heroes *storage.HeroRepo, encounters *storage.EncounterRepo) *Session {
	if rng == nil {
		rng = engine.SystemSource()
	}
	return &Session{
		cfg:        cfg,
		player:     player,
		source:     source,
		resolver:   engine.NewResolver(cfg, rng),
		rng:        rng,
		heroes:     heroes,
		encounters: encounters,
	}
}

func (s *Session) Player() *engine.Player   { return s.player }
func (s *Session) Monster() *engine.Monster { return s.monster }
func (s *Session) Active() bool             { return s.active }

// StartEncounter generates (or falls back to) a monster and opens a new
// encounter.
func (s *Session) StartEncounter(ctx context.Context, hint string) *engine.Monster {
	s.monster = s.source.Monster(ctx, s.player.Level(), hint)
	s.guarding = false
	s.active = true
	s.dealt = 0
	s.taken = 0
	return s.monster
}

// PlayerAttack resolves the player's attack. When it defeats the monster the
// encounter closes: exp/gold awarded, drop rolled, chronicle written.
func (s *Session) PlayerAttack(ctx context.Context) (engine.Outcome, *EncounterEnd, error) {
	if !s.active {
		return engine.Outcome{}, nil, ErrNoEncounter
	}

	guarded := s.guarding
	s.guarding = false

	var out engine.Outcome
	if guarded {
		out = s.resolver.ResolveAttackGuarded(s.player, s.monster)
	} else {
		out = s.resolver.ResolveAttack(s.player, s.monster)
	}
	s.dealt += out.Damage

	if !out.Defeated {
		return out, nil, nil
	}

	end := &EncounterEnd{
		Outcome: storage.OutcomeVictory,
		Reward:  engine.AwardVictory(s.player, s.monster, s.rng),
	}
	if engine.RollDrop(s.monster, s.rng) {
		if item, ok := s.source.Item(ctx); ok {
			s.player.AddItem(item)
			end.Drop = &item
		}
	}
	if err := s.finish(ctx, end); err != nil {
		return out, end, err
	}
	return out, end, nil
}

// MonsterTurn asks the action generator what the monster does and resolves
// it. A defend action arms the guard for the player's next attack; anything
// else resolves as an attack on the player.
func (s *Session) MonsterTurn(ctx context.Context) (engine.MonsterAction, engine.Outcome, *EncounterEnd, error) {
	if !s.active {
		return engine.MonsterAction{}, engine.Outcome{}, nil, ErrNoEncounter
	}

	action := s.source.Action(ctx, gen.ActionContext{
		PlayerName:       s.player.Name(),
		PlayerHP:         s.player.HP().String(),
		MonsterName:      s.monster.Name(),
		MonsterHP:        s.monster.HP().String(),
		SpecialAbilities: s.monster.SpecialAbilities(),
	})

	if action.Type == engine.ActionDefend {
		s.guarding = true
		return action, engine.Outcome{}, nil, nil
	}

	out := s.resolver.ResolveAttack(s.monster, s.player)
	s.taken += out.Damage

	if !out.Defeated {
		return action, out, nil, nil
	}

	end := &EncounterEnd{Outcome: storage.OutcomeDefeat}
	if err := s.finish(ctx, end); err != nil {
		return action, out, end, err
	}
	return action, out, end, nil
}

// Flee abandons the encounter and chronicles it.
func (s *Session) Flee(ctx context.Context) (*EncounterEnd, error) {
	if !s.active {
		return nil, ErrNoEncounter
	}
	end := &EncounterEnd{Outcome: storage.OutcomeFled}
	if err := s.finish(ctx, end); err != nil {
		return end, err
	}
	return end, nil
}

// Save persists the player mid-session (after an equip, for instance).
func (s *Session) Save(ctx context.Context) error {
	if s.heroes == nil {
		return nil
	}
	h, err := s.heroes.GetOrCreateMain(ctx)
	if err != nil {
		return err
	}
	if err := ApplyPlayerToHero(s.player, h); err != nil {
		return err
	}
	return s.heroes.Update(ctx, h)
}

func (s *Session) finish(ctx context.Context, end *EncounterEnd) error {
	s.active = false

	if err := s.Save(ctx); err != nil {
		return err
	}
	if s.encounters == nil {
		return nil
	}
	_, err := s.encounters.Insert(ctx, &storage.Encounter{
		HeroKey:     storage.MainHeroKey,
		MonsterName: s.monster.Name(),
		Outcome:     end.Outcome,
		DamageDealt: s.dealt,
		DamageTaken: s.taken,
		ExpAwarded:  end.Reward.ExpAwarded,
		GoldAwarded: end.Reward.GoldAwarded,
	})
	return err
}
