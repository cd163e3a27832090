package engine

import "math"

// ActionType is the small fixed vocabulary the action generator may use.
type ActionType string

const (
	ActionAttack ActionType = "attack"
	ActionDefend ActionType = "defend"
	ActionOther  ActionType = "other"
)

// MonsterAction is the descriptor returned by the action generator. The
// description is opaque narration; only Type drives resolution.
type MonsterAction struct {
	Type        ActionType
	Description string
}

// Outcome records one resolved attack action.
type Outcome struct {
	Hit      bool
	Critical bool
	Evaded   bool
	Damage   int
	Defeated bool
}

// Resolver runs the turn algorithm. The stage order is fixed: hit test,
// critical test, base damage, evasion test, mitigation, apply.
type Resolver struct {
	cfg Config
	rng Source
}

// NewResolver builds a resolver over the given constants. A nil source falls
// back to the system RNG.
func NewResolver(cfg Config, rng Source) *Resolver {
	if rng == nil {
		rng = SystemSource()
	}
	return &Resolver{cfg: cfg, rng: rng}
}

// ResolveAttack resolves one attacker→defender attack and applies the damage
// to the defender's HP bar.
func (r *Resolver) ResolveAttack(attacker, defender Combatant) Outcome {
	return r.resolve(attacker, defender, false)
}

// ResolveAttackGuarded is ResolveAttack against a defender that spent its
// previous turn defending: computed damage is halved before mitigation.
func (r *Resolver) ResolveAttackGuarded(attacker, defender Combatant) Outcome {
	return r.resolve(attacker, defender, true)
}

func (r *Resolver) resolve(attacker, defender Combatant, guarded bool) Outcome {
	var out Outcome

	// Stage 1: hit test. A miss short-circuits everything else.
	if r.rng.Float64() >= attacker.HitChance()/100 {
		return out
	}
	out.Hit = true

	// Stage 2: independent critical test.
	if r.rng.Float64() < attacker.CriticalChance()/100 {
		out.Critical = true
	}

	// Stage 3: base damage.
	damage := attacker.AttackPower()
	if out.Critical {
		damage = int(math.Floor(float64(damage) * r.cfg.CriticalMultiplier))
	}
	if guarded {
		damage /= 2
	}

	// Stage 4: evasion. Checked after damage is computed, and overrides it.
	if r.rng.Float64() < defender.EvasionRate()/100 {
		out.Evaded = true
		return out
	}

	// Stage 5: mitigation. A connected, non-evaded hit always lands at least 1.
	final := damage - defender.Defense()
	if final < 1 {
		final = 1
	}
	out.Damage = final

	// Stage 6: apply.
	defender.HP().Adjust(-final)
	out.Defeated = defender.HP().IsEmpty()
	return out
}
