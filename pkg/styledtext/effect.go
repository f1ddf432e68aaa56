package styledtext

import "strings"

// Effect is an independent boolean text attribute. Effects do not imply each
// other and carry no mutual-exclusion rules; bold italic text is valid.
type Effect uint8

const (
	Bold Effect = iota
	Italic
	Underline
	Strikethrough

	effectCount = 4
)

var effectNames = [effectCount]string{"bold", "italic", "underline", "strikethrough"}

func (e Effect) String() string {
	if int(e) < effectCount {
		return effectNames[e]
	}
	return "unknown"
}

// Effects is a set of text effects. The zero value is the empty set. All
// operations are value semantics; no method mutates its receiver.
type Effects uint8

// EffectsOf builds a set containing the given effects.
func EffectsOf(effects ...Effect) Effects {
	var s Effects
	for _, e := range effects {
		s = s.With(e)
	}
	return s
}

// Has reports whether the effect is in the set.
func (s Effects) Has(e Effect) bool {
	return s&(1<<e) != 0
}

// With returns the set with the effect added.
func (s Effects) With(e Effect) Effects {
	return s | 1<<e
}

// Without returns the set with the effect removed.
func (s Effects) Without(e Effect) Effects {
	return s &^ (1 << e)
}

// Set returns the set with the effect's membership set to on.
func (s Effects) Set(e Effect, on bool) Effects {
	if on {
		return s.With(e)
	}
	return s.Without(e)
}

// Union returns the element-wise union of the two sets. Union is idempotent
// and commutative.
func (s Effects) Union(o Effects) Effects {
	return s | o
}

// Empty reports whether no effect is set.
func (s Effects) Empty() bool {
	return s == 0
}

// List returns the effects present in the set, in declared order (Bold,
// Italic, Underline, Strikethrough). The result is a fresh slice; iterating it
// does not consume or mutate the set.
func (s Effects) List() []Effect {
	effects := make([]Effect, 0, effectCount)
	for e := Effect(0); e < effectCount; e++ {
		if s.Has(e) {
			effects = append(effects, e)
		}
	}
	return effects
}

func (s Effects) String() string {
	if s.Empty() {
		return "none"
	}
	names := make([]string, 0, effectCount)
	for _, e := range s.List() {
		names = append(names, e.String())
	}
	return strings.Join(names, "+")
}
