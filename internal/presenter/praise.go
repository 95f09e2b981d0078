package presenter

import "math/rand"

// DefaultPhrases are the congratulatory openers used after a successful turn.
var DefaultPhrases = []string{"Congratulations", "Good choices", "Nice work", "Well done"}

// Praiser picks the opener for a turn result.
type Praiser interface {
	Praise() string
}

// RandomPraiser picks uniformly from Phrases.
type RandomPraiser struct {
	Phrases []string
}

func NewRandomPraiser() *RandomPraiser {
	return &RandomPraiser{Phrases: DefaultPhrases}
}

func (r *RandomPraiser) Praise() string {
	if len(r.Phrases) == 0 {
		return DefaultPhrases[0]
	}
	return r.Phrases[rand.Intn(len(r.Phrases))]
}

// FixedPraiser always returns the same phrase.
type FixedPraiser string

func (f FixedPraiser) Praise() string { return string(f) }
