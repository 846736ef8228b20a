package ai

import (
	"math/rand"

	"example.com/cluedo-server/internal/cards"
	"example.com/cluedo-server/internal/player"

	"github.com/sirupsen/logrus"
)

// Bot is a computer player: a notebook plus a list of suggestion strategies
// tried in order. It only accuses once its notebook has solved the case.
type Bot struct {
	name                  string
	notebook              *Notebook
	strategies            []SuggestionStrategy
	recentSurgicalTargets *CardDeque
	log                   logrus.FieldLogger
	chooser               player.Chooser
	rand                  *rand.Rand
}

// NewBot is the constructor for a computer player seated among players.
func NewBot(logger logrus.FieldLogger, rand *rand.Rand, chooser player.Chooser, name string, players []string) *Bot {
	return &Bot{
		name:                  name,
		notebook:              NewNotebook(logger, name, players),
		recentSurgicalTargets: NewCardDeque(3),
		log:                   logger.WithField("player", name),
		chooser:               chooser,
		rand:                  rand,
		strategies: []SuggestionStrategy{
			&ExploitStrategy{},
			&SurgicalStrikeStrategy{},
			&ExploreStrategy{},
		},
	}
}

func (b *Bot) Name() string                  { return b.name }
func (b *Bot) Notebook() *Notebook           { return b.notebook }
func (b *Bot) ReceiveHand(hand []cards.Card) { b.notebook.ReceiveHand(hand) }

// Observe feeds a resolved suggestion into the notebook.
func (b *Bot) Observe(suggester string, s cards.Suggestion, disprover string, revealed *cards.Card) {
	b.notebook.Observe(suggester, s, disprover, revealed)
}

// MakeSuggestion asks each strategy in turn for a suggestion.
func (b *Bot) MakeSuggestion() cards.Suggestion {
	b.log.Debugf("Formulating a suggestion...")
	for _, s := range b.strategies {
		if suggestion, ok := s.BuildSuggestion(b); ok {
			return suggestion
		}
	}
	return (&ExploreStrategy{}).mustBuild(b)
}

// ShouldAccuse returns the accusation to make, if the case is solved.
func (b *Bot) ShouldAccuse() (cards.Suggestion, bool) {
	solution, ok := b.notebook.Solution()
	if ok {
		b.log.Debugf("Case solved: %s", solution)
	}
	return solution, ok
}
