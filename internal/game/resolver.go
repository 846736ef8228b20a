package game

import (
	"fmt"

	"example.com/cluedo-server/internal/cards"
	"example.com/cluedo-server/internal/events"

	"github.com/sirupsen/logrus"
)

// Refutation is the outcome of a suggestion. When Refuted is false nobody
// could show a card, which hints that the suggestion may be the solution.
type Refutation struct {
	Refuted bool        `json:"refuted"`
	Refuter string      `json:"refuter,omitempty"`
	Card    *cards.Card `json:"card,omitempty"`
}

// Refute asks the other players, in turn order starting after the suggester,
// to disprove s. The first player holding a suggested card reveals exactly one
// of them, picked by the engine's Chooser.
func (e *Engine) Refute(s cards.Suggestion, suggester string) (Refutation, error) {
	e.publishMu.Lock()
	defer e.publishMu.Unlock()

	result, err := e.refute(s, suggester)
	if err != nil {
		return Refutation{}, err
	}
	e.eventManager.Publish(events.SuggestionResolvedEvent{
		SuggesterName: suggester,
		Suggestion:    s,
		DisproverName: result.Refuter,
	})
	return result, nil
}

func (e *Engine) refute(s cards.Suggestion, suggester string) (Refutation, error) {
	e.lock()
	defer e.unlock()

	if e.solution == nil {
		return Refutation{}, fmt.Errorf("suggest: %w", ErrGameNotActive)
	}
	suggesterIdx := e.indexOf(suggester)
	if suggesterIdx < 0 {
		return Refutation{}, fmt.Errorf("suggest by %q: %w", suggester, ErrUnknownPlayer)
	}

	log := e.log.WithFields(logrus.Fields{"game": e.gameID, "suggester": suggester})
	for i := 1; i < len(e.players); i++ {
		candidate := e.players[(suggesterIdx+i)%len(e.players)]
		if card, ok := candidate.ChooseCardToShow(s, e.chooser); ok {
			log.Debugf("%s disproves %s by showing %s", candidate.Name, s, card)
			return Refutation{Refuted: true, Refuter: candidate.Name, Card: &card}, nil
		}
	}
	log.Debugf("Nobody could disprove %s", s)
	return Refutation{}, nil
}

// Accuse reports whether s is exactly the hidden solution. The engine does not
// eliminate wrong accusers; that rule belongs to whoever runs the table.
func (e *Engine) Accuse(s cards.Suggestion) (bool, error) {
	e.publishMu.Lock()
	defer e.publishMu.Unlock()

	correct, err := e.accuse(s)
	if err != nil {
		return false, err
	}
	e.eventManager.Publish(events.AccusationResolvedEvent{Accusation: s, IsCorrect: correct})
	return correct, nil
}

func (e *Engine) accuse(s cards.Suggestion) (bool, error) {
	e.lock()
	defer e.unlock()

	if e.solution == nil {
		return false, fmt.Errorf("accuse: %w", ErrGameNotActive)
	}
	correct := s == *e.solution
	e.log.WithFields(logrus.Fields{"game": e.gameID, "correct": correct}).Debugf("Accusation: %s", s)
	return correct, nil
}
