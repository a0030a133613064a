package ai

import (
	"strings"

	"standup-lab/domain"
)

// Classifier is the baseline turn-intent and category model. It scores a
// statement against small cue lexicons and applies an argmax; the same
// lexicons a trained model would be bootstrapped from. It is pure and
// never fails, which also makes it the reference stub in tests.
type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

// Cue lexicons. Start cues deliberately do not overlap the resolver's
// keyword fallback lists one-to-one: the classifier is the recall side,
// the fallback the precision side, and resolution ORs them anyway.
var (
	startCues = []string{
		"you can start", "go ahead", "your turn", "the floor is yours",
		"please begin", "kick us off", "start your update", "take it away",
	}
	stopCues = []string{
		"i'm done", "that's all", "that's it", "nothing else", "no more updates",
		"finished", "that concludes", "wrap it up from my side", "done for now",
	}

	yesterdayCues = []string{"yesterday", "last week", "last night", "i finished", "i completed", "i fixed", "i worked on", "i did"}
	todayCues     = []string{"today", "i will", "i'm going to", "going to", "i plan", "planning to", "next i", "this afternoon", "this morning"}
	blockerCues   = []string{"blocked", "blocker", "stuck", "waiting on", "waiting for", "impediment", "can't proceed", "need help", "issue with"}
)

// TurnIntent labels text as a start cue, a stop cue, or other.
func (c *Classifier) TurnIntent(text string) (domain.TurnIntent, error) {
	text = strings.ToLower(text)
	start := countCues(text, startCues)
	stop := countCues(text, stopCues)

	switch {
	case start == 0 && stop == 0:
		return domain.IntentOther, nil
	case start >= stop:
		return domain.IntentStart, nil
	default:
		return domain.IntentStop, nil
	}
}

// Category buckets a statement into yesterday/today/blocker. Blockers win
// ties: surfacing an impediment matters more than the tense it was said
// in. A statement with no cue at all defaults to today, the most common
// shape of a standup line.
func (c *Classifier) Category(text string) (domain.Category, error) {
	text = strings.ToLower(text)
	scores := map[domain.Category]int{
		domain.CategoryYesterday: countCues(text, yesterdayCues),
		domain.CategoryToday:     countCues(text, todayCues),
		domain.CategoryBlocker:   countCues(text, blockerCues),
	}

	if scores[domain.CategoryBlocker] > 0 &&
		scores[domain.CategoryBlocker] >= scores[domain.CategoryYesterday] &&
		scores[domain.CategoryBlocker] >= scores[domain.CategoryToday] {
		return domain.CategoryBlocker, nil
	}
	if scores[domain.CategoryYesterday] > scores[domain.CategoryToday] {
		return domain.CategoryYesterday, nil
	}
	return domain.CategoryToday, nil
}

func countCues(text string, cues []string) int {
	count := 0
	for _, cue := range cues {
		if strings.Contains(text, cue) {
			count++
		}
	}
	return count
}
