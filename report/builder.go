// Package report builds the post-meeting views: statements partitioned by
// standup category and matched against the agenda. Both are read-only
// over finalized participant snapshots; nothing here mutates the meeting.
package report

import (
	"log/slog"
	"time"

	"github.com/samber/lo"

	"standup-lab/contract"
	"standup-lab/domain"
)

// DefaultAgenda is the fixed agenda of the reference standup.
var DefaultAgenda = []string{
	"What did you do yesterday?",
	"What will you do today?",
	"Are there any blockers or impediments?",
}

// AgendaMatch is one statement scored against the agenda list.
type AgendaMatch struct {
	Statement  string
	AgendaItem string
	Score      float64
}

// Section aggregates one participant's meeting outcome.
type Section struct {
	Name       string
	State      domain.State
	Used       time.Duration
	Allocated  time.Duration
	ByCategory map[domain.Category][]string
	Matches    []AgendaMatch
}

type Report struct {
	Sections    []Section
	GeneratedAt time.Time
}

// Builder turns participant snapshots into a Report using the category
// mode of the intent classifier and the similarity scorer. Port failures
// degrade per statement (unknown bucket, skipped match) and are never
// fatal.
type Builder struct {
	classifier contract.IntentClassifier
	scorer     contract.SimilarityScorer
	agenda     []string
	log        *slog.Logger
}

func NewBuilder(classifier contract.IntentClassifier, scorer contract.SimilarityScorer, agenda []string, log *slog.Logger) *Builder {
	if len(agenda) == 0 {
		agenda = DefaultAgenda
	}
	return &Builder{classifier: classifier, scorer: scorer, agenda: agenda, log: log}
}

func (b *Builder) Build(snapshots []domain.ParticipantSnapshot) Report {
	return Report{
		Sections: lo.Map(snapshots, func(snap domain.ParticipantSnapshot, _ int) Section {
			return b.buildSection(snap)
		}),
		GeneratedAt: time.Now().UTC(),
	}
}

func (b *Builder) buildSection(snap domain.ParticipantSnapshot) Section {
	section := Section{
		Name:       snap.Name,
		State:      snap.State,
		Used:       snap.Used,
		Allocated:  snap.Allocated,
		ByCategory: make(map[domain.Category][]string),
	}

	for _, st := range snap.Statements {
		category, err := b.classifier.Category(st.Text)
		if err != nil {
			b.log.Warn("Category classifier failed", "speaker", snap.Name, "error", err)
			category = domain.CategoryUnknown
		}
		section.ByCategory[category] = append(section.ByCategory[category], st.Text)

		item, score, err := b.scorer.BestMatch(st.Text, b.agenda)
		if err != nil {
			b.log.Warn("Similarity scorer failed", "speaker", snap.Name, "error", err)
			continue
		}
		section.Matches = append(section.Matches, AgendaMatch{
			Statement:  st.Text,
			AgendaItem: item,
			Score:      score,
		})
	}
	return section
}
