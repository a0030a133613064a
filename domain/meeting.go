package domain

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"standup-lab/domain/event"
	"standup-lab/errors"
)

// Meeting owns every participant record, the current-speaker reference and
// the active flag. It is the single shared mutable resource of the engine:
// the dispatcher applies commands to it, and the time monitor performs the
// one guarded out-of-band mutation (MarkExceeded). Everything else reads.
//
// Mutations append domain events to an outbox; the dispatcher flushes the
// outbox after each command so sinks observe changes in apply order.
type Meeting struct {
	mu           sync.Mutex
	now          func() time.Time
	participants map[string]*Participant
	order        []string
	current      string
	turn         int
	active       bool
	ended        bool
	outbox       []event.DomainEvent
}

func NewMeeting() *Meeting {
	return &Meeting{
		now:          time.Now,
		participants: make(map[string]*Participant),
	}
}

// Normalize maps a raw participant name to its registry identity.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds a participant during setup. Registration is frozen once
// the meeting starts.
func (m *Meeting) Register(name string, allocated time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active || m.ended {
		return errors.ErrMeetingActive
	}
	key := Normalize(name)
	if key == "" {
		return fmt.Errorf("%w: empty name", errors.ErrUnknownParticipant)
	}
	if allocated <= 0 {
		return fmt.Errorf("%w: %s", errors.ErrInvalidAllocation, allocated)
	}
	if _, ok := m.participants[key]; ok {
		return fmt.Errorf("%w: %s", errors.ErrDuplicateParticipant, key)
	}

	m.participants[key] = &Participant{Name: key, Allocated: allocated, state: Waiting}
	m.order = append(m.order, key)
	return nil
}

// Remove deletes a participant during setup only.
func (m *Meeting) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active || m.ended {
		return errors.ErrMeetingActive
	}
	key := Normalize(name)
	if _, ok := m.participants[key]; !ok {
		return fmt.Errorf("%w: %s", errors.ErrUnknownParticipant, key)
	}
	delete(m.participants, key)
	for i, n := range m.order {
		if n == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// Start freezes the participant set and opens the floor.
func (m *Meeting) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active || m.ended {
		return errors.ErrMeetingActive
	}
	if len(m.order) == 0 {
		return errors.ErrNoParticipants
	}
	m.active = true
	m.outbox = append(m.outbox, event.MeetingStarted{
		Participants: append([]string(nil), m.order...),
		At:           m.now(),
	})
	return nil
}

// End tears the meeting down. A speaker still holding the floor is settled
// the same way an explicit stop would, so usedSeconds stays accurate and
// the aggregate is immutable afterwards.
func (m *Meeting) End() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.active {
		return
	}
	now := m.now()
	if m.current != "" {
		p := m.participants[m.current]
		p.used += p.speakingFor(now)
		p.startedAt = nil
		p.state = Done
		m.outbox = append(m.outbox, event.SpeakerStopped{
			Name: p.Name, Used: p.used, Reason: string(ReasonSpoken), At: now,
		})
		m.current = ""
	}
	m.active = false
	m.ended = true
	m.outbox = append(m.outbox, event.MeetingEnded{At: now})
}

// SetSpeaker hands the floor to name. A current speaker is released back
// to WAITING with its elapsed time folded into usedSeconds, so it may
// resume later; re-entry is only legal from WAITING. Returns the turn
// sequence number scoping the time watch for this turn.
func (m *Meeting) SetSpeaker(name string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.active {
		return 0, errors.ErrMeetingInactive
	}
	key := Normalize(name)
	next, ok := m.participants[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", errors.ErrUnknownParticipant, key)
	}
	if key == m.current {
		return m.turn, nil
	}

	state, err := next.state.Transition(Speaking)
	if err != nil {
		return 0, err
	}

	now := m.now()
	previous := m.current
	if previous != "" {
		prev := m.participants[previous]
		prev.used += prev.speakingFor(now)
		prev.startedAt = nil
		// Speaking -> Waiting is always legal; the interrupted
		// participant may take the floor again later.
		prev.state = Waiting
	}

	next.state = state
	next.startedAt = &now
	m.current = key
	m.turn++
	m.outbox = append(m.outbox, event.SpeakerStarted{Name: key, Previous: previous, At: now})
	return m.turn, nil
}

// StopSpeaker closes the named participant's turn. It no-ops (with a
// reportable error) when the participant no longer holds the floor, which
// makes stale stop commands harmless.
func (m *Meeting) StopSpeaker(name string, reason StopReason) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := Normalize(name)
	if !m.active || key != m.current {
		return fmt.Errorf("%w: %s", errors.ErrNotSpeaking, key)
	}
	p := m.participants[key]

	state, err := p.state.Transition(Done)
	if err != nil {
		return err
	}

	now := m.now()
	p.used += p.speakingFor(now)
	p.startedAt = nil
	p.state = state
	m.current = ""
	m.outbox = append(m.outbox, event.SpeakerStopped{
		Name: key, Used: p.used, Reason: string(reason), At: now,
	})
	return nil
}

// MarkExceeded is the time monitor's escalation: it freezes usedSeconds
// and moves the speaker to EXCEEDED. The guards (active, still the current
// speaker of the same turn, still SPEAKING) are re-checked under the lock
// so an interleaved stop or handoff silently wins the race.
func (m *Meeting) MarkExceeded(name string, turn int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := Normalize(name)
	if !m.active || key != m.current || turn != m.turn {
		return fmt.Errorf("%w: %s", errors.ErrNotSpeaking, key)
	}
	p := m.participants[key]
	state, err := p.state.Transition(Exceeded)
	if err != nil {
		return err
	}

	now := m.now()
	p.used += p.speakingFor(now)
	p.startedAt = nil
	p.state = state
	m.outbox = append(m.outbox, event.TimeExceeded{
		Name: key, Used: p.used, Allocated: p.Allocated, At: now,
	})
	return nil
}

// Record appends a content line for speaker. The state is re-checked at
// apply time: a line arriving in the same instant the speaker leaves
// SPEAKING is refused.
func (m *Meeting) Record(speaker, text, lang string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := Normalize(speaker)
	if !m.active || key != m.current {
		return fmt.Errorf("%w: %s", errors.ErrNotSpeaking, key)
	}
	p := m.participants[key]
	if p.state != Speaking {
		return fmt.Errorf("%w: %s is %s", errors.ErrNotSpeaking, key, p.state)
	}

	st := Statement{ID: uuid.New(), Speaker: key, Text: text, Lang: lang, At: at}
	p.statements = append(p.statements, st)
	m.outbox = append(m.outbox, event.StatementRecorded{
		ID: st.ID, Speaker: st.Speaker, Text: st.Text, Lang: st.Lang, At: st.At,
	})
	return nil
}

// NextWaiting returns the first WAITING participant in registration order.
func (m *Meeting) NextWaiting() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.nextWaitingLocked()
}

func (m *Meeting) nextWaitingLocked() (string, bool) {
	for _, name := range m.order {
		if m.participants[name].state == Waiting {
			return name, true
		}
	}
	return "", false
}

// CurrentSpeaker names the participant holding the floor, if any.
func (m *Meeting) CurrentSpeaker() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current, m.current != ""
}

// Names returns the registered participants in registration order.
func (m *Meeting) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.order...)
}

func (m *Meeting) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// Complete reports whether every participant reached a terminal state with
// no one holding the floor, which is the auto-end condition.
func (m *Meeting) Complete() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.active || m.current != "" {
		return false
	}
	for _, name := range m.order {
		switch m.participants[name].state {
		case Done, Exceeded:
		default:
			return false
		}
	}
	return true
}

// Progress reports live budget usage for the watched turn. watching is
// false once the meeting stopped, the speaker changed, the turn was
// superseded, or the state left SPEAKING; the monitor retires on it.
func (m *Meeting) Progress(name string, turn int) (used, allocated time.Duration, watching bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := Normalize(name)
	if !m.active || key != m.current || turn != m.turn {
		return 0, 0, false
	}
	p := m.participants[key]
	if p.state != Speaking {
		return 0, 0, false
	}
	return p.used + p.speakingFor(m.now()), p.Allocated, true
}

// Snapshot copies every participant record, in registration order.
func (m *Meeting) Snapshot() []ParticipantSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	out := make([]ParticipantSnapshot, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.participants[name].snapshot(now))
	}
	return out
}

// FlushEvents drains the outbox. Only the dispatcher should call this on
// an active meeting, right after applying a command.
func (m *Meeting) FlushEvents() []event.DomainEvent {
	m.mu.Lock()
	defer m.mu.Unlock()

	events := m.outbox
	m.outbox = nil
	return events
}
