package intent

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"standup-lab/domain"
	"standup-lab/mocks"
)

// staticView is a canned read-only meeting state for resolver tests.
type staticView struct {
	current string
	names   []string
	waiting string
}

func (v staticView) CurrentSpeaker() (string, bool) { return v.current, v.current != "" }
func (v staticView) Names() []string                { return v.names }
func (v staticView) NextWaiting() (string, bool)    { return v.waiting, v.waiting != "" }

func newTestResolver(t *testing.T, classifier *mocks.MockIntentClassifier) *Resolver {
	t.Helper()
	start, err := NewPhraseMatcher([]string{"you can start", "your turn", "go ahead"})
	require.NoError(t, err)
	stop, err := NewPhraseMatcher([]string{"i'm done", "that's all", "finished"})
	require.NoError(t, err)
	return NewResolver(classifier, start, stop, logs.GetLoggerFromLevel(slog.LevelDebug))
}

func TestResolver_StartCue_FloorFree(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classifier := mocks.NewMockIntentClassifier(ctrl)
	classifier.EXPECT().TurnIntent(gomock.Any()).Return(domain.IntentOther, nil).AnyTimes()
	resolver := newTestResolver(t, classifier)

	view := staticView{names: []string{"alice", "bob"}, waiting: "alice"}

	// Named target wins
	cmd, ok := resolver.Resolve("Bob, you can start", "en", view)
	req.True(ok)
	req.Equal(domain.StartCommand{Name: "bob", At: cmd.(domain.StartCommand).At}, cmd)

	// No name in the cue falls back to the next waiting participant
	cmd, ok = resolver.Resolve("ok go ahead", "en", view)
	req.True(ok)
	req.Equal("alice", cmd.Target())
	req.IsType(domain.StartCommand{}, cmd)
}

func TestResolver_StartCue_NoTargetDropped(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classifier := mocks.NewMockIntentClassifier(ctrl)
	classifier.EXPECT().TurnIntent(gomock.Any()).Return(domain.IntentStart, nil)
	resolver := newTestResolver(t, classifier)

	// Everyone already spoke: nothing is waiting
	view := staticView{names: []string{"alice"}, waiting: ""}
	_, ok := resolver.Resolve("someone should start", "en", view)
	req.False(ok)
}

func TestResolver_StopCue_WhileSpeaking(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classifier := mocks.NewMockIntentClassifier(ctrl)
	classifier.EXPECT().TurnIntent(gomock.Any()).Return(domain.IntentOther, nil).AnyTimes()
	resolver := newTestResolver(t, classifier)

	view := staticView{current: "alice", names: []string{"alice", "bob"}, waiting: "bob"}

	cmd, ok := resolver.Resolve("and that's all from me", "en", view)
	req.True(ok)
	stop, isStop := cmd.(domain.StopCommand)
	req.True(isStop)
	req.Equal("alice", stop.Name)
	req.Equal(domain.ReasonSpoken, stop.Reason)
}

// A stop cue line must close the turn, never be recorded as content.
func TestResolver_StopCue_NeverBecomesContent(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classifier := mocks.NewMockIntentClassifier(ctrl)
	classifier.EXPECT().TurnIntent("i'm done").Return(domain.IntentStop, nil)
	resolver := newTestResolver(t, classifier)

	view := staticView{current: "alice", names: []string{"alice"}}
	cmd, ok := resolver.Resolve("I'm done", "en", view)
	req.True(ok)
	req.IsType(domain.StopCommand{}, cmd)
}

func TestResolver_StartCue_WhileSpeaking_HasNoEffect(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classifier := mocks.NewMockIntentClassifier(ctrl)
	classifier.EXPECT().TurnIntent(gomock.Any()).Return(domain.IntentStart, nil)
	resolver := newTestResolver(t, classifier)

	// Stop has priority over start while someone holds the floor; a pure
	// start cue is neither stop nor plain content, so it has no effect.
	view := staticView{current: "alice", names: []string{"alice", "bob"}, waiting: "bob"}
	_, ok := resolver.Resolve("bob you can start", "en", view)
	req.False(ok)
}

func TestResolver_Content_WhileSpeaking(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classifier := mocks.NewMockIntentClassifier(ctrl)
	classifier.EXPECT().TurnIntent(gomock.Any()).Return(domain.IntentOther, nil)
	resolver := newTestResolver(t, classifier)

	view := staticView{current: "alice", names: []string{"alice"}}
	cmd, ok := resolver.Resolve("Yesterday I fixed the login bug", "fr", view)
	req.True(ok)
	statement, isStatement := cmd.(domain.StatementCommand)
	req.True(isStatement)
	req.Equal("alice", statement.Speaker)
	req.Equal("yesterday i fixed the login bug", statement.Text)
	req.Equal("fr", statement.Lang)
}

func TestResolver_NoSpeaker_PlainText_Discarded(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classifier := mocks.NewMockIntentClassifier(ctrl)
	classifier.EXPECT().TurnIntent(gomock.Any()).Return(domain.IntentOther, nil).AnyTimes()
	resolver := newTestResolver(t, classifier)

	view := staticView{names: []string{"alice"}, waiting: "alice"}
	_, ok := resolver.Resolve("just some hallway chatter", "en", view)
	req.False(ok)

	// A stop cue with no one on the floor is equally inert
	_, ok = resolver.Resolve("that's all", "en", view)
	req.False(ok)
}

func TestResolver_ClassifierFailure_FallsBackToKeywords(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classifier := mocks.NewMockIntentClassifier(ctrl)
	classifier.EXPECT().TurnIntent(gomock.Any()).
		Return(domain.TurnIntent(""), fmt.Errorf("model unavailable")).
		AnyTimes()
	resolver := newTestResolver(t, classifier)

	// Keywords still detect the cue
	view := staticView{names: []string{"alice"}, waiting: "alice"}
	cmd, ok := resolver.Resolve("alice your turn", "en", view)
	req.True(ok)
	req.IsType(domain.StartCommand{}, cmd)

	// And a plain line while speaking is still recorded
	view = staticView{current: "alice", names: []string{"alice"}}
	cmd, ok = resolver.Resolve("working on the report module", "en", view)
	req.True(ok)
	req.IsType(domain.StatementCommand{}, cmd)
}

func TestResolver_EmptyLine_Ignored(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classifier := mocks.NewMockIntentClassifier(ctrl)
	resolver := newTestResolver(t, classifier)

	_, ok := resolver.Resolve("   ", "en", staticView{current: "alice"})
	req.False(ok)
}
