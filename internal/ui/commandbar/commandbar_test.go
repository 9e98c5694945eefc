package commandbar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/slides/internal/icons"
	"github.com/llehouerou/slides/internal/loop"
	"github.com/llehouerou/slides/internal/palette"
	"github.com/llehouerou/slides/internal/ui/action"
	"github.com/llehouerou/slides/internal/ui/testutil"
)

type recorder struct{ effects []palette.Effect }

func (r *recorder) Dispatch(e palette.Effect) { r.effects = append(r.effects, e) }

func newTestBar(t *testing.T) (*testutil.PopupHarness, *palette.Registry, *loop.Manual, *recorder) {
	t.Helper()
	icons.Init("none")
	sched := loop.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	rec := &recorder{}
	reg := palette.New(sched, rec)

	m := New(reg)
	m.Open(100, 40)
	return testutil.NewPopupHarness(&m), reg, sched, rec
}

func lastAction(t *testing.T, h *testutil.PopupHarness) action.Action {
	t.Helper()
	cmd := h.LastCommand()
	require.NotNil(t, cmd)
	msg, ok := testutil.ExecuteCmd(cmd).(action.Msg)
	require.True(t, ok)
	assert.Equal(t, "commandbar", msg.Source)
	return msg.Action
}

func TestOpen_ShowsCatalog(t *testing.T) {
	h, reg, _, _ := newTestBar(t)

	assert.True(t, reg.IsOpen())
	assert.Empty(t, h.AssertViewContains("Command Palette"))
	assert.Empty(t, h.AssertViewContains("Switch to Manual Mode"))
	assert.Empty(t, h.AssertViewContains("Mode"))
}

func TestType_FiltersRegistry(t *testing.T) {
	h, reg, _, _ := newTestBar(t)

	h.Type("theme")
	assert.Equal(t, "theme", reg.Query())
	for _, cmd := range reg.Filtered() {
		assert.Equal(t, palette.CategoryTheme, cmd.Category)
	}
	assert.Empty(t, h.AssertViewContains("Theme B - Horizontal Slide"))
	assert.Empty(t, h.AssertViewNotContains("Shuffle Photos"))
}

func TestType_NoMatches(t *testing.T) {
	h, _, _, _ := newTestBar(t)
	h.Type("zzz")
	assert.Empty(t, h.AssertViewContains("No matching commands"))
}

func TestBackspace_WidensFilter(t *testing.T) {
	h, reg, _, _ := newTestBar(t)
	h.Type("zzz")
	h.SendKeys("backspace", "backspace", "backspace")

	assert.Empty(t, reg.Query())
	assert.Len(t, reg.Filtered(), len(reg.Commands()))
}

func TestArrows_MoveSelection(t *testing.T) {
	h, reg, _, _ := newTestBar(t)

	h.SendDown()
	h.SendDown()
	assert.Equal(t, 2, reg.View().Selected)

	h.SendUp()
	assert.Equal(t, 1, reg.View().Selected)

	h.SendUp()
	h.SendUp()
	assert.Equal(t, len(reg.Commands())-1, reg.View().Selected, "selection wraps")
}

func TestEnter_ExecutesAfterDelay(t *testing.T) {
	h, reg, sched, rec := newTestBar(t)
	h.Type("random")

	h.SendEnter()
	assert.Equal(t, Executed{ID: "mode-random"}, lastAction(t, h))
	assert.False(t, reg.IsOpen(), "palette closes before the command runs")
	assert.Empty(t, rec.effects)

	sched.Advance(palette.DefaultExecuteDelay)
	require.Len(t, rec.effects, 1)
	assert.Equal(t, palette.Effect{Kind: palette.SetMode, Arg: "random"}, rec.effects[0])
}

func TestEnter_NothingSelected(t *testing.T) {
	h, reg, _, _ := newTestBar(t)
	h.Type("zzz")

	assert.Nil(t, h.SendEnter())
	assert.True(t, reg.IsOpen())
}

func TestEscape_Closes(t *testing.T) {
	h, reg, _, rec := newTestBar(t)

	h.SendEscape()
	assert.Equal(t, Closed{}, lastAction(t, h))
	assert.False(t, reg.IsOpen())
	assert.Empty(t, rec.effects)
	assert.Empty(t, h.View())
}

func TestView_ShowsShortcuts(t *testing.T) {
	h, _, _, _ := newTestBar(t)
	h.Type("dark")

	out := testutil.StripANSI(h.View())
	assert.Contains(t, out, "> Toggle Dark/Light Mode")
	assert.Contains(t, out, "Display  D")
}

func TestView_ScrollsToSelection(t *testing.T) {
	h, reg, _, _ := newTestBar(t)
	h.SetSize(100, 20)

	for range len(reg.Commands()) - 1 {
		h.SendDown()
	}
	last := reg.Commands()[len(reg.Commands())-1]
	assert.Empty(t, h.AssertViewContains(last.Label))
	assert.Empty(t, h.AssertViewNotContains("Switch to Manual Mode"))
}
