package slideview

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/slides/internal/icons"
	"github.com/llehouerou/slides/internal/slideshow"
	"github.com/llehouerou/slides/internal/theme"
	"github.com/llehouerou/slides/internal/ui/testutil"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newModel(t *testing.T, motion theme.Motion) (*Model, *clock) {
	t.Helper()
	icons.Init("none")
	c := &clock{t: epoch}
	m := New()
	m.SetClock(c.now)
	m.SetMotion(motion)
	m.SetSize(60, 20)
	return &m, c
}

var beach = slideshow.Photo{Name: "beach-sunset.jpg", Source: "/photos/beach-sunset.jpg"}

// show runs a full transition to p at the given phase duration.
func show(m *Model, c *clock, p slideshow.Photo, d time.Duration) {
	for _, phase := range []slideshow.Phase{
		slideshow.PhaseExiting, slideshow.PhaseSwapping, slideshow.PhaseEntering,
	} {
		m.HandleEvent(slideshow.PhaseChanged{Phase: phase, Photo: p, HasPhoto: true, Duration: d})
		c.advance(d)
	}
	m.HandleEvent(slideshow.PhaseChanged{Phase: slideshow.PhaseRevealing, Photo: p, HasPhoto: true, Duration: d})
	m.HandleEvent(slideshow.CaptionShown{Text: slideshow.CaptionFromFilename(p.Name)})
	c.advance(d)
	m.HandleEvent(slideshow.PhaseChanged{Phase: slideshow.PhaseIdle, Photo: p, HasPhoto: true})
}

func TestInner(t *testing.T) {
	tests := []struct {
		height         int
		wantImage, cap int
	}{
		{20, 15, 2},
		{5, 0, 2},
		{4, 0, 2},
		{3, 0, 1},
		{2, 0, 0},
	}
	for _, tt := range tests {
		img, capH := Inner(tt.height)
		assert.Equal(t, tt.wantImage, img, "image height for %d", tt.height)
		assert.Equal(t, tt.cap, capH, "caption height for %d", tt.height)
	}
}

func TestView_Size(t *testing.T) {
	m, c := newModel(t, theme.MotionNone)
	show(m, c, beach, 0)

	out := m.View()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 20)
	for i, line := range lines {
		assert.Equal(t, 60, lipgloss.Width(line), "line %d", i)
	}
}

func TestView_TooSmall(t *testing.T) {
	m, _ := newModel(t, theme.MotionNone)
	m.SetSize(4, 2)
	assert.Empty(t, m.View())
}

func TestView_Empty(t *testing.T) {
	m, _ := newModel(t, theme.MotionNone)
	m.SetEmptyHint("press L for samples")

	out := testutil.StripANSI(m.View())
	assert.Contains(t, out, "No photos loaded")
	assert.Contains(t, out, "press L for samples")
}

func TestView_PlacardAndCaption(t *testing.T) {
	m, c := newModel(t, theme.MotionNone)
	show(m, c, beach, 0)

	out := testutil.StripANSI(m.View())
	assert.Contains(t, out, "beach-sunset.jpg")
	assert.Contains(t, out, "file · /photos/beach-sunset.jpg")
	assert.Contains(t, out, "Beach Sunset")
}

func TestView_RemotePlacard(t *testing.T) {
	m, c := newModel(t, theme.MotionNone)
	show(m, c, slideshow.Photo{Name: "mountain.jpg", Source: "https://picsum.photos/id/29/800/600"}, 0)

	assert.Contains(t, testutil.StripANSI(m.View()), "web · https://picsum")
}

func TestView_CaptionHiddenWhileExiting(t *testing.T) {
	m, c := newModel(t, theme.MotionNone)
	show(m, c, beach, 0)

	m.HandleEvent(slideshow.PhaseChanged{Phase: slideshow.PhaseExiting, Photo: beach, HasPhoto: true, Duration: time.Second})
	assert.NotContains(t, testutil.StripANSI(m.View()), "Beach Sunset")
}

func TestView_CaptionToggle(t *testing.T) {
	m, c := newModel(t, theme.MotionNone)
	show(m, c, beach, 0)

	assert.False(t, m.ToggleCaptions())
	assert.NotContains(t, testutil.StripANSI(m.View()), "Beach Sunset")
	assert.True(t, m.ToggleCaptions())
	assert.Contains(t, testutil.StripANSI(m.View()), "Beach Sunset")
}

func TestView_ImagePlaceholderReplacesPlacard(t *testing.T) {
	m, c := newModel(t, theme.MotionNone)
	show(m, c, beach, 0)
	m.SetImage("      \n      ")

	assert.True(t, m.ImageVisible())
	assert.NotContains(t, testutil.StripANSI(m.View()), "file ·")

	m.SetImage("")
	assert.False(t, m.ImageVisible())
}

func TestLoadedEmptyClearsPhoto(t *testing.T) {
	m, c := newModel(t, theme.MotionNone)
	show(m, c, beach, 0)

	m.HandleEvent(slideshow.Loaded{})
	_, ok := m.Photo()
	assert.False(t, ok)
	assert.Contains(t, testutil.StripANSI(m.View()), "No photos loaded")
}

func TestHorizontalMotion_MovesPlacard(t *testing.T) {
	m, c := newModel(t, theme.MotionHorizontal)
	show(m, c, beach, 0)
	rest := placardColumn(t, m.View())

	m.HandleEvent(slideshow.PhaseChanged{Phase: slideshow.PhaseExiting, Photo: beach, HasPhoto: true, Duration: time.Second})
	c.advance(100 * time.Millisecond)
	moved := placardColumn(t, m.View())
	assert.Greater(t, moved, rest, "forward exit travels right")

	m.HandleEvent(slideshow.PhaseChanged{Phase: slideshow.PhaseExiting, Photo: beach, HasPhoto: true,
		Direction: slideshow.Backward, Duration: time.Second})
	c.advance(100 * time.Millisecond)
	assert.Less(t, placardColumn(t, m.View()), rest, "backward exit travels left")
}

func TestVerticalMotion_EntersFromBelow(t *testing.T) {
	m, c := newModel(t, theme.MotionVertical)
	show(m, c, beach, 0)
	rest := placardRow(t, m.View())

	m.HandleEvent(slideshow.PhaseChanged{Phase: slideshow.PhaseEntering, Photo: beach, HasPhoto: true, Duration: time.Second})
	c.advance(500 * time.Millisecond)
	entering := placardRow(t, m.View())
	assert.Greater(t, entering, rest)

	c.advance(time.Second)
	assert.Equal(t, rest, placardRow(t, m.View()))
}

func TestAnimating(t *testing.T) {
	m, c := newModel(t, theme.MotionHorizontal)
	assert.False(t, m.Animating())

	m.HandleEvent(slideshow.PhaseChanged{Phase: slideshow.PhaseExiting, Photo: beach, HasPhoto: true, Duration: time.Second})
	assert.True(t, m.Animating())
	c.advance(time.Second)
	assert.False(t, m.Animating(), "phase finished drawing")
}

func TestStaggeredCaption_RevealsWordByWord(t *testing.T) {
	m, c := newModel(t, theme.MotionVertical)
	show(m, c, beach, 0)
	m.HandleEvent(slideshow.CaptionShown{Text: "Golden Hour Over Water", Words: []string{"Golden", "Hour", "Over", "Water"}})

	out := testutil.StripANSI(m.View())
	assert.Contains(t, out, "Golden")
	assert.NotContains(t, out, "Hour")
	assert.True(t, m.Animating())

	c.advance(2 * WordDelay)
	out = testutil.StripANSI(m.View())
	assert.Contains(t, out, "Golden Hour Over")
	assert.NotContains(t, out, "Water")

	c.advance(WordDelay)
	assert.Contains(t, testutil.StripANSI(m.View()), "Golden Hour Over Water")
	assert.False(t, m.Animating())
}

func TestShiftLine(t *testing.T) {
	tests := []struct {
		line string
		dx   int
		want string
	}{
		{"abcd  ", 0, "abcd  "},
		{"abcd  ", 2, "  abcd"},
		{"abcd  ", -2, "cd    "},
		{"abcd  ", 6, "      "},
		{"abcd  ", -9, "      "},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, shiftLine(tt.line, tt.dx, 6), "shift %d", tt.dx)
	}
}

func TestShiftLines(t *testing.T) {
	lines := []string{"a", "b", "c"}
	assert.Equal(t, []string{" ", "a", "b"}, shiftLines(lines, 1, 1))
	assert.Equal(t, []string{"c", " ", " "}, shiftLines(lines, -2, 1))
}

// placardColumn returns the column of the placard's top-left corner, or -1
// once it left the panel.
func placardColumn(t *testing.T, view string) int {
	t.Helper()
	for row, line := range strings.Split(testutil.StripANSI(view), "\n") {
		if i := strings.Index(line, "╭"); row > 0 && i >= 0 {
			return lipgloss.Width(line[:i])
		}
	}
	return -1
}

// placardRow returns the row of the placard's top edge, below the panel's.
func placardRow(t *testing.T, view string) int {
	t.Helper()
	for row, line := range strings.Split(testutil.StripANSI(view), "\n") {
		if row > 0 && strings.Contains(line, "╭") {
			return row
		}
	}
	return -1
}
