package helpbindings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/slides/internal/keymap"
	"github.com/llehouerou/slides/internal/ui/action"
	"github.com/llehouerou/slides/internal/ui/testutil"
)

func newHelp(height int, contexts ...string) *Model {
	m := New()
	m.SetContexts(contexts)
	m.SetSize(80, height)
	return &m
}

func content(m *Model) string {
	return testutil.StripANSI(m.buildContent())
}

func TestHelp_ListsEveryBindingOfShownContexts(t *testing.T) {
	m := newHelp(200, keymap.ContextSlideshow, keymap.ContextPhotoList)
	out := content(m)

	for _, ctx := range []string{keymap.ContextSlideshow, keymap.ContextPhotoList} {
		for _, b := range keymap.ByContext(ctx) {
			assert.Contains(t, out, b.Description, "%s binding", ctx)
			assert.Contains(t, out, keyLabel(b), "keys of %q", b.Description)
		}
	}
	assert.NotContains(t, out, "Global", "global section not requested")
	assert.NotContains(t, out, "Reset preferences")
}

func TestHelp_SlideshowOnlyHidesPhotoList(t *testing.T) {
	out := content(newHelp(200, keymap.ContextSlideshow))

	assert.Contains(t, out, "Slideshow")
	assert.Contains(t, out, "Edit caption")
	assert.NotContains(t, out, "Photo List")
	assert.NotContains(t, out, "Remove photo")
}

func TestHelp_SectionsFollowFixedOrder(t *testing.T) {
	out := content(newHelp(200, keymap.ContextPhotoList, keymap.ContextSlideshow, keymap.ContextGlobal))

	global := strings.Index(out, "Global")
	slideshow := strings.Index(out, "Slideshow")
	photos := strings.Index(out, "Photo List")
	require.True(t, global >= 0 && slideshow >= 0 && photos >= 0, out)
	assert.Less(t, global, slideshow)
	assert.Less(t, slideshow, photos)
}

func TestKeyLabel(t *testing.T) {
	tests := []struct {
		action keymap.Action
		want   string
	}{
		{keymap.ActionPlayPause, "space"},
		{keymap.ActionNextSlide, "→, l"},
		{keymap.ActionPrevSlide, "←, h"},
		{keymap.ActionPalette, "ctrl+k, /, :"},
		{keymap.ActionLonger, "+, ="},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			for _, b := range keymap.ByContext(keymap.ContextSlideshow) {
				if b.Action == tt.action {
					assert.Equal(t, tt.want, keyLabel(b))
					return
				}
			}
			for _, b := range keymap.ByContext(keymap.ContextGlobal) {
				if b.Action == tt.action {
					assert.Equal(t, tt.want, keyLabel(b))
					return
				}
			}
			t.Fatalf("no binding for %s", tt.action)
		})
	}
}

func TestHelp_CloseKeys(t *testing.T) {
	for _, key := range []string{"?", "esc", "q"} {
		t.Run(key, func(t *testing.T) {
			h := testutil.NewPopupHarness(newHelp(40, keymap.ContextGlobal))

			cmd := h.SendKey(key)
			msg, ok := testutil.ExecuteCmd(cmd).(action.Msg)
			require.True(t, ok)
			assert.Equal(t, "helpbindings", msg.Source)
			assert.IsType(t, Close{}, msg.Action)
		})
	}
}

func TestHelp_ScrollsLongLists(t *testing.T) {
	m := newHelp(15, keymap.ContextGlobal, keymap.ContextSlideshow, keymap.ContextPhotoList)
	h := testutil.NewPopupHarness(m)
	require.Positive(t, m.maxScroll())
	assert.Empty(t, h.AssertViewContains("j/k scroll"))

	h.SendKey("k")
	assert.Equal(t, 0, m.scrollOffset, "already at the top")

	for range m.maxScroll() + 3 {
		h.SendKey("j")
	}
	assert.Equal(t, m.maxScroll(), m.scrollOffset, "stops at the bottom")
	assert.Empty(t, h.AssertViewContains("Close panel"), "last binding visible")

	h.SendKey("up")
	assert.Equal(t, m.maxScroll()-1, m.scrollOffset)

	m.SetContexts([]string{keymap.ContextSlideshow})
	assert.Zero(t, m.scrollOffset, "new contexts start at the top")
}

func TestHelp_ShortListHasNoScrollHint(t *testing.T) {
	h := testutil.NewPopupHarness(newHelp(200, keymap.ContextPhotoList))

	assert.Empty(t, h.AssertViewContains("Help"))
	assert.Empty(t, h.AssertViewContains("?/esc close"))
	assert.Empty(t, h.AssertViewNotContains("j/k scroll"))
}

func TestHelp_NoSize(t *testing.T) {
	m := New()
	m.SetContexts([]string{keymap.ContextGlobal})
	assert.Empty(t, m.View())
}
