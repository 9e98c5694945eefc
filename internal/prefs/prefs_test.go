package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/slides/internal/state"
)

func newStore(t *testing.T) (*Store, *Memory) {
	t.Helper()
	mem := NewMemory()
	return New(mem, nil), mem
}

func TestGet_MissingReturnsDefault(t *testing.T) {
	s, _ := newStore(t)
	assert.Equal(t, "fallback", Get(s, "nope", "fallback"))
	assert.Equal(t, 42, Get(s, "nope", 42))
}

func TestSetGet_RoundTrip(t *testing.T) {
	s, mem := newStore(t)

	require.True(t, s.Set(KeyTheme, "theme-d"))
	assert.Equal(t, "theme-d", Get(s, KeyTheme, "theme-a"))

	raw, ok := mem.Raw(KeyTheme)
	require.True(t, ok)
	assert.Equal(t, `"theme-d"`, raw)
}

func TestGet_StoreFailureReturnsDefault(t *testing.T) {
	s, mem := newStore(t)
	require.True(t, s.Set(KeyTheme, "theme-d"))

	mem.FailReads = true
	assert.Equal(t, "theme-a", Get(s, KeyTheme, "theme-a"))
}

func TestGet_MalformedReturnsDefault(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "{oops"},
		{"wrong type", `"seven"`},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mem := newStore(t)
			require.NoError(t, mem.SaveSetting(KeyDuration, tt.raw))
			assert.Equal(t, DefaultDuration, s.Duration())
		})
	}
}

func TestSet_WriteFailureReturnsFalse(t *testing.T) {
	s, mem := newStore(t)
	mem.FailWrites = true

	assert.False(t, s.Set(KeyMode, "auto"))
	assert.False(t, s.SetDarkMode(true))
	_, ok := mem.Raw(KeyMode)
	assert.False(t, ok)
}

func TestSet_UnencodableValue(t *testing.T) {
	s, _ := newStore(t)
	assert.False(t, s.Set("bad", make(chan int)))
}

func TestTypedAccessors_Defaults(t *testing.T) {
	s, _ := newStore(t)

	assert.Equal(t, "manual", s.Mode())
	assert.Equal(t, "theme-a", s.Theme())
	assert.Equal(t, 5, s.Duration())
	assert.Equal(t, 500, s.TransitionSpeed())
	assert.False(t, s.DarkMode())
	assert.Empty(t, s.Captions())
	assert.Nil(t, s.Photos())
}

func TestTypedAccessors_RoundTrip(t *testing.T) {
	s, _ := newStore(t)

	require.True(t, s.SetMode("random"))
	require.True(t, s.SetTheme("theme-b"))
	require.True(t, s.SetDuration(12))
	require.True(t, s.SetTransitionSpeed(900))
	require.True(t, s.SetDarkMode(true))

	assert.Equal(t, "random", s.Mode())
	assert.Equal(t, "theme-b", s.Theme())
	assert.Equal(t, 12, s.Duration())
	assert.Equal(t, 900, s.TransitionSpeed())
	assert.True(t, s.DarkMode())
}

func TestRemoveAndClearAll(t *testing.T) {
	s, mem := newStore(t)
	require.True(t, s.SetMode("auto"))
	require.True(t, s.SetTheme("theme-c"))
	require.NoError(t, mem.SaveSetting("other_app", "1"))

	s.Remove(KeyMode)
	assert.Equal(t, DefaultMode, s.Mode())
	assert.Equal(t, "theme-c", s.Theme())

	s.ClearAll()
	assert.Equal(t, DefaultTheme, s.Theme())
	assert.Equal(t, []string{"other_app"}, mem.Keys())
}

func TestRemove_FailureIsSwallowed(t *testing.T) {
	s, mem := newStore(t)
	mem.FailWrites = true
	s.Remove(KeyMode)
	s.ClearAll()
}

func TestCaptions(t *testing.T) {
	s, _ := newStore(t)

	_, ok := s.Caption("ocean-waves.jpg")
	assert.False(t, ok)

	require.True(t, s.SetCaption("ocean-waves.jpg", "Blue water"))
	require.True(t, s.SetCaption("forest-path.jpg", "Green"))
	require.True(t, s.SetCaption("ocean-waves.jpg", "Big waves"))

	got, ok := s.Caption("ocean-waves.jpg")
	assert.True(t, ok)
	assert.Equal(t, "Big waves", got)
	assert.Equal(t, map[string]string{
		"ocean-waves.jpg": "Big waves",
		"forest-path.jpg": "Green",
	}, s.Captions())
}

func TestCaption_EmptyCountsAsAbsent(t *testing.T) {
	s, _ := newStore(t)
	require.True(t, s.SetCaption("a.jpg", ""))
	_, ok := s.Caption("a.jpg")
	assert.False(t, ok)
}

func TestSettingsAndRestore(t *testing.T) {
	s, _ := newStore(t)

	got := s.Settings()
	assert.Equal(t, "manual", got.Mode)
	require.NotNil(t, got.DarkMode)
	assert.False(t, *got.DarkMode)

	dark := true
	require.True(t, s.Restore(Settings{Theme: "theme-d", Duration: 9, DarkMode: &dark}))

	got = s.Settings()
	assert.Equal(t, "manual", got.Mode, "unset mode left untouched")
	assert.Equal(t, "theme-d", got.Theme)
	assert.Equal(t, 9, got.Duration)
	assert.Equal(t, DefaultTransitionSpeed, got.TransitionSpeed)
	assert.True(t, *got.DarkMode)
}

func TestRestore_ReportsFailure(t *testing.T) {
	s, mem := newStore(t)
	mem.FailWrites = true
	assert.False(t, s.Restore(Settings{Mode: "auto"}))
	assert.True(t, s.Restore(Settings{}), "nothing to write")
}

func TestPhotos_RoundTrip(t *testing.T) {
	s, _ := newStore(t)
	photos := []PhotoRecord{
		{Name: "a.jpg", Source: "/tmp/a.jpg"},
		{Name: "b.png", Source: "/tmp/b.png"},
	}
	require.True(t, s.SetPhotos(photos))
	assert.Equal(t, photos, s.Photos())

	require.True(t, s.SetPhotos(nil))
	assert.Empty(t, s.Photos())
}

func TestStore_OverSQLite(t *testing.T) {
	m, err := state.Open(":memory:")
	require.NoError(t, err)
	defer m.Close()

	s := New(m, nil)
	require.True(t, s.SetTheme("theme-d"))
	require.True(t, s.SetCaption("ocean-waves.jpg", "Surf"))

	assert.Equal(t, "theme-d", s.Theme())
	c, ok := s.Caption("ocean-waves.jpg")
	assert.True(t, ok)
	assert.Equal(t, "Surf", c)

	s.ClearAll()
	assert.Equal(t, "theme-a", s.Theme())
}
