package photoview

import "testing"

var terminalEnv = []string{
	"KITTY_WINDOW_ID", "TERM", "TERM_PROGRAM", "GHOSTTY_RESOURCES_DIR",
	"KONSOLE_VERSION", "CONTOUR_PROFILE", EnvProtocol,
}

func clearTerminalEnv(t *testing.T) {
	t.Helper()
	for _, key := range terminalEnv {
		t.Setenv(key, "")
	}
}

func TestIsKittySupported(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		envVal string
		want   bool
	}{
		{"KITTY_WINDOW_ID", "KITTY_WINDOW_ID", "1", true},
		{"TERM xterm-kitty", "TERM", "xterm-kitty", true},
		{"TERM_PROGRAM WezTerm", "TERM_PROGRAM", "WezTerm", true},
		{"GHOSTTY_RESOURCES_DIR", "GHOSTTY_RESOURCES_DIR", "/some/path", true},
		{"KONSOLE_VERSION 2204xx", "KONSOLE_VERSION", "220400", true},
		{"KONSOLE_VERSION old", "KONSOLE_VERSION", "210000", false},
		{"TERM contains kitty", "TERM", "something-kitty", true},
		{"no support", "TERM", "xterm-256color", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearTerminalEnv(t)
			t.Setenv(tt.envVar, tt.envVal)

			if got := IsKittySupported(); got != tt.want {
				t.Errorf("IsKittySupported() with %s=%s = %v, want %v",
					tt.envVar, tt.envVal, got, tt.want)
			}
		})
	}
}

func TestIsKittySupported_ContourWins(t *testing.T) {
	clearTerminalEnv(t)
	t.Setenv("GHOSTTY_RESOURCES_DIR", "/leaked")
	t.Setenv("CONTOUR_PROFILE", "main")

	if IsKittySupported() {
		t.Error("Contour should not be treated as kitty")
	}
	if !IsSixelSupported() {
		t.Error("Contour supports sixel")
	}
}

func TestIsSixelSupported(t *testing.T) {
	tests := []struct {
		envVar, envVal string
		want           bool
	}{
		{"TERM", "foot", true},
		{"TERM", "xterm-256color", true},
		{"TERM_PROGRAM", "vscode", true},
		{"TERM_PROGRAM", "iTerm.app", true},
		{"TERM", "linux", false},
		{"TERM", "screen", false},
	}
	for _, tt := range tests {
		t.Run(tt.envVar+"="+tt.envVal, func(t *testing.T) {
			clearTerminalEnv(t)
			t.Setenv(tt.envVar, tt.envVal)
			if got := IsSixelSupported(); got != tt.want {
				t.Errorf("IsSixelSupported() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetect_Override(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"kitty", "kitty"},
		{"sixel", "sixel"},
		{"none", ""},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			clearTerminalEnv(t)
			// Would be detected as kitty without the override
			t.Setenv("KITTY_WINDOW_ID", "1")
			t.Setenv(EnvProtocol, tt.value)

			p := Detect()
			got := ""
			if p != nil {
				got = p.Name()
			}
			if got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetect_NothingSupported(t *testing.T) {
	clearTerminalEnv(t)
	t.Setenv("TERM", "linux")

	if p := Detect(); p != nil {
		t.Errorf("Detect() = %s, want nil", p.Name())
	}
}
