package confirm

import (
	"testing"

	"github.com/llehouerou/slides/internal/ui/action"
	"github.com/llehouerou/slides/internal/ui/testutil"
)

const testContext = "ctx"

func newTestConfirm(title, message string, context any) *testutil.PopupHarness {
	m := New()
	m.Show(title, message, context, 80, 24)
	return testutil.NewPopupHarness(&m)
}

func getResult(t *testing.T, h *testutil.PopupHarness) Result {
	t.Helper()
	cmd := h.LastCommand()
	if cmd == nil {
		t.Fatal("expected command, got nil")
	}
	msg := testutil.ExecuteCmd(cmd)
	actionMsg, ok := msg.(action.Msg)
	if !ok {
		t.Fatalf("expected action.Msg, got %T", msg)
	}
	result, ok := actionMsg.Action.(Result)
	if !ok {
		t.Fatalf("expected Result, got %T", actionMsg.Action)
	}
	return result
}

// Yes/No mode tests

func TestYesNoMode_ConfirmWithEnter(t *testing.T) {
	h := newTestConfirm("Clear all photos?", "Are you sure?", testContext)

	h.SendEnter()

	result := getResult(t, h)
	if !result.Confirmed {
		t.Error("expected Confirmed=true")
	}
	if result.Context != testContext {
		t.Errorf("Context = %v, want %q", result.Context, testContext)
	}
}

func TestYesNoMode_ConfirmWithY(t *testing.T) {
	h := newTestConfirm("Clear all photos?", "Are you sure?", nil)

	h.SendKey("y")

	result := getResult(t, h)
	if !result.Confirmed {
		t.Error("expected Confirmed=true with 'y'")
	}
}

func TestYesNoMode_ConfirmWithUpperY(t *testing.T) {
	h := newTestConfirm("Clear all photos?", "Are you sure?", nil)

	h.SendKey("Y")

	result := getResult(t, h)
	if !result.Confirmed {
		t.Error("expected Confirmed=true with 'Y'")
	}
}

func TestYesNoMode_CancelWithEscape(t *testing.T) {
	h := newTestConfirm("Clear all photos?", "Are you sure?", testContext)

	h.SendEscape()

	result := getResult(t, h)
	if result.Confirmed {
		t.Error("expected Confirmed=false")
	}
	if result.Context != testContext {
		t.Errorf("Context = %v, want %q", result.Context, testContext)
	}
}

func TestYesNoMode_CancelWithN(t *testing.T) {
	h := newTestConfirm("Clear all photos?", "Are you sure?", nil)

	h.SendKey("n")

	result := getResult(t, h)
	if result.Confirmed {
		t.Error("expected Confirmed=false with 'n'")
	}
}

func TestYesNoMode_CancelWithUpperN(t *testing.T) {
	h := newTestConfirm("Clear all photos?", "Are you sure?", nil)

	h.SendKey("N")

	result := getResult(t, h)
	if result.Confirmed {
		t.Error("expected Confirmed=false with 'N'")
	}
}

func TestYesNoMode_View(t *testing.T) {
	h := newTestConfirm("Reset preferences?", "This cannot be undone", nil)

	if err := h.AssertViewContains("Reset preferences?"); err != "" {
		t.Error(err)
	}
	if err := h.AssertViewContains("This cannot be undone"); err != "" {
		t.Error(err)
	}
	if err := h.AssertViewContains("Enter/Y: confirm"); err != "" {
		t.Error(err)
	}
}

func TestDestructive_View(t *testing.T) {
	m := New()
	m.ShowDestructive("Clear all photos?", "Removes every photo from the slideshow", "clear", 80, 24)
	h := testutil.NewPopupHarness(&m)

	if err := h.AssertViewContains("Clear all photos?"); err != "" {
		t.Error(err)
	}

	h.SendKey("y")
	result := getResult(t, h)
	if !result.Confirmed || result.Context != "clear" {
		t.Errorf("result = %+v, want confirmed with context", result)
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	h := newTestConfirm("Reset?", "Restore defaults", nil)
	h.ClearCommands()

	h.SendKey("x")
	h.SendDown()

	if len(h.Commands()) != 0 {
		t.Error("unrelated keys should not produce commands")
	}
	if err := h.AssertViewContains("Reset?"); err != "" {
		t.Error("popup should stay open: " + err)
	}
}

func TestAnswerClosesPopup(t *testing.T) {
	h := newTestConfirm("Reset?", "Restore defaults", nil)

	h.SendEnter()
	h.ClearCommands()
	h.SendEnter()

	if len(h.Commands()) != 0 {
		t.Error("second answer should be ignored")
	}
	if h.View() != "" {
		t.Errorf("view after answer = %q, want empty", h.View())
	}
}

// Inactive state tests

func TestInactive_NoCommandOnKey(t *testing.T) {
	m := New() // Not shown, inactive
	h := testutil.NewPopupHarness(&m)
	h.ClearCommands()

	h.SendEnter()
	h.SendKey("y")

	if len(h.Commands()) != 0 {
		t.Error("inactive popup should not produce commands")
	}
}

func TestInactive_EmptyView(t *testing.T) {
	m := New() // Not shown, inactive
	h := testutil.NewPopupHarness(&m)

	if h.View() != "" {
		t.Errorf("inactive popup view = %q, want empty", h.View())
	}
}

func TestReset(t *testing.T) {
	m := New()
	m.Show("Title", "Message", "context", 80, 24)

	if !m.Active() {
		t.Error("expected Active=true after Show")
	}

	m.Reset()

	if m.Active() {
		t.Error("expected Active=false after Reset")
	}
}
