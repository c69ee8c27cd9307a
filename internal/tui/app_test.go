package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/hayati-app/hayati/internal/board"
	"github.com/hayati-app/hayati/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, a App, keys ...string) App {
	t.Helper()
	for _, k := range keys {
		m, _ := a.Update(keyMsg(k))
		var ok bool
		a, ok = m.(App)
		if !ok {
			t.Fatalf("Update returned %T, want App", m)
		}
	}
	return a
}

func testApp(t *testing.T) App {
	t.Helper()
	return App{board: board.New(store.Open(t.TempDir())), now: time.Now()}
}

func TestDigitKeysJumpTabs(t *testing.T) {
	a := testApp(t)

	a = press(t, a, "5")
	if a.activeTab != tabPlanner {
		t.Fatalf("after '5' activeTab = %d, want %d", a.activeTab, tabPlanner)
	}

	a = press(t, a, "1")
	if a.activeTab != tabOverview {
		t.Fatalf("after '1' activeTab = %d, want %d", a.activeTab, tabOverview)
	}

	a = press(t, a, "9")
	if a.activeTab != tabSettings {
		t.Fatalf("after '9' activeTab = %d, want %d", a.activeTab, tabSettings)
	}
}

func TestTabCyclingWraps(t *testing.T) {
	a := testApp(t)

	a = press(t, a, "left")
	if a.activeTab != tabSettings {
		t.Fatalf("left from first tab = %d, want %d", a.activeTab, tabSettings)
	}

	a = press(t, a, "tab")
	if a.activeTab != tabOverview {
		t.Fatalf("tab from last tab = %d, want %d", a.activeTab, tabOverview)
	}
}

func TestTickAdvancesClockAndExpiresFlash(t *testing.T) {
	a := testApp(t)
	a.setFlash("oops")

	at := a.now.Add(time.Second)
	m, _ := a.Update(tickMsg(at))
	a = m.(App)
	if !a.now.Equal(at) {
		t.Fatalf("now = %v, want %v", a.now, at)
	}
	if a.flash != "oops" {
		t.Fatal("flash should survive until its TTL")
	}

	later := at.Add(10 * time.Second)
	m, _ = a.Update(tickMsg(later))
	a = m.(App)
	if a.flash != "" {
		t.Fatalf("flash = %q, want expired", a.flash)
	}
}

func TestHelpOverlayToggles(t *testing.T) {
	a := testApp(t)

	a = press(t, a, "?")
	if !a.showHelp {
		t.Fatal("'?' should open help")
	}

	// Any key closes help without acting on the current tab
	a = press(t, a, "5")
	if a.showHelp {
		t.Fatal("help should close on any key")
	}
	if a.activeTab != tabOverview {
		t.Fatalf("key that closed help leaked through: tab = %d", a.activeTab)
	}
}

func TestInlineInputAddsTask(t *testing.T) {
	a := testApp(t)

	a = press(t, a, "3", "a")
	if !a.inputActive {
		t.Fatal("'a' on tasks tab should open the input line")
	}

	a = press(t, a, "buy milk", "enter")
	if a.inputActive {
		t.Fatal("enter should close the input line")
	}

	tasks := a.board.Tasks(board.ScopeAcademic)
	if len(tasks) != 1 || tasks[0].Text != "buy milk" {
		t.Fatalf("tasks = %+v, want one task 'buy milk'", tasks)
	}
}

func TestInlineInputEscCancels(t *testing.T) {
	a := testApp(t)

	a = press(t, a, "3", "a", "half typed", "esc")
	if a.inputActive {
		t.Fatal("esc should close the input line")
	}
	if got := a.board.Tasks(board.ScopeAcademic); len(got) != 0 {
		t.Fatalf("esc should not commit, got %d tasks", len(got))
	}
}

func TestScopeFlipResetsCursor(t *testing.T) {
	a := testApp(t)
	for _, text := range []string{"one", "two", "three"} {
		if _, err := a.board.AddTask(board.ScopeAcademic, text); err != nil {
			t.Fatalf("AddTask: %v", err)
		}
	}

	a = press(t, a, "3", "j", "j")
	if a.cursors[tabTasks] != 2 {
		t.Fatalf("cursor = %d, want 2", a.cursors[tabTasks])
	}

	a = press(t, a, "p")
	if a.taskScope != board.ScopePersonal {
		t.Fatal("'p' should flip to the personal scope")
	}
	if a.cursors[tabTasks] != 0 {
		t.Fatalf("scope flip should reset the cursor, got %d", a.cursors[tabTasks])
	}
}

func TestSetupSavesConfigAndRebuildsAIClient(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("GEMINI_API_KEY", "")

	a := testApp(t)
	if a.aiCli != nil {
		t.Fatal("no key configured, client should start nil")
	}

	a.setupVals = setupValues{apiKey: "k-123", team: "Al-Hilal", theme: "flexoki-dark"}
	if err := a.saveSetupConfig(); err != nil {
		t.Fatalf("saveSetupConfig: %v", err)
	}
	if a.aiCli == nil {
		t.Fatal("client not rebuilt after setup provided a key")
	}
	if a.cfg.AI.APIKey != "k-123" {
		t.Fatalf("cfg.AI.APIKey = %q, want the saved key", a.cfg.AI.APIKey)
	}
}

func TestHabitsTabRendersWeekChart(t *testing.T) {
	a := testApp(t)
	hs := a.board.Habits()
	if err := a.board.ToggleHabit(hs[0].ID); err != nil {
		t.Fatalf("ToggleHabit: %v", err)
	}

	out := a.renderHabitsTab(80)
	if !strings.Contains(out, "last 7 days") {
		t.Fatalf("habits tab missing the completions chart:\n%s", out)
	}
}

func TestGoalsTabShowsCompletionBar(t *testing.T) {
	a := testApp(t)
	g, err := a.board.AddGoal("ship it")
	if err != nil {
		t.Fatalf("AddGoal: %v", err)
	}
	if _, err := a.board.AddGoal("read more"); err != nil {
		t.Fatalf("AddGoal: %v", err)
	}
	if err := a.board.ToggleGoal(g.ID); err != nil {
		t.Fatalf("ToggleGoal: %v", err)
	}

	out := a.renderGoalsTab(80)
	if !strings.Contains(out, "50%") {
		t.Fatalf("goals tab missing the completion bar:\n%s", out)
	}
}

func TestMatchMsgStoresResult(t *testing.T) {
	a := testApp(t)
	a.matchFetching = true

	m, _ := a.Update(MatchMsg{Match: nil, Err: nil})
	a = m.(App)
	if a.matchFetching {
		t.Fatal("MatchMsg should clear the fetching flag")
	}
	if a.match != nil {
		t.Fatal("nil match result should be kept as 'nothing scheduled'")
	}
}
