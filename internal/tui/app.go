// Package tui provides the interactive Bubble Tea dashboard for hayati.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/hayati-app/hayati/internal/ai"
	"github.com/hayati-app/hayati/internal/board"
	"github.com/hayati-app/hayati/internal/config"
	"github.com/hayati-app/hayati/internal/model"
	"github.com/hayati-app/hayati/internal/tui/components"
	"github.com/hayati-app/hayati/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Tab indices, matching components.Tabs order.
const (
	tabOverview = iota
	tabDeadlines
	tabTasks
	tabHabits
	tabPlanner
	tabHealth
	tabGoals
	tabMatch
	tabSettings
)

// MatchMsg is sent when the next-match lookup completes.
type MatchMsg struct {
	Match *model.Match
	Err   error
}

// tickMsg fires once per second to drive countdowns and the clock.
type tickMsg time.Time

// App is the root Bubble Tea model.
type App struct {
	cfg   config.Config
	board *board.Board
	aiCli *ai.Client

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	now       time.Time
	flash     string
	flashTTL  time.Time

	// Per-tab cursors
	cursors [9]int

	// Tasks tab
	taskScope board.TaskScope

	// Planner tab
	planDay time.Weekday

	// Inline text entry (add task/habit/goal/plan item, record weight)
	input       textinput.Model
	inputActive bool
	inputKind   inputKind

	// Modal forms (huh)
	deadlineForm *huh.Form
	deadlineVals deadlineValues
	healthForm   *huh.Form
	healthVals   healthValues

	// Match tab
	match         *model.Match
	matchFetched  time.Time
	matchFetching bool
	matchErr      error

	// First-run setup
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool
}

type inputKind int

const (
	inputNone inputKind = iota
	inputAddTask
	inputAddHabit
	inputAddGoal
	inputAddPlanTask
	inputRecordWeight
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 160
	minContentHeight = 5
)

// NewApp creates the root TUI model.
func NewApp(cfg config.Config, b *board.Board) App {
	a := App{
		cfg:       cfg,
		board:     b,
		aiCli:     ai.NewClient(config.GetAPIKey(cfg), cfg.AI.Model),
		now:       time.Now(),
		planDay:   time.Now().Weekday(),
		needSetup: !config.Exists(),
	}
	if a.needSetup {
		a.setupForm = newSetupForm(&a.setupVals)
	}
	if mc, ok := b.CachedMatch(a.matchTTL()); ok {
		a.match = mc.Match
		a.matchFetched = mc.FetchedAt
	}
	return a
}

func (a App) matchTTL() time.Duration {
	hours := a.cfg.Match.CacheHours
	if hours <= 0 {
		hours = 6
	}
	return time.Duration(hours) * time.Hour
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnableMouseCellMotion,
		tickCmd(),
	}
	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	// Warm the match widget if the cache missed and AI is configured
	if a.match == nil && a.matchFetched.IsZero() && a.aiCli != nil {
		a.matchFetching = true
		cmds = append(cmds, fetchMatchCmd(a.aiCli, a.cfg.Match.Team))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tickMsg:
		a.now = time.Time(msg)
		if a.flash != "" && a.now.After(a.flashTTL) {
			a.flash = ""
		}
		return a, tickCmd()

	case MatchMsg:
		a.matchFetching = false
		a.matchErr = msg.Err
		if msg.Err == nil {
			a.match = msg.Match
			a.matchFetched = a.now
			_ = a.board.SaveMatch(msg.Match)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.inputActive || a.formActive() {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.moveCursor(-1)
			return a, nil
		case tea.MouseButtonWheelDown:
			a.moveCursor(1)
			return a, nil
		case tea.MouseButtonLeft:
			if msg.Y <= 1 {
				if tab := components.TabAtX(msg.X, msg.Y, a.activeTab); tab >= 0 {
					a.activeTab = tab
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)
	}

	if a.formActive() {
		return a.updateForms(msg)
	}
	return a, nil
}

func (a App) formActive() bool {
	return (a.needSetup && a.setupForm != nil) || a.deadlineForm != nil || a.healthForm != nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if a.formActive() {
		return a.updateForms(msg)
	}

	if a.inputActive {
		return a.updateInput(msg)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	// Digit shortcuts jump straight to a tab; letters stay free for
	// list actions.
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		a.activeTab = int(key[0] - '1')
		return a, nil
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "left", "shift+tab":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	case "j", "down":
		a.moveCursor(1)
		return a, nil
	case "k", "up":
		a.moveCursor(-1)
		return a, nil
	}

	return a.updateTabKey(key)
}

// updateTabKey dispatches tab-specific actions.
func (a App) updateTabKey(key string) (tea.Model, tea.Cmd) {
	switch a.activeTab {
	case tabDeadlines:
		switch key {
		case "a", "n":
			a.deadlineVals = deadlineValues{}
			a.deadlineForm = newDeadlineForm(&a.deadlineVals)
			return a, a.deadlineForm.Init()
		case "d", "x":
			ds := a.board.Deadlines()
			if i := a.cursors[tabDeadlines]; i < len(ds) {
				a.do(a.board.DeleteDeadline(ds[i].ID))
				a.clampCursor()
			}
		}

	case tabTasks:
		switch key {
		case "a":
			return a.startInput(inputAddTask, "new task")
		case "p":
			if a.taskScope == board.ScopeAcademic {
				a.taskScope = board.ScopePersonal
			} else {
				a.taskScope = board.ScopeAcademic
			}
			a.cursors[tabTasks] = 0
		case " ", "enter":
			ts := a.board.Tasks(a.taskScope)
			if i := a.cursors[tabTasks]; i < len(ts) {
				a.do(a.board.ToggleTask(a.taskScope, ts[i].ID))
			}
		case "d", "x":
			ts := a.board.Tasks(a.taskScope)
			if i := a.cursors[tabTasks]; i < len(ts) {
				a.do(a.board.DeleteTask(a.taskScope, ts[i].ID))
				a.clampCursor()
			}
		}

	case tabHabits:
		switch key {
		case "a":
			return a.startInput(inputAddHabit, "new habit")
		case " ", "enter":
			hs := a.board.Habits()
			if i := a.cursors[tabHabits]; i < len(hs) {
				a.do(a.board.ToggleHabit(hs[i].ID))
			}
		case "d", "x":
			hs := a.board.Habits()
			if i := a.cursors[tabHabits]; i < len(hs) {
				a.do(a.board.DeleteHabit(hs[i].ID))
				a.clampCursor()
			}
		}

	case tabPlanner:
		switch key {
		case "h":
			a.planDay = (a.planDay + 6) % 7
			a.cursors[tabPlanner] = 0
		case "l":
			a.planDay = (a.planDay + 1) % 7
			a.cursors[tabPlanner] = 0
		case "a":
			return a.startInput(inputAddPlanTask, "plan for "+a.planDay.String())
		case "d", "x":
			tasks := a.board.Plan().Days[a.planDay]
			if i := a.cursors[tabPlanner]; i < len(tasks) {
				a.do(a.board.DeletePlanTask(a.planDay, tasks[i].ID))
				a.clampCursor()
			}
		}

	case tabHealth:
		switch key {
		case "w":
			return a.startInput(inputRecordWeight, "weight (kg)")
		case "e":
			info := a.board.Health()
			a.healthVals = healthValuesFrom(info)
			a.healthForm = newHealthForm(&a.healthVals)
			return a, a.healthForm.Init()
		}

	case tabGoals:
		switch key {
		case "a":
			return a.startInput(inputAddGoal, "new goal")
		case " ", "enter":
			gs := a.board.Goals()
			if i := a.cursors[tabGoals]; i < len(gs) {
				a.do(a.board.ToggleGoal(gs[i].ID))
			}
		case "d", "x":
			gs := a.board.Goals()
			if i := a.cursors[tabGoals]; i < len(gs) {
				a.do(a.board.DeleteGoal(gs[i].ID))
				a.clampCursor()
			}
		}

	case tabMatch:
		if key == "r" && !a.matchFetching {
			if a.aiCli == nil {
				a.setFlash("no API key configured; run hayati setup")
				return a, nil
			}
			a.matchFetching = true
			a.matchErr = nil
			return a, fetchMatchCmd(a.aiCli, a.cfg.Match.Team)
		}

	case tabSettings:
		if key == "t" {
			a.cfg.Appearance.Theme = theme.NextName(a.cfg.Appearance.Theme)
			theme.SetActive(a.cfg.Appearance.Theme)
			_ = config.Save(a.cfg)
		}
	}
	return a, nil
}

// ─── Inline input ───────────────────────────────────────────────

func (a App) startInput(kind inputKind, placeholder string) (tea.Model, tea.Cmd) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 120
	ti.Width = 40
	ti.Focus()
	a.input = ti
	a.inputActive = true
	a.inputKind = kind
	return a, textinput.Blink
}

func (a App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.inputActive = false
		a.inputKind = inputNone
		return a, nil
	case "enter":
		text := strings.TrimSpace(a.input.Value())
		a.inputActive = false
		kind := a.inputKind
		a.inputKind = inputNone
		a.commitInput(kind, text)
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) commitInput(kind inputKind, text string) {
	if text == "" {
		return
	}
	switch kind {
	case inputAddTask:
		_, err := a.board.AddTask(a.taskScope, text)
		a.do(err)
	case inputAddHabit:
		_, err := a.board.AddHabit(text)
		a.do(err)
	case inputAddGoal:
		_, err := a.board.AddGoal(text)
		a.do(err)
	case inputAddPlanTask:
		_, err := a.board.AddPlanTask(a.planDay, text)
		a.do(err)
	case inputRecordWeight:
		kg, err := parseWeight(text)
		if err != nil {
			a.setFlash(err.Error())
			return
		}
		a.do(a.board.RecordWeight(kg))
	}
}

// ─── Cursor helpers ─────────────────────────────────────────────

func (a *App) listLen() int {
	switch a.activeTab {
	case tabDeadlines:
		return len(a.board.Deadlines())
	case tabTasks:
		return len(a.board.Tasks(a.taskScope))
	case tabHabits:
		return len(a.board.Habits())
	case tabPlanner:
		return len(a.board.Plan().Days[a.planDay])
	case tabGoals:
		return len(a.board.Goals())
	default:
		return 0
	}
}

func (a *App) moveCursor(delta int) {
	n := a.listLen()
	if n == 0 {
		a.cursors[a.activeTab] = 0
		return
	}
	c := a.cursors[a.activeTab] + delta
	if c < 0 {
		c = 0
	}
	if c > n-1 {
		c = n - 1
	}
	a.cursors[a.activeTab] = c
}

func (a *App) clampCursor() {
	n := a.listLen()
	if a.cursors[a.activeTab] >= n {
		a.cursors[a.activeTab] = n - 1
	}
	if a.cursors[a.activeTab] < 0 {
		a.cursors[a.activeTab] = 0
	}
}

// do surfaces a board error in the flash line. Storage never crashes
// the dashboard.
func (a *App) do(err error) {
	if err != nil {
		a.setFlash(err.Error())
	}
}

func (a *App) setFlash(msg string) {
	a.flash = msg
	a.flashTTL = a.now.Add(4 * time.Second)
}

// ─── View ───────────────────────────────────────────────────────

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}
	if a.deadlineForm != nil {
		return a.deadlineForm.View()
	}
	if a.healthForm != nil {
		return a.healthForm.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	hints := a.tabHints()
	statusBar := components.RenderStatusBar(w, a.now, hints, a.flash)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabDeadlines:
		content = a.renderDeadlinesTab(cw)
	case tabTasks:
		content = a.renderTasksTab(cw)
	case tabHabits:
		content = a.renderHabitsTab(cw)
	case tabPlanner:
		content = a.renderPlannerTab(cw)
	case tabHealth:
		content = a.renderHealthTab(cw)
	case tabGoals:
		content = a.renderGoalsTab(cw)
	case tabMatch:
		content = a.renderMatchTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	if a.inputActive {
		content += "\n" + a.renderInputLine(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) renderInputLine(cw int) string {
	t := theme.Active
	label := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render(" > ")
	return label + a.input.View()
}

// tabHints returns the context line for the status bar.
func (a App) tabHints() string {
	switch a.activeTab {
	case tabDeadlines:
		return "[a]dd [d]elete"
	case tabTasks:
		return "[a]dd [space]toggle [d]elete [p]scope"
	case tabHabits:
		return "[a]dd [space]done today [d]elete"
	case tabPlanner:
		return "[h/l]day [a]dd [d]elete"
	case tabHealth:
		return "[w]eigh-in [e]dit info"
	case tabGoals:
		return "[a]dd [space]toggle [d]elete"
	case tabMatch:
		return "[r]efresh"
	case tabSettings:
		return "[t]heme"
	default:
		return "[1-9]tabs [?]help"
	}
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}
	msg := "\n  Terminal too narrow.\n\n  hayati needs at least " +
		lipgloss.NewStyle().Bold(true).Render("70") + " columns.\n"
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	for _, bind := range []struct{ key, desc string }{
		{"1-9", "Jump to tab"},
		{"← → / tab", "Previous / Next tab"},
		{"j k", "Move in lists"},
	} {
		b.WriteString("  " + keyStyle.Render(pad(bind.key, 12)) + descStyle.Render(bind.desc) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	for _, bind := range []struct{ key, desc string }{
		{"a", "Add item"},
		{"space/enter", "Toggle item"},
		{"d / x", "Delete item"},
		{"w", "Record weight (Health)"},
		{"r", "Refresh match"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	} {
		b.WriteString("  " + keyStyle.Render(pad(bind.key, 12)) + descStyle.Render(bind.desc) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Commands and helpers ───────────────────────────────────────

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// fetchMatchCmd runs the next-match lookup in the background.
func fetchMatchCmd(client *ai.Client, team string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
		defer cancel()
		m, err := client.NextMatch(ctx, team, time.Now())
		return MatchMsg{Match: m, Err: err}
	}
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with the
// background color so gaps between cards stay filled.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
