// Package tui is the classroom-facing terminal interface: the home screen
// with the hero, the zone map, the quest player, the learn cards and the
// teacher dashboard.
package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ecoquest/internal/avatar"
	"ecoquest/internal/content"
	"ecoquest/internal/engine"
	"ecoquest/internal/export"
	"ecoquest/internal/models"
	"ecoquest/internal/registry"
)

type screen int

const (
	screenHome screen = iota
	screenMap
	screenQuest
	screenLearn
	screenTeacher
)

type inputMode int

const (
	inputNone inputMode = iota
	inputAddLearner
	inputClassName
	inputFind
	inputHeroName
)

type countdownTickMsg struct{}

type announceMsg string

type toastClearMsg struct{}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#35E09A")).
			Bold(true)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#061228")).
			Background(lipgloss.Color("#35E09A")).
			Bold(true).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3C3C5C")).
			Padding(1, 2)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD44D")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#777777"))

	toastStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#061228")).
			Background(lipgloss.Color("#FFD44D")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	lockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6A6A"))
)

// Model is the single bubbletea model for every screen.
type Model struct {
	seq *engine.Sequencer
	reg *registry.Registry
	lib *content.Library
	log *slog.Logger
	rng *rand.Rand

	screen screen
	width  int
	height int
	toast  string

	mapCursor    int
	itemCursor   int
	deviceCursor int
	choiceCursor int

	factCursor  int
	showAnswer  bool
	quickWin    string
	storyHook   string

	teacherCursor int
	input         textinput.Model
	inputMode     inputMode
	filtered      []models.Learner
}

// NewModel builds the interface over an already-wired engine and registry.
func NewModel(seq *engine.Sequencer, reg *registry.Registry, lib *content.Library, log *slog.Logger) Model {
	ti := textinput.New()
	ti.CharLimit = 40
	ti.Width = 24

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))

	m := Model{
		seq:    seq,
		reg:    reg,
		lib:    lib,
		log:    log,
		rng:    rng,
		screen: screenHome,
		input:  ti,
	}
	if len(lib.QuickWins) > 0 {
		m.quickWin = lib.QuickWins[rng.IntN(len(lib.QuickWins))]
	}
	if len(lib.StoryHooks) > 0 {
		m.storyHook = lib.StoryHooks[rng.IntN(len(lib.StoryHooks))]
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func clearToast() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return toastClearMsg{} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case countdownTickMsg:
		// No-op unless a countdown round is live.
		_ = m.seq.TickCountdown()
		return m, nil

	case announceMsg:
		text := string(msg)
		if m.reg.Settings().ReadAloud {
			text = "🔊 " + text
		}
		m.toast = text
		return m, clearToast()

	case toastClearMsg:
		m.toast = ""
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.inputMode != inputNone {
			return m.updateInput(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.screen == screenQuest {
		return m.questKeys(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "h":
		m.screen = screenHome
		return m, nil
	case "tab":
		m.screen = m.nextScreen(1)
		return m, nil
	case "shift+tab":
		m.screen = m.nextScreen(-1)
		return m, nil
	}

	switch m.screen {
	case screenHome:
		return m.homeKeys(msg)
	case screenMap:
		return m.mapKeys(msg)
	case screenLearn:
		return m.learnKeys(msg)
	case screenTeacher:
		return m.teacherKeys(msg)
	}
	return m, nil
}

// nextScreen cycles through the tab order, skipping the quest tab unless a
// zone traversal is live.
func (m Model) nextScreen(dir int) screen {
	order := []screen{screenHome, screenMap, screenQuest, screenLearn, screenTeacher}
	cur := 0
	for i, s := range order {
		if s == m.screen {
			cur = i
			break
		}
	}
	for {
		cur = (cur + dir + len(order)) % len(order)
		next := order[cur]
		if next == screenQuest {
			if _, ok := m.seq.ActiveZone(); !ok {
				continue
			}
		}
		return next
	}
}

func (m Model) homeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		learner := m.reg.Active()
		m.reg.SetAvatar(avatar.Random(m.rng, learner.Stars))
		m.toast = "Random hero rolled 🎲"
		return m, clearToast()
	case "n":
		return m.startInput(inputHeroName, "Hero name...")
	case "enter":
		m.screen = screenMap
	}
	return m, nil
}

func (m Model) mapKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.mapCursor > 0 {
			m.mapCursor--
		}
	case "down", "j":
		if m.mapCursor < len(m.lib.Zones)-1 {
			m.mapCursor++
		}
	case "enter":
		zone := m.lib.Zones[m.mapCursor]
		if err := m.seq.EnterZone(zone.ID); err != nil {
			m.toast = enterError(err)
			return m, clearToast()
		}
		m.itemCursor, m.deviceCursor, m.choiceCursor = 0, 0, 0
		m.screen = screenQuest
	}
	return m, nil
}

func enterError(err error) string {
	switch {
	case errors.Is(err, engine.ErrZoneLocked):
		return "🔒 Locked! Finish the previous biome first."
	case errors.Is(err, engine.ErrZoneRestricted):
		return "🔒 Your teacher picked a different mission today."
	default:
		return err.Error()
	}
}

func (m Model) questKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.seq.ExitToMap()
		m.screen = screenMap
		return m, nil
	case "backspace", "left":
		if err := m.seq.Retreat(); err == nil {
			m.itemCursor, m.deviceCursor, m.choiceCursor = 0, 0, 0
		}
		return m, nil
	}

	if game := m.seq.Game(); game != nil && !game.IsComplete() {
		switch g := game.(type) {
		case *engine.Sorter:
			return m.sorterKeys(msg, g)
		case *engine.Countdown:
			return m.countdownKeys(msg, g)
		case *engine.Choice:
			return m.choiceKeys(msg, g)
		}
	}

	switch msg.String() {
	case "enter", "right", " ":
		if err := m.seq.Advance(); err != nil {
			if errors.Is(err, engine.ErrSceneNotReady) {
				m.toast = "Finish the activity first! ⭐"
				return m, clearToast()
			}
			return m, nil
		}
		m.itemCursor, m.deviceCursor, m.choiceCursor = 0, 0, 0
		if _, ok := m.seq.ActiveZone(); !ok {
			m.screen = screenMap
		}
	}
	return m, nil
}

func (m Model) sorterKeys(msg tea.KeyMsg, g *engine.Sorter) (tea.Model, tea.Cmd) {
	pending := pendingItems(g)
	if len(pending) == 0 {
		return m, nil
	}
	if m.itemCursor >= len(pending) {
		m.itemCursor = len(pending) - 1
	}

	switch msg.String() {
	case "up", "k":
		if m.itemCursor > 0 {
			m.itemCursor--
		}
	case "down", "j":
		if m.itemCursor < len(pending)-1 {
			m.itemCursor++
		}
	case "1", "2", "3":
		bin := content.Bins[int(msg.String()[0]-'1')]
		res, err := m.seq.AssignSortItem(pending[m.itemCursor].ID, bin)
		if err != nil {
			return m, nil
		}
		if res.First {
			m.toast = "⭐ Nice sort!"
		} else if !res.Correct {
			m.toast = "Oops, try another bin!"
		}
		if m.itemCursor >= res.Remaining && m.itemCursor > 0 {
			m.itemCursor--
		}
		return m, clearToast()
	}
	return m, nil
}

func (m Model) countdownKeys(msg tea.KeyMsg, g *engine.Countdown) (tea.Model, tea.Cmd) {
	devices := g.Devices()
	switch msg.String() {
	case "up", "k":
		if m.deviceCursor > 0 {
			m.deviceCursor--
		}
	case "down", "j":
		if m.deviceCursor < len(devices)-1 {
			m.deviceCursor++
		}
	case "enter", " ":
		_ = m.seq.ToggleDevice(devices[m.deviceCursor].ID)
	}
	return m, nil
}

func (m Model) choiceKeys(msg tea.KeyMsg, g *engine.Choice) (tea.Model, tea.Cmd) {
	options := g.Options()
	switch msg.String() {
	case "up", "k":
		if m.choiceCursor > 0 {
			m.choiceCursor--
		}
	case "down", "j":
		if m.choiceCursor < len(options)-1 {
			m.choiceCursor++
		}
	case "enter", " ":
		if res, err := m.seq.ChooseOption(m.choiceCursor); err == nil && res.Good {
			m.toast = "⭐ Great choice!"
			return m, clearToast()
		}
	}
	return m, nil
}

func (m Model) learnKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.factCursor > 0 {
			m.factCursor--
			m.showAnswer = false
		}
	case "down", "j":
		if m.factCursor < len(m.lib.Facts)-1 {
			m.factCursor++
			m.showAnswer = false
		}
	case "enter", " ":
		m.showAnswer = !m.showAnswer
	}
	return m, nil
}

func (m Model) teacherKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	roster := m.roster()
	if m.teacherCursor >= len(roster) && len(roster) > 0 {
		m.teacherCursor = len(roster) - 1
	}

	switch msg.String() {
	case "up", "k":
		if m.teacherCursor > 0 {
			m.teacherCursor--
		}
	case "down", "j":
		if m.teacherCursor < len(roster)-1 {
			m.teacherCursor++
		}
	case "enter":
		if len(roster) > 0 {
			if err := m.reg.SetActive(roster[m.teacherCursor].ID); err == nil {
				m.toast = fmt.Sprintf("Now playing: %s", roster[m.teacherCursor].Name)
				return m, clearToast()
			}
		}
	case "a":
		return m.startInput(inputAddLearner, "Student name...")
	case "c":
		return m.startInput(inputClassName, "Class name...")
	case "/":
		return m.startInput(inputFind, "Find student...")
	case "esc":
		m.filtered = nil
	case "m":
		m.reg.SetMission(nextMission(m.reg.Settings().Mission, m.lib.Zones))
		m.toast = "Mission: " + missionLabel(m.reg.Settings().Mission, m.lib)
		return m, clearToast()
	case "v":
		m.reg.SetReadAloud(!m.reg.Settings().ReadAloud)
	case "p":
		m.reg.SetProjectorMode(!m.reg.Settings().ProjectorMode)
	case "r":
		if len(roster) > 0 {
			if err := m.reg.ResetLearner(roster[m.teacherCursor].ID); err == nil {
				m.toast = "Progress reset for " + roster[m.teacherCursor].Name
				return m, clearToast()
			}
		}
	case "R":
		m.reg.ResetClass()
		m.filtered = nil
		m.teacherCursor = 0
		m.toast = "Class reset. Fresh start! 🌱"
		return m, clearToast()
	case "e":
		return m.exportRoster()
	case "x":
		if len(roster) > 0 {
			return m.exportCertificate(roster[m.teacherCursor])
		}
	}
	return m, nil
}

func (m Model) startInput(mode inputMode, placeholder string) (tea.Model, tea.Cmd) {
	m.inputMode = mode
	m.input.Placeholder = placeholder
	m.input.Reset()
	m.input.Focus()
	return m, textinput.Blink
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.inputMode = inputNone
		m.input.Blur()
		return m, nil

	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		mode := m.inputMode
		m.inputMode = inputNone
		m.input.Blur()

		switch mode {
		case inputAddLearner:
			if value == "" {
				return m, nil
			}
			l := m.reg.CreateLearner(value)
			m.toast = "Added " + l.Name + " 🎉"
			return m, clearToast()
		case inputClassName:
			m.reg.SetClassName(value)
			m.toast = "Class name saved"
			return m, clearToast()
		case inputFind:
			if value == "" {
				m.filtered = nil
				return m, nil
			}
			m.filtered = m.reg.FindByName(value)
			m.teacherCursor = 0
			return m, nil
		case inputHeroName:
			if value == "" {
				return m, nil
			}
			learner := m.reg.Active()
			cfg := learner.Avatar
			cfg.DisplayName = value
			m.reg.SetAvatar(avatar.Sanitize(cfg, learner.Stars))
			m.toast = "Hero saved ✅"
			return m, clearToast()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// roster returns the learners shown on the teacher screen, honoring an
// active find filter.
func (m Model) roster() []models.Learner {
	if m.filtered != nil {
		return m.filtered
	}
	return m.reg.Learners()
}

func (m Model) exportRoster() (tea.Model, tea.Cmd) {
	name := export.RosterFilename(m.reg.Settings().ClassName)
	f, err := os.Create(name)
	if err != nil {
		m.toast = "Export failed: " + err.Error()
		return m, clearToast()
	}
	defer f.Close()
	if err := export.WriteRoster(f, m.reg.Settings().ClassName, m.lib.Zones, m.reg.Learners()); err != nil {
		m.log.Error("roster export failed", "error", err)
		m.toast = "Export failed: " + err.Error()
		return m, clearToast()
	}
	m.toast = "Saved " + name + " ✅"
	return m, clearToast()
}

func (m Model) exportCertificate(l models.Learner) (tea.Model, tea.Cmd) {
	name := export.CertificateFilename(l)
	f, err := os.Create(name)
	if err != nil {
		m.toast = "Export failed: " + err.Error()
		return m, clearToast()
	}
	defer f.Close()
	if err := export.WriteCertificate(f, m.reg.Settings().ClassName, l); err != nil {
		m.log.Error("certificate export failed", "error", err)
		m.toast = "Export failed: " + err.Error()
		return m, clearToast()
	}
	m.toast = "Saved " + name + " 🏅"
	return m, clearToast()
}

func nextMission(current string, zones []content.Zone) string {
	order := []string{models.MissionAll}
	for _, z := range zones {
		order = append(order, z.ID)
	}
	for i, id := range order {
		if id == current {
			return order[(i+1)%len(order)]
		}
	}
	return models.MissionAll
}

func missionLabel(mission string, lib *content.Library) string {
	if mission == models.MissionAll {
		return "Full Adventure"
	}
	if zone, ok := lib.Zone(mission); ok {
		return zone.Name + " Only"
	}
	return mission
}

func (m Model) View() string {
	var body string
	switch m.screen {
	case screenHome:
		body = m.viewHome()
	case screenMap:
		body = m.viewMap()
	case screenQuest:
		body = m.viewQuest()
	case screenLearn:
		body = m.viewLearn()
	case screenTeacher:
		body = m.viewTeacher()
	}

	footer := ""
	if m.toast != "" {
		footer = toastStyle.Render(m.toast)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		body,
		footer,
	)
}

func (m Model) viewHeader() string {
	learner := m.reg.Active()
	settings := m.reg.Settings()

	tabs := []struct {
		s     screen
		label string
	}{
		{screenHome, "Home"},
		{screenMap, "Map"},
		{screenQuest, "Quest"},
		{screenLearn, "Learn"},
		{screenTeacher, "Teacher"},
	}
	var rendered []string
	for _, t := range tabs {
		if t.s == m.screen {
			rendered = append(rendered, activeTabStyle.Render(t.label))
		} else {
			rendered = append(rendered, tabStyle.Render(t.label))
		}
	}

	hud := fmt.Sprintf("%s  ⭐ %d  🏅 %s", learner.Name, learner.Stars, engine.CurrentBadge(learner.Stars))
	mission := dimStyle.Render("Mission: " + missionLabel(settings.Mission, m.lib))

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("🌍 Eco Quest Adventure"),
		lipgloss.JoinHorizontal(lipgloss.Top, rendered...)+"   "+hud+"  "+mission,
		"",
	)
}

func (m Model) viewHome() string {
	learner := m.reg.Active()

	card := fmt.Sprintf("Hero: %s\nPlayer: %s\n⭐ %d   🏅 %s",
		learner.Avatar.DisplayName, learner.Name, learner.Stars, engine.CurrentBadge(learner.Stars))

	lines := []string{
		cardStyle.Render(card),
		"",
		"💡 Quick win: " + m.quickWin,
		"📖 " + m.storyHook,
		dimStyle.Render(fmt.Sprintf("Stars unlock gear: ⭐5, ⭐12, ⭐20, ⭐30. You have ⭐ %d.", learner.Stars)),
	}
	if m.inputMode == inputHeroName {
		lines = append(lines, "", m.input.View())
	}
	lines = append(lines, "",
		helpStyle.Render("enter: map · r: random hero · n: name hero · tab: screens · q: quit"))
	return strings.Join(lines, "\n")
}

func (m Model) viewMap() string {
	learner := m.reg.Active()
	settings := m.reg.Settings()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Choose a biome") + "\n\n")
	for i, zone := range m.lib.Zones {
		cursor := "  "
		if i == m.mapCursor {
			cursor = cursorStyle.Render("▸ ")
		}

		status := ""
		switch {
		case learner.ZoneProgress[zone.ID]:
			status = " ✅"
		case !engine.ZoneEnterable(zone, learner.ZoneProgress):
			status = lockStyle.Render(" 🔒 finish " + zone.Requires + " first")
		case !engine.MissionAllows(settings.Mission, zone.ID):
			status = lockStyle.Render(" 🔒 teacher mission")
		}

		fmt.Fprintf(&b, "%s%s %s%s\n", cursor, zone.Icon, zone.Name, status)
		fmt.Fprintf(&b, "    %s\n", dimStyle.Render(zone.Desc))
	}
	b.WriteString("\n" + helpStyle.Render("↑/↓: move · enter: start · h: home"))
	return b.String()
}

func (m Model) viewQuest() string {
	scene, ok := m.seq.CurrentScene()
	if !ok {
		return dimStyle.Render("No quest running. Pick a biome on the map!")
	}

	idx, total := m.seq.SceneIndex()
	zoneID, _ := m.seq.ActiveZone()
	zone, _ := m.lib.Zone(zoneID)
	progress := dimStyle.Render(fmt.Sprintf("%s %s · scene %d of %d", zone.Icon, zone.Name, idx+1, total))

	var body string
	switch sc := scene.(type) {
	case content.Narrative:
		body = m.viewNarrative(sc)
	case content.SorterScene:
		body = m.viewSorter()
	case content.CountdownScene:
		body = m.viewCountdown()
	case content.ChoiceScene:
		body = m.viewChoice()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		progress,
		"",
		body,
		"",
		helpStyle.Render("enter: next · backspace: back · esc: map"),
	)
}

func (m Model) viewNarrative(sc content.Narrative) string {
	text := sc.Text
	if sc.Who != "" {
		text = fmt.Sprintf("%s %s\n\n%s", sc.Avatar, titleStyle.Render(sc.Who), text)
	}
	if sc.Why != "" {
		text += "\n\n" + dimStyle.Render("Why it matters: "+sc.Why)
	}
	return cardStyle.Render(text)
}

func (m Model) viewSorter() string {
	g, ok := m.seq.Game().(*engine.Sorter)
	if !ok {
		return ""
	}

	if g.IsComplete() {
		return cardStyle.Render("Sorter complete! ✅\n\nPress enter to continue.")
	}

	pending := pendingItems(g)
	cursor := m.itemCursor
	if cursor >= len(pending) {
		cursor = len(pending) - 1
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Sort it out!") + "\n")
	b.WriteString(fmt.Sprintf("%d to go. Bins: 1 ♻️ recycle · 2 🌱 compost · 3 🗑️ trash\n\n", g.Remaining()))
	for i, item := range pending {
		marker := "  "
		if i == cursor {
			marker = cursorStyle.Render("▸ ")
		}
		fmt.Fprintf(&b, "%s%s %s\n", marker, item.Emoji, item.Name)
	}
	b.WriteString("\n" + helpStyle.Render("↑/↓: pick item · 1/2/3: drop in bin"))
	return cardStyle.Render(b.String())
}

func (m Model) viewCountdown() string {
	g, ok := m.seq.Game().(*engine.Countdown)
	if !ok {
		return ""
	}

	if g.IsComplete() {
		outcome, _ := g.Outcome()
		return cardStyle.Render(outcome.Label + "\n\nPress enter to continue.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Energy countdown!") + "\n")
	fmt.Fprintf(&b, "⏱️  %d seconds left. Set every device right!\n\n", g.TimeLeft())
	for i, d := range g.Devices() {
		marker := "  "
		if i == m.deviceCursor {
			marker = cursorStyle.Render("▸ ")
		}
		state := "OFF"
		if d.On {
			state = "ON"
		}
		hint := ""
		if d.RequireOn {
			hint = dimStyle.Render(" (needs to stay on)")
		}
		fmt.Fprintf(&b, "%s%s %s — %s%s\n", marker, d.Emoji, d.Name, state, hint)
	}
	b.WriteString("\n" + helpStyle.Render("↑/↓: pick device · space: flip"))
	return cardStyle.Render(b.String())
}

func (m Model) viewChoice() string {
	g, ok := m.seq.Game().(*engine.Choice)
	if !ok {
		return ""
	}

	if g.IsComplete() {
		outcome, _ := g.Outcome()
		return cardStyle.Render(outcome.Label + "\n\nPress enter to continue.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(g.Prompt()) + "\n\n")
	for i, opt := range g.Options() {
		marker := "  "
		if i == m.choiceCursor {
			marker = cursorStyle.Render("▸ ")
		}
		fmt.Fprintf(&b, "%s%s\n", marker, opt.Label)
	}
	b.WriteString("\n" + helpStyle.Render("↑/↓: pick · enter: choose"))
	return cardStyle.Render(b.String())
}

func (m Model) viewLearn() string {
	if len(m.lib.Facts) == 0 {
		return dimStyle.Render("No facts loaded.")
	}
	fact := m.lib.Facts[m.factCursor]

	var b strings.Builder
	b.WriteString(titleStyle.Render("Eco facts") + "\n\n")
	for i, f := range m.lib.Facts {
		marker := "  "
		if i == m.factCursor {
			marker = cursorStyle.Render("▸ ")
		}
		fmt.Fprintf(&b, "%s%s %s\n", marker, f.Emoji, f.Question)
	}
	b.WriteString("\n")
	if m.showAnswer {
		b.WriteString(cardStyle.Render(fact.Answer))
	} else {
		b.WriteString(dimStyle.Render("Press enter to reveal the answer."))
	}
	b.WriteString("\n\n" + helpStyle.Render("↑/↓: pick card · enter: reveal · h: home"))
	return b.String()
}

func (m Model) viewTeacher() string {
	settings := m.reg.Settings()
	roster := m.roster()
	active := m.reg.Active()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Teacher dashboard") + "\n")
	className := settings.ClassName
	if className == "" {
		className = dimStyle.Render("(unnamed class)")
	}
	fmt.Fprintf(&b, "Class: %s · Mission: %s · Read aloud: %s · Projector: %s\n\n",
		className,
		missionLabel(settings.Mission, m.lib),
		onOff(settings.ReadAloud),
		onOff(settings.ProjectorMode))

	if m.filtered != nil {
		b.WriteString(dimStyle.Render(fmt.Sprintf("Showing %d match(es). esc clears the filter.", len(roster))) + "\n")
	}
	for i, l := range roster {
		marker := "  "
		if i == m.teacherCursor {
			marker = cursorStyle.Render("▸ ")
		}
		playing := ""
		if l.ID == active.ID {
			playing = " 🎮"
		}
		fmt.Fprintf(&b, "%s%-16s ⭐ %-3d 🏅 %s%s\n", marker, l.Name, l.Stars, engine.CurrentBadge(l.Stars), playing)
	}

	if m.inputMode != inputNone {
		b.WriteString("\n" + m.input.View())
	}

	b.WriteString("\n" + helpStyle.Render(
		"enter: select · a: add · /: find · c: class name · m: mission · r: reset · R: reset class"))
	b.WriteString("\n" + helpStyle.Render(
		"e: export CSV · x: certificate · v: read aloud · p: projector · h: home"))
	return b.String()
}

func onOff(on bool) string {
	if on {
		return "On"
	}
	return "Off"
}

func pendingItems(g *engine.Sorter) []content.SortItem {
	out := make([]content.SortItem, 0, len(g.Items()))
	for _, item := range g.Items() {
		if g.Pending(item.ID) {
			out = append(out, item)
		}
	}
	return out
}

// Run wires the engine's notifier and announcer to the program and blocks
// until the interface exits.
func Run(seq *engine.Sequencer, reg *registry.Registry, lib *content.Library, log *slog.Logger) error {
	p := tea.NewProgram(NewModel(seq, reg, lib, log), tea.WithAltScreen())

	seq.SetTickNotifier(func() { p.Send(countdownTickMsg{}) })
	// The announcer fires while Update runs, so hand the message off
	// asynchronously to keep the event loop free.
	seq.SetAnnouncer(func(text string) { go p.Send(announceMsg(text)) })

	_, err := p.Run()
	return err
}
