package tui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/showcase/internal/carousel"
	"github.com/jask/showcase/internal/config"
	"github.com/jask/showcase/internal/database/repository"
	"github.com/jask/showcase/internal/service"
)

const (
	appName   = "showcase"
	bodyTop   = 5 // header, title, subtitle, controls, blank
	chromeRow = 6 // blank, progress, dots, info, status, footer

	loadTimeout = 5 * time.Second
)

// Source supplies decks and their cards.
type Source interface {
	Decks(ctx context.Context) ([]repository.Deck, error)
	Load(ctx context.Context, slug, category string) (repository.Deck, []carousel.Item, carousel.Config, error)
	Categories(ctx context.Context, slug string) ([]string, error)
}

// Options tune the initial screen.
type Options struct {
	Deck  string
	Grid  bool
	Clock carousel.Clock
}

type press struct {
	x    int
	card int
}

// Model is the bubbletea model around one carousel controller. The
// controller's listener only signals channels; every field here is touched on
// the bubbletea goroutine.
type Model struct {
	src  Source
	cfg  config.Config
	keys *KeyRegistry

	ctrl       *carousel.Controller
	unsub      func()
	dirty      chan struct{}
	selections chan carousel.Selection

	state carousel.State
	items []carousel.Item
	ccfg  carousel.Config

	decks      []repository.Deck
	deckIdx    int
	deck       repository.Deck
	categories []string
	catIdx     int
	startGrid  bool

	// only the newest deck and filter loads are applied
	deckSeq  int
	itemsSeq int

	strip *strip
	sync  *carousel.ScrollSync
	press *press

	progress  progress.Model
	help      help.Model
	search    textinput.Model
	searching bool
	showHelp  bool
	detail    *carousel.Item

	status    string
	statusErr bool
	statusID  int

	width  int
	height int
}

type deckLoadedMsg struct {
	seq        int
	slug       string
	decks      []repository.Deck
	deck       repository.Deck
	items      []carousel.Item
	cfg        carousel.Config
	categories []string
	err        error
}

type itemsLoadedMsg struct {
	seq      int
	slug     string
	category string
	items    []carousel.Item
	err      error
}

type carouselChangedMsg struct{}

type selectedMsg struct{ sel carousel.Selection }

type clearStatusMsg struct{ id int }

// New builds the model and subscribes it to a fresh controller.
func New(src Source, cfg config.Config, opts Options) (Model, error) {
	var copts []carousel.Option
	if opts.Clock != nil {
		copts = append(copts, carousel.WithClock(opts.Clock))
	}
	m := Model{
		src:        src,
		cfg:        cfg,
		keys:       NewKeyRegistry(),
		ctrl:       carousel.New(copts...),
		dirty:      make(chan struct{}, 1),
		selections: make(chan carousel.Selection, 4),
		startGrid:  opts.Grid,
		strip:      newStrip(),
		progress: progress.New(
			progress.WithScaledGradient(string(colorMauve), string(colorPink)),
			progress.WithoutPercentage(),
		),
		help:       help.New(),
		categories: []string{service.AllCategories},
	}
	m.sync = carousel.NewScrollSync(m.strip)
	m.deck.Slug = opts.Deck
	if m.deck.Slug == "" {
		m.deck.Slug = cfg.UI.Deck
	}

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search cards"
	ti.CharLimit = 64
	m.search = ti

	dirty, selections := m.dirty, m.selections
	unsub, err := m.ctrl.Subscribe(func(ev carousel.Event) {
		if ev.Kind == carousel.EventSelect {
			select {
			case selections <- ev.Selection:
			default:
			}
			return
		}
		select {
		case dirty <- struct{}{}:
		default:
		}
	})
	if err != nil {
		m.ctrl.Close()
		return Model{}, fmt.Errorf("subscribe: %w", err)
	}
	m.unsub = unsub
	return m, nil
}

// Close stops autoplay and detaches from the controller.
func (m Model) Close() {
	if m.unsub != nil {
		m.unsub()
	}
	m.ctrl.Close()
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(loadDeckCmd(m.src, m.deck.Slug, m.deckSeq), waitForCarousel(m.dirty, m.selections))
}

func waitForCarousel(dirty <-chan struct{}, selections <-chan carousel.Selection) tea.Cmd {
	return func() tea.Msg {
		select {
		case sel := <-selections:
			return selectedMsg{sel: sel}
		case <-dirty:
			return carouselChangedMsg{}
		}
	}
}

func loadDeckCmd(src Source, slug string, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		msg := deckLoadedMsg{seq: seq, slug: slug}
		decks, err := src.Decks(ctx)
		if err != nil {
			msg.err = err
			return msg
		}
		msg.decks = decks
		msg.deck, msg.items, msg.cfg, msg.err = src.Load(ctx, slug, "")
		if msg.err != nil {
			return msg
		}
		msg.categories, msg.err = src.Categories(ctx, msg.deck.Slug)
		return msg
	}
}

func loadItemsCmd(src Source, slug, category string, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		_, items, _, err := src.Load(ctx, slug, category)
		return itemsLoadedMsg{seq: seq, slug: slug, category: category, items: items, err: err}
	}
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.status = text
	m.statusErr = isErr
	m.statusID++
	id := m.statusID
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.strip.resize(msg.Width)
		m.progress.Width = max(10, msg.Width-2*stripInset-12)
		m.help.Width = msg.Width
		m.sync.OnIndexChange(m.state.CurrentIndex)
		m.strip.jump()
		return m, nil

	case deckLoadedMsg:
		return m.applyDeck(msg)

	case itemsLoadedMsg:
		if msg.seq != m.itemsSeq || msg.slug != m.deck.Slug {
			return m, nil
		}
		if msg.err != nil {
			cmd := m.setStatus("load cards: "+msg.err.Error(), true)
			return m, cmd
		}
		if err := m.ctrl.SetItems(msg.items); err != nil {
			log.Printf("deck %s: %v", m.deck.Slug, err)
		}
		m.items = m.ctrl.Items()
		m.strip.reset(len(m.items), m.stripVariant())
		cmd := m.refresh()
		m.strip.jump()
		status := m.setStatus(fmt.Sprintf("%s: %d cards", msg.category, len(m.items)), false)
		return m, tea.Batch(cmd, status)

	case carouselChangedMsg:
		cmd := tea.Batch(m.refresh(), waitForCarousel(m.dirty, m.selections))
		return m, cmd

	case selectedMsg:
		cmd := m.refresh()
		if msg.sel.Index >= 0 && msg.sel.Index < len(m.items) && m.items[msg.sel.Index].Key == msg.sel.Key {
			it := m.items[msg.sel.Index]
			m.detail = &it
			m.ctrl.SetSuspended(true)
		}
		return m, tea.Batch(cmd, waitForCarousel(m.dirty, m.selections))

	case frameMsg:
		if msg.gen != m.strip.gen {
			return m, nil
		}
		if m.strip.step() {
			return m, frameCmd(msg.gen)
		}
		return m, nil

	case progress.FrameMsg:
		pm, cmd := m.progress.Update(msg)
		if p, ok := pm.(progress.Model); ok {
			m.progress = p
		}
		return m, cmd

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
			m.statusErr = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m Model) applyDeck(msg deckLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.deckSeq {
		return m, nil
	}
	if msg.err != nil {
		// an unknown deck falls back to the first one
		if service.IsNotFound(msg.err) && msg.slug != "" && len(msg.decks) > 0 {
			m.deckSeq++
			status := m.setStatus(fmt.Sprintf("deck %q not found", msg.slug), true)
			return m, tea.Batch(status, loadDeckCmd(m.src, "", m.deckSeq))
		}
		cmd := m.setStatus("load deck: "+msg.err.Error(), true)
		return m, cmd
	}

	m.decks = msg.decks
	m.deck = msg.deck
	m.deckIdx = 0
	for i, d := range m.decks {
		if d.ID == msg.deck.ID {
			m.deckIdx = i
		}
	}
	m.categories = append([]string{service.AllCategories}, msg.categories...)
	m.catIdx = 0
	m.itemsSeq++

	var cmds []tea.Cmd
	if err := m.ctrl.Initialize(msg.items, msg.cfg); err != nil {
		log.Printf("deck %s: %v", msg.deck.Slug, err)
		cmds = append(cmds, m.setStatus("some cards were skipped", true))
	}
	if m.startGrid {
		m.ctrl.SetViewMode(carousel.ViewGrid)
		m.startGrid = false
	}
	m.ctrl.SetSuspended(false)
	m.detail = nil
	m.searching = false
	m.search.Blur()
	m.press = nil

	m.ccfg = m.ctrl.Config()
	m.items = m.ctrl.Items()
	m.strip.reset(len(m.items), m.stripVariant())
	cmds = append(cmds, m.refresh())
	m.strip.jump()
	return m, tea.Batch(cmds...)
}

func (m Model) stripVariant() carousel.Variant {
	return m.ccfg.Variant.CardVariant(carousel.ViewStrip)
}

// refresh pulls a new snapshot and reacts to what changed: the strip scrolls
// to a new index and the progress bar animates to the new value.
func (m *Model) refresh() tea.Cmd {
	prev := m.state
	m.state = m.ctrl.Snapshot()
	st := m.state

	var cmds []tea.Cmd
	if st.ViewMode != prev.ViewMode {
		m.strip.gen++
		m.strip.animating = false
		m.press = nil
	}
	if st.ViewMode == carousel.ViewStrip &&
		(st.CurrentIndex != prev.CurrentIndex || st.ItemCount != prev.ItemCount || st.ViewMode != prev.ViewMode) {
		wasAnimating := m.strip.animating
		if m.sync.OnIndexChange(st.CurrentIndex) && m.strip.animating && !wasAnimating {
			cmds = append(cmds, frameCmd(m.strip.gen))
		}
	}
	if st.Progress != prev.Progress {
		cmds = append(cmds, m.progress.SetPercent(st.Progress/100))
	}
	if m.detail != nil && st.ItemCount > 0 {
		if it, ok := m.ctrl.Current(); ok {
			m.detail = &it
		}
	}
	return tea.Batch(cmds...)
}

func (m Model) scope() string {
	switch {
	case m.showHelp:
		return scopeFullHelp
	case m.searching:
		return scopeSearch
	case m.detail != nil:
		return scopeDetail
	case m.state.ViewMode == carousel.ViewGrid:
		return scopeGrid
	default:
		return scopeStrip
	}
}

func (m Model) isAction(scope string, action Action, msg tea.KeyMsg) bool {
	b := m.keys.Lookup(msg.String(), scope)
	return b != nil && b.Action == action
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	scope := m.scope()

	if scope == scopeSearch {
		switch {
		case m.isAction(scope, actionSelect, msg):
			return m.runSearch()
		case m.isAction(scope, actionBack, msg):
			m.searching = false
			m.search.Blur()
			m.ctrl.SetSuspended(false)
			return m, nil
		case msg.String() == "ctrl+c":
			m.Close()
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	b := m.keys.Lookup(msg.String(), scope)
	if b == nil {
		return m, nil
	}
	n := m.state.ItemCount

	switch b.Action {
	case actionQuit:
		m.Close()
		return m, tea.Quit
	case actionHelp:
		m.showHelp = !m.showHelp
	case actionBack:
		switch scope {
		case scopeFullHelp:
			m.showHelp = false
		case scopeDetail:
			m.detail = nil
			m.ctrl.SetSuspended(false)
		}
	case actionNext:
		m.ctrl.Next()
	case actionPrevious:
		m.ctrl.Previous()
	case actionFirst:
		m.ctrl.GoTo(0)
	case actionLast:
		m.ctrl.GoTo(n - 1)
	case actionSelect:
		if _, ok := m.ctrl.Select(m.state.CurrentIndex); !ok {
			cmd := m.setStatus("nothing to open", false)
			return m, cmd
		}
	case actionToggleView:
		if !m.ccfg.ShowViewToggle {
			return m, nil
		}
		m.ctrl.ToggleViewMode()
	case actionToggleAutoplay:
		m.ctrl.ToggleAutoplay()
		label := "autoplay off"
		if m.ctrl.Snapshot().AutoplayEnabled {
			label = "autoplay on"
		}
		cmd := m.setStatus(label, false)
		return m, cmd
	case actionNextDeck, actionPrevDeck:
		if len(m.decks) < 2 {
			return m, nil
		}
		step := 1
		if b.Action == actionPrevDeck {
			step = -1
		}
		idx := carousel.Normalize(m.deckIdx+step, len(m.decks))
		m.deckSeq++
		return m, loadDeckCmd(m.src, m.decks[idx].Slug, m.deckSeq)
	case actionCategory:
		if len(m.categories) < 2 {
			cmd := m.setStatus("no categories in this deck", false)
			return m, cmd
		}
		m.catIdx = (m.catIdx + 1) % len(m.categories)
		m.itemsSeq++
		return m, loadItemsCmd(m.src, m.deck.Slug, m.categories[m.catIdx], m.itemsSeq)
	case actionSearch:
		m.searching = true
		m.search.SetValue("")
		m.ctrl.SetSuspended(true)
		cmd := m.search.Focus()
		return m, cmd
	}
	return m, nil
}

func (m Model) runSearch() (tea.Model, tea.Cmd) {
	query := m.search.Value()
	m.searching = false
	m.search.Blur()
	m.ctrl.SetSuspended(false)
	i := service.Find(m.items, query)
	if i < 0 {
		cmd := m.setStatus(fmt.Sprintf("no card matches %q", query), true)
		return m, cmd
	}
	m.ctrl.GoTo(i)
	cmd := m.setStatus("found "+m.items[i].Title, false)
	return m, cmd
}

// ---------------------------------------------------------------------------
// Mouse
// ---------------------------------------------------------------------------

func (m Model) inStrip(x, y int) bool {
	return m.state.ViewMode == carousel.ViewStrip &&
		y >= bodyTop && y < bodyTop+m.strip.cardH &&
		x >= 0 && x < m.width
}

func (m Model) bodyHeight() int {
	if m.state.ViewMode == carousel.ViewGrid {
		_, h := m.tileSize()
		return m.gridVisibleRows() * h
	}
	return m.strip.cardH
}

func (m Model) dotsRow() int { return bodyTop + m.bodyHeight() + 2 }

// tracksHover reports whether the terminal sends motion with no button held.
// Cell motion mode never does, so hover there could not be cleared.
func (m Model) tracksHover() bool { return m.cfg.UI.Mouse == config.MouseAll }

// pointerX converts a terminal column into gesture distance units.
func (m Model) pointerX(x int) float64 { return float64(x) * m.cfg.UI.CellWidth }

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.detail != nil || m.searching || m.showHelp || m.state.Empty() {
		return m, nil
	}
	x, y := msg.X, msg.Y
	inStrip := m.inStrip(x, y)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			m.ctrl.Previous()
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			m.ctrl.Next()
		case tea.MouseButtonLeft:
			switch {
			case inStrip:
				m.press = &press{x: x, card: m.strip.hit(x)}
				m.ctrl.DragStart(m.pointerX(x))
			case m.ccfg.ShowNavigation && y == m.dotsRow():
				if i := dotHit(x, m.state.ItemCount); i >= 0 {
					m.ctrl.GoTo(i)
				}
			case m.state.ViewMode == carousel.ViewGrid:
				if i := m.gridHit(x, y); i >= 0 {
					m.ctrl.Select(i)
				}
			}
		}

	case tea.MouseActionMotion:
		if m.press == nil {
			if m.tracksHover() {
				m.ctrl.SetHovered(inStrip)
			}
			return m, nil
		}
		if inStrip {
			m.ctrl.DragMove(m.pointerX(x))
			return m, nil
		}
		// leaving the strip mid-drag ends the drag
		m.press = nil
		m.ctrl.DragEnd()
		m.ctrl.SetHovered(false)

	case tea.MouseActionRelease:
		if m.press == nil {
			m.ctrl.SetHovered(m.tracksHover() && inStrip)
			return m, nil
		}
		p := *m.press
		m.press = nil
		m.ctrl.DragMove(m.pointerX(x))
		committed := carousel.DragDirection(m.pointerX(x)-m.pointerX(p.x), m.ccfg.DragThreshold) != 0
		m.ctrl.DragEnd()
		if !committed && p.card >= 0 && m.strip.hit(x) == p.card {
			if p.card == m.state.CurrentIndex {
				m.ctrl.Select(p.card)
			} else {
				m.ctrl.GoTo(p.card)
			}
		}
		m.ctrl.SetHovered(m.tracksHover() && inStrip)
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Grid layout
// ---------------------------------------------------------------------------

func (m Model) tileSize() (int, int) {
	return cardSize(m.ccfg.Variant.CardVariant(carousel.ViewGrid))
}

func (m Model) gridColumns() int {
	w, _ := m.tileSize()
	cols := (m.width - 2*stripInset + cardGap) / (w + cardGap)
	if cols < 1 {
		return 1
	}
	return cols
}

func (m Model) gridRows() int {
	cols := m.gridColumns()
	return (m.state.ItemCount + cols - 1) / cols
}

func (m Model) gridVisibleRows() int {
	_, h := m.tileSize()
	rows := (m.height - bodyTop - chromeRow) / h
	if rows < 1 {
		rows = 1
	}
	if total := m.gridRows(); total < rows {
		rows = max(total, 1)
	}
	return rows
}

// gridTop is the first visible tile row, keeping the current item on screen.
func (m Model) gridTop() int {
	cur := m.state.CurrentIndex / m.gridColumns()
	visible := m.gridVisibleRows()
	if cur >= visible {
		return cur - visible + 1
	}
	return 0
}

func (m Model) gridHit(x, y int) int {
	w, h := m.tileSize()
	ry := y - bodyTop
	cx := x - stripInset
	if ry < 0 || cx < 0 || ry >= m.gridVisibleRows()*h {
		return -1
	}
	pitch := w + cardGap
	col := cx / pitch
	if col >= m.gridColumns() || cx%pitch >= w {
		return -1
	}
	i := (m.gridTop()+ry/h)*m.gridColumns() + col
	if i >= m.state.ItemCount {
		return -1
	}
	return i
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m Model) View() string {
	if m.width == 0 {
		return "loading…"
	}
	st := m.state

	if m.showHelp {
		return m.viewHelp()
	}

	var b strings.Builder
	b.WriteString(renderHeader(appName, m.decks, m.deckIdx, m.width) + "\n")
	b.WriteString(titleStyle.Render(" "+m.deck.Title) + "\n")
	b.WriteString(subtitleStyle.Render(padRight(" "+m.deck.Subtitle, m.width)) + "\n")
	b.WriteString(" " + renderControls(st, m.ccfg, m.categories[m.catIdx]) + "\n\n")

	if m.detail != nil {
		b.WriteString(renderDetail(*m.detail, st.CurrentIndex, st.ItemCount, m.width) + "\n")
		b.WriteString(m.viewStatus() + "\n")
		b.WriteString(renderFooter(m.keys.HelpBindings(scopeDetail), m.width))
		return b.String()
	}

	switch {
	case st.Empty():
		b.WriteString(statusStyle.Render("  No cards in this deck.") + "\n")
	case st.ViewMode == carousel.ViewGrid:
		b.WriteString(m.viewGrid() + "\n")
	default:
		b.WriteString(m.viewStrip() + "\n")
	}

	b.WriteString("\n")
	if m.ccfg.ShowProgress && !st.Empty() {
		b.WriteString(strings.Repeat(" ", stripInset) + m.progress.View())
	}
	b.WriteString("\n")
	if m.ccfg.ShowNavigation {
		b.WriteString(renderDots(st.CurrentIndex, st.ItemCount))
	}
	b.WriteString("\n")
	b.WriteString(m.viewInfo() + "\n")
	if m.searching {
		b.WriteString(" " + m.search.View() + "\n")
	} else {
		b.WriteString(m.viewStatus() + "\n")
	}
	b.WriteString(renderFooter(m.keys.HelpBindings(m.scope()), m.width))
	return b.String()
}

func (m Model) viewStrip() string {
	v := m.stripVariant()
	cards := make([]string, len(m.items))
	for i, it := range m.items {
		cards[i] = renderCard(it, v, i == m.state.CurrentIndex)
	}
	return m.strip.render(cards)
}

func (m Model) viewGrid() string {
	v := m.ccfg.Variant.CardVariant(carousel.ViewGrid)
	w, _ := m.tileSize()
	cols := m.gridColumns()
	top := m.gridTop()
	var rows []string
	for r := top; r < top+m.gridVisibleRows(); r++ {
		var row []string
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i >= len(m.items) {
				break
			}
			row = append(row, renderCard(m.items[i], v, i == m.state.CurrentIndex))
		}
		if len(row) == 0 {
			break
		}
		rows = append(rows, joinTiles(row, w))
	}
	return strings.Join(rows, "\n")
}

func joinTiles(tiles []string, w int) string {
	split := make([][]string, len(tiles))
	height := 0
	for i, t := range tiles {
		split[i] = strings.Split(t, "\n")
		height = max(height, len(split[i]))
	}
	lines := make([]string, height)
	for r := 0; r < height; r++ {
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", stripInset))
		for i, parts := range split {
			if i > 0 {
				b.WriteString(strings.Repeat(" ", cardGap))
			}
			if r < len(parts) {
				b.WriteString(padRight(parts[r], w))
			}
		}
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewInfo() string {
	st := m.state
	if st.Empty() {
		return ""
	}
	parts := []string{valueStyle.Render(fmt.Sprintf("%d / %d", st.CurrentIndex+1, st.ItemCount))}
	if d := dragIndicator(st.Drag, m.ccfg.DragThreshold); d != "" {
		parts = append(parts, d)
	}
	if st.Scheduler == carousel.SchedulerRunning {
		parts = append(parts, badgeOn.Render("auto"))
	}
	return strings.Repeat(" ", stripInset) + strings.Join(parts, "   ")
}

func (m Model) viewStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return " " + statusErrStyle.Render(m.status)
	}
	return " " + statusStyle.Render(m.status)
}

func (m Model) viewHelp() string {
	bindings := m.keys.HelpBindings(scopeStrip)
	var groups [][]key.Binding
	for len(bindings) > 0 {
		n := min(4, len(bindings))
		groups = append(groups, bindings[:n])
		bindings = bindings[n:]
	}
	var b strings.Builder
	b.WriteString(renderHeader(appName, m.decks, m.deckIdx, m.width) + "\n\n")
	b.WriteString(titleStyle.Render(" Keys") + "\n\n")
	b.WriteString(m.help.FullHelpView(groups) + "\n\n")
	b.WriteString(statusStyle.Render(" Drag the strip with the mouse; click a card to focus it, click again to open.") + "\n\n")
	b.WriteString(renderFooter(m.keys.HelpBindings(scopeFullHelp), m.width))
	return b.String()
}
