package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/xpcalc/internal/cli/formatter"
	"github.com/alexanderramin/xpcalc/internal/contract"
	"github.com/alexanderramin/xpcalc/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

type liveFieldKind int

const (
	fieldCount liveFieldKind = iota
	fieldCurrentLevel
	fieldCurrentXP
	fieldTargetLevel
	fieldTargetDate
	fieldTargetDays
)

const (
	sectionTrainer  = "Trainer"
	sectionDeadline = "Deadline"
)

type liveField struct {
	kind     liveFieldKind
	activity domain.Activity
	section  string
	label    string
	input    textinput.Model
}

// acceptsRune reports whether r may be typed into the field. Every field is
// numeric; the date field also takes the separator.
func (f *liveField) acceptsRune(r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	return f.kind == fieldTargetDate && r == '-'
}

type liveKeyMap struct {
	Next           key.Binding
	Prev           key.Binding
	ToggleEgg      key.Binding
	ToggleMode     key.Binding
	ToggleTimeline key.Binding
	Reset          key.Binding
	Quit           key.Binding
}

func defaultLiveKeyMap() liveKeyMap {
	return liveKeyMap{
		Next:           key.NewBinding(key.WithKeys("tab", "down", "enter"), key.WithHelp("tab/↓", "next")),
		Prev:           key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab/↑", "prev")),
		ToggleEgg:      key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "lucky egg")),
		ToggleMode:     key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "date/days")),
		ToggleTimeline: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "deadline on/off")),
		Reset:          key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "clear counts")),
		Quit:           key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

func (k liveKeyMap) help() string {
	bindings := []key.Binding{k.Next, k.Prev, k.ToggleEgg, k.ToggleMode, k.ToggleTimeline, k.Reset, k.Quit}
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		h := b.Help()
		parts[i] = h.Key + " " + h.Desc
	}
	return strings.Join(parts, " · ")
}

// liveModel is the single-screen calculator. Every edit runs the field
// through domain.ApplyEdit, re-syncs the inputs, and recalculates.
type liveModel struct {
	app    *App
	ctx    context.Context
	keys   liveKeyMap
	fields []*liveField
	focus  int

	counts      domain.ActivityCounts
	luckyEgg    bool
	useTimeline bool
	mode        domain.TargetMode

	resp     *contract.CalculateResponse
	err      error
	quitting bool
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = limit + 1
	return in
}

func newLiveModel(ctx context.Context, app *App) liveModel {
	base := app.baseRequest()
	m := liveModel{
		app:         app,
		ctx:         ctx,
		keys:        defaultLiveKeyMap(),
		counts:      domain.ActivityCounts{},
		luckyEgg:    base.LuckyEgg,
		useTimeline: base.UseTimeline,
		mode:        base.TargetMode,
	}

	for _, cat := range domain.Categories {
		for _, def := range domain.ActivitiesIn(cat) {
			m.fields = append(m.fields, &liveField{
				kind:     fieldCount,
				activity: def.Key,
				section:  cat.Label(),
				label:    def.Label,
				input:    newInput("0", len(strconv.FormatInt(def.Cap, 10))),
			})
		}
	}

	current := &liveField{kind: fieldCurrentLevel, section: sectionTrainer, label: "Current level", input: newInput("1", 2)}
	current.input.SetValue(strconv.Itoa(domain.ClampLevel(base.CurrentLevel, domain.MinLevel)))
	xp := &liveField{kind: fieldCurrentXP, section: sectionTrainer, label: "XP into level", input: newInput("0", 8)}
	target := &liveField{kind: fieldTargetLevel, section: sectionTrainer, label: "Target level", input: newInput("50", 2)}
	target.input.SetValue(strconv.Itoa(domain.ClampLevel(base.TargetLevel, domain.MaxLevel)))

	date := &liveField{kind: fieldTargetDate, section: sectionDeadline, label: "Target date", input: newInput("YYYY-MM-DD", 10)}
	date.input.SetValue(domain.CoalesceStr(base.TargetDate,
		contract.DefaultTargetDate(*base.Now).Format(contract.DateLayout)))
	days := &liveField{kind: fieldTargetDays, section: sectionDeadline, label: "Days left", input: newInput("30", 5)}
	if base.TargetDays > 0 {
		days.input.SetValue(strconv.FormatInt(base.TargetDays, 10))
	}

	m.fields = append(m.fields, current, xp, target, date, days)
	m.fields[0].input.Focus()
	m.recompute()
	return m
}

func (m *liveModel) hidden(f *liveField) bool {
	switch f.kind {
	case fieldTargetDate:
		return !m.useTimeline || m.mode != domain.TargetByDate
	case fieldTargetDays:
		return !m.useTimeline || m.mode != domain.TargetByDays
	}
	return false
}

func (m liveModel) focused() *liveField {
	return m.fields[m.focus]
}

// move shifts focus by step, wrapping and skipping hidden fields.
func (m *liveModel) move(step int) tea.Cmd {
	m.focused().input.Blur()
	n := len(m.fields)
	for i := 0; i < n; i++ {
		m.focus = (m.focus + step + n) % n
		if !m.hidden(m.focused()) {
			break
		}
	}
	return m.focused().input.Focus()
}

// ensureVisibleFocus moves focus off a field that has just been hidden.
func (m *liveModel) ensureVisibleFocus() tea.Cmd {
	if !m.hidden(m.focused()) {
		return nil
	}
	if m.focused().kind == fieldTargetDays {
		return m.move(-1)
	}
	return m.move(1)
}

func (m *liveModel) fieldValue(kind liveFieldKind) string {
	for _, f := range m.fields {
		if f.kind == kind {
			return f.input.Value()
		}
	}
	return ""
}

func (m *liveModel) request() contract.CalculateRequest {
	req := m.app.baseRequest()
	req.Counts = m.counts
	req.LuckyEgg = m.luckyEgg
	req.CurrentLevel = contract.CoerceLevel(m.fieldValue(fieldCurrentLevel))
	req.CurrentXP = contract.CoerceCount(m.fieldValue(fieldCurrentXP))
	req.TargetLevel = contract.CoerceLevel(m.fieldValue(fieldTargetLevel))
	req.UseTimeline = m.useTimeline
	req.TargetMode = m.mode
	req.TargetDate = m.fieldValue(fieldTargetDate)
	req.TargetDays = contract.CoerceCount(m.fieldValue(fieldTargetDays))
	return req
}

func (m *liveModel) recompute() {
	m.resp, m.err = m.app.Calc.Calculate(m.ctx, m.request())
}

// edit applies the focused field's text to the counts.
func (m *liveModel) edit(f *liveField) {
	if f.kind == fieldCount {
		m.counts = domain.ApplyEdit(m.counts, f.activity, contract.CoerceCount(f.input.Value()))
		m.syncCounts()
	}
	m.recompute()
}

// syncCounts rewrites every count input whose text no longer matches the
// normalized counts. Text that already reads as the right number is kept.
func (m *liveModel) syncCounts() {
	for _, f := range m.fields {
		if f.kind != fieldCount {
			continue
		}
		want := m.counts.Get(f.activity)
		if contract.CoerceCount(f.input.Value()) == want {
			continue
		}
		if want == 0 {
			f.input.SetValue("")
		} else {
			f.input.SetValue(strconv.FormatInt(want, 10))
		}
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m liveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m liveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		f := m.focused()
		f.input, cmd = f.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Next):
		return m, m.move(1)
	case key.Matches(keyMsg, m.keys.Prev):
		return m, m.move(-1)
	case key.Matches(keyMsg, m.keys.ToggleEgg):
		m.luckyEgg = !m.luckyEgg
		m.recompute()
		return m, nil
	case key.Matches(keyMsg, m.keys.ToggleMode):
		if m.mode == domain.TargetByDays {
			m.mode = domain.TargetByDate
		} else {
			m.mode = domain.TargetByDays
		}
		cmd := m.ensureVisibleFocus()
		m.recompute()
		return m, cmd
	case key.Matches(keyMsg, m.keys.ToggleTimeline):
		m.useTimeline = !m.useTimeline
		cmd := m.ensureVisibleFocus()
		m.recompute()
		return m, cmd
	case key.Matches(keyMsg, m.keys.Reset):
		m.counts = domain.ActivityCounts{}
		m.syncCounts()
		m.recompute()
		return m, nil
	}

	f := m.focused()
	if keyMsg.Type == tea.KeyRunes {
		for _, r := range keyMsg.Runes {
			if !f.acceptsRune(r) {
				return m, nil
			}
		}
	}

	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(keyMsg)
	if f.input.Value() != before {
		m.edit(f)
	}
	return m, cmd
}

func (m liveModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.Header("XP calculator"))
	b.WriteString("\n")
	b.WriteString(formatter.LuckyEggBadge(m.luckyEgg))
	b.WriteString("\n\n")

	active := m.focused().section
	sections := append(categoryLabels(), sectionTrainer, sectionDeadline)
	tabs := make([]string, len(sections))
	for i, s := range sections {
		if s == active {
			tabs[i] = formatter.Bold("[" + s + "]")
		} else {
			tabs[i] = formatter.Dim(s)
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		if f.section != active || m.hidden(f) {
			continue
		}
		cursor := "  "
		if i == m.focus {
			cursor = "▸ "
		}
		fmt.Fprintf(&b, "%s%-18s %s\n", cursor, f.label, f.input.View())
	}
	if active == sectionDeadline {
		b.WriteString(formatter.Dim(m.deadlineHint()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.err != nil {
		fmt.Fprintf(&b, "Error: %v\n", m.err)
	} else if m.resp != nil {
		b.WriteString(formatter.FormatCalculation(m.resp))
		b.WriteString("\n")
	}

	b.WriteString(formatter.Dim(m.keys.help()))
	b.WriteString("\n")
	return b.String()
}

func (m liveModel) deadlineHint() string {
	if !m.useTimeline {
		return "  deadline off (ctrl+n to enable)"
	}
	return fmt.Sprintf("  deadline by %s (ctrl+t to switch)", m.mode)
}

func categoryLabels() []string {
	labels := make([]string, len(domain.Categories))
	for i, c := range domain.Categories {
		labels[i] = c.Label()
	}
	return labels
}

func newLiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "live",
		Short: "Interactive calculator that updates as you type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errNotInteractive
			}
			p := tea.NewProgram(newLiveModel(cmd.Context(), app),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("live calculator: %w", err)
			}
			return nil
		},
	}
}
