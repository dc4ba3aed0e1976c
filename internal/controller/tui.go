package controller

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "mutafinder.dev/pkg/mutafinder/internal/model"
)

var (
	primaryColor = lipgloss.Color("#7C3AED") // Purple
	successColor = lipgloss.Color("#10B981") // Green
	warningColor = lipgloss.Color("#F59E0B") // Amber
	errorColor   = lipgloss.Color("#EF4444") // Red
	mutedColor   = lipgloss.Color("#9CA3AF") // Muted gray
	borderColor  = lipgloss.Color("#374151") // Border gray
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	infoStyle    = lipgloss.NewStyle().Foreground(successColor)
	warningStyle = lipgloss.NewStyle().Foreground(warningColor).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)

	boxStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	addedStyle   = lipgloss.NewStyle().Foreground(successColor)
	removedStyle = lipgloss.NewStyle().Foreground(errorColor)
	hunkStyle    = lipgloss.NewStyle().Foreground(primaryColor)
)

const (
	menuWidth  = 60
	menuHeight = 26
)

// TUI implements UI using Bubble Tea for the menu and prompts and lipgloss
// for everything it prints.
type TUI struct {
	input  io.Reader
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(input io.Reader, output io.Writer) *TUI {
	return &TUI{input: input, output: output}
}

// Start prints the banner for interactive sessions.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if newStartConfig(options...).mode == ModeInteractive {
		t.println(boxStyle.Render(titleStyle.Render("mutafinder · point mutation finder")))
	}

	return nil
}

// Close finalizes the UI.
func (t *TUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// SelectAction runs the menu until the user picks an action.
func (t *TUI) SelectAction(ctx context.Context) (m.Action, error) {
	if err := ctx.Err(); err != nil {
		return m.ActionInvalid, err
	}

	program := tea.NewProgram(newMenuModel(), tea.WithContext(ctx), tea.WithInput(t.input), tea.WithOutput(t.output))

	final, err := program.Run()
	if err != nil {
		return m.ActionInvalid, err
	}

	menu, ok := final.(menuModel)
	if !ok {
		return m.ActionInvalid, fmt.Errorf("unexpected menu model %T", final)
	}

	return menu.choice, nil
}

// PromptPath runs a text input for the FASTA file of slot.
func (t *TUI) PromptPath(ctx context.Context, slot m.Slot) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	program := tea.NewProgram(newPromptModel(slot), tea.WithContext(ctx), tea.WithInput(t.input), tea.WithOutput(t.output))

	final, err := program.Run()
	if err != nil {
		return "", err
	}

	prompt, ok := final.(promptModel)
	if !ok {
		return "", fmt.Errorf("unexpected prompt model %T", final)
	}

	if prompt.cancelled {
		return "", ErrPromptCancelled
	}

	return m.Path(prompt.value), nil
}

// DisplayInfo prints a success or progress message.
func (t *TUI) DisplayInfo(ctx context.Context, message string) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.println(infoStyle.Render("✔ " + message))
}

// DisplayWarning prints a precondition or input warning.
func (t *TUI) DisplayWarning(ctx context.Context, message string) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.println(warningStyle.Render("⚠ " + message))
}

// DisplayError prints an operation failure.
func (t *TUI) DisplayError(ctx context.Context, err error) {
	if ctx.Err() != nil || err == nil {
		return
	}

	t.println(errorStyle.Render("✖ " + err.Error()))
}

// DisplayMutations prints a rendered mutation table inside a box.
func (t *TUI) DisplayMutations(ctx context.Context, table string) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.println(boxStyle.Render(strings.TrimRight(table, "\n")))
}

// DisplaySummary prints the comparison counts.
func (t *TUI) DisplaySummary(ctx context.Context, summary m.Summary) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.println(renderSummaryBox(summary))
}

// DisplayDiff prints a unified diff with added and removed lines colored.
func (t *TUI) DisplayDiff(ctx context.Context, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if diff == "" {
		t.println(helpStyle.Render("Sequences match line by line."))
		return
	}

	t.println(colorizeDiff(diff))
}

func (t *TUI) println(s string) {
	_, _ = fmt.Fprintln(t.output, s)
}

func renderSummaryBox(summary m.Summary) string {
	rows := [][2]string{
		{"Sequence 1 (reference)", strconv.Itoa(summary.ReferenceLength)},
		{"Sequence 2 (mutated)", strconv.Itoa(summary.CandidateLength)},
		{"Compared positions", strconv.Itoa(summary.Compared)},
		{"Ignored trailing residues", strconv.Itoa(summary.Ignored())},
		{"Mutations", strconv.Itoa(summary.Mutations)},
		{"Identity", fmt.Sprintf("%.2f%%", summary.Identity()*100)},
	}

	label := lipgloss.NewStyle().Foreground(mutedColor).Width(28)
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, titleStyle.Render("Comparison summary"))

	for _, row := range rows {
		lines = append(lines, label.Render(row[0])+row[1])
	}

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func colorizeDiff(diff string) string {
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = titleStyle.Render(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = hunkStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = addedStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = removedStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}

// actionItem is one menu entry in the bubbles list.
type actionItem struct {
	action m.Action
}

var actionHints = map[m.Action]string{
	m.ActionLoadReference: "Read the reference sequence from a FASTA file",
	m.ActionLoadCandidate: "Read the mutated sequence from a FASTA file",
	m.ActionCompare:       "Find point mutations between both sequences",
	m.ActionDisplay:       "Show the mutations of the last comparison",
	m.ActionExportReport:  "Write the narrative text report",
	m.ActionExportTable:   "Write the mutations as a table file",
	m.ActionExit:          "Leave mutafinder",
}

func (i actionItem) Title() string {
	return fmt.Sprintf("%d. %s", int(i.action), i.action.Label())
}

func (i actionItem) Description() string {
	return actionHints[i.action]
}

func (i actionItem) FilterValue() string {
	return i.action.Label()
}

// menuModel is the Bubble Tea model of the action menu.
type menuModel struct {
	list   list.Model
	choice m.Action
	done   bool
}

func newMenuModel() menuModel {
	items := make([]list.Item, 0, len(m.MenuActions))
	for _, action := range m.MenuActions {
		items = append(items, actionItem{action: action})
	}

	l := list.New(items, list.NewDefaultDelegate(), menuWidth, menuHeight)
	l.Title = "mutafinder"
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	return menuModel{list: l, choice: m.ActionInvalid}
}

func (mm menuModel) Init() tea.Cmd {
	return nil
}

func (mm menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		mm.list.SetSize(msg.Width, msg.Height)
		return mm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return mm.finish(m.ActionExit)

		case "enter":
			if item, ok := mm.list.SelectedItem().(actionItem); ok {
				return mm.finish(item.action)
			}

			return mm, nil

		case "1", "2", "3", "4", "5", "6", "7":
			return mm.finish(m.ParseAction(msg.String()))
		}
	}

	var cmd tea.Cmd
	mm.list, cmd = mm.list.Update(msg)

	return mm, cmd
}

func (mm menuModel) finish(action m.Action) (tea.Model, tea.Cmd) {
	mm.choice = action
	mm.done = true

	return mm, tea.Quit
}

func (mm menuModel) View() string {
	if mm.done {
		return ""
	}

	return mm.list.View()
}

// promptModel is the Bubble Tea model of the path prompt.
type promptModel struct {
	input     textinput.Model
	slot      m.Slot
	value     string
	cancelled bool
	done      bool
}

func newPromptModel(slot m.Slot) promptModel {
	input := textinput.New()
	input.Placeholder = "path/to/sequence.fasta"
	input.CharLimit = 4096
	input.Width = menuWidth
	input.Focus()

	return promptModel{input: input, slot: slot}
}

func (pm promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (pm promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			pm.value = strings.TrimSpace(pm.input.Value())
			pm.done = true

			return pm, tea.Quit

		case tea.KeyCtrlC, tea.KeyEsc:
			pm.cancelled = true
			pm.done = true

			return pm, tea.Quit
		default:
			// Everything else is typed into the input below.
		}
	}

	var cmd tea.Cmd
	pm.input, cmd = pm.input.Update(msg)

	return pm, cmd
}

func (pm promptModel) View() string {
	if pm.done {
		return ""
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s\n",
		titleStyle.Render("FASTA file for "+pm.slot.String()),
		pm.input.View(),
		helpStyle.Render("enter: load • esc: cancel"))
}
