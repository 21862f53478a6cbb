package wizard

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHuhUI(t *testing.T) {
	ui := NewHuhUI()
	assert.NotNil(t, ui)
	assert.NotNil(t, ui.isTerminal)
}

func TestHuhUI_EnsureInteractive_NilChecker(t *testing.T) {
	ui := &HuhUI{isTerminal: nil}
	// Tests do not run on a TTY, so the default checker fails.
	err := ui.ensureInteractive()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires a terminal")
}

func TestHuhUI_NoTTY(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return false }}

	var selected []string
	assert.Error(t, ui.MultiSelect("Title", []Option{{Label: "A", Value: "a"}}, &selected))
	var ok bool
	assert.Error(t, ui.Confirm("Title", &ok))
	assert.Error(t, ui.Note("Title", "Body"))
}

func stubRunForm(t *testing.T, fn func(form *huh.Form) error) {
	t.Helper()
	orig := runFormFunc
	t.Cleanup(func() { runFormFunc = orig })
	runFormFunc = fn
}

func TestHuhUI_RunFormSuccess(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return true }}
	called := false
	stubRunForm(t, func(form *huh.Form) error {
		assert.NotNil(t, form)
		called = true
		return nil
	})

	var ok bool
	require.NoError(t, ui.Confirm("Title", &ok))
	assert.True(t, called)
}

func TestHuhUI_RunFormMapsEscToBack(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return true }}
	stubRunForm(t, func(*huh.Form) error { return huh.ErrUserAborted })

	var selected []string
	err := ui.MultiSelect("Title", nil, &selected)
	assert.ErrorIs(t, err, errBack)
}

func TestHuhUI_RunFormMapsCtrlCToCancelled(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return true }}
	stubRunForm(t, func(*huh.Form) error {
		ui.ctrlCAbort = true
		return huh.ErrUserAborted
	})
	err := ui.Note("Title", "Body")
	assert.ErrorIs(t, err, ErrCancelled)

	// The flag is reset for the next form.
	stubRunForm(t, func(*huh.Form) error { return huh.ErrUserAborted })
	err = ui.Note("Title", "Body")
	assert.ErrorIs(t, err, errBack)
}

func TestFormFilter(t *testing.T) {
	ui := &HuhUI{}
	filter := ui.formFilter()

	msg := filter(nil, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.False(t, ui.ctrlCAbort)
	assert.IsType(t, tea.WindowSizeMsg{}, msg)

	msg = filter(nil, tea.InterruptMsg{})
	assert.False(t, ui.ctrlCAbort)
	assert.IsType(t, tea.QuitMsg{}, msg)

	msg = filter(nil, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, ui.ctrlCAbort)
	assert.IsType(t, tea.KeyMsg{}, msg)
}

func TestHintField_SurvivesFormConstruction(t *testing.T) {
	form := huh.NewForm(
		huh.NewGroup(
			newHintField(huh.NewMultiSelect[string]().
				Title("Test").
				Filterable(false).
				Options(huh.NewOption("A", "a"), huh.NewOption("B", "b"))),
		),
	)
	form.WithKeyMap(formKeyMap())

	var hints []string
	for _, b := range form.KeyBinds() {
		if b.Enabled() {
			hints = append(hints, b.Help().Key+" "+b.Help().Desc)
		}
	}
	assert.Contains(t, hints, "esc back")
	assert.Contains(t, hints, "ctrl+c exit")
}
