package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestConfirmModelUpdate(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
		want bool
		quit bool
	}{
		{"y confirms", keyMsg('y'), true, true},
		{"Y confirms", keyMsg('Y'), true, true},
		{"n declines", keyMsg('n'), false, true},
		{"esc declines", tea.KeyMsg{Type: tea.KeyEsc}, false, true},
		{"ctrl+c declines", tea.KeyMsg{Type: tea.KeyCtrlC}, false, true},
		{"other keys keep waiting", keyMsg('x'), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cmd := confirmModel{question: "overwrite?"}.Update(tt.msg)
			got := m.(confirmModel)
			if got.answer != tt.want {
				t.Errorf("answer = %v, want %v", got.answer, tt.want)
			}
			if (cmd != nil) != tt.quit {
				t.Errorf("quit cmd = %v, want quit=%v", cmd, tt.quit)
			}
		})
	}
}

func TestNameModelAcceptsInput(t *testing.T) {
	m := newNameModel()

	var model tea.Model = m
	for _, r := range "billing" {
		model, _ = model.Update(keyMsg(r))
	}
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	got := model.(nameModel)
	if !got.done {
		t.Error("enter did not complete the prompt")
	}
	if cmd == nil {
		t.Error("enter did not quit the program")
	}
	if got.input.Value() != "billing" {
		t.Errorf("input value = %q, want billing", got.input.Value())
	}
}

func TestNameModelCancel(t *testing.T) {
	model, _ := newNameModel().Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !model.(nameModel).canceled {
		t.Error("esc did not cancel the prompt")
	}
}
