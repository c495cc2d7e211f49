package model

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"marios/internal/contact"
)

// Contact form fields, in tab order.
const (
	FieldName = iota
	FieldEmail
	FieldSubject
	FieldMessage
	fieldCount
)

var fieldLabels = [fieldCount]string{"NAME", "EMAIL", "SUBJECT", "MESSAGE"}

// ContactForm is the state of the form hosted by the contact window.
type ContactForm struct {
	WindowID string
	Inputs   []textinput.Model
	Focus    int
	// Editing routes keystrokes into the focused input.
	Editing bool
	Sending bool
}

// NewContactForm creates an empty form for the window.
func NewContactForm(windowID string) *ContactForm {
	f := &ContactForm{WindowID: windowID}
	placeholders := [fieldCount]string{"Agent name", "agent@domain.com", "optional", "Transmit your message"}
	for i := 0; i < fieldCount; i++ {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = placeholders[i]
		in.CharLimit = 256
		if i == FieldMessage {
			in.CharLimit = 2000
		}
		f.Inputs = append(f.Inputs, in)
	}
	return f
}

// Label returns the label of a field.
func Label(field int) string {
	if field < 0 || field >= fieldCount {
		return ""
	}
	return fieldLabels[field]
}

// StartEditing focuses the current field and routes keys into it.
func (f *ContactForm) StartEditing() tea.Cmd {
	f.Editing = true
	return f.Inputs[f.Focus].Focus()
}

// StopEditing blurs the form.
func (f *ContactForm) StopEditing() {
	f.Editing = false
	for i := range f.Inputs {
		f.Inputs[i].Blur()
	}
}

// Move shifts focus by delta fields, wrapping around.
func (f *ContactForm) Move(delta int) tea.Cmd {
	f.Inputs[f.Focus].Blur()
	f.Focus = ((f.Focus+delta)%fieldCount + fieldCount) % fieldCount
	if !f.Editing {
		return nil
	}
	return f.Inputs[f.Focus].Focus()
}

// OnLastField reports whether the message field has focus.
func (f *ContactForm) OnLastField() bool {
	return f.Focus == FieldMessage
}

// Update forwards a message to the focused input.
func (f *ContactForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.Inputs[f.Focus], cmd = f.Inputs[f.Focus].Update(msg)
	return cmd
}

// Message builds the message to submit.
func (f *ContactForm) Message() contact.Message {
	return contact.Message{
		Name:    strings.TrimSpace(f.Inputs[FieldName].Value()),
		Email:   strings.TrimSpace(f.Inputs[FieldEmail].Value()),
		Subject: strings.TrimSpace(f.Inputs[FieldSubject].Value()),
		Body:    strings.TrimSpace(f.Inputs[FieldMessage].Value()),
	}
}

// Reset clears every field after a successful transmission.
func (f *ContactForm) Reset() {
	for i := range f.Inputs {
		f.Inputs[i].Reset()
	}
	f.Focus = FieldName
	f.StopEditing()
}
