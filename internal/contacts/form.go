package contacts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/contactdesk/internal/contact"
)

// Form field indices. Text fields come first; fieldStatus is the closed
// selector and has no text input.
const (
	fieldName = iota
	fieldTitle
	fieldAccount
	fieldEmail
	fieldPhone
	fieldLastContact
	fieldStatus
	fieldCount
)

// fieldLabels and fieldPlaceholders are indexed by field.
var (
	fieldLabels       = [fieldCount]string{"Name", "Title", "Account", "Email", "Phone", "Last Contact", "Status"}
	fieldPlaceholders = [fieldStatus]string{"Name", "Title", "Account Name", "Email", "Phone", "Last contact date"}
)

// formOutcome reports what a key press did to the form.
type formOutcome int

const (
	formEditing   formOutcome = iota // Draft still being edited.
	formSubmitted                    // Every required field filled; draft handed over.
	formCancelled                    // Draft discarded.
)

// addForm holds the draft contact edited inside the Add Contact dialog.
type addForm struct {
	inputs    []textinput.Model // One per text field, indexed by field.
	status    int               // Index into contact.Statuses.
	owner     string            // Fixed when the draft is reset.
	focus     int
	attempted bool // A submit was refused; blank fields are flagged.
	keys      dialogKeys
}

// newAddForm returns an empty form owned by owner.
func newAddForm(owner string) addForm {
	inputs := make([]textinput.Model, fieldStatus)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = fieldPlaceholders[i]
		ti.Prompt = ""
		ti.CharLimit = 120
		ti.Width = 32
		inputs[i] = ti
	}
	f := addForm{
		inputs: inputs,
		owner:  owner,
		keys:   DialogKeyMap(),
	}
	f.inputs[fieldName].Focus()
	return f
}

// reset discards the current draft and starts a new one seeded with
// seedName. Nothing from the previous draft carries over.
func (f *addForm) reset(seedName, owner string) {
	*f = newAddForm(owner)
	f.inputs[fieldName].SetValue(seedName)
	f.inputs[fieldName].CursorEnd()
}

// draft returns the contact described by the form's current values.
func (f addForm) draft() contact.Contact {
	return contact.Contact{
		Name:        f.inputs[fieldName].Value(),
		Title:       f.inputs[fieldTitle].Value(),
		Account:     f.inputs[fieldAccount].Value(),
		Email:       f.inputs[fieldEmail].Value(),
		Phone:       f.inputs[fieldPhone].Value(),
		LastContact: f.inputs[fieldLastContact].Value(),
		Status:      contact.Statuses[f.status],
		Owner:       f.owner,
	}
}

// missing returns the indices of blank required text fields in field order.
func (f addForm) missing() []int {
	var blank []int
	for i, in := range f.inputs {
		if in.Value() == "" {
			blank = append(blank, i)
		}
	}
	return blank
}

// Update applies msg to the form. Key presses that complete or abandon the
// draft are reported through the outcome.
func (f addForm) Update(msg tea.Msg) (addForm, formOutcome, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.updateInput(msg)
	}

	switch {
	case key.Matches(keyMsg, f.keys.Cancel):
		return f, formCancelled, nil

	case key.Matches(keyMsg, f.keys.Submit):
		if blank := f.missing(); len(blank) > 0 {
			f.attempted = true
			return f.focusField(blank[0]), formEditing, textinput.Blink
		}
		return f, formSubmitted, nil

	case key.Matches(keyMsg, f.keys.Next):
		return f.focusField((f.focus + 1) % fieldCount), formEditing, textinput.Blink

	case key.Matches(keyMsg, f.keys.Prev):
		return f.focusField((f.focus + fieldCount - 1) % fieldCount), formEditing, textinput.Blink

	case f.focus == fieldStatus && key.Matches(keyMsg, f.keys.Toggle):
		f.status = (f.status + 1) % len(contact.Statuses)
		return f, formEditing, nil
	}

	return f.updateInput(msg)
}

// updateInput forwards msg to the focused text input, if any.
func (f addForm) updateInput(msg tea.Msg) (addForm, formOutcome, tea.Cmd) {
	if f.focus >= fieldStatus {
		return f, formEditing, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, formEditing, cmd
}

// focusField moves focus to field i, blurring every other input.
func (f addForm) focusField(i int) addForm {
	f.focus = i
	for j := range f.inputs {
		if j == i {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	return f
}

// View renders the dialog body.
func (f addForm) View() string {
	var b strings.Builder
	b.WriteString(titleText.Render("Add Contact"))
	b.WriteString("\n")
	b.WriteString(mutedText.Render("Enter details for a new contact."))
	b.WriteString("\n\n")

	for i := 0; i < fieldCount; i++ {
		marker := "  "
		if i == f.focus {
			marker = CursorMarker
		}
		fmt.Fprintf(&b, "%s%-13s ", marker, fieldLabels[i])
		if i == fieldStatus {
			b.WriteString(f.viewStatus())
		} else {
			b.WriteString(f.inputs[i].View())
			if f.attempted && f.inputs[i].Value() == "" {
				b.WriteString(" " + errorText.Render("required"))
			}
		}
		b.WriteByte('\n')
	}

	b.WriteString("\n  [Esc] Cancel   [Enter] Add Contact")
	return b.String()
}

func (f addForm) viewStatus() string {
	opts := make([]string, len(contact.Statuses))
	for i, s := range contact.Statuses {
		mark := "( )"
		if i == f.status {
			mark = "(•)"
		}
		label := strings.ToUpper(string(s[:1])) + string(s[1:])
		opts[i] = mark + " " + label
	}
	return strings.Join(opts, "  ")
}
