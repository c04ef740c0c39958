// Package wallet is the vault setup stepper: choose how to start, fill in
// the create or import form, review and finish.
package wallet

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/vaultkit/internal/tui/router"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/components"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/lifecycle"
)

// Name is the route the screen is registered under.
const Name = "wallet"

// Step is a stage of the setup flow.
type Step int

const (
	StepChoose Step = iota
	StepCreate
	StepImport
	StepReview
	StepDone
)

func (s Step) String() string {
	switch s {
	case StepChoose:
		return "choose"
	case StepCreate:
		return "create"
	case StepImport:
		return "import"
	case StepReview:
		return "review"
	case StepDone:
		return "done"
	default:
		return "unknown"
	}
}

// flowID is the step's slot in the progress list; create and import share
// the details slot.
func (s Step) flowID() string {
	switch s {
	case StepCreate, StepImport:
		return "details"
	default:
		return s.String()
	}
}

var flowOrder = []string{"choose", "details", "review", "done"}

const (
	kindCreate = "create"
	kindImport = "import"
)

// Vault is the result of a completed setup.
type Vault struct {
	ID       string
	Name     string
	Imported bool
	Words    int
}

// Model is the setup stepper screen.
type Model struct {
	env     router.Env
	step    Step
	kind    *components.RadioGroup
	inputs  []textinput.Model
	fields  []string
	ack     *components.Checkbox
	focus   int
	issues  map[string]string
	vault   Vault
	discard bool
	size    lifecycle.Size
	newID   func() string
}

// New returns the factory registered with the router.
func New() router.Factory {
	return func(env router.Env) router.Screen {
		return NewModel(env)
	}
}

// NewModel mounts the stepper in env at the choose step.
func NewModel(env router.Env) *Model {
	m := &Model{
		env: env,
		kind: components.NewRadioGroup(
			components.RadioOption{Value: kindCreate, Label: "Create a new vault"},
			components.RadioOption{Value: kindImport, Label: "Import a recovery phrase"},
		).WithValue(kindCreate),
		issues: map[string]string{},
		size:   env.Size,
		newID:  uuid.NewString,
	}
	if env.Scope != nil && env.Sizes != nil {
		env.Scope.Add(env.Sizes.Subscribe(lifecycle.Guard(env.Scope, func(size lifecycle.Size) {
			m.size = size
		})))
	}
	return m
}

// Init implements router.Screen.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Step returns the current step.
func (m *Model) Step() Step {
	return m.step
}

// Vault returns the vault assembled by the review step.
func (m *Model) Vault() Vault {
	return m.vault
}

// Issues returns the validation messages of the last submit by field.
func (m *Model) Issues() map[string]string {
	return m.issues
}

// StepNumber is the 1-based position in the four-step flow.
func (m *Model) StepNumber() int {
	id := m.step.flowID()
	for i, s := range flowOrder {
		if s == id {
			return i + 1
		}
	}
	return 0
}

func (m *Model) startForm(step Step) tea.Cmd {
	m.step = step
	m.issues = map[string]string{}
	m.focus = 0
	if step == StepCreate {
		m.fields = []string{"Name", "Password", "Confirm"}
		m.inputs = []textinput.Model{
			newInput("Savings", false),
			newInput("At least 8 characters", true),
			newInput("Repeat the password", true),
		}
		m.ack = components.NewCheckbox("I understand a lost password cannot be recovered")
	} else {
		m.fields = []string{"Name", "Phrase"}
		m.inputs = []textinput.Model{
			newInput("Cold storage", false),
			newInput("12 or 24 words separated by spaces", false),
		}
		m.inputs[1].CharLimit = 0
		m.ack = nil
	}
	return m.setFocus(0)
}

func newInput(placeholder string, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 64
	in.Width = 40
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	return in
}

// focusCount includes the acknowledgement checkbox on the create form.
func (m *Model) focusCount() int {
	if m.ack != nil {
		return len(m.inputs) + 1
	}
	return len(m.inputs)
}

func (m *Model) setFocus(i int) tea.Cmd {
	n := m.focusCount()
	if n == 0 {
		return nil
	}
	m.focus = (i%n + n) % n
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == m.focus {
			cmd = m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	if m.ack != nil {
		m.ack.WithFocused(m.focus == len(m.inputs))
	}
	return cmd
}

func (m *Model) value(field string) string {
	for i, f := range m.fields {
		if f == field {
			return m.inputs[i].Value()
		}
	}
	return ""
}

// submit validates the active form and moves to review when it passes.
func (m *Model) submit() bool {
	var errs []error
	var vault Vault
	switch m.step {
	case StepCreate:
		form := CreateForm{
			Name:         m.value("Name"),
			Password:     m.value("Password"),
			Confirm:      m.value("Confirm"),
			Acknowledged: m.ack.Checked(),
		}
		errs = ValidateForm(form)
		vault = Vault{Name: form.Name, Words: 24}
	case StepImport:
		form := ImportForm{Name: m.value("Name"), Phrase: NormalizePhrase(m.value("Phrase"))}
		errs = ValidateForm(form)
		vault = Vault{Name: form.Name, Imported: true, Words: PhraseWords(form.Phrase)}
	default:
		return false
	}

	m.issues = Issues(errs)
	if len(errs) > 0 {
		m.env.Log.WithFields(map[string]any{"step": m.step.String(), "issues": len(errs)}).Debug("wallet form rejected")
		return false
	}

	vault.ID = m.newID()
	m.vault = vault
	m.step = StepReview
	return true
}

func (m *Model) confirmDiscard() tea.Cmd {
	if m.env.Dialogs == nil {
		return m.leave()
	}
	m.discard = false
	m.env.Dialogs.Present(components.ConfirmDialog(
		"Discard setup?",
		"Nothing has been saved yet. You can start again at any time.",
		"Discard",
		func() { m.discard = true },
	))
	return nil
}

func (m *Model) leave() tea.Cmd {
	if m.env.Router != nil && m.env.Router.CanGoBack() {
		return m.env.Router.Back()
	}
	return tea.Quit
}
