package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	tokenledger "github.com/solquad/token-ledger"
	"github.com/solquad/token-ledger/host"
	"github.com/solquad/token-ledger/instruction"
	"github.com/solquad/token-ledger/store"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	opStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type fieldKind int

const (
	fieldAccount fieldKind = iota
	fieldAmount
)

type fieldInfo struct {
	name string
	kind fieldKind
}

type opInfo struct {
	name   string
	fields []fieldInfo
}

var operations = []opInfo{
	{"initialize", []fieldInfo{
		{"owner", fieldAccount},
		{"total_supply", fieldAmount},
	}},
	{"transfer", []fieldInfo{
		{"sender", fieldAccount},
		{"recipient", fieldAccount},
		{"amount", fieldAmount},
	}},
	{"balance", []fieldInfo{
		{"account", fieldAccount},
	}},
	{"approve", []fieldInfo{
		{"owner", fieldAccount},
		{"spender", fieldAccount},
		{"amount", fieldAmount},
	}},
}

type modelState int

const (
	stateSelectOp modelState = iota
	stateInputArgs
	stateShowResult
)

type interactiveModel struct {
	err       error
	store     *store.Store
	processor *host.Processor
	ledgerID  string
	result    string
	inputs    []textinput.Model
	selected  int
	focusIdx  int
	state     modelState
}

type callResultMsg struct {
	err    error
	result string
}

func newInteractiveModel(st *store.Store, ledgerID string) *interactiveModel {
	return &interactiveModel{
		store:     st,
		processor: host.NewProcessor(st),
		ledgerID:  ledgerID,
		state:     stateSelectOp,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state != stateInputArgs || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectOp && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectOp && m.selected < len(operations)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectOp:
				m.prepareInputs()
				m.state = stateInputArgs

			case stateInputArgs:
				return m, m.callOperation

			case stateShowResult:
				m.state = stateSelectOp
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelectOp
				m.inputs = nil
			case stateShowResult:
				m.state = stateSelectOp
				m.result = ""
				m.err = nil
			}
		}

	case callResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputArgs {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	op := operations[m.selected]
	m.inputs = make([]textinput.Model, len(op.fields))
	for i, f := range op.fields {
		ti := textinput.New()
		ti.Placeholder = fieldTypeStr(f.kind)
		ti.Prompt = f.name + ": "
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *interactiveModel) callOperation() tea.Msg {
	op := operations[m.selected]

	accounts := make([]tokenledger.AccountID, 0, len(op.fields))
	amounts := make([]uint64, 0, len(op.fields))
	for i, f := range op.fields {
		value := strings.TrimSpace(m.inputs[i].Value())
		switch f.kind {
		case fieldAccount:
			id, err := parseAccount(value, f.name)
			if err != nil {
				return callResultMsg{err: err}
			}
			accounts = append(accounts, id)
		case fieldAmount:
			v, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				return callResultMsg{err: fmt.Errorf("%s: %w", f.name, err)}
			}
			amounts = append(amounts, v)
		}
	}

	var inv host.Invocation
	inv.LedgerID = m.ledgerID

	switch op.name {
	case "initialize":
		inv.Accounts = accounts
		inv.Data = instruction.Encode(instruction.Initialize{TotalSupply: amounts[0]})
	case "transfer":
		inv.Accounts = accounts
		inv.Data = instruction.Encode(instruction.Transfer{Amount: amounts[0]})
	case "balance":
		inv.Accounts = accounts
		inv.Data = instruction.Encode(instruction.GetBalance{})
	case "approve":
		// Owner rides in the account list, the spender in the payload.
		inv.Accounts = accounts[:1]
		inv.Data = instruction.Encode(instruction.Approve{Spender: accounts[1], Amount: amounts[0]})
	}

	if err := m.processor.Process(inv); err != nil {
		return callResultMsg{err: err}
	}

	return callResultMsg{result: m.describeResult(op.name, accounts, amounts)}
}

func (m *interactiveModel) describeResult(op string, accounts []tokenledger.AccountID, amounts []uint64) string {
	state, err := m.store.Load(m.ledgerID)
	if err != nil {
		return "applied (state reload failed: " + err.Error() + ")"
	}

	switch op {
	case "initialize":
		return fmt.Sprintf("supply %d minted to %s", amounts[0], accounts[0].Short())
	case "transfer":
		return fmt.Sprintf("sender %s: %d, recipient %s: %d",
			accounts[0].Short(), state.Balance(accounts[0]),
			accounts[1].Short(), state.Balance(accounts[1]))
	case "balance":
		return fmt.Sprintf("balance of %s: %d", accounts[0].Short(), state.Balance(accounts[0]))
	case "approve":
		return fmt.Sprintf("%s may spend %d on behalf of %s",
			accounts[1].Short(), state.Allowance(accounts[0], accounts[1]), accounts[0].Short())
	}
	return "applied"
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Token Ledger"))
	b.WriteString(" ")
	b.WriteString(m.ledgerID)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectOp:
		b.WriteString("Select an operation:\n\n")
		for i, op := range operations {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + formatOp(op)))
			} else {
				b.WriteString(cursor + formatOp(op))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter choose • q quit"))

	case stateInputArgs:
		op := operations[m.selected]
		b.WriteString(fmt.Sprintf("Submitting %s\n\n", opStyle.Render(op.name)))
		for i, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString(" ")
			b.WriteString(typeStyle.Render(fieldTypeStr(op.fields[i].kind)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter submit • esc back"))

	case stateShowResult:
		op := operations[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", opStyle.Render(op.name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func formatOp(op opInfo) string {
	var fields []string
	for _, f := range op.fields {
		fields = append(fields, f.name+": "+typeStyle.Render(fieldTypeStr(f.kind)))
	}
	return opStyle.Render(op.name) + "(" + strings.Join(fields, ", ") + ")"
}

func fieldTypeStr(kind fieldKind) string {
	switch kind {
	case fieldAccount:
		return "account"
	case fieldAmount:
		return "u64"
	default:
		return "?"
	}
}

func runInteractive(dbDir, ledgerID string) error {
	st, err := store.Open(dbDir)
	if err != nil {
		return err
	}
	defer st.Close()

	p := tea.NewProgram(newInteractiveModel(st, ledgerID), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
