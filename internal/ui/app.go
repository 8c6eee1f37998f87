package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Alturino/inventory/internal/store"
	"github.com/Alturino/inventory/pkg/response"
)

type mutationOp int

const (
	opCreate mutationOp = iota
	opUpdate
	opDelete
)

type (
	productsMsg struct {
		products []response.Product
		err      error
	}
	mutationDoneMsg struct {
		op  mutationOp
		err error
	}
	notificationMsg store.Notification
	openFormMsg     struct{ product *response.Product }
	closeFormMsg    struct{}
)

type sessionState int

const (
	stateList sessionState = iota
	stateForm
)

// Model is the root of the terminal client: the product list with the form
// layered on top while creating or editing, plus a transient notification
// line fed by the store.
type Model struct {
	ctx          context.Context
	state        sessionState
	list         ListModel
	form         FormModel
	store        *store.ProductStore
	styles       Styles
	notification string
	notifyLevel  store.Level
}

func NewModel(c context.Context, st *store.ProductStore) Model {
	return Model{
		ctx:    c,
		state:  stateList,
		list:   NewListModel(c, st),
		store:  st,
		styles: DefaultStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.list.Init(), listenForNotifications(m.store))
}

func listenForNotifications(st *store.ProductStore) tea.Cmd {
	return func() tea.Msg {
		return notificationMsg(<-st.Notifications())
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.state == stateList && !m.list.confirming {
				return m, tea.Quit
			}
		}

	case notificationMsg:
		m.notification = msg.Message
		m.notifyLevel = msg.Level
		return m, listenForNotifications(m.store)

	case openFormMsg:
		m.form = NewFormModel(m.ctx, m.store, msg.product)
		m.state = stateForm
		return m, m.form.Init()

	case closeFormMsg:
		m.state = stateList
		return m, m.list.fetch()

	case mutationDoneMsg:
		// The form closes only on confirmed success; after a failure it
		// stays open with the entered values intact. The cache was already
		// invalidated by the store, so a refetch picks up the new state.
		if msg.err == nil && msg.op != opDelete && m.state == stateForm {
			m.state = stateList
		}
		return m, m.list.fetch()
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	if m.state == stateForm {
		m.form, cmd = m.form.Update(msg)
		cmds = append(cmds, cmd)
		if _, isKey := msg.(tea.KeyMsg); isKey {
			return m, tea.Batch(cmds...)
		}
	}
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	body := m.list.View()
	if m.state == stateForm {
		body = m.form.View()
	}

	notification := ""
	if m.notification != "" {
		style := m.styles.Success
		if m.notifyLevel == store.LevelError {
			style = m.styles.Failure
		}
		notification = "\n" + style.Render(m.notification)
	}

	return m.styles.Title.Render("Inventory Control") + "\n\n" + body + notification + "\n"
}
