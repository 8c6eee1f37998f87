package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Alturino/inventory/internal/store"
	"github.com/Alturino/inventory/pkg/response"
)

// ListModel renders the cached product collection as a table. It owns the
// delete confirmation dialog; create and edit hand off to the form through
// openFormMsg.
type ListModel struct {
	ctx      context.Context
	store    *store.ProductStore
	table    table.Model
	spinner  spinner.Model
	products []response.Product
	loading  bool
	fetchErr error

	confirming bool
	confirmID  int64
	confirmSKU string

	styles Styles
}

func NewListModel(c context.Context, st *store.ProductStore) ListModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "SKU", Width: 12},
			{Title: "Product", Width: 24},
			{Title: "Quantity", Width: 14},
			{Title: "Price", Width: 12},
			{Title: "Created", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return ListModel{
		ctx:     c,
		store:   st,
		table:   t,
		spinner: sp,
		loading: true,
		styles:  DefaultStyles(),
	}
}

func (m ListModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch())
}

// fetch reads the product collection through the store; a hit on a valid
// cache never touches the network.
func (m ListModel) fetch() tea.Cmd {
	st := m.store
	c := m.ctx
	return func() tea.Msg {
		products, err := st.Products(c)
		return productsMsg{products: products, err: err}
	}
}

func (m ListModel) Update(msg tea.Msg) (ListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case productsMsg:
		m.loading = false
		m.products = msg.products
		m.fetchErr = msg.err
		m.table.SetRows(m.rows())
		if m.table.Cursor() >= len(m.products) && len(m.products) > 0 {
			m.table.SetCursor(len(m.products) - 1)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.confirming {
			return m.updateConfirm(msg)
		}
		switch msg.String() {
		case "n":
			return m, func() tea.Msg { return openFormMsg{} }
		case "enter", "e":
			if selected, ok := m.selected(); ok {
				return m, func() tea.Msg { return openFormMsg{product: &selected} }
			}
			return m, nil
		case "d":
			// One global in-flight flag: while any delete is pending the
			// delete key is dead on every row.
			if m.store.IsDeleting() {
				return m, nil
			}
			if selected, ok := m.selected(); ok {
				m.confirming = true
				m.confirmID = selected.ID
				m.confirmSKU = selected.SKU
			}
			return m, nil
		case "r":
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.fetch())
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ListModel) updateConfirm(msg tea.KeyMsg) (ListModel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirming = false
		st := m.store
		c := m.ctx
		id := m.confirmID
		return m, func() tea.Msg {
			return mutationDoneMsg{op: opDelete, err: st.DeleteProduct(c, id)}
		}
	case "n", "N", "esc":
		m.confirming = false
		return m, nil
	}
	return m, nil
}

func (m ListModel) selected() (response.Product, bool) {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.products) {
		return response.Product{}, false
	}
	return m.products[cursor], true
}

func (m ListModel) rows() []table.Row {
	rows := make([]table.Row, 0, len(m.products))
	for _, product := range m.products {
		rows = append(rows, table.Row{
			product.SKU,
			product.Name,
			m.styles.Badge(product.Quantity),
			FormatPrice(product.Price),
			FormatDate(product.CreatedAt),
		})
	}
	return rows
}

func (m ListModel) View() string {
	if m.loading {
		return fmt.Sprintf("%s Loading products...", m.spinner.View())
	}

	if m.confirming {
		dialog := fmt.Sprintf(
			"Are you sure you want to delete product %s?\n\n%s",
			m.confirmSKU,
			m.styles.Help.Render("y delete  •  n cancel"),
		)
		return m.styles.Dialog.Render(dialog)
	}

	if len(m.products) == 0 {
		empty := m.styles.EmptyTitle.Render("No products yet") + "\n" +
			m.styles.EmptyHint.Render("Start by adding your first product to the inventory") + "\n\n" +
			m.styles.Help.Render("n add product  •  r refresh  •  q quit")
		if m.fetchErr != nil {
			empty = m.styles.Failure.Render("error loading products") + "\n\n" + empty
		}
		return empty
	}

	help := "n new  •  e edit  •  d delete  •  r refresh  •  q quit"
	if m.store.IsDeleting() {
		help = "deleting...  •  " + help
	}
	return m.table.View() + "\n" + m.styles.Help.Render(help)
}
