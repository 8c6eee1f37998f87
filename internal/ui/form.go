package ui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/Alturino/inventory/internal/store"
	"github.com/Alturino/inventory/internal/validate"
	"github.com/Alturino/inventory/pkg/request"
	"github.com/Alturino/inventory/pkg/response"
)

type FormMode int

const (
	ModeCreate FormMode = iota
	ModeEdit
)

const (
	fieldSKU = iota
	fieldName
	fieldQuantity
	fieldPrice
	fieldCount
)

var fieldNames = [fieldCount]string{"sku", "name", "quantity", "price"}
var fieldLabels = [fieldCount]string{"SKU", "Name", "Quantity", "Price"}

// FormModel is the create/edit product form. In edit mode it is bound to an
// existing product and keeps its id; in create mode fields start blank. A
// fresh model is constructed on every open, so closing always discards
// unsaved edits.
type FormModel struct {
	ctx     context.Context
	mode    FormMode
	product response.Product
	store   *store.ProductStore
	inputs  [fieldCount]textinput.Model
	focused int
	errors  validate.FieldErrors
	styles  Styles
}

func NewFormModel(c context.Context, st *store.ProductStore, product *response.Product) FormModel {
	m := FormModel{
		ctx:    c,
		mode:   ModeCreate,
		store:  st,
		styles: DefaultStyles(),
	}

	for i := range m.inputs {
		input := textinput.New()
		input.CharLimit = 64
		input.Width = 32
		m.inputs[i] = input
	}
	m.inputs[fieldSKU].Placeholder = "PROD001"
	m.inputs[fieldName].Placeholder = "Product name"
	m.inputs[fieldQuantity].Placeholder = "0"
	m.inputs[fieldPrice].Placeholder = "0.01"

	if product != nil {
		m.mode = ModeEdit
		m.product = *product
		m.inputs[fieldSKU].SetValue(product.SKU)
		m.inputs[fieldName].SetValue(product.Name)
		m.inputs[fieldQuantity].SetValue(strconv.Itoa(product.Quantity))
		m.inputs[fieldPrice].SetValue(product.Price.StringFixed(2))
	}

	m.inputs[fieldSKU].Focus()
	return m
}

func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return closeFormMsg{} }
		case "tab", "down":
			m.focus((m.focused + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m.focus((m.focused + fieldCount - 1) % fieldCount)
			return m, nil
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *FormModel) focus(index int) {
	m.inputs[m.focused].Blur()
	m.focused = index
	m.inputs[m.focused].Focus()
}

func (m FormModel) saving() bool {
	return m.store.IsCreating() || m.store.IsUpdating()
}

// submit validates and dispatches the mutation. Validation failures render
// inline and never reach the network. While a create or update is already in
// flight the submit is ignored, mirroring a disabled submit button.
func (m FormModel) submit() (FormModel, tea.Cmd) {
	if m.saving() {
		return m, nil
	}

	param, fieldErrors := m.parse()
	if len(fieldErrors) > 0 {
		m.errors = fieldErrors
		return m, nil
	}
	m.errors = nil

	st := m.store
	c := m.ctx
	if m.mode == ModeEdit {
		id := m.product.ID
		return m, func() tea.Msg {
			return mutationDoneMsg{op: opUpdate, err: st.UpdateProduct(c, id, param)}
		}
	}
	return m, func() tea.Msg {
		return mutationDoneMsg{op: opCreate, err: st.CreateProduct(c, param)}
	}
}

func (m FormModel) parse() (request.CreateProduct, validate.FieldErrors) {
	parseErrors := validate.FieldErrors{}

	quantity := 0
	if text := strings.TrimSpace(m.inputs[fieldQuantity].Value()); text != "" {
		parsed, err := strconv.Atoi(text)
		if err != nil {
			parseErrors["quantity"] = "quantity must be a number"
		} else {
			quantity = parsed
		}
	}

	price := decimal.Zero
	if text := strings.TrimSpace(m.inputs[fieldPrice].Value()); text != "" {
		parsed, err := decimal.NewFromString(text)
		if err != nil {
			parseErrors["price"] = "price must be a number"
		} else {
			price = parsed
		}
	}

	param := request.CreateProduct{
		SKU:      strings.TrimSpace(m.inputs[fieldSKU].Value()),
		Name:     strings.TrimSpace(m.inputs[fieldName].Value()),
		Quantity: quantity,
		Price:    price,
	}

	fieldErrors := validate.Struct(m.ctx, param)
	if fieldErrors == nil && len(parseErrors) == 0 {
		return param, nil
	}
	if fieldErrors == nil {
		fieldErrors = validate.FieldErrors{}
	}
	for field, message := range parseErrors {
		fieldErrors[field] = message
	}
	return param, fieldErrors
}

func (m FormModel) View() string {
	var b strings.Builder

	title := "New Product"
	if m.mode == ModeEdit {
		title = "Edit Product"
	}
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n\n")

	for i := range m.inputs {
		b.WriteString(m.styles.FieldLabel.Render(fieldLabels[i]))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		if message, ok := m.errors[fieldNames[i]]; ok {
			b.WriteString(m.styles.FieldError.Render(message))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.saving() {
		b.WriteString(m.styles.SubmitBusy.Render("Saving..."))
	} else {
		b.WriteString(m.styles.SubmitActive.Render("enter save"))
		b.WriteString(m.styles.Help.Render("  •  esc cancel  •  tab next field"))
	}
	b.WriteString("\n")

	return b.String()
}
