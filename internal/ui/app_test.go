package ui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alturino/inventory/internal/store"
)

func newAppInFormState(fake *fakeAPI) (Model, *store.ProductStore) {
	st := store.NewProductStore(fake)
	model := NewModel(context.Background(), st)
	model.form = NewFormModel(context.Background(), st, nil)
	model.state = stateForm
	return model, st
}

func TestSuccessfulCreateClosesForm(t *testing.T) {
	model, _ := newAppInFormState(&fakeAPI{})

	updated, _ := model.Update(mutationDoneMsg{op: opCreate, err: nil})

	m, ok := updated.(Model)
	require.True(t, ok)
	assert.Equal(t, stateList, m.state)
}

func TestFailedCreateKeepsFormOpen(t *testing.T) {
	fake := &fakeAPI{createErr: assert.AnError}
	model, st := newAppInFormState(fake)
	model.form.setValues("PROD001", "Widget", "5", "9.99")

	form, cmd := model.form.submit()
	model.form = form
	require.NotNil(t, cmd)

	msg := cmd()
	done, ok := msg.(mutationDoneMsg)
	require.True(t, ok)
	require.Error(t, done.err)

	updated, _ := model.Update(done)
	m, ok := updated.(Model)
	require.True(t, ok)
	assert.Equal(t, stateForm, m.state)
	assert.Equal(t, "PROD001", m.form.inputs[fieldSKU].Value())

	notification := <-st.Notifications()
	assert.Equal(t, store.LevelError, notification.Level)
	assert.Equal(t, "error creating product", notification.Message)
}

func TestDeleteSuccessDoesNotTouchFormState(t *testing.T) {
	model, _ := newAppInFormState(&fakeAPI{})

	updated, _ := model.Update(mutationDoneMsg{op: opDelete, err: nil})

	m, ok := updated.(Model)
	require.True(t, ok)
	assert.Equal(t, stateForm, m.state)
}

func TestNotificationRendersInView(t *testing.T) {
	fake := &fakeAPI{}
	st := store.NewProductStore(fake)
	model := NewModel(context.Background(), st)

	updated, cmd := model.Update(notificationMsg{
		Level:   store.LevelSuccess,
		Message: "product created successfully",
	})
	require.NotNil(t, cmd)

	m, ok := updated.(Model)
	require.True(t, ok)
	assert.Contains(t, m.View(), "product created successfully")
}
