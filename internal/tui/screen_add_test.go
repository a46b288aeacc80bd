package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/account-vault/internal/mock"
	"github.com/MKhiriev/account-vault/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setField(t *testing.T, m *AddModel, key, value string) {
	t.Helper()
	for i, f := range accountFormFields {
		if f.key == key {
			m.inputs[i].SetValue(value)
			return
		}
	}
	t.Fatalf("unknown form field %q", key)
}

func TestAddModel_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockVaultService(ctrl)
	m := NewAddModel(context.Background(), vault)

	setField(t, m, "title", " github main ")
	setField(t, m, "tags", "work, devops ,")
	setField(t, m, models.FieldUsername, "alice")
	setField(t, m, models.FieldPassword, " p@ss ")
	setField(t, m, "platform", "github.com")
	setField(t, m, "priority", "high")

	wantAcc := models.Account{Title: "github main", Tags: "work,devops", Username: "alice", Password: " p@ss "}
	wantMeta := models.Meta{"platform": "github.com", "priority": "high"}
	vault.EXPECT().Create(gomock.Any(), wantAcc, wantMeta).Return(models.Record{ID: "id-1"}, nil)

	_, cmd := m.Update(keyOf(tea.KeyCtrlS))
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	_, cmd = m.Update(cmd())
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageList, Payload: reloadMsg{}}, cmd())
	assert.Empty(t, m.inputs[0].Value())
	assert.False(t, m.submitting)
}

func TestAddModel_EmptyFormIsNotSent(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewAddModel(context.Background(), mock.NewMockVaultService(ctrl))

	setField(t, m, "platform", "github.com")

	_, cmd := m.Update(keyOf(tea.KeyCtrlS))

	assert.Nil(t, cmd)
	assert.False(t, m.submitting)
	assert.NotEmpty(t, m.status)
}

func TestAddModel_CreateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewAddModel(context.Background(), mock.NewMockVaultService(ctrl))
	setField(t, m, "title", "github")
	m.submitting = true

	_, cmd := m.Update(recordCreatedMsg{err: assert.AnError})

	require.NotNil(t, cmd)
	assert.Equal(t, errorMsg{err: assert.AnError}, cmd())
	assert.Equal(t, "github", m.inputs[0].Value())
}

func TestAddModel_FocusCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewAddModel(context.Background(), mock.NewMockVaultService(ctrl))

	m.Update(keyOf(tea.KeyTab))
	assert.Equal(t, 1, m.focus)

	m.Update(keyOf(tea.KeyShiftTab))
	m.Update(keyOf(tea.KeyShiftTab))
	assert.Equal(t, len(accountFormFields)-1, m.focus)

	m.Update(runes("x"))
	assert.Equal(t, "x", m.inputs[len(accountFormFields)-1].Value())
}

func TestAddModel_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewAddModel(context.Background(), mock.NewMockVaultService(ctrl))
	setField(t, m, "title", "draft")

	_, cmd := m.Update(keyOf(tea.KeyEsc))

	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageList}, cmd())
	assert.Empty(t, m.inputs[0].Value())
}

func TestAddModel_PasswordIsMasked(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewAddModel(context.Background(), mock.NewMockVaultService(ctrl))
	setField(t, m, models.FieldPassword, "hunter2")

	assert.NotContains(t, m.View(), "hunter2")
}
