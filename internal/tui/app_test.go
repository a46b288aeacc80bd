package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/account-vault/internal/app"
	"github.com/MKhiriev/account-vault/internal/crypto"
	"github.com/MKhiriev/account-vault/internal/logger"
	"github.com/MKhiriev/account-vault/internal/mock"
	"github.com/MKhiriev/account-vault/internal/session"
	"github.com/MKhiriev/account-vault/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRoot(t *testing.T, start string) RootModel {
	t.Helper()

	ctrl := gomock.NewController(t)
	vault := mock.NewMockVaultService(ctrl)
	ctx := context.Background()

	pages := map[string]tea.Model{
		pageUnlock: NewUnlockModel(vault),
		pageList:   NewListModel(ctx, vault),
		pageAdd:    NewAddModel(ctx, vault),
	}
	return NewRootModel(pages, start, models.NewAppBuildInfo("v1.2.3", "2026-10-01", "abc123"), logger.Nop())
}

func TestRootModel_ErrorOverlay(t *testing.T) {
	r := newTestRoot(t, pageList)

	model, _ := r.Update(errorMsg{err: crypto.ErrAuthentication})
	r = model.(RootModel)
	require.NotNil(t, r.overlay)
	assert.Contains(t, r.View(), app.MsgAuthentication)

	model, _ = r.Update(runes("q"))
	r = model.(RootModel)
	assert.NotNil(t, r.overlay, "keys other than enter/esc are swallowed")

	model, _ = r.Update(keyOf(tea.KeyEsc))
	r = model.(RootModel)
	assert.Nil(t, r.overlay)
}

func TestRootModel_LockedErrorReturnsToGate(t *testing.T) {
	r := newTestRoot(t, pageList)

	model, cmd := r.Update(errorMsg{err: session.ErrNotUnlocked})
	r = model.(RootModel)

	assert.Equal(t, pageUnlock, r.currentPage)
	assert.NotNil(t, cmd)
	assert.NotNil(t, r.overlay)
}

func TestRootModel_Navigate(t *testing.T) {
	r := newTestRoot(t, pageUnlock)

	model, cmd := r.Update(NavigateTo{Page: pageList, Payload: reloadMsg{}})
	r = model.(RootModel)
	assert.Equal(t, pageList, r.currentPage)
	require.NotNil(t, cmd)
	assert.Equal(t, reloadMsg{}, cmd())

	model, cmd = r.Update(NavigateTo{Page: "missing"})
	r = model.(RootModel)
	assert.Equal(t, pageList, r.currentPage)
	assert.Nil(t, cmd)
}

func TestRootModel_BuildInfo(t *testing.T) {
	r := newTestRoot(t, pageList)

	model, _ := r.Update(runes("v"))
	r = model.(RootModel)
	require.True(t, r.showBuildInfo)
	assert.Contains(t, r.View(), "v1.2.3")
	assert.Contains(t, r.View(), "abc123")

	model, _ = r.Update(keyOf(tea.KeyEsc))
	r = model.(RootModel)
	assert.False(t, r.showBuildInfo)
}

func TestRootModel_BuildInfoIgnoredWhileTyping(t *testing.T) {
	r := newTestRoot(t, pageUnlock)

	model, _ := r.Update(runes("v"))
	r = model.(RootModel)

	assert.False(t, r.showBuildInfo)
	assert.Equal(t, "v", r.pages[pageUnlock].(*UnlockModel).input.Value())
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	r := newTestRoot(t, pageAdd)

	_, cmd := r.Update(keyOf(tea.KeyCtrlC))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestNew_NilVault(t *testing.T) {
	_, err := New(nil, models.AppBuildInfo{}, nil)
	assert.ErrorIs(t, err, ErrNilVault)
}
