package services

import (
	"testing"

	"github.com/lufarias/vetor/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func (store *fakeAccountStore) CountAccounts() (int64, error) {
	return int64(len(store.accounts)), nil
}

func (store *fakeContentStore) CountItems() (int64, error) {
	return int64(len(store.items)), nil
}

func (store *fakeMemberStore) CountMembers() (int64, error) {
	return int64(len(store.members)), nil
}

func (store *fakeTraineeStore) CountTrainees() (int64, error) {
	return int64(len(store.trainees)), nil
}

func newSetupFixture() (*SetupService, *fakeAccountStore, *fakeContentStore, *fakeMemberStore, *fakeTraineeStore) {
	accounts := newFakeAccountStore()
	contents := newFakeContentStore()
	members := &fakeMemberStore{}
	trainees := &fakeTraineeStore{}
	service := NewSetupService(accounts, contents, members, trainees, "infoej.com.br")
	return service, accounts, contents, members, trainees
}

func TestEnsureSeedDataPopulatesEmptyTables(t *testing.T) {
	service, accounts, contents, members, trainees := newSetupFixture()

	require.NoError(t, service.EnsureSeedData(AdminBootstrap{}))

	assert.Len(t, accounts.accounts, len(models.DefaultSeedAccounts()))
	assert.Len(t, contents.items, len(models.DefaultContentCatalog()))
	assert.Len(t, members.members, len(models.DefaultMemberCatalog()))
	assert.Len(t, trainees.trainees, len(models.DefaultTraineeCatalog()))

	admin, err := accounts.FindByNormalizedEmail("admin@infoej.com.br")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))

	external, err := accounts.FindByNormalizedEmail("joao@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleTrainee, external.Role)
}

func TestEnsureSeedDataAddsBootstrapAdmin(t *testing.T) {
	service, accounts, _, _, _ := newSetupFixture()

	require.NoError(t, service.EnsureSeedData(AdminBootstrap{
		Name:     "Operações",
		Email:    "Admin.Ops@InfoEJ.com.br",
		Password: "super-secreta",
	}))

	account, err := accounts.FindByNormalizedEmail("admin.ops@infoej.com.br")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, account.Role)
	assert.Equal(t, "Operações", account.Name)
}

func TestEnsureSeedDataLeavesPopulatedTablesAlone(t *testing.T) {
	service, accounts, _, _, _ := newSetupFixture()
	seedAccount(t, accounts, "existente@infoej.com.br", "123456", models.RoleMember)

	require.NoError(t, service.EnsureSeedData(AdminBootstrap{}))

	assert.Len(t, accounts.accounts, 1)
}

func TestEnsureSeedDataIsIdempotent(t *testing.T) {
	service, accounts, contents, members, trainees := newSetupFixture()

	require.NoError(t, service.EnsureSeedData(AdminBootstrap{}))
	require.NoError(t, service.EnsureSeedData(AdminBootstrap{}))

	assert.Len(t, accounts.accounts, len(models.DefaultSeedAccounts()))
	assert.Len(t, contents.items, len(models.DefaultContentCatalog()))
	assert.Len(t, members.members, len(models.DefaultMemberCatalog()))
	assert.Len(t, trainees.trainees, len(models.DefaultTraineeCatalog()))
}
