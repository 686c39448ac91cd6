package notifications

import (
	"testing"

	"github.com/playmakerhq/playmaker/backend/internal/models"
	"github.com/playmakerhq/playmaker/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdentityResolver(t *testing.T) (*IdentityResolver, *engineDB) {
	t.Helper()
	db := setupEngineDB(t)
	users := repositories.NewPostgresUserRepository(db.gorm)
	profiles := repositories.NewPostgresProfileRepository(db.gorm)
	return NewIdentityResolver(users, profiles), db
}

func TestResolve_UnknownUserGetsFallback(t *testing.T) {
	r, _ := newIdentityResolver(t)

	identity := r.Resolve(999)
	assert.Equal(t, FallbackDisplayName, identity.Name)
	assert.NotEmpty(t, identity.Name)
}

func TestResolve_BaseAccountName(t *testing.T) {
	r, db := newIdentityResolver(t)
	db.addUser(t, models.User{ID: 1, Name: "Jordan Reyes", Email: "jr@example.com", Role: models.RoleViewer, ProfilePicURL: "http://img/base.png"})

	identity := r.Resolve(1)
	assert.Equal(t, "Jordan Reyes", identity.Name)
	assert.Equal(t, "http://img/base.png", identity.ProfilePicURL)
	assert.Equal(t, models.RoleViewer, identity.Role)
}

func TestResolve_ProfileTableWinsOverBaseAccount(t *testing.T) {
	r, db := newIdentityResolver(t)
	db.addUser(t, models.User{ID: 2, Name: "stale name", Email: "s@example.com", Role: models.RoleStudent})
	require.NoError(t, db.gorm.Create(&models.StudentProfile{UserID: 2, FullName: "Avery Cole", AvatarURL: "http://img/avery.png"}).Error)

	identity := r.Resolve(2)
	assert.Equal(t, "Avery Cole", identity.Name)
	assert.Equal(t, "http://img/avery.png", identity.ProfilePicURL)
}

func TestResolve_ScoutFallsBackToLegacyTableByLinkedID(t *testing.T) {
	r, db := newIdentityResolver(t)
	linked := uint(44)
	db.addUser(t, models.User{ID: 3, Email: "scout@example.com", Role: models.RoleScoutAdmin, LinkedID: &linked})
	require.NoError(t, db.gorm.Create(&models.ScoutAdmin{ID: 44, Email: "old@example.com", FullName: "Riley Okafor"}).Error)

	identity := r.Resolve(3)
	assert.Equal(t, "Riley Okafor", identity.Name)
}

func TestResolve_ScoutFallsBackToLegacyTableByEmail(t *testing.T) {
	r, db := newIdentityResolver(t)
	db.addUser(t, models.User{ID: 4, Email: "vintage@example.com", Role: models.RoleScout})
	require.NoError(t, db.gorm.Create(&models.ScoutAdmin{ID: 45, Email: "vintage@example.com", FullName: "Sasha Lindt"}).Error)

	identity := r.Resolve(4)
	assert.Equal(t, "Sasha Lindt", identity.Name)
}

func TestResolve_ScoutProfileWinsOverLegacy(t *testing.T) {
	r, db := newIdentityResolver(t)
	db.addUser(t, models.User{ID: 5, Email: "both@example.com", Role: models.RoleScout})
	require.NoError(t, db.gorm.Create(&models.ScoutProfile{UserID: 5, FullName: "Current Scout"}).Error)
	require.NoError(t, db.gorm.Create(&models.ScoutAdmin{ID: 46, Email: "both@example.com", FullName: "Legacy Scout"}).Error)

	identity := r.Resolve(5)
	assert.Equal(t, "Current Scout", identity.Name)
}

func TestResolve_NeverReturnsEmptyName(t *testing.T) {
	r, db := newIdentityResolver(t)
	db.addUser(t, models.User{ID: 6, Email: "anon@example.com", Role: models.RoleViewer})

	identity := r.Resolve(6)
	assert.Equal(t, FallbackDisplayName, identity.Name)
	assert.NotContains(t, identity.Name, "undefined")
}
