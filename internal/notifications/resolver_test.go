package notifications

import (
	"errors"
	"testing"

	"github.com/playmakerhq/playmaker/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFollowerSource struct {
	followers map[uint][]models.User
	err       error
}

func (f *fakeFollowerSource) GetFollowers(studentID uint) ([]models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.followers[studentID], nil
}

type fakeRoleSource struct {
	byRole map[string][]models.User
}

func (f *fakeRoleSource) GetUsersByRole(role string, schoolID *uint) ([]models.User, error) {
	var out []models.User
	for _, u := range f.byRole[role] {
		if schoolID != nil && (u.SchoolID == nil || *u.SchoolID != *schoolID) {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func user(id uint, role string, schoolID *uint) models.User {
	return models.User{ID: id, Role: role, SchoolID: schoolID}
}

func TestFollowersOf_ExcludesActor(t *testing.T) {
	follows := &fakeFollowerSource{followers: map[uint][]models.User{
		10: {user(1, models.RoleViewer, nil), user(2, models.RoleScout, nil), user(10, models.RoleStudent, nil)},
	}}
	r := NewRecipientResolver(follows, &fakeRoleSource{})

	recipients, err := r.FollowersOf(10, 10)
	require.NoError(t, err)
	assert.Len(t, recipients, 2)
	for _, rec := range recipients {
		assert.NotEqual(t, uint(10), rec.UserID)
	}
}

func TestFollowersOf_EmptyIsNotAnError(t *testing.T) {
	r := NewRecipientResolver(&fakeFollowerSource{followers: map[uint][]models.User{}}, &fakeRoleSource{})

	recipients, err := r.FollowersOf(99, 1)
	require.NoError(t, err)
	assert.Empty(t, recipients)
}

func TestFollowersOf_PropagatesLookupError(t *testing.T) {
	r := NewRecipientResolver(&fakeFollowerSource{err: errors.New("boom")}, &fakeRoleSource{})

	_, err := r.FollowersOf(1, 2)
	assert.Error(t, err)
}

func TestRoleInScope_SchoolFilter(t *testing.T) {
	school1, school2 := uint(1), uint(2)
	users := &fakeRoleSource{byRole: map[string][]models.User{
		models.RoleSchoolAdmin: {
			user(1, models.RoleSchoolAdmin, &school1),
			user(2, models.RoleSchoolAdmin, &school1),
			user(3, models.RoleSchoolAdmin, &school2),
		},
	}}
	r := NewRecipientResolver(&fakeFollowerSource{}, users)

	recipients, err := r.RoleInScope(models.RoleSchoolAdmin, &school1, 0)
	require.NoError(t, err)
	assert.Len(t, recipients, 2)
}

func TestUnionOfRoles_DeduplicatesAndExcludes(t *testing.T) {
	// User 5 is both a system admin and a scout admin; user 7 is the actor.
	users := &fakeRoleSource{byRole: map[string][]models.User{
		models.RoleSystemAdmin: {user(5, models.RoleSystemAdmin, nil), user(6, models.RoleSystemAdmin, nil)},
		models.RoleScoutAdmin:  {user(5, models.RoleScoutAdmin, nil), user(7, models.RoleScoutAdmin, nil)},
	}}
	r := NewRecipientResolver(&fakeFollowerSource{}, users)

	recipients, err := r.UnionOfRoles(7,
		RoleQuery{Role: models.RoleSystemAdmin},
		RoleQuery{Role: models.RoleScoutAdmin},
	)
	require.NoError(t, err)
	assert.Len(t, recipients, 2)

	seen := map[uint]int{}
	for _, rec := range recipients {
		seen[rec.UserID]++
	}
	assert.Equal(t, 1, seen[5])
	assert.Equal(t, 1, seen[6])
	assert.Zero(t, seen[7])
}

func TestExplicitSet_ExcludesActorAndDuplicates(t *testing.T) {
	r := NewRecipientResolver(&fakeFollowerSource{}, &fakeRoleSource{})

	recipients := r.ExplicitSet(3, 1, 2, 2, 3)
	assert.Len(t, recipients, 2)
}
