package notifications

import (
	"fmt"

	"github.com/playmakerhq/playmaker/backend/internal/models"
)

// Recipient is one target of a fan-out, tagged with the role it matched as.
type Recipient struct {
	UserID uint
	Role   string
}

// FollowerSource supplies the current followers of a student.
type FollowerSource interface {
	GetFollowers(studentID uint) ([]models.User, error)
}

// RoleSource supplies users holding a role, optionally scoped to one school.
type RoleSource interface {
	GetUsersByRole(role string, schoolID *uint) ([]models.User, error)
}

// RecipientResolver maps an event's scoping entities to a deduplicated set of
// recipients. Every strategy excludes the acting user, so self-caused events
// never notify their own actor. An empty result is a valid outcome.
type RecipientResolver struct {
	follows FollowerSource
	users   RoleSource
}

// NewRecipientResolver creates a new RecipientResolver
func NewRecipientResolver(follows FollowerSource, users RoleSource) *RecipientResolver {
	return &RecipientResolver{follows: follows, users: users}
}

// FollowersOf returns the current followers of a student, minus the actor.
func (r *RecipientResolver) FollowersOf(studentID, excludeID uint) ([]Recipient, error) {
	followers, err := r.follows.GetFollowers(studentID)
	if err != nil {
		return nil, fmt.Errorf("resolve followers of student %d: %w", studentID, err)
	}
	return dedupe(toRecipients(followers), excludeID), nil
}

// RoleInScope returns all users holding a role, optionally within one school,
// minus the actor.
func (r *RecipientResolver) RoleInScope(role string, schoolID *uint, excludeID uint) ([]Recipient, error) {
	users, err := r.users.GetUsersByRole(role, schoolID)
	if err != nil {
		return nil, fmt.Errorf("resolve role %q: %w", role, err)
	}
	return dedupe(toRecipients(users), excludeID), nil
}

// UnionOfRoles combines several role-in-scope queries into one set. A user
// matching more than one role appears once, under the first role matched.
func (r *RecipientResolver) UnionOfRoles(excludeID uint, queries ...RoleQuery) ([]Recipient, error) {
	var combined []Recipient
	for _, q := range queries {
		set, err := r.RoleInScope(q.Role, q.SchoolID, excludeID)
		if err != nil {
			return nil, err
		}
		combined = append(combined, set...)
	}
	return dedupe(combined, excludeID), nil
}

// ExplicitSet wraps a caller-supplied fixed list of user ids, minus the actor.
func (r *RecipientResolver) ExplicitSet(excludeID uint, userIDs ...uint) []Recipient {
	recipients := make([]Recipient, 0, len(userIDs))
	for _, id := range userIDs {
		recipients = append(recipients, Recipient{UserID: id})
	}
	return dedupe(recipients, excludeID)
}

// RoleQuery names one leg of a union-of-roles resolution.
type RoleQuery struct {
	Role     string
	SchoolID *uint
}

func toRecipients(users []models.User) []Recipient {
	recipients := make([]Recipient, 0, len(users))
	for _, u := range users {
		recipients = append(recipients, Recipient{UserID: u.ID, Role: u.Role})
	}
	return recipients
}

func dedupe(recipients []Recipient, excludeID uint) []Recipient {
	seen := make(map[uint]bool, len(recipients))
	out := make([]Recipient, 0, len(recipients))
	for _, rec := range recipients {
		if rec.UserID == 0 || rec.UserID == excludeID || seen[rec.UserID] {
			continue
		}
		seen[rec.UserID] = true
		out = append(out, rec)
	}
	return out
}
