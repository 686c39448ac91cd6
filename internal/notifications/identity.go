package notifications

import (
	"strings"

	"github.com/playmakerhq/playmaker/backend/internal/models"
	"github.com/playmakerhq/playmaker/backend/internal/repositories"
)

// FallbackDisplayName is used whenever no profile source yields a name. It is
// never empty, so persisted messages and feed projections can never render a
// blank or "undefined" actor.
const FallbackDisplayName = "Someone"

// Identity is the best-available presentation of a user.
type Identity struct {
	UserID        uint   `json:"id"`
	Name          string `json:"name"`
	ProfilePicURL string `json:"profile_pic_url"`
	Role          string `json:"role"`
}

// UserSource supplies base account records.
type UserSource interface {
	GetUserByID(id uint) (*models.User, error)
}

// profileProvider resolves display data for one role-specific profile
// location. Providers are tried in priority order; the first hit wins.
type profileProvider interface {
	resolve(user *models.User) (name, avatar string, ok bool)
}

type providerFunc func(user *models.User) (string, string, bool)

func (f providerFunc) resolve(user *models.User) (string, string, bool) { return f(user) }

// IdentityResolver resolves a user id to display name and avatar. It starts
// from the base account record, then prefers the role-specific profile tables,
// which are the canonical source of display data. It is stateless: every call
// re-reads the source of truth, so the feed reflects profile edits
// immediately. The same resolver serves both the write path (phrasing the
// message) and the read path (enriching the feed).
type IdentityResolver struct {
	users     UserSource
	providers map[string][]profileProvider
}

// NewIdentityResolver creates a new IdentityResolver backed by the role
// profile tables.
func NewIdentityResolver(users UserSource, profiles repositories.ProfileRepository) *IdentityResolver {
	student := providerFunc(func(u *models.User) (string, string, bool) {
		p, err := profiles.StudentByUserID(u.ID)
		if err != nil {
			return "", "", false
		}
		return p.FullName, p.AvatarURL, true
	})
	schoolAdmin := providerFunc(func(u *models.User) (string, string, bool) {
		p, err := profiles.SchoolAdminByUserID(u.ID)
		if err != nil {
			return "", "", false
		}
		return p.FullName, p.AvatarURL, true
	})
	systemAdmin := providerFunc(func(u *models.User) (string, string, bool) {
		p, err := profiles.SystemAdminByUserID(u.ID)
		if err != nil {
			return "", "", false
		}
		return p.FullName, p.AvatarURL, true
	})
	viewer := providerFunc(func(u *models.User) (string, string, bool) {
		p, err := profiles.ViewerByUserID(u.ID)
		if err != nil {
			return "", "", false
		}
		return p.FullName, p.AvatarURL, true
	})
	scout := providerFunc(func(u *models.User) (string, string, bool) {
		p, err := profiles.ScoutByUserID(u.ID)
		if err != nil {
			return "", "", false
		}
		return p.FullName, p.AvatarURL, true
	})
	// Old scouting-tool migrations left scout identity split across tables:
	// some accounts only have a legacy scout_admins row, linked by LinkedID
	// or, for the earliest rows, only by email.
	legacyScoutByID := providerFunc(func(u *models.User) (string, string, bool) {
		if u.LinkedID == nil {
			return "", "", false
		}
		p, err := profiles.LegacyScoutAdminByID(*u.LinkedID)
		if err != nil {
			return "", "", false
		}
		return p.FullName, p.AvatarURL, true
	})
	legacyScoutByEmail := providerFunc(func(u *models.User) (string, string, bool) {
		if u.Email == "" {
			return "", "", false
		}
		p, err := profiles.LegacyScoutAdminByEmail(u.Email)
		if err != nil {
			return "", "", false
		}
		return p.FullName, p.AvatarURL, true
	})

	scoutChain := []profileProvider{scout, legacyScoutByID, legacyScoutByEmail}

	return &IdentityResolver{
		users: users,
		providers: map[string][]profileProvider{
			models.RoleStudent:     {student},
			models.RoleSchoolAdmin: {schoolAdmin},
			models.RoleSystemAdmin: {systemAdmin},
			models.RoleViewer:      {viewer},
			models.RoleScout:       scoutChain,
			models.RoleScoutAdmin:  scoutChain,
		},
	}
}

// Resolve returns the best available identity for a user. It never returns an
// empty name: if no source yields one, the fallback label is used.
func (r *IdentityResolver) Resolve(userID uint) Identity {
	identity := Identity{UserID: userID, Name: FallbackDisplayName}

	user, err := r.users.GetUserByID(userID)
	if err != nil {
		return identity
	}
	identity.Role = user.Role
	if user.Name != "" {
		identity.Name = user.Name
	}
	identity.ProfilePicURL = user.ProfilePicURL

	for _, provider := range r.providers[user.Role] {
		name, avatar, ok := provider.resolve(user)
		if !ok {
			continue
		}
		if name != "" {
			identity.Name = name
		}
		if avatar != "" {
			identity.ProfilePicURL = avatar
		}
		break
	}

	if strings.TrimSpace(identity.Name) == "" {
		identity.Name = FallbackDisplayName
	}
	return identity
}
