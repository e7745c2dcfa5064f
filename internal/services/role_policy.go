package services

import (
	"strings"

	"github.com/lufarias/vetor/internal/models"
)

// ResolveRole derives the portal role from a normalized email. Addresses on
// the organization domain are staff; a local part starting with "admin" marks
// the administrator. Everyone else enters as a trainee.
func ResolveRole(orgDomain string, email string) string {
	if orgDomain == "" || !strings.HasSuffix(email, "@"+orgDomain) {
		return models.RoleTrainee
	}
	localPart := email[:strings.LastIndex(email, "@")]
	if strings.HasPrefix(localPart, "admin") {
		return models.RoleAdmin
	}
	return models.RoleMember
}

// LandingPath maps a role to its post-login destination.
func LandingPath(role string) string {
	if role == models.RoleAdmin {
		return "/dashboard"
	}
	return "/members"
}

func IsAdminRole(role string) bool {
	return role == models.RoleAdmin
}
