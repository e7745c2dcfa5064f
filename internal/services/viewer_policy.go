package services

import "github.com/lufarias/vetor/internal/models"

// VisibleAudiences narrows the content catalog per viewer role: admins and
// members see both audiences, trainees only trainee material.
func VisibleAudiences(role string) []string {
	if role == models.RoleTrainee {
		return []string{models.AudienceTrainee}
	}
	return []string{models.AudienceMember, models.AudienceTrainee}
}

func CanViewAudience(role string, audience string) bool {
	for _, visible := range VisibleAudiences(role) {
		if visible == audience {
			return true
		}
	}
	return false
}
