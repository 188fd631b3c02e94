package services

import "github.com/petpalhq/petpal/internal/models"

const (
	RoleAdmin        = "Admin"
	RoleUser         = "User"
	RoleVeterinarian = "Veterinarian"
)

// Operation categories the access policy distinguishes. Read covers every
// pet-scoped record fetch. Clinical writes are health records and
// vaccinations. Appointment writes are split out because veterinarians may
// schedule appointments but not touch the rest of the care log. Care-logistics
// writes cover medications, weights, feeding schedules, the pet profile
// itself and its owner list.
type Operation int

const (
	OpReadPetRecords Operation = iota
	OpWriteClinical
	OpWriteAppointments
	OpWriteCareLogistics
)

type Principal struct {
	ProfileID  uint
	IdentityID string
	Roles      []string
}

func (principal Principal) HasRole(role string) bool {
	for _, held := range principal.Roles {
		if held == role {
			return true
		}
	}
	return false
}

func (principal Principal) IsAdmin() bool {
	return principal.HasRole(RoleAdmin)
}

func (principal Principal) IsVeterinarian() bool {
	return principal.HasRole(RoleVeterinarian)
}

// Allowed decides whether the principal may perform the operation against a
// pet with the given owner list. Deny is the default; a pet with no owners is
// reachable only by admins and veterinarians.
func Allowed(principal Principal, operation Operation, owners []models.PetOwner) bool {
	if principal.IsAdmin() {
		return true
	}

	switch operation {
	case OpReadPetRecords:
		return principal.IsVeterinarian() || isOwner(principal, owners)
	case OpWriteClinical:
		return principal.IsVeterinarian() || isPrimaryOwner(principal, owners)
	case OpWriteAppointments:
		return principal.IsVeterinarian() || isOwner(principal, owners)
	case OpWriteCareLogistics:
		return isOwner(principal, owners)
	}
	return false
}

// AllowedCareProvider guards the personal care-provider directory: entries
// belong to an identity user, not to a pet.
func AllowedCareProvider(principal Principal, provider models.CareProvider) bool {
	if principal.IsAdmin() {
		return true
	}
	return provider.UserID != "" && provider.UserID == principal.IdentityID
}

func isOwner(principal Principal, owners []models.PetOwner) bool {
	for _, owner := range owners {
		if owner.UserProfileID == principal.ProfileID {
			return true
		}
	}
	return false
}

func isPrimaryOwner(principal Principal, owners []models.PetOwner) bool {
	for _, owner := range owners {
		if owner.UserProfileID == principal.ProfileID && owner.IsPrimaryOwner {
			return true
		}
	}
	return false
}
