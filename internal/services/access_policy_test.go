package services

import (
	"testing"

	"github.com/petpalhq/petpal/internal/models"
)

func ownerList(entries ...models.PetOwner) []models.PetOwner {
	return entries
}

func TestAllowedRoleAndOwnershipMatrix(t *testing.T) {
	owners := ownerList(
		models.PetOwner{UserProfileID: 1, IsPrimaryOwner: true},
		models.PetOwner{UserProfileID: 2},
	)

	admin := Principal{ProfileID: 99, Roles: []string{RoleAdmin}}
	vet := Principal{ProfileID: 98, Roles: []string{RoleVeterinarian}}
	primary := Principal{ProfileID: 1, Roles: []string{RoleUser}}
	coOwner := Principal{ProfileID: 2, Roles: []string{RoleUser}}
	stranger := Principal{ProfileID: 3, Roles: []string{RoleUser}}

	tests := []struct {
		name      string
		principal Principal
		operation Operation
		want      bool
	}{
		{name: "admin reads", principal: admin, operation: OpReadPetRecords, want: true},
		{name: "admin writes clinical", principal: admin, operation: OpWriteClinical, want: true},
		{name: "admin writes appointments", principal: admin, operation: OpWriteAppointments, want: true},
		{name: "admin writes care logistics", principal: admin, operation: OpWriteCareLogistics, want: true},

		{name: "vet reads", principal: vet, operation: OpReadPetRecords, want: true},
		{name: "vet writes clinical", principal: vet, operation: OpWriteClinical, want: true},
		{name: "vet writes appointments", principal: vet, operation: OpWriteAppointments, want: true},
		{name: "vet denied care logistics", principal: vet, operation: OpWriteCareLogistics, want: false},

		{name: "primary owner reads", principal: primary, operation: OpReadPetRecords, want: true},
		{name: "primary owner writes clinical", principal: primary, operation: OpWriteClinical, want: true},
		{name: "primary owner writes appointments", principal: primary, operation: OpWriteAppointments, want: true},
		{name: "primary owner writes care logistics", principal: primary, operation: OpWriteCareLogistics, want: true},

		{name: "co-owner reads", principal: coOwner, operation: OpReadPetRecords, want: true},
		{name: "co-owner denied clinical", principal: coOwner, operation: OpWriteClinical, want: false},
		{name: "co-owner writes appointments", principal: coOwner, operation: OpWriteAppointments, want: true},
		{name: "co-owner writes care logistics", principal: coOwner, operation: OpWriteCareLogistics, want: true},

		{name: "stranger denied read", principal: stranger, operation: OpReadPetRecords, want: false},
		{name: "stranger denied clinical", principal: stranger, operation: OpWriteClinical, want: false},
		{name: "stranger denied appointments", principal: stranger, operation: OpWriteAppointments, want: false},
		{name: "stranger denied care logistics", principal: stranger, operation: OpWriteCareLogistics, want: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := Allowed(testCase.principal, testCase.operation, owners); got != testCase.want {
				t.Fatalf("Allowed(%v, %v) = %t, want %t", testCase.principal.Roles, testCase.operation, got, testCase.want)
			}
		})
	}
}

func TestAllowedPetWithoutOwners(t *testing.T) {
	user := Principal{ProfileID: 1, Roles: []string{RoleUser}}
	if Allowed(user, OpReadPetRecords, nil) {
		t.Fatal("expected plain user to be denied on an ownerless pet")
	}
	admin := Principal{Roles: []string{RoleAdmin}}
	if !Allowed(admin, OpWriteCareLogistics, nil) {
		t.Fatal("expected admin to reach an ownerless pet")
	}
	vet := Principal{Roles: []string{RoleVeterinarian}}
	if !Allowed(vet, OpReadPetRecords, nil) {
		t.Fatal("expected veterinarian to read an ownerless pet")
	}
}

func TestAllowedCareProvider(t *testing.T) {
	provider := models.CareProvider{UserID: "identity-1"}

	if !AllowedCareProvider(Principal{IdentityID: "identity-1"}, provider) {
		t.Fatal("expected owning identity to access its care provider")
	}
	if AllowedCareProvider(Principal{IdentityID: "identity-2"}, provider) {
		t.Fatal("expected foreign identity to be denied")
	}
	if !AllowedCareProvider(Principal{IdentityID: "other", Roles: []string{RoleAdmin}}, provider) {
		t.Fatal("expected admin to access any care provider")
	}
	if AllowedCareProvider(Principal{IdentityID: ""}, models.CareProvider{}) {
		t.Fatal("expected empty identities to never match")
	}
}
