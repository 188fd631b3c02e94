package db

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/petpalhq/petpal/internal/models"
	"github.com/petpalhq/petpal/internal/services"
)

func newTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "petpal-test.db")
	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func createTestProfile(t *testing.T, database *gorm.DB, identityID, firstName string) models.UserProfile {
	t.Helper()

	profile := models.UserProfile{
		FirstName:      firstName,
		LastName:       "Tester",
		Email:          firstName + "@example.com",
		IdentityUserID: identityID,
	}
	if err := database.Create(&profile).Error; err != nil {
		t.Fatalf("create profile: %v", err)
	}
	return profile
}

func createTestPet(t *testing.T, database *gorm.DB, ownerProfileID uint, name string) models.Pet {
	t.Helper()

	pet := models.Pet{
		Name:        name,
		Species:     "Dog",
		DateOfBirth: time.Date(2020, 2, 14, 0, 0, 0, 0, time.UTC),
	}
	if err := NewPetRepository(database).CreateWithOwner(&pet, ownerProfileID); err != nil {
		t.Fatalf("create pet: %v", err)
	}
	return pet
}

func TestCreateWithOwnerLinksPrimaryOwner(t *testing.T) {
	database := newTestDatabase(t)
	profile := createTestProfile(t, database, "identity-1", "dana")
	pet := createTestPet(t, database, profile.ID, "Buddy")

	owners, err := NewPetOwnerRepository(database).ListOwners(pet.ID)
	if err != nil {
		t.Fatalf("list owners: %v", err)
	}
	if len(owners) != 1 {
		t.Fatalf("expected 1 owner, got %d", len(owners))
	}
	if owners[0].UserProfileID != profile.ID || !owners[0].IsPrimaryOwner {
		t.Fatalf("expected profile %d as primary owner, got %#v", profile.ID, owners[0])
	}
	if owners[0].UserProfile == nil || owners[0].UserProfile.FirstName != "dana" {
		t.Fatalf("expected the owner profile to be preloaded, got %#v", owners[0].UserProfile)
	}
}

func TestListByOwnerFiltersToLinkedPets(t *testing.T) {
	database := newTestDatabase(t)
	dana := createTestProfile(t, database, "identity-1", "dana")
	sam := createTestProfile(t, database, "identity-2", "sam")
	createTestPet(t, database, dana.ID, "Buddy")
	createTestPet(t, database, sam.ID, "Misha")

	pets, err := NewPetRepository(database).ListByOwner(dana.ID)
	if err != nil {
		t.Fatalf("list by owner: %v", err)
	}
	if len(pets) != 1 || pets[0].Name != "Buddy" {
		t.Fatalf("expected only Buddy for dana, got %#v", pets)
	}
}

func TestOwnershipServiceOverSQLite(t *testing.T) {
	database := newTestDatabase(t)
	dana := createTestProfile(t, database, "identity-1", "dana")
	sam := createTestProfile(t, database, "identity-2", "sam")
	pet := createTestPet(t, database, dana.ID, "Buddy")

	repo := NewPetOwnerRepository(database)
	service := services.NewOwnershipService(repo)

	if _, err := service.AddOwner(pet.ID, sam.ID, true); err != nil {
		t.Fatalf("add owner: %v", err)
	}

	owners, err := repo.ListOwners(pet.ID)
	if err != nil {
		t.Fatalf("list owners: %v", err)
	}
	if len(owners) != 2 {
		t.Fatalf("expected 2 owners, got %d", len(owners))
	}
	primaries := 0
	for _, owner := range owners {
		if owner.IsPrimaryOwner {
			primaries++
			if owner.UserProfileID != sam.ID {
				t.Fatalf("expected sam as the new primary, got profile %d", owner.UserProfileID)
			}
		}
	}
	if primaries != 1 {
		t.Fatalf("expected exactly one primary owner, got %d", primaries)
	}

	if _, err := service.AddOwner(pet.ID, sam.ID, false); !errors.Is(err, services.ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate owner, got %v", err)
	}
}

func TestWeightTrackerOverSQLite(t *testing.T) {
	database := newTestDatabase(t)
	profile := createTestProfile(t, database, "identity-1", "dana")
	pet := createTestPet(t, database, profile.ID, "Buddy")

	tracker := services.NewWeightTracker(NewWeightRepository(database))

	first := models.Weight{PetID: pet.ID, WeightValue: 12.0, WeightUnit: "kg", Date: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)}
	if err := tracker.RecordWeight(&first); err != nil {
		t.Fatalf("record weight: %v", err)
	}
	second := models.Weight{PetID: pet.ID, WeightValue: 12.8, WeightUnit: "kg", Date: time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)}
	if err := tracker.RecordWeight(&second); err != nil {
		t.Fatalf("record weight: %v", err)
	}

	var stored models.Pet
	if err := database.First(&stored, pet.ID).Error; err != nil {
		t.Fatalf("reload pet: %v", err)
	}
	if stored.Weight != 12.8 {
		t.Fatalf("expected denormalized weight 12.8, got %v", stored.Weight)
	}

	if err := tracker.DeleteWeight(second.ID); err != nil {
		t.Fatalf("delete weight: %v", err)
	}
	if err := database.First(&stored, pet.ID).Error; err != nil {
		t.Fatalf("reload pet: %v", err)
	}
	if stored.Weight != 12.0 {
		t.Fatalf("expected weight to fall back to 12.0, got %v", stored.Weight)
	}
}

func TestPetDeleteRemovesDependents(t *testing.T) {
	database := newTestDatabase(t)
	profile := createTestProfile(t, database, "identity-1", "dana")
	pet := createTestPet(t, database, profile.ID, "Buddy")

	records := []any{
		&models.HealthRecord{PetID: pet.ID, RecordType: "Checkup", RecordDate: time.Now()},
		&models.Medication{PetID: pet.ID, Name: "Heartgard", StartDate: time.Now()},
		&models.Weight{PetID: pet.ID, WeightValue: 12, WeightUnit: "kg", Date: time.Now()},
		&models.FeedingSchedule{PetID: pet.ID, FeedingTime: "08:00"},
	}
	for _, record := range records {
		if err := database.Create(record).Error; err != nil {
			t.Fatalf("seed dependent: %v", err)
		}
	}

	if err := NewPetRepository(database).Delete(pet.ID); err != nil {
		t.Fatalf("delete pet: %v", err)
	}

	var count int64
	tables := []any{&models.HealthRecord{}, &models.Medication{}, &models.Weight{}, &models.FeedingSchedule{}, &models.PetOwner{}}
	for _, table := range tables {
		if err := database.Model(table).Where("pet_id = ?", pet.ID).Count(&count).Error; err != nil {
			t.Fatalf("count dependents: %v", err)
		}
		if count != 0 {
			t.Fatalf("expected no rows left in %T for pet %d, got %d", table, pet.ID, count)
		}
	}
	if err := database.First(&models.Pet{}, pet.ID).Error; !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected pet to be gone, got %v", err)
	}
}

func TestMedicationListDueReminders(t *testing.T) {
	database := newTestDatabase(t)
	profile := createTestProfile(t, database, "identity-1", "dana")
	pet := createTestPet(t, database, profile.ID, "Buddy")

	now := time.Now().UTC()
	past := now.Add(-time.Hour)
	future := now.Add(48 * time.Hour)
	reminderTime := "08:00"

	medications := []models.Medication{
		{PetID: pet.ID, Name: "Due", StartDate: now, IsActive: true, ReminderEnabled: true, ReminderTime: &reminderTime, NextReminderDue: &past},
		{PetID: pet.ID, Name: "Later", StartDate: now, IsActive: true, ReminderEnabled: true, ReminderTime: &reminderTime, NextReminderDue: &future},
		{PetID: pet.ID, Name: "Disabled", StartDate: now, IsActive: true, ReminderEnabled: false, NextReminderDue: &past},
	}
	for index := range medications {
		if err := database.Create(&medications[index]).Error; err != nil {
			t.Fatalf("seed medication: %v", err)
		}
	}

	due, err := NewMedicationRepository(database).ListDueReminders(now)
	if err != nil {
		t.Fatalf("list due reminders: %v", err)
	}
	if len(due) != 1 || due[0].Name != "Due" {
		t.Fatalf("expected only the overdue reminder, got %#v", due)
	}
}
