package services

import (
	"fmt"

	"github.com/petpalhq/petpal/internal/models"
)

type WeightStore interface {
	GetWeight(weightID uint) (models.Weight, error)
	ListForPet(petID uint) ([]models.Weight, error)
	InsertWeight(weight *models.Weight) error
	UpdateWeight(weight *models.Weight) error
	DeleteWeight(weightID uint) error
	UpdatePetWeight(petID uint, value float64) error
	Transact(fn func(store WeightStore) error) error
}

// WeightTracker keeps Pet.Weight equal to the most recent weight entry.
// Every mutation and the recompute run in one transaction.
type WeightTracker struct {
	store WeightStore
}

func NewWeightTracker(store WeightStore) *WeightTracker {
	return &WeightTracker{store: store}
}

func (tracker *WeightTracker) RecordWeight(weight *models.Weight) error {
	if weight.WeightValue <= 0 {
		return fmt.Errorf("%w: weight value must be positive", ErrInvalidInput)
	}
	return tracker.store.Transact(func(store WeightStore) error {
		if err := store.InsertWeight(weight); err != nil {
			return err
		}
		return syncPetWeight(store, weight.PetID)
	})
}

func (tracker *WeightTracker) UpdateWeight(weight *models.Weight) error {
	if weight.WeightValue <= 0 {
		return fmt.Errorf("%w: weight value must be positive", ErrInvalidInput)
	}
	return tracker.store.Transact(func(store WeightStore) error {
		if err := store.UpdateWeight(weight); err != nil {
			return err
		}
		return syncPetWeight(store, weight.PetID)
	})
}

func (tracker *WeightTracker) DeleteWeight(weightID uint) error {
	return tracker.store.Transact(func(store WeightStore) error {
		weight, err := store.GetWeight(weightID)
		if err != nil {
			return err
		}
		if err := store.DeleteWeight(weightID); err != nil {
			return err
		}
		return syncPetWeight(store, weight.PetID)
	})
}

// syncPetWeight copies the latest entry onto the pet. When no entries
// remain the denormalized value is left as it was.
func syncPetWeight(store WeightStore, petID uint) error {
	weights, err := store.ListForPet(petID)
	if err != nil {
		return err
	}
	latest, ok := LatestWeight(weights)
	if !ok {
		return nil
	}
	return store.UpdatePetWeight(petID, latest.WeightValue)
}

// LatestWeight picks the entry with the newest date, breaking ties in favor
// of the most recently inserted row.
func LatestWeight(weights []models.Weight) (models.Weight, bool) {
	if len(weights) == 0 {
		return models.Weight{}, false
	}
	latest := weights[0]
	for _, weight := range weights[1:] {
		if weight.Date.After(latest.Date) || (weight.Date.Equal(latest.Date) && weight.ID > latest.ID) {
			latest = weight
		}
	}
	return latest, true
}
