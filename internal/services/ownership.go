package services

import (
	"fmt"

	"github.com/petpalhq/petpal/internal/models"
)

// OwnershipStore is the slice of persistence the ownership rules need.
// Transact runs the callback against a store bound to one transaction.
type OwnershipStore interface {
	ListOwners(petID uint) ([]models.PetOwner, error)
	InsertOwner(owner *models.PetOwner) error
	UpdateOwner(owner *models.PetOwner) error
	DeleteOwner(ownerID uint) error
	Transact(fn func(store OwnershipStore) error) error
}

type OwnershipService struct {
	store OwnershipStore
}

func NewOwnershipService(store OwnershipStore) *OwnershipService {
	return &OwnershipService{store: store}
}

// AddOwner links a profile to a pet. The first owner always becomes primary.
// Adding a new primary demotes the previous one in the same transaction.
func (service *OwnershipService) AddOwner(petID, profileID uint, isPrimary bool) (models.PetOwner, error) {
	var added models.PetOwner
	err := service.store.Transact(func(store OwnershipStore) error {
		owners, err := store.ListOwners(petID)
		if err != nil {
			return err
		}
		for _, owner := range owners {
			if owner.UserProfileID == profileID {
				return fmt.Errorf("%w: profile %d already owns pet %d", ErrConflict, profileID, petID)
			}
		}
		if len(owners) == 0 {
			isPrimary = true
		}
		if isPrimary {
			for _, owner := range owners {
				if !owner.IsPrimaryOwner {
					continue
				}
				owner.IsPrimaryOwner = false
				demoted := owner
				if err := store.UpdateOwner(&demoted); err != nil {
					return err
				}
			}
		}
		added = models.PetOwner{
			PetID:          petID,
			UserProfileID:  profileID,
			IsPrimaryOwner: isPrimary,
		}
		return store.InsertOwner(&added)
	})
	if err != nil {
		return models.PetOwner{}, err
	}
	return added, nil
}

// RemoveOwner unlinks a co-owner. The primary owner cannot be removed, and
// neither can the last remaining owner; transfer primary ownership first.
func (service *OwnershipService) RemoveOwner(petID, profileID uint) error {
	return service.store.Transact(func(store OwnershipStore) error {
		owners, err := store.ListOwners(petID)
		if err != nil {
			return err
		}
		var target *models.PetOwner
		for index := range owners {
			if owners[index].UserProfileID == profileID {
				target = &owners[index]
				break
			}
		}
		if target == nil {
			return fmt.Errorf("%w: profile %d does not own pet %d", ErrNotFound, profileID, petID)
		}
		if target.IsPrimaryOwner {
			return fmt.Errorf("%w: cannot remove the primary owner of pet %d", ErrInvalidState, petID)
		}
		if len(owners) == 1 {
			return fmt.Errorf("%w: cannot remove the only owner of pet %d", ErrInvalidState, petID)
		}
		return store.DeleteOwner(target.ID)
	})
}

// SetPrimaryOwner promotes an existing co-owner, demoting the current
// primary in the same transaction.
func (service *OwnershipService) SetPrimaryOwner(petID, profileID uint) error {
	return service.store.Transact(func(store OwnershipStore) error {
		owners, err := store.ListOwners(petID)
		if err != nil {
			return err
		}
		var target *models.PetOwner
		for index := range owners {
			if owners[index].UserProfileID == profileID {
				target = &owners[index]
				break
			}
		}
		if target == nil {
			return fmt.Errorf("%w: profile %d does not own pet %d", ErrNotFound, profileID, petID)
		}
		if target.IsPrimaryOwner {
			return nil
		}
		for index := range owners {
			if !owners[index].IsPrimaryOwner {
				continue
			}
			owners[index].IsPrimaryOwner = false
			if err := store.UpdateOwner(&owners[index]); err != nil {
				return err
			}
		}
		target.IsPrimaryOwner = true
		return store.UpdateOwner(target)
	})
}
