package repository

import (
	"ricemill/models"
)

// GodownRepository is the lookup store behind the unloading-godown
// dropdown. FindByName matches the exact name and returns (nil, nil)
// when absent; ListAll orders by name ascending.
type GodownRepository interface {
	FindByName(name string) (*models.UnloadingGodown, error)
	Insert(name string) (*models.UnloadingGodown, error)
	ListAll() ([]models.UnloadingGodown, error)
}
