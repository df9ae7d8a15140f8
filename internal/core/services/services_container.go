package services

import (
	"context"

	portsrepo "github.com/SscSPs/pos_inventory_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_inventory_app/internal/core/ports/services"
)

// NewServiceContainer creates the command bridge services from the repository provider
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Inventory: NewInventoryService(repos.InventoryRepo),
	}
}

// NewScreenContainer wires the rate store and one inventory screen over the given stores.
// The rate store is loaded before the screen subscribes to it.
func NewScreenContainer(
	ctx context.Context,
	settings portsrepo.SettingsStoreFacade,
	inventory portsrepo.InventoryRepositoryFacade,
	isAdmin bool,
	options ...ScreenOption,
) *portssvc.ScreenContainer {
	rates := NewRateStore(settings)
	rates.Load(ctx)
	return &portssvc.ScreenContainer{
		Rates:  rates,
		Screen: NewInventoryScreen(inventory, rates, isAdmin, options...),
	}
}
