package services

// ServiceContainer holds instances of the command bridge services.
// It is used by the handlers when registering routes.
type ServiceContainer struct {
	Inventory InventorySvcFacade
}

// ScreenContainer holds the services of the inventory screen process.
type ScreenContainer struct {
	Rates  RateStoreSvc
	Screen InventoryScreenSvc
}
