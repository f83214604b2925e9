package main

import (
	"context"

	"restaurant/internal/adapters/out/postgres/accountrepo"
	"restaurant/internal/adapters/out/postgres/catalogrepo"
	"restaurant/internal/adapters/out/postgres/tablerepo"
	"restaurant/internal/core/domain/model/account"
	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

// Demo accounts get fixed identifiers so API clients can reference them
// across restarts. Seeding is idempotent: existing rows are left alone.
const (
	demoCustomerID = "0b8e4c6a-1f2d-4e3b-9a5c-7d6e8f9a0b1c"
	demoWaiterID   = "1c9f5d7b-2a3e-4f4c-8b6d-5e7f9a0b1c2d"
	demoChefID     = "2daf6e8c-3b4f-4a5d-9c7e-6f8a0b1c2d3e"
	demoAdminID    = "3eba7f9d-4c5a-4b6e-8d9f-7a9b1c2d3e4f"
	demoAddressID  = "4fcb8a0e-5d6b-4c7f-9eaf-8b0c2d3e4f5a"
)

func mustSeedDemoData(gormDB *gorm.DB) {
	ctx := context.Background()

	if err := catalogrepo.NewGormCatalogRepository(gormDB).Seed(ctx, demoMenu()); err != nil {
		log.Fatalf("Error seeding menu: %v", err)
	}

	noop := noopTracker{}
	if err := tablerepo.NewGormTableRepository(gormDB, noop).Seed(ctx, demoFloor()); err != nil {
		log.Fatalf("Error seeding dining tables: %v", err)
	}

	accounts := accountrepo.NewGormAccountRepository(gormDB)
	for _, actor := range demoActors() {
		if err := accounts.SeedActor(ctx, actor); err != nil {
			log.Fatalf("Error seeding actor %q: %v", actor.Name(), err)
		}
	}
	if err := accounts.SeedAddress(ctx, demoAddress()); err != nil {
		log.Fatalf("Error seeding address: %v", err)
	}
}

func demoMenu() []*catalog.FoodItem {
	entries := []struct {
		name  string
		cents int64
	}{
		{"Margherita Pizza", 1599},
		{"Pepperoni Pizza", 1799},
		{"Caesar Salad", 1150},
		{"Spaghetti Carbonara", 1450},
		{"Tiramisu", 750},
		{"Cola", 350},
	}

	items := make([]*catalog.FoodItem, 0, len(entries))
	for _, entry := range entries {
		price, err := kernel.NewMoneyFromCents(entry.cents)
		if err != nil {
			log.Fatalf("Error building menu price for %q: %v", entry.name, err)
		}
		item, err := catalog.NewFoodItem(kernel.NewUUID(), entry.name, price)
		if err != nil {
			log.Fatalf("Error building menu item %q: %v", entry.name, err)
		}
		items = append(items, item)
	}
	return items
}

func demoFloor() []*table.DiningTable {
	layout := []struct {
		number   int
		capacity int
	}{
		{1, 2}, {2, 2}, {3, 4}, {4, 4}, {5, 6}, {6, 8},
	}

	tables := make([]*table.DiningTable, 0, len(layout))
	for _, spot := range layout {
		diningTable, err := table.NewDiningTable(kernel.NewUUID(), spot.number, spot.capacity)
		if err != nil {
			log.Fatalf("Error building dining table %d: %v", spot.number, err)
		}
		tables = append(tables, diningTable)
	}
	return tables
}

func demoActors() []*account.Actor {
	entries := []struct {
		id   string
		name string
		role account.Role
	}{
		{demoCustomerID, "Dana Customer", account.RoleCustomer},
		{demoWaiterID, "Will Waiter", account.RoleWaiter},
		{demoChefID, "Casey Chef", account.RoleChef},
		{demoAdminID, "Alex Admin", account.RoleAdmin},
	}

	actors := make([]*account.Actor, 0, len(entries))
	for _, entry := range entries {
		actor, err := account.NewActor(mustUUID(entry.id), entry.name, entry.role)
		if err != nil {
			log.Fatalf("Error building actor %q: %v", entry.name, err)
		}
		actors = append(actors, actor)
	}
	return actors
}

func demoAddress() *account.Address {
	address, err := account.NewAddress(mustUUID(demoAddressID), mustUUID(demoCustomerID), "12 Via Roma")
	if err != nil {
		log.Fatalf("Error building address: %v", err)
	}
	return address
}

func mustUUID(raw string) kernel.UUID {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		log.Fatalf("Error parsing seed UUID %q: %v", raw, err)
	}
	return id
}

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {
}
