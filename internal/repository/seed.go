package repository

import (
	"fmt"

	"github.com/josebazania/restaurantepos/internal/model"

	"github.com/shopspring/decimal"
)

// SeedTables returns the eight dining tables, all free.
func SeedTables() []model.Table {
	capacities := []int{2, 2, 4, 4, 6, 6, 8, 4}
	tables := make([]model.Table, len(capacities))
	for i, c := range capacities {
		tables[i] = model.Table{
			ID:       fmt.Sprintf("t%d", i+1),
			Number:   i + 1,
			Capacity: c,
			Status:   model.TableFree,
		}
	}
	return tables
}

// SeedProducts returns the starting menu.
func SeedProducts() []model.Product {
	p := func(id, name, price string, cat model.Category, icon model.Icon, stock int) model.Product {
		return model.Product{
			ID:       id,
			Name:     name,
			Price:    decimal.RequireFromString(price),
			Category: cat,
			Icon:     icon,
			Stock:    stock,
		}
	}
	return []model.Product{
		p("1", "Pizza Pepperoni", "12.99", model.CategoryFood, model.IconPizza, 50),
		p("2", "Hamburguesa Pro", "8.50", model.CategoryFood, model.IconUtensils, 30),
		p("3", "Sandwich Club", "6.75", model.CategoryFood, model.IconSandwich, 25),
		p("4", "Café Espresso", "2.50", model.CategoryDrinks, model.IconCoffee, 100),
		p("5", "Vino Tinto", "15.00", model.CategoryDrinks, model.IconWine, 12),
		p("6", "Galletas Choco", "1.20", model.CategorySnacks, model.IconCookie, 60),
		p("7", "Helado Vainilla", "3.50", model.CategoryDesserts, model.IconIceCream, 20),
	}
}

const avatarBase = "https://api.dicebear.com/7.x/avataaars/svg?seed="

// SeedUsers returns the static roster with its plaintext credentials.
func SeedUsers() []model.User {
	return []model.User{
		{ID: "1", Username: "admin", Password: "123", Name: "Super Admin", Role: model.RoleAdmin, Avatar: avatarBase + "Felix"},
		{ID: "2", Username: "cajero", Password: "123", Name: "Juan Cobros", Role: model.RoleCashier, Avatar: avatarBase + "Aneka"},
		{ID: "3", Username: "mozo", Password: "123", Name: "Luis Pedidos", Role: model.RoleWaiter, Avatar: avatarBase + "Max"},
		{ID: "4", Username: "chef", Password: "123", Name: "Chef Gordon", Role: model.RoleCook, Avatar: avatarBase + "Oliver"},
	}
}
