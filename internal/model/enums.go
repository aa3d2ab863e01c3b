package model

// Closed enumerations. Each Valid method switches over every declared value
// so the exhaustive linter flags a missing case when a value is added.

// ── Category ─────────────────────────────────────────────────────────────────

type Category string

const (
	CategoryFood        Category = "Food"
	CategoryDrinks      Category = "Drinks"
	CategorySnacks      Category = "Snacks"
	CategoryDesserts    Category = "Desserts"
	CategoryElectronics Category = "Electronics"
)

// Categories lists the catalog categories in display order.
var Categories = []Category{CategoryFood, CategoryDrinks, CategorySnacks, CategoryDesserts, CategoryElectronics}

func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryDrinks, CategorySnacks, CategoryDesserts, CategoryElectronics:
		return true
	}
	return false
}

// ── Icon ─────────────────────────────────────────────────────────────────────

type Icon string

const (
	IconPizza      Icon = "Pizza"
	IconUtensils   Icon = "Utensils"
	IconSandwich   Icon = "Sandwich"
	IconCoffee     Icon = "Coffee"
	IconWine       Icon = "Wine"
	IconCookie     Icon = "Cookie"
	IconIceCream   Icon = "IceCream"
	IconSmartphone Icon = "Smartphone"
	IconLaptop     Icon = "Laptop"
	IconTv         Icon = "Tv"
)

func (i Icon) Valid() bool {
	switch i {
	case IconPizza, IconUtensils, IconSandwich, IconCoffee, IconWine,
		IconCookie, IconIceCream, IconSmartphone, IconLaptop, IconTv:
		return true
	}
	return false
}

// OrDefault falls back to the generic utensils icon for unknown references.
func (i Icon) OrDefault() Icon {
	if i.Valid() {
		return i
	}
	return IconUtensils
}

// ── Table status ─────────────────────────────────────────────────────────────

type TableStatus string

const (
	TableFree     TableStatus = "Free"
	TableOccupied TableStatus = "Occupied"
	TableBill     TableStatus = "Bill"
	TableCleaning TableStatus = "Cleaning"
)

func (s TableStatus) Valid() bool {
	switch s {
	case TableFree, TableOccupied, TableBill, TableCleaning:
		return true
	}
	return false
}

// CanMoveTo reports whether a manual status change from s to next is allowed.
// Occupied and Free are also reached through the order workflow, which does
// not go through this check.
func (s TableStatus) CanMoveTo(next TableStatus) bool {
	switch s {
	case TableOccupied:
		return next == TableBill
	case TableFree:
		return next == TableCleaning
	case TableCleaning:
		return next == TableFree
	case TableBill:
		return false
	}
	return false
}

// ── Order status ─────────────────────────────────────────────────────────────

type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderInKitchen OrderStatus = "In Kitchen"
	OrderReady     OrderStatus = "Ready"
	OrderPaid      OrderStatus = "Paid"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderInKitchen, OrderReady, OrderPaid:
		return true
	}
	return false
}

func (s OrderStatus) rank() int {
	switch s {
	case OrderPending:
		return 0
	case OrderInKitchen:
		return 1
	case OrderReady:
		return 2
	case OrderPaid:
		return 3
	}
	return -1
}

// CanAdvanceTo enforces the monotonic Pending → In Kitchen → Ready → Paid
// progression. Staying in the same status is allowed so an order can be
// re-dispatched with a modified cart.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	if !next.Valid() || !s.Valid() {
		return false
	}
	return next.rank() >= s.rank()
}

// ── Cash session status ──────────────────────────────────────────────────────

type SessionStatus string

const (
	SessionOpen   SessionStatus = "Open"
	SessionClosed SessionStatus = "Closed"
)

// ── Payment method ───────────────────────────────────────────────────────────

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "Cash"
	PaymentCard PaymentMethod = "Card"
)

// PaymentMethods lists every accepted payment method.
var PaymentMethods = []PaymentMethod{PaymentCash, PaymentCard}

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard:
		return true
	}
	return false
}

// ── Stock level ──────────────────────────────────────────────────────────────

type StockLevel string

const (
	StockOut       StockLevel = "OutOfStock"
	StockLow       StockLevel = "Low"
	StockAvailable StockLevel = "Available"
)

// LowStockThreshold is the stock count under which a product is flagged low.
const LowStockThreshold = 10
