package service

import (
	"github.com/josebazania/restaurantepos/internal/model"
	"github.com/josebazania/restaurantepos/internal/repository"
)

// Ledger operations shared by the order and checkout workflows. Every helper
// here must run under the state lock.

// cartFor returns the table's working cart. A table with no open cart gets
// one seeded from its active order, so reopening a table shows what was
// already sent.
func cartFor(st *repository.State, tableID string) (model.Cart, model.Table, error) {
	table, err := st.Tables.FindByID(tableID)
	if err != nil {
		return model.Cart{}, model.Table{}, err
	}
	cart, ok := st.Carts.Get(tableID)
	if !ok {
		if o, found := st.Orders.ActiveForTable(tableID); found {
			cart.Items = model.CloneItems(o.Items)
		}
	}
	return cart, table, nil
}

// upsertOrder stores the order and marks its table occupied with a
// back-reference, whatever the table's previous status.
func upsertOrder(st *repository.State, o model.Order) (model.Table, error) {
	table, err := st.Tables.FindByID(o.TableID)
	if err != nil {
		return model.Table{}, err
	}
	st.Orders.Upsert(o)
	table.Status = model.TableOccupied
	table.CurrentOrderID = o.ID
	if err := st.Tables.Update(table); err != nil {
		return model.Table{}, err
	}
	return table, nil
}

// releaseTable frees a table and drops its working cart.
func releaseTable(st *repository.State, table model.Table) (model.Table, error) {
	table.Status = model.TableFree
	table.CurrentOrderID = ""
	if err := st.Tables.Update(table); err != nil {
		return model.Table{}, err
	}
	st.Carts.Clear(table.ID)
	return table, nil
}

func orderEvents(o model.Order, t model.Table) []model.Event {
	return []model.Event{
		{Kind: model.EventOrderUpserted, EntityID: o.ID, Order: &o, Table: &t},
		{Kind: model.EventTableChanged, EntityID: t.ID, Table: &t},
	}
}
