package models

type StockEntry struct {
	Isbn     string `json:"isbn"`
	Quantity int    `json:"quantity"`
}

// Inventory maps ISBNs to quantities and iterates in insertion order.
// It is not safe for concurrent use.
type Inventory struct {
	order      []string
	quantities map[string]int
}

func NewInventory() *Inventory {
	return &Inventory{quantities: make(map[string]int)}
}

// Add increments the quantity of isbn, inserting it at the end when absent.
// Quantities are trusted as given, negative values included.
func (inventory *Inventory) Add(isbn string, quantity int) {
	if _, ok := inventory.quantities[isbn]; !ok {
		inventory.order = append(inventory.order, isbn)
	}
	inventory.quantities[isbn] += quantity
}

func (inventory *Inventory) Quantity(isbn string) int {
	return inventory.quantities[isbn]
}

func (inventory *Inventory) Len() int {
	return len(inventory.order)
}

func (inventory *Inventory) Entries() []StockEntry {
	entries := make([]StockEntry, 0, len(inventory.order))
	for _, isbn := range inventory.order {
		entries = append(entries, StockEntry{Isbn: isbn, Quantity: inventory.quantities[isbn]})
	}
	return entries
}

func (inventory *Inventory) Clone() *Inventory {
	clone := &Inventory{
		order:      append([]string(nil), inventory.order...),
		quantities: make(map[string]int, len(inventory.quantities)),
	}
	for isbn, quantity := range inventory.quantities {
		clone.quantities[isbn] = quantity
	}
	return clone
}
