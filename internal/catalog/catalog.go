package catalog

import "progas-backend/internal/model"

// Product is a catalog entry for one cylinder type. The set is fixed at
// startup and never mutated.
type Product struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	NameTh string `json:"name_th"`
	Unit   string `json:"unit"`
	Icon   string `json:"icon"`
}

type Customer struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	NameTh string `json:"name_th"`
}

// Catalog holds the immutable reference data, loaded once and injected into
// services instead of being imported as ambient globals.
type Catalog struct {
	products  []Product
	customers []Customer

	productByID  map[int]Product
	customerByID map[int]Customer
}

func New(products []Product, customers []Customer) *Catalog {
	c := &Catalog{
		products:     products,
		customers:    customers,
		productByID:  make(map[int]Product, len(products)),
		customerByID: make(map[int]Customer, len(customers)),
	}
	for _, p := range products {
		c.productByID[p.ID] = p
	}
	for _, cust := range customers {
		c.customerByID[cust.ID] = cust
	}
	return c
}

// Default returns the business's fixed catalog: three cylinder products and
// four customers.
func Default() *Catalog {
	return New(
		[]Product{
			{ID: 1, Name: "Oxygen Pack 16", NameTh: "ลมแพค 16", Unit: "ชุด", Icon: "🟢"},
			{ID: 2, Name: "Oxygen Pack 12", NameTh: "ลมแพค 12", Unit: "ชุด", Icon: "🟢"},
			{ID: 3, Name: "LPG 15kg", NameTh: "แก๊ส 15 กก.", Unit: "ถัง", Icon: "🔴"},
		},
		[]Customer{
			{ID: 1, Name: "Chang Pu", NameTh: "ช่างปู"},
			{ID: 2, Name: "Chang Eed", NameTh: "ช่างอี๊ด"},
			{ID: 3, Name: "Chang Pol", NameTh: "ช่างพล"},
			{ID: 4, Name: "CCL", NameTh: "CCL"},
		},
	)
}

func (c *Catalog) Products() []Product {
	return c.products
}

func (c *Catalog) Customers() []Customer {
	return c.customers
}

func (c *Catalog) Product(id int) (Product, bool) {
	p, ok := c.productByID[id]
	return p, ok
}

func (c *Catalog) Customer(id int) (Customer, bool) {
	cust, ok := c.customerByID[id]
	return cust, ok
}

// DefaultInventory is the initial stock seeded at first use and restored by
// a full reset.
func (c *Catalog) DefaultInventory() []model.InventoryItem {
	return []model.InventoryItem{
		{ProductID: 1, StockFull: 50},
		{ProductID: 2, StockFull: 50},
		{ProductID: 3, StockFull: 100},
	}
}

// DefaultDebts zeroes out one row per (customer, product) pair.
func (c *Catalog) DefaultDebts() []model.AssetDebt {
	debts := make([]model.AssetDebt, 0, len(c.customers)*len(c.products))
	for _, cust := range c.customers {
		for _, p := range c.products {
			debts = append(debts, model.AssetDebt{CustomerID: cust.ID, ProductID: p.ID})
		}
	}
	return debts
}
