package repository

import (
	"time"

	"gestor/internal/model"

	"github.com/shopspring/decimal"
)

// Storage keys — one independent blob per collection.
const (
	ContactosKey = "contacts-agenda"
	ProductosKey = "products-inventory"
	ComprasKey   = "purchases-management"
)

// Seed records used when a collection has never been persisted (or its blob
// is unreadable). The purchase totals are stored as-is, including the
// rounded tax on the first record.
var seedContactos = []model.Contacto{
	{
		ID:        "1",
		FirstName: "Juan",
		LastName:  "Pérez",
		Email:     "juan.perez@email.com",
		Phone:     "+34 600 123 456",
		Company:   "Acme Corp",
		Notes:     "Cliente importante",
		CreatedAt: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:        "2",
		FirstName: "María",
		LastName:  "García",
		Email:     "maria.garcia@email.com",
		Phone:     "+34 700 987 654",
		Company:   "Tech Solutions",
		Notes:     "",
		CreatedAt: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
	},
}

var seedProductos = []model.Producto{
	{
		ID:          "1",
		Codigo:      "LAP001",
		Descripcion: "Laptop HP Pavilion 15\"",
		Marca:       "HP",
		Precio:      decimal.RequireFromString("899.99"),
		Costo:       decimal.RequireFromString("650.00"),
		Stock:       15,
		CreatedAt:   time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "2",
		Codigo:      "MOU002",
		Descripcion: "Mouse Inalámbrico Logitech MX Master 3",
		Marca:       "Logitech",
		Precio:      decimal.RequireFromString("99.99"),
		Costo:       decimal.RequireFromString("65.00"),
		Stock:       8,
		CreatedAt:   time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "3",
		Codigo:      "TEC003",
		Descripcion: "Teclado Mecánico RGB Corsair K70",
		Marca:       "Corsair",
		Precio:      decimal.RequireFromString("159.99"),
		Costo:       decimal.RequireFromString("110.00"),
		Stock:       12,
		CreatedAt:   time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC),
	},
}

var seedCompras = []model.Compra{
	{
		ID:                "1",
		CustomerContactID: "1", // Juan Pérez
		Items: []model.CompraItem{
			{
				ID:        "1",
				ProductID: "1", // Laptop HP
				Quantity:  1,
				UnitPrice: decimal.RequireFromString("899.99"),
				Subtotal:  decimal.RequireFromString("899.99"),
			},
			{
				ID:        "2",
				ProductID: "2", // Mouse Logitech
				Quantity:  2,
				UnitPrice: decimal.RequireFromString("99.99"),
				Subtotal:  decimal.RequireFromString("199.98"),
			},
		},
		Subtotal:  decimal.RequireFromString("1099.97"),
		Tax:       decimal.RequireFromString("230.99"),
		Total:     decimal.RequireFromString("1330.96"),
		Status:    model.EstadoConfirmada,
		Notes:     "Compra de equipos para oficina",
		CreatedAt: time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:                "2",
		CustomerContactID: "2", // María García
		Items: []model.CompraItem{
			{
				ID:        "3",
				ProductID: "3", // Teclado Corsair
				Quantity:  1,
				UnitPrice: decimal.RequireFromString("159.99"),
				Subtotal:  decimal.RequireFromString("159.99"),
			},
		},
		Subtotal:  decimal.RequireFromString("159.99"),
		Tax:       decimal.RequireFromString("33.60"),
		Total:     decimal.RequireFromString("193.59"),
		Status:    model.EstadoPendiente,
		Notes:     "",
		CreatedAt: time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC),
	},
}
