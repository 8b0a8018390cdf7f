package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines storage access for the inventory reference records.
type Repository interface {
	CreateItem(ctx context.Context, item *Item) error
	GetItem(ctx context.Context, id uuid.UUID) (*Item, error)
	UpdateItem(ctx context.Context, item *Item) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
	ListItems(ctx context.Context, orgID uuid.UUID) ([]*Item, error)
	CreateItems(ctx context.Context, items []*Item) error

	CreateProduct(ctx context.Context, product *Product) error
	GetProduct(ctx context.Context, id uuid.UUID) (*Product, error)
	UpdateProduct(ctx context.Context, product *Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListProducts(ctx context.Context, orgID uuid.UUID) ([]*Product, error)
	GetProductByName(ctx context.Context, orgID uuid.UUID, name string) (*Product, error)

	CreateGateway(ctx context.Context, gateway *Gateway) error
	GetGateway(ctx context.Context, id uuid.UUID) (*Gateway, error)
	GetGatewayByIMEI(ctx context.Context, imei string) (*Gateway, error)
	UpdateGateway(ctx context.Context, gateway *Gateway) error
	DeleteGateway(ctx context.Context, id uuid.UUID) error
	ListGateways(ctx context.Context, orgID uuid.UUID) ([]*Gateway, error)
	TouchGateway(ctx context.Context, imei string, reportedAt time.Time, battery *float64) error

	CreateSensor(ctx context.Context, sensor *Sensor) error
	GetSensor(ctx context.Context, id uuid.UUID) (*Sensor, error)
	UpdateSensor(ctx context.Context, sensor *Sensor) error
	DeleteSensor(ctx context.Context, id uuid.UUID) error
	ListSensors(ctx context.Context, orgID uuid.UUID) ([]*Sensor, error)
}
