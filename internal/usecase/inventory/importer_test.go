package inventory

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	domainInventory "shipment-dashboard/internal/domain/inventory"
	appErrors "shipment-dashboard/pkg/errors"
)

// fakeRepo is an in-memory inventory repository for tests.
type fakeRepo struct {
	items    map[uuid.UUID]*domainInventory.Item
	products map[uuid.UUID]*domainInventory.Product
	gateways map[uuid.UUID]*domainInventory.Gateway
	sensors  map[uuid.UUID]*domainInventory.Sensor

	batchErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		items:    make(map[uuid.UUID]*domainInventory.Item),
		products: make(map[uuid.UUID]*domainInventory.Product),
		gateways: make(map[uuid.UUID]*domainInventory.Gateway),
		sensors:  make(map[uuid.UUID]*domainInventory.Sensor),
	}
}

func (f *fakeRepo) CreateItem(_ context.Context, item *domainInventory.Item) error {
	item.ID = uuid.New()
	f.items[item.ID] = item
	return nil
}

func (f *fakeRepo) GetItem(_ context.Context, id uuid.UUID) (*domainInventory.Item, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, domainInventory.ErrItemNotFound
	}
	return item, nil
}

func (f *fakeRepo) UpdateItem(_ context.Context, item *domainInventory.Item) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeRepo) DeleteItem(_ context.Context, id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

func (f *fakeRepo) ListItems(_ context.Context, _ uuid.UUID) ([]*domainInventory.Item, error) {
	items := make([]*domainInventory.Item, 0, len(f.items))
	for _, item := range f.items {
		items = append(items, item)
	}
	return items, nil
}

func (f *fakeRepo) CreateItems(_ context.Context, items []*domainInventory.Item) error {
	if f.batchErr != nil {
		return f.batchErr
	}
	for _, item := range items {
		item.ID = uuid.New()
		f.items[item.ID] = item
	}
	return nil
}

func (f *fakeRepo) CreateProduct(_ context.Context, p *domainInventory.Product) error {
	p.ID = uuid.New()
	f.products[p.ID] = p
	return nil
}

func (f *fakeRepo) GetProduct(_ context.Context, id uuid.UUID) (*domainInventory.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, domainInventory.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeRepo) UpdateProduct(_ context.Context, p *domainInventory.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeRepo) DeleteProduct(_ context.Context, id uuid.UUID) error {
	delete(f.products, id)
	return nil
}

func (f *fakeRepo) ListProducts(_ context.Context, _ uuid.UUID) ([]*domainInventory.Product, error) {
	products := make([]*domainInventory.Product, 0, len(f.products))
	for _, p := range f.products {
		products = append(products, p)
	}
	return products, nil
}

func (f *fakeRepo) GetProductByName(_ context.Context, _ uuid.UUID, name string) (*domainInventory.Product, error) {
	for _, p := range f.products {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return nil, domainInventory.ErrProductNotFound
}

func (f *fakeRepo) CreateGateway(_ context.Context, g *domainInventory.Gateway) error {
	g.ID = uuid.New()
	f.gateways[g.ID] = g
	return nil
}

func (f *fakeRepo) GetGateway(_ context.Context, id uuid.UUID) (*domainInventory.Gateway, error) {
	g, ok := f.gateways[id]
	if !ok {
		return nil, domainInventory.ErrGatewayNotFound
	}
	return g, nil
}

func (f *fakeRepo) GetGatewayByIMEI(_ context.Context, imei string) (*domainInventory.Gateway, error) {
	for _, g := range f.gateways {
		if g.IMEI == imei {
			return g, nil
		}
	}
	return nil, domainInventory.ErrGatewayNotFound
}

func (f *fakeRepo) UpdateGateway(_ context.Context, g *domainInventory.Gateway) error {
	f.gateways[g.ID] = g
	return nil
}

func (f *fakeRepo) DeleteGateway(_ context.Context, id uuid.UUID) error {
	delete(f.gateways, id)
	return nil
}

func (f *fakeRepo) ListGateways(_ context.Context, _ uuid.UUID) ([]*domainInventory.Gateway, error) {
	gateways := make([]*domainInventory.Gateway, 0, len(f.gateways))
	for _, g := range f.gateways {
		gateways = append(gateways, g)
	}
	return gateways, nil
}

func (f *fakeRepo) TouchGateway(_ context.Context, imei string, reportedAt time.Time, battery *float64) error {
	for _, g := range f.gateways {
		if g.IMEI == imei {
			g.LastReportAt = &reportedAt
			g.BatteryLevel = battery
			return nil
		}
	}
	return domainInventory.ErrGatewayNotFound
}

func (f *fakeRepo) CreateSensor(_ context.Context, sn *domainInventory.Sensor) error {
	sn.ID = uuid.New()
	f.sensors[sn.ID] = sn
	return nil
}

func (f *fakeRepo) GetSensor(_ context.Context, id uuid.UUID) (*domainInventory.Sensor, error) {
	sn, ok := f.sensors[id]
	if !ok {
		return nil, domainInventory.ErrSensorNotFound
	}
	return sn, nil
}

func (f *fakeRepo) UpdateSensor(_ context.Context, sn *domainInventory.Sensor) error {
	f.sensors[sn.ID] = sn
	return nil
}

func (f *fakeRepo) DeleteSensor(_ context.Context, id uuid.UUID) error {
	delete(f.sensors, id)
	return nil
}

func (f *fakeRepo) ListSensors(_ context.Context, _ uuid.UUID) ([]*domainInventory.Sensor, error) {
	sensors := make([]*domainInventory.Sensor, 0, len(f.sensors))
	for _, sn := range f.sensors {
		sensors = append(sensors, sn)
	}
	return sensors, nil
}

func TestImportItems(t *testing.T) {
	repo := newFakeRepo()
	orgID := uuid.New()
	if err := repo.CreateProduct(context.Background(), &domainInventory.Product{Name: "Vaccine"}); err != nil {
		t.Fatal(err)
	}
	svc := NewService(repo)

	csvData := strings.Join([]string{
		"name,item_type,product,units,gross_weight,value",
		"Pallet A,box,Vaccine,10,120.5,9000",
		",box,,1,,",
		"Pallet B,box,Unknown Product,2,,",
		"Pallet C,envelope,,abc,,",
		"Pallet D,,,5,40,100",
	}, "\n")

	result, err := svc.ImportItems(context.Background(), orgID, strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ImportItems() error = %v", err)
	}

	if result.Imported != 2 {
		t.Errorf("imported = %d, want 2", result.Imported)
	}
	if result.Rejected != 3 {
		t.Errorf("rejected = %d, want 3", result.Rejected)
	}
	if len(result.Errors) != 3 {
		t.Fatalf("got %d row errors", len(result.Errors))
	}

	wantLines := []int{3, 4, 5}
	for i, want := range wantLines {
		if result.Errors[i].Line != want {
			t.Errorf("errors[%d].Line = %d, want %d", i, result.Errors[i].Line, want)
		}
	}

	items, _ := repo.ListItems(context.Background(), orgID)
	if len(items) != 2 {
		t.Errorf("stored %d items, want 2", len(items))
	}
	for _, item := range items {
		if item.Name == "Pallet A" && item.ProductID == nil {
			t.Error("Pallet A missing resolved product")
		}
	}
}

func TestImportItemsEmptyFile(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.ImportItems(context.Background(), uuid.New(), strings.NewReader(""))
	if !errors.Is(err, appErrors.ErrImportEmptyFile) {
		t.Errorf("empty file error = %v", err)
	}

	_, err = svc.ImportItems(context.Background(), uuid.New(), strings.NewReader("name,units\n"))
	if !errors.Is(err, appErrors.ErrImportEmptyFile) {
		t.Errorf("header-only error = %v", err)
	}
}

func TestImportItemsMissingNameColumn(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.ImportItems(context.Background(), uuid.New(), strings.NewReader("units,value\n1,2\n"))
	if err == nil {
		t.Fatal("expected error for missing name column")
	}
}

func TestImportItemsHeaderCaseInsensitive(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	csvData := "Name,UNITS\nWidget,3\n"
	result, err := svc.ImportItems(context.Background(), uuid.New(), strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ImportItems() error = %v", err)
	}
	if result.Imported != 1 {
		t.Errorf("imported = %d, want 1", result.Imported)
	}
}
