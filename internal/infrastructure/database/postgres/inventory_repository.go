package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shipment-dashboard/internal/domain/inventory"
	"shipment-dashboard/internal/infrastructure/database/postgres/models"
)

type InventoryRepository struct {
	db *DB
}

func NewInventoryRepository(db *DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) CreateItem(ctx context.Context, item *inventory.Item) error {
	item.ID = uuid.New()
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()

	if err := r.db.DB.WithContext(ctx).Create(toItemModel(item)).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}

	return nil
}

func (r *InventoryRepository) CreateItems(ctx context.Context, items []*inventory.Item) error {
	if len(items) == 0 {
		return nil
	}

	now := time.Now()
	dbModels := make([]models.ItemModel, len(items))
	for i, item := range items {
		item.ID = uuid.New()
		item.CreatedAt = now
		item.UpdatedAt = now
		dbModels[i] = *toItemModel(item)
	}

	if err := r.db.DB.WithContext(ctx).Create(&dbModels).Error; err != nil {
		return fmt.Errorf("failed to batch create items: %w", err)
	}

	return nil
}

func (r *InventoryRepository) GetItem(ctx context.Context, id uuid.UUID) (*inventory.Item, error) {
	var dbModel models.ItemModel
	err := r.db.DB.WithContext(ctx).Where("id = ?", id).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, inventory.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return toItemEntity(&dbModel), nil
}

func (r *InventoryRepository) UpdateItem(ctx context.Context, item *inventory.Item) error {
	item.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.ItemModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"name":         item.Name,
			"item_type":    item.ItemType,
			"product_id":   item.ProductID,
			"units":        item.Units,
			"gross_weight": item.GrossWeight,
			"value":        item.Value,
			"updated_at":   item.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return inventory.ErrItemNotFound
	}

	return nil
}

func (r *InventoryRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.ItemModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return inventory.ErrItemNotFound
	}

	return nil
}

func (r *InventoryRepository) ListItems(ctx context.Context, orgID uuid.UUID) ([]*inventory.Item, error) {
	var dbModels []models.ItemModel
	err := r.db.DB.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("name ASC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	items := make([]*inventory.Item, len(dbModels))
	for i := range dbModels {
		items[i] = toItemEntity(&dbModels[i])
	}

	return items, nil
}

func (r *InventoryRepository) CreateProduct(ctx context.Context, product *inventory.Product) error {
	product.ID = uuid.New()
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	if err := r.db.DB.WithContext(ctx).Create(toProductModel(product)).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

func (r *InventoryRepository) GetProduct(ctx context.Context, id uuid.UUID) (*inventory.Product, error) {
	var dbModel models.ProductModel
	err := r.db.DB.WithContext(ctx).Where("id = ?", id).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, inventory.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return toProductEntity(&dbModel), nil
}

func (r *InventoryRepository) GetProductByName(ctx context.Context, orgID uuid.UUID, name string) (*inventory.Product, error) {
	var dbModel models.ProductModel
	err := r.db.DB.WithContext(ctx).
		Where("organization_id = ? AND LOWER(name) = LOWER(?)", orgID, name).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, inventory.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product by name: %w", err)
	}

	return toProductEntity(&dbModel), nil
}

func (r *InventoryRepository) UpdateProduct(ctx context.Context, product *inventory.Product) error {
	product.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":         product.Name,
			"description":  product.Description,
			"value":        product.Value,
			"gross_weight": product.GrossWeight,
			"updated_at":   product.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return inventory.ErrProductNotFound
	}

	return nil
}

func (r *InventoryRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.ProductModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return inventory.ErrProductNotFound
	}

	return nil
}

func (r *InventoryRepository) ListProducts(ctx context.Context, orgID uuid.UUID) ([]*inventory.Product, error) {
	var dbModels []models.ProductModel
	err := r.db.DB.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("name ASC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]*inventory.Product, len(dbModels))
	for i := range dbModels {
		products[i] = toProductEntity(&dbModels[i])
	}

	return products, nil
}

func (r *InventoryRepository) CreateGateway(ctx context.Context, gateway *inventory.Gateway) error {
	gateway.ID = uuid.New()
	gateway.CreatedAt = time.Now()
	gateway.UpdatedAt = time.Now()
	if gateway.Status == "" {
		gateway.Status = inventory.GatewayAvailable
	}

	if err := r.db.DB.WithContext(ctx).Create(toGatewayModel(gateway)).Error; err != nil {
		if isUniqueViolation(err) {
			return inventory.ErrDuplicateIMEI
		}
		return fmt.Errorf("failed to create gateway: %w", err)
	}

	return nil
}

func (r *InventoryRepository) GetGateway(ctx context.Context, id uuid.UUID) (*inventory.Gateway, error) {
	var dbModel models.GatewayModel
	err := r.db.DB.WithContext(ctx).Where("id = ?", id).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, inventory.ErrGatewayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get gateway: %w", err)
	}

	return toGatewayEntity(&dbModel), nil
}

func (r *InventoryRepository) GetGatewayByIMEI(ctx context.Context, imei string) (*inventory.Gateway, error) {
	var dbModel models.GatewayModel
	err := r.db.DB.WithContext(ctx).Where("imei = ?", imei).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, inventory.ErrGatewayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get gateway by imei: %w", err)
	}

	return toGatewayEntity(&dbModel), nil
}

func (r *InventoryRepository) UpdateGateway(ctx context.Context, gateway *inventory.Gateway) error {
	gateway.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.GatewayModel{}).
		Where("id = ?", gateway.ID).
		Updates(map[string]interface{}{
			"name":         gateway.Name,
			"gateway_type": gateway.GatewayType,
			"status":       string(gateway.Status),
			"updated_at":   gateway.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update gateway: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return inventory.ErrGatewayNotFound
	}

	return nil
}

func (r *InventoryRepository) DeleteGateway(ctx context.Context, id uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.GatewayModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete gateway: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return inventory.ErrGatewayNotFound
	}

	return nil
}

func (r *InventoryRepository) ListGateways(ctx context.Context, orgID uuid.UUID) ([]*inventory.Gateway, error) {
	var dbModels []models.GatewayModel
	err := r.db.DB.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("name ASC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list gateways: %w", err)
	}

	gateways := make([]*inventory.Gateway, len(dbModels))
	for i := range dbModels {
		gateways[i] = toGatewayEntity(&dbModels[i])
	}

	return gateways, nil
}

// TouchGateway records the latest report time and battery for a tracker.
// Called from the ingestion path; a missing gateway is not an error there.
func (r *InventoryRepository) TouchGateway(ctx context.Context, imei string, reportedAt time.Time, battery *float64) error {
	updates := map[string]interface{}{
		"last_report_at": reportedAt,
		"updated_at":     time.Now(),
	}
	if battery != nil {
		updates["battery_level"] = battery
	}

	err := r.db.DB.WithContext(ctx).
		Model(&models.GatewayModel{}).
		Where("imei = ?", imei).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to touch gateway: %w", err)
	}

	return nil
}

func (r *InventoryRepository) CreateSensor(ctx context.Context, sensor *inventory.Sensor) error {
	sensor.ID = uuid.New()
	sensor.CreatedAt = time.Now()
	sensor.UpdatedAt = time.Now()

	if err := r.db.DB.WithContext(ctx).Create(toSensorModel(sensor)).Error; err != nil {
		return fmt.Errorf("failed to create sensor: %w", err)
	}

	return nil
}

func (r *InventoryRepository) GetSensor(ctx context.Context, id uuid.UUID) (*inventory.Sensor, error) {
	var dbModel models.SensorModel
	err := r.db.DB.WithContext(ctx).Where("id = ?", id).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, inventory.ErrSensorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sensor: %w", err)
	}

	return toSensorEntity(&dbModel), nil
}

func (r *InventoryRepository) UpdateSensor(ctx context.Context, sensor *inventory.Sensor) error {
	sensor.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.SensorModel{}).
		Where("id = ?", sensor.ID).
		Updates(map[string]interface{}{
			"name":        sensor.Name,
			"sensor_type": sensor.SensorType,
			"gateway_id":  sensor.GatewayID,
			"updated_at":  sensor.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update sensor: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return inventory.ErrSensorNotFound
	}

	return nil
}

func (r *InventoryRepository) DeleteSensor(ctx context.Context, id uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.SensorModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete sensor: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return inventory.ErrSensorNotFound
	}

	return nil
}

func (r *InventoryRepository) ListSensors(ctx context.Context, orgID uuid.UUID) ([]*inventory.Sensor, error) {
	var dbModels []models.SensorModel
	err := r.db.DB.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("name ASC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sensors: %w", err)
	}

	sensors := make([]*inventory.Sensor, len(dbModels))
	for i := range dbModels {
		sensors[i] = toSensorEntity(&dbModels[i])
	}

	return sensors, nil
}

func toItemModel(i *inventory.Item) *models.ItemModel {
	return &models.ItemModel{
		ID:             i.ID,
		OrganizationID: i.OrganizationID,
		Name:           i.Name,
		ItemType:       i.ItemType,
		ProductID:      i.ProductID,
		Units:          i.Units,
		GrossWeight:    i.GrossWeight,
		Value:          i.Value,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}

func toItemEntity(m *models.ItemModel) *inventory.Item {
	return &inventory.Item{
		ID:             m.ID,
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		ItemType:       m.ItemType,
		ProductID:      m.ProductID,
		Units:          m.Units,
		GrossWeight:    m.GrossWeight,
		Value:          m.Value,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toProductModel(p *inventory.Product) *models.ProductModel {
	return &models.ProductModel{
		ID:             p.ID,
		OrganizationID: p.OrganizationID,
		Name:           p.Name,
		Description:    p.Description,
		Value:          p.Value,
		GrossWeight:    p.GrossWeight,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toProductEntity(m *models.ProductModel) *inventory.Product {
	return &inventory.Product{
		ID:             m.ID,
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		Description:    m.Description,
		Value:          m.Value,
		GrossWeight:    m.GrossWeight,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toGatewayModel(g *inventory.Gateway) *models.GatewayModel {
	return &models.GatewayModel{
		ID:             g.ID,
		OrganizationID: g.OrganizationID,
		IMEI:           g.IMEI,
		Name:           g.Name,
		GatewayType:    g.GatewayType,
		Status:         string(g.Status),
		LastReportAt:   g.LastReportAt,
		BatteryLevel:   g.BatteryLevel,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}

func toGatewayEntity(m *models.GatewayModel) *inventory.Gateway {
	return &inventory.Gateway{
		ID:             m.ID,
		OrganizationID: m.OrganizationID,
		IMEI:           m.IMEI,
		Name:           m.Name,
		GatewayType:    m.GatewayType,
		Status:         inventory.GatewayStatus(m.Status),
		LastReportAt:   m.LastReportAt,
		BatteryLevel:   m.BatteryLevel,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toSensorModel(s *inventory.Sensor) *models.SensorModel {
	return &models.SensorModel{
		ID:             s.ID,
		OrganizationID: s.OrganizationID,
		Name:           s.Name,
		SensorType:     s.SensorType,
		GatewayID:      s.GatewayID,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func toSensorEntity(m *models.SensorModel) *inventory.Sensor {
	return &inventory.Sensor{
		ID:             m.ID,
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		SensorType:     m.SensorType,
		GatewayID:      m.GatewayID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
