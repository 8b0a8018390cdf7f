package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainInventory "shipment-dashboard/internal/domain/inventory"
	"shipment-dashboard/internal/logger"
	appErrors "shipment-dashboard/pkg/errors"
	"shipment-dashboard/pkg/utils"
)

// Service implements inventory use cases for items, products, gateways
// and sensors.
type Service struct {
	repo domainInventory.Repository
}

func NewService(repo domainInventory.Repository) *Service {
	return &Service{repo: repo}
}

// Items

func (s *Service) CreateItem(ctx context.Context, orgID uuid.UUID, req *CreateItemRequest) (*ItemResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}
	if req.ProductID != nil {
		if _, err := s.repo.GetProduct(ctx, *req.ProductID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	item := &domainInventory.Item{
		OrganizationID: orgID,
		Name:           utils.SanitizeString(req.Name),
		ItemType:       utils.SanitizeString(req.ItemType),
		ProductID:      req.ProductID,
		Units:          req.Units,
		GrossWeight:    req.GrossWeight,
		Value:          req.Value,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	logger.Info("Item created", zap.String("item_id", item.ID.String()))
	return ToItemResponse(item), nil
}

func (s *Service) GetItem(ctx context.Context, id uuid.UUID) (*ItemResponse, error) {
	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToItemResponse(item), nil
}

func (s *Service) UpdateItem(ctx context.Context, id uuid.UUID, req *UpdateItemRequest) (*ItemResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Name = utils.SanitizeString(req.Name)
	item.ItemType = utils.SanitizeString(req.ItemType)
	item.ProductID = req.ProductID
	item.Units = req.Units
	item.GrossWeight = req.GrossWeight
	item.Value = req.Value
	item.UpdatedAt = time.Now()

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return ToItemResponse(item), nil
}

func (s *Service) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetItem(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteItem(ctx, id)
}

func (s *Service) ListItems(ctx context.Context, orgID uuid.UUID) ([]*ItemResponse, error) {
	items, err := s.repo.ListItems(ctx, orgID)
	if err != nil {
		return nil, err
	}
	responses := make([]*ItemResponse, len(items))
	for i, item := range items {
		responses[i] = ToItemResponse(item)
	}
	return responses, nil
}

// Products

func (s *Service) CreateProduct(ctx context.Context, orgID uuid.UUID, req *CreateProductRequest) (*ProductResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	now := time.Now()
	product := &domainInventory.Product{
		OrganizationID: orgID,
		Name:           utils.SanitizeString(req.Name),
		Description:    utils.SanitizeString(req.Description),
		Value:          req.Value,
		GrossWeight:    req.GrossWeight,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}

	logger.Info("Product created", zap.String("product_id", product.ID.String()))
	return ToProductResponse(product), nil
}

func (s *Service) GetProduct(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

func (s *Service) UpdateProduct(ctx context.Context, id uuid.UUID, req *UpdateProductRequest) (*ProductResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	product, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = utils.SanitizeString(req.Name)
	product.Description = utils.SanitizeString(req.Description)
	product.Value = req.Value
	product.GrossWeight = req.GrossWeight
	product.UpdatedAt = time.Now()

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

func (s *Service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetProduct(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteProduct(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context, orgID uuid.UUID) ([]*ProductResponse, error) {
	products, err := s.repo.ListProducts(ctx, orgID)
	if err != nil {
		return nil, err
	}
	responses := make([]*ProductResponse, len(products))
	for i, p := range products {
		responses[i] = ToProductResponse(p)
	}
	return responses, nil
}

// Gateways

func (s *Service) CreateGateway(ctx context.Context, orgID uuid.UUID, req *CreateGatewayRequest) (*GatewayResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	status := domainInventory.GatewayAvailable
	if req.Status != "" {
		status = domainInventory.GatewayStatus(req.Status)
	}

	now := time.Now()
	gateway := &domainInventory.Gateway{
		OrganizationID: orgID,
		IMEI:           utils.SanitizeString(req.IMEI),
		Name:           utils.SanitizeString(req.Name),
		GatewayType:    utils.SanitizeString(req.GatewayType),
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.CreateGateway(ctx, gateway); err != nil {
		return nil, err
	}

	logger.Info("Gateway created",
		zap.String("gateway_id", gateway.ID.String()),
		zap.String("imei", gateway.IMEI),
	)
	return ToGatewayResponse(gateway), nil
}

func (s *Service) GetGateway(ctx context.Context, id uuid.UUID) (*GatewayResponse, error) {
	gateway, err := s.repo.GetGateway(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToGatewayResponse(gateway), nil
}

func (s *Service) UpdateGateway(ctx context.Context, id uuid.UUID, req *UpdateGatewayRequest) (*GatewayResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	gateway, err := s.repo.GetGateway(ctx, id)
	if err != nil {
		return nil, err
	}

	gateway.IMEI = utils.SanitizeString(req.IMEI)
	gateway.Name = utils.SanitizeString(req.Name)
	gateway.GatewayType = utils.SanitizeString(req.GatewayType)
	if req.Status != "" {
		gateway.Status = domainInventory.GatewayStatus(req.Status)
	}
	gateway.UpdatedAt = time.Now()

	if err := s.repo.UpdateGateway(ctx, gateway); err != nil {
		return nil, err
	}
	return ToGatewayResponse(gateway), nil
}

func (s *Service) DeleteGateway(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetGateway(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteGateway(ctx, id)
}

func (s *Service) ListGateways(ctx context.Context, orgID uuid.UUID) ([]*GatewayResponse, error) {
	gateways, err := s.repo.ListGateways(ctx, orgID)
	if err != nil {
		return nil, err
	}
	responses := make([]*GatewayResponse, len(gateways))
	for i, g := range gateways {
		responses[i] = ToGatewayResponse(g)
	}
	return responses, nil
}

// Sensors

func (s *Service) CreateSensor(ctx context.Context, orgID uuid.UUID, req *CreateSensorRequest) (*SensorResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}
	if _, err := s.repo.GetGateway(ctx, req.GatewayID); err != nil {
		return nil, err
	}

	now := time.Now()
	sensor := &domainInventory.Sensor{
		OrganizationID: orgID,
		Name:           utils.SanitizeString(req.Name),
		SensorType:     utils.SanitizeString(req.SensorType),
		GatewayID:      req.GatewayID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.CreateSensor(ctx, sensor); err != nil {
		return nil, err
	}

	return ToSensorResponse(sensor), nil
}

func (s *Service) GetSensor(ctx context.Context, id uuid.UUID) (*SensorResponse, error) {
	sensor, err := s.repo.GetSensor(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToSensorResponse(sensor), nil
}

func (s *Service) UpdateSensor(ctx context.Context, id uuid.UUID, req *UpdateSensorRequest) (*SensorResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	sensor, err := s.repo.GetSensor(ctx, id)
	if err != nil {
		return nil, err
	}

	sensor.Name = utils.SanitizeString(req.Name)
	sensor.SensorType = utils.SanitizeString(req.SensorType)
	sensor.GatewayID = req.GatewayID
	sensor.UpdatedAt = time.Now()

	if err := s.repo.UpdateSensor(ctx, sensor); err != nil {
		return nil, err
	}
	return ToSensorResponse(sensor), nil
}

func (s *Service) DeleteSensor(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetSensor(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteSensor(ctx, id)
}

func (s *Service) ListSensors(ctx context.Context, orgID uuid.UUID) ([]*SensorResponse, error) {
	sensors, err := s.repo.ListSensors(ctx, orgID)
	if err != nil {
		return nil, err
	}
	responses := make([]*SensorResponse, len(sensors))
	for i, sn := range sensors {
		responses[i] = ToSensorResponse(sn)
	}
	return responses, nil
}
