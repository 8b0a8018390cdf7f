package shipment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainCustodian "shipment-dashboard/internal/domain/custodian"
	domainInventory "shipment-dashboard/internal/domain/inventory"
	domainShipment "shipment-dashboard/internal/domain/shipment"
	domainTelemetry "shipment-dashboard/internal/domain/telemetry"
	"shipment-dashboard/internal/logger"
	custodianUsecase "shipment-dashboard/internal/usecase/custodian"
	appErrors "shipment-dashboard/pkg/errors"
	"shipment-dashboard/pkg/utils"
)

// Service implements shipment use cases.
type Service struct {
	shipmentRepo  domainShipment.Repository
	custodianRepo domainCustodian.Repository
	inventoryRepo domainInventory.Repository
	telemetryRepo domainTelemetry.Repository
}

func NewService(
	shipmentRepo domainShipment.Repository,
	custodianRepo domainCustodian.Repository,
	inventoryRepo domainInventory.Repository,
	telemetryRepo domainTelemetry.Repository,
) *Service {
	return &Service{
		shipmentRepo:  shipmentRepo,
		custodianRepo: custodianRepo,
		inventoryRepo: inventoryRepo,
		telemetryRepo: telemetryRepo,
	}
}

func (s *Service) Create(ctx context.Context, orgID uuid.UUID, req *CreateShipmentRequest) (*ShipmentRow, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}
	status, err := ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}
	if err := ValidateTimeRange(req); err != nil {
		return nil, err
	}
	if err := ValidateBounds(req); err != nil {
		return nil, err
	}

	now := time.Now()
	sh := &domainShipment.Shipment{
		OrganizationID:     orgID,
		Name:               utils.SanitizeString(req.Name),
		Status:             status,
		PartnerShipmentID:  utils.SanitizeString(req.PartnerShipmentID),
		EstimatedDeparture: req.EstimatedDeparture,
		EstimatedArrival:   req.EstimatedArrival,
		ItemIDs:            req.ItemIDs,
		GatewayIMEIs:       req.GatewayIMEIs,
		Temperature:        toBounds(req.Temperature),
		Humidity:           toBounds(req.Humidity),
		Shock:              toBounds(req.Shock),
		Light:              toBounds(req.Light),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.shipmentRepo.Create(ctx, sh); err != nil {
		return nil, err
	}

	logger.Info("Shipment created",
		zap.String("shipment_id", sh.ID.String()),
		zap.String("partner_shipment_id", sh.PartnerShipmentID),
		zap.String("organization_id", orgID.String()),
	)

	return s.Get(ctx, sh.ID)
}

// Get returns a single formatted shipment row with its joins resolved.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*ShipmentRow, error) {
	sh, err := s.shipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := s.formatShipments(ctx, sh.OrganizationID, []*domainShipment.Shipment{sh})
	if err != nil {
		return nil, err
	}
	return rows[0], nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateShipmentRequest) (*ShipmentRow, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}
	status, err := ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}
	if err := ValidateTimeRange(&req.CreateShipmentRequest); err != nil {
		return nil, err
	}
	if err := ValidateBounds(&req.CreateShipmentRequest); err != nil {
		return nil, err
	}

	sh, err := s.shipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sh.Name = utils.SanitizeString(req.Name)
	sh.Status = status
	sh.PartnerShipmentID = utils.SanitizeString(req.PartnerShipmentID)
	sh.EstimatedDeparture = req.EstimatedDeparture
	sh.EstimatedArrival = req.EstimatedArrival
	sh.ActualDeparture = req.ActualDeparture
	sh.ActualArrival = req.ActualArrival
	sh.ItemIDs = req.ItemIDs
	sh.GatewayIMEIs = req.GatewayIMEIs
	sh.Temperature = toBounds(req.Temperature)
	sh.Humidity = toBounds(req.Humidity)
	sh.Shock = toBounds(req.Shock)
	sh.Light = toBounds(req.Light)
	sh.UpdatedAt = time.Now()

	if err := s.shipmentRepo.Update(ctx, sh); err != nil {
		return nil, err
	}

	logger.Info("Shipment updated", zap.String("shipment_id", id.String()))

	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	sh, err := s.shipmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sh.Status == domainShipment.StatusEnroute {
		return domainShipment.ErrShipmentEnroute
	}

	if err := s.shipmentRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Shipment deleted", zap.String("shipment_id", id.String()))
	return nil
}

// List returns formatted shipment rows with the custody, reference and
// alert joins resolved, sorted for the table.
func (s *Service) List(ctx context.Context, orgID uuid.UUID, req *ListRequest) (*ListResponse, error) {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	filter := &domainShipment.Filter{
		OrganizationID: orgID,
		Search:         utils.SanitizeString(req.Search),
		Page:           req.Page,
		PageSize:       req.PageSize,
	}
	if req.Status != "" {
		status, err := ParseStatus(req.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = &status
	}

	shipments, total, err := s.shipmentRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows, err := s.formatShipments(ctx, orgID, shipments)
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / req.PageSize
	if int(total)%req.PageSize > 0 {
		totalPages++
	}

	return &ListResponse{
		Shipments:  rows,
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: totalPages,
	}, nil
}

// AddCustody attaches a custodian to the shipment's chain.
func (s *Service) AddCustody(ctx context.Context, shipmentID uuid.UUID, req *custodianUsecase.AddCustodyRequest) ([]*custodianUsecase.CustodyRow, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if _, err := s.shipmentRepo.GetByID(ctx, shipmentID); err != nil {
		return nil, err
	}
	if _, err := s.custodianRepo.GetCustodian(ctx, req.CustodianID); err != nil {
		return nil, err
	}

	now := time.Now()
	custody := &domainCustodian.Custody{
		ShipmentID:        shipmentID,
		CustodianID:       req.CustodianID,
		FirstCustody:      req.FirstCustody,
		LastCustody:       req.LastCustody,
		HasCurrentCustody: req.HasCurrentCustody,
		StartOfCustody:    req.StartOfCustody,
		EndOfCustody:      req.EndOfCustody,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.custodianRepo.CreateCustody(ctx, custody); err != nil {
		return nil, err
	}

	logger.Info("Custody added",
		zap.String("shipment_id", shipmentID.String()),
		zap.String("custodian_id", req.CustodianID.String()),
	)

	return s.GetCustodies(ctx, shipmentID)
}

// GetCustodies returns the shipment's resolved custody chain.
func (s *Service) GetCustodies(ctx context.Context, shipmentID uuid.UUID) ([]*custodianUsecase.CustodyRow, error) {
	custodies, err := s.custodianRepo.ListCustodiesByShipment(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	return custodianUsecase.ResolveChain(custodies), nil
}

// formatShipments loads the join inputs once and runs the row formatter.
func (s *Service) formatShipments(ctx context.Context, orgID uuid.UUID, shipments []*domainShipment.Shipment) ([]*ShipmentRow, error) {
	ids := make([]uuid.UUID, len(shipments))
	partnerIDs := make([]string, 0, len(shipments))
	for i, sh := range shipments {
		ids[i] = sh.ID
		if sh.HadAlert && sh.PartnerShipmentID != "" {
			partnerIDs = append(partnerIDs, sh.PartnerShipmentID)
		}
	}

	custodies, err := s.custodianRepo.ListCustodiesByShipments(ctx, ids)
	if err != nil {
		return nil, err
	}
	custodians, err := s.custodianRepo.ListCustodians(ctx, orgID)
	if err != nil {
		return nil, err
	}
	items, err := s.inventoryRepo.ListItems(ctx, orgID)
	if err != nil {
		return nil, err
	}
	gateways, err := s.inventoryRepo.ListGateways(ctx, orgID)
	if err != nil {
		return nil, err
	}

	var alerts []*domainTelemetry.Alert
	if len(partnerIDs) > 0 {
		alerts, err = s.telemetryRepo.ListAlertsByPartnerIDs(ctx, partnerIDs)
		if err != nil {
			return nil, err
		}
	}

	return FormatRows(shipments, custodies, custodians, items, gateways, alerts), nil
}
