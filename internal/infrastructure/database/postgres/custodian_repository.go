package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shipment-dashboard/internal/domain/custodian"
	"shipment-dashboard/internal/infrastructure/database/postgres/models"
)

type CustodianRepository struct {
	db *DB
}

func NewCustodianRepository(db *DB) *CustodianRepository {
	return &CustodianRepository{db: db}
}

func (r *CustodianRepository) CreateCustodian(ctx context.Context, c *custodian.Custodian) error {
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	c.UpdatedAt = time.Now()

	dbModel := toCustodianModel(c)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create custodian: %w", err)
	}

	return nil
}

func (r *CustodianRepository) GetCustodian(ctx context.Context, id uuid.UUID) (*custodian.Custodian, error) {
	var dbModel models.CustodianModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, custodian.ErrCustodianNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get custodian: %w", err)
	}

	return toCustodianEntity(&dbModel), nil
}

func (r *CustodianRepository) UpdateCustodian(ctx context.Context, c *custodian.Custodian) error {
	c.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.CustodianModel{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"name":           c.Name,
			"abbreviation":   c.Abbreviation,
			"custodian_type": c.CustodianType,
			"contact_id":     c.ContactID,
			"updated_at":     c.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update custodian: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return custodian.ErrCustodianNotFound
	}

	return nil
}

func (r *CustodianRepository) DeleteCustodian(ctx context.Context, id uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.CustodianModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete custodian: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return custodian.ErrCustodianNotFound
	}

	return nil
}

func (r *CustodianRepository) ListCustodians(ctx context.Context, orgID uuid.UUID) ([]*custodian.Custodian, error) {
	var dbModels []models.CustodianModel
	err := r.db.DB.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("name ASC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list custodians: %w", err)
	}

	custodians := make([]*custodian.Custodian, len(dbModels))
	for i := range dbModels {
		custodians[i] = toCustodianEntity(&dbModels[i])
	}

	return custodians, nil
}

func (r *CustodianRepository) CreateContact(ctx context.Context, c *custodian.Contact) error {
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	c.UpdatedAt = time.Now()

	dbModel := toContactModel(c)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}

	return nil
}

func (r *CustodianRepository) GetContact(ctx context.Context, id uuid.UUID) (*custodian.Contact, error) {
	var dbModel models.ContactModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, custodian.ErrContactNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	return toContactEntity(&dbModel), nil
}

func (r *CustodianRepository) UpdateContact(ctx context.Context, c *custodian.Contact) error {
	c.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.ContactModel{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"address1":    c.Address1,
			"address2":    c.Address2,
			"city":        c.City,
			"state":       c.State,
			"country":     c.Country,
			"postal_code": c.PostalCode,
			"phone":       c.Phone,
			"email":       c.Email,
			"updated_at":  c.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update contact: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return custodian.ErrContactNotFound
	}

	return nil
}

func (r *CustodianRepository) DeleteContact(ctx context.Context, id uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.ContactModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete contact: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return custodian.ErrContactNotFound
	}

	return nil
}

func (r *CustodianRepository) ListContacts(ctx context.Context, orgID uuid.UUID) ([]*custodian.Contact, error) {
	var dbModels []models.ContactModel
	err := r.db.DB.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	contacts := make([]*custodian.Contact, len(dbModels))
	for i := range dbModels {
		contacts[i] = toContactEntity(&dbModels[i])
	}

	return contacts, nil
}

func (r *CustodianRepository) CreateCustody(ctx context.Context, c *custodian.Custody) error {
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	c.UpdatedAt = time.Now()

	dbModel := toCustodyModel(c)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create custody: %w", err)
	}

	return nil
}

func (r *CustodianRepository) UpdateCustody(ctx context.Context, c *custodian.Custody) error {
	c.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.CustodyModel{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"first_custody":       c.FirstCustody,
			"last_custody":        c.LastCustody,
			"has_current_custody": c.HasCurrentCustody,
			"load_order":          c.LoadOrder,
			"start_of_custody":    c.StartOfCustody,
			"end_of_custody":      c.EndOfCustody,
			"updated_at":          c.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update custody: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return custodian.ErrCustodyNotFound
	}

	return nil
}

func (r *CustodianRepository) DeleteCustody(ctx context.Context, id uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.CustodyModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete custody: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return custodian.ErrCustodyNotFound
	}

	return nil
}

func (r *CustodianRepository) ListCustodiesByShipment(ctx context.Context, shipmentID uuid.UUID) ([]*custodian.Custody, error) {
	return r.listCustodies(ctx, "shipment_id = ?", shipmentID)
}

func (r *CustodianRepository) ListCustodiesByShipments(ctx context.Context, shipmentIDs []uuid.UUID) ([]*custodian.Custody, error) {
	if len(shipmentIDs) == 0 {
		return nil, nil
	}
	return r.listCustodies(ctx, "shipment_id IN ?", shipmentIDs)
}

func (r *CustodianRepository) listCustodies(ctx context.Context, query string, args ...interface{}) ([]*custodian.Custody, error) {
	var dbModels []models.CustodyModel
	err := r.db.DB.WithContext(ctx).
		Where(query, args...).
		Order("created_at ASC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list custodies: %w", err)
	}

	custodies := make([]*custodian.Custody, len(dbModels))
	for i := range dbModels {
		custodies[i] = toCustodyEntity(&dbModels[i])
	}

	return custodies, nil
}

func (r *CustodianRepository) CountCustodiesByCustodian(ctx context.Context, custodianID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).
		Model(&models.CustodyModel{}).
		Where("custodian_id = ?", custodianID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count custodies: %w", err)
	}

	return count, nil
}

func toCustodianModel(c *custodian.Custodian) *models.CustodianModel {
	return &models.CustodianModel{
		ID:             c.ID,
		OrganizationID: c.OrganizationID,
		Name:           c.Name,
		Abbreviation:   c.Abbreviation,
		CustodianType:  c.CustodianType,
		ContactID:      c.ContactID,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func toCustodianEntity(m *models.CustodianModel) *custodian.Custodian {
	return &custodian.Custodian{
		ID:             m.ID,
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		Abbreviation:   m.Abbreviation,
		CustodianType:  m.CustodianType,
		ContactID:      m.ContactID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toContactModel(c *custodian.Contact) *models.ContactModel {
	return &models.ContactModel{
		ID:             c.ID,
		OrganizationID: c.OrganizationID,
		Address1:       c.Address1,
		Address2:       c.Address2,
		City:           c.City,
		State:          c.State,
		Country:        c.Country,
		PostalCode:     c.PostalCode,
		Phone:          c.Phone,
		Email:          c.Email,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func toContactEntity(m *models.ContactModel) *custodian.Contact {
	return &custodian.Contact{
		ID:             m.ID,
		OrganizationID: m.OrganizationID,
		Address1:       m.Address1,
		Address2:       m.Address2,
		City:           m.City,
		State:          m.State,
		Country:        m.Country,
		PostalCode:     m.PostalCode,
		Phone:          m.Phone,
		Email:          m.Email,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toCustodyModel(c *custodian.Custody) *models.CustodyModel {
	return &models.CustodyModel{
		ID:                c.ID,
		ShipmentID:        c.ShipmentID,
		CustodianID:       c.CustodianID,
		FirstCustody:      c.FirstCustody,
		LastCustody:       c.LastCustody,
		HasCurrentCustody: c.HasCurrentCustody,
		LoadOrder:         c.LoadOrder,
		StartOfCustody:    c.StartOfCustody,
		EndOfCustody:      c.EndOfCustody,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func toCustodyEntity(m *models.CustodyModel) *custodian.Custody {
	return &custodian.Custody{
		ID:                m.ID,
		ShipmentID:        m.ShipmentID,
		CustodianID:       m.CustodianID,
		FirstCustody:      m.FirstCustody,
		LastCustody:       m.LastCustody,
		HasCurrentCustody: m.HasCurrentCustody,
		LoadOrder:         m.LoadOrder,
		StartOfCustody:    m.StartOfCustody,
		EndOfCustody:      m.EndOfCustody,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
