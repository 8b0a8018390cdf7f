package custodian

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainCustodian "shipment-dashboard/internal/domain/custodian"
	"shipment-dashboard/internal/logger"
	appErrors "shipment-dashboard/pkg/errors"
	"shipment-dashboard/pkg/utils"
)

// Service implements custodian use cases.
type Service struct {
	repo domainCustodian.Repository
}

func NewService(repo domainCustodian.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, orgID uuid.UUID, req *CreateCustodianRequest) (*CustodianRow, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	now := time.Now()
	contact := &domainCustodian.Contact{
		OrganizationID: orgID,
		Address1:       utils.SanitizeString(req.Address1),
		Address2:       utils.SanitizeString(req.Address2),
		City:           utils.SanitizeString(req.City),
		State:          utils.SanitizeString(req.State),
		Country:        utils.SanitizeString(req.Country),
		PostalCode:     utils.SanitizeString(req.PostalCode),
		Phone:          utils.SanitizePhone(req.Phone),
		Email:          utils.SanitizeEmail(req.Email),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.CreateContact(ctx, contact); err != nil {
		return nil, err
	}

	custodian := &domainCustodian.Custodian{
		OrganizationID: orgID,
		Name:           utils.SanitizeString(req.Name),
		Abbreviation:   utils.SanitizeString(req.Abbreviation),
		CustodianType:  utils.SanitizeString(req.CustodianType),
		ContactID:      &contact.ID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.CreateCustodian(ctx, custodian); err != nil {
		return nil, err
	}

	logger.Info("Custodian created",
		zap.String("custodian_id", custodian.ID.String()),
		zap.String("organization_id", orgID.String()),
	)

	return toCustodianRow(custodian, contact), nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*CustodianRow, error) {
	custodian, err := s.repo.GetCustodian(ctx, id)
	if err != nil {
		return nil, err
	}

	var contact *domainCustodian.Contact
	if custodian.ContactID != nil {
		contact, err = s.repo.GetContact(ctx, *custodian.ContactID)
		if err != nil {
			logger.Warn("Custodian contact missing",
				zap.String("custodian_id", id.String()),
				zap.Error(err),
			)
			contact = nil
		}
	}

	return toCustodianRow(custodian, contact), nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateCustodianRequest) (*CustodianRow, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	custodian, err := s.repo.GetCustodian(ctx, id)
	if err != nil {
		return nil, err
	}

	custodian.Name = utils.SanitizeString(req.Name)
	custodian.Abbreviation = utils.SanitizeString(req.Abbreviation)
	custodian.CustodianType = utils.SanitizeString(req.CustodianType)
	custodian.UpdatedAt = time.Now()
	if err := s.repo.UpdateCustodian(ctx, custodian); err != nil {
		return nil, err
	}

	var contact *domainCustodian.Contact
	if custodian.ContactID != nil {
		contact, err = s.repo.GetContact(ctx, *custodian.ContactID)
		if err != nil {
			return nil, err
		}
		contact.Address1 = utils.SanitizeString(req.Address1)
		contact.Address2 = utils.SanitizeString(req.Address2)
		contact.City = utils.SanitizeString(req.City)
		contact.State = utils.SanitizeString(req.State)
		contact.Country = utils.SanitizeString(req.Country)
		contact.PostalCode = utils.SanitizeString(req.PostalCode)
		contact.Phone = utils.SanitizePhone(req.Phone)
		contact.Email = utils.SanitizeEmail(req.Email)
		contact.UpdatedAt = time.Now()
		if err := s.repo.UpdateContact(ctx, contact); err != nil {
			return nil, err
		}
	}

	logger.Info("Custodian updated", zap.String("custodian_id", id.String()))

	return toCustodianRow(custodian, contact), nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	custodian, err := s.repo.GetCustodian(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.repo.CountCustodiesByCustodian(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domainCustodian.ErrCustodianInUse
	}

	if err := s.repo.DeleteCustodian(ctx, id); err != nil {
		return err
	}
	if custodian.ContactID != nil {
		if err := s.repo.DeleteContact(ctx, *custodian.ContactID); err != nil {
			logger.Warn("Failed to delete custodian contact",
				zap.String("contact_id", custodian.ContactID.String()),
				zap.Error(err),
			)
		}
	}

	logger.Info("Custodian deleted", zap.String("custodian_id", id.String()))
	return nil
}

// List returns the joined custodian rows for an organization, sorted by
// name.
func (s *Service) List(ctx context.Context, orgID uuid.UUID) ([]*CustodianRow, error) {
	custodians, err := s.repo.ListCustodians(ctx, orgID)
	if err != nil {
		return nil, err
	}
	contacts, err := s.repo.ListContacts(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return JoinContacts(custodians, contacts), nil
}
