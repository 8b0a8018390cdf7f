package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainCustodian "shipment-dashboard/internal/domain/custodian"
	domainInventory "shipment-dashboard/internal/domain/inventory"
	domainShipment "shipment-dashboard/internal/domain/shipment"
	domainTelemetry "shipment-dashboard/internal/domain/telemetry"
	appErrors "shipment-dashboard/pkg/errors"
	"shipment-dashboard/pkg/utils"
)

// statusFor maps service errors onto HTTP status codes. Unknown errors
// become a 500 with a generic message so internals never leak to the
// client.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domainShipment.ErrShipmentNotFound),
		errors.Is(err, domainCustodian.ErrCustodianNotFound),
		errors.Is(err, domainCustodian.ErrContactNotFound),
		errors.Is(err, domainCustodian.ErrCustodyNotFound),
		errors.Is(err, domainInventory.ErrItemNotFound),
		errors.Is(err, domainInventory.ErrProductNotFound),
		errors.Is(err, domainInventory.ErrGatewayNotFound),
		errors.Is(err, domainInventory.ErrSensorNotFound),
		errors.Is(err, domainTelemetry.ErrAlertNotFound):
		return http.StatusNotFound, err.Error()

	case errors.Is(err, domainShipment.ErrDuplicatePartnerID),
		errors.Is(err, domainInventory.ErrDuplicateIMEI),
		errors.Is(err, appErrors.ErrDuplicateRecord):
		return http.StatusConflict, err.Error()

	case errors.Is(err, domainShipment.ErrShipmentEnroute),
		errors.Is(err, domainCustodian.ErrCustodianInUse):
		return http.StatusConflict, err.Error()

	case errors.Is(err, domainShipment.ErrInvalidStatus),
		errors.Is(err, appErrors.ErrImportEmptyFile),
		errors.Is(err, appErrors.ErrImportUnsupported),
		errors.Is(err, appErrors.ErrExportNoData),
		errors.Is(err, appErrors.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	}

	var appErr *appErrors.AppError
	if errors.As(err, &appErr) {
		return http.StatusBadRequest, appErr.Message
	}

	return http.StatusInternalServerError, "Internal server error"
}

func respondError(c *gin.Context, err error) {
	status, message := statusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	utils.ErrorResponse(c, status, message)
}

// organizationID pulls the caller's organization from the context set
// by the auth middleware.
func organizationID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("organizationID")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Organization not found in context")
		return uuid.Nil, false
	}
	orgID, ok := raw.(uuid.UUID)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid organization ID format")
		return uuid.Nil, false
	}
	return orgID, true
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
