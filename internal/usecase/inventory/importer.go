package inventory

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainInventory "shipment-dashboard/internal/domain/inventory"
	"shipment-dashboard/internal/logger"
	appErrors "shipment-dashboard/pkg/errors"
	"shipment-dashboard/pkg/utils"
)

// Import column names. Header matching is case-insensitive and order
// independent; only "name" is mandatory.
const (
	columnName        = "name"
	columnItemType    = "item_type"
	columnProduct     = "product"
	columnUnits       = "units"
	columnGrossWeight = "gross_weight"
	columnValue       = "value"
)

// ImportItems bulk-creates items from an uploaded CSV. Rows that fail to
// parse or validate are reported per line and skipped; all valid rows
// are inserted in one batch. A file with a header but no data rows is an
// error.
func (s *Service) ImportItems(ctx context.Context, orgID uuid.UUID, r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, appErrors.ErrImportEmptyFile
	}
	if err != nil {
		return nil, appErrors.NewAppError("IMPORT_PARSE_ERROR", "Malformed CSV header", err)
	}

	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := columns[columnName]; !ok {
		return nil, appErrors.NewAppError("IMPORT_MISSING_COLUMN", "CSV is missing the name column", nil)
	}

	result := &ImportResult{Errors: []RowError{}}
	items := make([]*domainInventory.Item, 0)
	now := time.Now()

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Rejected++
			result.Errors = append(result.Errors, RowError{Line: line, Message: "malformed row"})
			continue
		}

		item, rowErr := s.parseItemRow(ctx, orgID, columns, record)
		if rowErr != "" {
			result.Rejected++
			result.Errors = append(result.Errors, RowError{Line: line, Message: rowErr})
			continue
		}
		item.CreatedAt = now
		item.UpdatedAt = now
		items = append(items, item)
	}

	if len(items) == 0 && result.Rejected == 0 {
		return nil, appErrors.ErrImportEmptyFile
	}

	if len(items) > 0 {
		if err := s.repo.CreateItems(ctx, items); err != nil {
			return nil, err
		}
	}
	result.Imported = len(items)

	logger.Info("Items imported",
		zap.String("organization_id", orgID.String()),
		zap.Int("imported", result.Imported),
		zap.Int("rejected", result.Rejected),
	)

	return result, nil
}

func (s *Service) parseItemRow(ctx context.Context, orgID uuid.UUID, columns map[string]int, record []string) (*domainInventory.Item, string) {
	cell := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	name := utils.SanitizeString(cell(columnName))
	if name == "" {
		return nil, "name is required"
	}

	item := &domainInventory.Item{
		OrganizationID: orgID,
		Name:           name,
		ItemType:       utils.SanitizeString(cell(columnItemType)),
	}

	if raw := cell(columnUnits); raw != "" {
		units, err := strconv.Atoi(raw)
		if err != nil || units < 0 {
			return nil, fmt.Sprintf("invalid units %q", raw)
		}
		item.Units = units
	}
	if raw := cell(columnGrossWeight); raw != "" {
		w, err := strconv.ParseFloat(raw, 64)
		if err != nil || w < 0 {
			return nil, fmt.Sprintf("invalid gross_weight %q", raw)
		}
		item.GrossWeight = &w
	}
	if raw := cell(columnValue); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return nil, fmt.Sprintf("invalid value %q", raw)
		}
		item.Value = &v
	}

	if productName := cell(columnProduct); productName != "" {
		product, err := s.repo.GetProductByName(ctx, orgID, productName)
		if err != nil {
			if errors.Is(err, domainInventory.ErrProductNotFound) {
				return nil, fmt.Sprintf("unknown product %q", productName)
			}
			return nil, "product lookup failed"
		}
		item.ProductID = &product.ID
	}

	return item, ""
}
