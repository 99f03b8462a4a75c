// file: internals/features/finance/meter_readings/controller/meter_reading_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	feeTypeModel "propertyhub_backend/internals/features/finance/fee_types/model"
	dto "propertyhub_backend/internals/features/finance/meter_readings/dto"
	model "propertyhub_backend/internals/features/finance/meter_readings/model"
	service "propertyhub_backend/internals/features/finance/meter_readings/service"
	unitFeeModel "propertyhub_backend/internals/features/finance/unit_fees/model"
	helper "propertyhub_backend/internals/helpers"
)

type MeterReadingController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewMeterReadingController(db *gorm.DB) *MeterReadingController {
	return &MeterReadingController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* ======================= BULK CREATE ======================= */
// POST /meter-readings/bulk
func (ctl *MeterReadingController) BulkCreate(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.BulkCreateMeterReadingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	created := make([]model.MeterReading, 0, len(req.Entries))
	failed := make([]fiber.Map, 0)

	for _, entry := range req.Entries {
		readingDate, err := time.Parse("2006-01-02", entry.ReadingDate)
		if err != nil {
			failed = append(failed, fiber.Map{"unit_id": entry.UnitID, "reason": "reading_date invalid"})
			continue
		}

		var ft feeTypeModel.FeeType
		if err := ctl.DB.
			Where("fee_type_id = ? AND fee_type_company_id = ?", entry.FeeTypeID, companyID).
			First(&ft).Error; err != nil {
			failed = append(failed, fiber.Map{"unit_id": entry.UnitID, "reason": "fee type not found"})
			continue
		}
		if ft.FeeTypeCalculationType != feeTypeModel.FeeCalcMetered {
			failed = append(failed, fiber.Map{"unit_id": entry.UnitID, "reason": "fee type is not metered"})
			continue
		}

		latest, err := model.LatestReading(ctl.DB, companyID, entry.UnitID, entry.FeeTypeID)
		if err != nil {
			failed = append(failed, fiber.Map{"unit_id": entry.UnitID, "reason": err.Error()})
			continue
		}

		// first active override wins
		var override unitFeeModel.UnitFee
		var overridePrice *float64
		if err := ctl.DB.
			Scopes(unitFeeModel.ScopeByCompany(companyID), unitFeeModel.ScopeByUnit(entry.UnitID), unitFeeModel.ScopeActive).
			Where("unit_fee_fee_type_id = ?", entry.FeeTypeID).
			Order("unit_fee_created_at ASC").
			First(&override).Error; err == nil {
			overridePrice = override.UnitFeeCustomUnitPrice
		}

		reading, err := service.BuildReading(service.ReadingInput{
			CompanyID:     companyID,
			UnitID:        entry.UnitID,
			FeeTypeID:     entry.FeeTypeID,
			ReadingDate:   readingDate,
			Previous:      entry.PreviousReading,
			Current:       entry.CurrentReading,
			UnitPrice:     entry.UnitPrice,
			OverridePrice: overridePrice,
			DefaultPrice:  ft.FeeTypeDefaultUnitPrice,
			Latest:        latest,
		})
		if err != nil {
			failed = append(failed, fiber.Map{"unit_id": entry.UnitID, "reason": err.Error()})
			continue
		}

		if err := ctl.DB.Create(reading).Error; err != nil {
			failed = append(failed, fiber.Map{"unit_id": entry.UnitID, "reason": err.Error()})
			continue
		}
		created = append(created, *reading)
	}

	return helper.JsonCreated(c, "meter readings recorded", fiber.Map{
		"created": dto.FromModelMeterReadings(created),
		"failed":  failed,
	})
}

/* ======================= LIST / HISTORY ======================= */
// GET /meter-readings?unit_id=&fee_type_id=&month=YYYY-MM
func (ctl *MeterReadingController) List(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.MeterReading{}).
		Scopes(model.ScopeByCompany(companyID))

	if unitIDStr := strings.TrimSpace(c.Query("unit_id")); unitIDStr != "" {
		unitID, err := uuid.Parse(unitIDStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "unit_id invalid")
		}
		q = q.Scopes(model.ScopeByUnit(unitID))
	}
	if ftStr := strings.TrimSpace(c.Query("fee_type_id")); ftStr != "" {
		ftID, err := uuid.Parse(ftStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "fee_type_id invalid")
		}
		q = q.Where("meter_reading_fee_type_id = ?", ftID)
	}
	if monthStr := strings.TrimSpace(c.Query("month")); monthStr != "" {
		monthStart, err := time.Parse("2006-01", monthStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "month must be YYYY-MM")
		}
		q = q.Scopes(model.ScopeMonthWindow(monthStart))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.MeterReading
	if err := q.
		Order("meter_reading_date DESC, meter_reading_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "meter readings", dto.FromModelMeterReadings(rows), &p)
}

/* ======================= CSV EXPORT ======================= */
// GET /meter-readings/export — meter-history-{ISO date}.csv
func (ctl *MeterReadingController) ExportCSV(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []dto.MeterHistoryRow
	if err := ctl.DB.Table("meter_readings").
		Select(`meter_readings.meter_reading_date,
			properties.property_name AS property_name,
			units.unit_number AS unit_number,
			fee_types.fee_type_name AS fee_type_name,
			meter_readings.meter_reading_previous,
			meter_readings.meter_reading_current,
			meter_readings.meter_reading_consumption,
			meter_readings.meter_reading_total_amount`).
		Joins("JOIN units ON units.unit_id = meter_readings.meter_reading_unit_id").
		Joins("JOIN properties ON properties.property_id = units.unit_property_id").
		Joins("JOIN fee_types ON fee_types.fee_type_id = meter_readings.meter_reading_fee_type_id").
		Where("meter_readings.meter_reading_company_id = ?", companyID).
		Order("meter_readings.meter_reading_date DESC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	header, csvRows := service.BuildMeterHistoryCSV(rows)
	filename := "meter-history-" + time.Now().Format("2006-01-02") + ".csv"
	return helper.SendCSV(c, filename, header, csvRows)
}
