// file: internals/features/reports/controller/report_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billingModel "propertyhub_backend/internals/features/finance/billings/model"
	unitModel "propertyhub_backend/internals/features/property/units/model"
	helper "propertyhub_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

/* =========================
   Occupancy
   ========================= */

type occupancyRow struct {
	PropertyID   string `json:"property_id"   gorm:"column:property_id"`
	PropertyName string `json:"property_name" gorm:"column:property_name"`
	UnitStatus   string `json:"unit_status"   gorm:"column:unit_status"`
	UnitCount    int64  `json:"unit_count"    gorm:"column:unit_count"`
}

type propertyOccupancy struct {
	PropertyID   string `json:"property_id"`
	PropertyName string `json:"property_name"`
	TotalUnits   int64  `json:"total_units"`
	Vacant       int64  `json:"vacant"`
	Occupied     int64  `json:"occupied"`
	Maintenance  int64  `json:"maintenance"`
}

// ========== OCCUPANCY ==========
// GET /api/a/reports/occupancy
// Unit counts by status per property for the caller's company.
func (ctrl *ReportController) Occupancy(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []occupancyRow
	if err := ctrl.DB.
		Table("units").
		Select("units.unit_property_id AS property_id, properties.property_name AS property_name, units.unit_status AS unit_status, COUNT(*) AS unit_count").
		Joins("JOIN properties ON properties.property_id = units.unit_property_id").
		Where("units.unit_company_id = ? AND units.unit_deleted_at IS NULL", companyID).
		Group("units.unit_property_id, properties.property_name, units.unit_status").
		Order("properties.property_name ASC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build occupancy report")
	}

	return helper.JsonOK(c, "Occupancy report", foldOccupancy(rows))
}

// foldOccupancy collapses per-status count rows into one record per property,
// keeping the fetch order.
func foldOccupancy(rows []occupancyRow) []propertyOccupancy {
	byProperty := make(map[string]*propertyOccupancy)
	order := make([]string, 0)
	for _, r := range rows {
		p, ok := byProperty[r.PropertyID]
		if !ok {
			p = &propertyOccupancy{PropertyID: r.PropertyID, PropertyName: r.PropertyName}
			byProperty[r.PropertyID] = p
			order = append(order, r.PropertyID)
		}
		p.TotalUnits += r.UnitCount
		switch unitModel.UnitStatus(r.UnitStatus) {
		case unitModel.UnitStatusVacant:
			p.Vacant += r.UnitCount
		case unitModel.UnitStatusOccupied:
			p.Occupied += r.UnitCount
		case unitModel.UnitStatusMaintenance:
			p.Maintenance += r.UnitCount
		}
	}

	out := make([]propertyOccupancy, 0, len(order))
	for _, id := range order {
		out = append(out, *byProperty[id])
	}
	return out
}

/* =========================
   Revenue
   ========================= */

// resolveMonthRange parses the optional ?from/?to months, defaulting to the
// 12 months ending at now's month.
func resolveMonthRange(fromRaw, toRaw string, now time.Time) (time.Time, time.Time, error) {
	to := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	from := to.AddDate(0, -11, 0)

	if raw := strings.TrimSpace(fromRaw); raw != "" {
		t, err := time.ParseInLocation("2006-01", raw, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("Invalid from month, expected YYYY-MM")
		}
		from = t
	}
	if raw := strings.TrimSpace(toRaw); raw != "" {
		t, err := time.ParseInLocation("2006-01", raw, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("Invalid to month, expected YYYY-MM")
		}
		to = t
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, errors.New("to month must not be before from month")
	}
	return from, to, nil
}

type revenueRow struct {
	Month       string  `json:"month"       gorm:"column:month"`
	Billed      float64 `json:"billed"      gorm:"column:billed"`
	Collected   float64 `json:"collected"   gorm:"column:collected"`
	Outstanding float64 `json:"outstanding" gorm:"column:outstanding"`
}

// ========== REVENUE ==========
// GET /api/a/reports/revenue?from=YYYY-MM&to=YYYY-MM
// Billed vs collected totals per billing month. Cancelled invoices are
// excluded; outstanding is billed minus collected. Defaults to the last
// 12 months.
func (ctrl *ReportController) Revenue(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	from, to, err := resolveMonthRange(c.Query("from"), c.Query("to"), time.Now().UTC())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var rows []revenueRow
	if err := ctrl.DB.
		Model(&billingModel.Billing{}).
		Select("to_char(billing_month, 'YYYY-MM') AS month, COALESCE(SUM(billing_total_amount), 0) AS billed, COALESCE(SUM(billing_paid_amount), 0) AS collected, COALESCE(SUM(billing_total_amount - billing_paid_amount), 0) AS outstanding").
		Where("billing_company_id = ?", companyID).
		Where("billing_status <> ?", billingModel.BillingStatusCancelled).
		Where("billing_month BETWEEN ? AND ?", from, to).
		Group("billing_month").
		Order("billing_month ASC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build revenue report")
	}

	return helper.JsonOK(c, "Revenue report", fiber.Map{
		"from":   from.Format("2006-01"),
		"to":     to.Format("2006-01"),
		"months": rows,
	})
}
