// file: internals/features/maintenance/requests/controller/maintenance_request_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	auditModel "propertyhub_backend/internals/features/admin/audit_logs/model"
	dto "propertyhub_backend/internals/features/maintenance/requests/dto"
	model "propertyhub_backend/internals/features/maintenance/requests/model"
	helper "propertyhub_backend/internals/helpers"
)

type MaintenanceRequestController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewMaintenanceRequestController(db *gorm.DB) *MaintenanceRequestController {
	return &MaintenanceRequestController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctl *MaintenanceRequestController) findOwned(id, companyID uuid.UUID) (*model.MaintenanceRequest, error) {
	var m model.MaintenanceRequest
	err := ctl.DB.
		Where("maintenance_request_id = ? AND maintenance_request_company_id = ?", id, companyID).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ========== Create ==========
func (ctl *MaintenanceRequestController) Create(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateMaintenanceRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var unitCount int64
	if err := ctl.DB.Table("units").
		Where("unit_id = ? AND unit_company_id = ? AND unit_deleted_at IS NULL", req.MaintenanceRequestUnitID, companyID).
		Count(&unitCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if unitCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "unit not found")
	}

	m := req.ToModel(companyID)
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	auditModel.Record(ctl.DB, c, companyID, "maintenance.create", "maintenance_request", m.MaintenanceRequestID, fiber.Map{
		"unit_id":  m.MaintenanceRequestUnitID,
		"priority": m.MaintenanceRequestPriority,
	})
	return helper.JsonCreated(c, "maintenance request created", dto.FromModelMaintenanceRequest(m))
}

// ========== List ==========
// GET /maintenance-requests?unit_id=&status=&priority=&page=&per_page=
func (ctl *MaintenanceRequestController) List(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.MaintenanceRequest{}).
		Scopes(model.ScopeByCompany(companyID))

	if s := strings.TrimSpace(c.Query("unit_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "unit_id invalid")
		}
		q = q.Where("maintenance_request_unit_id = ?", id)
	}
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		if !model.MaintenanceStatus(s).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "status invalid")
		}
		q = q.Where("maintenance_request_status = ?", s)
	}
	if s := strings.TrimSpace(c.Query("priority")); s != "" {
		if !model.MaintenancePriority(s).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "priority invalid")
		}
		q = q.Where("maintenance_request_priority = ?", s)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.MaintenanceRequest
	if err := q.
		Order("maintenance_request_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "maintenance requests", dto.FromModelMaintenanceRequests(rows), &p)
}

// ========== GetByID ==========
func (ctl *MaintenanceRequestController) GetByID(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "maintenance_request_id invalid")
	}

	m, err := ctl.findOwned(id, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "maintenance request not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "maintenance request", dto.FromModelMaintenanceRequest(m))
}

// ========== Patch ==========
func (ctl *MaintenanceRequestController) Patch(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "maintenance_request_id invalid")
	}

	m, err := ctl.findOwned(id, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "maintenance request not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.MaintenanceRequestStatus == model.MaintenanceStatusClosed {
		return helper.JsonError(c, fiber.StatusConflict, "closed request can no longer be edited")
	}

	var req dto.PatchMaintenanceRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := req.ApplyTo(m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "maintenance request updated", dto.FromModelMaintenanceRequest(m))
}

// ========== Transition ==========
// POST /maintenance-requests/:id/transition — forward-only lifecycle moves.
func (ctl *MaintenanceRequestController) Transition(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "maintenance_request_id invalid")
	}

	var req dto.TransitionMaintenanceRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m, err := ctl.findOwned(id, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "maintenance request not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	next := model.MaintenanceStatus(req.Status)
	if !m.MaintenanceRequestStatus.CanTransitionTo(next) {
		return helper.JsonError(c, fiber.StatusConflict,
			"cannot move from "+string(m.MaintenanceRequestStatus)+" to "+string(next))
	}

	now := time.Now().UTC()
	updates := map[string]interface{}{
		"maintenance_request_status":     next,
		"maintenance_request_updated_at": now,
	}
	switch next {
	case model.MaintenanceStatusInProgress:
		updates["maintenance_request_started_at"] = now
		m.MaintenanceRequestStartedAt = &now
	case model.MaintenanceStatusResolved:
		updates["maintenance_request_resolved_at"] = now
		m.MaintenanceRequestResolvedAt = &now
		if req.ResolutionNotes != nil {
			updates["maintenance_request_resolution_notes"] = *req.ResolutionNotes
			m.MaintenanceRequestResolutionNotes = req.ResolutionNotes
		}
	case model.MaintenanceStatusClosed:
		updates["maintenance_request_closed_at"] = now
		m.MaintenanceRequestClosedAt = &now
	}

	if err := ctl.DB.Model(&model.MaintenanceRequest{}).
		Where("maintenance_request_id = ?", m.MaintenanceRequestID).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	m.MaintenanceRequestStatus = next
	auditModel.Record(ctl.DB, c, companyID, "maintenance.transition", "maintenance_request", m.MaintenanceRequestID, fiber.Map{
		"status": next,
	})
	return helper.JsonUpdated(c, "maintenance request moved to "+string(next), dto.FromModelMaintenanceRequest(m))
}

// ========== UploadPhoto ==========
// POST /maintenance-requests/:id/photos — multipart upload, normalized to webp
// and appended to the photo list.
func (ctl *MaintenanceRequestController) UploadPhoto(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "maintenance_request_id invalid")
	}

	m, err := ctl.findOwned(id, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "maintenance request not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.MaintenanceRequestStatus == model.MaintenanceStatusClosed {
		return helper.JsonError(c, fiber.StatusConflict, "closed request can no longer receive photos")
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "photo file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	defer f.Close()

	webpBytes, err := helper.NormalizePhotoToWebP(f, fh.Filename)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnsupportedMediaType, err.Error())
	}

	url, err := helper.SavePhotoLocally("maintenance/"+m.MaintenanceRequestID.String(), fh.Filename, webpBytes)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	photos := append(m.MaintenanceRequestPhotos, url)
	if err := ctl.DB.Model(&model.MaintenanceRequest{}).
		Where("maintenance_request_id = ?", m.MaintenanceRequestID).
		Updates(map[string]interface{}{
			"maintenance_request_photos":     pq.StringArray(photos),
			"maintenance_request_updated_at": time.Now().UTC(),
		}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	m.MaintenanceRequestPhotos = photos
	return helper.JsonUpdated(c, "photo uploaded", dto.FromModelMaintenanceRequest(m))
}
