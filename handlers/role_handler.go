package handlers

import (
	"errors"

	"webblog/helper"
	"webblog/models"
	"webblog/repositories"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// RoleHandler serves the administrator-only role management routes.
type RoleHandler struct {
	roleRepo repositories.RoleRepository
	logger   zerolog.Logger
	Helper   *helper.HTTPHelper
}

func NewRoleHandler(roleRepo repositories.RoleRepository, logger zerolog.Logger) *RoleHandler {
	return &RoleHandler{roleRepo: roleRepo, logger: logger, Helper: &helper.HTTPHelper{}}
}

func (h *RoleHandler) Index(c *gin.Context) {
	roles, err := h.roleRepo.GetAll()
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list roles")
		h.Helper.SendInternalServerError(c)
		return
	}

	h.Helper.SendSuccess(c, "Success", models.NewRoleViews(roles))
}

func (h *RoleHandler) Details(c *gin.Context) {
	role, err := h.roleRepo.GetByID(c.Param("id"))
	if err != nil {
		h.Helper.SendNotFoundError(c, "Role not found", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", models.NewRoleView(role))
}

func (h *RoleHandler) Create(c *gin.Context) {
	var req models.NewRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendValidationError(c, err)
		return
	}

	if _, err := h.roleRepo.GetByName(req.Name); err == nil {
		h.Helper.SendBadRequest(c, "Role already exists", h.Helper.EmptyJsonMap())
		return
	}

	role := &models.Role{Name: req.Name, SecurityLevel: req.SecurityLevel}
	if err := h.roleRepo.Create(role); err != nil {
		h.logger.Error().Err(err).Str("role", req.Name).Msg("failed to create role")
		h.Helper.SendInternalServerError(c)
		return
	}

	h.Helper.SendCreated(c, "Role created successfully", models.NewRoleView(role))
}

func (h *RoleHandler) Edit(c *gin.Context) {
	var req models.EditRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendValidationError(c, err)
		return
	}
	if c.Param("id") != req.RoleID {
		h.Helper.SendNotFoundError(c, "Role ID mismatch", h.Helper.EmptyJsonMap())
		return
	}

	role := &models.Role{RoleID: req.RoleID, Name: req.Name, SecurityLevel: req.SecurityLevel}
	if err := h.roleRepo.Update(role); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.Helper.SendNotFoundError(c, "Role not found", h.Helper.EmptyJsonMap())
			return
		}
		h.logger.Error().Err(err).Str("role_id", req.RoleID).Msg("failed to update role")
		h.Helper.SendInternalServerError(c)
		return
	}

	h.Helper.SendSuccess(c, "Role updated successfully", models.NewRoleView(role))
}

func (h *RoleHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.roleRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.Helper.SendNotFoundError(c, "Role not found", h.Helper.EmptyJsonMap())
			return
		}
		h.logger.Error().Err(err).Str("role_id", id).Msg("failed to delete role")
		h.Helper.SendSuccess(c, "Role delete failed", gin.H{"deleted": false, "error": true, "id": id})
		return
	}

	h.Helper.SendSuccess(c, "Role deleted successfully", gin.H{"deleted": true, "id": id})
}
