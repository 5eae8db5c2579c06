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

// UserHandler serves the administrator-only user management routes.
type UserHandler struct {
	userRepo repositories.UserRepository
	roleRepo repositories.RoleRepository
	logger   zerolog.Logger
	Helper   *helper.HTTPHelper
}

func NewUserHandler(userRepo repositories.UserRepository, roleRepo repositories.RoleRepository,
	logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		userRepo: userRepo,
		roleRepo: roleRepo,
		logger:   logger,
		Helper:   &helper.HTTPHelper{},
	}
}

func (h *UserHandler) Index(c *gin.Context) {
	users, err := h.userRepo.GetAll()
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list users")
		h.Helper.SendInternalServerError(c)
		return
	}

	h.Helper.SendSuccess(c, "Success", models.NewUserViews(users))
}

func (h *UserHandler) Details(c *gin.Context) {
	user, err := h.userRepo.GetByID(c.Param("id"))
	if err != nil {
		h.Helper.SendNotFoundError(c, "User not found", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", models.NewUserView(user))
}

// Edit updates the free-text custom field, phone number and role set.
func (h *UserHandler) Edit(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendValidationError(c, err)
		return
	}
	if c.Param("id") != req.UserID {
		h.Helper.SendNotFoundError(c, "User ID mismatch", h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.userRepo.GetByID(req.UserID)
	if err != nil {
		h.Helper.SendNotFoundError(c, "User not found", h.Helper.EmptyJsonMap())
		return
	}

	user.CustomField = req.CustomField
	user.PhoneNumber = req.PhoneNumber
	if err := h.userRepo.Update(user); err != nil {
		h.logger.Error().Err(err).Str("user_id", req.UserID).Msg("failed to update user")
		h.Helper.SendInternalServerError(c)
		return
	}

	if req.Roles != nil {
		roles, err := h.roleRepo.GetByNames(req.Roles)
		if err != nil {
			h.logger.Error().Err(err).Msg("failed to resolve roles")
			h.Helper.SendInternalServerError(c)
			return
		}
		if len(roles) != len(req.Roles) {
			h.Helper.SendBadRequest(c, "Unknown role in request", h.Helper.EmptyJsonMap())
			return
		}
		if err := h.userRepo.ReplaceRoles(user, roles); err != nil {
			h.logger.Error().Err(err).Str("user_id", req.UserID).Msg("failed to replace roles")
			h.Helper.SendInternalServerError(c)
			return
		}
		user.Roles = roles
	}

	h.Helper.SendSuccess(c, "User updated successfully", models.NewUserView(user))
}

func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.userRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.Helper.SendNotFoundError(c, "User not found", h.Helper.EmptyJsonMap())
			return
		}
		h.logger.Error().Err(err).Str("user_id", id).Msg("failed to delete user")
		h.Helper.SendSuccess(c, "User delete failed", gin.H{"deleted": false, "error": true, "id": id})
		return
	}

	h.Helper.SendSuccess(c, "User deleted successfully", gin.H{"deleted": true, "id": id})
}
