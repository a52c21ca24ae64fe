package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/recruitment/internal/app/models/dto"
	"github.com/yigit/recruitment/internal/app/services"
	"github.com/yigit/recruitment/internal/middleware"
)

// UserController handles account administration and user lookups
type UserController struct {
	userService services.UserService
	logger      zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService: userService,
		logger:      logger,
	}
}

// GetPendingUsers lists accounts waiting for approval
// @Summary List pending users
// @Description Lists accounts whose status is PendingApproval
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.UserResponse} "Pending users"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin only"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/pending-users [get]
func (c *UserController) GetPendingUsers(ctx *gin.Context) {
	users, err := c.userService.ListPending(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(users))
}

// GetAllUsers lists every account
// @Summary List all users
// @Description Lists every account, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.UserResponse} "All users"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin only"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/all-users [get]
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	users, err := c.userService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(users))
}

// ApproveUser approves or rejects a pending account
// @Summary Decide on a pending account
// @Description Approves or rejects an account in PendingApproval. Action is "approve" or "reject" (case-insensitive).
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ApproveUserRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Updated user"
// @Failure 400 {object} dto.ErrorResponse "Invalid action or user not pending"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin only"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/approve-user [post]
func (c *UserController) ApproveUser(ctx *gin.Context) {
	var req dto.ApproveUserRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, err := c.userService.Decide(ctx.Request.Context(), req.UserID, req.Action)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userID", req.UserID).Str("action", req.Action).Msg("Account decision recorded")
	ctx.JSON(http.StatusOK, dto.NewDataResponse(user))
}

// DeleteUser removes a non-admin account
// @Summary Delete a user
// @Description Deletes an account. Accounts holding the Admin role cannot be deleted.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID" Format(int64) minimum(1)
// @Success 204 "User deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID or admin user"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin only"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/user/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.userService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userID", id).Msg("User deleted")
	ctx.Status(http.StatusNoContent)
}

// GetInterviewers lists users that can be assigned to interviews
// @Summary List interviewers
// @Description Lists active users holding the Interviewer role
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.InterviewerResponse} "Interviewers"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/interviewers [get]
func (c *UserController) GetInterviewers(ctx *gin.Context) {
	interviewers, err := c.userService.ListInterviewers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(interviewers))
}
