package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"user-rest-service/internal/usecase/user"
	"user-rest-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserNotFoundMessage is returned with every 404 from the user routes.
const UserNotFoundMessage = "User not found"

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	uc  user.Usecase
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(uc user.Usecase, log *zap.Logger) *UserHandler {
	return &UserHandler{
		uc:  uc,
		log: log,
	}
}

// UserRequest represents the HTTP request body for creating or updating a user.
// A field that is absent or null is not supplied.
type UserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// UserResponse represents the HTTP response for user data
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// MessageResponse represents a response carrying only a message
type MessageResponse struct {
	Message string `json:"message"`
}

// GetAllUsers handles GET /api/users
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.uc.GetAllUsers(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.requestLog(c).Warn("Invalid create user request body", zap.Error(err))
		_ = c.Error(err)
		return
	}

	created, err := h.uc.CreateUser(c.Request.Context(), user.CreateUserRequest{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, toResponse(*created))
}

// GetUserByID handles GET /api/users/:id
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		h.notFound(c)
		return
	}

	found, err := h.uc.GetUserByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if found == nil {
		h.notFound(c)
		return
	}

	c.JSON(http.StatusOK, toResponse(*found))
}

// UpdateUser handles PUT /api/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		h.notFound(c)
		return
	}

	var req UserRequest
	// An empty body is an empty patch.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.requestLog(c).Warn("Invalid update user request body", zap.Int64("id", id), zap.Error(err))
		_ = c.Error(err)
		return
	}

	updated, err := h.uc.UpdateUser(c.Request.Context(), user.UpdateUserRequest{
		ID:    id,
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	if updated == nil {
		h.notFound(c)
		return
	}

	c.JSON(http.StatusOK, toResponse(*updated))
}

// DeleteUser handles DELETE /api/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		h.notFound(c)
		return
	}

	deleted, err := h.uc.DeleteUser(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !deleted {
		h.notFound(c)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseID reads the :id path parameter. An id that does not parse cannot
// match any row, so callers answer it like a missing user.
func (h *UserHandler) parseID(c *gin.Context) (int64, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.requestLog(c).Debug("Unparseable user ID", zap.String("id", idStr))
		return 0, false
	}
	return id, true
}

func (h *UserHandler) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, MessageResponse{Message: UserNotFoundMessage})
}

func (h *UserHandler) requestLog(c *gin.Context) *zap.Logger {
	return logger.WithContext(c.Request.Context(), h.log)
}

func toResponse(u user.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
