package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/howietz/placeshare/internal/application"
	"github.com/howietz/placeshare/pkg/response"
	"github.com/howietz/placeshare/pkg/validation"
)

type UserHandler struct {
	Svc    *userapp.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "Fetching users failed, please try again later", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users}, "users", nil)
}

func (h *UserHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "Invalid inputs passed to sign up, please check your data", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), userapp.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, userapp.ErrEmailTaken) {
			response.Error[any](c, http.StatusUnprocessableEntity, "Could not create user, email already exists", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "Signing up failed, please try again later", nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"user": u}, "Created user successfully!", nil)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "Invalid inputs passed, please check your data", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// One combined message whether the email is unknown or the password
		// mismatches.
		if errors.Is(err, userapp.ErrInvalidCredentials) {
			response.Error[any](c, http.StatusUnauthorized, "Could not identify user, credentials seem to be wrong!", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "Login failed, please try again later", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u}, "Login successfully", nil)
}
