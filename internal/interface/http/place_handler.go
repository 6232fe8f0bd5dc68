package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	placeapp "github.com/howietz/placeshare/internal/application"
	"github.com/howietz/placeshare/internal/infrastructure/geocode"
	"github.com/howietz/placeshare/pkg/response"
	"github.com/howietz/placeshare/pkg/validation"
)

type PlaceHandler struct {
	Svc    *placeapp.PlaceService
	Logger *logrus.Logger
}

func NewPlaceHandler(svc *placeapp.PlaceService, logger *logrus.Logger) *PlaceHandler {
	return &PlaceHandler{Svc: svc, Logger: logger}
}

type createPlaceRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required,desc"`
	Address     string `json:"address" binding:"required"`
	Creator     string `json:"creator" binding:"required"`
}

type updatePlaceRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required,desc"`
}

func (h *PlaceHandler) GetByID(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), c.Param("pid"))
	if err != nil {
		if errors.Is(err, placeapp.ErrPlaceNotFound) {
			response.Error[any](c, http.StatusNotFound, "Could not find a place for the provided id.", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "Something went wrong, could not fetch place", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"place": p}, "place", nil)
}

func (h *PlaceHandler) GetByUser(c *gin.Context) {
	places, err := h.Svc.ListByCreator(c.Request.Context(), c.Param("uid"))
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "Fetching places failed, please try again later", nil)
		return
	}
	if len(places) == 0 {
		response.Error[any](c, http.StatusNotFound, "Could not find places for the provided user id", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"places": places}, "places", nil)
}

func (h *PlaceHandler) Create(c *gin.Context) {
	var req createPlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "Invalid inputs passed, please check your data", validation.ToDetails(err))
		return
	}

	p, err := h.Svc.Create(c.Request.Context(), placeapp.CreatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		Creator:     req.Creator,
	})
	if err != nil {
		switch {
		case errors.Is(err, placeapp.ErrUserNotFound):
			response.Error[any](c, http.StatusNotFound, "Could not find user for provided id", nil)
		case errors.Is(err, geocode.ErrNoResults):
			response.Error[any](c, http.StatusUnprocessableEntity, "Could not find location for the specified address.", nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "Creating place failed, please try again later", nil)
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"place": p}, "place created", nil)
}

func (h *PlaceHandler) Update(c *gin.Context) {
	var req updatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "Invalid inputs passed, please check your data", validation.ToDetails(err))
		return
	}

	p, err := h.Svc.Update(c.Request.Context(), c.Param("pid"), req.Title, req.Description)
	if err != nil {
		if errors.Is(err, placeapp.ErrPlaceNotFound) {
			response.Error[any](c, http.StatusNotFound, "Could not find a place for the provided id.", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "Something went wrong, could not update place", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"place": p}, "place updated", nil)
}

func (h *PlaceHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("pid")); err != nil {
		if errors.Is(err, placeapp.ErrPlaceNotFound) {
			response.Error[any](c, http.StatusNotFound, "Could not find place for this id", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "Something went wrong, could not delete place", nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Deleted place.", nil)
}
