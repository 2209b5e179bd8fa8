package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/emzola/bookxchange/data/dto"
	"github.com/emzola/bookxchange/service"
)

// CreateRequest godoc
// @Summary Create a new book request
// @Description This endpoint creates a new book request. Urgency defaults to 5.
// @Tags requests
// @Accept  json
// @Produce json
// @Param body body dto.CreateRequestRequestBody true "JSON payload required to create a book request"
// @Success 201 {object} data.Request
// @Failure 400
// @Failure 415
// @Failure 422
// @Failure 500
// @Router /requests [post]
func (h *Handler) createRequestHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateRequestRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.decodeErrorResponse(w, r, err)
		return
	}
	request, err := h.service.CreateRequest(requestBody)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, validationErrors(err))
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("%s/requests/%d", h.config.Server.BasePath, request.ID))
	err = h.encodeJSON(w, http.StatusCreated, request, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ShowRequest godoc
// @Summary Show details of a book request
// @Tags requests
// @Produce json
// @Param requestId path int true "ID of request to show"
// @Success 200 {object} data.Request
// @Failure 404
// @Failure 500
// @Router /requests/{requestId} [get]
func (h *Handler) showRequestHandler(w http.ResponseWriter, r *http.Request) {
	requestID, err := h.readIDParam(r, "requestId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	request, err := h.service.GetRequest(requestID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, request, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ListRequests godoc
// @Summary List pending book requests
// @Tags requests
// @Produce json
// @Success 200 {array} data.Request
// @Failure 500
// @Router /requests [get]
func (h *Handler) listRequestsHandler(w http.ResponseWriter, r *http.Request) {
	requests, err := h.service.ListRequests()
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, requests, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// DeleteRequest godoc
// @Summary Remove a pending book request
// @Tags requests
// @Param requestId path int true "ID of request to remove"
// @Success 204
// @Failure 404
// @Failure 500
// @Router /requests/{requestId} [delete]
func (h *Handler) deleteRequestHandler(w http.ResponseWriter, r *http.Request) {
	requestID, err := h.readIDParam(r, "requestId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	err = h.service.DeleteRequest(requestID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ProcessRequests godoc
// @Summary Match pending requests against listings
// @Description Most urgent first; matched listings are removed and the queue is cleared.
// @Tags requests
// @Produce json
// @Success 200 {array} string
// @Failure 500
// @Router /requests/process [post]
func (h *Handler) processRequestsHandler(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.ProcessRequests()
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, results, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
