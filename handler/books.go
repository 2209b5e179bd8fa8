package handler

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/emzola/bookxchange/data/dto"
	"github.com/emzola/bookxchange/internal/validator"
	"github.com/emzola/bookxchange/service"
	"github.com/julienschmidt/httprouter"
)

// CreateBook godoc
// @Summary Create a new book listing
// @Description This endpoint lists a book for sale. Price may be sent as a number or a string.
// @Tags books
// @Accept  json
// @Produce json
// @Param body body dto.CreateListingRequestBody true "JSON payload required to create a listing"
// @Success 201 {object} data.Listing
// @Failure 400
// @Failure 415
// @Failure 422
// @Failure 500
// @Router /books [post]
func (h *Handler) createBookHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateListingRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.decodeErrorResponse(w, r, err)
		return
	}
	listing, err := h.service.CreateListing(requestBody)
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
	headers.Set("Location", fmt.Sprintf("%s/books/%d", h.config.Server.BasePath, listing.ID))
	err = h.encodeJSON(w, http.StatusCreated, listing, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ShowBook godoc
// @Summary Show a book listing
// @Tags books
// @Produce json
// @Param bookId path int true "ID of listing to show"
// @Success 200 {object} data.Listing
// @Failure 404
// @Failure 500
// @Router /books/{bookId} [get]
func (h *Handler) showBookHandler(w http.ResponseWriter, r *http.Request) {
	if httprouter.ParamsFromContext(r.Context()).ByName("bookId") == "search" {
		h.searchBooksHandler(w, r)
		return
	}
	bookID, err := h.readIDParam(r, "bookId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	listing, err := h.service.GetListing(bookID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, listing, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ListBooks godoc
// @Summary List book listings
// @Description Filtered, sorted view of the catalog with the caller's favourite flags
// @Tags books
// @Produce json
// @Param X-Session-Id header string false "Client session"
// @Param search query string false "Matches title, course code or seller"
// @Param sort query string false "title, price or course"
// @Param min_price query number false "Lower price bound"
// @Param max_price query number false "Upper price bound"
// @Param course query string false "Exact course code"
// @Success 200 {array} catalog.Entry
// @Failure 422
// @Failure 500
// @Router /books [get]
func (h *Handler) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	var qs dto.QsListListings
	v := validator.New()
	query := r.URL.Query()
	qs.Search = h.readString(query, "search", "")
	qs.Sort = h.readString(query, "sort", "title")
	qs.MinPrice = h.readFloat(query, "min_price", 0, v)
	qs.MaxPrice = h.readFloat(query, "max_price", math.Inf(1), v)
	qs.Course = h.readString(query, "course", "")
	if !v.Valid() {
		h.failedValidationResponse(w, r, v.Errors)
		return
	}
	entries, err := h.service.ListListings(h.contextGetSession(r), qs)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, validationErrors(err))
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, entries, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// SearchBooks godoc
// @Summary Search book listings
// @Tags books
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {array} data.Listing
// @Failure 500
// @Router /books/search [get]
func (h *Handler) searchBooksHandler(w http.ResponseWriter, r *http.Request) {
	listings, err := h.service.SearchListings(h.readString(r.URL.Query(), "q", ""))
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, listings, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// DeleteBook godoc
// @Summary Delete a book listing
// @Tags books
// @Param bookId path int true "ID of listing to delete"
// @Success 204
// @Failure 404
// @Failure 500
// @Router /books/{bookId} [delete]
func (h *Handler) deleteBookHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := h.readIDParam(r, "bookId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	err = h.service.DeleteListing(bookID)
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
