package handler

import (
	"errors"
	"net/http"

	"github.com/emzola/bookxchange/service"
)

// FavouriteBook godoc
// @Summary Favourite a book listing for the current session
// @Tags books
// @Param X-Session-Id header string false "Client session"
// @Param bookId path int true "ID of listing"
// @Success 204
// @Failure 404
// @Failure 500
// @Router /books/{bookId}/favourite [post]
func (h *Handler) favouriteBookHandler(w http.ResponseWriter, r *http.Request) {
	h.toggleFavourite(w, r, h.service.FavouriteListing)
}

// DeleteFavouriteBook godoc
// @Summary Remove a book listing from the current session's favourites
// @Tags books
// @Param X-Session-Id header string false "Client session"
// @Param bookId path int true "ID of listing"
// @Success 204
// @Failure 404
// @Failure 500
// @Router /books/{bookId}/favourite [delete]
func (h *Handler) deleteFavouriteBookHandler(w http.ResponseWriter, r *http.Request) {
	h.toggleFavourite(w, r, h.service.UnfavouriteListing)
}

func (h *Handler) toggleFavourite(w http.ResponseWriter, r *http.Request, fn func(session string, listingID int64) error) {
	bookID, err := h.readIDParam(r, "bookId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	err = fn(h.contextGetSession(r), bookID)
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
