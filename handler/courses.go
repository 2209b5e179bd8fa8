package handler

import "net/http"

// ListCourses godoc
// @Summary Suggest course codes
// @Tags courses
// @Produce json
// @Param q query string false "Case-insensitive substring"
// @Success 200 {array} string
// @Failure 500
// @Router /courses [get]
func (h *Handler) listCoursesHandler(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.SuggestCourses(h.readString(r.URL.Query(), "q", ""))
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, courses, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
