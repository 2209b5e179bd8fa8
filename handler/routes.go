package handler

import (
	"expvar"
	"net/http"

	"github.com/julienschmidt/httprouter"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func (h *Handler) Routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(h.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(h.methodNotAllowed)

	base := h.config.Server.BasePath

	// GET /books/search is dispatched by showBookHandler; httprouter cannot
	// register it next to the :bookId wildcard.
	router.HandlerFunc(http.MethodGet, base+"/books", h.listBooksHandler)
	router.HandlerFunc(http.MethodPost, base+"/books", h.createBookHandler)
	router.HandlerFunc(http.MethodGet, base+"/books/:bookId", h.showBookHandler)
	router.HandlerFunc(http.MethodDelete, base+"/books/:bookId", h.deleteBookHandler)
	router.HandlerFunc(http.MethodPost, base+"/books/:bookId/favourite", h.favouriteBookHandler)
	router.HandlerFunc(http.MethodDelete, base+"/books/:bookId/favourite", h.deleteFavouriteBookHandler)

	router.HandlerFunc(http.MethodGet, base+"/requests", h.listRequestsHandler)
	router.HandlerFunc(http.MethodPost, base+"/requests", h.createRequestHandler)
	router.HandlerFunc(http.MethodPost, base+"/requests/process", h.processRequestsHandler)
	router.HandlerFunc(http.MethodGet, base+"/requests/:requestId", h.showRequestHandler)
	router.HandlerFunc(http.MethodDelete, base+"/requests/:requestId", h.deleteRequestHandler)

	router.HandlerFunc(http.MethodGet, base+"/courses", h.listCoursesHandler)

	router.HandlerFunc(http.MethodGet, base+"/healthcheck", h.healthcheckHandler)
	if h.config.Metrics.Enabled {
		router.HandlerFunc(http.MethodGet, "/debug/vars", h.basicAuth(expvar.Handler().ServeHTTP))
	}

	// Swagger routes
	router.HandlerFunc(http.MethodGet, "/spec", h.handleSwaggerFile())
	router.HandlerFunc(http.MethodGet, "/docs/*any", httpSwagger.Handler(httpSwagger.URL("/spec")))

	return h.metrics(h.recoverPanic(h.requestID(h.logRequest(h.enableCORS(h.rateLimit(h.session(router)))))))
}
