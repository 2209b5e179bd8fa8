// Package docs registers the OpenAPI document for the bookXchange API. It
// mirrors the swag annotations on the handlers; keep the two in step.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/books": {
            "get": {
                "description": "Filtered, sorted view of the catalog with the caller's favourite flags",
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "List book listings",
                "parameters": [
                    {"type": "string", "description": "Client session", "name": "X-Session-Id", "in": "header"},
                    {"type": "string", "description": "Matches title, course code or seller", "name": "search", "in": "query"},
                    {"type": "string", "description": "title, price or course", "name": "sort", "in": "query"},
                    {"type": "number", "description": "Lower price bound", "name": "min_price", "in": "query"},
                    {"type": "number", "description": "Upper price bound", "name": "max_price", "in": "query"},
                    {"type": "string", "description": "Exact course code", "name": "course", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/catalog.Entry"}}},
                    "422": {"description": "Unprocessable Entity"},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "post": {
                "description": "This endpoint lists a book for sale. Price may be sent as a number or a string.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Create a new book listing",
                "parameters": [
                    {"description": "JSON payload required to create a listing", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateListingRequestBody"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/data.Listing"}},
                    "400": {"description": "Bad Request"},
                    "415": {"description": "Unsupported Media Type"},
                    "422": {"description": "Unprocessable Entity"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/books/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Search book listings",
                "parameters": [
                    {"type": "string", "description": "Search text", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/data.Listing"}}},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/books/{bookId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Show a book listing",
                "parameters": [
                    {"type": "integer", "description": "ID of listing to show", "name": "bookId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/data.Listing"}},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "delete": {
                "tags": ["books"],
                "summary": "Delete a book listing",
                "parameters": [
                    {"type": "integer", "description": "ID of listing to delete", "name": "bookId", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/books/{bookId}/favourite": {
            "post": {
                "tags": ["books"],
                "summary": "Favourite a book listing for the current session",
                "parameters": [
                    {"type": "string", "description": "Client session", "name": "X-Session-Id", "in": "header"},
                    {"type": "integer", "description": "ID of listing", "name": "bookId", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "delete": {
                "tags": ["books"],
                "summary": "Remove a book listing from the current session's favourites",
                "parameters": [
                    {"type": "string", "description": "Client session", "name": "X-Session-Id", "in": "header"},
                    {"type": "integer", "description": "ID of listing", "name": "bookId", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/courses": {
            "get": {
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Suggest course codes",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive substring", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/requests": {
            "get": {
                "produces": ["application/json"],
                "tags": ["requests"],
                "summary": "List pending book requests",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/data.Request"}}},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "post": {
                "description": "This endpoint creates a new book request. Urgency defaults to 5.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["requests"],
                "summary": "Create a new book request",
                "parameters": [
                    {"description": "JSON payload required to create a book request", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateRequestRequestBody"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/data.Request"}},
                    "400": {"description": "Bad Request"},
                    "415": {"description": "Unsupported Media Type"},
                    "422": {"description": "Unprocessable Entity"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/requests/process": {
            "post": {
                "description": "Most urgent first; matched listings are removed and the queue is cleared.",
                "produces": ["application/json"],
                "tags": ["requests"],
                "summary": "Match pending requests against listings",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/requests/{requestId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["requests"],
                "summary": "Show details of a book request",
                "parameters": [
                    {"type": "integer", "description": "ID of request to show", "name": "requestId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/data.Request"}},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "delete": {
                "tags": ["requests"],
                "summary": "Remove a pending book request",
                "parameters": [
                    {"type": "integer", "description": "ID of request to remove", "name": "requestId", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        }
    },
    "definitions": {
        "catalog.Entry": {
            "type": "object",
            "properties": {
                "courseCode": {"type": "string"},
                "createdAt": {"type": "string"},
                "favourite": {"type": "boolean"},
                "id": {"type": "integer"},
                "price": {"type": "number"},
                "seller": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "data.Listing": {
            "type": "object",
            "properties": {
                "courseCode": {"type": "string"},
                "createdAt": {"type": "string"},
                "id": {"type": "integer"},
                "price": {"type": "number"},
                "seller": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "data.Request": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "id": {"type": "integer"},
                "priority": {"type": "string"},
                "requester": {"type": "string"},
                "title": {"type": "string"},
                "urgency": {"type": "integer"}
            }
        },
        "dto.CreateListingRequestBody": {
            "type": "object",
            "properties": {
                "courseCode": {"type": "string"},
                "price": {"type": "string"},
                "seller": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "dto.CreateRequestRequestBody": {
            "type": "object",
            "properties": {
                "requester": {"type": "string"},
                "title": {"type": "string"},
                "urgency": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "bookXchange API",
	Description:      "Textbook exchange marketplace: listings, requests and matching.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
