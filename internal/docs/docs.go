// Package docs registers the OpenAPI description served at /swagger.
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
        "/health": {
            "get": {
                "tags": [
                    "health"
                ],
                "summary": "Liveness probe",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/health/ready": {
            "get": {
                "tags": [
                    "health"
                ],
                "summary": "Readiness probe",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.readinessResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/v1/catalog": {
            "get": {
                "tags": [
                    "directory"
                ],
                "summary": "Landing page catalog",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.catalogResponse"
                        }
                    }
                }
            }
        },
        "/v1/services": {
            "get": {
                "tags": [
                    "directory"
                ],
                "summary": "Service categories with provider counts",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.servicesResponse"
                        }
                    }
                }
            }
        },
        "/v1/services/{category}/providers": {
            "get": {
                "tags": [
                    "directory"
                ],
                "summary": "List providers of a category",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Category slug or name (e.g. ac-service)",
                        "name": "category",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Matches provider name or city, case-insensitive",
                        "name": "q",
                        "in": "query"
                    },
                    {
                        "type": "number",
                        "description": "Minimum rating, 0 for all",
                        "name": "min_rating",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Exact city",
                        "name": "city",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.providerListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/v1/cities": {
            "get": {
                "tags": [
                    "directory"
                ],
                "summary": "Distinct provider cities",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/v1/providers": {
            "post": {
                "tags": [
                    "directory"
                ],
                "summary": "Provider self-registration",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Provider details",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.registerProviderRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.providerResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/v1/providers/{id}": {
            "get": {
                "tags": [
                    "directory"
                ],
                "summary": "Get a provider with its reviews",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Provider ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.providerResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/v1/providers/{id}/reviews": {
            "post": {
                "tags": [
                    "directory"
                ],
                "summary": "Submit a review",
                "produces": [
                    "application/json"
                ],
                "description": "Appends a review and returns the provider with its recomputed rating.",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Provider ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Review",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.addReviewRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.providerResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/v1/reminders": {
            "get": {
                "tags": [
                    "reminders"
                ],
                "summary": "List reminders, soonest first",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.reminderListResponse"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "reminders"
                ],
                "summary": "Schedule a reminder",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Reminder",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.createReminderRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.Reminder"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/v1/reminders/{id}": {
            "delete": {
                "tags": [
                    "reminders"
                ],
                "summary": "Delete a reminder",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Reminder ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/auth/login": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Mock login",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Name and email",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.loginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.sessionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/v1/auth/logout": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Logout",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/v1/auth/session": {
            "get": {
                "tags": [
                    "auth"
                ],
                "summary": "Current session",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.sessionResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/v1/dashboard": {
            "get": {
                "tags": [
                    "dashboard"
                ],
                "summary": "Dashboard of the logged-in user",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.dashboardResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/v1/favorites": {
            "get": {
                "tags": [
                    "favorites"
                ],
                "summary": "Favorite providers",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.favoritesResponse"
                        }
                    }
                }
            }
        },
        "/v1/favorites/{id}": {
            "get": {
                "tags": [
                    "favorites"
                ],
                "summary": "Favorite button state of a provider",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Provider ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.FavoriteStatus"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/v1/favorites/{id}/toggle": {
            "post": {
                "tags": [
                    "favorites"
                ],
                "summary": "Toggle a favorite",
                "produces": [
                    "application/json"
                ],
                "description": "Waits for the simulated network and flips membership. A failed toggle still answers 200 with success=false, the message and the toast raised for it, which carries a Retry action.",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Provider ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ports.FavoriteResult"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/v1/connectivity": {
            "get": {
                "tags": [
                    "connectivity"
                ],
                "summary": "Current online signal",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ConnectivityStatus"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "connectivity"
                ],
                "summary": "Report online or offline",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Signal",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.connectivityRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ConnectivityStatus"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/v1/toasts": {
            "get": {
                "tags": [
                    "toasts"
                ],
                "summary": "Active toasts",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.toastsResponse"
                        }
                    }
                }
            }
        },
        "/v1/toasts/{id}": {
            "delete": {
                "tags": [
                    "toasts"
                ],
                "summary": "Dismiss a toast",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Toast ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/v1/toasts/stream": {
            "get": {
                "tags": [
                    "toasts"
                ],
                "summary": "Toast stream (WebSocket)",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "101": {
                        "description": "Switching Protocols"
                    }
                }
            }
        },
        "/v1/about": {
            "get": {
                "tags": [
                    "site"
                ],
                "summary": "About page",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.aboutResponse"
                        }
                    }
                }
            }
        },
        "/v1/contact": {
            "get": {
                "tags": [
                    "site"
                ],
                "summary": "Contact details and map",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ports.ContactInfo"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "site"
                ],
                "summary": "Send a contact message",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Message",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.contactRequest"
                        }
                    }
                ],
                "responses": {
                    "202": {
                        "description": "Accepted",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.Review": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "rating": {
                    "type": "integer"
                },
                "comment": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                }
            }
        },
        "domain.Provider": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "serviceType": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "contact": {
                    "type": "string"
                },
                "experience": {
                    "type": "integer"
                },
                "photo": {
                    "type": "string"
                },
                "rating": {
                    "type": "number"
                },
                "reviews": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Review"
                    }
                }
            }
        },
        "domain.Category": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "slug": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                }
            }
        },
        "domain.Reminder": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "serviceType": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "time": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                }
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                }
            }
        },
        "domain.ToastAction": {
            "type": "object",
            "properties": {
                "label": {
                    "type": "string"
                },
                "method": {
                    "type": "string"
                },
                "href": {
                    "type": "string"
                }
            }
        },
        "domain.Toast": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "success",
                        "error",
                        "info"
                    ]
                },
                "action": {
                    "$ref": "#/definitions/domain.ToastAction"
                },
                "createdAt": {
                    "type": "string"
                },
                "expiresAt": {
                    "type": "string"
                }
            }
        },
        "domain.FavoriteStatus": {
            "type": "object",
            "properties": {
                "providerId": {
                    "type": "string"
                },
                "state": {
                    "type": "string",
                    "enum": [
                        "idle",
                        "loading",
                        "success",
                        "error"
                    ]
                },
                "isFavorite": {
                    "type": "boolean"
                },
                "lastError": {
                    "type": "string"
                }
            }
        },
        "domain.ConnectivityStatus": {
            "type": "object",
            "properties": {
                "online": {
                    "type": "boolean"
                },
                "banner": {
                    "type": "string"
                }
            }
        },
        "ports.FavoriteResult": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                },
                "isFavorite": {
                    "type": "boolean"
                },
                "error": {
                    "type": "string"
                },
                "toast": {
                    "$ref": "#/definitions/domain.Toast"
                }
            }
        },
        "ports.CategorySummary": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "slug": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "providerCount": {
                    "type": "integer"
                },
                "topRating": {
                    "type": "number"
                }
            }
        },
        "ports.ReminderView": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "serviceType": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "time": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "past": {
                    "type": "boolean"
                }
            }
        },
        "ports.DashboardStats": {
            "type": "object",
            "properties": {
                "reminders": {
                    "type": "integer"
                },
                "favorites": {
                    "type": "integer"
                },
                "reviews": {
                    "type": "integer"
                }
            }
        },
        "ports.DashboardReview": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "rating": {
                    "type": "integer"
                },
                "comment": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "providerId": {
                    "type": "string"
                },
                "providerName": {
                    "type": "string"
                },
                "serviceType": {
                    "type": "string"
                }
            }
        },
        "ports.ContactInfo": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "hours": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "mapEmbedUrl": {
                    "type": "string"
                }
            }
        },
        "handler.errorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        },
        "handler.readinessResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "dependencies": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "object",
                        "properties": {
                            "status": {
                                "type": "string"
                            },
                            "error": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "handler.catalogResponse": {
            "type": "object",
            "properties": {
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ports.CategorySummary"
                    }
                },
                "featured": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Provider"
                    }
                }
            }
        },
        "handler.servicesResponse": {
            "type": "object",
            "properties": {
                "services": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "name": {
                                "type": "string"
                            },
                            "slug": {
                                "type": "string"
                            },
                            "title": {
                                "type": "string"
                            },
                            "providerCount": {
                                "type": "integer"
                            },
                            "topRating": {
                                "type": "number"
                            },
                            "listing": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "handler.providerListResponse": {
            "type": "object",
            "properties": {
                "category": {
                    "$ref": "#/definitions/domain.Category"
                },
                "count": {
                    "type": "integer"
                },
                "providers": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Provider"
                    }
                },
                "cities": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "handler.providerResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "serviceType": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "contact": {
                    "type": "string"
                },
                "experience": {
                    "type": "integer"
                },
                "photo": {
                    "type": "string"
                },
                "rating": {
                    "type": "number"
                },
                "reviews": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Review"
                    }
                },
                "isFavorite": {
                    "type": "boolean"
                },
                "_links": {
                    "type": "object",
                    "properties": {
                        "self": {
                            "type": "string"
                        },
                        "listing": {
                            "type": "string"
                        },
                        "reviews": {
                            "type": "string"
                        },
                        "favorite": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "handler.registerProviderRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "serviceType": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "contact": {
                    "type": "string"
                },
                "experience": {
                    "type": "integer"
                },
                "rating": {
                    "type": "number"
                },
                "photo": {
                    "type": "string"
                }
            }
        },
        "handler.addReviewRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "rating": {
                    "type": "integer"
                },
                "comment": {
                    "type": "string"
                }
            }
        },
        "handler.createReminderRequest": {
            "type": "object",
            "properties": {
                "serviceType": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "time": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "handler.reminderListResponse": {
            "type": "object",
            "properties": {
                "reminders": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ports.ReminderView"
                    }
                }
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                }
            }
        },
        "handler.sessionResponse": {
            "type": "object",
            "properties": {
                "token": {
                    "type": "string"
                },
                "user": {
                    "$ref": "#/definitions/domain.User"
                }
            }
        },
        "handler.dashboardResponse": {
            "type": "object",
            "properties": {
                "user": {
                    "$ref": "#/definitions/domain.User"
                },
                "stats": {
                    "$ref": "#/definitions/ports.DashboardStats"
                },
                "upcomingReminders": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Reminder"
                    }
                },
                "recentReviews": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ports.DashboardReview"
                    }
                },
                "favorites": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Provider"
                    }
                }
            }
        },
        "handler.favoritesResponse": {
            "type": "object",
            "properties": {
                "favorites": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Provider"
                    }
                }
            }
        },
        "handler.connectivityRequest": {
            "type": "object",
            "properties": {
                "online": {
                    "type": "boolean"
                }
            }
        },
        "handler.toastsResponse": {
            "type": "object",
            "properties": {
                "toasts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Toast"
                    }
                }
            }
        },
        "handler.contactRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "subject": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "handler.messageResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "handler.aboutResponse": {
            "type": "object",
            "properties": {
                "intro": {
                    "type": "string"
                },
                "mission": {
                    "type": "string"
                },
                "features": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "title": {
                                "type": "string"
                            },
                            "body": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Session token from /v1/auth/login, as \"Bearer <token>\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Home Services Directory API",
	Description:      "Provider directory, reviews, favorites and service reminders for local home services.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
