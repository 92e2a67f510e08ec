// Package docs registers the OpenAPI description served at /swagger.
// Regenerate the full per-operation spec with `swag init -g cmd/web/main.go`.
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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/reviews": {
            "get": {"tags": ["reviews"], "summary": "List reviews", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["reviews"], "summary": "Submit a review", "responses": {"201": {"description": "Created"}}},
            "put": {"tags": ["reviews"], "summary": "Moderate a review", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["reviews"], "summary": "Vote a review helpful", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["reviews"], "summary": "Delete a review", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/search": {
            "get": {"tags": ["search"], "summary": "Site search", "responses": {"200": {"description": "OK"}}}
        },
        "/packages": {
            "get": {"tags": ["packages"], "summary": "List active packages", "responses": {"200": {"description": "OK"}}}
        },
        "/packages/{slug}": {
            "get": {"tags": ["packages"], "summary": "Package detail page", "responses": {"200": {"description": "OK"}}}
        },
        "/destinations": {
            "get": {"tags": ["destinations"], "summary": "List active destinations", "responses": {"200": {"description": "OK"}}}
        },
        "/destinations/{slug}": {
            "get": {"tags": ["destinations"], "summary": "Destination page with its active packages", "responses": {"200": {"description": "OK"}}}
        },
        "/blog": {
            "get": {"tags": ["blog"], "summary": "List published posts", "responses": {"200": {"description": "OK"}}}
        },
        "/blog/{slug}": {
            "get": {"tags": ["blog"], "summary": "Read a published post", "responses": {"200": {"description": "OK"}}}
        },
        "/enquiries": {
            "post": {"tags": ["enquiries"], "summary": "Send an enquiry or booking request", "responses": {"201": {"description": "Created"}}}
        },
        "/auth/login": {
            "post": {"tags": ["auth"], "summary": "Back-office login", "responses": {"200": {"description": "OK"}}}
        },
        "/auth/me": {
            "get": {"tags": ["auth"], "summary": "Current user", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/admin/stats": {
            "get": {"tags": ["admin"], "summary": "Dashboard counters", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Travel API",
	Description:      "Public site, review moderation and back-office API for the travel agency.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
