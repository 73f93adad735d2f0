// Package docs registers the swagger spec for the auction platform API.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Register a new user", "responses": {"201": {"description": "Created"}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Login user", "responses": {"200": {"description": "OK"}}}},
        "/auth/refresh": {"post": {"tags": ["auth"], "summary": "Refresh access token", "responses": {"200": {"description": "OK"}}}},
        "/auth/logout": {"post": {"tags": ["auth"], "summary": "Logout user", "responses": {"200": {"description": "OK"}}}},
        "/listings": {
            "get": {"tags": ["listings"], "summary": "List active listings", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["listings"], "summary": "Create a new listing", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/listings/{id}": {
            "get": {"tags": ["listings"], "summary": "Get a listing with price, comments, and watchlist state", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["listings"], "summary": "Delete an owned listing", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}}}
        },
        "/listings/{id}/close": {"post": {"tags": ["listings"], "summary": "Close a listing and determine the winner", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/listings/{id}/price": {"get": {"tags": ["bids"], "summary": "Get the current price of a listing", "responses": {"200": {"description": "OK"}}}},
        "/listings/{id}/bids": {
            "get": {"tags": ["bids"], "summary": "List bids for a listing, highest first", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["bids"], "summary": "Place a bid on a listing", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/listings/{id}/comments": {
            "get": {"tags": ["comments"], "summary": "List comments for a listing, newest first", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["comments"], "summary": "Comment on a listing", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/listings/{id}/watchlist": {"post": {"tags": ["watchlist"], "summary": "Toggle a listing on the caller's watchlist", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/watchlist": {"get": {"tags": ["watchlist"], "summary": "List the caller's watched listings", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/categories": {
            "get": {"tags": ["categories"], "summary": "List all categories", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["categories"], "summary": "Create a category", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/categories/{id}": {"delete": {"tags": ["categories"], "summary": "Delete a category, detaching its listings", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}}}},
        "/categories/{id}/listings": {"get": {"tags": ["categories"], "summary": "List active listings in a category", "responses": {"200": {"description": "OK"}}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Auction Platform API",
	Description:      "Online auction marketplace with listings, bidding, watchlists, and comments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
