// Package docs holds the Swagger 2.0 document served under /swagger. It is
// maintained alongside the godoc annotations on the handlers.
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["app"],
                "summary": "API status",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/app/config": {
            "get": {
                "produces": ["application/json"],
                "tags": ["app"],
                "summary": "Application and runtime metadata",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/app/info": {
            "get": {
                "produces": ["application/json"],
                "tags": ["app"],
                "summary": "Site snapshot (theme, colors, pages, activity log)",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/app/langs": {
            "get": {
                "produces": ["application/json"],
                "tags": ["langs"],
                "summary": "List locales with their dictionaries",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Locale"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/app/langs/{lang}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["langs"],
                "summary": "Locale detail with completeness diagnostics",
                "parameters": [
                    {"type": "string", "description": "Locale code", "name": "lang", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.LocaleDetail"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["langs"],
                "summary": "Replace a locale dictionary",
                "parameters": [
                    {"type": "string", "description": "Locale code", "name": "lang", "in": "path", "required": true},
                    {"description": "Complete dictionary", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.Dictionary"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.LocaleDetail"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            },
            "post": {
                "produces": ["application/json"],
                "tags": ["langs"],
                "summary": "Create an empty locale dictionary",
                "parameters": [
                    {"type": "string", "description": "Locale code", "name": "lang", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/app/media": {
            "get": {
                "produces": ["application/json"],
                "tags": ["media"],
                "summary": "Media inventory and storage stats",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.MediaInventory"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/app/models": {
            "get": {
                "produces": ["application/json"],
                "tags": ["app"],
                "summary": "Registered data model descriptors",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/app/pages": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pages"],
                "summary": "List non-archived pages",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/app/pages/{page}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pages"],
                "summary": "Fetch one page by name",
                "parameters": [
                    {"type": "string", "description": "Page name", "name": "page", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Page"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pages"],
                "summary": "Update a page and its route entry",
                "parameters": [
                    {"type": "string", "description": "Page name", "name": "page", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/repository.PagePatch"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Page"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pages"],
                "summary": "Create a draft page and register its route",
                "parameters": [
                    {"type": "string", "description": "Page name", "name": "page", "in": "path", "required": true},
                    {"description": "Title and route", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.CreatePageInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        }
    },
    "definitions": {
        "handler.errorEnvelope": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handler.errorPayload": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handler.errorEnvelope"},
                "request_id": {"type": "string"}
            }
        },
        "model.Comparison": {
            "type": "object",
            "properties": {
                "completeness": {"type": "number"},
                "extraKeys": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}},
                "extraKeysCount": {"type": "integer"},
                "missingTranslations": {"type": "array", "items": {"type": "string"}},
                "missingTranslationsCount": {"type": "integer"},
                "totalKeys": {"type": "integer"}
            }
        },
        "model.Dictionary": {
            "type": "object",
            "additionalProperties": {"type": "string"}
        },
        "model.Locale": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "data": {"$ref": "#/definitions/model.Dictionary"},
                "name": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "model.LocaleDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "compare": {"$ref": "#/definitions/model.Comparison"},
                "data": {"$ref": "#/definitions/model.Dictionary"},
                "name": {"type": "string"}
            }
        },
        "model.MediaInventory": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/model.MediaItem"}},
                "stats": {"$ref": "#/definitions/model.MediaStats"}
            }
        },
        "model.MediaItem": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "size": {"type": "string"},
                "thumbnail": {"type": "string"},
                "type": {"type": "string", "enum": ["image", "video", "document"]},
                "uploaded_at": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "model.MediaStats": {
            "type": "object",
            "properties": {
                "documents": {"type": "integer"},
                "images": {"type": "integer"},
                "storageLimit": {"type": "string"},
                "storageUsed": {"type": "string"},
                "total": {"type": "integer"},
                "videos": {"type": "integer"}
            }
        },
        "model.Page": {
            "type": "object",
            "properties": {
                "blocks": {"type": "array", "items": {}},
                "createdAt": {"type": "string"},
                "head": {"type": "array", "items": {}},
                "modifiedAt": {"type": "string"},
                "name": {"type": "string"},
                "routes": {"$ref": "#/definitions/model.PageRoutes"},
                "seo": {"$ref": "#/definitions/model.SEO"},
                "status": {"type": "string", "enum": ["draft", "published", "archived"]},
                "title": {"type": "string"},
                "variables": {"type": "object", "additionalProperties": true}
            }
        },
        "model.PageRoutes": {
            "type": "object",
            "properties": {
                "default": {"type": "string"},
                "langs": {"type": "array", "items": {"type": "string"}}
            }
        },
        "model.SEO": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "image": {"type": "string"},
                "og": {"$ref": "#/definitions/model.SEOCard"},
                "title": {"type": "string"},
                "twitter": {"$ref": "#/definitions/model.SEOCard"}
            }
        },
        "model.SEOCard": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "image": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "repository.PagePatch": {
            "type": "object",
            "properties": {
                "blocks": {"type": "array", "items": {}},
                "head": {"type": "array", "items": {}},
                "routeLangs": {"description": "false or a list of locale codes"},
                "routes": {"$ref": "#/definitions/model.PageRoutes"},
                "seo": {"$ref": "#/definitions/model.SEO"},
                "status": {"type": "string", "enum": ["draft", "published", "archived"]},
                "title": {"type": "string"},
                "variables": {"type": "object", "additionalProperties": true}
            }
        },
        "service.CreatePageInput": {
            "type": "object",
            "properties": {
                "route": {"type": "string"},
                "title": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/__craftly_api",
	Schemes:          []string{},
	Title:            "Craftly API",
	Description:      "Admin API of the Craftly file-backed CMS.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
