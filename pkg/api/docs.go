package api

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
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}}
            }
        },
        "/projects": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["projects"],
                "summary": "List projects",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}}
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["projects"],
                "summary": "Create a project",
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/api.ProjectResponse"}}}
            }
        },
        "/projects/{project}/{kind}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json", "text/plain"],
                "tags": ["records"],
                "summary": "List records of one kind",
                "parameters": [
                    {"type": "string", "name": "project", "in": "path", "required": true},
                    {"type": "string", "name": "kind", "in": "path", "required": true},
                    {"type": "string", "name": "format", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}}
            },
            "put": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["text/plain"],
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "Store a record",
                "parameters": [
                    {"type": "string", "name": "project", "in": "path", "required": true},
                    {"type": "string", "name": "kind", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.RecordResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/projects/{project}/{kind}/{nr}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json", "text/plain"],
                "tags": ["records"],
                "summary": "Get a record",
                "parameters": [
                    {"type": "string", "name": "project", "in": "path", "required": true},
                    {"type": "string", "name": "kind", "in": "path", "required": true},
                    {"type": "integer", "name": "nr", "in": "path", "required": true},
                    {"type": "string", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.RecordResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "Delete a record",
                "parameters": [
                    {"type": "string", "name": "project", "in": "path", "required": true},
                    {"type": "string", "name": "kind", "in": "path", "required": true},
                    {"type": "integer", "name": "nr", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/check/{kind}": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["text/plain"],
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "Check PRJ text",
                "parameters": [
                    {"type": "string", "name": "kind", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.CheckResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.APIResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {},
                "error": {"type": "string"}
            }
        },
        "api.ProjectResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}}
        },
        "api.MalformedField": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "text": {"type": "string"},
                "line": {"type": "integer"}
            }
        },
        "api.RecordResponse": {
            "type": "object",
            "properties": {
                "kind": {"type": "string"},
                "nr": {"type": "integer"},
                "text": {"type": "string"},
                "malformed": {"type": "array", "items": {"$ref": "#/definitions/api.MalformedField"}}
            }
        },
        "api.CheckResponse": {
            "type": "object",
            "properties": {
                "kind": {"type": "string"},
                "count": {"type": "integer"},
                "text": {"type": "string"},
                "malformed": {"type": "array", "items": {"$ref": "#/definitions/api.MalformedField"}}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "contamprj REST API",
	Description:      "Archive and validate CONTAM PRJ records.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
