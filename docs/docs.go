// Package docs serves the Swagger document built from the handler
// annotations. Regenerate with: swag init -g cmd/api/main.go
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
        "/api/connection": {
            "get": {
                "produces": ["application/json"],
                "tags": ["connection"],
                "summary": "Current session state",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["connection"],
                "summary": "Open the database connection",
                "parameters": [
                    {"description": "Connection parameters", "name": "params", "in": "body", "required": true, "schema": {"$ref": "#/definitions/entity.ConnectionParams"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.Response"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["connection"],
                "summary": "Close the database connection",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}
            }
        },
        "/api/connection/profile/{name}": {
            "post": {
                "produces": ["application/json"],
                "tags": ["connection"],
                "summary": "Connect with a saved profile",
                "parameters": [{"type": "string", "description": "Profile name", "name": "name", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.Response"}}
                }
            }
        },
        "/api/profiles": {
            "get": {
                "produces": ["application/json"],
                "tags": ["profiles"],
                "summary": "Saved connection profiles",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["profiles"],
                "summary": "Save a connection profile",
                "parameters": [
                    {"description": "Profile", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SaveProfileRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.Response"}}}
            }
        },
        "/api/profiles/{name}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["profiles"],
                "summary": "Delete a connection profile",
                "parameters": [{"type": "string", "description": "Profile name", "name": "name", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.Response"}}
                }
            }
        },
        "/api/query": {
            "post": {
                "description": "Runs in its own transaction. A failing statement is rolled back and reported with success=false.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["query"],
                "summary": "Run a SQL statement",
                "parameters": [
                    {"description": "Statement", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.ExecuteRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}
            }
        },
        "/api/query/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["query"],
                "summary": "Recent distinct queries, oldest first",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}
            }
        },
        "/api/schemas": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List user schemas",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.Response"}}
                }
            }
        },
        "/api/schemas/{schema}/tables": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List tables of a schema",
                "parameters": [{"type": "string", "description": "Schema", "name": "schema", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tables"],
                "summary": "Create a table",
                "parameters": [
                    {"type": "string", "description": "Schema", "name": "schema", "in": "path", "required": true},
                    {"description": "Table definition", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateTableRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}
            }
        },
        "/api/schemas/{schema}/tables/{table}": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tables"],
                "summary": "Rename a table",
                "parameters": [
                    {"type": "string", "description": "Schema", "name": "schema", "in": "path", "required": true},
                    {"type": "string", "description": "Table", "name": "table", "in": "path", "required": true},
                    {"description": "New name", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.RenameTableRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["tables"],
                "summary": "Drop a table",
                "parameters": [
                    {"type": "string", "description": "Schema", "name": "schema", "in": "path", "required": true},
                    {"type": "string", "description": "Table", "name": "table", "in": "path", "required": true},
                    {"type": "string", "description": "Must repeat the table name", "name": "confirm", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.Response"}}
                }
            }
        },
        "/api/schemas/{schema}/tables/{table}/columns": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tables"],
                "summary": "Add a column",
                "parameters": [
                    {"type": "string", "description": "Schema", "name": "schema", "in": "path", "required": true},
                    {"type": "string", "description": "Table", "name": "table", "in": "path", "required": true},
                    {"description": "Column", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/entity.ColumnDefinition"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}
            }
        },
        "/api/schemas/{schema}/tables/{table}/indexes": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tables"],
                "summary": "Create an index",
                "parameters": [
                    {"type": "string", "description": "Schema", "name": "schema", "in": "path", "required": true},
                    {"type": "string", "description": "Table", "name": "table", "in": "path", "required": true},
                    {"description": "Index", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/entity.IndexDefinition"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}
            }
        },
        "/api/schemas/{schema}/tables/{table}/rows": {
            "get": {
                "description": "where and order_by are inserted into the statement as given.",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Browse table rows",
                "parameters": [
                    {"type": "string", "description": "Schema", "name": "schema", "in": "path", "required": true},
                    {"type": "string", "description": "Table", "name": "table", "in": "path", "required": true},
                    {"type": "integer", "default": 100, "description": "Row limit", "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "description": "Row offset", "name": "offset", "in": "query"},
                    {"type": "string", "description": "WHERE clause without the keyword", "name": "where", "in": "query"},
                    {"type": "string", "description": "ORDER BY clause without the keyword", "name": "order_by", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}
            }
        },
        "/api/schemas/{schema}/tables/{table}/structure": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Columns, keys and indexes of a table",
                "parameters": [
                    {"type": "string", "description": "Schema", "name": "schema", "in": "path", "required": true},
                    {"type": "string", "description": "Table", "name": "table", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}
            }
        }
    },
    "definitions": {
        "entity.ColumnDefinition": {
            "type": "object",
            "required": ["type"],
            "properties": {
                "name": {"type": "string", "maxLength": 63},
                "type": {"type": "string"},
                "nullable": {"type": "boolean"},
                "primary_key": {"type": "boolean"},
                "default": {"type": "string"}
            }
        },
        "entity.ConnectionParams": {
            "type": "object",
            "required": ["database", "host", "port", "user"],
            "properties": {
                "host": {"type": "string"},
                "port": {"type": "integer", "minimum": 1, "maximum": 65535},
                "database": {"type": "string"},
                "user": {"type": "string"},
                "password": {"type": "string"},
                "ssl_mode": {"type": "string", "enum": ["disable", "allow", "prefer", "require", "verify-ca", "verify-full"]}
            }
        },
        "entity.IndexDefinition": {
            "type": "object",
            "required": ["columns", "name"],
            "properties": {
                "name": {"type": "string", "maxLength": 63},
                "columns": {"type": "array", "minItems": 1, "items": {"type": "string"}},
                "unique": {"type": "boolean"}
            }
        },
        "handler.CreateTableRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "columns": {"type": "array", "items": {"$ref": "#/definitions/entity.ColumnDefinition"}}
            }
        },
        "handler.ExecuteRequest": {
            "type": "object",
            "properties": {"query": {"type": "string"}}
        },
        "handler.RenameTableRequest": {
            "type": "object",
            "properties": {"new_name": {"type": "string"}}
        },
        "handler.Response": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "data": {},
                "errors": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "handler.SaveProfileRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "host": {"type": "string"},
                "port": {"type": "integer"},
                "database": {"type": "string"},
                "user": {"type": "string"},
                "password": {"type": "string"},
                "ssl_mode": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "PostgreSQL Manager API",
	Description:      "Single-user PostgreSQL admin console.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
