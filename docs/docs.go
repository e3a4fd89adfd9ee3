// Package docs holds the swagger document served at /swagger/index.html.
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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type \"Bearer\" followed by a space and JWT token."
        }
    },
    "paths": {
        "/auth/register/": {
            "post": {
                "tags": ["Auth"],
                "summary": "Register an account",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/User"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/auth/token/": {
            "post": {
                "tags": ["Auth"],
                "summary": "Obtain an access/refresh token pair",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/TokenRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TokenPair"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/auth/token/refresh/": {
            "post": {
                "tags": ["Auth"],
                "summary": "Exchange a refresh token for a new access token",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/RefreshRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Access"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/users/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Users"],
                "summary": "List users",
                "parameters": [
                    {"in": "query", "name": "search", "type": "string"},
                    {"in": "query", "name": "page", "type": "integer"},
                    {"in": "query", "name": "page_size", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/UserPage"}}}
            }
        },
        "/users/me/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Users"],
                "summary": "Current user",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}}}
            }
        },
        "/users/{uuid}/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Users"],
                "summary": "Get a user",
                "parameters": [{"in": "path", "name": "uuid", "required": true, "type": "string", "format": "uuid"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/tasks/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "List tasks",
                "parameters": [
                    {"in": "query", "name": "creator", "type": "string", "format": "uuid"},
                    {"in": "query", "name": "assignee", "type": "string", "format": "uuid"},
                    {"in": "query", "name": "is_completed", "type": "boolean"},
                    {"in": "query", "name": "search", "type": "string"},
                    {"in": "query", "name": "ordering", "type": "string", "description": "created_at, updated_at, title, is_completed; prefix with - to reverse"},
                    {"in": "query", "name": "page", "type": "integer"},
                    {"in": "query", "name": "page_size", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/TaskPage"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "Create a task",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/TaskRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Task"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/tasks/{uuid}/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "Get a task",
                "parameters": [{"in": "path", "name": "uuid", "required": true, "type": "string", "format": "uuid"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Task"}}}
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "Partially update a task",
                "parameters": [
                    {"in": "path", "name": "uuid", "required": true, "type": "string", "format": "uuid"},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/TaskRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Task"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "Update a task",
                "parameters": [
                    {"in": "path", "name": "uuid", "required": true, "type": "string", "format": "uuid"},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/TaskRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Task"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "Delete a task",
                "parameters": [{"in": "path", "name": "uuid", "required": true, "type": "string", "format": "uuid"}],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/tasks/{uuid}/comments/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Comments"],
                "summary": "List comments of a task",
                "parameters": [
                    {"in": "path", "name": "uuid", "required": true, "type": "string", "format": "uuid"},
                    {"in": "query", "name": "page", "type": "integer"},
                    {"in": "query", "name": "page_size", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/CommentPage"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Comments"],
                "summary": "Comment on a task",
                "parameters": [
                    {"in": "path", "name": "uuid", "required": true, "type": "string", "format": "uuid"},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CommentRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Comment"}}}
            }
        },
        "/tasks/{uuid}/comments/{comment_uuid}/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Comments"],
                "summary": "Get a comment",
                "parameters": [
                    {"in": "path", "name": "uuid", "required": true, "type": "string", "format": "uuid"},
                    {"in": "path", "name": "comment_uuid", "required": true, "type": "string", "format": "uuid"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Comment"}}}
            }
        }
    },
    "definitions": {
        "Error": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"},
                "errors": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}}
            }
        },
        "RegisterRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"}
            }
        },
        "TokenRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}}
        },
        "RefreshRequest": {
            "type": "object",
            "required": ["refresh"],
            "properties": {"refresh": {"type": "string"}}
        },
        "TokenPair": {
            "type": "object",
            "properties": {"access": {"type": "string"}, "refresh": {"type": "string"}}
        },
        "Access": {
            "type": "object",
            "properties": {"access": {"type": "string"}}
        },
        "User": {
            "type": "object",
            "properties": {
                "uuid": {"type": "string", "format": "uuid"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"}
            }
        },
        "TaskRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "maxLength": 255},
                "description": {"type": "string"},
                "assignee_uuid": {"type": "string", "format": "uuid", "x-nullable": true},
                "is_completed": {"type": "boolean"}
            }
        },
        "Task": {
            "type": "object",
            "properties": {
                "uuid": {"type": "string", "format": "uuid"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "creator": {"$ref": "#/definitions/User"},
                "assignee": {"$ref": "#/definitions/User"},
                "is_completed": {"type": "boolean"},
                "completed_at": {"type": "string", "format": "date-time", "x-nullable": true},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "CommentRequest": {
            "type": "object",
            "required": ["text"],
            "properties": {"text": {"type": "string"}}
        },
        "Comment": {
            "type": "object",
            "properties": {
                "uuid": {"type": "string", "format": "uuid"},
                "task_uuid": {"type": "string", "format": "uuid"},
                "author": {"$ref": "#/definitions/User"},
                "text": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "UserPage": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "next": {"type": "string", "x-nullable": true},
                "previous": {"type": "string", "x-nullable": true},
                "results": {"type": "array", "items": {"$ref": "#/definitions/User"}}
            }
        },
        "TaskPage": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "next": {"type": "string", "x-nullable": true},
                "previous": {"type": "string", "x-nullable": true},
                "results": {"type": "array", "items": {"$ref": "#/definitions/Task"}}
            }
        },
        "CommentPage": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "next": {"type": "string", "x-nullable": true},
                "previous": {"type": "string", "x-nullable": true},
                "results": {"type": "array", "items": {"$ref": "#/definitions/Comment"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Task Tracker API",
	Description:      "API for tracking tasks, their assignees and discussion.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
