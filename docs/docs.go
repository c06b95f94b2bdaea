// Package docs registers the Swagger document served at /swagger/doc.json.
// Regenerate with: swag init -g cmd/app/main.go
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
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness and database check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/register/": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a user",
                "parameters": [{"description": "Registration request", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterRequestDTO"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.UserResponseDTO"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/FieldErrors"}}
                }
            }
        },
        "/login/": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Obtain a token pair",
                "parameters": [{"description": "Username and password", "name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequestDTO"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TokenPairDTO"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/FieldErrors"}},
                    "401": {"description": "No active account found with the given credentials", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        },
        "/token/refresh/": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Refresh an access token",
                "parameters": [{"description": "Refresh token", "name": "token", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RefreshRequestDTO"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RefreshResponseDTO"}},
                    "401": {"description": "Token is invalid or expired", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        },
        "/profile/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get the current user's profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponseDTO"}},
                    "401": {"description": "Authentication credentials were not provided.", "schema": {"$ref": "#/definitions/Detail"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update the current user's names",
                "parameters": [{"description": "Profile fields", "name": "profile", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ProfileUpdateDTO"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponseDTO"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/FieldErrors"}},
                    "401": {"description": "Authentication credentials were not provided.", "schema": {"$ref": "#/definitions/Detail"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update the current user's names",
                "parameters": [{"description": "Profile fields", "name": "profile", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ProfileUpdateDTO"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponseDTO"}},
                    "401": {"description": "Authentication credentials were not provided.", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        },
        "/categories/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "List categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.CategoryResponseDTO"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Create a category",
                "parameters": [{"description": "Category", "name": "category", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CategoryCreateDTO"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CategoryResponseDTO"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/FieldErrors"}},
                    "401": {"description": "Authentication credentials were not provided.", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        },
        "/categories/{id}/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Get a category",
                "parameters": [{"type": "integer", "description": "Category ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CategoryResponseDTO"}},
                    "404": {"description": "Not found.", "schema": {"$ref": "#/definitions/Detail"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Replace a category",
                "parameters": [
                    {"type": "integer", "description": "Category ID", "name": "id", "in": "path", "required": true},
                    {"description": "Category", "name": "category", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CategoryCreateDTO"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CategoryResponseDTO"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/FieldErrors"}},
                    "401": {"description": "Authentication credentials were not provided.", "schema": {"$ref": "#/definitions/Detail"}},
                    "404": {"description": "Not found.", "schema": {"$ref": "#/definitions/Detail"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Partially update a category",
                "parameters": [
                    {"type": "integer", "description": "Category ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "category", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CategoryUpdateDTO"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CategoryResponseDTO"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/FieldErrors"}},
                    "404": {"description": "Not found.", "schema": {"$ref": "#/definitions/Detail"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["categories"],
                "summary": "Delete a category",
                "parameters": [{"type": "integer", "description": "Category ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Authentication credentials were not provided.", "schema": {"$ref": "#/definitions/Detail"}},
                    "404": {"description": "Not found.", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        },
        "/courses/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "List courses",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.CourseResponseDTO"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Create a new course",
                "parameters": [{"description": "Course creation request", "name": "course", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CourseCreateDTO"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CourseResponseDTO"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/FieldErrors"}},
                    "401": {"description": "Authentication credentials were not provided.", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        },
        "/courses/{id}/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Get a course",
                "parameters": [{"type": "integer", "description": "Course ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CourseResponseDTO"}},
                    "404": {"description": "Not found.", "schema": {"$ref": "#/definitions/Detail"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Replace a course",
                "parameters": [
                    {"type": "integer", "description": "Course ID", "name": "id", "in": "path", "required": true},
                    {"description": "Course", "name": "course", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CourseCreateDTO"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CourseResponseDTO"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/FieldErrors"}},
                    "401": {"description": "Authentication credentials were not provided.", "schema": {"$ref": "#/definitions/Detail"}},
                    "403": {"description": "Not the instructor", "schema": {"$ref": "#/definitions/Detail"}},
                    "404": {"description": "Not found.", "schema": {"$ref": "#/definitions/Detail"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Partially update a course",
                "parameters": [
                    {"type": "integer", "description": "Course ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "course", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CourseUpdateDTO"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CourseResponseDTO"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/FieldErrors"}},
                    "403": {"description": "Not the instructor", "schema": {"$ref": "#/definitions/Detail"}},
                    "404": {"description": "Not found.", "schema": {"$ref": "#/definitions/Detail"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["courses"],
                "summary": "Delete a course",
                "parameters": [{"type": "integer", "description": "Course ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Authentication credentials were not provided.", "schema": {"$ref": "#/definitions/Detail"}},
                    "403": {"description": "Not the instructor", "schema": {"$ref": "#/definitions/Detail"}},
                    "404": {"description": "Not found.", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        }
    },
    "definitions": {
        "Detail": {
            "type": "object",
            "properties": {"detail": {"type": "string"}, "code": {"type": "string"}}
        },
        "FieldErrors": {
            "type": "object",
            "additionalProperties": {"type": "array", "items": {"type": "string"}}
        },
        "dto.RegisterRequestDTO": {
            "type": "object",
            "required": ["username", "email", "password"],
            "properties": {
                "username": {"type": "string", "maxLength": 150},
                "email": {"type": "string", "maxLength": 254},
                "password": {"type": "string"},
                "first_name": {"type": "string", "maxLength": 150},
                "last_name": {"type": "string", "maxLength": 150}
            }
        },
        "dto.UserResponseDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"}
            }
        },
        "dto.ProfileUpdateDTO": {
            "type": "object",
            "properties": {
                "first_name": {"type": "string", "maxLength": 150},
                "last_name": {"type": "string", "maxLength": 150}
            }
        },
        "dto.LoginRequestDTO": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}}
        },
        "dto.TokenPairDTO": {
            "type": "object",
            "properties": {"access": {"type": "string"}, "refresh": {"type": "string"}}
        },
        "dto.RefreshRequestDTO": {
            "type": "object",
            "required": ["refresh"],
            "properties": {"refresh": {"type": "string"}}
        },
        "dto.RefreshResponseDTO": {
            "type": "object",
            "properties": {"access": {"type": "string"}, "refresh": {"type": "string"}}
        },
        "dto.CategoryCreateDTO": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string", "maxLength": 100},
                "description": {"type": "string", "x-nullable": true}
            }
        },
        "dto.CategoryUpdateDTO": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "maxLength": 100},
                "description": {"type": "string", "x-nullable": true}
            }
        },
        "dto.CategoryResponseDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "description": {"type": "string", "x-nullable": true},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "dto.CourseCreateDTO": {
            "type": "object",
            "required": ["title", "description"],
            "properties": {
                "category": {"type": "integer", "x-nullable": true},
                "title": {"type": "string", "maxLength": 200},
                "description": {"type": "string"},
                "price": {"type": "string", "example": "19.99"},
                "duration_hours": {"type": "integer", "minimum": 0, "x-nullable": true}
            }
        },
        "dto.CourseUpdateDTO": {
            "type": "object",
            "properties": {
                "category": {"type": "integer", "x-nullable": true},
                "title": {"type": "string", "maxLength": 200},
                "description": {"type": "string"},
                "price": {"type": "string", "example": "19.99"},
                "duration_hours": {"type": "integer", "minimum": 0, "x-nullable": true}
            }
        },
        "dto.CourseResponseDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "category": {"type": "integer", "x-nullable": true},
                "category_name": {"type": "string", "x-nullable": true},
                "instructor": {"type": "integer"},
                "instructor_username": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "string", "example": "19.99"},
                "duration_hours": {"type": "integer", "x-nullable": true},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Course Catalog API",
	Description:      "Categories, courses, registration and JWT authentication. Every route is also served under /api.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
