// Package docs holds the swagger document served at /swagger. Regenerate with
// `swag init -g cmd/scanpay_backend/main.go -o cmd/docs`.
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
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Staff login",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "login", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "403": {"description": "Account pending approval or inactive", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Current actor",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ActorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/scan-entries": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["scan-entries"],
                "summary": "Submit a scan entry",
                "parameters": [{"name": "entry", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SubmitEntryRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.ScanEntryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Project not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/scan-entries/pending": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["scan-entries"],
                "summary": "List pending scan entries",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListScanEntriesResponse"}}}
            }
        },
        "/scan-entries/mine": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["scan-entries"],
                "summary": "List my scan entries",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListScanEntriesResponse"}}}
            }
        },
        "/scan-entries/approved": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["scan-entries"],
                "summary": "List approved scan entries",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListScanEntriesResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/scan-entries/{entryID}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["scan-entries"],
                "summary": "Get a scan entry",
                "parameters": [{"type": "string", "name": "entryID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ScanEntryResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/scan-entries/{entryID}/stages/{stage}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["scan-entries"],
                "summary": "Clear an approval stage",
                "parameters": [
                    {"type": "string", "name": "entryID", "in": "path", "required": true},
                    {"enum": ["supervisor", "center", "project", "finance"], "type": "string", "name": "stage", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ScanEntryResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Entry is not in the status this stage requires", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/scan-entries/{entryID}/lock": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["scan-entries"],
                "summary": "Lock a scan entry",
                "parameters": [
                    {"type": "string", "name": "entryID", "in": "path", "required": true},
                    {"name": "body", "in": "body", "schema": {"$ref": "#/definitions/dto.LockEntryRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ScanEntryResponse"}},
                    "409": {"description": "Entry already locked", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/payroll": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["payroll"],
                "summary": "Payroll report",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PayrollResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/projects": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["projects"],
                "summary": "List projects",
                "parameters": [{"type": "boolean", "default": true, "name": "activeOnly", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListProjectsResponse"}}}
            }
        },
        "/projects/{projectID}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["projects"],
                "summary": "Get a project",
                "parameters": [{"type": "string", "name": "projectID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProjectResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/payments": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["payments"],
                "summary": "List payments",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListPaymentsResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["payments"],
                "summary": "Record a payment",
                "parameters": [{"name": "payment", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RecordPaymentRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.PaymentResponse"}},
                    "404": {"description": "Staff not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/staff/{staffID}/payments": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["payments"],
                "summary": "List payments for a staff member",
                "parameters": [{"type": "string", "name": "staffID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListPaymentsResponse"}}}
            }
        }
    },
    "definitions": {
        "handlers.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "dto.LoginRequest": {"type": "object", "required": ["mobile", "password"], "properties": {"mobile": {"type": "string"}, "password": {"type": "string"}}},
        "dto.LoginResponse": {"type": "object", "properties": {"token": {"type": "string"}, "expiresAt": {"type": "string"}, "staff": {"$ref": "#/definitions/dto.StaffResponse"}}},
        "dto.StaffResponse": {"type": "object", "properties": {"staffID": {"type": "string"}, "name": {"type": "string"}, "mobile": {"type": "string"}, "center": {"type": "string"}, "role": {"type": "string"}, "status": {"type": "string"}}},
        "dto.ActorResponse": {"type": "object", "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "role": {"type": "string"}, "status": {"type": "string"}}},
        "dto.SubmitEntryRequest": {"type": "object", "required": ["projectID", "scans"], "properties": {"projectID": {"type": "string"}, "scans": {"type": "integer"}, "date": {"type": "string"}}},
        "dto.LockEntryRequest": {"type": "object", "properties": {"reason": {"type": "string"}}},
        "dto.ScanEntryResponse": {"type": "object", "properties": {"entryID": {"type": "string"}, "operatorID": {"type": "string"}, "projectID": {"type": "string"}, "scans": {"type": "integer"}, "date": {"type": "string"}, "status": {"type": "string"}, "version": {"type": "integer"}}},
        "dto.ListScanEntriesResponse": {"type": "object", "properties": {"entries": {"type": "array", "items": {"$ref": "#/definitions/dto.ScanEntryResponse"}}, "count": {"type": "integer"}}},
        "dto.PayrollResponse": {"type": "object", "properties": {"totalScans": {"type": "integer"}, "totalPayout": {"type": "string"}, "generatedAt": {"type": "string"}}},
        "dto.ProjectResponse": {"type": "object", "properties": {"projectID": {"type": "string"}, "name": {"type": "string"}, "center": {"type": "string"}, "scanRate": {"type": "string"}, "isActive": {"type": "boolean"}}},
        "dto.ListProjectsResponse": {"type": "object", "properties": {"projects": {"type": "array", "items": {"$ref": "#/definitions/dto.ProjectResponse"}}}},
        "dto.RecordPaymentRequest": {"type": "object", "required": ["staffID"], "properties": {"staffID": {"type": "string"}, "amount": {"type": "string"}, "paymentMode": {"type": "string"}, "status": {"type": "string"}}},
        "dto.PaymentResponse": {"type": "object", "properties": {"paymentID": {"type": "string"}, "staffID": {"type": "string"}, "amount": {"type": "string"}, "status": {"type": "string"}}},
        "dto.ListPaymentsResponse": {"type": "object", "properties": {"payments": {"type": "array", "items": {"$ref": "#/definitions/dto.PaymentResponse"}}, "totalPaid": {"type": "string"}}}
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Scan Payroll API",
	Description:      "Scan-count approval workflow and payroll backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
