// Package docs registers the OpenAPI document served at /docs/doc.json.
// Regenerate with: swag init -g cmd/api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Sports Aggregator"
        },
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api": {
            "get": {
                "description": "Returns API name, version, data mode and available endpoints.",
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "API root info",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/api/health": {
            "get": {
                "description": "Returns health status, the current time and the service time zone.",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/handler.HealthResponse"}
                    }
                }
            }
        },
        "/api/sports": {
            "get": {
                "description": "Returns the fixed list of sports offered by the landing page.",
                "produces": ["application/json"],
                "tags": ["tournaments"],
                "summary": "List sports",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/handler.SportsResponse"}
                    }
                }
            }
        },
        "/api/tournaments/{sport}": {
            "get": {
                "description": "Asks Gemini for upcoming tournaments and extracts the JSON list from its answer. Falls back to curated mock data when Gemini is not configured (mode=mock), fails (mode=fallback, api_error set) or an unexpected error occurs (mode=error_fallback, error set).",
                "produces": ["application/json"],
                "tags": ["tournaments"],
                "summary": "Get tournaments for a sport",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Sport name, e.g. badminton",
                        "name": "sport",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/aggregator.Result"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/handler.FailureResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "aggregator.Result": {
            "type": "object",
            "properties": {
                "api_error": {"type": "string"},
                "count": {"type": "integer"},
                "error": {"type": "string"},
                "fetched_at": {"type": "string"},
                "mode": {"type": "string", "enum": ["api", "mock", "fallback", "error_fallback"]},
                "sport": {"type": "string"},
                "success": {"type": "boolean"},
                "tournaments": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/tournament.Tournament"}
                }
            }
        },
        "handler.FailureResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "sport": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "handler.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "timestamp": {"type": "string"},
                "timezone": {"type": "string"}
            }
        },
        "handler.SportsResponse": {
            "type": "object",
            "properties": {
                "sports": {"type": "array", "items": {"type": "string"}},
                "success": {"type": "boolean"}
            }
        },
        "tournament.Tournament": {
            "type": "object",
            "properties": {
                "end_date": {"type": "string"},
                "level": {"type": "string"},
                "official_url": {"type": "string"},
                "start_date": {"type": "string"},
                "streaming_partners": {"type": "array", "items": {"type": "string"}},
                "summary": {"type": "string"},
                "tournament_image": {"type": "string"},
                "tournament_name": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Sports Tournament Aggregator API",
	Description:      "Upcoming tournaments per sport, sourced from Gemini with mock-data fallback.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
