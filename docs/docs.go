// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

// Package docs registers the Swagger 2.0 description of the Playstats API
// served under /swagger/. It follows the layout emitted by swag init and must
// be kept in sync with the handler annotations in internal/api.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "GitHub Repository",
            "url": "https://github.com/tomtom215/playstats/issues"
        },
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/game-recommendation/{id}": {
            "get": {
                "description": "Ranks catalog entries by TF-IDF cosine similarity of their feature text (genres, specs, developer and item id) to the given game, excluding the game itself.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Recommendations"
                ],
                "summary": "Five most similar games",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Catalog item id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "e.g. [{\"620\": \"Portal 2\"}, ...]",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object",
                                "additionalProperties": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid id",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "404": {
                        "description": "Item not present in catalog",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "422": {
                        "description": "Catalog too small",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        },
        "/health/live": {
            "get": {
                "description": "Returns 200 OK if the process is alive.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Core"
                ],
                "summary": "Kubernetes liveness probe",
                "responses": {
                    "200": {
                        "description": "Service is alive",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        },
        "/health/ready": {
            "get": {
                "description": "Returns 200 OK when the dataset snapshot and similarity index are loaded. Returns 503 otherwise.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Core"
                ],
                "summary": "Kubernetes readiness probe",
                "responses": {
                    "200": {
                        "description": "Service is ready",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/models.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.HealthStatus"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "503": {
                        "description": "Service is not ready",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/models.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.HealthStatus"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/playtime-genre/{genre}": {
            "get": {
                "description": "Joins playtime records with dated catalog entries tagged with the genre and returns the release year with the highest total playtime. Ties go to the earliest year.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analytics"
                ],
                "summary": "Release year with most hours played for a genre",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Genre name (case-sensitive)",
                        "name": "genre",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "e.g. {\"Release year with most hours played for Genre Action\": \"2013\"}",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid genre",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "404": {
                        "description": "No playtime recorded for genre",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        },
        "/sentiment-analysis/{developer}": {
            "get": {
                "description": "Counts negative, neutral and positive reviews across the developer's catalog entries. A catalogued developer without reviews returns zeros.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analytics"
                ],
                "summary": "Review sentiment breakdown for a developer",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Developer name (case-sensitive)",
                        "name": "developer",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "e.g. {\"Valve\": [\"Negative = 182\", \"Neutral = 120\", \"Positive = 278\"]}",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "array",
                                "items": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid developer",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "404": {
                        "description": "Developer not present in dataset",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        },
        "/snapshot": {
            "get": {
                "description": "Returns row counts of the loaded snapshot, the vocabulary and memory size of the similarity index, and result cache counters, hit rate and entry TTL.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Core"
                ],
                "summary": "Dataset and index diagnostics",
                "responses": {
                    "200": {
                        "description": "Diagnostics retrieved successfully",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/models.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.SnapshotInfo"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "503": {
                        "description": "Query engine not available",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        },
        "/user-for-genre/{genre}": {
            "get": {
                "description": "Returns the user with the highest total playtime in the genre and their hours per release year, newest year first. Ties go to the smallest user id.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analytics"
                ],
                "summary": "User with most hours played for a genre",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Genre name (case-sensitive)",
                        "name": "genre",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "User label and \"Hours played\" list of {Year, Hours}",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "400": {
                        "description": "Invalid genre",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "404": {
                        "description": "No playtime recorded for genre",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        },
        "/users-recommend/{year}": {
            "get": {
                "description": "Counts reviews posted in the year that recommend the game with neutral or positive sentiment and returns the top three game names.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analytics"
                ],
                "summary": "Top three recommended games for a year",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Review year (1970-2100)",
                        "name": "year",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "e.g. [{\"Rank 1\": \"Terraria\"}, ...]",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object",
                                "additionalProperties": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid year",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "422": {
                        "description": "Fewer than three games reviewed in the year",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        },
        "/users-worst-developer/{year}": {
            "get": {
                "description": "Counts reviews posted in the year that do not recommend the game and have negative sentiment, ranks games and returns their developers.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analytics"
                ],
                "summary": "Three least recommended developers for a year",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Review year (1970-2100)",
                        "name": "year",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "e.g. [{\"Rank 1\": \"Valve\"}, ...]",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object",
                                "additionalProperties": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid year",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "422": {
                        "description": "Fewer than three games reviewed in the year",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "api.SnapshotInfo": {
            "type": "object",
            "properties": {
                "cache": {
                    "$ref": "#/definitions/api.CacheInfo"
                },
                "index": {
                    "$ref": "#/definitions/recommend.Stats"
                },
                "snapshot": {
                    "$ref": "#/definitions/models.SnapshotStats"
                }
            }
        },
        "api.CacheInfo": {
            "type": "object",
            "properties": {
                "evictions": {
                    "type": "integer"
                },
                "hit_rate": {
                    "type": "number"
                },
                "hits": {
                    "type": "integer"
                },
                "keys": {
                    "type": "integer"
                },
                "misses": {
                    "type": "integer"
                },
                "ttl_seconds": {
                    "type": "number"
                }
            }
        },
        "models.APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "details": {
                    "type": "object",
                    "additionalProperties": true
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "models.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {
                    "$ref": "#/definitions/models.APIError"
                },
                "metadata": {
                    "$ref": "#/definitions/models.Metadata"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "models.HealthStatus": {
            "type": "object",
            "properties": {
                "checked_at": {
                    "type": "string"
                },
                "indexed_games": {
                    "type": "integer"
                },
                "snapshot_rows": {
                    "type": "integer"
                },
                "status": {
                    "type": "string"
                },
                "uptime_seconds": {
                    "type": "number"
                },
                "version": {
                    "type": "string"
                }
            }
        },
        "models.Metadata": {
            "type": "object",
            "properties": {
                "cached": {
                    "type": "boolean"
                },
                "query_time_ms": {
                    "type": "integer"
                },
                "timestamp": {
                    "type": "string"
                }
            }
        },
        "models.SnapshotStats": {
            "type": "object",
            "properties": {
                "dated_games": {
                    "type": "integer"
                },
                "developers": {
                    "type": "integer"
                },
                "games": {
                    "type": "integer"
                },
                "loaded_at": {
                    "type": "string"
                },
                "playtime_minutes": {
                    "type": "integer"
                },
                "playtime_records": {
                    "type": "integer"
                },
                "playtime_users": {
                    "type": "integer"
                },
                "reviews": {
                    "type": "integer"
                }
            }
        },
        "recommend.Stats": {
            "type": "object",
            "properties": {
                "build_duration": {
                    "type": "integer"
                },
                "documents": {
                    "type": "integer"
                },
                "matrix_bytes": {
                    "type": "integer"
                },
                "non_zero": {
                    "type": "integer"
                },
                "vocabulary": {
                    "type": "integer"
                },
                "workers": {
                    "type": "integer"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Playstats API",
	Description:      "Read-only analytics and content-based recommendations over a game platform dataset of reviews, catalog entries and playtime records.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
