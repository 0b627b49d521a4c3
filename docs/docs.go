// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

// Package docs registers the OpenAPI 2.0 description of /api/v1 served at
// /swagger/doc.json. It mirrors the @-annotations on the internal/api
// handlers and the general info in cmd/server/docs.go; keep them in step or
// regenerate with:
//
//	swag init -g cmd/server/docs.go -d ./,./internal/api,./internal/models
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
            "url": "https://github.com/tomtom215/cinephile/issues"
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
        "/health": {
            "get": {
                "description": "Returns database connectivity, index version and age, catalog size and the TMDB circuit breaker state",
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Get service health",
                "responses": {
                    "200": {
                        "description": "Health status",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.HealthStatus"}}}
                            ]
                        }
                    }
                }
            }
        },
        "/health/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "Process is running", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Index built and database reachable", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "503": {"description": "Index not built or database down", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/titles": {
            "get": {
                "description": "Returns every catalog title in row order, duplicates included",
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "List catalog titles",
                "responses": {
                    "200": {
                        "description": "Titles",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"type": "array", "items": {"type": "string"}}}}
                            ]
                        }
                    }
                }
            }
        },
        "/recommendations": {
            "get": {
                "description": "Ranks the catalog against the first movie with the given title. An unknown title returns found=false with empty lists",
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Recommend movies by title",
                "parameters": [
                    {"type": "string", "description": "Exact movie title", "name": "title", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Up to 20 recommendations",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.RecommendationsResponse"}}}
                            ]
                        }
                    },
                    "400": {"description": "Missing title", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/movies/{movieID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Movies"],
                "summary": "Get a movie with its rating summary",
                "parameters": [
                    {"type": "integer", "description": "Movie ID", "name": "movieID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Movie",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.MovieResponse"}}}
                            ]
                        }
                    },
                    "400": {"description": "Invalid movie ID", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "404": {"description": "Movie not found", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/movies/{movieID}/similar": {
            "get": {
                "description": "Ranks the catalog against the row holding movieID, excluding rows that share its title",
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Recommend movies similar to a movie ID",
                "parameters": [
                    {"type": "integer", "description": "Movie ID", "name": "movieID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Up to 20 recommendations",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.SimilarResponse"}}}
                            ]
                        }
                    },
                    "400": {"description": "Invalid movie ID", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "404": {"description": "Movie not in the similarity index", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "503": {"description": "Similarity index not built", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/movies/{movieID}/ratings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Ratings"],
                "summary": "Get raw ratings and their summary",
                "parameters": [
                    {"type": "integer", "description": "Movie ID", "name": "movieID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Ratings",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.RatingsResponse"}}}
                            ]
                        }
                    },
                    "404": {"description": "Movie not found", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            },
            "post": {
                "description": "Appends one rating (1-5) to the movie's list",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Ratings"],
                "summary": "Rate a movie",
                "parameters": [
                    {"type": "integer", "description": "Movie ID", "name": "movieID", "in": "path", "required": true},
                    {"description": "Rating", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.RateRequest"}}
                ],
                "responses": {
                    "201": {
                        "description": "Rating stored",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.RatingsResponse"}}}
                            ]
                        }
                    },
                    "400": {"description": "Invalid movie ID or rating", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "404": {"description": "Movie not found", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "500": {"description": "Database error", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/ratings/by-title": {
            "put": {
                "description": "Appends one rating to the first movie with the given title. Titles are not unique; use POST /movies/{movieID}/ratings",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Ratings"],
                "summary": "Rate a movie by title",
                "deprecated": true,
                "parameters": [
                    {"description": "Title and rating", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.RateByTitleRequest"}}
                ],
                "responses": {
                    "200": {
                        "description": "Rating stored",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.RatingsResponse"}}}
                            ]
                        }
                    },
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "404": {"description": "Movie not found", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/ratings/summary": {
            "get": {
                "description": "Aggregates a serialized rating list such as [3, 4]",
                "produces": ["application/json"],
                "tags": ["Ratings"],
                "summary": "Summarize a rating list",
                "parameters": [
                    {"type": "string", "description": "Serialized ratings", "name": "raw", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "Summary",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.RatingSummary"}}}
                            ]
                        }
                    }
                }
            }
        },
        "/posters/{movieID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Movies"],
                "summary": "Get a movie's poster URL",
                "parameters": [
                    {"type": "integer", "description": "Movie ID", "name": "movieID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Poster URL",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.PosterResponse"}}}
                            ]
                        }
                    },
                    "404": {"description": "Poster not available", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {},
                "message": {"type": "string"},
                "request_id": {"type": "string"}
            }
        },
        "api.APIMeta": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "duration_ms": {"type": "integer"},
                "request_id": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "api.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/api.APIError"},
                "meta": {"$ref": "#/definitions/api.APIMeta"},
                "success": {"type": "boolean"}
            }
        },
        "models.HealthStatus": {
            "type": "object",
            "properties": {
                "catalog_size": {"type": "integer"},
                "database_ok": {"type": "boolean"},
                "index_age": {"type": "string"},
                "index_built_at": {"type": "string"},
                "index_ready": {"type": "boolean"},
                "index_version": {"type": "integer"},
                "poster_breaker": {"type": "string"},
                "status": {"type": "string"},
                "uptime_seconds": {"type": "number"},
                "version": {"type": "string"},
                "vocabulary_size": {"type": "integer"}
            }
        },
        "models.Movie": {
            "type": "object",
            "properties": {
                "movie_id": {"type": "integer"},
                "ratings": {"type": "array", "items": {"type": "number"}},
                "tags": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "models.MovieResponse": {
            "type": "object",
            "properties": {
                "movie": {"$ref": "#/definitions/models.Movie"},
                "poster_url": {"type": "string"},
                "summary": {"$ref": "#/definitions/models.RatingSummary"}
            }
        },
        "models.PosterResponse": {
            "type": "object",
            "properties": {
                "movie_id": {"type": "integer"},
                "poster_url": {"type": "string"}
            }
        },
        "models.RateByTitleRequest": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "rating": {"type": "integer", "maximum": 5, "minimum": 1},
                "title": {"type": "string"}
            }
        },
        "models.RateRequest": {
            "type": "object",
            "properties": {
                "rating": {"type": "integer", "maximum": 5, "minimum": 1}
            }
        },
        "models.RatingSummary": {
            "type": "object",
            "properties": {
                "average": {"type": "number"},
                "count": {"type": "integer"},
                "display": {"type": "string"},
                "filled": {"type": "integer"}
            }
        },
        "models.RatingsResponse": {
            "type": "object",
            "properties": {
                "movie_id": {"type": "integer"},
                "ratings": {"type": "array", "items": {"type": "number"}},
                "summary": {"$ref": "#/definitions/models.RatingSummary"}
            }
        },
        "models.Recommendation": {
            "type": "object",
            "properties": {
                "movie_id": {"type": "integer"},
                "poster_url": {"type": "string"},
                "score": {"type": "number"},
                "title": {"type": "string"}
            }
        },
        "models.RecommendationsResponse": {
            "type": "object",
            "properties": {
                "found": {"type": "boolean"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/models.Recommendation"}},
                "posters": {"type": "array", "items": {"type": "string"}},
                "query": {"type": "string"},
                "titles": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.SimilarResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/models.Recommendation"}},
                "movie_id": {"type": "integer"}
            }
        }
    },
    "tags": [
        {"description": "Health and readiness", "name": "Core"},
        {"description": "Content-based recommendations over the similarity index", "name": "Recommendations"},
        {"description": "Catalog rows and posters", "name": "Movies"},
        {"description": "Rating submission and aggregation", "name": "Ratings"}
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8501",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Cinephile API",
	Description:      "Content-based movie recommendations over a tag similarity index, with star ratings and TMDB posters.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
