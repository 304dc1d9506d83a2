// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

// @title Playstats API
// @version 1.0
// @description Read-only analytics and content-based recommendations over a game platform dataset.
// @description
// @description ## Features
// @description
// @description - **Genre analytics**: release year with most playtime, top player per genre
// @description - **Review rankings**: most recommended games and least recommended developers per year
// @description - **Sentiment**: per-developer review sentiment breakdown
// @description - **Recommendations**: five most similar games by genre and feature tags
// @description
// @description ## Responses
// @description
// @description Successful analytics responses are a single label-keyed JSON object.
// @description Query time and cache status are returned in the `X-Query-Time-Ms` and `X-Cache` headers.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "NOT_FOUND",
// @description     "message": "Human-readable error message"
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-03-01T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/playstats/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Core
// @tag.description Health checks and snapshot diagnostics
//
// @tag.name Analytics
// @tag.description Genre, review and sentiment queries over the loaded snapshot
//
// @tag.name Recommendations
// @tag.description Content-based similar game lookups
package main
