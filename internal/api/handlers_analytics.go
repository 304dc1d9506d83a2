// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package api

import (
	"net/http"

	"github.com/tomtom215/playstats/internal/analytics"
	"github.com/tomtom215/playstats/internal/validation"
)

// PlaytimeGenre returns the release year with the most playtime for a genre.
//
// @Summary Release year with most hours played for a genre
// @Description Joins playtime records with dated catalog entries tagged with the genre and returns the release year with the highest total playtime. Ties go to the earliest year.
// @Tags Analytics
// @Produce json
// @Param genre path string true "Genre name (case-sensitive)"
// @Success 200 {object} map[string]string "e.g. {\"Release year with most hours played for Genre Action\": \"2013\"}"
// @Failure 400 {object} models.APIResponse "Invalid genre"
// @Failure 404 {object} models.APIResponse "No playtime recorded for genre"
// @Router /playtime-genre/{genre} [get]
func (h *Handler) PlaytimeGenre(w http.ResponseWriter, r *http.Request) {
	const op = analytics.OpPeakYearForGenre

	req, err := genreRequest(r)
	if err != nil {
		respondQueryError(w, r, op, err)
		return
	}

	h.executor.Execute(w, r, op, req, func() (interface{}, error) {
		return h.engine.PeakYearForGenre(req.Genre)
	})
}

// UserForGenre returns the user with the most playtime in a genre and that
// user's hours per release year.
//
// @Summary User with most hours played for a genre
// @Description Returns the user with the highest total playtime in the genre and their hours per release year, newest year first. Ties go to the smallest user id.
// @Tags Analytics
// @Produce json
// @Param genre path string true "Genre name (case-sensitive)"
// @Success 200 {object} map[string]interface{} "User label and \"Hours played\" list of {Year, Hours}"
// @Failure 400 {object} models.APIResponse "Invalid genre"
// @Failure 404 {object} models.APIResponse "No playtime recorded for genre"
// @Router /user-for-genre/{genre} [get]
func (h *Handler) UserForGenre(w http.ResponseWriter, r *http.Request) {
	const op = analytics.OpTopUserForGenre

	req, err := genreRequest(r)
	if err != nil {
		respondQueryError(w, r, op, err)
		return
	}

	h.executor.Execute(w, r, op, req, func() (interface{}, error) {
		return h.engine.TopUserForGenre(req.Genre)
	})
}

// UsersRecommend returns the three games with the most positive
// recommendations in a year.
//
// @Summary Top three recommended games for a year
// @Description Counts reviews posted in the year that recommend the game with neutral or positive sentiment and returns the top three game names.
// @Tags Analytics
// @Produce json
// @Param year path int true "Review year (1970-2100)"
// @Success 200 {array} map[string]string "e.g. [{\"Rank 1\": \"Terraria\"}, ...]"
// @Failure 400 {object} models.APIResponse "Invalid year"
// @Failure 422 {object} models.APIResponse "Fewer than three games reviewed in the year"
// @Router /users-recommend/{year} [get]
func (h *Handler) UsersRecommend(w http.ResponseWriter, r *http.Request) {
	const op = analytics.OpTopRecommendedGames

	req, err := yearRequest(r)
	if err != nil {
		respondQueryError(w, r, op, err)
		return
	}

	h.executor.Execute(w, r, op, req, func() (interface{}, error) {
		return h.engine.TopRecommendedGames(req.Year)
	})
}

// UsersWorstDeveloper returns the three developers with the most negative
// recommendations in a year.
//
// @Summary Three least recommended developers for a year
// @Description Counts reviews posted in the year that do not recommend the game and have negative sentiment, ranks games and returns their developers.
// @Tags Analytics
// @Produce json
// @Param year path int true "Review year (1970-2100)"
// @Success 200 {array} map[string]string "e.g. [{\"Rank 1\": \"Valve\"}, ...]"
// @Failure 400 {object} models.APIResponse "Invalid year"
// @Failure 422 {object} models.APIResponse "Fewer than three games reviewed in the year"
// @Router /users-worst-developer/{year} [get]
func (h *Handler) UsersWorstDeveloper(w http.ResponseWriter, r *http.Request) {
	const op = analytics.OpWorstDevelopers

	req, err := yearRequest(r)
	if err != nil {
		respondQueryError(w, r, op, err)
		return
	}

	h.executor.Execute(w, r, op, req, func() (interface{}, error) {
		return h.engine.WorstDevelopers(req.Year)
	})
}

// SentimentAnalysis returns review sentiment counts for a developer.
//
// @Summary Review sentiment breakdown for a developer
// @Description Counts negative, neutral and positive reviews across the developer's catalog entries. A catalogued developer without reviews returns zeros.
// @Tags Analytics
// @Produce json
// @Param developer path string true "Developer name (case-sensitive)"
// @Success 200 {object} map[string][]string "e.g. {\"Valve\": [\"Negative = 182\", \"Neutral = 120\", \"Positive = 278\"]}"
// @Failure 400 {object} models.APIResponse "Invalid developer"
// @Failure 404 {object} models.APIResponse "Developer not present in dataset"
// @Router /sentiment-analysis/{developer} [get]
func (h *Handler) SentimentAnalysis(w http.ResponseWriter, r *http.Request) {
	const op = analytics.OpSentimentBreakdown

	developer, err := pathParam(r, "developer")
	if err != nil {
		respondQueryError(w, r, op, err)
		return
	}
	req := validation.DeveloperRequest{Developer: developer}
	if err := validateRequest(&req); err != nil {
		respondQueryError(w, r, op, err)
		return
	}

	h.executor.Execute(w, r, op, req, func() (interface{}, error) {
		return h.engine.SentimentBreakdown(req.Developer)
	})
}

// GameRecommendation returns the games most similar to a catalog entry.
//
// @Summary Five most similar games
// @Description Ranks catalog entries by TF-IDF cosine similarity of their feature text (genres, specs, developer and item id) to the given game, excluding the game itself.
// @Tags Recommendations
// @Produce json
// @Param id path string true "Catalog item id"
// @Success 200 {array} map[string]string "e.g. [{\"620\": \"Portal 2\"}, ...]"
// @Failure 400 {object} models.APIResponse "Invalid id"
// @Failure 404 {object} models.APIResponse "Item not present in catalog"
// @Failure 422 {object} models.APIResponse "Catalog too small"
// @Router /game-recommendation/{id} [get]
func (h *Handler) GameRecommendation(w http.ResponseWriter, r *http.Request) {
	const op = analytics.OpRecommendSimilar

	id, err := pathParam(r, "id")
	if err != nil {
		respondQueryError(w, r, op, err)
		return
	}
	req := validation.ItemRequest{ItemID: id}
	if err := validateRequest(&req); err != nil {
		respondQueryError(w, r, op, err)
		return
	}

	h.executor.Execute(w, r, op, req, func() (interface{}, error) {
		return h.engine.RecommendSimilar(req.ItemID)
	})
}

func genreRequest(r *http.Request) (validation.GenreRequest, error) {
	genre, err := pathParam(r, "genre")
	if err != nil {
		return validation.GenreRequest{}, err
	}
	req := validation.GenreRequest{Genre: genre}
	if err := validateRequest(&req); err != nil {
		return validation.GenreRequest{}, err
	}
	return req, nil
}

func yearRequest(r *http.Request) (validation.YearRequest, error) {
	raw, err := pathParam(r, "year")
	if err != nil {
		return validation.YearRequest{}, err
	}
	year, err := validation.ParseYear(raw)
	if err != nil {
		return validation.YearRequest{}, err
	}
	req := validation.YearRequest{Year: year}
	if err := validateRequest(&req); err != nil {
		return validation.YearRequest{}, err
	}
	return req, nil
}
