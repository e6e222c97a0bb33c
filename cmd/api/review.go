package main

import (
	"errors"
	"net/http"
	"net/url"

	"bazaar/internal/services"

	"github.com/go-chi/chi/v5"
)

// placeIDParam returns the decoded {placeID} segment. chi matches on the raw path when the
// request carries escaped characters, so the captured value may still be percent-encoded.
func placeIDParam(r *http.Request) (string, error) {
	placeID := chi.URLParam(r, "placeID")
	if r.URL.RawPath == "" {
		return placeID, nil
	}
	return url.PathUnescape(placeID)
}

// getReviewsHandler godoc
//
//	@Summary		Lists reviews of a place
//	@Description	Newest first. Each review carries the author's current username when the account still exists.
//	@Tags			reviews
//	@Produce		json
//	@Param			placeID	path		string	true	"Place ID"
//	@Success		200		{array}		reviews.Review
//	@Failure		500		{object}	error
//	@Router			/reviews/{placeID} [get]
func (app *application) getReviewsHandler(w http.ResponseWriter, r *http.Request) {
	placeID, err := placeIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid place ID"))
		return
	}

	list, err := app.services.Reviews.ListReviews(r.Context(), placeID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, r, http.StatusOK, list)
}

// createReviewHandler godoc
//
//	@Summary		Creates a review
//	@Description	Subscribers of the place, other than the author, receive a notification.
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		services.CreateReviewInput	true	"Review"
//	@Success		200		{object}	services.CreateReviewResult
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Failure		403		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/reviews [post]
func (app *application) createReviewHandler(w http.ResponseWriter, r *http.Request) {
	identity := getIdentityFromContext(r)
	if identity == nil {
		app.unauthorizedErrorResponse(w, r, errors.New("no identity on request"))
		return
	}

	var payload services.CreateReviewInput
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	result, err := app.services.Reviews.CreateReview(r.Context(), *identity, payload)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.jsonResponse(w, r, http.StatusOK, result)
}
