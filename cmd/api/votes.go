package main

import (
	"errors"
	"net/http"

	"bazaar/internal/services"
)

// getVotesHandler godoc
//
//	@Summary	Fetches the vote tally of a place
//	@Tags		votes
//	@Produce	json
//	@Param		placeID	path		string	true	"Place ID"
//	@Success	200		{object}	votes.Tally
//	@Failure	500		{object}	error
//	@Router		/votes/{placeID} [get]
func (app *application) getVotesHandler(w http.ResponseWriter, r *http.Request) {
	placeID, err := placeIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid place ID"))
		return
	}

	tally, err := app.services.Votes.GetVotes(r.Context(), placeID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, r, http.StatusOK, tally)
}

// submitVoteHandler godoc
//
//	@Summary		Casts or changes a vote
//	@Description	A repeated vote from the same fingerprint replaces the earlier one.
//	@Tags			votes
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		services.SubmitVoteInput	true	"Vote"
//	@Success		200		{object}	successResponse
//	@Failure		400		{object}	error
//	@Router			/votes [post]
func (app *application) submitVoteHandler(w http.ResponseWriter, r *http.Request) {
	var payload services.SubmitVoteInput
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.services.Votes.SubmitVote(r.Context(), payload); err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.jsonResponse(w, r, http.StatusOK, successResponse{Success: true})
}
