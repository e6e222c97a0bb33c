package main

import (
	"errors"
	"net/http"

	"bazaar/internal/services"
)

// signupHandler godoc
//
//	@Summary		Registers a user
//	@Description	Creates an account and returns a signed token with the public user
//	@Tags			authentication
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		services.SignupInput	true	"User credentials"
//	@Success		200		{object}	services.AuthResult
//	@Failure		400		{object}	error	"Missing fields or username/email taken"
//	@Failure		500		{object}	error
//	@Router			/auth/signup [post]
func (app *application) signupHandler(w http.ResponseWriter, r *http.Request) {
	var payload services.SignupInput
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	result, err := app.services.Auth.Signup(r.Context(), payload)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.logger.Infow("user signed up", "user_id", result.User.ID)
	app.jsonResponse(w, r, http.StatusOK, result)
}

// loginHandler godoc
//
//	@Summary		Logs a user in
//	@Tags			authentication
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		services.LoginInput	true	"User credentials"
//	@Success		200		{object}	services.AuthResult
//	@Failure		400		{object}	error	"Invalid credentials"
//	@Router			/auth/login [post]
func (app *application) loginHandler(w http.ResponseWriter, r *http.Request) {
	var payload services.LoginInput
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	result, err := app.services.Auth.Login(r.Context(), payload)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.jsonResponse(w, r, http.StatusOK, result)
}

// meHandler godoc
//
//	@Summary	Returns the authenticated user
//	@Tags		authentication
//	@Produce	json
//	@Success	200	{object}	services.PublicUser
//	@Failure	401	{object}	error
//	@Failure	403	{object}	error
//	@Failure	404	{object}	error
//	@Security	ApiKeyAuth
//	@Router		/auth/me [get]
func (app *application) meHandler(w http.ResponseWriter, r *http.Request) {
	identity := getIdentityFromContext(r)
	if identity == nil {
		app.unauthorizedErrorResponse(w, r, errors.New("no identity on request"))
		return
	}

	user, err := app.services.Auth.Me(r.Context(), identity.ID)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.jsonResponse(w, r, http.StatusOK, user)
}
