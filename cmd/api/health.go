package main

import (
	"context"
	"net/http"
	"time"
)

// healthCheckHandler godoc
//
//	@Summary		Healthcheck
//	@Description	Reports the environment and version; 503 when the database does not answer.
//	@Tags			ops
//	@Produce		json
//	@Success		200	{object}	string	"ok"
//	@Failure		503	{object}	error
//	@Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := app.store.DB().PingContext(ctx); err != nil {
		app.serviceUnavailableResponse(w, r, err)
		return
	}

	data := map[string]string{
		"status":  "ok",
		"env":     app.config.Env,
		"version": version,
	}

	app.jsonResponse(w, r, http.StatusOK, data)
}
