package main

import (
	"errors"
	"net/http"

	"bazaar/internal/services"
)

// subscribeHandler godoc
//
//	@Summary		Subscribes to a place
//	@Description	Idempotent. A welcome notification is sent the first time only.
//	@Tags			subscriptions
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		services.SubscribeInput	true	"Place"
//	@Success		200		{object}	successResponse
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/subscribe [post]
func (app *application) subscribeHandler(w http.ResponseWriter, r *http.Request) {
	identity := getIdentityFromContext(r)
	if identity == nil {
		app.unauthorizedErrorResponse(w, r, errors.New("no identity on request"))
		return
	}

	var payload services.SubscribeInput
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.services.Subscriptions.Subscribe(r.Context(), identity.ID, payload); err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.jsonResponse(w, r, http.StatusOK, successResponse{Success: true})
}

// listNotificationsHandler godoc
//
//	@Summary	Lists the caller's notifications, newest first
//	@Tags		notifications
//	@Produce	json
//	@Success	200	{array}		inbox.Notification
//	@Failure	401	{object}	error
//	@Security	ApiKeyAuth
//	@Router		/notifications [get]
func (app *application) listNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	identity := getIdentityFromContext(r)
	if identity == nil {
		app.unauthorizedErrorResponse(w, r, errors.New("no identity on request"))
		return
	}

	list, err := app.services.Subscriptions.ListNotifications(r.Context(), identity.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, r, http.StatusOK, list)
}

type unreadResponse struct {
	Unread int `json:"unread"`
}

// unreadCountHandler godoc
//
//	@Summary	Counts the caller's unread notifications
//	@Tags		notifications
//	@Produce	json
//	@Success	200	{object}	unreadResponse
//	@Failure	401	{object}	error
//	@Security	ApiKeyAuth
//	@Router		/notifications/unread [get]
func (app *application) unreadCountHandler(w http.ResponseWriter, r *http.Request) {
	identity := getIdentityFromContext(r)
	if identity == nil {
		app.unauthorizedErrorResponse(w, r, errors.New("no identity on request"))
		return
	}

	n, err := app.services.Subscriptions.UnreadCount(r.Context(), identity.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, r, http.StatusOK, unreadResponse{Unread: n})
}

// markNotificationsReadHandler godoc
//
//	@Summary	Marks every notification of the caller as read
//	@Tags		notifications
//	@Produce	json
//	@Success	200	{object}	successResponse
//	@Failure	401	{object}	error
//	@Security	ApiKeyAuth
//	@Router		/notifications/read [post]
func (app *application) markNotificationsReadHandler(w http.ResponseWriter, r *http.Request) {
	identity := getIdentityFromContext(r)
	if identity == nil {
		app.unauthorizedErrorResponse(w, r, errors.New("no identity on request"))
		return
	}

	if err := app.services.Subscriptions.MarkAllRead(r.Context(), identity.ID); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, r, http.StatusOK, successResponse{Success: true})
}
