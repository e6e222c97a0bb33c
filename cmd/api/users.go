package main

import (
	"net/http"

	"bazaar/internal/services"
)

type identityKey string

const identityCtx identityKey = "identity"

func getIdentityFromContext(r *http.Request) *services.Identity {
	if identity, ok := r.Context().Value(identityCtx).(*services.Identity); ok {
		return identity
	}
	return nil
}
