// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-threat-sync/internal/app"
	"github.com/MKhiriev/go-threat-sync/internal/service"
	"github.com/MKhiriev/go-threat-sync/internal/store"
	"github.com/MKhiriev/go-threat-sync/internal/validators"
	"github.com/MKhiriev/go-threat-sync/models"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{models.ErrUnknownThreatKind, errorResponse{http.StatusBadRequest, app.MsgUnknownCategory}},
	{models.ErrUnknownDataKind, errorResponse{http.StatusNotFound, app.MsgUnknownDataKind}},
	{ErrInvalidRevisionParam, errorResponse{http.StatusBadRequest, app.MsgInvalidRevision}},
	{validators.ErrNegativeRevision, errorResponse{http.StatusBadRequest, app.MsgInvalidRevision}},
	{validators.ErrInvalidHashPrefix, errorResponse{http.StatusBadRequest, app.MsgInvalidHashPrefix}},
	{ErrInvalidJSON, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},

	{store.ErrBeginningTransaction, errorResponse{http.StatusServiceUnavailable, app.MsgServiceUnavailable}},
	{store.ErrCommittingTransaction, errorResponse{http.StatusServiceUnavailable, app.MsgServiceUnavailable}},
}

func responseFromError(err error) errorResponse {
	for _, r := range errorResponses {
		if errors.Is(err, r.target) {
			return r.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}
