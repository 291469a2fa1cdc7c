// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-threat-sync/internal/logger"
	"github.com/MKhiriev/go-threat-sync/internal/utils"
	"github.com/MKhiriev/go-threat-sync/models"
)

// changeSet serves GET /api/v1/{hashPrefix|filterSet}?category=&revision=.
// A missing revision is read as 0, which yields the full dataset.
func (h *Handler) changeSet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	dataKind, err := models.ParseDataKind(path.Base(r.URL.Path))
	if err != nil {
		h.writeError(w, r, "*Handler.changeSet", err)
		return
	}

	threatKind, err := models.ParseThreatKind(r.URL.Query().Get("category"))
	if err != nil {
		h.writeError(w, r, "*Handler.changeSet", err)
		return
	}

	knownRevision, err := parseRevision(r.URL.Query().Get("revision"))
	if err != nil {
		h.writeError(w, r, "*Handler.changeSet", err)
		return
	}

	key := models.DataKey{ThreatKind: threatKind, DataKind: dataKind}
	changeSet, err := h.services.FeedService.ChangeSet(r.Context(), key, knownRevision)
	if err != nil {
		h.writeError(w, r, "*Handler.changeSet", err)
		return
	}

	log.Debug().
		Str("func", "*Handler.changeSet").
		Str("data_key", key.String()).
		Int64("known_revision", knownRevision).
		Int64("revision", changeSet.Revision).
		Bool("replace", changeSet.Replace).
		Msg("changeset served")
	writeJSON(w, r, changeSet, http.StatusOK)
}

// publish serves POST /api/v1/{dataKind}/revisions.
func (h *Handler) publish(w http.ResponseWriter, r *http.Request) {
	dataKind, err := models.ParseDataKind(chi.URLParam(r, "dataKind"))
	if err != nil {
		h.writeError(w, r, "*Handler.publish", err)
		return
	}

	var req models.PublishRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, "*Handler.publish", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}
	req.DataKind = dataKind

	revision, err := h.services.FeedService.Publish(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "*Handler.publish", err)
		return
	}

	writeJSON(w, r, models.PublishResponse{Revision: revision}, http.StatusCreated)
}

// matches serves GET /api/v1/matches?hashPrefix=.
func (h *Handler) matches(w http.ResponseWriter, r *http.Request) {
	found, err := h.services.FeedService.Matches(r.Context(), r.URL.Query().Get("hashPrefix"))
	if err != nil {
		h.writeError(w, r, "*Handler.matches", err)
		return
	}
	if found == nil {
		found = []models.Match{}
	}

	writeJSON(w, r, models.MatchesResponse{Matches: found}, http.StatusOK)
}

// registerMatches serves POST /api/v1/matches.
func (h *Handler) registerMatches(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterMatchesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, "*Handler.registerMatches", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	if err := h.services.FeedService.RegisterMatches(r.Context(), req); err != nil {
		h.writeError(w, r, "*Handler.registerMatches", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseRevision(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	revision, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || revision < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRevisionParam, raw)
	}
	return revision, nil
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	resp := responseFromError(err)

	event := logger.FromRequest(r).Warn()
	if resp.status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", fn).Int("status", resp.status).Msg("request failed")

	utils.WriteError(w, resp.message, resp.status)
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeJSON").Msg("failed to write response")
	}
}
