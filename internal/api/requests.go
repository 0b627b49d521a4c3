// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/cinephile/internal/service"
	"github.com/tomtom215/cinephile/internal/validation"
)

// maxBodySize bounds JSON request bodies. Rating payloads are tiny.
const maxBodySize = 4 * 1024

// decodeAndValidate decodes a JSON body into dst and runs struct validation.
// On failure it writes the 400 response and returns false.
func decodeAndValidate(rw *ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		rw.ValidationError(fmt.Sprintf("Invalid request body: %v", err), nil)
		return false
	}
	return validate(rw, dst)
}

// validate runs struct validation and writes a 400 response on failure.
func validate(rw *ResponseWriter, v interface{}) bool {
	if verr := validation.ValidateStruct(v); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return false
	}
	return true
}

// movieIDParam parses the {movieID} URL parameter. On failure it writes the
// 400 response and returns false.
func movieIDParam(rw *ResponseWriter, r *http.Request) (int64, bool) {
	id, err := service.ParseMovieID(chi.URLParam(r, "movieID"))
	if err != nil {
		rw.StoreError(err)
		return 0, false
	}
	return id, true
}
