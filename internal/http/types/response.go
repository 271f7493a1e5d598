// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Response is the JSON envelope every endpoint answers with.
type Response struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Data    interface{}       `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, message string, data interface{}) {
	writeResponse(w, &Response{Status: status, Message: message, Data: data})
}

func WriteError(w http.ResponseWriter, status int, message string) {
	writeResponse(w, &Response{Status: status, Message: message})
}

// WriteValidationError maps validator.ValidationErrors to a 422 with one
// entry per failing field. Any other error falls back to a plain 400.
func WriteValidationError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		fields[fe.Field()] = fe.Tag()
	}

	writeResponse(w, &Response{
		Status:  http.StatusUnprocessableEntity,
		Message: "validation failed",
		Errors:  fields,
	})
}

func writeResponse(w http.ResponseWriter, resp *Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	_ = json.NewEncoder(w).Encode(resp)
}
