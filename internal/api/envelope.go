package api

import "drukwater-admin/internal/model"

// Response envelope conventions: list/get endpoints return {data, meta?},
// mutations return {data, message?}, deletes return {message}.

type listEnvelope[T any] struct {
	Data []T         `json:"data"`
	Meta *model.Meta `json:"meta"`
}

type itemEnvelope[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message"`
}

type messageEnvelope struct {
	Message string `json:"message"`
}
