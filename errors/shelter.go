package errors

import "net/http"

var (
	ShelterRecordNotFound = New("shelter record not found")
	ShelterAlreadyExists  = New("shelter already exists")
)

func init() {
	RegisterHTTPStatus(ShelterRecordNotFound, http.StatusNotFound)
	RegisterHTTPStatus(ShelterAlreadyExists, http.StatusConflict)
}
