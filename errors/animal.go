package errors

import "net/http"

var (
	AnimalRecordNotFound = New("animal record not found")
	AnimalAlreadyExists  = New("animal already exists")
	AnimalNotAvailable   = New("animal is not available for adoption")
	AnimalInvalidSpecies = New("invalid animal species")
)

func init() {
	RegisterHTTPStatus(AnimalRecordNotFound, http.StatusNotFound)
	RegisterHTTPStatus(AnimalAlreadyExists, http.StatusConflict)
	RegisterHTTPStatus(AnimalNotAvailable, http.StatusConflict)
	RegisterHTTPStatus(AnimalInvalidSpecies, http.StatusBadRequest)
}
