package errors

import "net/http"

var (
	FavoriteRecordNotFound = New("favorite record not found")
)

func init() {
	RegisterHTTPStatus(FavoriteRecordNotFound, http.StatusNotFound)
}
