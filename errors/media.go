package errors

import "net/http"

var (
	MediaFileRequired        = New("upload file is required")
	MediaFileTooLarge        = New("upload file exceeds the size limit")
	MediaExtensionNotAllowed = New("upload file extension is not allowed")
	MediaPathNotAllowed      = New("media path is outside the storage directory")
	MediaStorageUnavailable  = New("media storage is unavailable")
)

func init() {
	RegisterHTTPStatus(MediaFileRequired, http.StatusBadRequest)
	RegisterHTTPStatus(MediaFileTooLarge, http.StatusRequestEntityTooLarge)
	RegisterHTTPStatus(MediaExtensionNotAllowed, http.StatusBadRequest)
	RegisterHTTPStatus(MediaPathNotAllowed, http.StatusBadRequest)
	RegisterHTTPStatus(MediaStorageUnavailable, http.StatusServiceUnavailable)
}
