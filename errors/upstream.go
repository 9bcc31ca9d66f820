package errors

import "net/http"

var (
	UpstreamUnauthorized = New("upstream catalog rejected credentials")
	UpstreamBadResponse  = New("upstream catalog returned an unexpected response")
	UpstreamDisabled     = New("upstream catalog sync is disabled")
)

func init() {
	RegisterHTTPStatus(UpstreamUnauthorized, http.StatusBadGateway)
	RegisterHTTPStatus(UpstreamBadResponse, http.StatusBadGateway)
	RegisterHTTPStatus(UpstreamDisabled, http.StatusServiceUnavailable)
}
