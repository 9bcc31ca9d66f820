package media

// PhotoInfo describes one stored photo
type PhotoInfo struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size int64  `json:"size,omitempty"`
}
