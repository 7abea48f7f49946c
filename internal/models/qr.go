package models

// QRInfo describes the content of a QR code payload
type QRInfo struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Data        string `json:"data"`
}

// Position is the bounding box of a decoded symbol within the source image
type Position struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ScanResult is one decoded symbol found in an image
type ScanResult struct {
	Data     string   `json:"data"`
	Type     string   `json:"type"`
	Position Position `json:"position"`
}

// GeneratedQR is the rendered QR code returned to the client
type GeneratedQR struct {
	Image string `json:"image"` // data:image/png;base64,...
	Size  [2]int `json:"size"`
	Data  string `json:"data"`
}

// ScanDataRequest is the body of POST /api/scan/data
type ScanDataRequest struct {
	Image string `json:"image"`
}

// GenerateRequest is the body of POST /api/generate
type GenerateRequest struct {
	Text            string `json:"text"`
	Size            []int  `json:"size"`
	Border          *int   `json:"border"`
	ErrorCorrection string `json:"errorCorrection"`
}

// InfoRequest is the body of POST /api/info. Text is a pointer so a
// present-but-empty string can still be classified (it is plain text).
type InfoRequest struct {
	Text *string `json:"text"`
}
