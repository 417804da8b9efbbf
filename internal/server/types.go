package server

// DomesticRequest is the request for the domestic reference endpoint
type DomesticRequest struct {
	Base string `json:"base" binding:"required"`
}

// ISORequest is the request for the ISO reference endpoint. Exactly one
// of Payload or Domestic is set.
type ISORequest struct {
	Payload  string `json:"payload"`
	Domestic string `json:"domestic"`
}

// ReferenceResponse is the response for reference generation endpoints
type ReferenceResponse struct {
	Reference string `json:"reference"`
	Formatted string `json:"formatted"`
	Kind      string `json:"kind"`
}

// ValidateRequest is the request for the validate endpoint
type ValidateRequest struct {
	Reference string `json:"reference" binding:"required"`
}

// ValidationResponse is the response for the validate endpoint
type ValidationResponse struct {
	Reference string `json:"reference"`
	Kind      string `json:"kind"`
	Valid     bool   `json:"valid"`
	Formatted string `json:"formatted,omitempty"`
}

// BarcodeRequest is the request for the barcode endpoint. Amount is a
// decimal string such as "4883.15"; Due is YYYY-MM-DD.
type BarcodeRequest struct {
	IBAN      string `json:"iban" binding:"required"`
	Reference string `json:"reference" binding:"required"`
	Amount    string `json:"amount" binding:"required"`
	Due       string `json:"due"`
}

// BarcodeResponse is the response for the barcode endpoint
type BarcodeResponse struct {
	Barcode string `json:"barcode"`
	Version int    `json:"version"`
}

// DecodeRequest is the request for the barcode decode endpoint
type DecodeRequest struct {
	Barcode string `json:"barcode" binding:"required"`
}

// DecodeResponse is the response for the barcode decode endpoint
type DecodeResponse struct {
	Version   int    `json:"version"`
	IBAN      string `json:"iban"`
	Reference string `json:"reference"`
	Amount    string `json:"amount"`
	Due       string `json:"due,omitempty"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error     string `json:"error"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}
