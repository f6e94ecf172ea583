package domain

// Result messages returned in VerificationResult.Message.
const (
	MsgInvalidInput = "Invalid input"
	MsgNotFound     = "not found"
	MsgGenerated    = "generated"
)

// VerificationRequest is the body of POST /nemid-auth. Both fields are opaque
// digit strings; leading zeros are significant.
type VerificationRequest struct {
	NemIDCode string `json:"nemIdCode"`
	NemID     string `json:"nemId"`
}

// VerificationResult carries the semantic outcome. StatusCode is 200 on success
// and 403 on rejection; GeneratedCode is 0 when rejected.
type VerificationResult struct {
	GeneratedCode uint64 `json:"generatedCode"`
	StatusCode    int    `json:"statusCode"`
	Message       string `json:"message"`
}

// Rejected builds a 403 result with the given message.
func Rejected(msg string) VerificationResult {
	return VerificationResult{GeneratedCode: 0, StatusCode: 403, Message: msg}
}

// Generated builds a 200 result carrying code.
func Generated(code uint64) VerificationResult {
	return VerificationResult{GeneratedCode: code, StatusCode: 200, Message: MsgGenerated}
}
