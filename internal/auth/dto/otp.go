package dto

type RequestOtpInput struct {
	Email string `json:"email" validate:"required,email"`
}

type RequestOtpResponse struct {
	VerificationID string `json:"verification_id"`
	Message        string `json:"message"`
	TTLMinutes     int    `json:"ttl_minutes"`
}

type VerifyOtpInput struct {
	VerificationID string `json:"verification_id" validate:"required"`
	Otp            string `json:"otp" validate:"required"`
}

type VerifyOtpResponse struct {
	VerificationID              string `json:"verification_id"`
	Verified                    bool   `json:"verified"`
	ProfileCompletionTTLMinutes int    `json:"profile_completion_ttl_minutes"`
	Message                     string `json:"message"`
}

// OtpMailPayload is the message dropped on the mail queue; the dispatcher
// on the other side owns delivery, failures there are invisible here.
type OtpMailPayload struct {
	Email         string `json:"email"`
	Otp           string `json:"otp"`
	Type          string `json:"type"`
	Timestamp     int64  `json:"timestamp"`
	OtpTTLMinutes int    `json:"otpTtlMinutes"`
}
