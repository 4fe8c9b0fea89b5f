package constant

const (
	DefaultTokenType = "Bearer"
	DefaultUserRole  = "USER"
)

// Redis key prefixes for the verification lifecycle. The verification ID is
// appended to each prefix; absence of a key means the TTL has elapsed.
const (
	OtpKeyPrefix            = "otp:"
	VerificationEmailPrefix = "verification:email:"
	VerifiedPrefix          = "verified:"
	OtpAttemptsPrefix       = "otp:attempts:"
	OtpRequestCountPrefix   = "otp:request:count:"
)

const (
	EmailQueueName = "queue:email"
	OtpMailType    = "OTP_VERIFICATION"
)
