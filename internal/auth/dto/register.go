package dto

// FinalRegisterInput completes a registration whose email was already
// proven through the OTP exchange identified by VerificationID.
type FinalRegisterInput struct {
	VerificationID  string `json:"verification_id" validate:"required"`
	FullName        string `json:"full_name" validate:"required"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	ProfileImage    string `json:"profile_image,omitempty"`
	EmailSubscribed bool   `json:"email_subscribed"`
}

type ChangePasswordInput struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}
