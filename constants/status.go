package constants

// User role
const (
	RoleUser      = 0
	RoleAdmin     = 1
	RoleOwner     = 2
	RoleModerator = 3
)

// User status
const (
	UserStatusInactive = 0
	UserStatusActive   = 1
	UserStatusBanned   = 2
)

// Bước của wizard đặt phòng (tuyến tính, không đi lùi)
const (
	WizardStepViewing          = 1
	WizardStepFormFilled       = 2
	WizardStepPaymentConfirmed = 3
	WizardStepSuccess          = 4
)
