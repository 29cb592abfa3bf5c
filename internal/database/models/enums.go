package models

// LocationType distinguishes the head office from branches
type LocationType string

const (
	LocationTypeHead   LocationType = "head"
	LocationTypeBranch LocationType = "branch"
)

// AssignmentRole is the role a personnel holds at a location
type AssignmentRole string

const (
	RoleGeneralManager AssignmentRole = "general manager"
	RoleDeputyManager  AssignmentRole = "deputy manager"
	RoleTreasurer      AssignmentRole = "treasurer"
	RoleSecretary      AssignmentRole = "secretary"
	RoleAdministrator  AssignmentRole = "administrator"
	RoleCoach          AssignmentRole = "coach"
	RoleAssistantCoach AssignmentRole = "assistant coach"
	RoleOther          AssignmentRole = "other"
)

// Mandate is the engagement type of a personnel assignment
type Mandate string

const (
	MandateSalaried  Mandate = "salaried"
	MandateVolunteer Mandate = "volunteer"
)

// Gender of a club member or team formation
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// PaymentMethod of a membership payment
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodCredit PaymentMethod = "credit"
	PaymentMethodDebit  PaymentMethod = "debit"
	PaymentMethodCheque PaymentMethod = "cheque"
)

// PaymentType distinguishes membership fees from explicit donations
type PaymentType string

const (
	PaymentTypeMembership PaymentType = "membership"
	PaymentTypeDonation   PaymentType = "donation"
)

// SessionType is the nature of a scheduled session
type SessionType string

const (
	SessionTypeTraining SessionType = "training"
	SessionTypeGame     SessionType = "game"
)

// SessionStatus tracks a session's lifecycle
type SessionStatus string

const (
	SessionStatusScheduled SessionStatus = "scheduled"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"
)

// Position a player can occupy in a team formation
type Position string

const (
	PositionSetter              Position = "Setter"
	PositionLibero              Position = "Libero"
	PositionOutsideHitter       Position = "Outside Hitter"
	PositionOppositeHitter      Position = "Opposite Hitter"
	PositionMiddleBlocker       Position = "Middle Blocker"
	PositionDefensiveSpecialist Position = "Defensive Specialist"
)

// KeyPositions are the four positions an all-round player must have covered
// in game sessions.
var KeyPositions = []Position{
	PositionSetter,
	PositionLibero,
	PositionOutsideHitter,
	PositionOppositeHitter,
}

// EmailType categorizes logged communications
type EmailType string

const (
	EmailTypeGeneral             EmailType = "general"
	EmailTypeSessionNotification EmailType = "session_notification"
	EmailTypePaymentReminder     EmailType = "payment_reminder"
)

// EmailStatus is the delivery outcome of a logged email
type EmailStatus string

const (
	EmailStatusSent   EmailStatus = "sent"
	EmailStatusFailed EmailStatus = "failed"
)
