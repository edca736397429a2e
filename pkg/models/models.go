package models

import "time"

type Gender string

const (
	GenderUnset  Gender = ""
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Genders lists the selectable options in display order.
var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

// Registration holds the values of a single signup submission. It lives only
// for the duration of the account request.
type Registration struct {
	Email     string `json:"email" form:"email" validate:"required,email"`
	Password  string `json:"password" form:"password" validate:"required"`
	Confirm   string `json:"-" form:"confirm" validate:"required,eqfield=Password"`
	Username  string `json:"username" form:"username" validate:"required,notblank"`
	Nickname  string `json:"nickname" form:"nickname" validate:"required,notblank"`
	Gender    Gender `json:"gender,omitempty" form:"gender" validate:"omitempty,oneof=Male Female Other"`
	Agreement bool   `json:"-" form:"agreement" validate:"accepted"`
}

// AccountPayload is the body sent to the account API.
type AccountPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
	Gender   Gender `json:"gender,omitempty"`
}

func (r Registration) Payload() AccountPayload {
	return AccountPayload{
		Email:    r.Email,
		Password: r.Password,
		Username: r.Username,
		Nickname: r.Nickname,
		Gender:   r.Gender,
	}
}

type NotificationType string

const (
	NotificationLoading NotificationType = "loading"
	NotificationSuccess NotificationType = "success"
	NotificationInfo    NotificationType = "info"
	NotificationError   NotificationType = "error"
)

// Notification is a transient status message. Messages sharing a Key replace
// each other. Offset is the delay after submission at which it is shown.
type Notification struct {
	Key      string           `json:"key"`
	Type     NotificationType `json:"type"`
	Content  string           `json:"content"`
	Duration time.Duration    `json:"duration"`
	Offset   time.Duration    `json:"offset"`
}

type Redirect struct {
	URL    string        `json:"url"`
	Offset time.Duration `json:"offset"`
}

// Terms is the state of the agreement checkbox and the terms modal.
type Terms struct {
	ModalOpen        bool `json:"modal_open"`
	Accepted         bool `json:"accepted"`
	CheckboxDisabled bool `json:"checkbox_disabled"`
}

type ErrorPageData struct {
	Title       string
	StatusCode  int
	Message     string
	Description string
	Technical   string
	RetryURL    string
	ErrorID     string
}
