package requests

import (
	"encoding/json"
	"strconv"

	"github.com/oarkflow/signup/pkg/models"
	"github.com/oarkflow/signup/pkg/utils"
)

// Checkbox accepts an HTML checkbox value from a form or a boolean from JSON.
type Checkbox string

func (c *Checkbox) UnmarshalJSON(b []byte) error {
	var v bool
	if err := json.Unmarshal(b, &v); err == nil {
		*c = Checkbox(strconv.FormatBool(v))
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*c = Checkbox(s)
	return nil
}

type SignupRequest struct {
	Email     string   `json:"email" form:"email"`
	Password  string   `json:"password" form:"password"`
	Confirm   string   `json:"confirm" form:"confirm"`
	Username  string   `json:"username" form:"username"`
	Nickname  string   `json:"nickname" form:"nickname"`
	Gender    string   `json:"gender" form:"gender"`
	Agreement Checkbox `json:"agreement" form:"agreement"`
}

func (r SignupRequest) Agreed() bool {
	return utils.IsChecked(string(r.Agreement))
}

func (r SignupRequest) Registration() models.Registration {
	return models.Registration{
		Email:     r.Email,
		Password:  r.Password,
		Confirm:   r.Confirm,
		Username:  r.Username,
		Nickname:  r.Nickname,
		Gender:    models.Gender(r.Gender),
		Agreement: r.Agreed(),
	}
}
