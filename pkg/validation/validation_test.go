package validation

import (
	"reflect"
	"testing"

	"github.com/oarkflow/signup/pkg/models"
)

func validRegistration() models.Registration {
	return models.Registration{
		Email:     "ada@example.com",
		Password:  "lovelace",
		Confirm:   "lovelace",
		Username:  "ada",
		Nickname:  "Countess",
		Gender:    models.GenderFemale,
		Agreement: true,
	}
}

func TestValidateAcceptsCompleteRegistration(t *testing.T) {
	if errs := Validate(validRegistration()); errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateGenderIsOptional(t *testing.T) {
	r := validRegistration()
	r.Gender = models.GenderUnset
	if errs := Validate(r); errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateFieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Registration)
		field  string
		want   string
	}{
		{"missing email", func(r *models.Registration) { r.Email = "" }, "email", MsgEmailRequired},
		{"malformed email", func(r *models.Registration) { r.Email = "not-a-letter" }, "email", MsgEmailShape},
		{"missing password", func(r *models.Registration) { r.Password = ""; r.Confirm = "" }, "password", MsgPassword},
		{"missing confirm", func(r *models.Registration) { r.Confirm = "" }, "confirm", MsgConfirm},
		{"mismatched confirm", func(r *models.Registration) { r.Confirm = "babbage" }, "confirm", MsgConfirm},
		{"missing username", func(r *models.Registration) { r.Username = "" }, "username", MsgUsername},
		{"blank username", func(r *models.Registration) { r.Username = "   " }, "username", MsgUsername},
		{"blank nickname", func(r *models.Registration) { r.Nickname = "\t" }, "nickname", MsgNickname},
		{"unknown gender", func(r *models.Registration) { r.Gender = "Human" }, "gender", MsgGender},
		{"agreement unchecked", func(r *models.Registration) { r.Agreement = false }, "agreement", MsgAgreement},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRegistration()
			tt.mutate(&r)
			errs := Validate(r)
			if got := errs[tt.field]; got != tt.want {
				t.Fatalf("%s: got %q, want %q (all: %v)", tt.field, got, tt.want, errs)
			}
		})
	}
}

func TestErrorsFollowFormOrder(t *testing.T) {
	errs := Validate(models.Registration{})
	want := []string{"email", "password", "confirm", "username", "nickname", "agreement"}
	if got := errs.Fields(); !reflect.DeepEqual(got, want) {
		t.Fatalf("fields = %v, want %v", got, want)
	}
	field, msg := errs.First()
	if field != "email" || msg != MsgEmailRequired {
		t.Fatalf("first = %q %q", field, msg)
	}
}
