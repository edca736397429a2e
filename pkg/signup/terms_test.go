package signup

import (
	"testing"

	"github.com/oarkflow/signup/pkg/models"
)

func TestDeclineDisablesCheckbox(t *testing.T) {
	c := New(&fakeAccounts{}, &recorder{}, &recorder{}, nil, DefaultOptions())
	c.OpenTerms()
	c.DeclineTerms()

	terms := c.Terms()
	if !terms.CheckboxDisabled || terms.Accepted || terms.ModalOpen {
		t.Fatalf("terms after decline = %+v", terms)
	}
	if c.ToggleAgreement(true) {
		t.Fatal("toggle must be ignored while disabled")
	}
	if c.Terms().Accepted {
		t.Fatal("agreement must stay false")
	}
}

func TestAcceptEnablesCheckbox(t *testing.T) {
	c := New(&fakeAccounts{}, &recorder{}, &recorder{}, nil, DefaultOptions())
	c.DeclineTerms()
	c.OpenTerms()
	c.AcceptTerms()

	if got := c.Terms(); got != (models.Terms{Accepted: true}) {
		t.Fatalf("terms after accept = %+v", got)
	}
	if !c.ToggleAgreement(false) || c.Terms().Accepted {
		t.Fatal("checkbox should be toggleable after accept")
	}
}

func TestModalBlocksToggle(t *testing.T) {
	c := New(&fakeAccounts{}, &recorder{}, &recorder{}, nil, DefaultOptions())
	c.OpenTerms()
	if c.ToggleAgreement(true) {
		t.Fatal("toggle must be ignored while the modal is open")
	}
}
