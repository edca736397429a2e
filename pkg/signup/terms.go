package signup

import "github.com/oarkflow/signup/pkg/models"

func (c *Controller) Terms() models.Terms {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.terms
}

// RestoreTerms seeds the terms state, for example from a cookie.
func (c *Controller) RestoreTerms(t models.Terms) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.terms = t
}

func (c *Controller) OpenTerms() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.terms.ModalOpen = true
}

// AcceptTerms closes the modal, enables the checkbox and checks it.
func (c *Controller) AcceptTerms() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.terms = models.Terms{Accepted: true}
}

// DeclineTerms closes the modal, unchecks the agreement and disables the
// checkbox until the terms are accepted.
func (c *Controller) DeclineTerms() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.terms = models.Terms{CheckboxDisabled: true}
}

// ToggleAgreement reflects the checkbox. It is ignored while the checkbox is
// disabled or the modal is open.
func (c *Controller) ToggleAgreement(checked bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.terms.CheckboxDisabled || c.terms.ModalOpen {
		return false
	}
	c.terms.Accepted = checked
	return true
}
