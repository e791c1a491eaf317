// Package forms implements the contact and donation form pipeline.
//
// A submission is validated (ValidateContact, ValidateDonation), turned
// into email template parameters by a Composer, delivered once through a
// mailer.Sender and recorded on the form instance's Machine:
//
//	idle -> submitting -> success | error -> idle (after ResetAfter)
//
// Submits are only accepted while idle. Delivered contact messages emit a
// contact_form analytics event; delivered donations emit a donation event
// and then yield the payment link built by RedirectBuilder.
package forms
