// Package mailer delivers templated emails through a third-party service.
//
// A Sender makes one attempt per Send and reports failures as a
// *DeliveryError, which matches ErrDeliveryFailed with errors.Is. Providers:
// EmailJS (REST), Postmark and Amazon SES templated email, and a DevSender
// that writes JSON files. New picks one from Config.
package mailer
