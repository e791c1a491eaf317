// Package validator provides small, declarative validation rules with
// translation-friendly error metadata.
//
// Each exported helper returns a Rule: a Check func plus the ValidationError
// reported when the check fails. Rules are evaluated with Apply, which checks
// every field and keeps only the first failure of each field, so a form can
// show one message per input.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.MinLen("name", in.Name, 2),
//	    validator.ValidEmail("email", in.Email),
//	    validator.MinNum("amount", amount, 5.0).
//	        WithTranslation("validation.amount_min", map[string]any{"symbol": "$"}),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // render verrs.First("name") next to the input
//	}
//
// # Error Handling
//
// ValidationErrors implements error, so it can be detected with errors.As or
// IsValidationError while keeping per-field details.
package validator
