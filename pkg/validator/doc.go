// Package validator validates structs using `validate` tags and reports
// failures as a flat list of field errors.
//
// It wraps github.com/go-playground/validator/v10. Field names in reported
// errors come from the `form` tag (falling back to `json`, then the Go field
// name), so they match what the client actually sent.
//
//	type SignupRequest struct {
//	    Email string `form:"email" validate:"required,email"`
//	}
//
//	if err := validator.ValidateStruct(&req); err != nil {
//	    if validator.IsValidationError(err) {
//	        ve := validator.ExtractValidationErrors(err)
//	        // ve.Fields() == []string{"email"}
//	    }
//	}
package validator
