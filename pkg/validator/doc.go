// Package validator provides a lightweight rule-based validation framework
// used by the domain stores and quote construction.
//
// Validation is expressed as a list of rules applied together, with every
// failing rule collected into a single ValidationErrors value:
//
//	err := validator.Apply(
//		validator.Required("username", username),
//		validator.MinNum("duration", duration, 1),
//	)
//	if err != nil {
//		var ve validator.ValidationErrors
//		if errors.As(err, &ve) {
//			for _, fe := range ve {
//				fmt.Println(fe.Field, fe.Message)
//			}
//		}
//	}
//
// Rules are plain closures over the value under test, so callers can add
// domain-specific checks without extending this package.
package validator
