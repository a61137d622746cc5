// Package fieldkit is a pluggable field-type framework: many kinds of data
// (text, email, URL, phone, number, currency, single and multiple choice,
// checkbox, radio, image gallery) are declared once as field definitions and
// then uniformly rendered, sanitized, validated, formatted for display and
// serialized to flat scalar storage.
//
// The framework has three parts:
//
//   - Type: a stateless strategy implementing the render/sanitize/validate/
//     format/storage contract for one kind of value. Built-in implementations
//     live in the fieldtype subpackage; new kinds are added by implementing
//     Type and registering it, never by modifying the validator.
//
//   - Registry: an explicit catalog mapping type keys to Type implementations
//     and field names to Definitions. Registration is idempotent and
//     last-write-wins; Reset clears everything for test isolation.
//
//   - Validator: a stateless orchestrator that resolves each field through
//     its registry and aggregates per-field failures into one Errors
//     collection. Nothing here is fatal: unregistered names, unknown types
//     and malformed input are all validation errors to be displayed, never
//     panics.
//
// # Usage
//
//	reg := fieldkit.NewRegistry(fieldtype.Defaults()...)
//	reg.RegisterDefinition(fieldkit.Definition{
//		Name:     "contact_email",
//		Type:     "email",
//		Label:    "Contact Email",
//		Required: true,
//	})
//
//	v := fieldkit.NewValidator(reg)
//	result := v.ProcessFields(ctx, map[string]any{
//		"contact_email": "  Someone@Example.COM ",
//	})
//	if !result.Valid {
//		for field, messages := range result.Errors.ByField() {
//			// render messages next to field
//			_ = field
//			_ = messages
//		}
//	}
//
// # Error Handling
//
// Validation failures are plain data: an ordered Errors collection of
// (field, code, message) entries with stable string codes (CodeRequired,
// CodeInvalidEmail, ...). Errors implements the error interface so it can
// travel through error returns; AsErrors recovers it on the other side.
//
// # Concurrency
//
// The Registry is safe for concurrent use but is intended to be populated at
// bootstrap and read-mostly afterwards. Validator and every Type are
// stateless and safe to share.
package fieldkit
