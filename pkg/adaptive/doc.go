// Package adaptive defines the adaptive text model and the helpers shared by
// image elements. Models validate their inputs when fields are assigned, so
// converting a model into its element form never fails for values that went
// through the setters. The only exception is a required field that was never
// assigned at all, reported through ErrMissingField.
//
// Models are meant to be owned by a single caller while they are configured.
// Conversion does not mutate the model, so a frozen instance may be converted
// concurrently.
package adaptive
