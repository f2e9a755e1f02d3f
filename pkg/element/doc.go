// Package element holds the intermediate representation produced by the
// notification models. Each type mirrors one XML element of the tile/toast
// schema; Attributes returns the attribute list a serializer must emit, in
// schema order, omitting anything left at its default.
package element
