// Package convert converts between Go values and value.Value by reflection.
//
// # Usage
//
//	type Service struct {
//		Name  string            `yaml:"name"`
//		Ports []int             `yaml:"ports,omitempty"`
//		Extra map[string]string `yaml:",inline"`
//	}
//
//	v, err := convert.ToValue(Service{Name: "web"})
//
//	var s Service
//	err = convert.FromValue(v, &s)
//
// Types may take over their own conversion by implementing Marshaler and
// Unmarshaler, or encoding.TextMarshaler and encoding.TextUnmarshaler to be
// converted as strings.
//
// # Errors
//
// FromValue reports a *TypeError when the shape of the value does not match
// the target and an *UnmarshalError for out of range numbers and invalid
// targets. ToValue reports a *MarshalError. Each carries the path of the
// offending field.
package convert
