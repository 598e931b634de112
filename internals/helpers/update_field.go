package helper

import "encoding/json"

// UpdateField membedakan tiga keadaan pada body PATCH:
// field tidak dikirim, dikirim null, atau dikirim dengan nilai.
type UpdateField[T any] struct {
	present bool
	null    bool
	value   T
}

func (f *UpdateField[T]) UnmarshalJSON(b []byte) error {
	f.present = true
	if string(b) == "null" {
		f.null = true
		return nil
	}
	return json.Unmarshal(b, &f.value)
}

func (f UpdateField[T]) ShouldUpdate() bool { return f.present }
func (f UpdateField[T]) IsNull() bool       { return f.null }
func (f UpdateField[T]) Val() T             { return f.value }
