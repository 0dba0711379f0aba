package types

import (
	"encoding/json"
	fmt "fmt"

	collcodec "cosmossdk.io/collections/codec"
)

// jsonValueCodec persists a hand-written state type as canonical JSON. The
// module's state records are plain structs with fixed fields, so Go's JSON
// encoding is deterministic for them.
type jsonValueCodec[V any] struct {
	name string
}

// JSONValueCodec returns a collections value codec for V under the given
// human-readable type name.
func JSONValueCodec[V any](name string) collcodec.ValueCodec[V] {
	return jsonValueCodec[V]{name: name}
}

func (c jsonValueCodec[V]) Encode(value V) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValueCodec[V]) Decode(b []byte) (V, error) {
	var value V
	if err := json.Unmarshal(b, &value); err != nil {
		return value, fmt.Errorf("failed to decode %s: %w", c.name, err)
	}
	return value, nil
}

func (c jsonValueCodec[V]) EncodeJSON(value V) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValueCodec[V]) DecodeJSON(b []byte) (V, error) {
	return c.Decode(b)
}

func (c jsonValueCodec[V]) Stringify(value V) string {
	return fmt.Sprintf("%v", value)
}

func (c jsonValueCodec[V]) ValueType() string {
	return c.name
}
