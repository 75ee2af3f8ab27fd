package steg

// Xor applies a repeating-key XOR to data and returns the transformed
// copy; the key cycles when shorter than the data. The transform is
// self-inverse: Xor(Xor(d, k), k) == d. An empty key fails with
// ErrInvalidKey.
func Xor(data, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrInvalidKey
	}
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ key[i%len(key)]
	}
	return out, nil
}
