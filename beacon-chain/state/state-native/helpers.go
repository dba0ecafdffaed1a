package state_native

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return cp
}

func copy2dBytes(b [][]byte) [][]byte {
	if b == nil {
		return nil
	}
	cp := make([][]byte, len(b))
	for i, r := range b {
		cp[i] = copyBytes(r)
	}
	return cp
}
