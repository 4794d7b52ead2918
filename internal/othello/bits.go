package othello

func getBit(plane uint64, index int) bool {
	return plane&(uint64(1)<<index) != 0
}

func setBit(plane *uint64, index int) {
	*plane |= uint64(1) << index
}
