package game

// Symmetries returns the distinct images of s under the symmetries of the
// square: each of the four rotations, alone and mirrored horizontally and
// vertically. Strings that are not Cells long have no images but themselves.
// It is used for boards and for filter patterns alike.
func Symmetries(s string) []string {
	if len(s) != Cells {
		return []string{s}
	}

	seen := make(map[string]struct{}, 8)
	images := make([]string, 0, 8)
	add := func(image string) {
		if _, ok := seen[image]; !ok {
			seen[image] = struct{}{}
			images = append(images, image)
		}
	}

	current := s
	for i := 0; i < 4; i++ {
		if i > 0 {
			current = rotate(current)
		}
		add(current)
		add(mirrorH(current))
		add(mirrorV(current))
	}
	return images
}

// Canonicalize returns the lexicographically smallest symmetric image of b.
func Canonicalize(b Board) Board {
	images := Symmetries(string(b))
	least := images[0]
	for _, image := range images[1:] {
		if image < least {
			least = image
		}
	}
	return Board(least)
}

// rotate turns the grid a quarter clockwise
func rotate(s string) string {
	var r [Cells]byte
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			r[i*Size+j] = s[(Size-j-1)*Size+i]
		}
	}
	return string(r[:])
}

// mirrorH reverses every row
func mirrorH(s string) string {
	var r [Cells]byte
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			r[i*Size+j] = s[i*Size+Size-1-j]
		}
	}
	return string(r[:])
}

// mirrorV reverses the row order
func mirrorV(s string) string {
	var r [Cells]byte
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			r[i*Size+j] = s[(Size-1-i)*Size+j]
		}
	}
	return string(r[:])
}
