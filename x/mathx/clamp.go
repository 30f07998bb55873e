package mathx

import "golang.org/x/exp/constraints"

// Between reports lo <= v && v <= hi (order-insensitive).
func Between[T constraints.Ordered](v, lo, hi T) bool {
	if hi < lo {
		lo, hi = hi, lo
	}
	return v >= lo && v <= hi
}

// FieldMax returns the largest value a register field of the given width holds.
func FieldMax[T constraints.Unsigned](width uint8) T {
	if int(width) >= 8*sizeOf[T]() {
		return ^T(0)
	}
	return T(1)<<width - 1
}

func sizeOf[T constraints.Unsigned]() int {
	var z T
	n := 0
	for v := ^z; v != 0; v >>= 8 {
		n++
	}
	return n
}
