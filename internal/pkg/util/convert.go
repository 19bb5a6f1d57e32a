package util

import (
	"strconv"
)

func StrSliceToUInt64Slice(strs []string) ([]uint64, error) {
	out := make([]uint64, 0, len(strs))
	for _, s := range strs {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
