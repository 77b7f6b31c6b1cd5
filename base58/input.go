package base58

import (
	"github.com/pkg/errors"
)

// ForceBytes 将文本按严格的 7 位 ASCII 转为字节
func ForceBytes(s string) ([]byte, error) {
	for i, r := range s {
		if r >= 0x80 {
			return nil, errors.Wrapf(ErrEncoding, "rune %q at byte offset %d", r, i)
		}
	}
	return []byte(s), nil
}
