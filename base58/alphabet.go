package base58

import (
	"github.com/pkg/errors"
)

const (
	// BitcoinAlphabetString base58 编码基数表(比特币)
	BitcoinAlphabetString = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

	radix = 58
)

// BitcoinAlphabet 默认字母表，包初始化时构建一次，之后只读
var BitcoinAlphabet = MustNewAlphabet(BitcoinAlphabetString)

// Alphabet 58 个互不相同的 ASCII 字符及其反向索引表
type Alphabet struct {
	encode string
	decode [256]int8 // 字符 => 位置，不存在为 -1
}

// NewAlphabet 构建字母表。长度必须为 58，字符必须为可打印 ASCII 且不重复。
func NewAlphabet(s string) (*Alphabet, error) {
	if len(s) != radix {
		return nil, errors.Wrapf(ErrInvalidAlphabet, "length %d, want %d", len(s), radix)
	}

	a := &Alphabet{encode: s}
	for i := range a.decode {
		a.decode[i] = -1
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= ' ' || c >= 0x7f {
			return nil, errors.Wrapf(ErrInvalidAlphabet, "symbol %#02x at %d is not printable ascii", c, i)
		}
		if a.decode[c] != -1 {
			return nil, errors.Wrapf(ErrInvalidAlphabet, "duplicate symbol %q at %d", c, i)
		}
		a.decode[c] = int8(i)
	}
	return a, nil
}

// MustNewAlphabet 同 NewAlphabet，出错时 panic
func MustNewAlphabet(s string) *Alphabet {
	a, err := NewAlphabet(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a *Alphabet) String() string {
	return a.encode
}

// Zero 零值字符，用于表示前导 0x00 字节
func (a *Alphabet) Zero() byte {
	return a.encode[0]
}

// Index 返回字符在字母表中的位置，不存在返回 -1
func (a *Alphabet) Index(c byte) int {
	return int(a.decode[c])
}
