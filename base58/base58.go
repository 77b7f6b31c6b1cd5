// Package base58 implements the Base58 binary-to-text encoding used for
// Bitcoin addresses and keys.
package base58

import "encoding/binary"

// Encode 使用比特币字母表编码
func Encode(b []byte) []byte {
	return BitcoinAlphabet.Encode(b)
}

// EncodeString 文本必须为 ASCII
func EncodeString(s string) ([]byte, error) {
	return BitcoinAlphabet.EncodeString(s)
}

// Decode 使用比特币字母表解码
func Decode(b []byte) ([]byte, error) {
	return BitcoinAlphabet.Decode(b)
}

// DecodeString 文本必须为 ASCII
func DecodeString(s string) ([]byte, error) {
	return BitcoinAlphabet.DecodeString(s)
}

// EncodeUint64 使用比特币字母表编码整数 n
func EncodeUint64(n uint64) []byte {
	return BitcoinAlphabet.EncodeUint64(n)
}

// EncodeUint64 将 n 转换为 58 进制，没有前导零值字符，0 编码为空。
func (a *Alphabet) EncodeUint64(n uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], n)

	digits := divmod(b[:])
	dst := make([]byte, len(digits))
	for i, d := range digits {
		dst[len(dst)-1-i] = a.encode[d]
	}
	return dst
}

// Encode 将 b 视为大端无符号整数转换为 58 进制，前导 0x00 字节逐个映射为零值字符。
func (a *Alphabet) Encode(b []byte) []byte {
	zeros := 0
	for zeros < len(b) && b[zeros] == 0 {
		zeros++
	}

	digits := divmod(b[zeros:])

	dst := make([]byte, zeros+len(digits))
	for i := 0; i < zeros; i++ {
		dst[i] = a.Zero()
	}
	// digits 低位在前，需要反转
	for i, d := range digits {
		dst[len(dst)-1-i] = a.encode[d]
	}
	return dst
}

func (a *Alphabet) EncodeString(s string) ([]byte, error) {
	b, err := ForceBytes(s)
	if err != nil {
		return nil, err
	}
	return a.Encode(b), nil
}

// Decode 是 Encode 的逆运算，前导零值字符逐个还原为 0x00 字节。
func (a *Alphabet) Decode(b []byte) ([]byte, error) {
	zeros := 0
	for zeros < len(b) && b[zeros] == a.Zero() {
		zeros++
	}

	digits := make([]byte, len(b)-zeros)
	for i, c := range b[zeros:] {
		d := a.Index(c)
		if d < 0 {
			return nil, &CharacterError{Char: c, Pos: zeros + i}
		}
		digits[i] = byte(d)
	}

	value := mulAdd(digits)

	dst := make([]byte, zeros+len(value))
	// value 低位在前
	for i, v := range value {
		dst[len(dst)-1-i] = v
	}
	return dst, nil
}

func (a *Alphabet) DecodeString(s string) ([]byte, error) {
	b, err := ForceBytes(s)
	if err != nil {
		return nil, err
	}
	return a.Decode(b)
}
