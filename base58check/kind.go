package base58check

import (
	"errors"

	"github.com/treeforest/bitcoinutils/base58"
)

// 错误类别，供传输层返回给调用方
const (
	KindEncoding         = "encoding"
	KindInvalidCharacter = "invalid_character"
	KindInvalidAlphabet  = "invalid_alphabet"
	KindChecksumMismatch = "checksum_mismatch"
	KindMalformedInput   = "malformed_input"
	KindUnknown          = "unknown"
)

// Kind 将编解码错误映射为稳定的类别名
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, base58.ErrEncoding):
		return KindEncoding
	case errors.Is(err, base58.ErrInvalidCharacter):
		return KindInvalidCharacter
	case errors.Is(err, base58.ErrInvalidAlphabet):
		return KindInvalidAlphabet
	case errors.Is(err, ErrChecksumMismatch):
		return KindChecksumMismatch
	case errors.Is(err, ErrMalformedInput):
		return KindMalformedInput
	}
	return KindUnknown
}
