package base58

import (
	"errors"
	"fmt"
)

var (
	// ErrEncoding 文本输入包含非 ASCII 字符
	ErrEncoding = errors.New("base58: input is not ascii")
	// ErrInvalidCharacter 解码时遇到字母表之外的字符
	ErrInvalidCharacter = errors.New("base58: invalid character")
	// ErrInvalidAlphabet 字母表不满足 58 个互不相同字符的要求
	ErrInvalidAlphabet = errors.New("base58: invalid alphabet")
)

// CharacterError 记录非法字符及其位置
type CharacterError struct {
	Char byte
	Pos  int
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("base58: invalid character %q at position %d", e.Char, e.Pos)
}

func (e *CharacterError) Unwrap() error {
	return ErrInvalidCharacter
}
