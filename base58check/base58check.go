// Package base58check appends a double SHA-256 checksum to a payload
// before Base58 encoding it, and verifies it when decoding.
package base58check

import (
	"bytes"
	"errors"

	"github.com/minio/sha256-simd"
	"github.com/treeforest/bitcoinutils/base58"
)

// ChecksumLen 校验码长度
const ChecksumLen = 4

var (
	// ErrChecksumMismatch 重新计算的校验码与编码中携带的不一致
	ErrChecksumMismatch = errors.New("base58check: checksum mismatch")
	// ErrMalformedInput 解码结果不足以容纳校验码
	ErrMalformedInput = errors.New("base58check: decoded data shorter than checksum")
)

// HashFunc 256 位哈希，校验码为其连续执行两次后的前 4 字节
type HashFunc func(data []byte) [32]byte

// Codec 字母表与哈希均可替换的 Base58Check 编解码器
type Codec struct {
	Alphabet *base58.Alphabet
	Hash     HashFunc
}

// Default 比特币字母表 + SHA-256
var Default = &Codec{Alphabet: base58.BitcoinAlphabet, Hash: sha256.Sum256}

// Encode 使用默认编解码器编码 payload 及其校验码
func Encode(payload []byte) []byte {
	return Default.Encode(payload)
}

// EncodeString 文本必须为 ASCII
func EncodeString(s string) ([]byte, error) {
	return Default.EncodeString(s)
}

// Decode 使用默认编解码器解码并验证校验码
func Decode(b []byte) ([]byte, error) {
	return Default.Decode(b)
}

// DecodeString 文本必须为 ASCII
func DecodeString(s string) ([]byte, error) {
	return Default.DecodeString(s)
}

// Checksum 使用 SHA-256 计算 payload 的校验码
func Checksum(payload []byte) [ChecksumLen]byte {
	return Default.Checksum(payload)
}

// alphabet 未设置时使用比特币字母表
func (c *Codec) alphabet() *base58.Alphabet {
	if c.Alphabet == nil {
		return base58.BitcoinAlphabet
	}
	return c.Alphabet
}

// hash 未设置时使用 SHA-256
func (c *Codec) hash(data []byte) [32]byte {
	if c.Hash == nil {
		return sha256.Sum256(data)
	}
	return c.Hash(data)
}

// Checksum Hash 为空时使用 SHA-256
func (c *Codec) Checksum(payload []byte) (cksum [ChecksumLen]byte) {
	// 执行两次哈希
	hash := c.hash(payload)
	hash2 := c.hash(hash[:])
	copy(cksum[:], hash2[:ChecksumLen])
	return
}

// Encode 编码 payload || checksum
func (c *Codec) Encode(payload []byte) []byte {
	cksum := c.Checksum(payload)
	buf := make([]byte, 0, len(payload)+ChecksumLen)
	buf = append(buf, payload...)
	buf = append(buf, cksum[:]...)
	return c.alphabet().Encode(buf)
}

func (c *Codec) EncodeString(s string) ([]byte, error) {
	b, err := base58.ForceBytes(s)
	if err != nil {
		return nil, err
	}
	return c.Encode(b), nil
}

// Decode 解码并验证校验码，成功时返回去掉校验码的 payload
func (c *Codec) Decode(b []byte) ([]byte, error) {
	decoded, err := c.alphabet().Decode(b)
	if err != nil {
		return nil, err
	}
	if len(decoded) < ChecksumLen {
		return nil, ErrMalformedInput
	}

	payload := decoded[:len(decoded)-ChecksumLen]
	cksum := c.Checksum(payload)
	if !bytes.Equal(cksum[:], decoded[len(decoded)-ChecksumLen:]) {
		return nil, ErrChecksumMismatch
	}
	return payload, nil
}

func (c *Codec) DecodeString(s string) ([]byte, error) {
	b, err := base58.ForceBytes(s)
	if err != nil {
		return nil, err
	}
	return c.Decode(b)
}
