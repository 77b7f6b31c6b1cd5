package client

import (
	"encoding/hex"
	"flag"
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/treeforest/bitcoinutils/base58"
	"github.com/treeforest/bitcoinutils/base58check"
)

// Codec 本地或远程的编解码实现
type Codec interface {
	Encode(data []byte) (string, error)
	Decode(s string) ([]byte, error)
	EncodeCheck(data []byte) (string, error)
	DecodeCheck(s string) ([]byte, error)
}

// LocalCodec 在进程内完成编解码
type LocalCodec struct {
	alphabet *base58.Alphabet
	check    *base58check.Codec
}

func NewLocalCodec(alphabet *base58.Alphabet) *LocalCodec {
	return &LocalCodec{
		alphabet: alphabet,
		check:    &base58check.Codec{Alphabet: alphabet, Hash: base58check.Default.Hash},
	}
}

func (l *LocalCodec) Encode(data []byte) (string, error) {
	return string(l.alphabet.Encode(data)), nil
}

func (l *LocalCodec) Decode(s string) ([]byte, error) {
	return l.alphabet.DecodeString(s)
}

func (l *LocalCodec) EncodeCheck(data []byte) (string, error) {
	return string(l.check.Encode(data)), nil
}

func (l *LocalCodec) DecodeCheck(s string) ([]byte, error) {
	return l.check.DecodeString(s)
}

func parseCommand(f *flag.FlagSet, args []string) bool {
	f.SetOutput(ioutil.Discard)
	if err := f.Parse(args); err != nil {
		return false
	}
	return f.Parsed()
}

// parseInput 将命令行输入转为字节，isHex 为 false 时按 ASCII 文本处理
func parseInput(data string, isHex bool) ([]byte, error) {
	if !isHex {
		return base58.ForceBytes(data)
	}
	b, err := hex.DecodeString(data)
	if err != nil {
		return nil, errors.Wrap(err, "invalid hex data")
	}
	return b, nil
}
