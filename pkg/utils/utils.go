package utils

import "github.com/treeforest/bitcoinutils/base58check"

// IsValidCheck 判断 s 是否为 codec 下校验码正确的 base58check 字符串，codec 为 nil 时使用默认编解码器
func IsValidCheck(codec *base58check.Codec, s string) bool {
	if codec == nil {
		codec = base58check.Default
	}
	_, err := codec.DecodeString(s)
	return err == nil
}
