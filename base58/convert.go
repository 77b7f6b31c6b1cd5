package base58

// divmod 对大端字节序列反复除以 58，返回低位在前的 58 进制数字。
// 输入为 0(或为空)时返回空。
func divmod(b []byte) []byte {
	num := make([]byte, len(b))
	copy(num, b)

	digits := make([]byte, 0, len(b)*138/100+1)

	start := 0
	for start < len(num) && num[start] == 0 {
		start++
	}
	for start < len(num) {
		rem := 0
		for i := start; i < len(num); i++ {
			acc := rem<<8 | int(num[i])
			num[i] = byte(acc / radix)
			rem = acc % radix
		}
		digits = append(digits, byte(rem))

		for start < len(num) && num[start] == 0 {
			start++
		}
	}
	return digits
}

// mulAdd 对大端 58 进制数字执行 acc = acc*58 + d，返回低位在前的字节。
// 结果长度即数值的最小字节长度，数值为 0 时返回空。
func mulAdd(digits []byte) []byte {
	acc := make([]byte, 0, len(digits)*733/1000+1)
	for _, d := range digits {
		carry := int(d)
		for i := range acc {
			x := int(acc[i])*radix + carry
			acc[i] = byte(x)
			carry = x >> 8
		}
		for carry > 0 {
			acc = append(acc, byte(carry))
			carry >>= 8
		}
	}
	return acc
}
