package xip

import (
	"fmt"
	"net/netip"
	"strings"
)

// 手写文法校验器。不使用 netip.ParseAddr 做校验，因为本包接受的文法与
// 标准库有意不同：
//   - 校验函数容忍可选的 "/prefix" 后缀（IsIPv4/IsIPv6/IsIPAddress）
//   - IPv4 八位段允许前导零（"010.1.1.1"），与 Sanitize 的
//     "IPv4 原样返回" 语义保持一致
//   - 点分尾缀仅接受 "::a.b.c.d" 与 "::ffff:a.b.c.d" 两种文本形式，
//     SIIT（::ffff:0:a.b.c.d）与 NAT64（64:ff9b::a.b.c.d）转换形式被拒绝
//   - IPv6 zone ID（fe80::1%eth0）被拒绝，理由同 xnet：排序键与范围
//     匹配会静默丢弃 zone 信息

const (
	prefixBitsV4 = 32
	prefixBitsV6 = 128
)

// IsIPv4 报告 s 是否为语法正确的 IPv4 地址或 IPv4 CIDR 块。
// 格式错误时返回 false，从不报错。
func IsIPv4(s string) bool {
	addrPart, suffix, hasSlash := strings.Cut(s, "/")
	if hasSlash {
		if p, ok := atoiPrefix(suffix); !ok || p > prefixBitsV4 {
			return false
		}
	}
	_, ok := parseIPv4(addrPart)
	return ok
}

// IsIPv6 报告 s 是否为语法正确的 IPv6 地址或 IPv6 CIDR 块。
// 格式错误时返回 false，从不报错。
func IsIPv6(s string) bool {
	addrPart, suffix, hasSlash := strings.Cut(s, "/")
	if hasSlash {
		if p, ok := atoiPrefix(suffix); !ok || p > prefixBitsV6 {
			return false
		}
	}
	_, ok := parseIPv6(addrPart)
	return ok
}

// IsIPAddress 报告 s 是否为任一地址族的地址或 CIDR 块。
func IsIPAddress(s string) bool {
	return IsIPv4(s) || IsIPv6(s)
}

// IsValidAddress 报告 s 是否为单个地址（不带 CIDR 后缀）。
func IsValidAddress(s string) bool {
	if strings.Contains(s, "/") {
		return false
	}
	if _, ok := parseIPv4(s); ok {
		return true
	}
	_, ok := parseIPv6(s)
	return ok
}

// IsValidBlock 报告 s 是否为 "地址/前缀" 形式的 CIDR 块，
// 且前缀长度在地址族的位宽之内。
func IsValidBlock(s string) bool {
	addrPart, suffix, hasSlash := strings.Cut(s, "/")
	if !hasSlash {
		return false
	}
	p, ok := atoiPrefix(suffix)
	if !ok {
		return false
	}
	if _, ok := parseIPv4(addrPart); ok {
		return p <= prefixBitsV4
	}
	if _, ok := parseIPv6(addrPart); ok {
		return p <= prefixBitsV6
	}
	return false
}

// ParseAddr 将单个地址解析为 [netip.Addr]。
// 接受本包文法的 IPv4 与 IPv6 形式；不接受 CIDR 后缀。
// 解析失败返回 [ErrInvalidAddress]。
func ParseAddr(s string) (netip.Addr, error) {
	if q, ok := parseIPv4(s); ok {
		return netip.AddrFrom4(q), nil
	}
	if w, ok := parseIPv6(s); ok {
		return wordsToAddr(w), nil
	}
	return netip.Addr{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
}

// parseIPv4 按字节扫描点分十进制形式。
// 每段 1-3 位十进制数字，取值 0-255，允许前导零。
func parseIPv4(s string) ([4]byte, bool) {
	var b [4]byte
	part, digits, val := 0, 0, 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits++
			if digits > 3 {
				return b, false
			}
			val = val*10 + int(c-'0')
			if val > 255 {
				return b, false
			}
		case c == '.':
			if digits == 0 || part == 3 {
				return b, false
			}
			b[part] = byte(val)
			part++
			val, digits = 0, 0
		default:
			return b, false
		}
	}
	if part != 3 || digits == 0 {
		return b, false
	}
	b[3] = byte(val)
	return b, true
}

// parseIPv6 是严格的 IPv6 校验文法：至多一个 ::，每组 1-4 位十六进制，
// 点分尾缀仅限 "::a.b.c.d" 与 "::ffff:a.b.c.d"。
func parseIPv6(s string) ([8]uint16, bool) {
	var words [8]uint16
	if strings.Contains(s, ".") {
		rest, ok := strings.CutPrefix(s, "::")
		if !ok {
			return words, false
		}
		if quad, ok := parseIPv4(rest); ok {
			return wordsWithQuad(0, quad), true
		}
		if len(rest) > 5 && strings.EqualFold(rest[:5], "ffff:") {
			if quad, ok := parseIPv4(rest[5:]); ok {
				return wordsWithQuad(0xffff, quad), true
			}
		}
		return words, false
	}
	return parseHexGroups(s)
}

// parseHexGroups 解析纯冒号十六进制形式（无点分尾缀）。
func parseHexGroups(s string) ([8]uint16, bool) {
	var words [8]uint16
	if s == "" {
		return words, false
	}
	if s == "::" {
		return words, true
	}
	head, tail, compressed := strings.Cut(s, "::")
	if compressed && strings.Contains(tail, "::") {
		return words, false
	}
	hg, ok := splitGroups(head)
	if !ok {
		return words, false
	}
	tg, ok := splitGroups(tail)
	if !ok {
		return words, false
	}
	if compressed {
		// :: 必须至少压缩一个零组
		if len(hg)+len(tg) >= 8 {
			return words, false
		}
	} else if len(hg) != 8 {
		return words, false
	}
	copy(words[:], hg)
	copy(words[8-len(tg):], tg)
	return words, true
}

// splitGroups 将 ":" 分隔的组序列解析为 16 位字。空串返回空序列。
func splitGroups(s string) ([]uint16, bool) {
	if s == "" {
		return nil, true
	}
	parts := strings.Split(s, ":")
	groups := make([]uint16, 0, len(parts))
	for _, p := range parts {
		w, ok := hexWord(p)
		if !ok {
			return nil, false
		}
		groups = append(groups, w)
	}
	return groups, true
}

// hexWord 解析 1-4 位十六进制数字（大小写均可）。
func hexWord(s string) (uint16, bool) {
	if len(s) == 0 || len(s) > 4 {
		return 0, false
	}
	var v uint16
	for i := 0; i < len(s); i++ {
		d, ok := hexDigit(s[i])
		if !ok {
			return 0, false
		}
		v = v<<4 | uint16(d)
	}
	return v, true
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func isHexString(s string) bool {
	for i := 0; i < len(s); i++ {
		if _, ok := hexDigit(s[i]); !ok {
			return false
		}
	}
	return len(s) > 0
}

// wordsWithQuad 构造低 32 位嵌入 IPv4 的字序列，words[5] 为 0 或 0xffff。
func wordsWithQuad(w5 uint16, quad [4]byte) [8]uint16 {
	var words [8]uint16
	words[5] = w5
	words[6] = uint16(quad[0])<<8 | uint16(quad[1])
	words[7] = uint16(quad[2])<<8 | uint16(quad[3])
	return words
}

// atoiPrefix 解析 CIDR 前缀长度：1-3 位纯十进制数字，不做上界检查。
func atoiPrefix(s string) (int, bool) {
	if len(s) == 0 || len(s) > 3 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
