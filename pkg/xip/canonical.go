package xip

import (
	"fmt"
	"strings"
)

// Sanitize 规范化地址的文本形式。
//
//   - 去除首尾空白；结果为空返回 [ErrEmptyInput]
//   - 不含冒号的输入（IPv4 或任意非 IPv6 文本）原样返回，不做数值重排
//   - IPv6 输入转为大写，展开 ::，逐组去除前导零（全零组保留为 "0"），
//     仅当输入本身使用了 :: 缩写时恢复最长零段的 :: 缩写
//   - "/后缀" 原样透传
//
// 设计决策: :: 缩写按输入风格保留。展开后无条件重新压缩会破坏
// "FE80:0000:...:8329 → FE80:0:0:0:202:B3FF:FE1E:8329" 的既有输出，
// 而完全不压缩又会把 "::1" 拉长为 "0:0:0:0:0:0:0:1"；两者都是被
// 依赖的行为。变换是纯文本的，不做合法性校验。
func Sanitize(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyInput
	}
	if !strings.Contains(s, ":") {
		return s, nil
	}
	addrPart, suffix, hasSlash := strings.Cut(s, "/")
	out := sanitizeIPv6(addrPart)
	if hasSlash {
		return out + "/" + suffix, nil
	}
	return out, nil
}

// sanitizeIPv6 对单个 IPv6 文本做大写、展开、去零、按需再压缩。
func sanitizeIPv6(s string) string {
	up := strings.ToUpper(s)
	compressed := strings.Contains(up, "::")
	parts := strings.Split(expandZeros(up), ":")
	for i, p := range parts {
		p = strings.TrimLeft(p, "0")
		if p == "" {
			p = "0"
		}
		parts[i] = p
	}
	if compressed {
		return compressZeros(parts)
	}
	return strings.Join(parts, ":")
}

// expandZeros 将 :: 缩写展开为完整的 8 组形式。
// 需插入的零组数量 = 8 - 显式组数。首部与尾部缩写的拼接比中间缩写
// 少一个冒号，三种位置分支必须分别处理。
func expandZeros(s string) string {
	i := strings.Index(s, "::")
	if i < 0 {
		return s
	}
	if s == "::" {
		return "0:0:0:0:0:0:0:0"
	}
	groups := 0
	for _, p := range strings.Split(s, ":") {
		if p != "" {
			groups++
		}
	}
	missing := 8 - groups
	if missing <= 0 {
		// 组数已满或超限的畸形输入不展开，原样交回
		return s
	}
	zeros := strings.TrimSuffix(strings.Repeat("0:", missing), ":")
	switch {
	case i == 0:
		return zeros + s[1:]
	case i == len(s)-2:
		return s[:len(s)-1] + zeros
	default:
		return s[:i+1] + zeros + s[i+1:]
	}
}

// compressZeros 将最长的连续零组段（并列取最左）恢复为 :: 缩写。
// 不足两组时保持展开形式（RFC 5952 不允许 :: 表示单个零组）。
func compressZeros(parts []string) string {
	best, bestLen, cur, curLen := -1, 0, -1, 0
	for i, p := range parts {
		if p != "0" {
			cur, curLen = -1, 0
			continue
		}
		if cur < 0 {
			cur = i
		}
		curLen++
		if curLen > bestLen {
			best, bestLen = cur, curLen
		}
	}
	if bestLen < 2 {
		return strings.Join(parts, ":")
	}
	head := strings.Join(parts[:best], ":")
	tail := strings.Join(parts[best+bestLen:], ":")
	return head + "::" + tail
}

// ToIPv4 尝试把输入规约为纯 IPv4 文本形式。
//
//   - 已是合法 IPv4：原样返回
//   - IPv6 环回（全零前缀、末字为 1）：返回 "127.0.0.1"
//   - IPv4-mapped / IPv4-compatible（前 5 字为零、第 6 字为 0 或 ffff）：
//     提取低 32 位返回
//   - 其余返回 ("", false)，表示不可表示为 IPv4
//
// 内部解析比校验文法宽松：点分尾缀可以跟在任意十六进制组之后，因此
// 校验器拒绝的展开 mapped 形式（如 "0:0:0:0:0:ffff:1.2.3.4"）在这里
// 仍可恢复出 IPv4。SIIT/NAT64 前缀因字模式不符依旧不可恢复。
// 这一不对称与校验器行为相互咬合，被范围分类逻辑依赖，须保持原状。
func ToIPv4(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if _, ok := parseIPv4(s); ok {
		return s, true
	}
	words, ok := parseIPv6Lenient(s)
	if !ok {
		return "", false
	}
	if isLoopbackWords(words) {
		return "127.0.0.1", true
	}
	if words[0]|words[1]|words[2]|words[3]|words[4] != 0 {
		return "", false
	}
	if words[5] != 0 && words[5] != 0xffff {
		return "", false
	}
	v := uint32(words[6])<<16 | uint32(words[7])
	return AddrFromUint32(v).String(), true
}

// IPv4ToIPv6 将 IPv4 地址（可带 CIDR 后缀）直接嵌入 IPv6 的低 32 位，
// 高位全零，输出 IPv4-compatible 文本形式 "::a.b.c.d"。
// 带后缀时 IPv6 前缀长度 = IPv4 前缀长度 + 96。
// 非 IPv4 输入返回 [ErrInvalidAddress]；畸形后缀返回 [ErrInvalidRange]；
// 超界后缀返回 [ErrPrefixOutOfRange]。
func IPv4ToIPv6(s string) (string, error) {
	s = strings.TrimSpace(s)
	addrPart, suffix, hasSlash := strings.Cut(s, "/")
	quad, ok := parseIPv4(addrPart)
	if !ok {
		return "", fmt.Errorf("%w: not an IPv4 address: %q", ErrInvalidAddress, addrPart)
	}
	embedded := fmt.Sprintf("::%d.%d.%d.%d", quad[0], quad[1], quad[2], quad[3])
	if !hasSlash {
		return embedded, nil
	}
	p, ok := atoiPrefix(suffix)
	if !ok {
		return "", fmt.Errorf("%w: malformed CIDR suffix: %q", ErrInvalidRange, suffix)
	}
	if p > prefixBitsV4 {
		return "", fmt.Errorf("%w: /%d exceeds IPv4 width", ErrPrefixOutOfRange, p)
	}
	return fmt.Sprintf("%s/%d", embedded, p+prefixBitsV6-prefixBitsV4), nil
}

// parseIPv6Lenient 是 ToIPv4 使用的宽松解析：点分尾缀可跟在任意
// 十六进制组之后。尾缀折算为两组后复用严格的组解析。
func parseIPv6Lenient(s string) ([8]uint16, bool) {
	if !strings.Contains(s, ".") {
		return parseHexGroups(s)
	}
	i := strings.LastIndexByte(s, ':')
	if i < 0 {
		return [8]uint16{}, false
	}
	quad, ok := parseIPv4(s[i+1:])
	if !ok {
		return [8]uint16{}, false
	}
	rebuilt := fmt.Sprintf("%s%x:%x", s[:i+1],
		uint16(quad[0])<<8|uint16(quad[1]),
		uint16(quad[2])<<8|uint16(quad[3]))
	return parseHexGroups(rebuilt)
}

// isLoopbackWords 报告字序列是否为 IPv6 环回地址 ::1。
func isLoopbackWords(w [8]uint16) bool {
	return w[0]|w[1]|w[2]|w[3]|w[4]|w[5]|w[6] == 0 && w[7] == 1
}
