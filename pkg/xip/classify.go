package xip

import (
	"net/netip"
	"strings"
)

// privateRanges 是按地址族分组的保留/私有范围表。
// 包初始化时从固定字面量构建一次，之后只读；表内容不可配置。
// 范围以 HexRange 存放，判定复用 [HexRange.Contains] 的键序比较。
var privateRanges = buildPrivateRanges()

type rangeTable struct {
	v4 []HexRange
	v6 []HexRange
}

func buildPrivateRanges() rangeTable {
	mustRange := func(spec string) HexRange {
		r, err := ParseRange(spec)
		if err != nil {
			panic("xip: built-in private range: " + err.Error())
		}
		return r
	}
	return rangeTable{
		v4: []HexRange{
			mustRange("10.0.0.0/8"),     // RFC 1918
			mustRange("172.16.0.0/12"),  // RFC 1918
			mustRange("192.168.0.0/16"), // RFC 1918
			mustRange("0.0.0.0/8"),      // 本网络
			mustRange("127.0.0.0/8"),    // 环回
		},
		v6: []HexRange{
			mustRange("fc00::/7"), // RFC 4193 唯一本地地址
			mustRange("::1/128"),  // 环回
		},
	}
}

// IsPublic 报告地址是否为公网地址。
// 无法解析的输入返回 false；落在所属地址族私有范围表内的地址返回 false；
// 其余返回 true。表是固定的：IPv4 为 10/8、172.16/12、192.168/16、0/8、
// 127/8，IPv6 为 fc00::/7 与 ::1/128。
//
// 注意：以 IPv6 文法写出的 mapped 地址（如 ::ffff:10.1.2.3）按 IPv6 族
// 查表，不命中 IPv4 私有段，因此判为公网。调用方如需按嵌入的 IPv4 判定，
// 应先经 [ToIPv4] 规约。
func IsPublic(address string) bool {
	addr, err := ParseAddr(strings.TrimSpace(address))
	if err != nil {
		return false
	}
	return IsPublicAddr(addr)
}

// IsPublicAddr 是 [IsPublic] 的类型安全变体。无效地址返回 false。
func IsPublicAddr(addr netip.Addr) bool {
	key := AddrHexKey(addr)
	var table []HexRange
	switch AddrVersion(addr) {
	case V4:
		table = privateRanges.v4
	case V6:
		table = privateRanges.v6
	default:
		return false
	}
	for _, r := range table {
		if r.Contains(key) {
			return false
		}
	}
	return true
}
