package xip

import "net/netip"

// Version 表示 IP 协议版本。
type Version uint8

const (
	// V0 表示无效或未知的 IP 版本。
	V0 Version = 0
	// V4 表示 IPv4。
	V4 Version = 4
	// V6 表示 IPv6。
	V6 Version = 6
)

// String 返回版本的字符串表示。
func (v Version) String() string {
	switch v {
	case V4:
		return "IPv4"
	case V6:
		return "IPv6"
	default:
		return "unknown"
	}
}

// AddrVersion 返回 addr 所属的地址族。
//
// 设计决策: IPv4-mapped IPv6 地址（如 ::ffff:1.2.3.4）视为 V6 而非 V4。
// 本包的地址族由通过校验的文本形式决定：以 IPv6 文法写出的地址得到 IPv6
// 排序键，必须归入 V6，否则同一地址会在两张私有范围表之间摇摆。
// 无效地址返回 V0。
func AddrVersion(addr netip.Addr) Version {
	switch {
	case addr.Is4():
		return V4
	case addr.IsValid():
		return V6
	default:
		return V0
	}
}

// KeyVersion 返回 HexKey 所属的地址族。
// 无法解码的键返回 V0。
func KeyVersion(k HexKey) Version {
	switch {
	case len(k) == v4KeyLen && isHexString(string(k)):
		return V4
	case len(k) == v6KeyLen && k[0] == v6KeyMarker && isHexString(string(k[1:])):
		return V6
	default:
		return V0
	}
}
