package xip

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"net/netip"
)

// HexKey 是地址的定宽、带族标记的十六进制排序键。
// IPv4 为 8 位大写十六进制（32 位值）；IPv6 为族标记 'G' 加 32 位大写
// 十六进制（128 位值）。两个 HexKey 之间用普通字符串比较即可：
// 同族内与数值序一致，且任意 IPv6 键排在任意 IPv4 键之后。
type HexKey string

// v6KeyMarker 是 IPv6 键的族标记。
// 'G' 是大于所有大写十六进制数字的最小 ASCII 字符，保证任意 IPv6 键在
// 字符串比较下排在任意 8 位 IPv4 键之后。
const v6KeyMarker = 'G'

const (
	v4KeyLen = 8
	v6KeyLen = 33
)

const upperhex = "0123456789ABCDEF"

// ToHexKey 将地址字符串编码为 HexKey。
// 输入须通过 [IsValidAddress] 文法；否则返回 [ErrInvalidAddress]，
// 绝不产生半成品键。
func ToHexKey(s string) (HexKey, error) {
	addr, err := ParseAddr(s)
	if err != nil {
		return "", err
	}
	return AddrHexKey(addr), nil
}

// AddrHexKey 将 [netip.Addr] 编码为 HexKey。类型安全变体，确定、单射、
// 保序。无效地址返回空键。
//
// 注意：IPv4-mapped IPv6 地址以 IPv6 文法通过校验，编码为 IPv6 键，
// 与 [AddrVersion] 的族划分一致。
func AddrHexKey(addr netip.Addr) HexKey {
	switch {
	case addr.Is4():
		b := addr.As4()
		return HexKey(appendHexUpper(make([]byte, 0, v4KeyLen), b[:]))
	case addr.IsValid():
		b := addr.As16()
		buf := make([]byte, 0, v6KeyLen)
		buf = append(buf, v6KeyMarker)
		return HexKey(appendHexUpper(buf, b[:]))
	default:
		return ""
	}
}

// FromHexKey 将 HexKey 解码回 [netip.Addr]。
// 十六进制数字大小写均接受；无法解码返回 [ErrInvalidHexKey]。
func FromHexKey(k HexKey) (netip.Addr, error) {
	switch {
	case len(k) == v4KeyLen:
		var b [4]byte
		if _, err := hex.Decode(b[:], []byte(k)); err != nil {
			return netip.Addr{}, fmt.Errorf("%w: %q", ErrInvalidHexKey, k)
		}
		return AddrFromUint32(binary.BigEndian.Uint32(b[:])), nil
	case len(k) == v6KeyLen && k[0] == v6KeyMarker:
		var b [16]byte
		if _, err := hex.Decode(b[:], []byte(k[1:])); err != nil {
			return netip.Addr{}, fmt.Errorf("%w: %q", ErrInvalidHexKey, k)
		}
		return netip.AddrFrom16(b), nil
	default:
		return netip.Addr{}, fmt.Errorf("%w: %q", ErrInvalidHexKey, k)
	}
}

// IsValid 报告 k 是否为可解码的 HexKey。
func (k HexKey) IsValid() bool {
	return KeyVersion(k) != V0
}

// Compare 按键序比较两个 HexKey：k < other 返回 -1，相等返回 0，
// k > other 返回 1。键序即普通字符串序。
func (k HexKey) Compare(other HexKey) int {
	switch {
	case k < other:
		return -1
	case k > other:
		return 1
	default:
		return 0
	}
}

// appendHexUpper 以大写十六进制追加 src 的每个字节。
// 手写编码避免 fmt 的反射开销，并保证键恒为大写。
func appendHexUpper(dst, src []byte) []byte {
	for _, b := range src {
		dst = append(dst, upperhex[b>>4], upperhex[b&0x0f])
	}
	return dst
}
