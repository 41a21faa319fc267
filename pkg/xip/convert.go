package xip

import (
	"encoding/binary"
	"net/netip"
)

// AddrFromUint32 从 IPv4 的 uint32 表示创建 [netip.Addr]。
// 使用网络字节序（大端）。
func AddrFromUint32(v uint32) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return netip.AddrFrom4(b)
}

// AddrToUint32 将 IPv4 地址转换为 uint32（网络字节序）。
// IPv4-mapped IPv6 地址取其低 32 位。非 IPv4 地址返回 (0, false)。
func AddrToUint32(addr netip.Addr) (uint32, bool) {
	if !addr.Is4() && !addr.Is4In6() {
		return 0, false
	}
	b := addr.Unmap().As4()
	return binary.BigEndian.Uint32(b[:]), true
}

// wordsToAddr 将 8 个 16 位字按大端拼接为 IPv6 [netip.Addr]。
func wordsToAddr(w [8]uint16) netip.Addr {
	var b [16]byte
	for i, x := range w {
		binary.BigEndian.PutUint16(b[i*2:], x)
	}
	return netip.AddrFrom16(b)
}
