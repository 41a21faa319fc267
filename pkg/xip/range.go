package xip

import (
	"fmt"
	"net/netip"
	"strings"

	"go4.org/netipx"
)

// ParseCIDR 解析 CIDR 块，返回按前缀长度掩零后的网络前缀。
// 地址畸形返回 [ErrInvalidAddress]；后缀畸形返回 [ErrInvalidRange]；
// 前缀长度超出地址族位宽返回 [ErrPrefixOutOfRange]。
// "/" 两侧的空白会被去除。
func ParseCIDR(s string) (netip.Prefix, error) {
	s = strings.TrimSpace(s)
	addrPart, suffix, hasSlash := strings.Cut(s, "/")
	if !hasSlash {
		return netip.Prefix{}, fmt.Errorf("%w: not CIDR notation: %q", ErrInvalidRange, s)
	}
	addr, err := ParseAddr(strings.TrimSpace(addrPart))
	if err != nil {
		return netip.Prefix{}, err
	}
	p, ok := atoiPrefix(strings.TrimSpace(suffix))
	if !ok {
		return netip.Prefix{}, fmt.Errorf("%w: malformed prefix length: %q", ErrInvalidRange, suffix)
	}
	if p > addr.BitLen() {
		return netip.Prefix{}, fmt.Errorf("%w: /%d exceeds %s width", ErrPrefixOutOfRange, p, AddrVersion(addr))
	}
	return netip.PrefixFrom(addr, p).Masked(), nil
}

// ResolveRange 将范围说明解析为 [netipx.IPRange]。按优先级接受三种形式：
//
//   - CIDR "addr/prefix"：起点为掩零后的网络地址，终点为前缀外低位全一
//   - 显式范围 "A - B"：两端均为同族单地址，A > B 时失败
//   - 单个地址：起止相同
//
// 输入与 "-" 两侧的空白会被去除。失败返回 [ErrInvalidRange]
//（CIDR 路径的底层错误经包装后仍可用 errors.Is 分辨）。
func ResolveRange(s string) (netipx.IPRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return netipx.IPRange{}, fmt.Errorf("%w: empty range", ErrInvalidRange)
	}
	if strings.Contains(s, "/") {
		prefix, err := ParseCIDR(s)
		if err != nil {
			return netipx.IPRange{}, fmt.Errorf("%w: %w", ErrInvalidRange, err)
		}
		return netipx.RangeOfPrefix(prefix), nil
	}
	if idx := strings.Index(s, "-"); idx >= 0 {
		startStr := strings.TrimSpace(s[:idx])
		endStr := strings.TrimSpace(s[idx+1:])
		start, err := ParseAddr(startStr)
		if err != nil {
			return netipx.IPRange{}, fmt.Errorf("%w: invalid range start: %q", ErrInvalidRange, startStr)
		}
		end, err := ParseAddr(endStr)
		if err != nil {
			return netipx.IPRange{}, fmt.Errorf("%w: invalid range end: %q", ErrInvalidRange, endStr)
		}
		if AddrVersion(start) != AddrVersion(end) {
			return netipx.IPRange{}, fmt.Errorf("%w: mixed address families: %s and %s", ErrInvalidRange, startStr, endStr)
		}
		if start.Compare(end) > 0 {
			return netipx.IPRange{}, fmt.Errorf("%w: start %s > end %s", ErrInvalidRange, startStr, endStr)
		}
		r := netipx.IPRangeFrom(start, end)
		if !r.IsValid() {
			return netipx.IPRange{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
		}
		return r, nil
	}
	addr, err := ParseAddr(s)
	if err != nil {
		return netipx.IPRange{}, fmt.Errorf("%w: %w", ErrInvalidRange, err)
	}
	return netipx.IPRangeFrom(addr, addr), nil
}

// ParseRange 将范围说明解析为 [start, end] 两个 HexKey。
// 形式与 [ResolveRange] 相同；/0 覆盖整个地址空间（全零键到全一键），
// /32 与 /128 收缩为单个地址。
func ParseRange(s string) (HexRange, error) {
	r, err := ResolveRange(s)
	if err != nil {
		return HexRange{}, err
	}
	return HexRange{Start: AddrHexKey(r.From()), End: AddrHexKey(r.To())}, nil
}

// IsInRange 报告地址是否落在范围说明之内（含边界）。
// 比较在 HexKey 键序上进行；任一解析失败返回 false，从不报错。
// 跨族比较恒为 false（键序保证 IPv6 键恒大于 IPv4 键）。
func IsInRange(address, rangeSpec string) bool {
	key, err := ToHexKey(strings.TrimSpace(address))
	if err != nil {
		return false
	}
	hr, err := ParseRange(rangeSpec)
	if err != nil {
		return false
	}
	return hr.Contains(key)
}
