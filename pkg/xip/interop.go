package xip

import (
	"fmt"

	"go4.org/netipx"
)

// IPSetFromSpecs 将多条范围说明解析并合并为 [*netipx.IPSet]。
// 每条说明使用 [ResolveRange] 解析，重叠与相邻的范围自动合并去重。
// 空切片或 nil 返回空的 IPSet。
func IPSetFromSpecs(specs []string) (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	for i, s := range specs {
		r, err := ResolveRange(s)
		if err != nil {
			return nil, fmt.Errorf("range [%d] %q: %w", i, s, err)
		}
		b.AddRange(r)
	}
	set, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("build IPSet: %w", err)
	}
	return set, nil
}

// MergeSpecs 解析多条范围说明，合并重叠与相邻的范围后返回排序好的
// HexRange 切片。IPv4 范围排在 IPv6 范围之前，与键序一致。
// 空切片或 nil 返回 (nil, nil)。
func MergeSpecs(specs []string) ([]HexRange, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	set, err := IPSetFromSpecs(specs)
	if err != nil {
		return nil, err
	}
	ranges := set.Ranges()
	out := make([]HexRange, len(ranges))
	for i, r := range ranges {
		out[i] = HexRange{Start: AddrHexKey(r.From()), End: AddrHexKey(r.To())}
	}
	return out, nil
}
