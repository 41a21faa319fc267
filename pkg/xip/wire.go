package xip

import (
	"fmt"

	"go4.org/netipx"
)

// HexRange 是经 HexKey 编码的闭区间 IP 范围，可直接参与 JSON/BSON/YAML
// 序列化。不变式：Start 与 End 同族，且 Start <= End（键序）。
// [ParseRange] 产出的 HexRange 恒满足不变式；手工构造时可用 [HexRange.IsValid] 校验。
type HexRange struct {
	Start HexKey `json:"start" bson:"start" yaml:"start"`
	End   HexKey `json:"end" bson:"end" yaml:"end"`
}

// Contains 报告键是否落在范围内（含边界）。键序即普通字符串序，
// 跨族的键因族标记差异恒不落入。
func (r HexRange) Contains(k HexKey) bool {
	return r.Start <= k && k <= r.End
}

// IsValid 报告范围是否满足不变式：两端可解码、同族、Start <= End。
func (r HexRange) IsValid() bool {
	sv := KeyVersion(r.Start)
	return sv != V0 && sv == KeyVersion(r.End) && r.Start <= r.End
}

// IsZero 报告 r 是否为零值。
func (r HexRange) IsZero() bool {
	return r.Start == "" && r.End == ""
}

// Version 返回范围所属的地址族。无效范围返回 V0。
func (r HexRange) Version() Version {
	if !r.IsValid() {
		return V0
	}
	return KeyVersion(r.Start)
}

// String 返回 "start-end"；起止相同时只返回单个键。
func (r HexRange) String() string {
	if r.Start == r.End {
		return string(r.Start)
	}
	return string(r.Start) + "-" + string(r.End)
}

// ToIPRange 将 HexRange 解码为 [netipx.IPRange]。
// 任一端无法解码返回 [ErrInvalidHexKey]；解码后范围无效（跨族或倒置）
// 返回 [ErrInvalidRange]。
func (r HexRange) ToIPRange() (netipx.IPRange, error) {
	from, err := FromHexKey(r.Start)
	if err != nil {
		return netipx.IPRange{}, err
	}
	to, err := FromHexKey(r.End)
	if err != nil {
		return netipx.IPRange{}, err
	}
	ipr := netipx.IPRangeFrom(from, to)
	if !ipr.IsValid() {
		return netipx.IPRange{}, fmt.Errorf("%w: %s", ErrInvalidRange, r)
	}
	return ipr, nil
}
