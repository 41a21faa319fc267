package xip

import "errors"

var (
	// ErrInvalidAddress 表示无效的 IP 地址字符串。
	ErrInvalidAddress = errors.New("xip: invalid IP address")

	// ErrInvalidRange 表示无效的 IP 范围格式（坏的 CIDR 后缀、起止倒置、混合地址族）。
	ErrInvalidRange = errors.New("xip: invalid IP range")

	// ErrPrefixOutOfRange 表示前缀长度超出地址族的位宽（IPv4 为 32，IPv6 为 128）。
	ErrPrefixOutOfRange = errors.New("xip: prefix length out of range")

	// ErrInvalidHexKey 表示无法解码的 HexKey。
	ErrInvalidHexKey = errors.New("xip: invalid hex key")

	// ErrEmptyInput 表示去除空白后为空的输入。
	ErrEmptyInput = errors.New("xip: empty input")
)
