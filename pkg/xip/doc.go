// Package xip 提供 IP 地址工具库：文法校验、文本规范化、CIDR/范围解析、
// 可排序的十六进制编码与公网/私网分类，覆盖 IPv4 与 IPv6。
//
// xip 基于 Go 标准库 [net/netip] 和社区库 [go4.org/netipx] 构建：
// 地址一经校验即以 [netip.Addr] 值类型流转，范围运算复用
// [netipx.IPRange] / [*netipx.IPSet]。文法校验本身是手写状态机，
// 不经由 netip.ParseAddr，因为接受的文法有意与标准库不同（见下）。
//
// # 核心功能
//
//   - parse.go: 文法校验 [IsIPv4] / [IsIPv6] / [IsIPAddress] /
//     [IsValidAddress] / [IsValidBlock]，严格解析 [ParseAddr]
//   - hexkey.go: 排序键 [HexKey]、编码 [ToHexKey] / [AddrHexKey]、
//     解码 [FromHexKey]
//   - canonical.go: 文本规范化 [Sanitize]、IPv4 规约 [ToIPv4]、
//     IPv4 嵌入 [IPv4ToIPv6]
//   - range.go: [ParseCIDR]、[ResolveRange]、[ParseRange]、[IsInRange]
//   - wire.go: 可序列化范围 [HexRange]
//   - classify.go: 公网判定 [IsPublic] / [IsPublicAddr]
//   - interop.go: 批量解析合并 [IPSetFromSpecs] / [MergeSpecs]
//
// # 快速示例
//
// 校验与编码：
//
//	fmt.Println(xip.IsValidAddress("192.168.1.1")) // true
//	fmt.Println(xip.IsValidBlock("1.2.3.4/33"))    // false（前缀超界）
//	key, _ := xip.ToHexKey("192.168.1.1")
//	fmt.Println(key)                               // C0A80101
//
// 解析范围并判断包含关系：
//
//	r, _ := xip.ParseRange("192.168.1.0/24")
//	fmt.Println(r.Start, r.End)                          // C0A80100 C0A801FF
//	fmt.Println(xip.IsInRange("192.168.1.7", "192.168.1.0/24")) // true
//
// 公网/私网分类：
//
//	fmt.Println(xip.IsPublic("8.8.8.8"))  // true
//	fmt.Println(xip.IsPublic("10.1.2.3")) // false
//
// # HexKey 排序键
//
// [HexKey] 是定宽、带族标记的大写十六进制编码：IPv4 为 8 位，IPv6 为
// 'G' 标记加 32 位。普通字符串比较即为地址序——同族内与数值序一致，
// 任意 IPv6 键恒排在任意 IPv4 键之后（'G' 大于一切十六进制数字）。
// 该性质使键可以直接作为数据库排序列与区间查询条件使用。
//
// # 接受的文法
//
// 校验函数（IsIPv4 等）容忍可选的 "/prefix" 后缀；[IsValidAddress]
// 仅接受单地址，[IsValidBlock] 仅接受块。IPv6 文法允许至多一个 ::
// 缩写、每组 1-4 位十六进制；点分尾缀仅接受 "::a.b.c.d"
//（IPv4-compatible）与 "::ffff:a.b.c.d"（IPv4-mapped）两种形式。
// SIIT（::ffff:0:a.b.c.d）、NAT64（64:ff9b::a.b.c.d）转换形式与
// zone ID（fe80::1%eth0）一律拒绝。
//
// # 校验与规约的不对称
//
// [ToIPv4] 的内部解析比校验文法宽松：点分尾缀可跟在任意十六进制组
// 之后。因此校验器拒绝的展开 mapped 形式（"0:0:0:0:0:ffff:1.2.3.4"）
// 仍能规约出 "1.2.3.4"，而 SIIT/NAT64 前缀因字模式不符依旧不可恢复。
// 这一不对称是既有范围分类行为的一部分，属于契约而非缺陷。
//
// # 错误处理
//
// 校验函数只返回布尔分类，从不报错。解析/转换函数返回可用 errors.Is
// 分辨的预定义错误变量，绝不以合法值兼任错误信号：
//
//	_, err := xip.ParseRange("1.2.3.10 - 1.2.3.5")
//	if errors.Is(err, xip.ErrInvalidRange) {
//	    // 起止倒置
//	}
//
// # 并发
//
// 所有操作均为纯函数，无锁并发安全。唯一的进程级状态是包初始化时从
// 固定字面量构建一次的私有范围表，构建后只读。
package xip
