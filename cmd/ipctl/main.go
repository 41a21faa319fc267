// ipctl 是 xip 库的命令行前端：IP 地址校验、规范化、排序键编解码、
// 范围解析与公网判定。
//
// 用法:
//
//	ipctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-q, --quiet    只设置退出码，不输出结果（供脚本使用）
//
// 命令:
//
//	validate <输入>...        校验地址或 CIDR 块文法
//	sanitize <地址>...        输出规范化文本形式
//	hexkey <地址>...          编码为可排序的十六进制键（--decode 反向解码）
//	range <范围>...           解析范围为 [起, 止] 键对（--merge 合并，--json 输出 JSON）
//	contains <地址> <范围>    判断地址是否落在范围内
//	public <地址>...          判断是否为公网地址
//	to4 <地址>...             将 IPv6 嵌入形式规约为 IPv4
//	to6 <IPv4>...             将 IPv4 嵌入 IPv6 低 32 位
//
// 退出码:
//
//	0: 命令执行成功（判定类命令: 结果为真）
//	1: 命令执行失败（判定类命令: 结果为假或输入无法解析）
//	2: 参数错误（缺少必需参数、未知命令等）
//
// 示例:
//
//	ipctl validate 192.168.1.1 2001:db8::1
//	ipctl validate --block 10.0.0.0/8
//	ipctl sanitize FE80:0000:0000:0000:0202:B3FF:FE1E:8329
//	ipctl hexkey 192.168.1.1                 # C0A80101
//	ipctl hexkey --decode C0A80101           # 192.168.1.1
//	ipctl range 192.168.1.0/24               # C0A80100 C0A801FF
//	ipctl range --merge 10.0.0.0/25 "10.0.0.64 - 10.0.0.200"
//	ipctl contains 192.168.1.7 192.168.1.0/24 && echo in
//	ipctl public 8.8.8.8 && echo public
//	ipctl to4 ::ffff:10.0.0.1                # 10.0.0.1
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run(os.Args))
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "ipctl",
		Usage:   "IP 地址校验、规范化、排序键与范围工具",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "只设置退出码，不输出结果",
			},
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		Authors: []any{
			"ipkit Team",
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			// ExitCoder 错误（如未知命令）的消息需在此输出，
			// 替代 HandleExitCoder 的默认 os.Exit 行为。
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
		Description: `ipctl 将 xip 库的核心操作暴露为命令行，便于在脚本、
数据导入管道和排障现场使用。

地址键（hexkey）是定宽、带族标记的大写十六进制编码：IPv4 为 8 位，
IPv6 为 'G' 前缀加 32 位。普通字符串比较即为地址序，可直接用作
数据库排序列与区间查询条件。

判定类命令（validate/contains/public）同时通过输出与退出码报告结果，
配合 --quiet 可在 shell 条件表达式中直接使用。`,
	}
}

func run(args []string) int {
	app := createApp()

	if err := app.Run(context.Background(), args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		// CLI 框架产生的参数错误（如未知 flag、未知命令）也返回退出码 2，
		// 与文档契约"参数错误 → 退出码 2"保持一致。
		if isCLIUsageError(err) {
			// ExitErrHandler 或 flag 解析器已向 stderr 输出错误详情，此处仅设置退出码
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}
