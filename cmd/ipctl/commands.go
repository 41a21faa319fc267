package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/ipkit/pkg/xip"
)

// exitError 表示需要非零退出码但已完成输出的场景。
// 命令内部已完成所有输出，main 只需设置退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// usageError 表示参数错误，统一映射为退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// isCLIUsageError 识别 urfave/cli 框架自身产生的参数类错误
//（未知命令、未知 flag），这类错误同样按退出码 2 处理。
func isCLIUsageError(err error) bool {
	if _, ok := err.(cli.ExitCoder); ok {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "flag provided but not defined") ||
		strings.Contains(msg, "No help topic for")
}

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createValidateCommand(),
		createSanitizeCommand(),
		createHexKeyCommand(),
		createRangeCommand(),
		createContainsCommand(),
		createPublicCommand(),
		createTo4Command(),
		createTo6Command(),
	}
}

func createValidateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Aliases:   []string{"v"},
		Usage:     "校验地址或 CIDR 块文法",
		ArgsUsage: "<input>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "addr",
				Aliases: []string{"a"},
				Usage:   "只接受单个地址（不带 CIDR 后缀）",
			},
			&cli.BoolFlag{
				Name:    "block",
				Aliases: []string{"b"},
				Usage:   "只接受 CIDR 块",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdValidate(os.Stdout, cmd.Bool("quiet"),
				cmd.Bool("addr"), cmd.Bool("block"), cmd.Args().Slice())
		},
	}
}

func createSanitizeCommand() *cli.Command {
	return &cli.Command{
		Name:      "sanitize",
		Aliases:   []string{"s"},
		Usage:     "输出地址的规范化文本形式",
		ArgsUsage: "<address>...",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdSanitize(os.Stdout, cmd.Args().Slice())
		},
	}
}

func createHexKeyCommand() *cli.Command {
	return &cli.Command{
		Name:      "hexkey",
		Aliases:   []string{"k"},
		Usage:     "编码为可排序的十六进制键",
		ArgsUsage: "<address>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "decode",
				Aliases: []string{"d"},
				Usage:   "反向解码：参数为键，输出地址",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdHexKey(os.Stdout, cmd.Bool("decode"), cmd.Args().Slice())
		},
	}
}

func createRangeCommand() *cli.Command {
	return &cli.Command{
		Name:      "range",
		Aliases:   []string{"r"},
		Usage:     "解析范围说明为 [起, 止] 键对",
		ArgsUsage: "<range>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "以 JSON 输出",
			},
			&cli.BoolFlag{
				Name:    "merge",
				Aliases: []string{"m"},
				Usage:   "将所有范围合并去重后输出",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdRange(os.Stdout, cmd.Bool("json"), cmd.Bool("merge"), cmd.Args().Slice())
		},
	}
}

func createContainsCommand() *cli.Command {
	return &cli.Command{
		Name:      "contains",
		Aliases:   []string{"c"},
		Usage:     "判断地址是否落在范围内（含边界）",
		ArgsUsage: "<address> <range>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdContains(os.Stdout, cmd.Bool("quiet"), cmd.Args().Slice())
		},
	}
}

func createPublicCommand() *cli.Command {
	return &cli.Command{
		Name:      "public",
		Aliases:   []string{"p"},
		Usage:     "判断是否为公网地址",
		ArgsUsage: "<address>...",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdPublic(os.Stdout, cmd.Bool("quiet"), cmd.Args().Slice())
		},
	}
}

func createTo4Command() *cli.Command {
	return &cli.Command{
		Name:      "to4",
		Usage:     "将 IPv6 嵌入形式规约为 IPv4",
		ArgsUsage: "<address>...",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdTo4(os.Stdout, cmd.Args().Slice())
		},
	}
}

func createTo6Command() *cli.Command {
	return &cli.Command{
		Name:      "to6",
		Usage:     "将 IPv4 地址（可带 CIDR 后缀）嵌入 IPv6 低 32 位",
		ArgsUsage: "<ipv4>...",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdTo6(os.Stdout, cmd.Args().Slice())
		},
	}
}

// cmdValidate 逐条校验输入。任一输入不合法时返回退出码 1。
func cmdValidate(out io.Writer, quiet, addrOnly, blockOnly bool, inputs []string) error {
	if len(inputs) == 0 {
		return &usageError{msg: "validate 需要至少一个输入"}
	}
	if addrOnly && blockOnly {
		return &usageError{msg: "--addr 与 --block 互斥"}
	}
	check := xip.IsIPAddress
	switch {
	case addrOnly:
		check = xip.IsValidAddress
	case blockOnly:
		check = xip.IsValidBlock
	}

	allValid := true
	for _, in := range inputs {
		ok := check(in)
		if !ok {
			allValid = false
		}
		if !quiet {
			verdict := "valid"
			if !ok {
				verdict = "invalid"
			}
			fmt.Fprintf(out, "%s\t%s\n", in, verdict)
		}
	}
	if !allValid {
		return &exitError{code: 1}
	}
	return nil
}

// cmdSanitize 输出每条输入的规范化形式。
func cmdSanitize(out io.Writer, inputs []string) error {
	if len(inputs) == 0 {
		return &usageError{msg: "sanitize 需要至少一个地址"}
	}
	for _, in := range inputs {
		clean, err := xip.Sanitize(in)
		if err != nil {
			return fmt.Errorf("%q: %w", in, err)
		}
		fmt.Fprintln(out, clean)
	}
	return nil
}

// cmdHexKey 编码地址为排序键；--decode 时反向解码。
func cmdHexKey(out io.Writer, decode bool, inputs []string) error {
	if len(inputs) == 0 {
		return &usageError{msg: "hexkey 需要至少一个输入"}
	}
	for _, in := range inputs {
		if decode {
			addr, err := xip.FromHexKey(xip.HexKey(in))
			if err != nil {
				return fmt.Errorf("%q: %w", in, err)
			}
			fmt.Fprintln(out, addr)
			continue
		}
		key, err := xip.ToHexKey(in)
		if err != nil {
			return fmt.Errorf("%q: %w", in, err)
		}
		fmt.Fprintln(out, key)
	}
	return nil
}

// cmdRange 解析范围说明。--merge 先合并去重；--json 以 JSON 输出。
func cmdRange(out io.Writer, asJSON, merge bool, specs []string) error {
	if len(specs) == 0 {
		return &usageError{msg: "range 需要至少一条范围说明"}
	}

	var ranges []xip.HexRange
	if merge {
		merged, err := xip.MergeSpecs(specs)
		if err != nil {
			return err
		}
		ranges = merged
	} else {
		ranges = make([]xip.HexRange, 0, len(specs))
		for _, s := range specs {
			r, err := xip.ParseRange(s)
			if err != nil {
				return fmt.Errorf("%q: %w", s, err)
			}
			ranges = append(ranges, r)
		}
	}

	if asJSON {
		enc := json.NewEncoder(out)
		return enc.Encode(ranges)
	}
	for _, r := range ranges {
		fmt.Fprintf(out, "%s %s\n", r.Start, r.End)
	}
	return nil
}

// cmdContains 判断地址是否落在范围内。结果为假时返回退出码 1，
// 使 shell 条件表达式可以直接使用。
func cmdContains(out io.Writer, quiet bool, args []string) error {
	if len(args) != 2 {
		return &usageError{msg: "contains 需要 <地址> <范围> 两个参数"}
	}
	ok := xip.IsInRange(args[0], args[1])
	if !quiet {
		fmt.Fprintln(out, ok)
	}
	if !ok {
		return &exitError{code: 1}
	}
	return nil
}

// cmdPublic 判断每条地址是否为公网地址。任一非公网时返回退出码 1。
func cmdPublic(out io.Writer, quiet bool, inputs []string) error {
	if len(inputs) == 0 {
		return &usageError{msg: "public 需要至少一个地址"}
	}
	allPublic := true
	for _, in := range inputs {
		ok := xip.IsPublic(in)
		if !ok {
			allPublic = false
		}
		if !quiet {
			verdict := "public"
			if !ok {
				verdict = "private"
			}
			fmt.Fprintf(out, "%s\t%s\n", in, verdict)
		}
	}
	if !allPublic {
		return &exitError{code: 1}
	}
	return nil
}

// cmdTo4 将每条输入规约为 IPv4 文本形式。
func cmdTo4(out io.Writer, inputs []string) error {
	if len(inputs) == 0 {
		return &usageError{msg: "to4 需要至少一个地址"}
	}
	for _, in := range inputs {
		v4, ok := xip.ToIPv4(in)
		if !ok {
			return fmt.Errorf("%q 不可表示为 IPv4", in)
		}
		fmt.Fprintln(out, v4)
	}
	return nil
}

// cmdTo6 将每条 IPv4 输入嵌入 IPv6 低 32 位。
func cmdTo6(out io.Writer, inputs []string) error {
	if len(inputs) == 0 {
		return &usageError{msg: "to6 需要至少一个 IPv4 地址"}
	}
	for _, in := range inputs {
		v6, err := xip.IPv4ToIPv6(in)
		if err != nil {
			return fmt.Errorf("%q: %w", in, err)
		}
		fmt.Fprintln(out, v6)
	}
	return nil
}
