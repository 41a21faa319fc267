package xip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"loopback keeps compression", "::1", "::1"},
		{"full form strips group zeros", "FE80:0000:0000:0000:0202:B3FF:FE1E:8329", "FE80:0:0:0:202:B3FF:FE1E:8329"},
		{"lowercase full form", "2001:0db8:0000:0000:0000:0000:0000:0001", "2001:DB8:0:0:0:0:0:1"},
		{"compressed stays compressed", "2001:db8::1", "2001:DB8::1"},
		{"unspecified", "::", "::"},
		{"trailing compression", "2001:db8::", "2001:DB8::"},
		{"leading zeros in compressed form", "2001:0db8::0001", "2001:DB8::1"},
		{"uncompressed input stays expanded", "1:0:0:2:0:0:0:3", "1:0:0:2:0:0:0:3"},
		{"recompress picks longest run", "1::2:0:0:0:3", "1:0:0:2::3"},
		{"IPv4 passthrough", "192.168.1.1", "192.168.1.1"},
		{"IPv4 leading zeros untouched", "010.001.002.003", "010.001.002.003"},
		{"non-address passthrough", "hello", "hello"},
		{"whitespace trimmed", "  ::1  ", "::1"},
		{"CIDR suffix passthrough", "2001:0db8::/32", "2001:DB8::/32"},
		{"mapped form", "::FFFF:1.2.3.4", "::FFFF:1.2.3.4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sanitize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizeEmpty(t *testing.T) {
	for _, s := range []string{"", "   ", "\t\n"} {
		_, err := Sanitize(s)
		assert.ErrorIs(t, err, ErrEmptyInput, "input %q", s)
	}
}

// 规范化应当是幂等的：对输出再做一次得到同样的结果。
func TestSanitizeIdempotent(t *testing.T) {
	for _, s := range []string{
		"::1", "::", "2001:db8::1", "2001:0db8:0000:0000:0000:0000:0000:0001",
		"FE80:0000:0000:0000:0202:B3FF:FE1E:8329", "1:0:0:2:0:0:0:3",
		"192.168.1.1", "2001:db8::/32",
	} {
		once, err := Sanitize(s)
		require.NoError(t, err)
		twice, err := Sanitize(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "input %q", s)
	}
}

func TestToIPv4(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"plain IPv4 passthrough", "192.168.1.1", "192.168.1.1", true},
		{"IPv6 loopback", "::1", "127.0.0.1", true},
		{"IPv4-compatible", "::1.2.3.4", "1.2.3.4", true},
		{"IPv4-mapped", "::ffff:192.168.1.1", "192.168.1.1", true},
		{"mapped hex groups", "::ffff:c0a8:101", "192.168.1.1", true},
		{"expanded mapped recovered", "0:0:0:0:0:ffff:1.2.3.4", "1.2.3.4", true},
		{"expanded compatible recovered", "0:0:0:0:0:0:1.2.3.4", "1.2.3.4", true},
		{"SIIT not recoverable", "::ffff:0:1.2.3.4", "", false},
		{"NAT64 not recoverable", "64:ff9b::1.2.3.4", "", false},
		{"generic IPv6", "2001:db8::1", "", false},
		{"garbage", "not an ip", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToIPv4(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIPv4ToIPv6(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain address", "192.168.1.1", "::192.168.1.1"},
		{"zero address", "0.0.0.0", "::0.0.0.0"},
		{"CIDR /24", "192.168.1.0/24", "::192.168.1.0/120"},
		{"CIDR /0", "0.0.0.0/0", "::0.0.0.0/96"},
		{"CIDR /32", "1.2.3.4/32", "::1.2.3.4/128"},
		{"whitespace trimmed", " 10.0.0.1 ", "::10.0.0.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IPv4ToIPv6(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIPv4ToIPv6Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"IPv6 input", "::1", ErrInvalidAddress},
		{"garbage", "hello", ErrInvalidAddress},
		{"empty", "", ErrInvalidAddress},
		{"malformed suffix", "1.2.3.4/ab", ErrInvalidRange},
		{"empty suffix", "1.2.3.4/", ErrInvalidRange},
		{"prefix out of range", "1.2.3.4/33", ErrPrefixOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := IPv4ToIPv6(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// 往返：IPv4 嵌入 IPv6 后再规约应得到原地址。
func TestIPv4RoundTrip(t *testing.T) {
	for _, s := range []string{"10.1.2.3", "192.168.1.1", "255.255.255.255"} {
		embedded, err := IPv4ToIPv6(s)
		require.NoError(t, err)
		back, ok := ToIPv4(embedded)
		require.True(t, ok, "input %q embedded %q", s, embedded)
		assert.Equal(t, s, back)
	}
}
