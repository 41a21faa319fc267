package xip

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPublic(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"public IPv4", "8.8.8.8", true},
		{"public IPv4 edge below 10/8", "9.255.255.255", true},
		{"RFC1918 10/8 start", "10.0.0.0", false},
		{"RFC1918 10/8 end", "10.255.255.255", false},
		{"just past 10/8", "11.0.0.0", true},
		{"RFC1918 172.16/12 start", "172.16.0.0", false},
		{"RFC1918 172.16/12 end", "172.31.255.255", false},
		{"just below 172.16/12", "172.15.255.255", true},
		{"just past 172.16/12", "172.32.0.0", true},
		{"RFC1918 192.168/16", "192.168.1.1", false},
		{"just past 192.168/16", "192.169.0.0", true},
		{"this-network 0/8", "0.1.2.3", false},
		{"loopback 127/8", "127.0.0.1", false},
		{"loopback 127/8 end", "127.255.255.255", false},
		{"public IPv6", "2001:db8::1", true},
		{"ULA fc00::/7 start", "fc00::", false},
		{"ULA fd block", "fd12:3456::1", false},
		{"ULA fc00::/7 end", "fdff:ffff:ffff:ffff:ffff:ffff:ffff:ffff", false},
		{"just past ULA", "fe00::", true},
		{"IPv6 loopback", "::1", false},
		{"IPv6 unspecified is public by table", "::", true},
		{"link-local not in table", "fe80::1", true},
		{"whitespace tolerated", " 8.8.8.8 ", true},
		{"unparseable", "not an ip", false},
		{"empty", "", false},
		{"CIDR rejected", "8.8.8.0/24", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPublic(tt.input))
		})
	}
}

// mapped 地址按 IPv6 族查表，不命中 IPv4 私有段。
func TestIsPublicMappedAddress(t *testing.T) {
	assert.True(t, IsPublic("::ffff:10.1.2.3"))

	// 规约后按 IPv4 判定
	v4, ok := ToIPv4("::ffff:10.1.2.3")
	assert.True(t, ok)
	assert.False(t, IsPublic(v4))
}

func TestIsPublicAddr(t *testing.T) {
	assert.True(t, IsPublicAddr(netip.MustParseAddr("1.1.1.1")))
	assert.False(t, IsPublicAddr(netip.MustParseAddr("192.168.0.1")))
	assert.False(t, IsPublicAddr(netip.Addr{}))
}

func TestPrivateRangeTable(t *testing.T) {
	assert.Len(t, privateRanges.v4, 5)
	assert.Len(t, privateRanges.v6, 2)
	for _, r := range privateRanges.v4 {
		assert.Equal(t, V4, r.Version())
	}
	for _, r := range privateRanges.v6 {
		assert.Equal(t, V6, r.Version())
	}
}
