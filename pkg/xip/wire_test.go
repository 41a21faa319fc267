package xip

import (
	"encoding/json"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexRangeContains(t *testing.T) {
	r, err := ParseRange("192.168.1.0/24")
	require.NoError(t, err)

	k := func(s string) HexKey {
		key, err := ToHexKey(s)
		require.NoError(t, err)
		return key
	}
	assert.True(t, r.Contains(k("192.168.1.0")))
	assert.True(t, r.Contains(k("192.168.1.128")))
	assert.True(t, r.Contains(k("192.168.1.255")))
	assert.False(t, r.Contains(k("192.168.0.255")))
	assert.False(t, r.Contains(k("192.168.2.0")))
	// 跨族键因族标记差异恒不落入
	assert.False(t, r.Contains(k("::c0a8:0101")))
	assert.False(t, r.Contains(""))
}

func TestHexRangeIsValid(t *testing.T) {
	assert.True(t, HexRange{Start: "0A000001", End: "0A000009"}.IsValid())
	assert.True(t, HexRange{Start: "0A000001", End: "0A000001"}.IsValid())
	assert.False(t, HexRange{Start: "0A000009", End: "0A000001"}.IsValid(), "起止倒置")
	assert.False(t, HexRange{Start: "0A000001", End: "G00000000000000000000000000000001"}.IsValid(), "跨族")
	assert.False(t, HexRange{Start: "XYZ", End: "0A000001"}.IsValid())
	assert.False(t, HexRange{}.IsValid())
}

func TestHexRangeVersionAndString(t *testing.T) {
	r4, _ := ParseRange("10.0.0.1 - 10.0.0.9")
	assert.Equal(t, V4, r4.Version())
	assert.Equal(t, "0A000001-0A000009", r4.String())

	single, _ := ParseRange("10.0.0.1")
	assert.Equal(t, "0A000001", single.String())

	r6, _ := ParseRange("::1")
	assert.Equal(t, V6, r6.Version())

	assert.Equal(t, V0, HexRange{}.Version())
	assert.True(t, HexRange{}.IsZero())
	assert.False(t, r4.IsZero())
}

func TestHexRangeToIPRange(t *testing.T) {
	r, err := ParseRange("192.168.1.0/24")
	require.NoError(t, err)
	ipr, err := r.ToIPRange()
	require.NoError(t, err)
	assert.Equal(t, netip.MustParseAddr("192.168.1.0"), ipr.From())
	assert.Equal(t, netip.MustParseAddr("192.168.1.255"), ipr.To())

	_, err = HexRange{Start: "XYZ", End: "0A000001"}.ToIPRange()
	assert.ErrorIs(t, err, ErrInvalidHexKey)

	_, err = HexRange{Start: "0A000009", End: "0A000001"}.ToIPRange()
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestHexRangeJSON(t *testing.T) {
	r, err := ParseRange("192.168.1.0/24")
	require.NoError(t, err)

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"C0A80100","end":"C0A801FF"}`, string(data))

	var back HexRange
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, r, back)
}
