package sntp

import (
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderRefidKissCode(t *testing.T) {
	rendered, err := renderRefid([4]byte{'R', 'A', 'T', 'E'}, 0, nil)
	require.NoError(t, err)
	require.Equal(t, "RATE", rendered)
}

func TestRenderRefidPrimary(t *testing.T) {
	rendered, err := renderRefid([4]byte{'G', 'P', 'S', 0}, 1, nil)
	require.NoError(t, err)
	require.Equal(t, "GPS", rendered)
}

func TestRenderRefidSecondaryIPv4(t *testing.T) {
	refid := [4]byte{193, 79, 237, 14}

	t.Run("lookup fails", func(t *testing.T) {
		stubLookup(t, nil, errors.New("no PTR record"))

		rendered, err := renderRefid(refid, 2, net.ParseIP("192.168.1.1").To4())
		require.NoError(t, err)
		require.Equal(t, "193.79.237.14", rendered)
	})

	t.Run("lookup succeeds", func(t *testing.T) {
		stubLookup(t, []string{"ntp.example.org."}, nil)

		rendered, err := renderRefid(refid, 2, net.ParseIP("192.168.1.1").To4())
		require.NoError(t, err)
		require.Equal(t, "ntp.example.org (193.79.237.14)", rendered)
	})
}

func TestRenderRefidSecondaryIPv6(t *testing.T) {
	rendered, err := renderRefid([4]byte{0xDE, 0xAD, 0xBE, 0xEF}, 3, net.ParseIP("2001:db8::1"))
	require.NoError(t, err)
	require.Equal(t, "deadbeef", rendered)
}

func TestRenderRefidReserved(t *testing.T) {
	rendered, err := renderRefid([4]byte{1, 2, 3, 4}, 16, nil)
	require.NoError(t, err)
	require.Equal(t, "N/A", rendered)
}
