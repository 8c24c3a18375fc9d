package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	t.Run("push values", func(t *testing.T) {
		request, err := ParseRequest("push l a b c")
		require.NoError(t, err)
		assert.Equal(t, "PUSH", request["command"])
		assert.Equal(t, "l", request["key"])
		assert.Equal(t, []interface{}{"a", "b", "c"}, request["values"])
	})

	t.Run("insert", func(t *testing.T) {
		request, err := ParseRequest("INSERT l -3 x")
		require.NoError(t, err)
		assert.Equal(t, int64(-3), request["index"])
		assert.Equal(t, "x", request["value"])
	})

	t.Run("equal strict", func(t *testing.T) {
		request, err := ParseRequest("EQUAL a b strict")
		require.NoError(t, err)
		assert.Equal(t, "b", request["other"])
		assert.Equal(t, true, request["strict"])

		_, err = ParseRequest("EQUAL a b loose")
		assert.Error(t, err)
	})

	t.Run("print separator", func(t *testing.T) {
		request, err := ParseRequest("PRINT l - ")
		require.NoError(t, err)
		assert.Equal(t, "-", request["separator"])
	})

	t.Run("keys", func(t *testing.T) {
		request, err := ParseRequest("keys")
		require.NoError(t, err)
		assert.NotContains(t, request, "key")
	})

	t.Run("errors", func(t *testing.T) {
		_, err := ParseRequest("   ")
		assert.ErrorIs(t, err, ErrNoCommand)
		_, err = ParseRequest("# comment")
		assert.ErrorIs(t, err, ErrNoCommand)
		_, err = ParseRequest("FROB l")
		assert.Error(t, err)
		_, err = ParseRequest("POP l")
		assert.Error(t, err)
		_, err = ParseRequest("POP l one")
		assert.Error(t, err)
		_, err = ParseRequest("LEN a b")
		assert.Error(t, err)
	})
}

func TestToInt(t *testing.T) {
	for _, v := range []interface{}{int(-2), int8(-2), int16(-2), int32(-2), int64(-2), float64(-2), "-2"} {
		got, err := ToInt(v)
		require.NoError(t, err, "%T", v)
		assert.Equal(t, -2, got, "%T", v)
	}
	for _, v := range []interface{}{uint8(7), uint16(7), uint32(7), uint64(7)} {
		got, err := ToInt(v)
		require.NoError(t, err)
		assert.Equal(t, 7, got)
	}
	_, err := ToInt(true)
	assert.Error(t, err)
	_, err = ToInt("x")
	assert.Error(t, err)
}

func TestMsgpackRequests(t *testing.T) {
	var stream bytes.Buffer
	for _, request := range []map[string]interface{}{
		{"command": "APPEND", "key": "l", "values": []interface{}{"a", "b"}},
		{"command": "POP", "key": "l", "index": -1},
	} {
		data, err := EncodeRequest(request)
		require.NoError(t, err)
		stream.Write(data)
	}

	requests, err := DecodeRequests(&stream)
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "APPEND", requests[0]["command"])
	assert.Equal(t, []interface{}{"a", "b"}, requests[0]["values"])

	index, err := ToInt(requests[1]["index"])
	require.NoError(t, err)
	assert.Equal(t, -1, index)

	t.Run("invalid stream", func(t *testing.T) {
		_, err := DecodeRequests(bytes.NewReader([]byte{0xc1}))
		assert.Error(t, err)
	})

	t.Run("responses", func(t *testing.T) {
		data, err := EncodeResponse(map[string]interface{}{"status": "OK", "value": "x"})
		require.NoError(t, err)
		response, err := DecodeResponse(data)
		require.NoError(t, err)
		assert.Equal(t, "OK", response["status"])
		assert.Equal(t, "x", response["value"])
	})
}
