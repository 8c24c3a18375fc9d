package utils

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrNoCommand is returned for blank or comment-only lines.
var ErrNoCommand = errors.New("no command entered")

// argCount is the number of positional arguments, key included, each
// command takes: min and max, max < 0 meaning unbounded.
var argCount = map[string][2]int{
	"PUSH":       {2, -1},
	"APPEND":     {2, -1},
	"INSERT":     {3, 3},
	"POP":        {2, 2},
	"GET":        {2, 2},
	"LPOP":       {1, 1},
	"RPOP":       {1, 1},
	"LEN":        {1, 1},
	"COUNT":      {1, 2},
	"FILTER":     {2, 2},
	"REVERSE":    {1, 1},
	"DUP":        {2, 2},
	"EQUAL":      {2, 3},
	"PALINDROME": {1, 1},
	"CYCLE":      {1, 1},
	"PRINT":      {1, -1},
	"DESTROY":    {1, 1},
	"KEYS":       {0, 0},
}

// ParseRequest parses and validates a text command line into a request map.
func ParseRequest(input string) (map[string]interface{}, error) {
	parts := strings.Fields(input)
	if len(parts) == 0 || strings.HasPrefix(parts[0], "#") {
		return nil, ErrNoCommand
	}

	command := strings.ToUpper(parts[0])
	bounds, ok := argCount[command]
	if !ok {
		return nil, fmt.Errorf("unknown command: %s", command)
	}
	args := parts[1:]
	if len(args) < bounds[0] || (bounds[1] >= 0 && len(args) > bounds[1]) {
		return nil, fmt.Errorf("%s: wrong number of arguments (%d)", command, len(args))
	}

	request := map[string]interface{}{
		"command": command,
	}
	if len(args) > 0 {
		request["key"] = args[0]
	}

	switch command {
	case "PUSH", "APPEND":
		values := make([]interface{}, 0, len(args)-1)
		for _, v := range args[1:] {
			values = append(values, v)
		}
		request["values"] = values

	case "INSERT":
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("INSERT: invalid index %q", args[1])
		}
		request["index"] = int64(index)
		request["value"] = args[2]

	case "POP", "GET":
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("%s: invalid index %q", command, args[1])
		}
		request["index"] = int64(index)

	case "COUNT", "FILTER":
		if len(args) > 1 {
			request["value"] = args[1]
		}

	case "DUP":
		request["other"] = args[1]

	case "EQUAL":
		request["other"] = args[1]
		if len(args) > 2 {
			if !strings.EqualFold(args[2], "STRICT") {
				return nil, fmt.Errorf("EQUAL: unexpected argument %q", args[2])
			}
			request["strict"] = true
		}

	case "PRINT":
		if len(args) > 1 {
			request["separator"] = strings.Join(args[1:], " ")
		}
	}

	return request, nil
}

// ToInt converts a decoded request number to int. msgpack hands back the
// smallest integer type that fits, text requests hand back strings.
func ToInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		return int(n), nil
	case string:
		return strconv.Atoi(n)
	default:
		return 0, fmt.Errorf("invalid integer type %T", v)
	}
}

// DecodeRequests reads a stream of msgpack encoded request maps until EOF.
func DecodeRequests(r io.Reader) ([]map[string]interface{}, error) {
	decoder := msgpack.NewDecoder(r)
	var requests []map[string]interface{}
	for {
		var request map[string]interface{}
		if err := decoder.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return requests, nil
			}
			return requests, err
		}
		requests = append(requests, request)
	}
}

// EncodeRequest serializes a request map
func EncodeRequest(request map[string]interface{}) ([]byte, error) {
	return msgpack.Marshal(request)
}

// EncodeResponse serializes a response map into a byte slice
func EncodeResponse(response map[string]interface{}) ([]byte, error) {
	return msgpack.Marshal(response)
}

// DecodeResponse deserializes a byte slice into a response map
func DecodeResponse(data []byte) (map[string]interface{}, error) {
	var response map[string]interface{}
	err := msgpack.Unmarshal(data, &response)
	return response, err
}
