package core

import (
	"fmt"
	"strings"

	"github.com/amartos/sccroll/internal/utils"
)

type CommandHandler struct {
	Session *Session
}

// Create a new CommandHandler instance
func NewCommandHandler(session *Session) *CommandHandler {
	return &CommandHandler{Session: session}
}

func ok(value interface{}) map[string]interface{} {
	if value == nil {
		return map[string]interface{}{"status": "OK"}
	}
	return map[string]interface{}{"status": "OK", "value": value}
}

func notFound() map[string]interface{} {
	return map[string]interface{}{"status": "NOT_FOUND"}
}

func errorResponse(message string) map[string]interface{} {
	return map[string]interface{}{"status": "ERROR", "message": message}
}

func found(value string, exists bool, err error) map[string]interface{} {
	if err != nil {
		return errorResponse(err.Error())
	}
	if !exists {
		return notFound()
	}
	return ok(value)
}

func stringField(request map[string]interface{}, name string) (string, bool) {
	v, exists := request[name].(string)
	return v, exists
}

func indexField(request map[string]interface{}) (int, error) {
	raw, exists := request["index"]
	if !exists {
		return 0, fmt.Errorf("missing 'index' field")
	}
	index, err := utils.ToInt(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid 'index' field: %v", err)
	}
	return index, nil
}

func valuesField(request map[string]interface{}) ([]string, error) {
	raw, exists := request["values"]
	if !exists {
		if v, present := stringField(request, "value"); present {
			return []string{v}, nil
		}
		return nil, fmt.Errorf("missing 'values' field")
	}
	items, isList := raw.([]interface{})
	if !isList {
		return nil, fmt.Errorf("'values' must be a list")
	}
	values := make([]string, 0, len(items))
	for _, item := range items {
		v, isString := item.(string)
		if !isString {
			return nil, fmt.Errorf("'values' must only hold strings, got %T", item)
		}
		values = append(values, v)
	}
	return values, nil
}

// HandleCommand processes one request and returns the response map:
// status is OK, NOT_FOUND or ERROR.
func (h *CommandHandler) HandleCommand(request map[string]interface{}) map[string]interface{} {
	logger := utils.GetLogger()

	command, isString := request["command"].(string)
	if !isString {
		return errorResponse("Invalid or missing 'command' field")
	}
	command = strings.ToUpper(command)
	key, _ := stringField(request, "key")
	logger.Debug("handling " + command + " " + key)

	s := h.Session
	switch command {
	case "PUSH", "APPEND":
		values, err := valuesField(request)
		if err != nil {
			return errorResponse(command + ": " + err.Error())
		}
		var length int
		if command == "PUSH" {
			length, err = s.Push(key, values...)
		} else {
			length, err = s.Append(key, values...)
		}
		if err != nil {
			return errorResponse(err.Error())
		}
		return ok(length)

	case "INSERT":
		index, err := indexField(request)
		if err != nil {
			return errorResponse("INSERT: " + err.Error())
		}
		value, exists := stringField(request, "value")
		if !exists {
			return errorResponse("INSERT requires a 'value' field")
		}
		length, err := s.Insert(key, index, value)
		if err != nil {
			return errorResponse(err.Error())
		}
		return ok(length)

	case "POP", "GET":
		index, err := indexField(request)
		if err != nil {
			return errorResponse(command + ": " + err.Error())
		}
		if command == "POP" {
			return found(s.Pop(key, index))
		}
		return found(s.Get(key, index))

	case "LPOP":
		return found(s.Pop(key, 0))

	case "RPOP":
		return found(s.Pop(key, -1))

	case "LEN":
		length, err := s.Len(key)
		if err != nil {
			return errorResponse(err.Error())
		}
		return ok(length)

	case "COUNT":
		sub, filtered := stringField(request, "value")
		count, err := s.Count(key, sub, !filtered)
		if err != nil {
			return errorResponse(err.Error())
		}
		return ok(count)

	case "FILTER":
		sub, exists := stringField(request, "value")
		if !exists {
			return errorResponse("FILTER requires a 'value' field")
		}
		length, err := s.Filter(key, sub)
		if err != nil {
			return errorResponse(err.Error())
		}
		return ok(length)

	case "REVERSE":
		if err := s.Reverse(key); err != nil {
			return errorResponse(err.Error())
		}
		return ok(nil)

	case "DUP":
		other, _ := stringField(request, "other")
		if err := s.Dup(key, other); err != nil {
			return errorResponse(err.Error())
		}
		return ok(nil)

	case "EQUAL":
		other, _ := stringField(request, "other")
		strict, _ := request["strict"].(bool)
		equal, err := s.Equal(key, other, strict)
		if err != nil {
			return errorResponse(err.Error())
		}
		return ok(equal)

	case "PALINDROME":
		palindrome, err := s.Palindrome(key)
		if err != nil {
			return errorResponse(err.Error())
		}
		return ok(palindrome)

	case "CYCLE":
		return found(s.Cycle(key))

	case "PRINT":
		separator, _ := stringField(request, "separator")
		out, err := s.Print(key, separator)
		if err != nil {
			return errorResponse(err.Error())
		}
		return ok(out)

	case "DESTROY":
		if err := s.Destroy(key); err != nil {
			return errorResponse(err.Error())
		}
		return ok(nil)

	case "KEYS":
		keys := s.Keys()
		items := make([]interface{}, 0, len(keys))
		for _, k := range keys {
			items = append(items, k)
		}
		return ok(items)

	default:
		logger.Warn("unknown command " + command)
		return errorResponse("Unknown command")
	}
}

// FormatResponse renders a response map as a single text line.
func FormatResponse(response map[string]interface{}) string {
	status, _ := response["status"].(string)
	switch status {
	case "OK":
		value, exists := response["value"]
		if !exists {
			return "OK"
		}
		if items, isList := value.([]interface{}); isList {
			parts := make([]string, 0, len(items))
			for _, item := range items {
				parts = append(parts, fmt.Sprint(item))
			}
			return "OK " + strings.Join(parts, " ")
		}
		return fmt.Sprintf("OK %v", value)
	case "ERROR":
		return fmt.Sprintf("ERROR %v", response["message"])
	default:
		return status
	}
}
