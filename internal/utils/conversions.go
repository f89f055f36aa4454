package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Request is the typed form of a request map.
type Request struct {
	Command  string
	Key      string
	Value    string
	Target   string
	Index    int
	HasIndex bool
}

// ConvertMapToRequest converts a request map to a Request
func ConvertMapToRequest(request map[string]interface{}) (*Request, error) {
	command, ok := request["command"].(string)
	if !ok || command == "" {
		return nil, errors.New("invalid or missing 'command' field")
	}

	req := &Request{Command: strings.ToUpper(command)}
	if key, ok := request["key"].(string); ok {
		req.Key = key
	}
	if value, ok := request["value"].(string); ok {
		req.Value = value
	}
	if target, ok := request["target"].(string); ok {
		req.Target = target
	}
	if raw, ok := request["index"]; ok {
		index, err := toInt(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid 'index' field: %w", err)
		}
		req.Index = index
		req.HasIndex = true
	}

	return req, nil
}

// ConvertRequestToMap converts a Request back to a map
func ConvertRequestToMap(req *Request) map[string]interface{} {
	request := map[string]interface{}{
		"command": req.Command,
	}
	if req.Key != "" {
		request["key"] = req.Key
	}
	if req.Value != "" {
		request["value"] = req.Value
	}
	if req.Target != "" {
		request["target"] = req.Target
	}
	if req.HasIndex {
		request["index"] = int64(req.Index)
	}

	return request
}

// toInt accepts the integer shapes msgpack and JSON decoding produce, plus strings.
func toInt(raw interface{}) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("%v is not an integer", v)
		}
		return int(v), nil
	case string:
		return strconv.Atoi(v)
	default:
		return 0, fmt.Errorf("unsupported type %T", raw)
	}
}

// EncodeResponse serializes a response map into a byte slice
func EncodeResponse(response map[string]interface{}) ([]byte, error) {
	return msgpack.Marshal(response)
}

// EncodeResponseJSON serializes a response map as a single JSON line
func EncodeResponseJSON(response map[string]interface{}) ([]byte, error) {
	data, err := json.Marshal(response)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// DecodeRequest deserializes a byte slice into a request map
func DecodeRequest(data []byte) (map[string]interface{}, error) {
	var request map[string]interface{}
	err := msgpack.Unmarshal(data, &request)
	return request, err
}

// DecodeResponse deserializes a msgpack response frame
func DecodeResponse(data []byte) (map[string]interface{}, error) {
	var response map[string]interface{}
	err := msgpack.Unmarshal(data, &response)
	return response, err
}
