package core

import (
	"errors"
	"fmt"

	"github.com/vskvj3/listlab/internal/datastructures"
	"github.com/vskvj3/listlab/internal/utils"
)

// Response statuses.
const (
	StatusOK       = "OK"
	StatusNotFound = "NOT_FOUND"
	StatusError    = "ERROR"
)

type CommandHandler struct {
	Database *Database
	// Verify runs the list invariant check after every write.
	Verify bool
	logger *utils.Logger
}

// Create a new CommandHandler instance
func NewCommandHandler(db *Database, logger *utils.Logger) *CommandHandler {
	return &CommandHandler{Database: db, logger: logger}
}

// IsWriteCommand reports whether command mutates a list.
func IsWriteCommand(command string) bool {
	writeCommands := map[string]bool{
		"PUSHFRONT":   true,
		"PUSHBACK":    true,
		"INSERTAFTER": true,
		"INSERTAT":    true,
		"DELFRONT":    true,
		"DELBACK":     true,
		"DEL":         true,
		"REVERSE":     true,
	}
	return writeCommands[command]
}

// HandleCommand processes a request and builds the response map. Empty lists,
// missing values and bad indexes come back as NOT_FOUND or ERROR responses;
// the returned error is reserved for requests that cannot be executed at all.
func (h *CommandHandler) HandleCommand(request map[string]interface{}) (map[string]interface{}, error) {
	req, err := utils.ConvertMapToRequest(request)
	if err != nil {
		return nil, err
	}
	h.logger.Debug("Handling " + req.Command + " on key '" + req.Key + "'")

	if err := requireFields(req); err != nil {
		return nil, err
	}

	db := h.Database
	var response map[string]interface{}

	switch req.Command {
	case "PING":
		response = ok("message", "PONG")

	case "PUSHFRONT":
		response, err = h.result(db.PushFront(req.Key, req.Value))

	case "PUSHBACK":
		response, err = h.result(db.PushBack(req.Key, req.Value))

	case "INSERTAFTER":
		response, err = h.result(db.InsertAfter(req.Key, req.Target, req.Value))

	case "INSERTAT":
		response, err = h.result(db.InsertAt(req.Key, req.Index, req.Value))

	case "DELFRONT":
		value, derr := db.DeleteFront(req.Key)
		response, err = h.result(derr)
		if derr == nil {
			response["value"] = value
		}

	case "DELBACK":
		value, derr := db.DeleteBack(req.Key)
		response, err = h.result(derr)
		if derr == nil {
			response["value"] = value
		}

	case "DEL":
		response, err = h.result(db.Delete(req.Key, req.Value))

	case "FIND":
		found, index, ferr := db.Find(req.Key, req.Value)
		response, err = h.result(ferr)
		if ferr == nil {
			if found {
				response["index"] = index
			} else {
				response = notFound(datastructures.ErrNotFound)
			}
		}

	case "LEN":
		response = ok("value", db.Length(req.Key))

	case "EMPTY":
		response = ok("value", db.Length(req.Key) == 0)

	case "REVERSE":
		response, err = h.result(db.Reverse(req.Key))

	case "RANGE":
		values, rerr := db.Range(req.Key)
		response, err = h.result(rerr)
		if rerr == nil {
			response["values"] = values
		}

	case "KEYS":
		response = ok("values", db.Keys())

	default:
		return nil, fmt.Errorf("unknown command: %s", req.Command)
	}
	if err != nil {
		return nil, err
	}

	if h.Verify && IsWriteCommand(req.Command) && response["status"] == StatusOK {
		if verr := db.Verify(req.Key); verr != nil && !errors.Is(verr, ErrKeyNotFound) {
			h.logger.Error("Invariant check failed after " + req.Command + ": " + verr.Error())
			return nil, verr
		}
	}

	return response, nil
}

// requireFields checks that the request carries what its command needs.
func requireFields(req *utils.Request) error {
	needKey := req.Command != "PING" && req.Command != "KEYS"
	if needKey && req.Key == "" {
		return fmt.Errorf("%s requires a 'key' field", req.Command)
	}

	switch req.Command {
	case "PUSHFRONT", "PUSHBACK", "DEL", "FIND":
		if req.Value == "" {
			return fmt.Errorf("%s requires 'key', 'value' fields", req.Command)
		}
	case "INSERTAFTER":
		if req.Target == "" || req.Value == "" {
			return fmt.Errorf("%s requires 'key', 'target', 'value' fields", req.Command)
		}
	case "INSERTAT":
		if !req.HasIndex || req.Value == "" {
			return fmt.Errorf("%s requires 'key', 'index', 'value' fields", req.Command)
		}
	}
	return nil
}

// result turns a list operation error into a response. Errors that are not
// about the list contents are passed back to the caller.
func (h *CommandHandler) result(err error) (map[string]interface{}, error) {
	switch {
	case err == nil:
		return map[string]interface{}{"status": StatusOK}, nil
	case errors.Is(err, datastructures.ErrEmpty),
		errors.Is(err, datastructures.ErrNotFound),
		errors.Is(err, ErrKeyNotFound):
		h.logger.Debug(err.Error())
		return notFound(err), nil
	case errors.Is(err, datastructures.ErrOutOfRange):
		h.logger.Debug(err.Error())
		return map[string]interface{}{"status": StatusError, "message": err.Error()}, nil
	default:
		return nil, err
	}
}

func ok(field string, value interface{}) map[string]interface{} {
	return map[string]interface{}{"status": StatusOK, field: value}
}

func notFound(err error) map[string]interface{} {
	return map[string]interface{}{"status": StatusNotFound, "message": err.Error()}
}
