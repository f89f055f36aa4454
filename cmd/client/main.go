package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/vskvj3/listlab/internal/core"
	"github.com/vskvj3/listlab/internal/utils"
)

// argParser parses and validates the command and its arguments
func argParser(input string) (map[string]interface{}, error) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil, fmt.Errorf("no command entered")
	}

	command := strings.ToUpper(parts[0])
	request := map[string]interface{}{
		"command": command,
	}

	switch command {
	case "PING", "KEYS":
		if len(parts) > 1 {
			return nil, fmt.Errorf("%s does not require any arguments", command)
		}

	case "PUSHFRONT", "PUSHBACK", "DEL", "FIND":
		if len(parts) != 3 {
			return nil, fmt.Errorf("%s requires a key and a value", command)
		}
		request["key"] = parts[1]
		request["value"] = parts[2]

	case "INSERTAFTER":
		if len(parts) != 4 {
			return nil, fmt.Errorf("INSERTAFTER requires a key, a target and a value")
		}
		request["key"] = parts[1]
		request["target"] = parts[2]
		request["value"] = parts[3]

	case "INSERTAT":
		if len(parts) != 4 {
			return nil, fmt.Errorf("INSERTAT requires a key, an index and a value")
		}
		request["key"] = parts[1]
		request["index"] = parts[2]
		request["value"] = parts[3]

	case "DELFRONT", "DELBACK", "LEN", "EMPTY", "REVERSE", "RANGE":
		if len(parts) != 2 {
			return nil, fmt.Errorf("%s requires a key", command)
		}
		request["key"] = parts[1]

	default:
		return nil, fmt.Errorf("unknown command: %s", command)
	}

	return request, nil
}

// writeResponse prints a response in the configured output format
func writeResponse(w io.Writer, format string, response map[string]interface{}) error {
	switch format {
	case utils.FormatMsgpack:
		data, err := utils.EncodeResponse(response)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case utils.FormatJSON:
		data, err := utils.EncodeResponseJSON(response)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	status, _ := response["status"].(string)
	switch status {
	case core.StatusOK:
		if message, ok := response["message"].(string); ok {
			fmt.Fprintln(w, message)
		} else if values, ok := response["values"].([]string); ok {
			fmt.Fprintln(w, "["+strings.Join(values, ", ")+"]")
		} else if value, ok := response["value"]; ok {
			fmt.Fprintln(w, value)
		} else if index, ok := response["index"]; ok {
			fmt.Fprintln(w, "Found at index:", index)
		} else {
			fmt.Fprintln(w, "OK")
		}
	case core.StatusNotFound:
		fmt.Fprintln(w, "Not found:", response["message"])
	default:
		fmt.Fprintln(w, "Error:", response["message"])
	}
	return nil
}

func main() {
	formatPtr := flag.String("format", "", "Output format: text, json or msgpack (overrides config)")
	verifyPtr := flag.Bool("verify", false, "Check list invariants after every write")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, "Error reading .env:", err)
	}

	configPath, err := utils.DefaultConfigPath()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error resolving config path:", err)
		return
	}
	config, err := utils.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading configuration:", err)
		return
	}
	logger := utils.NewLogger(config.LogFile, config.Debug)
	logger.Debug("Loaded configurations from " + configPath)

	format := config.OutputFormat
	if *formatPtr != "" {
		format = *formatPtr
	}

	handler := core.NewCommandHandler(core.NewDatabase(), logger)
	handler.Verify = config.VerifyInvariants || *verifyPtr

	interactive := format == utils.FormatText
	if interactive {
		fmt.Println("Type commands (e.g., PUSHBACK key value, INSERTAT key index value, RANGE key) and press Enter.")
	}
	reader := bufio.NewReader(os.Stdin)

	for {
		if interactive {
			fmt.Print(">> ")
		}
		input, err := reader.ReadString('\n')
		if err != nil && (err != io.EOF || input == "") {
			if err != io.EOF {
				logger.Error("Error reading input: " + err.Error())
			}
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if strings.EqualFold(input, "quit") || strings.EqualFold(input, "exit") {
			return
		}

		request, err := argParser(input)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}

		response, err := handler.HandleCommand(request)
		if err != nil {
			logger.Warn("Command failed: " + err.Error())
			response = map[string]interface{}{"status": core.StatusError, "message": err.Error()}
		}

		if err := writeResponse(os.Stdout, format, response); err != nil {
			logger.Error("Failed to encode response: " + err.Error())
		}
	}
}
