package utils

import (
	"fmt"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// DefaultJSONIndent is the number of spaces used when pretty-printing JSON.
const DefaultJSONIndent = 2

var json = jsoniter.ConfigDefault

// ConvertToJSON converts the provided value to a JSON-encoded string.
func ConvertToJSON(data any) (string, error) {
	j, err := json.MarshalIndent(data, "", strings.Repeat(" ", DefaultJSONIndent))
	if err != nil {
		return "", err
	}
	return string(j), nil
}

// ConvertFromJSON converts the provided JSON-encoded string to a Go type.
func ConvertFromJSON(jsonString string) (any, error) {
	var data any
	if err := json.Unmarshal([]byte(jsonString), &data); err != nil {
		return nil, err
	}
	return data, nil
}

// PrintAsJSON prints the provided value as a JSON document to the console.
func PrintAsJSON(data any) error {
	j, err := ConvertToJSON(data)
	if err != nil {
		return err
	}
	fmt.Println(j)
	return nil
}

// WriteToFileAsJSON converts the provided value to JSON and writes it to the specified file.
func WriteToFileAsJSON(filePath string, data any, fileMode os.FileMode) error {
	j, err := ConvertToJSON(data)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, []byte(j), fileMode)
}
