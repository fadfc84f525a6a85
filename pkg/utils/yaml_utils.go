package utils

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultYAMLIndent is the number of spaces used when encoding YAML.
const DefaultYAMLIndent = 2

// ConvertToYAML converts the provided value to a YAML-encoded string.
func ConvertToYAML(data any) (string, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(DefaultYAMLIndent)

	if err := encoder.Encode(data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// UnmarshalYAML unmarshals YAML into a Go type.
func UnmarshalYAML[T any](input string) (T, error) {
	var data T
	if err := yaml.Unmarshal([]byte(input), &data); err != nil {
		var zeroValue T
		return zeroValue, err
	}
	return data, nil
}

// PrintAsYAML prints the provided value as a YAML document to the console.
func PrintAsYAML(data any) error {
	y, err := ConvertToYAML(data)
	if err != nil {
		return err
	}
	fmt.Println(y)
	return nil
}

// WriteToFileAsYAML converts the provided value to YAML and writes it to the specified file.
func WriteToFileAsYAML(filePath string, data any, fileMode os.FileMode) error {
	y, err := ConvertToYAML(data)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, []byte(y), fileMode)
}
