package utils

import "fmt"

// PrintMessage prints the message to the console.
func PrintMessage(message string) {
	fmt.Println(message)
}
