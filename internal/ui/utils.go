package ui

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/forest-guardian/regrowth/internal/properties"
)

// Colors for consistent UI
const (
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorReset  = "\033[0m"
)

// PrintWarning displays a warning message with consistent formatting
func PrintWarning(message string) {
	fmt.Printf("%s\nWarning:%s\n", ColorYellow, ColorReset)
	fmt.Printf("%s%s%s\n", ColorYellow, message, ColorReset)
}

// PrintError displays an error message with consistent formatting
func PrintError(message string) {
	fmt.Printf("\n%sError: %s%s\n", ColorRed, message, ColorReset)
}

// PrintSuccess displays a success message with consistent formatting
func PrintSuccess(message string) {
	fmt.Printf("\n%s%s%s\n", ColorGreen, message, ColorReset)
}

// PrintInfo displays an info message with consistent formatting
func PrintInfo(message string) {
	fmt.Printf("%s%s%s", ColorBlue, message, ColorReset)
}

// ReadString reads a string from stdin with trimming
func ReadString(prompt string) string {
	reader := bufio.NewReader(os.Stdin)
	PrintInfo(prompt)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// ReadFloat reads a float from stdin with validation
func ReadFloat(prompt string) (float64, error) {
	input := ReadString(prompt)
	value, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number: %s", input)
	}
	return value, nil
}

// ReadRegionAndBoundary reads the region name and boundary id from stdin
func ReadRegionAndBoundary() (string, string, error) {
	region := ReadString("Enter the region name: ")
	if region == "" {
		return "", "", fmt.Errorf("region name cannot be empty")
	}
	boundary := ReadString("Enter the boundary id: ")
	if boundary == "" {
		return "", "", fmt.Errorf("boundary id cannot be empty")
	}
	return region, boundary, nil
}

// CreateResultDirectory ensures the result folder of an analysis exists
func CreateResultDirectory(region, boundary string) (string, error) {
	resultPath := fmt.Sprintf("%s/data/result/%s_%s", properties.RootPath(), region, boundary)
	if err := os.MkdirAll(resultPath, 0755); err != nil {
		return "", fmt.Errorf("error creating result directory: %s", err.Error())
	}
	return resultPath, nil
}
