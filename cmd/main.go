package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/common-nighthawk/go-figure"
	bannercolor "github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/forest-guardian/regrowth/internal/notification"
	"github.com/forest-guardian/regrowth/internal/trajectory"
	"github.com/forest-guardian/regrowth/internal/ui"
)

func printBanner() {
	figure1 := figure.NewFigure("Regrowth", "isometric1", true)
	figure2 := figure.NewFigure("CLI", "isometric1", true)
	bannercolor.Cyan(figure1.String())
	bannercolor.Cyan(figure2.String())
	fmt.Println()
}

func initCLI(cfg trajectory.Config) {
	defer func() {
		if r := recover(); r != nil {
			// Get the function, file, and line where panic occurred
			pc, file, line, ok := runtime.Caller(3) // 3 levels up is often the panic source
			var location string
			if ok {
				fn := runtime.FuncForPC(pc)
				location = fmt.Sprintf("%s:%d in %s", file, line, fn.Name())
			} else {
				location = "Unknown location"
			}

			fmt.Printf("\n\033[31mPANIC: %v\033[0m\n", r)
			fmt.Printf("\033[31mLocation: %s\033[0m\n", location)
			fmt.Printf("\033[31mPlease check the input and try again.\033[0m\n")
			fmt.Printf("\033[31mExiting...\033[0m\n")

			stack := debug.Stack()
			errMessage := fmt.Sprintf("Regrowth CLI panic:\n\n%v\n\nLocation: %s\n\nStack trace:\n%s", r, location, stack)
			err := notification.SendDiscordErrorNotification(errMessage)
			if err != nil {
				fmt.Printf("\033[31mFailed to send notification: %s\033[0m\n", err.Error())
			}
		}
	}()

	printBanner()
	ui.ShowMenu(cfg)
}

func configPathFromArgs() string {
	for i, arg := range os.Args {
		if strings.HasPrefix(arg, "--config=") {
			return strings.TrimPrefix(arg, "--config=")
		}
		if arg == "--config" && i+1 < len(os.Args) {
			return os.Args[i+1]
		}
	}
	return ""
}

func main() {
	err := godotenv.Load("../../.env")
	if err != nil {
		err := godotenv.Load("../.env")
		if err != nil {
			fmt.Printf("\033[33mNo .env file found, relying on the environment.\033[0m\n")
		}
	}

	configPath := configPathFromArgs()
	if configPath == "" {
		fmt.Printf("\033[33mNo config specified. Using the default analysis configuration.\033[0m\n")
	} else {
		fmt.Printf("\033[32mUsing analysis configuration: %s\033[0m\n", configPath)
	}

	cfg, err := trajectory.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("\033[31m%s\033[0m\n", err.Error())
		os.Exit(1)
	}

	initCLI(cfg)
}
