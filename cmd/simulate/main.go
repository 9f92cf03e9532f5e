package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"shop-assistant-be/internal/bootstrap"
	"shop-assistant-be/internal/config"

	"github.com/fatih/color"
)

// Console chat against the in-process engine. Sessions are never persisted.
func main() {
	number := flag.String("number", "94770000000", "conversation id to chat as")
	flag.Parse()

	cfg := config.Load()
	cfg.Session.Store = "memory"
	cfg.Messaging.NatsURL = ""

	container, err := bootstrap.NewContainer(nil, cfg)
	if err != nil {
		color.Red("Startup failed: %v", err)
		os.Exit(1)
	}
	defer container.Close()

	color.Cyan("Sun Mobile shop assistant simulator (conversation %s)", *number)
	color.Cyan("Type a message. '#' resets, '*' changes language, 'exit' quits.\n")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		color.New(color.FgYellow).Print("You: ")
		if !scanner.Scan() {
			break
		}
		text := scanner.Text()
		if strings.TrimSpace(text) == "exit" {
			break
		}

		reply, err := container.ChatbotService.HandleMessage(context.Background(), *number, text)
		if err != nil {
			color.Red("Error: %v", err)
			continue
		}

		color.Green("Bot: %s", reply.Text)
		if reply.Image != "" {
			color.Magenta("[image] %s", reply.Image)
		}
		fmt.Println()
	}
}
