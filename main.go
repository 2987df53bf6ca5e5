package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	receptionistx "github.com/tanpawarit/Chative-Booking-Receptionist/agent/agents/receptionist"
	storex "github.com/tanpawarit/Chative-Booking-Receptionist/agent/store"
	toolx "github.com/tanpawarit/Chative-Booking-Receptionist/agent/tool"
	configx "github.com/tanpawarit/Chative-Booking-Receptionist/pkg/config"
	_ "github.com/tanpawarit/Chative-Booking-Receptionist/pkg/logger/autoload"
	openrouterx "github.com/tanpawarit/Chative-Booking-Receptionist/pkg/openrouter"
)

func main() {
	openRouterCfg := configx.MustNew[openrouterx.Config]("OPENROUTER")
	model, err := openrouterx.NewChatModel(*openRouterCfg)
	if err != nil {
		panic(err)
	}

	storeCfg := configx.MustNew[storex.Config]("STORE")
	st, err := storex.NewFileStore(*storeCfg)
	if err != nil {
		panic(err)
	}

	registry, err := toolx.NewRegistry(st)
	if err != nil {
		panic(err)
	}

	agent, err := receptionistx.New(model, toolx.NewExecutor(registry))
	if err != nil {
		panic(err)
	}

	fmt.Println("Welcome to Elite Barber Shop in Los Angeles!")
	fmt.Println("I'm your AI receptionist. How can I help you today?")
	fmt.Println("Type 'quit' to exit, 'reset' to start a new conversation.")
	fmt.Println()

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "quit", "exit", "bye":
			fmt.Println("Thank you for visiting Elite Barber Shop. Have a great day!")
			return
		case "reset":
			agent.Reset()
			fmt.Println("Conversation cleared.")
			continue
		}

		reply, err := agent.Chat(ctx, input)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		fmt.Printf("\nAgent: %s\n\n", reply)
	}
}
