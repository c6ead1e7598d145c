package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/yoockh/htmlchat/config"
	"github.com/yoockh/htmlchat/internal/chatview"
	"github.com/yoockh/htmlchat/internal/client"
	"github.com/yoockh/htmlchat/internal/ui/chat"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadClient()

	m := chat.New(client.New(cfg.ServerURL, nil), chatview.WithDelay(cfg.TypeDelay))
	p := tea.NewProgram(m)
	m.Attach(p)

	_, err := p.Run()
	m.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chat: %v\n", err)
		os.Exit(1)
	}
}
