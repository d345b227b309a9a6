package main

import (
	"fmt"
	"log"
	"os"

	"propostas/internal/cli"
	"propostas/internal/config"
)

func main() {
	cfg, _, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("加载配置失败，使用默认配置: %v", err)
		cfg = config.DefaultConfig()
	}

	runner := cli.NewRunner(cfg, cfg.Vocabulary(), os.Stdin, os.Stdout)
	if err := runner.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}
